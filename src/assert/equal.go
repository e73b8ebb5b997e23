package assert

import "strings"

// Equal checks whether expected and actual are actually equal and fails the test
// if they are not.
func Equal[V comparable](t TestingErrf, expected, actual V, msgAndArgs ...any) {
	t.Helper()

	if expected == actual {
		return
	}

	t.Errorf("not equal: expected `%#v` but got `%#v`%s",
		expected, actual, fromMsgAndArgs(msgAndArgs...),
	)
}

// Contains fails the test when `needle` is not a substring of `haystack`.
func Contains(t TestingErrf, haystack, needle string, msgAndArgs ...any) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		return
	}

	t.Errorf("`%s` does not contain `%s`%s",
		haystack, needle, fromMsgAndArgs(msgAndArgs...),
	)
}
