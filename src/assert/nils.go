package assert

import "errors"

// NilErr checks that `val` is nil. Causes a fatal error otherwise.
func NilErr(t TestingFatalf, val error, msgAndArgs ...any) {
	t.Helper()

	if val == nil {
		return
	}

	t.Fatalf("expected nil but got `%s`%s", val, fromMsgAndArgs(msgAndArgs...))
}

// NotNilErr checks that `val` is not nil. Causes a fatal error otherwise.
func NotNilErr(t TestingFatalf, val error, msgAndArgs ...any) {
	t.Helper()

	if val != nil {
		return
	}

	t.Fatalf("unexpected nil%s", fromMsgAndArgs(msgAndArgs...))
}

// ErrIs checks that `target` is somewhere in the chain of `err`. Causes a fatal
// error otherwise.
func ErrIs(t TestingFatalf, err, target error, msgAndArgs ...any) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("expected error `%v` to wrap `%v`%s",
		err, target, fromMsgAndArgs(msgAndArgs...),
	)
}
