package webutils

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
)

// PathVar returns the decoded value of the gorilla mux path variable `name`. The
// router is expected to use encoded paths so that escaped slashes stay inside a
// single variable.
func PathVar(req *http.Request, name string) (string, error) {
	raw, ok := mux.Vars(req)[name]
	if !ok {
		return "", fmt.Errorf("no `%s` in the request path", name)
	}

	val, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("malformed `%s` in the request path: %w", name, err)
	}

	return val, nil
}
