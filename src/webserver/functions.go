package webserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/ironsmile/melodyhub/src/catalog"
	"github.com/ironsmile/melodyhub/src/webserver/webutils"
)

// HandlerFuncWithError is similar to http.HandlerFunc but returns an error when
// the handling of the request failed.
type HandlerFuncWithError func(http.ResponseWriter, *http.Request) error

// ServeHTTP makes HandlerFuncWithError an http.Handler. See WithJSONErrors for how
// errors are handled.
func (fnc HandlerFuncWithError) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	WithJSONErrors(fnc)(w, req)
}

// WithJSONErrors converts HandlerFuncWithError to http.HandlerFunc by making sure
// all errors returned are sent to the client as JSON. Errors which wrap
// catalog.ErrNotFound result in "404 Not Found" with the error message. Everything
// else is logged and results in a generic "500 Internal Server Error".
func WithJSONErrors(fnc HandlerFuncWithError) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := fnc(w, req)
		if err == nil {
			return
		}

		var badReq *badRequestError
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			webutils.NotFound(w, err.Error())
		case errors.As(err, &badReq):
			webutils.JSONError(w, badReq.Error(), http.StatusBadRequest)
		default:
			log.Printf("error handling %s %s: %s\n", req.Method, req.URL.Path, err)
			webutils.InternalError(w)
		}
	}
}

// badRequestError is returned by handlers when the request itself is malformed.
type badRequestError struct {
	err error
}

func (e *badRequestError) Error() string {
	return e.err.Error()
}

func (e *badRequestError) Unwrap() error {
	return e.err
}

func badRequest(err error) error {
	return &badRequestError{err: err}
}

// pathVars returns the decoded values of the path variables `names`, in order.
func pathVars(req *http.Request, names ...string) ([]string, error) {
	values := make([]string, 0, len(names))
	for _, name := range names {
		val, err := webutils.PathVar(req, name)
		if err != nil {
			return nil, badRequest(err)
		}
		values = append(values, val)
	}
	return values, nil
}
