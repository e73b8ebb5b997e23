package webserver

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/ironsmile/melodyhub/src/webserver/webutils"
)

// RecoverHandler turns panics in the wrapped handler into "500 Internal Server
// Error" JSON responses so that a single bad request never stops the server.
type RecoverHandler struct {
	wrapped http.Handler
}

// NewRecoverHandler returns a RecoverHandler wrapping `h`.
func NewRecoverHandler(h http.Handler) *RecoverHandler {
	return &RecoverHandler{
		wrapped: h,
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *RecoverHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if rec == http.ErrAbortHandler {
			panic(rec)
		}

		log.Printf("panic while handling %s %s: %v\n%s", req.Method, req.URL.Path,
			rec, debug.Stack())
		webutils.InternalError(w)
	}()

	h.wrapped.ServeHTTP(w, req)
}
