package webserver

import (
	"log"
	"net/http"
	"time"
)

// AccessHandler is an http.Handler which wraps around another handler and prints
// access logs.
type AccessHandler struct {
	wrapped http.Handler
}

// NewAccessHandler returns an AccessHandler which will call `h` and the log
// information about the http request and response.
func NewAccessHandler(h http.Handler) *AccessHandler {
	return &AccessHandler{
		wrapped: h,
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *AccessHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	started := time.Now()
	ww := newLoggedResponseWriter(w)
	h.wrapped.ServeHTTP(ww, req)
	elapsed := time.Since(started)

	log.Printf(
		"%s %s dur=%s status=%d bytes=%d userAgent=%s remoteAddr=%s\n",
		req.Method, req.URL.RequestURI(), elapsed, ww.code, ww.written,
		req.Header.Get("User-Agent"), req.RemoteAddr,
	)
}

type loggedResponseWriter struct {
	http.ResponseWriter
	code    int
	written int64
}

func newLoggedResponseWriter(w http.ResponseWriter) *loggedResponseWriter {
	return &loggedResponseWriter{
		ResponseWriter: w,
		code:           http.StatusOK,
	}
}

func (w *loggedResponseWriter) WriteHeader(status int) {
	w.code = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *loggedResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}
