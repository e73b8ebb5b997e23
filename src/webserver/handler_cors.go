package webserver

import "net/http"

// CORSHandler allows every origin to use the API. Preflight requests are answered
// directly without reaching the wrapped handler.
type CORSHandler struct {
	wrapped http.Handler
}

// NewCORSHandler returns a CORSHandler wrapping `h`.
func NewCORSHandler(h http.Handler) *CORSHandler {
	return &CORSHandler{
		wrapped: h,
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *CORSHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if req.Method == http.MethodOptions && req.Header.Get("Access-Control-Request-Method") != "" {
		w.Header().Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Range, Content-Type")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.wrapped.ServeHTTP(w, req)
}
