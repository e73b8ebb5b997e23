package webserver_test

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ironsmile/melodyhub/src/assert"
	"github.com/ironsmile/melodyhub/src/webserver"
)

// TestGzipHandler checks that responses are compressed only for clients which
// accept gzip and never for the excepted paths.
func TestGzipHandler(t *testing.T) {
	const body = `{"genres":[]}`
	wrapped := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, body)
	})
	h := webserver.NewGzipHandler(wrapped, []string{"/stream/"})

	req := httptest.NewRequest(http.MethodGet, "/hub", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	assert.Equal(t, "gzip", resp.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", resp.Header().Get("Vary"))

	gzr, err := gzip.NewReader(resp.Body)
	assert.NilErr(t, err, "response was not gzipped")
	decoded, err := io.ReadAll(gzr)
	assert.NilErr(t, err)
	assert.Equal(t, body, string(decoded))

	req = httptest.NewRequest(http.MethodGet, "/hub", nil)
	resp = httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	assert.Equal(t, "", resp.Header().Get("Content-Encoding"))
	assert.Equal(t, body, resp.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/stream/a/b/c", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp = httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	assert.Equal(t, "", resp.Header().Get("Content-Encoding"))
	assert.Equal(t, body, resp.Body.String())
}

// TestCORSHandler checks the CORS headers and that preflight requests are answered
// without calling the wrapped handler.
func TestCORSHandler(t *testing.T) {
	recorder := &recordingHandler{}
	h := webserver.NewCORSHandler(recorder)

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/hub", nil))

	assert.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, 1, recorder.called)

	req := httptest.NewRequest(http.MethodOptions, "/hub", nil)
	req.Header.Set("Origin", "https://player.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	resp = httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
	assert.Equal(t, 1, recorder.called, "preflight reached the wrapped handler")
}

// TestRecoverHandler makes sure a panicking handler results in a JSON internal
// server error instead of a crash.
func TestRecoverHandler(t *testing.T) {
	h := webserver.NewRecoverHandler(http.HandlerFunc(
		func(_ http.ResponseWriter, _ *http.Request) {
			panic("something went very wrong")
		},
	))

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/hub", nil))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assertContentTypeJSON(t, resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Body.String(), "internal server error")
}
