package webutils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/ironsmile/melodyhub/src/assert"
	"github.com/ironsmile/melodyhub/src/webserver/webutils"
)

// TestPathVar makes sure that path variables are decoded, including escaped
// slashes which must not split the variable.
func TestPathVar(t *testing.T) {
	var (
		found string
		err   error
	)

	router := mux.NewRouter()
	router.UseEncodedPath()
	router.HandleFunc("/artist/{name}", func(w http.ResponseWriter, req *http.Request) {
		found, err = webutils.PathVar(req, "name")
	})

	tests := []struct {
		path     string
		expected string
	}{
		{"/artist/Linkin%20Park", "Linkin Park"},
		{"/artist/AC%2FDC", "AC/DC"},
		{"/artist/Sigur%20R%C3%B3s", "Sigur Rós"},
		{"/artist/Muse", "Muse"},
	}

	for _, test := range tests {
		req := httptest.NewRequest(http.MethodGet, test.path, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)

		assert.NilErr(t, err, "path %s", test.path)
		assert.Equal(t, test.expected, found, "path %s", test.path)
	}

	req := httptest.NewRequest(http.MethodGet, "/artist/Muse", nil)
	_, err = webutils.PathVar(req, "name")
	assert.NotNilErr(t, err, "expected an error without a router")
}
