package webutils

import (
	"encoding/json"
	"log"
	"net/http"
)

// JSONContentType is the content type of every JSON response.
const JSONContentType = "application/json; charset=utf-8"

// JSON encodes `v` as the response body with the given HTTP status code.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", JSONContentType)
	w.WriteHeader(statusCode)

	enc := json.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		log.Printf("error writing JSON response body: %s\n", err)
	}
}
