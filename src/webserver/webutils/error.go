package webutils

import (
	"net/http"
)

// JSONError writes a JSON object with an error message and sets the HTTP status code.
func JSONError(w http.ResponseWriter, message string, statusCode int) {
	JSON(w, statusCode, jsonErrorMessage{
		Error: message,
	})
}

// NotFound writes a JSON "not found" error with `message`.
func NotFound(w http.ResponseWriter, message string) {
	JSONError(w, message, http.StatusNotFound)
}

// InternalError writes a generic JSON error with status 500. Details about what
// actually went wrong are never sent to the client.
func InternalError(w http.ResponseWriter) {
	JSONError(w, "internal server error", http.StatusInternalServerError)
}

type jsonErrorMessage struct {
	Error string `json:"error"`
}
