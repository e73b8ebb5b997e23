package webserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/afero"

	"github.com/ironsmile/melodyhub/src/audio"
	"github.com/ironsmile/melodyhub/src/webserver/webutils"
)

// StreamContentType is the content type of every streamed file.
const StreamContentType = "audio/mpeg"

// StreamHandler serves local audio files by artist, album and song name.
type StreamHandler struct {
	local *audio.LocalStore
}

// NewStreamHandler returns a new StreamHandler which serves files from `local`.
func NewStreamHandler(local *audio.LocalStore) *StreamHandler {
	return &StreamHandler{
		local: local,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (sh *StreamHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	WithJSONErrors(sh.stream)(w, req)
}

// stream writes the audio file to the client. Range requests are served with
// http.ServeContent.
func (sh *StreamHandler) stream(w http.ResponseWriter, req *http.Request) error {
	vars, err := pathVars(req, "artist", "album", "song")
	if err != nil {
		return err
	}
	artist, album, song := vars[0], vars[1], vars[2]

	fh, err := sh.local.Open(artist, album, song)
	if errors.Is(err, audio.ErrInvalidName) || errors.Is(err, afero.ErrFileNotFound) {
		webutils.NotFound(w, fmt.Sprintf("audio for %q by %q not found", song, artist))
		return nil
	} else if err != nil {
		return fmt.Errorf("opening audio file: %w", err)
	}
	defer fh.Close()

	modTime := time.Time{}
	if st, err := fh.Stat(); err == nil {
		modTime = st.ModTime()
	}

	baseName := song + audio.FileExtension
	w.Header().Set("Content-Type", StreamContentType)
	w.Header().Add("Content-Disposition", fmt.Sprintf("filename=%q", baseName))
	http.ServeContent(w, req, baseName, modTime, fh)
	return nil
}
