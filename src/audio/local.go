// Package audio decides where the playable audio for a song comes from. Songs are
// looked up first in a local directory of MP3 files and then, when missing there,
// with a remote search for a preview.
package audio

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileExtension is the extension of every local audio asset.
const FileExtension = ".mp3"

// ErrInvalidName is returned when an artist, album or song name could not be used
// as a path element. Such names are never found in the local store.
var ErrInvalidName = errors.New("name is not usable as a path element")

// LocalStore is a directory with audio files laid out as
// <root>/<artist>/<album>/<song>.mp3.
type LocalStore struct {
	fs   afero.Fs
	root string
}

// NewLocalStore returns a LocalStore for the directory `root` inside `fs`.
func NewLocalStore(fs afero.Fs, root string) *LocalStore {
	return &LocalStore{
		fs:   fs,
		root: root,
	}
}

// Exists returns true when there is a regular file for this song. The contents
// of the file are not examined.
func (s *LocalStore) Exists(artist, album, song string) bool {
	path, err := s.path(artist, album, song)
	if err != nil {
		return false
	}

	st, err := s.fs.Stat(path)
	if err != nil {
		return false
	}

	return st.Mode().IsRegular()
}

// Open returns the audio file for this song. The caller must close it. Anything
// other than a regular file is reported as afero.ErrFileNotFound.
func (s *LocalStore) Open(artist, album, song string) (afero.File, error) {
	path, err := s.path(artist, album, song)
	if err != nil {
		return nil, err
	}

	fh, err := s.fs.Open(path)
	if err != nil {
		return nil, err
	}

	st, err := fh.Stat()
	if err != nil {
		fh.Close()
		return nil, err
	}

	if !st.Mode().IsRegular() {
		fh.Close()
		return nil, fmt.Errorf("%s is not a regular file: %w", path, afero.ErrFileNotFound)
	}

	return fh, nil
}

func (s *LocalStore) path(artist, album, song string) (string, error) {
	for _, elem := range []string{artist, album, song} {
		if !validElement(elem) {
			return "", fmt.Errorf("%w: %q", ErrInvalidName, elem)
		}
	}

	return filepath.Join(s.root, artist, album, song+FileExtension), nil
}

// validElement makes sure a name stays a single path element inside the store
// root.
func validElement(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}

	return !strings.ContainsAny(name, `/\`) && !strings.ContainsRune(name, 0)
}

// StreamPath returns the URL path under which the local audio for this song is
// served. Every element is escaped.
func StreamPath(artist, album, song string) string {
	return fmt.Sprintf(
		"/stream/%s/%s/%s",
		url.PathEscape(artist),
		url.PathEscape(album),
		url.PathEscape(song),
	)
}
