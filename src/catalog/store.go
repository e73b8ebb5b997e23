package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// Store is a source of catalogs. Every call to Load returns a freshly read catalog
// which the caller is free to modify.
type Store interface {
	Load(ctx context.Context) (*Catalog, error)
}

// FileStore is a Store which reads the catalog JSON document from a file. The file
// is read again on every Load so edits to it are visible on the next request
// without restarting the server.
type FileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore returns a FileStore for the document at `path` inside `fs`.
func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{
		fs:   fs,
		path: path,
	}
}

// Load implements Store.
func (s *FileStore) Load(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fh, err := s.fs.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer fh.Close()

	cat := &Catalog{}
	if err := json.NewDecoder(fh).Decode(cat); err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", s.path, err)
	}

	return cat, nil
}
