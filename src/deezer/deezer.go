package deezer

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ErrNotFound is returned when the search finished successfully but nothing which
// could be used was found.
var ErrNotFound = errors.New("no match found in deezer")

// DefaultAPIURL is the address of the public Deezer API.
const DefaultAPIURL = "https://api.deezer.com"

// Result is the useful part of a single search match. Any of its fields may be
// empty.
type Result struct {
	// PreviewURL is a link to a short playable MP3 preview.
	PreviewURL string

	// CoverURL is a link to the biggest available album cover image.
	CoverURL string
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Finder

// Finder defines a type which is capable of searching for remote metadata of
// songs and albums.
type Finder interface {
	// SearchTrack finds the song `title` by `artist`.
	SearchTrack(ctx context.Context, title, artist string) (Result, error)

	// SearchAlbum finds the album `album` by `artist`.
	SearchAlbum(ctx context.Context, album, artist string) (Result, error)
}

// Client is a Finder which uses the Deezer search API. It is safe for concurrent
// use.
type Client struct {
	useragent  string
	apiHost    string
	httpClient *http.Client
}

// NewClient returns a Client which will introduce itself with `useragent` and will
// talk to the API at `apiURL`. An empty apiURL means DefaultAPIURL. Trailing
// slashes are ignored.
func NewClient(useragent, apiURL string) *Client {
	apiURL = strings.TrimRight(apiURL, "/")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	return &Client{
		useragent:  useragent,
		apiHost:    apiURL,
		httpClient: http.DefaultClient,
	}
}
