package audio

import (
	"context"
	"errors"
	"log"

	"github.com/ironsmile/melodyhub/src/deezer"
)

// Source tells where the playable audio for a song was found.
type Source string

// All the possible sources.
const (
	SourceLocal  Source = "local"
	SourceDeezer Source = "deezer"
)

// Resolution is the outcome of resolving the audio for a single song. AudioURL is
// nil when no audio could be found anywhere.
type Resolution struct {
	Source   Source
	AudioURL *string

	// CoverImage is non-empty when the remote search found a cover which should
	// replace the stored one.
	CoverImage string
}

// Resolver finds the audio for songs. Its finder may be nil in which case only
// local files are considered.
type Resolver struct {
	local  *LocalStore
	finder deezer.Finder
}

// NewResolver returns a Resolver which consults `local` first and `finder` second.
func NewResolver(local *LocalStore, finder deezer.Finder) *Resolver {
	return &Resolver{
		local:  local,
		finder: finder,
	}
}

// Resolve finds the audio for `song` from `album` by `artist`. It never fails:
// remote search errors are logged and result in a Resolution without audio.
func (r *Resolver) Resolve(ctx context.Context, artist, album, song string) Resolution {
	if r.local != nil && r.local.Exists(artist, album, song) {
		streamURL := StreamPath(artist, album, song)
		return Resolution{
			Source:   SourceLocal,
			AudioURL: &streamURL,
		}
	}

	if r.finder == nil {
		return Resolution{}
	}

	found, err := r.finder.SearchTrack(ctx, song, artist)
	if errors.Is(err, deezer.ErrNotFound) {
		return Resolution{}
	} else if err != nil {
		log.Printf("searching remotely for %s - %s: %s\n", artist, song, err)
		return Resolution{}
	}

	if found.PreviewURL == "" {
		return Resolution{}
	}

	previewURL := found.PreviewURL
	return Resolution{
		Source:     SourceDeezer,
		AudioURL:   &previewURL,
		CoverImage: found.CoverURL,
	}
}
