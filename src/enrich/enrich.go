// Package enrich replaces stored album covers with ones found by a remote search.
//
// Every album is looked up on its own, concurrently with the others. A failed or
// empty lookup only means that the album keeps its stored cover. It never fails
// the whole batch.
package enrich

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/ironsmile/melodyhub/src/catalog"
	"github.com/ironsmile/melodyhub/src/deezer"
)

// DefaultConcurrency is the number of lookups run at the same time when no other
// limit is configured.
const DefaultConcurrency = 8

// Enricher enriches album covers using a deezer.Finder.
type Enricher struct {
	finder deezer.Finder
	limit  int
}

// New returns an Enricher which runs at most `limit` lookups at the same time. A
// nil finder returns an Enricher which leaves everything as it is.
func New(finder deezer.Finder, limit int) *Enricher {
	if limit < 1 {
		limit = DefaultConcurrency
	}

	return &Enricher{
		finder: finder,
		limit:  limit,
	}
}

// Enabled returns true when the Enricher would make any lookups at all.
func (e *Enricher) Enabled() bool {
	return e != nil && e.finder != nil
}

// Catalog enriches every album of every artist in `cat` in place.
func (e *Enricher) Catalog(ctx context.Context, cat *catalog.Catalog) {
	if !e.Enabled() {
		return
	}

	var targets []target
	for gi := range cat.Genres {
		for ai := range cat.Genres[gi].Artists {
			artist := &cat.Genres[gi].Artists[ai]
			for bi := range artist.Albums {
				targets = append(targets, target{
					artist: artist.Name,
					album:  &artist.Albums[bi],
				})
			}
		}
	}

	e.run(ctx, targets)
}

// Albums enriches `albums` of `artist` in place.
func (e *Enricher) Albums(ctx context.Context, artist string, albums []catalog.Album) {
	if !e.Enabled() {
		return
	}

	targets := make([]target, 0, len(albums))
	for i := range albums {
		targets = append(targets, target{
			artist: artist,
			album:  &albums[i],
		})
	}

	e.run(ctx, targets)
}

// Each calls `fn` concurrently for every index in [0, n) with the same concurrency
// limit as the cover lookups. It returns once all calls have returned. `fn` must
// not fail, errors are its own business.
func (e *Enricher) Each(ctx context.Context, n int, fn func(ctx context.Context, i int)) {
	limit := DefaultConcurrency
	if e != nil {
		limit = e.limit
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(gctx, i)
			return nil
		})
	}

	_ = g.Wait()
}

type target struct {
	artist string
	album  *catalog.Album
}

func (e *Enricher) run(ctx context.Context, targets []target) {
	// Every task owns a distinct album so no locking is needed.
	e.Each(ctx, len(targets), func(ctx context.Context, i int) {
		t := targets[i]

		found, err := e.finder.SearchAlbum(ctx, t.album.Name, t.artist)
		if errors.Is(err, deezer.ErrNotFound) {
			return
		} else if err != nil {
			log.Printf("cover lookup for %s - %s failed: %s\n", t.artist, t.album.Name, err)
			return
		}

		if found.CoverURL == "" {
			return
		}

		t.album.CoverImage = found.CoverURL
	})
}
