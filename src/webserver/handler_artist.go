package webserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ironsmile/melodyhub/src/catalog"
	"github.com/ironsmile/melodyhub/src/enrich"
	"github.com/ironsmile/melodyhub/src/webserver/webutils"
)

// ArtistHandler serves information about a single artist and its albums.
type ArtistHandler struct {
	store    catalog.Store
	enricher *enrich.Enricher
}

// NewArtistHandler returns the handler for an artist with all of its albums.
func NewArtistHandler(store catalog.Store, enricher *enrich.Enricher) http.Handler {
	ah := &ArtistHandler{
		store:    store,
		enricher: enricher,
	}
	return HandlerFuncWithError(ah.artist)
}

// NewArtistYearHandler returns the handler for the albums an artist released in
// a particular year. Album covers for it are never enriched.
func NewArtistYearHandler(store catalog.Store) http.Handler {
	ah := &ArtistHandler{
		store: store,
	}
	return HandlerFuncWithError(ah.albumsByYear)
}

func (ah *ArtistHandler) artist(w http.ResponseWriter, req *http.Request) error {
	vars, err := pathVars(req, "name")
	if err != nil {
		return err
	}

	cat, err := ah.store.Load(req.Context())
	if err != nil {
		return err
	}

	artist, genre, err := cat.FindArtist(vars[0])
	if err != nil {
		return err
	}

	ah.enricher.Albums(req.Context(), artist.Name, artist.Albums)

	webutils.JSON(w, http.StatusOK, artistResponse{
		Artist: artist.Name,
		Genre:  genre.Name,
		Albums: nonNilAlbums(artist.Albums),
	})
	return nil
}

func (ah *ArtistHandler) albumsByYear(w http.ResponseWriter, req *http.Request) error {
	vars, err := pathVars(req, "name", "year")
	if err != nil {
		return err
	}

	year, err := strconv.Atoi(vars[1])
	if err != nil {
		return badRequest(fmt.Errorf("wrong year `%s`: %w", vars[1], err))
	}

	cat, err := ah.store.Load(req.Context())
	if err != nil {
		return err
	}

	artist, genre, albums, err := cat.FindArtistAlbumsByYear(vars[0], year)
	if err != nil {
		return err
	}

	webutils.JSON(w, http.StatusOK, artistYearResponse{
		Artist: artist.Name,
		Genre:  genre.Name,
		Year:   year,
		Albums: albums,
	})
	return nil
}

type artistResponse struct {
	Artist string          `json:"artist"`
	Genre  string          `json:"genre"`
	Albums []catalog.Album `json:"albums"`
}

type artistYearResponse struct {
	Artist string          `json:"artist"`
	Genre  string          `json:"genre"`
	Year   int             `json:"year"`
	Albums []catalog.Album `json:"albums"`
}

// nonNilAlbums makes sure an artist without albums is encoded with an empty JSON
// list instead of null.
func nonNilAlbums(albums []catalog.Album) []catalog.Album {
	if albums == nil {
		return []catalog.Album{}
	}
	return albums
}
