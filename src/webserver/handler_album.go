package webserver

import (
	"net/http"

	"github.com/ironsmile/melodyhub/src/catalog"
	"github.com/ironsmile/melodyhub/src/enrich"
	"github.com/ironsmile/melodyhub/src/webserver/webutils"
)

// AlbumHandler is a http.Handler which serves a single album of an artist.
type AlbumHandler struct {
	store    catalog.Store
	enricher *enrich.Enricher
}

// NewAlbumHandler returns a new AlbumHandler. The enricher may be nil.
func NewAlbumHandler(store catalog.Store, enricher *enrich.Enricher) *AlbumHandler {
	return &AlbumHandler{
		store:    store,
		enricher: enricher,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (ah *AlbumHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	WithJSONErrors(ah.find)(w, req)
}

func (ah *AlbumHandler) find(w http.ResponseWriter, req *http.Request) error {
	vars, err := pathVars(req, "name", "albumName")
	if err != nil {
		return err
	}

	cat, err := ah.store.Load(req.Context())
	if err != nil {
		return err
	}

	artist, genre, album, err := cat.FindAlbum(vars[0], vars[1])
	if err != nil {
		return err
	}

	albums := []catalog.Album{album}
	ah.enricher.Albums(req.Context(), artist.Name, albums)

	webutils.JSON(w, http.StatusOK, albumResponse{
		Artist: artist.Name,
		Genre:  genre.Name,
		Album:  albums[0],
	})
	return nil
}

type albumResponse struct {
	Artist string        `json:"artist"`
	Genre  string        `json:"genre"`
	Album  catalog.Album `json:"album"`
}
