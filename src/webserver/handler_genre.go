package webserver

import (
	"net/http"

	"github.com/ironsmile/melodyhub/src/catalog"
	"github.com/ironsmile/melodyhub/src/webserver/webutils"
)

// NewGenreArtistsHandler returns the handler which lists the artists of a genre
// together with the number of their albums.
func NewGenreArtistsHandler(store catalog.Store) http.Handler {
	return HandlerFuncWithError(func(w http.ResponseWriter, req *http.Request) error {
		vars, err := pathVars(req, "name")
		if err != nil {
			return err
		}

		cat, err := store.Load(req.Context())
		if err != nil {
			return err
		}

		genre, artists, err := cat.FindArtistsByGenre(vars[0])
		if err != nil {
			return err
		}

		webutils.JSON(w, http.StatusOK, genreArtistsResponse{
			Genre:   genre.Name,
			Artists: artists,
		})
		return nil
	})
}

type genreArtistsResponse struct {
	Genre   string                  `json:"genre"`
	Artists []catalog.ArtistSummary `json:"artists"`
}
