package webserver

import (
	"context"
	"net/http"

	"github.com/ironsmile/melodyhub/src/audio"
	"github.com/ironsmile/melodyhub/src/catalog"
	"github.com/ironsmile/melodyhub/src/enrich"
	"github.com/ironsmile/melodyhub/src/webserver/webutils"
)

// SongHandler finds every occurrence of a song in the catalog and resolves where
// its audio could be played from.
type SongHandler struct {
	store    catalog.Store
	resolver *audio.Resolver
	enricher *enrich.Enricher
}

// NewSongHandler returns a new SongHandler. The enricher is used only for
// bounding the number of concurrent audio resolutions and may be nil.
func NewSongHandler(
	store catalog.Store,
	resolver *audio.Resolver,
	enricher *enrich.Enricher,
) *SongHandler {
	return &SongHandler{
		store:    store,
		resolver: resolver,
		enricher: enricher,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (sh *SongHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	WithJSONErrors(sh.find)(w, req)
}

func (sh *SongHandler) find(w http.ResponseWriter, req *http.Request) error {
	vars, err := pathVars(req, "name")
	if err != nil {
		return err
	}

	cat, err := sh.store.Load(req.Context())
	if err != nil {
		return err
	}

	matches, err := cat.FindSong(vars[0])
	if err != nil {
		return err
	}

	// Results are written at their match index so that the catalog order is kept
	// regardless of which resolution finishes first.
	results := make([]songResult, len(matches))
	sh.enricher.Each(req.Context(), len(matches), func(ctx context.Context, i int) {
		results[i] = sh.resolve(ctx, matches[i])
	})

	webutils.JSON(w, http.StatusOK, songResponse{
		Song:    vars[0],
		Results: results,
	})
	return nil
}

func (sh *SongHandler) resolve(ctx context.Context, match catalog.SongMatch) songResult {
	res := songResult{
		Song:        match.Song,
		Artist:      match.Artist.Name,
		Album:       match.Album.Name,
		Genre:       match.Genre.Name,
		ReleaseYear: match.Album.ReleaseYear,
		CoverImage:  match.Album.CoverImage,
	}

	if sh.resolver == nil {
		return res
	}

	found := sh.resolver.Resolve(ctx, match.Artist.Name, match.Album.Name, match.Song)
	res.Source = found.Source
	res.AudioURL = found.AudioURL
	if found.CoverImage != "" {
		res.CoverImage = found.CoverImage
	}

	return res
}

type songResponse struct {
	Song    string       `json:"song"`
	Results []songResult `json:"results"`
}

type songResult struct {
	Song        string       `json:"song"`
	Artist      string       `json:"artist"`
	Album       string       `json:"album"`
	Genre       string       `json:"genre"`
	ReleaseYear int          `json:"releaseYear"`
	CoverImage  string       `json:"coverImage"`
	Source      audio.Source `json:"source,omitempty"`

	// AudioURL is encoded as null when no audio was found.
	AudioURL *string `json:"audioUrl"`
}
