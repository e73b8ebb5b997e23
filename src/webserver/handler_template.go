package webserver

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/ironsmile/melodyhub/src/version"
)

// NewTemplateHandler returns a handler which will execute the welcome page template.
// The page lists every endpoint of the API.
func NewTemplateHandler(tpl *template.Template, title string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := struct {
			Title     string
			Version   string
			Endpoints []endpointDoc
		}{
			Title:     title,
			Version:   version.Version,
			Endpoints: endpointDocs,
		}

		// The page is rendered into a buffer first so that a failed execution does
		// not leave a half-written page behind.
		var buf bytes.Buffer
		if err := tpl.Execute(&buf, data); err != nil {
			log.Printf("Error executing template: %s.\n", err)
			http.Error(w, "Error executing template", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	})
}

type endpointDoc struct {
	Path        string
	Description string
}

var endpointDocs = []endpointDoc{
	{"/hub", "The whole catalog: genres, artists, albums and songs."},
	{"/artist/{name}", "A single artist with all of its albums."},
	{"/artist/{name}/{year}", "The albums an artist released in a given year."},
	{"/artist/{name}/album/{albumName}", "A single album of an artist."},
	{"/genre/{name}/artists", "The artists of a genre with their album counts."},
	{"/song/{name}", "Every album which has this song and where to play it from."},
	{"/stream/{artist}/{album}/{song}", "The MP3 file of a song, if it is stored locally."},
	{"/about", "Information about the server."},
}
