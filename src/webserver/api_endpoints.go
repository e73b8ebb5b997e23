package webserver

import "net/http"

// The following are URL Path endpoints for certain API calls.
const (
	EndpointIndex        = "/"
	EndpointAbout        = "/about"
	EndpointHub          = "/hub"
	EndpointArtist       = "/artist/{name}"
	EndpointArtistYear   = "/artist/{name}/{year:[0-9]+}"
	EndpointArtistAlbum  = "/artist/{name}/album/{albumName}"
	EndpointGenreArtists = "/genre/{name}/artists"
	EndpointSong         = "/song/{name}"
	EndpointStream       = "/stream/{artist}/{album}/{song}"
	endpointStreamPrefix = "/stream/"
)

// APIMethods defines on which HTTP methods the endpoints will respond to.
// It is an uri_path => list of HTTP methods map.
var APIMethods = map[string][]string{
	EndpointIndex:        {http.MethodGet, http.MethodHead},
	EndpointAbout:        {http.MethodGet},
	EndpointHub:          {http.MethodGet},
	EndpointArtist:       {http.MethodGet},
	EndpointArtistYear:   {http.MethodGet},
	EndpointArtistAlbum:  {http.MethodGet},
	EndpointGenreArtists: {http.MethodGet},
	EndpointSong:         {http.MethodGet},
	EndpointStream:       {http.MethodGet, http.MethodHead},
}
