// Package catalog holds the MelodyHub music catalog: genres which contain artists,
// which contain albums, which list songs by name. The catalog is a read-only JSON
// document and all lookups in it are linear scans in document order.
package catalog

// Catalog is the whole document. Order of genres, artists, albums and songs is the
// order found in the document and it is significant for lookups.
type Catalog struct {
	Genres []Genre `json:"genres"`
}

// Genre is a named list of artists.
type Genre struct {
	Name    string   `json:"name"`
	Artists []Artist `json:"artists"`
}

// Artist is a named list of albums.
type Artist struct {
	Name   string  `json:"name"`
	Albums []Album `json:"albums"`
}

// Album is a single release of an artist. Songs are only known by their names.
type Album struct {
	Name        string   `json:"name"`
	ReleaseYear int      `json:"releaseYear"`
	CoverImage  string   `json:"coverImage"`
	Songs       []string `json:"songs"`
}

// ArtistSummary is the projection of an artist used in genre listings.
type ArtistSummary struct {
	Name       string `json:"name"`
	AlbumCount int    `json:"albumCount"`
}

// SongMatch is a single occurrence of a song in the catalog. The same song name
// may be found in many albums.
type SongMatch struct {
	Song   string
	Artist Artist
	Album  Album
	Genre  Genre
}
