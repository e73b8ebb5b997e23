package catalog_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ironsmile/melodyhub/src/assert"
	"github.com/ironsmile/melodyhub/src/catalog"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Genres: []catalog.Genre{
			{
				Name: "Rock",
				Artists: []catalog.Artist{
					{
						Name: "Linkin Park",
						Albums: []catalog.Album{
							{
								Name:        "Hybrid Theory",
								ReleaseYear: 2000,
								CoverImage:  "https://covers.example/hybrid.jpg",
								Songs:       []string{"Papercut", "In the End"},
							},
							{
								Name:        "Meteora",
								ReleaseYear: 2003,
								CoverImage:  "https://covers.example/meteora.jpg",
								Songs:       []string{"Numb", "Faint"},
							},
							{
								Name:        "Minutes to Midnight",
								ReleaseYear: 2007,
								Songs:       []string{"What I've Done"},
							},
							{
								Name:        "Live in Texas",
								ReleaseYear: 2003,
								Songs:       []string{"Numb"},
							},
						},
					},
				},
			},
			{
				Name: "Pop",
				Artists: []catalog.Artist{
					{
						Name: "Taylor Swift",
						Albums: []catalog.Album{
							{
								Name:        "Midnights",
								ReleaseYear: 2022,
								Songs:       []string{"Lavender Haze", "Anti-Hero"},
							},
							{
								Name:        "Anti-Hero (Remixes)",
								ReleaseYear: 2022,
								Songs:       []string{"Anti-Hero", "anti-hero"},
							},
						},
					},
					{
						Name: "Linkin Park",
						Albums: []catalog.Album{
							{Name: "One More Light", ReleaseYear: 2017},
						},
					},
				},
			},
		},
	}
}

// TestFindArtistIsCaseInsensitive makes sure that names differing only in case
// resolve to the very same artist and genre.
func TestFindArtistIsCaseInsensitive(t *testing.T) {
	cat := testCatalog()

	for _, name := range []string{"Linkin Park", "linkin park", "LINKIN PARK", "lInKiN pArK"} {
		artist, genre, err := cat.FindArtist(name)
		assert.NilErr(t, err, "looking up %s", name)
		assert.Equal(t, "Linkin Park", artist.Name)
		assert.Equal(t, "Rock", genre.Name, "genre for %s", name)
		assert.Equal(t, 4, len(artist.Albums), "albums for %s", name)
	}
}

// TestFindArtistFirstGenreWins checks that an artist listed in two genres is always
// resolved from the genre which comes first in the catalog.
func TestFindArtistFirstGenreWins(t *testing.T) {
	artist, genre, err := testCatalog().FindArtist("linkin park")
	assert.NilErr(t, err)
	assert.Equal(t, "Rock", genre.Name)
	assert.Equal(t, "Hybrid Theory", artist.Albums[0].Name)
}

// TestFindArtistNotFound checks the not-found error and its suggestion.
func TestFindArtistNotFound(t *testing.T) {
	cat := testCatalog()

	_, _, err := cat.FindArtist("Unknown")
	assert.ErrIs(t, err, catalog.ErrNotFound)

	_, _, err = cat.FindArtist("Linkin Prak")
	assert.ErrIs(t, err, catalog.ErrNotFound)

	var nfErr *catalog.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected *NotFoundError but got %T", err)
	}
	assert.Equal(t, "artist", nfErr.Kind)
	assert.Equal(t, "Linkin Park", nfErr.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "Linkin Park"`)
}

// TestFindArtistAlbumsByYear checks filtering albums by their release year.
func TestFindArtistAlbumsByYear(t *testing.T) {
	cat := testCatalog()

	artist, genre, albums, err := cat.FindArtistAlbumsByYear("Linkin Park", 2007)
	assert.NilErr(t, err)
	assert.Equal(t, "Linkin Park", artist.Name)
	assert.Equal(t, "Rock", genre.Name)
	if len(albums) != 1 {
		t.Fatalf("expected one album from 2007 but got %d", len(albums))
	}
	assert.Equal(t, "Minutes to Midnight", albums[0].Name)

	_, _, albums, err = cat.FindArtistAlbumsByYear("linkin park", 2003)
	assert.NilErr(t, err)
	if len(albums) != 2 {
		t.Fatalf("expected two albums from 2003 but got %d", len(albums))
	}
	for _, album := range albums {
		assert.Equal(t, 2003, album.ReleaseYear, "album %s", album.Name)
	}

	_, _, _, err = cat.FindArtistAlbumsByYear("Linkin Park", 1999)
	assert.ErrIs(t, err, catalog.ErrNotFound)
	assert.Contains(t, err.Error(), "1999")

	_, _, _, err = cat.FindArtistAlbumsByYear("Unknown", 2007)
	assert.ErrIs(t, err, catalog.ErrNotFound)
}

// TestFindAlbum checks looking up a single album of an artist.
func TestFindAlbum(t *testing.T) {
	cat := testCatalog()

	artist, genre, album, err := cat.FindAlbum("Linkin Park", "Meteora")
	assert.NilErr(t, err)
	assert.Equal(t, "Linkin Park", artist.Name)
	assert.Equal(t, "Rock", genre.Name)
	assert.Equal(t, "Meteora", album.Name)
	assert.Equal(t, 2003, album.ReleaseYear)

	_, _, album, err = cat.FindAlbum("LINKIN park", "meteora")
	assert.NilErr(t, err)
	assert.Equal(t, "Meteora", album.Name)

	_, _, _, err = cat.FindAlbum("Linkin Park", "Meteor")
	assert.ErrIs(t, err, catalog.ErrNotFound)
	assert.Contains(t, err.Error(), `for artist "Linkin Park"`)
	assert.Contains(t, err.Error(), `did you mean "Meteora"`)

	_, _, _, err = cat.FindAlbum("Unknown", "Meteora")
	assert.ErrIs(t, err, catalog.ErrNotFound)
	assert.Contains(t, err.Error(), "artist")
}

// TestFindArtistsByGenre checks the artist summaries of a genre.
func TestFindArtistsByGenre(t *testing.T) {
	cat := testCatalog()

	genre, artists, err := cat.FindArtistsByGenre("pop")
	assert.NilErr(t, err)
	assert.Equal(t, "Pop", genre.Name)
	if len(artists) != 2 {
		t.Fatalf("expected 2 artists but got %d", len(artists))
	}
	assert.Equal(t, catalog.ArtistSummary{Name: "Taylor Swift", AlbumCount: 2}, artists[0])
	assert.Equal(t, catalog.ArtistSummary{Name: "Linkin Park", AlbumCount: 1}, artists[1])

	_, _, err = cat.FindArtistsByGenre("Unknown")
	assert.ErrIs(t, err, catalog.ErrNotFound)
}

// TestFindSong checks that every album listing a song produces exactly one match.
func TestFindSong(t *testing.T) {
	cat := testCatalog()

	matches, err := cat.FindSong("Anti-Hero")
	assert.NilErr(t, err)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches but got %d", len(matches))
	}
	assert.Equal(t, "Midnights", matches[0].Album.Name)
	assert.Equal(t, "Anti-Hero (Remixes)", matches[1].Album.Name)
	for _, match := range matches {
		assert.Equal(t, "Taylor Swift", match.Artist.Name)
		assert.Equal(t, "Pop", match.Genre.Name)
	}

	matches, err = cat.FindSong("NUMB")
	assert.NilErr(t, err)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches for Numb but got %d", len(matches))
	}
	assert.Equal(t, "Numb", matches[0].Song)
	assert.Equal(t, "Meteora", matches[0].Album.Name)
	assert.Equal(t, "Live in Texas", matches[1].Album.Name)

	_, err = cat.FindSong("Numbb")
	assert.ErrIs(t, err, catalog.ErrNotFound)
	if !strings.Contains(err.Error(), `"Numb"`) {
		t.Errorf("expected a suggestion in `%s`", err)
	}
}

// TestEmptyCatalog makes sure that lookups in an empty catalog only ever return
// not-found errors.
func TestEmptyCatalog(t *testing.T) {
	cat := &catalog.Catalog{}

	_, _, err := cat.FindArtist("Linkin Park")
	assert.ErrIs(t, err, catalog.ErrNotFound)

	_, _, err = cat.FindArtistsByGenre("Rock")
	assert.ErrIs(t, err, catalog.ErrNotFound)

	_, err = cat.FindSong("Numb")
	assert.ErrIs(t, err, catalog.ErrNotFound)
}
