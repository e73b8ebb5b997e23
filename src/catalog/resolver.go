package catalog

import (
	"strconv"
	"strings"
)

// FindArtist returns the first artist named `name` together with the genre it was
// found in. Names are compared case-insensitively. When more than one genre lists
// an artist with this name the one from the genre which comes first in the catalog
// wins.
func (c *Catalog) FindArtist(name string) (Artist, Genre, error) {
	for _, genre := range c.Genres {
		for _, artist := range genre.Artists {
			if sameName(artist.Name, name) {
				return artist, genre, nil
			}
		}
	}

	err := notFound("artist", name)
	err.Suggestion = c.SuggestArtist(name)
	return Artist{}, Genre{}, err
}

// FindArtistAlbumsByYear finds an artist the same way FindArtist does and returns
// only its albums released in `year`. It is an error when there are no such albums.
func (c *Catalog) FindArtistAlbumsByYear(
	name string,
	year int,
) (Artist, Genre, []Album, error) {
	artist, genre, err := c.FindArtist(name)
	if err != nil {
		return Artist{}, Genre{}, nil, err
	}

	var albums []Album
	for _, album := range artist.Albums {
		if album.ReleaseYear == year {
			albums = append(albums, album)
		}
	}

	if len(albums) == 0 {
		err := notFound("albums from year", strconv.Itoa(year))
		err.Artist = artist.Name
		return Artist{}, Genre{}, nil, err
	}

	return artist, genre, albums, nil
}

// FindAlbum returns the album `albumName` of the artist `artistName`. Both names
// are matched case-insensitively.
func (c *Catalog) FindAlbum(artistName, albumName string) (Artist, Genre, Album, error) {
	artist, genre, err := c.FindArtist(artistName)
	if err != nil {
		return Artist{}, Genre{}, Album{}, err
	}

	for _, album := range artist.Albums {
		if sameName(album.Name, albumName) {
			return artist, genre, album, nil
		}
	}

	nfErr := notFound("album", albumName)
	nfErr.Artist = artist.Name
	nfErr.Suggestion = suggest(albumName, albumNames(artist))
	return Artist{}, Genre{}, Album{}, nfErr
}

// FindArtistsByGenre returns the genre named `genreName` and a summary for each of
// its artists.
func (c *Catalog) FindArtistsByGenre(genreName string) (Genre, []ArtistSummary, error) {
	for _, genre := range c.Genres {
		if !sameName(genre.Name, genreName) {
			continue
		}

		summaries := make([]ArtistSummary, 0, len(genre.Artists))
		for _, artist := range genre.Artists {
			summaries = append(summaries, ArtistSummary{
				Name:       artist.Name,
				AlbumCount: len(artist.Albums),
			})
		}
		return genre, summaries, nil
	}

	err := notFound("genre", genreName)
	err.Suggestion = c.SuggestGenre(genreName)
	return Genre{}, nil, err
}

// FindSong returns every album which lists a song named `songName`, in catalog
// order. A song may legitimately appear in many albums of many artists. An album
// which lists the same name twice still produces a single match.
func (c *Catalog) FindSong(songName string) ([]SongMatch, error) {
	var matches []SongMatch

	for _, genre := range c.Genres {
		for _, artist := range genre.Artists {
			for _, album := range artist.Albums {
				for _, song := range album.Songs {
					if !sameName(song, songName) {
						continue
					}
					matches = append(matches, SongMatch{
						Song:   song,
						Artist: artist,
						Album:  album,
						Genre:  genre,
					})
					break
				}
			}
		}
	}

	if len(matches) == 0 {
		err := notFound("song", songName)
		err.Suggestion = c.SuggestSong(songName)
		return nil, err
	}

	return matches, nil
}

func sameName(a, b string) bool {
	return strings.EqualFold(a, b)
}
