package deezer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	trackSearchEndpoint = "%s/search"
	albumSearchEndpoint = "%s/search/album"

	trackQueryValue = `track:"%s" artist:"%s"`
	albumQueryValue = `album:"%s" artist:"%s"`

	requestTimeout = 10 * time.Second
)

// SearchTrack implements Finder. The result's CoverURL is the cover of the album
// the found track belongs to.
func (c *Client) SearchTrack(ctx context.Context, title, artist string) (Result, error) {
	var resp dzTrackSearch

	err := c.search(ctx, trackSearchEndpoint, fmt.Sprintf(
		trackQueryValue, quoteless(title), quoteless(artist),
	), &resp)
	if err != nil {
		return Result{}, err
	}

	for _, track := range resp.Data {
		if track.Preview == "" && track.Album.bestCover() == "" {
			continue
		}

		return Result{
			PreviewURL: track.Preview,
			CoverURL:   track.Album.bestCover(),
		}, nil
	}

	return Result{}, ErrNotFound
}

// SearchAlbum implements Finder. Only the CoverURL of the result is set.
func (c *Client) SearchAlbum(ctx context.Context, album, artist string) (Result, error) {
	var resp dzAlbumSearch

	err := c.search(ctx, albumSearchEndpoint, fmt.Sprintf(
		albumQueryValue, quoteless(album), quoteless(artist),
	), &resp)
	if err != nil {
		return Result{}, err
	}

	for _, found := range resp.Data {
		if cover := found.bestCover(); cover != "" {
			return Result{CoverURL: cover}, nil
		}
	}

	return Result{}, ErrNotFound
}

// search sends a search query to one of the API search endpoints and decodes the
// JSON response into `into`.
func (c *Client) search(
	ctx context.Context,
	endpoint string,
	queryValue string,
	into dzResponse,
) error {
	searchURL := fmt.Sprintf(endpoint, c.apiHost)
	req, err := http.NewRequest(http.MethodGet, searchURL, nil)
	if err != nil {
		return fmt.Errorf("error creating deezer API req: %w", err)
	}

	query := req.URL.Query()
	query.Add("q", queryValue)
	req.URL.RawQuery = query.Encode()
	req.Header.Set("User-Agent", c.useragent)
	req.Header.Set("Accept", "application/json")

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	req = req.WithContext(ctx)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to deezer API failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("deezer search API returned HTTP %d", resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(into); err != nil {
		return fmt.Errorf("decoding deezer search API response: %w", err)
	}

	// Deezer reports errors such as exceeded quotas with status 200 and an
	// error object in the body.
	if apiErr := into.apiError(); apiErr != nil {
		return apiErr
	}

	return nil
}

// quoteless removes double quotes which would break the advanced search syntax.
func quoteless(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}
