package deezer

import "strings"

// SetAPIURL sets the Deezer API URL. Only useful for tests.
func (c *Client) SetAPIURL(apiURL string) {
	c.apiHost = strings.TrimRight(apiURL, "/")
}
