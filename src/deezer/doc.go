/*
Package deezer is a tiny client for the public Deezer search API. It is used for
finding a playable preview of a song which is not available locally and for finding
album covers.

Nothing in the API requires authentication. A search returns a list of matches and
the first one is taken as the best match. Not finding anything is not considered a
failure by the callers, so it is reported with the ErrNotFound sentinel.

API documentation: https://developers.deezer.com/api/search
*/
package deezer
