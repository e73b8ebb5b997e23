package deezer

import "fmt"

// The following are structures only used to decode the JSON responses of the
// Deezer API. Only the fields this package is interested in are defined.

type dzResponse interface {
	apiError() error
}

type dzTrackSearch struct {
	Data  []dzTrack `json:"data"`
	Error *dzError  `json:"error"`
}

func (r *dzTrackSearch) apiError() error {
	if r.Error == nil {
		return nil
	}
	return r.Error
}

type dzAlbumSearch struct {
	Data  []dzAlbum `json:"data"`
	Error *dzError  `json:"error"`
}

func (r *dzAlbumSearch) apiError() error {
	if r.Error == nil {
		return nil
	}
	return r.Error
}

type dzTrack struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	Preview string  `json:"preview"`
	Album   dzAlbum `json:"album"`
}

type dzAlbum struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Cover    string `json:"cover"`
	CoverBig string `json:"cover_big"`
	CoverXL  string `json:"cover_xl"`
}

// bestCover returns the cover with the highest resolution which is available.
func (a dzAlbum) bestCover() string {
	switch {
	case a.CoverXL != "":
		return a.CoverXL
	case a.CoverBig != "":
		return a.CoverBig
	default:
		return a.Cover
	}
}

/*
dzError is the error object which the API returns instead of data. Example:

	{
	    "error": {
	        "type": "Exception",
	        "message": "Quota limit exceeded",
	        "code": 4
	    }
	}
*/
type dzError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Error implements the error interface.
func (e *dzError) Error() string {
	return fmt.Sprintf("deezer API error %d (%s): %s", e.Code, e.Type, e.Message)
}
