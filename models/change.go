package models

// Cursor is an opaque change-token marking the last-seen position in a zone's
// change feed. The empty cursor means "from the beginning". Cursors are held
// only for the duration of one fetch loop and never persisted.
type Cursor string

// ChangePage is one page of a zone's change feed.
type ChangePage struct {
	// Records are the records created or modified since the request cursor.
	Records []Record `json:"records"`

	// MoreComing reports whether another page must be requested with
	// NextCursor before the feed is exhausted.
	MoreComing bool `json:"more_coming"`

	// NextCursor is the cursor for the next page request.
	NextCursor Cursor `json:"next_cursor"`
}
