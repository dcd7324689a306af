package paginator

// CursorQuery contains keyset pagination parameters for a request.
type CursorQuery struct {
	Cursor string `json:"cursor" form:"cursor"` // Opaque token returned as next_cursor by the previous page
	Limit  int    `json:"limit" form:"limit"`   // Number of items per page
}

// CursorPage contains pagination metadata for a keyset page.
type CursorPage struct {
	Count      int     `json:"count"`       // Number of items in current page
	PerPage    int     `json:"per_page"`    // Requested page size
	NextCursor *string `json:"next_cursor"` // Token for the next page, null at the end of results
	HasNext    bool    `json:"has_next"`    // Whether there is a next page
}
