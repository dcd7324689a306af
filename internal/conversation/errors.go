package conversation

import "errors"

// Domain errors
var (
	// ErrKeywordSearchFailed - the free-text backend failed; the request fails with it
	ErrKeywordSearchFailed = errors.New("conversation: keyword search failed")

	// ErrLoadFailed - conversations could not be read from the store
	ErrLoadFailed = errors.New("conversation: couldn't load conversations")
)
