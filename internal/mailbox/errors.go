package mailbox

import "errors"

// Domain errors
var (
	// ErrMailboxNotFound - no mailbox with the given slug
	ErrMailboxNotFound = errors.New("mailbox: not found")
)
