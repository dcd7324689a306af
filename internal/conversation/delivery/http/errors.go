package http

import (
	"errors"

	"inbox-srv/internal/conversation"
	"inbox-srv/internal/mailbox"
	pkgErrors "inbox-srv/pkg/errors"
)

var (
	errMailboxNotFound   = pkgErrors.NewHTTPError(404, "Mailbox not found")
	errMailboxRequired   = pkgErrors.NewHTTPError(400, "Mailbox slug is required")
	errInvalidBody       = pkgErrors.NewHTTPError(400, "Invalid request body")
	errLoadConversations = pkgErrors.NewHTTPError(500, "Couldn't load conversations, please retry")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, mailbox.ErrMailboxNotFound):
		return errMailboxNotFound
	case errors.Is(err, conversation.ErrKeywordSearchFailed),
		errors.Is(err, conversation.ErrLoadFailed):
		return errLoadConversations
	default:
		return err
	}
}
