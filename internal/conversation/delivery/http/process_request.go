package http

import (
	"errors"
	"io"
	"strings"

	"inbox-srv/internal/model"
	pkgErrors "inbox-srv/pkg/errors"
	"inbox-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func (h *handler) processSearchRequest(c *gin.Context) (searchReq, model.Scope, error) {
	var req searchReq

	req.MailboxSlug = strings.TrimSpace(c.Param("mailbox_slug"))
	if req.MailboxSlug == "" {
		return req, model.Scope{}, errMailboxRequired
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		if !errors.Is(err, io.EOF) {
			return req, model.Scope{}, bindError(err)
		}
		// Empty body means "no filters"; struct rules still apply.
		if err := binding.Validator.ValidateStruct(&req); err != nil {
			return req, model.Scope{}, bindError(err)
		}
	}
	req.IncludeTotal = c.Query("include_total") == "true"

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

// bindError keeps validator errors for the field list and hides decoder errors.
func bindError(err error) error {
	if pkgErrors.NewValidationError(err) != nil {
		return err
	}
	return errInvalidBody
}
