package http

import (
	"inbox-srv/internal/conversation"
	"inbox-srv/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Search lists one page of conversations in a mailbox.
// With include_total=true the total is counted alongside the page.
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSearchRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "conversation.delivery.http.Search: processSearchRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if !req.IncludeTotal {
		o, err := h.uc.Search(ctx, sc, req.toInput())
		if err != nil {
			h.l.Errorf(ctx, "conversation.delivery.http.Search: usecase Search failed: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
		response.OK(c, h.newSearchResp(o, nil))
		return
	}

	p, err := h.uc.Plan(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.Search: usecase Plan failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	var (
		page  conversation.PageOutput
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = h.uc.Page(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = h.uc.Count(gctx, p.Where)
		return err
	})
	if err := g.Wait(); err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.Search: page/count failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	o := conversation.SearchOutput{
		Results:         page.Results,
		NextCursor:      page.NextCursor,
		Limit:           p.Limit,
		Where:           p.Where,
		MetadataEnabled: p.MetadataEnabled,
		AssignedToIDs:   p.Filter.Assignee,
	}
	response.OK(c, h.newSearchResp(o, &total))
}

// Count returns the number of conversations matching the filters.
func (h *handler) Count(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSearchRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "conversation.delivery.http.Count: processSearchRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	p, err := h.uc.Plan(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.Count: usecase Plan failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	total, err := h.uc.Count(ctx, p.Where)
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.Count: usecase Count failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, countResp{Total: total})
}

// IDs lists the ids of every conversation matching the filters.
func (h *handler) IDs(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSearchRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "conversation.delivery.http.IDs: processSearchRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	p, err := h.uc.Plan(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.IDs: usecase Plan failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	ids, err := h.uc.IDsMatching(ctx, p.Where)
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.IDs: usecase IDsMatching failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newIDsResp(ids))
}
