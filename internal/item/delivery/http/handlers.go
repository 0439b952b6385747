package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "item-checklist/pkg/errors"
	"item-checklist/pkg/response"
)

// Create godoc
// @Summary     Create a new item
// @Description Creates an item with a name and a free-text description.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     201  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List items
// @Description Returns a paginated list of items in creation order.
// @Tags        Items
// @Produce     json
// @Param       limit  query int false "Page size (default: 20)"
// @Param       offset query int false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns an item with its parsed checklist, progress, links, images and subtask references.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// UpdateDescription godoc
// @Summary     Replace the description
// @Description Replaces the whole description of an item.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path string               true "Item ID"
// @Param       body body updateDescriptionReq true "New description"
// @Success     200 {object} updateDescriptionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/items/{id}/description [PUT]
func (h *handler) UpdateDescription(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateDescriptionReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.UpdateDescription(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateDescription: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateDescriptionResp(output))
}

// ToggleChecklistItem godoc
// @Summary     Toggle a checklist row
// @Description Flips the checked state of the clicked row, addressed by index or by display text.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Item ID"
// @Param       body body toggleReq true "Clicked row"
// @Success     200 {object} checklistResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/items/{id}/checklist/toggle [POST]
func (h *handler) ToggleChecklistItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.ToggleChecklistItem(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ToggleChecklistItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChecklistResp(output))
}

// ResetChecklist godoc
// @Summary     Reset the checklist
// @Description Unchecks every checklist row of the item.
// @Tags        Checklist
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} checklistResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/items/{id}/checklist/reset [POST]
func (h *handler) ResetChecklist(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ResetChecklist(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.ResetChecklist: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChecklistResp(output))
}

// AddChecklistItem godoc
// @Summary     Add a checklist row
// @Description Inserts an unchecked row after the last checklist row, or starts a checklist at the end.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Item ID"
// @Param       body body addItemReq true "New row"
// @Success     200 {object} checklistResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/items/{id}/checklist/items [POST]
func (h *handler) AddChecklistItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddItemReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.AddChecklistItem(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.AddChecklistItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChecklistResp(output))
}

// InsertTimestamp godoc
// @Summary     Insert a timestamp
// @Description Inserts the current time, or a date expression such as "tomorrow", at the cursor offset.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path string       true  "Item ID"
// @Param       body body timestampReq false "Cursor and optional date expression"
// @Success     200 {object} timestampResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/items/{id}/timestamp [POST]
func (h *handler) InsertTimestamp(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTimestampReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.InsertTimestamp(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.InsertTimestamp: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTimestampResp(output))
}

// badRequest reports request binding and validation failures.
func (h *handler) badRequest(c *gin.Context, err error) {
	if _, ok := pkgErrors.AsHTTPError(err); ok {
		response.Error(c, err)
		return
	}
	response.ValidationError(c, err)
}
