package http

import (
	"item-checklist/internal/checklist"
	"item-checklist/internal/item"
	"item-checklist/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"        binding:"required,min=1,max=256"`
	Description string `json:"description" binding:"max=65536"`
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
	}
}

// ---

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) toInput() item.ListItemsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return item.ListItemsInput{
		Limit:  limit,
		Offset: offset,
	}
}

// ---

type updateDescriptionReq struct {
	ID          string `json:"-"` // populated from URI param
	Description string `json:"description" binding:"max=65536"`
}

func (r updateDescriptionReq) toInput() item.UpdateDescriptionInput {
	return item.UpdateDescriptionInput{
		ID:          r.ID,
		Description: r.Description,
	}
}

// ---

// toggleReq addresses the clicked row. Index is the row position among
// checklist rows; Text is the row's display text.
type toggleReq struct {
	ID    string `json:"-"`
	Index *int   `json:"index" binding:"omitempty,min=0"`
	Text  string `json:"text"`
}

func (r toggleReq) validate() error {
	if r.Index == nil && r.Text == "" {
		return errInvalidPayload
	}
	return nil
}

func (r toggleReq) toInput() item.ToggleChecklistItemInput {
	return item.ToggleChecklistItemInput{
		ID:    r.ID,
		Index: r.Index,
		Text:  r.Text,
	}
}

// ---

type addItemReq struct {
	ID   string `json:"-"`
	Text string `json:"text" binding:"required,max=1000"`
}

func (r addItemReq) toInput() item.AddChecklistItemInput {
	return item.AddChecklistItemInput{
		ID:   r.ID,
		Text: r.Text,
	}
}

// ---

type timestampReq struct {
	ID     string `json:"-"`
	Cursor int    `json:"cursor"`
	At     string `json:"at"`
}

func (r timestampReq) toInput() item.InsertTimestampInput {
	return item.InsertTimestampInput{
		ID:     r.ID,
		Cursor: r.Cursor,
		Expr:   r.At,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		CreatedAt:   response.DateTime(it.CreatedAt),
		UpdatedAt:   response.DateTime(it.UpdatedAt),
	}
}

type checkboxResp struct {
	Index   int    `json:"index"`
	Line    int    `json:"line"`
	Checked bool   `json:"checked"`
	Text    string `json:"text"`
}

func newCheckboxResps(cbs []checklist.Checkbox) []checkboxResp {
	out := make([]checkboxResp, len(cbs))
	for i, cb := range cbs {
		out[i] = checkboxResp{
			Index:   cb.Index,
			Line:    cb.Line,
			Checked: cb.Checked,
			Text:    cb.Text,
		}
	}
	return out
}

type statsResp struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Progress  float64 `json:"progress"`
}

func newStatsResp(s checklist.ChecklistStats) statsResp {
	return statsResp{
		Total:     s.Total,
		Completed: s.Completed,
		Pending:   s.Pending,
		Progress:  s.Progress,
	}
}

type createResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newCreateResp(out item.CreateItemOutput) createResp {
	return createResp{Item: newItemResp(out.Item)}
}

type listResp struct {
	Items  []itemResp `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out item.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return listResp{
		Items:  items,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Item       itemResp       `json:"item"`
	Checkboxes []checkboxResp `json:"checkboxes"`
	Stats      statsResp      `json:"stats"`
	Links      []string       `json:"links"`
	Images     []string       `json:"images"`
	Subtasks   []int          `json:"subtasks"`
	UpdatedAgo string         `json:"updated_ago"`
}

func (h *handler) newDetailResp(out item.DetailItemOutput) detailResp {
	return detailResp{
		Item:       newItemResp(out.Item),
		Checkboxes: newCheckboxResps(out.Checkboxes),
		Stats:      newStatsResp(out.Stats),
		Links:      out.Links,
		Images:     out.Images,
		Subtasks:   out.Subtasks,
		UpdatedAgo: out.UpdatedAgo,
	}
}

type updateDescriptionResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newUpdateDescriptionResp(out item.UpdateDescriptionOutput) updateDescriptionResp {
	return updateDescriptionResp{Item: newItemResp(out.Item)}
}

type checklistResp struct {
	Item       itemResp       `json:"item"`
	Checkboxes []checkboxResp `json:"checkboxes"`
	Stats      statsResp      `json:"stats"`
}

func (h *handler) newChecklistResp(out item.ChecklistOutput) checklistResp {
	return checklistResp{
		Item:       newItemResp(out.Item),
		Checkboxes: newCheckboxResps(out.Checkboxes),
		Stats:      newStatsResp(out.Stats),
	}
}

type timestampResp struct {
	Item      itemResp `json:"item"`
	Timestamp string   `json:"timestamp"`
	Cursor    int      `json:"cursor"`
}

func (h *handler) newTimestampResp(out item.InsertTimestampOutput) timestampResp {
	return timestampResp{
		Item:      newItemResp(out.Item),
		Timestamp: out.Timestamp,
		Cursor:    out.Cursor,
	}
}
