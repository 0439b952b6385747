package item

import (
	"time"

	"item-checklist/internal/checklist"
)

// --- Item Domain Model ---

// Item is a task-tracking item whose description embeds a checklist.
type Item struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Description string
}

type ListItemsInput struct {
	Limit  int
	Offset int
}

type UpdateDescriptionInput struct {
	ID          string
	Description string
}

// ToggleChecklistItemInput addresses a row either by its index among
// checklist lines or by its display text. Index wins when both are set.
type ToggleChecklistItemInput struct {
	ID    string
	Index *int
	Text  string
}

type AddChecklistItemInput struct {
	ID   string
	Text string
}

// InsertTimestampInput inserts a stamp at a rune offset. Expr is an
// optional date expression ("tomorrow", "next friday"); empty means now.
type InsertTimestampInput struct {
	ID     string
	Cursor int
	Expr   string
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items  []Item
	Total  int
	Limit  int
	Offset int
}

type DetailItemOutput struct {
	Item       Item
	Checkboxes []checklist.Checkbox
	Stats      checklist.ChecklistStats
	Links      []string
	Images     []string
	Subtasks   []int
	UpdatedAgo string
}

type UpdateDescriptionOutput struct {
	Item Item
}

type ChecklistOutput struct {
	Item       Item
	Checkboxes []checklist.Checkbox
	Stats      checklist.ChecklistStats
}

type InsertTimestampOutput struct {
	Item      Item
	Timestamp string
	Cursor    int // rune offset right after the inserted stamp
}
