package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Item
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	List(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	UpdateDescription(ctx context.Context, input UpdateDescriptionInput) (UpdateDescriptionOutput, error)

	// Checklist
	ToggleChecklistItem(ctx context.Context, input ToggleChecklistItemInput) (ChecklistOutput, error)
	ResetChecklist(ctx context.Context, id string) (ChecklistOutput, error)
	AddChecklistItem(ctx context.Context, input AddChecklistItemInput) (ChecklistOutput, error)

	// Description editing
	InsertTimestamp(ctx context.Context, input InsertTimestampInput) (InsertTimestampOutput, error)
}
