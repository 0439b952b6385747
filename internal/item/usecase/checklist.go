package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"item-checklist/internal/checklist"
	"item-checklist/internal/description"
	"item-checklist/internal/item"
	"item-checklist/pkg/stamp"
)

// ToggleChecklistItem flips one checklist row. Rows are addressed by index
// when given, otherwise by display text. A display text that matches no row
// leaves the description unchanged.
func (uc *implUseCase) ToggleChecklistItem(ctx context.Context, input item.ToggleChecklistItemInput) (item.ChecklistOutput, error) {
	if input.Index == nil && input.Text == "" {
		return item.ChecklistOutput{}, item.ErrInvalidPayload
	}

	it, err := uc.mutate(ctx, input.ID, func(d string) (string, error) {
		if input.Index != nil {
			next, err := uc.checklist.ToggleLine(d, *input.Index)
			if errors.Is(err, checklist.ErrItemNotFound) {
				return d, item.ErrChecklistItemNotFound
			}
			return next, err
		}
		return uc.checklist.Toggle(d, input.Text), nil
	})
	if err != nil {
		return item.ChecklistOutput{}, err
	}

	return uc.buildChecklist(it), nil
}

// ResetChecklist unchecks every row.
func (uc *implUseCase) ResetChecklist(ctx context.Context, id string) (item.ChecklistOutput, error) {
	it, err := uc.mutate(ctx, id, func(d string) (string, error) {
		return uc.checklist.Reset(d), nil
	})
	if err != nil {
		return item.ChecklistOutput{}, err
	}

	return uc.buildChecklist(it), nil
}

// AddChecklistItem appends an unchecked row after the last one.
func (uc *implUseCase) AddChecklistItem(ctx context.Context, input item.AddChecklistItemInput) (item.ChecklistOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return item.ChecklistOutput{}, item.ErrEmptyItemText
	}

	it, err := uc.mutate(ctx, input.ID, func(d string) (string, error) {
		return uc.checklist.AddItem(d, input.Text), nil
	})
	if err != nil {
		return item.ChecklistOutput{}, err
	}

	return uc.buildChecklist(it), nil
}

// InsertTimestamp inserts the current time (or a resolved date expression)
// at the cursor position.
func (uc *implUseCase) InsertTimestamp(ctx context.Context, input item.InsertTimestampInput) (item.InsertTimestampOutput, error) {
	ts, err := uc.stamper.StampExpr(input.Expr, uc.now())
	if err != nil {
		if errors.Is(err, stamp.ErrUnknownExpr) {
			return item.InsertTimestampOutput{}, item.ErrInvalidDateExpr
		}
		uc.l.Errorf(ctx, "uc.InsertTimestamp StampExpr: %v", err)
		return item.InsertTimestampOutput{}, err
	}

	var cursor int
	it, err := uc.mutate(ctx, input.ID, func(d string) (string, error) {
		cursor = min(max(input.Cursor, 0), utf8.RuneCountInString(d))
		return description.InsertAt(d, cursor, ts), nil
	})
	if err != nil {
		return item.InsertTimestampOutput{}, err
	}

	return item.InsertTimestampOutput{
		Item:      it,
		Timestamp: ts,
		Cursor:    cursor + utf8.RuneCountInString(ts),
	}, nil
}
