package usecase

import (
	"context"
	"errors"

	"github.com/dustin/go-humanize"

	"item-checklist/internal/description"
	"item-checklist/internal/item"
	repo "item-checklist/internal/item/repository"
)

// getItem loads an item and turns a miss into ErrItemNotFound.
func (uc *implUseCase) getItem(ctx context.Context, id string) (item.Item, error) {
	if id == "" {
		return item.Item{}, item.ErrInvalidPayload
	}

	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getItem GetOneItem: %v", err)
		return item.Item{}, err
	}
	if it.ID == "" {
		return item.Item{}, item.ErrItemNotFound
	}
	return it, nil
}

// mutate runs fn as one read-transform-write cycle on the item description.
func (uc *implUseCase) mutate(ctx context.Context, id string, fn repo.MutateFunc) (item.Item, error) {
	if id == "" {
		return item.Item{}, item.ErrInvalidPayload
	}

	it, err := uc.repo.MutateDescription(ctx, id, fn)
	if err != nil {
		if isDomainError(err) {
			return item.Item{}, err
		}
		uc.l.Errorf(ctx, "uc.mutate MutateDescription: %v", err)
		return item.Item{}, err
	}
	if it.ID == "" {
		return item.Item{}, item.ErrItemNotFound
	}
	return it, nil
}

func (uc *implUseCase) buildChecklist(it item.Item) item.ChecklistOutput {
	return item.ChecklistOutput{
		Item:       it,
		Checkboxes: uc.checklist.ParseCheckboxes(it.Description),
		Stats:      uc.checklist.GetStats(it.Description),
	}
}

func (uc *implUseCase) buildDetail(it item.Item) item.DetailItemOutput {
	links := description.Links(it.Description)
	return item.DetailItemOutput{
		Item:       it,
		Checkboxes: uc.checklist.ParseCheckboxes(it.Description),
		Stats:      uc.checklist.GetStats(it.Description),
		Links:      links,
		Images:     description.Images(links),
		Subtasks:   description.SubtaskRefs(it.Description),
		UpdatedAgo: humanize.RelTime(it.UpdatedAt, uc.now(), "ago", "from now"),
	}
}

func isDomainError(err error) bool {
	return errors.Is(err, item.ErrChecklistItemNotFound) ||
		errors.Is(err, item.ErrInvalidPayload)
}
