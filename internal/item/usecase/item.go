package usecase

import (
	"context"
	"strings"

	"item-checklist/internal/item"
	repo "item-checklist/internal/item/repository"
)

// Create creates a new Item.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return item.CreateItemOutput{}, item.ErrInvalidPayload
	}

	it, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        name,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: item %s created", it.ID)
	return item.CreateItemOutput{Item: it}, nil
}

// List returns a paginated list of Items.
func (uc *implUseCase) List(ctx context.Context, input item.ListItemsInput) (item.ListItemsOutput, error) {
	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	return item.ListItemsOutput{
		Items:  items,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Detail retrieves a single Item with everything the item page shows next
// to the description. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.DetailItemOutput, error) {
	it, err := uc.getItem(ctx, id)
	if err != nil {
		return item.DetailItemOutput{}, err
	}
	return uc.buildDetail(it), nil
}

// UpdateDescription replaces the whole description, as the edit form does.
func (uc *implUseCase) UpdateDescription(ctx context.Context, input item.UpdateDescriptionInput) (item.UpdateDescriptionOutput, error) {
	it, err := uc.mutate(ctx, input.ID, func(string) (string, error) {
		return input.Description, nil
	})
	if err != nil {
		return item.UpdateDescriptionOutput{}, err
	}
	return item.UpdateDescriptionOutput{Item: it}, nil
}
