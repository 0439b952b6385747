package memory

import (
	"context"

	"github.com/google/uuid"

	"item-checklist/internal/item"
	repo "item-checklist/internal/item/repository"
)

// CreateItem stores a new Item under a fresh UUID.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}

	now := r.now()
	it := item.Item{
		ID:          uuid.NewString(),
		Name:        opt.Name,
		Description: opt.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[it.ID] = it
	r.order = append(r.order, it.ID)
	return it, nil
}

// GetOneItem retrieves a single Item by the provided filters (AND condition).
// Returns zero-value Item (ID == "") when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, repo.ErrFailedToGet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if opt.ID != "" {
		it, ok := r.items[opt.ID]
		if !ok || (opt.Name != "" && it.Name != opt.Name) {
			return item.Item{}, nil
		}
		return it, nil
	}

	for _, id := range r.order {
		if it := r.items[id]; opt.Name == "" || it.Name == opt.Name {
			return it, nil
		}
	}
	return item.Item{}, nil
}

// ListItems returns a page of Items in creation order and the total count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, int, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	total := len(r.order)
	start := min(max(opt.Offset, 0), total)
	end := total
	if opt.Limit > 0 {
		end = min(start+opt.Limit, total)
	}

	items := make([]item.Item, 0, end-start)
	for _, id := range r.order[start:end] {
		items = append(items, r.items[id])
	}
	return items, total, nil
}

// UpdateItem overwrites name and description of an existing Item.
// Returns zero-value Item when the id is unknown.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[opt.ID]
	if !ok {
		return item.Item{}, nil
	}
	it.Name = opt.Name
	it.Description = opt.Description
	it.UpdatedAt = r.now()
	r.items[it.ID] = it
	return it, nil
}

// MutateDescription applies fn to the current description under the store
// lock. UpdatedAt only moves when the description actually changes.
func (r *implRepository) MutateDescription(ctx context.Context, id string, fn repo.MutateFunc) (item.Item, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MutateDescription"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok {
		return item.Item{}, nil
	}

	next, err := fn(it.Description)
	if err != nil {
		return it, err
	}
	if next != it.Description {
		it.Description = next
		it.UpdatedAt = r.now()
		r.items[id] = it
	}
	return it, nil
}
