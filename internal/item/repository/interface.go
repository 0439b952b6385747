package repository

import (
	"context"

	"item-checklist/internal/item"
)

// Repository is the composed interface for the item data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
// Lookups return a zero-value Item (ID == "") when nothing matches.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (item.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (item.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]item.Item, int, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (item.Item, error)

	// MutateDescription runs a read-transform-write cycle on one item's
	// description. Cycles on the store never interleave.
	MutateDescription(ctx context.Context, id string, fn MutateFunc) (item.Item, error)
}

// MutateFunc receives the current description and returns its replacement.
// Returning an error aborts the write and is passed back to the caller.
type MutateFunc func(description string) (string, error)
