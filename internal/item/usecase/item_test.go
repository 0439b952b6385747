package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"item-checklist/internal/item"
)

func TestCreate(t *testing.T) {
	uc := newTestUseCase(t, nil)
	ctx := context.Background()

	out, err := uc.Create(ctx, item.CreateItemInput{Name: "  Groceries ", Description: "notes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Item.ID == "" || out.Item.Name != "Groceries" || out.Item.Description != "notes" {
		t.Errorf("unexpected item: %+v", out.Item)
	}

	if _, err := uc.Create(ctx, item.CreateItemInput{Name: "  "}); !errors.Is(err, item.ErrInvalidPayload) {
		t.Errorf("expected ErrInvalidPayload for blank name, got %v", err)
	}
}

func TestList(t *testing.T) {
	uc := newTestUseCase(t, nil)
	for i := 0; i < 3; i++ {
		createItem(t, uc, "")
	}

	out, err := uc.List(context.Background(), item.ListItemsInput{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Total != 3 || len(out.Items) != 2 || out.Limit != 2 {
		t.Errorf("unexpected list output: total=%d items=%d limit=%d", out.Total, len(out.Items), out.Limit)
	}
}

func TestDetail(t *testing.T) {
	uc := newTestUseCase(t, nil)
	it := createItem(t, uc, "See https://example.com/shot.png\nsubtask #4\n- [x] a\n- [ ] b")
	uc.now = func() time.Time { return it.UpdatedAt.Add(3 * time.Minute) }

	out, err := uc.Detail(context.Background(), it.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Stats.Total != 2 || out.Stats.Completed != 1 {
		t.Errorf("unexpected stats: %+v", out.Stats)
	}
	if len(out.Checkboxes) != 2 || out.Checkboxes[1].Text != "b" {
		t.Errorf("unexpected checkboxes: %+v", out.Checkboxes)
	}
	if !reflect.DeepEqual(out.Images, []string{"https://example.com/shot.png"}) {
		t.Errorf("unexpected images: %v", out.Images)
	}
	if !reflect.DeepEqual(out.Subtasks, []int{4}) {
		t.Errorf("unexpected subtasks: %v", out.Subtasks)
	}
	if out.UpdatedAgo != "3 minutes ago" {
		t.Errorf("UpdatedAgo = %q", out.UpdatedAgo)
	}

	if _, err := uc.Detail(context.Background(), "missing"); !errors.Is(err, item.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := uc.Detail(context.Background(), ""); !errors.Is(err, item.ErrInvalidPayload) {
		t.Errorf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestUpdateDescription(t *testing.T) {
	uc := newTestUseCase(t, nil)
	it := createItem(t, uc, "old")

	out, err := uc.UpdateDescription(context.Background(), item.UpdateDescriptionInput{ID: it.ID, Description: "new"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Item.Description != "new" {
		t.Errorf("description = %q", out.Item.Description)
	}

	_, err = uc.UpdateDescription(context.Background(), item.UpdateDescriptionInput{ID: "missing"})
	if !errors.Is(err, item.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestRepositoryFailures(t *testing.T) {
	uc := newTestUseCase(t, failingRepo{})
	ctx := context.Background()

	if _, err := uc.Create(ctx, item.CreateItemInput{Name: "a"}); !errors.Is(err, errStore) {
		t.Errorf("Create: expected store error, got %v", err)
	}
	if _, err := uc.List(ctx, item.ListItemsInput{}); !errors.Is(err, errStore) {
		t.Errorf("List: expected store error, got %v", err)
	}
	if _, err := uc.Detail(ctx, "id"); !errors.Is(err, errStore) {
		t.Errorf("Detail: expected store error, got %v", err)
	}
	if _, err := uc.ResetChecklist(ctx, "id"); !errors.Is(err, errStore) {
		t.Errorf("ResetChecklist: expected store error, got %v", err)
	}
}
