package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"item-checklist/internal/checklist"
	"item-checklist/internal/item"
	"item-checklist/internal/item/repository"
	"item-checklist/internal/item/repository/memory"
	"item-checklist/pkg/stamp"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// failingRepo fails every call.
type failingRepo struct{}

var errStore = errors.New("store down")

func (failingRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (item.Item, error) {
	return item.Item{}, errStore
}
func (failingRepo) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (item.Item, error) {
	return item.Item{}, errStore
}
func (failingRepo) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]item.Item, int, error) {
	return nil, 0, errStore
}
func (failingRepo) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (item.Item, error) {
	return item.Item{}, errStore
}
func (failingRepo) MutateDescription(ctx context.Context, id string, fn repository.MutateFunc) (item.Item, error) {
	return item.Item{}, errStore
}

func newTestUseCase(t *testing.T, repo repository.Repository) *implUseCase {
	t.Helper()
	stamper, err := stamp.New("UTC", "")
	if err != nil {
		t.Fatalf("stamp.New: %v", err)
	}
	l := &mockLogger{}
	if repo == nil {
		repo = memory.New(l)
	}
	uc := New(repo, checklist.New(), stamper, l)
	uc.now = func() time.Time { return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) }
	return uc
}

func createItem(t *testing.T, uc *implUseCase, desc string) item.Item {
	t.Helper()
	out, err := uc.Create(context.Background(), item.CreateItemInput{Name: "item", Description: desc})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return out.Item
}
