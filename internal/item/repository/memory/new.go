package memory

import (
	"sync"
	"time"

	"item-checklist/internal/item"
	"item-checklist/internal/item/repository"
	"item-checklist/pkg/log"
)

// implRepository keeps items in process memory. It is the state holder the
// checklist engine reads from and writes back to; nothing survives a
// restart.
type implRepository struct {
	l   log.Logger
	now func() time.Time

	mu    sync.Mutex
	items map[string]item.Item
	order []string // insertion order, oldest first
}

// New creates an empty in-memory repository.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		l:     l,
		now:   time.Now,
		items: make(map[string]item.Item),
	}
}

func (r *implRepository) dsn(method string) string {
	return "internal.item.repository.memory." + method
}
