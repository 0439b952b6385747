package usecase

import (
	"time"

	"item-checklist/internal/checklist"
	"item-checklist/internal/item/repository"
	"item-checklist/pkg/log"
	"item-checklist/pkg/stamp"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo      repository.Repository
	checklist checklist.Service
	stamper   *stamp.Stamper
	l         log.Logger
	now       func() time.Time
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, checklistSvc checklist.Service, stamper *stamp.Stamper, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		checklist: checklistSvc,
		stamper:   stamper,
		l:         l,
		now:       time.Now,
	}
}
