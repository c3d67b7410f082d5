package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
	"camphq/platform/internal/repository"
)

type LmsModuleInput struct {
	Title         string
	Position      int
	ContentURL    string
	PassThreshold int
}

// ModuleProgress pairs a module with the user's progress row, if any.
type ModuleProgress struct {
	Module   model.LmsModule    `json:"module"`
	Progress *model.LmsProgress `json:"progress,omitempty"`
}

// CourseSummary is the per-user rollup across all modules.
type CourseSummary struct {
	Modules          []ModuleProgress `json:"modules"`
	CompletedModules int              `json:"completed_modules"`
	TotalModules     int              `json:"total_modules"`
	PercentComplete  int              `json:"percent_complete"`
}

type LmsService interface {
	CreateModule(ctx context.Context, input LmsModuleInput) (*model.LmsModule, error)
	UpdateModule(ctx context.Context, id uuid.UUID, input LmsModuleInput) (*model.LmsModule, error)
	DeleteModule(ctx context.Context, id uuid.UUID) error
	ListModules(ctx context.Context) ([]model.LmsModule, error)

	// RecordProgress clamps percent to [0,100] and never lets it decrease.
	// CompletedAt latches once percent reaches the module threshold.
	RecordProgress(ctx context.Context, userID, moduleID uuid.UUID, percent int) (*model.LmsProgress, error)
	Summary(ctx context.Context, userID uuid.UUID) (*CourseSummary, error)
}

type lmsService struct {
	lmsRepo repository.LmsRepository
	now     nowFunc
}

func NewLmsService(lmsRepo repository.LmsRepository) LmsService {
	return &lmsService{lmsRepo: lmsRepo, now: defaultNow}
}

func (s *lmsService) CreateModule(ctx context.Context, input LmsModuleInput) (*model.LmsModule, error) {
	threshold := input.PassThreshold
	if threshold <= 0 || threshold > 100 {
		threshold = 100
	}
	mod := &model.LmsModule{
		Title:         input.Title,
		Position:      input.Position,
		ContentURL:    input.ContentURL,
		PassThreshold: threshold,
	}
	if err := s.lmsRepo.CreateModule(ctx, mod); err != nil {
		return nil, fmt.Errorf("create module: %w", err)
	}
	return mod, nil
}

func (s *lmsService) UpdateModule(ctx context.Context, id uuid.UUID, input LmsModuleInput) (*model.LmsModule, error) {
	mod, err := s.lmsRepo.GetModule(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Title != "" {
		mod.Title = input.Title
	}
	if input.Position > 0 {
		mod.Position = input.Position
	}
	if input.ContentURL != "" {
		mod.ContentURL = input.ContentURL
	}
	if input.PassThreshold > 0 && input.PassThreshold <= 100 {
		mod.PassThreshold = input.PassThreshold
	}

	if err := s.lmsRepo.UpdateModule(ctx, mod); err != nil {
		return nil, fmt.Errorf("update module: %w", err)
	}
	return mod, nil
}

func (s *lmsService) DeleteModule(ctx context.Context, id uuid.UUID) error {
	return s.lmsRepo.DeleteModule(ctx, id)
}

func (s *lmsService) ListModules(ctx context.Context) ([]model.LmsModule, error) {
	return s.lmsRepo.ListModules(ctx)
}

func (s *lmsService) RecordProgress(ctx context.Context, userID, moduleID uuid.UUID, percent int) (*model.LmsProgress, error) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	mod, err := s.lmsRepo.GetModule(ctx, moduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	progress, err := s.lmsRepo.GetProgress(ctx, userID, moduleID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lookup progress: %w", err)
		}
		progress = &model.LmsProgress{UserID: userID, ModuleID: moduleID}
	}

	if percent > progress.Percent {
		progress.Percent = percent
	}
	if progress.CompletedAt == nil && progress.Percent >= mod.PassThreshold {
		now := s.now()
		progress.CompletedAt = &now
	}

	if err := s.lmsRepo.SaveProgress(ctx, progress); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}
	return progress, nil
}

func (s *lmsService) Summary(ctx context.Context, userID uuid.UUID) (*CourseSummary, error) {
	mods, err := s.lmsRepo.ListModules(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.lmsRepo.ListProgressByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byModule := make(map[uuid.UUID]*model.LmsProgress, len(rows))
	for i := range rows {
		byModule[rows[i].ModuleID] = &rows[i]
	}

	summary := &CourseSummary{TotalModules: len(mods)}
	for _, mod := range mods {
		mp := ModuleProgress{Module: mod}
		if p, ok := byModule[mod.ID]; ok {
			mp.Progress = p
			if p.CompletedAt != nil {
				summary.CompletedModules++
			}
		}
		summary.Modules = append(summary.Modules, mp)
	}
	if summary.TotalModules > 0 {
		summary.PercentComplete = summary.CompletedModules * 100 / summary.TotalModules
	}
	return summary, nil
}
