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

type CurriculumTemplateInput struct {
	Name   string
	Sport  string
	AgeMin int
	AgeMax int
}

type CurriculumBlockInput struct {
	Title           string
	DurationMinutes int
	Description     string
	VideoURL        string
	Position        int // 0 appends to the end
}

type CurriculumService interface {
	CreateTemplate(ctx context.Context, licenseeID uuid.UUID, input CurriculumTemplateInput) (*model.CurriculumTemplate, error)
	GetTemplate(ctx context.Context, id uuid.UUID) (*model.CurriculumTemplate, error)
	UpdateTemplate(ctx context.Context, id uuid.UUID, input CurriculumTemplateInput) (*model.CurriculumTemplate, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	ListTemplates(ctx context.Context, licenseeID uuid.UUID, page repository.Page) ([]model.CurriculumTemplate, int64, error)

	AddBlock(ctx context.Context, templateID uuid.UUID, input CurriculumBlockInput) (*model.CurriculumBlock, error)
	UpdateBlock(ctx context.Context, blockID uuid.UUID, input CurriculumBlockInput) (*model.CurriculumBlock, error)
	DeleteBlock(ctx context.Context, blockID uuid.UUID) error
	ListBlocks(ctx context.Context, templateID uuid.UUID) ([]model.CurriculumBlock, error)
}

type curriculumService struct {
	curriculumRepo repository.CurriculumRepository
}

func NewCurriculumService(curriculumRepo repository.CurriculumRepository) CurriculumService {
	return &curriculumService{curriculumRepo: curriculumRepo}
}

func (s *curriculumService) CreateTemplate(ctx context.Context, licenseeID uuid.UUID, input CurriculumTemplateInput) (*model.CurriculumTemplate, error) {
	tpl := &model.CurriculumTemplate{
		LicenseeID: licenseeID,
		Name:       input.Name,
		Sport:      input.Sport,
		AgeMin:     input.AgeMin,
		AgeMax:     input.AgeMax,
	}
	if err := s.curriculumRepo.CreateTemplate(ctx, tpl); err != nil {
		return nil, fmt.Errorf("create curriculum template: %w", err)
	}
	return tpl, nil
}

func (s *curriculumService) GetTemplate(ctx context.Context, id uuid.UUID) (*model.CurriculumTemplate, error) {
	tpl, err := s.curriculumRepo.GetTemplate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tpl, nil
}

func (s *curriculumService) UpdateTemplate(ctx context.Context, id uuid.UUID, input CurriculumTemplateInput) (*model.CurriculumTemplate, error) {
	tpl, err := s.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		tpl.Name = input.Name
	}
	if input.Sport != "" {
		tpl.Sport = input.Sport
	}
	if input.AgeMin > 0 {
		tpl.AgeMin = input.AgeMin
	}
	if input.AgeMax > 0 {
		tpl.AgeMax = input.AgeMax
	}

	if err := s.curriculumRepo.UpdateTemplate(ctx, tpl); err != nil {
		return nil, fmt.Errorf("update curriculum template: %w", err)
	}
	return tpl, nil
}

func (s *curriculumService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return s.curriculumRepo.DeleteTemplate(ctx, id)
}

func (s *curriculumService) ListTemplates(ctx context.Context, licenseeID uuid.UUID, page repository.Page) ([]model.CurriculumTemplate, int64, error) {
	return s.curriculumRepo.ListTemplates(ctx, licenseeID, page)
}

func (s *curriculumService) AddBlock(ctx context.Context, templateID uuid.UUID, input CurriculumBlockInput) (*model.CurriculumBlock, error) {
	if _, err := s.GetTemplate(ctx, templateID); err != nil {
		return nil, err
	}

	position := input.Position
	if position <= 0 {
		max, err := s.curriculumRepo.MaxBlockPosition(ctx, templateID)
		if err != nil {
			return nil, fmt.Errorf("next block position: %w", err)
		}
		position = max + 1
	}

	block := &model.CurriculumBlock{
		TemplateID:      templateID,
		Position:        position,
		Title:           input.Title,
		DurationMinutes: input.DurationMinutes,
		Description:     input.Description,
		VideoURL:        input.VideoURL,
	}
	if block.DurationMinutes <= 0 {
		block.DurationMinutes = 15
	}
	if err := s.curriculumRepo.CreateBlock(ctx, block); err != nil {
		return nil, fmt.Errorf("create block: %w", err)
	}
	return block, nil
}

func (s *curriculumService) UpdateBlock(ctx context.Context, blockID uuid.UUID, input CurriculumBlockInput) (*model.CurriculumBlock, error) {
	block, err := s.curriculumRepo.GetBlock(ctx, blockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Title != "" {
		block.Title = input.Title
	}
	if input.DurationMinutes > 0 {
		block.DurationMinutes = input.DurationMinutes
	}
	if input.Description != "" {
		block.Description = input.Description
	}
	if input.VideoURL != "" {
		block.VideoURL = input.VideoURL
	}
	if input.Position > 0 {
		block.Position = input.Position
	}

	if err := s.curriculumRepo.UpdateBlock(ctx, block); err != nil {
		return nil, fmt.Errorf("update block: %w", err)
	}
	return block, nil
}

func (s *curriculumService) DeleteBlock(ctx context.Context, blockID uuid.UUID) error {
	return s.curriculumRepo.DeleteBlock(ctx, blockID)
}

func (s *curriculumService) ListBlocks(ctx context.Context, templateID uuid.UUID) ([]model.CurriculumBlock, error) {
	return s.curriculumRepo.ListBlocks(ctx, templateID)
}
