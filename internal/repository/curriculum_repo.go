package repository

import (
	"context"

	"github.com/google/uuid"

	"camphq/platform/internal/model"
)

type CurriculumRepository interface {
	CreateTemplate(ctx context.Context, tpl *model.CurriculumTemplate) error
	GetTemplate(ctx context.Context, id uuid.UUID) (*model.CurriculumTemplate, error)
	UpdateTemplate(ctx context.Context, tpl *model.CurriculumTemplate) error
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	ListTemplates(ctx context.Context, licenseeID uuid.UUID, page Page) ([]model.CurriculumTemplate, int64, error)

	CreateBlock(ctx context.Context, block *model.CurriculumBlock) error
	GetBlock(ctx context.Context, id uuid.UUID) (*model.CurriculumBlock, error)
	UpdateBlock(ctx context.Context, block *model.CurriculumBlock) error
	DeleteBlock(ctx context.Context, id uuid.UUID) error
	ListBlocks(ctx context.Context, templateID uuid.UUID) ([]model.CurriculumBlock, error)
	MaxBlockPosition(ctx context.Context, templateID uuid.UUID) (int, error)
}
