package repository

import (
	"context"

	"github.com/google/uuid"

	"camphq/platform/internal/model"
)

type LmsRepository interface {
	CreateModule(ctx context.Context, mod *model.LmsModule) error
	GetModule(ctx context.Context, id uuid.UUID) (*model.LmsModule, error)
	UpdateModule(ctx context.Context, mod *model.LmsModule) error
	DeleteModule(ctx context.Context, id uuid.UUID) error
	ListModules(ctx context.Context) ([]model.LmsModule, error)

	GetProgress(ctx context.Context, userID, moduleID uuid.UUID) (*model.LmsProgress, error)
	SaveProgress(ctx context.Context, progress *model.LmsProgress) error
	ListProgressByUser(ctx context.Context, userID uuid.UUID) ([]model.LmsProgress, error)
}
