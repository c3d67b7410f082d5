package repository

import (
	"context"

	"github.com/google/uuid"

	"camphq/platform/internal/model"
)

type AthleteRepository interface {
	Create(ctx context.Context, athlete *model.Athlete) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Athlete, error)
	Update(ctx context.Context, athlete *model.Athlete) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page Page) ([]model.Athlete, int64, error)
	ListByParent(ctx context.Context, parentUserID uuid.UUID) ([]model.Athlete, error)
	ListAll(ctx context.Context) ([]model.Athlete, error)
}
