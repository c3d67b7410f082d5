package repository

import (
	"context"

	"github.com/google/uuid"

	"camphq/platform/internal/model"
)

type CampRepository interface {
	Create(ctx context.Context, camp *model.Camp) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Camp, error)
	Update(ctx context.Context, camp *model.Camp) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, licenseeID *uuid.UUID, page Page) ([]model.Camp, int64, error)

	CreateDay(ctx context.Context, day *model.CampDay) error
	GetDay(ctx context.Context, id uuid.UUID) (*model.CampDay, error)
	ListDays(ctx context.Context, campID uuid.UUID) ([]model.CampDay, error)
}
