package repository

import (
	"context"

	"github.com/google/uuid"

	"camphq/platform/internal/model"
)

type RegistrationRepository interface {
	Create(ctx context.Context, reg *model.Registration) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Registration, error)
	GetByCampAndAthlete(ctx context.Context, campID, athleteID uuid.UUID) (*model.Registration, error)
	Update(ctx context.Context, reg *model.Registration) error
	ListByCamp(ctx context.Context, campID uuid.UUID, page Page) ([]model.Registration, int64, error)
	ListConfirmedByCamp(ctx context.Context, campID uuid.UUID) ([]model.Registration, error)
	ListByParent(ctx context.Context, parentUserID uuid.UUID) ([]model.Registration, error)
	ListAll(ctx context.Context) ([]model.Registration, error)
	CountConfirmed(ctx context.Context, campID uuid.UUID) (int64, error)
}
