package repository

import (
	"context"

	"github.com/google/uuid"

	"camphq/platform/internal/model"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *model.Venue) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Venue, error)
	Update(ctx context.Context, venue *model.Venue) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByLicensee(ctx context.Context, licenseeID uuid.UUID, page Page) ([]model.Venue, int64, error)
}
