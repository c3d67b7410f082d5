package repository

import (
	"context"

	"github.com/google/uuid"

	"camphq/platform/internal/model"
)

type TerritoryRepository interface {
	Create(ctx context.Context, territory *model.Territory) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Territory, error)
	Update(ctx context.Context, territory *model.Territory) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.Territory, error)
}

type LicenseeRepository interface {
	Create(ctx context.Context, licensee *model.Licensee) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Licensee, error)
	Update(ctx context.Context, licensee *model.Licensee) error
	List(ctx context.Context, page Page) ([]model.Licensee, int64, error)
	CountActiveByTerritory(ctx context.Context, territoryID uuid.UUID) (int64, error)
}

type LicenseeApplicationRepository interface {
	Create(ctx context.Context, app *model.LicenseeApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.LicenseeApplication, error)
	Update(ctx context.Context, app *model.LicenseeApplication) error
	List(ctx context.Context, status *model.ApplicationStatus, page Page) ([]model.LicenseeApplication, int64, error)
}
