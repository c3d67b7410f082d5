package repository

import (
	"context"

	"github.com/google/uuid"

	"camphq/platform/internal/model"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context, page Page) ([]model.Product, int64, error)
	List(ctx context.Context, page Page) ([]model.Product, int64, error)

	CreateVariant(ctx context.Context, variant *model.ProductVariant) error
	GetVariant(ctx context.Context, id uuid.UUID) (*model.ProductVariant, error)
	UpdateVariant(ctx context.Context, variant *model.ProductVariant) error
	DeleteVariant(ctx context.Context, id uuid.UUID) error
	GetVariantsByIDs(ctx context.Context, ids []uuid.UUID) ([]model.ProductVariant, error)
}
