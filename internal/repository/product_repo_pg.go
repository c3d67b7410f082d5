package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
)

type pgProductRepository struct {
	db *gorm.DB
}

func NewPGProductRepository(db *gorm.DB) ProductRepository {
	return &pgProductRepository{db: db}
}

func (r *pgProductRepository) Create(ctx context.Context, product *model.Product) error {
	return dbFrom(ctx, r.db).Create(product).Error
}

func (r *pgProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := dbFrom(ctx, r.db).
		Preload("Variants").
		First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *pgProductRepository) Update(ctx context.Context, product *model.Product) error {
	return dbFrom(ctx, r.db).Save(product).Error
}

func (r *pgProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&model.Product{}, "id = ?", id).Error
}

func (r *pgProductRepository) ListActive(ctx context.Context, page Page) ([]model.Product, int64, error) {
	return r.list(ctx, page, true)
}

func (r *pgProductRepository) List(ctx context.Context, page Page) ([]model.Product, int64, error) {
	return r.list(ctx, page, false)
}

func (r *pgProductRepository) list(ctx context.Context, page Page, activeOnly bool) ([]model.Product, int64, error) {
	var (
		products []model.Product
		total    int64
	)
	q := dbFrom(ctx, r.db).Model(&model.Product{})
	if activeOnly {
		q = q.Where("active = true")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Preload("Variants").
		Order("name").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *pgProductRepository) CreateVariant(ctx context.Context, variant *model.ProductVariant) error {
	return dbFrom(ctx, r.db).Create(variant).Error
}

func (r *pgProductRepository) GetVariant(ctx context.Context, id uuid.UUID) (*model.ProductVariant, error) {
	var variant model.ProductVariant
	if err := dbFrom(ctx, r.db).First(&variant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *pgProductRepository) UpdateVariant(ctx context.Context, variant *model.ProductVariant) error {
	return dbFrom(ctx, r.db).Save(variant).Error
}

func (r *pgProductRepository) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&model.ProductVariant{}, "id = ?", id).Error
}

func (r *pgProductRepository) GetVariantsByIDs(ctx context.Context, ids []uuid.UUID) ([]model.ProductVariant, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var variants []model.ProductVariant
	if err := dbFrom(ctx, r.db).Where("id IN ?", ids).Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}
