package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
)

type pgVenueRepository struct {
	db *gorm.DB
}

func NewPGVenueRepository(db *gorm.DB) VenueRepository {
	return &pgVenueRepository{db: db}
}

func (r *pgVenueRepository) Create(ctx context.Context, venue *model.Venue) error {
	return dbFrom(ctx, r.db).Create(venue).Error
}

func (r *pgVenueRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Venue, error) {
	var venue model.Venue
	if err := dbFrom(ctx, r.db).First(&venue, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *pgVenueRepository) Update(ctx context.Context, venue *model.Venue) error {
	return dbFrom(ctx, r.db).Save(venue).Error
}

func (r *pgVenueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&model.Venue{}, "id = ?", id).Error
}

func (r *pgVenueRepository) ListByLicensee(ctx context.Context, licenseeID uuid.UUID, page Page) ([]model.Venue, int64, error) {
	var (
		venues []model.Venue
		total  int64
	)
	q := dbFrom(ctx, r.db).Model(&model.Venue{}).Where("licensee_id = ?", licenseeID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("name").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&venues).Error; err != nil {
		return nil, 0, err
	}
	return venues, total, nil
}
