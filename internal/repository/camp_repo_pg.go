package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
)

type pgCampRepository struct {
	db *gorm.DB
}

func NewPGCampRepository(db *gorm.DB) CampRepository {
	return &pgCampRepository{db: db}
}

func (r *pgCampRepository) Create(ctx context.Context, camp *model.Camp) error {
	return dbFrom(ctx, r.db).Create(camp).Error
}

func (r *pgCampRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Camp, error) {
	var camp model.Camp
	if err := dbFrom(ctx, r.db).
		Preload("Venue").
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("date") }).
		First(&camp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &camp, nil
}

func (r *pgCampRepository) Update(ctx context.Context, camp *model.Camp) error {
	return dbFrom(ctx, r.db).Save(camp).Error
}

func (r *pgCampRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&model.Camp{}, "id = ?", id).Error
}

func (r *pgCampRepository) List(ctx context.Context, licenseeID *uuid.UUID, page Page) ([]model.Camp, int64, error) {
	var (
		camps []model.Camp
		total int64
	)
	q := dbFrom(ctx, r.db).Model(&model.Camp{})
	if licenseeID != nil {
		q = q.Where("licensee_id = ?", *licenseeID)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Preload("Venue").
		Order("start_date DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&camps).Error; err != nil {
		return nil, 0, err
	}
	return camps, total, nil
}

func (r *pgCampRepository) CreateDay(ctx context.Context, day *model.CampDay) error {
	return dbFrom(ctx, r.db).Create(day).Error
}

func (r *pgCampRepository) GetDay(ctx context.Context, id uuid.UUID) (*model.CampDay, error) {
	var day model.CampDay
	if err := dbFrom(ctx, r.db).
		Preload("Camp").
		First(&day, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *pgCampRepository) ListDays(ctx context.Context, campID uuid.UUID) ([]model.CampDay, error) {
	var days []model.CampDay
	if err := dbFrom(ctx, r.db).
		Where("camp_id = ?", campID).
		Order("date").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}
