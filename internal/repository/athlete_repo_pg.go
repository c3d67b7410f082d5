package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
)

type pgAthleteRepository struct {
	db *gorm.DB
}

func NewPGAthleteRepository(db *gorm.DB) AthleteRepository {
	return &pgAthleteRepository{db: db}
}

func (r *pgAthleteRepository) Create(ctx context.Context, athlete *model.Athlete) error {
	return dbFrom(ctx, r.db).Create(athlete).Error
}

func (r *pgAthleteRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Athlete, error) {
	var athlete model.Athlete
	if err := dbFrom(ctx, r.db).First(&athlete, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &athlete, nil
}

func (r *pgAthleteRepository) Update(ctx context.Context, athlete *model.Athlete) error {
	return dbFrom(ctx, r.db).Save(athlete).Error
}

func (r *pgAthleteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&model.Athlete{}, "id = ?", id).Error
}

func (r *pgAthleteRepository) List(ctx context.Context, page Page) ([]model.Athlete, int64, error) {
	var (
		athletes []model.Athlete
		total    int64
	)
	q := dbFrom(ctx, r.db).Model(&model.Athlete{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("last_name, first_name").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&athletes).Error; err != nil {
		return nil, 0, err
	}
	return athletes, total, nil
}

func (r *pgAthleteRepository) ListByParent(ctx context.Context, parentUserID uuid.UUID) ([]model.Athlete, error) {
	var athletes []model.Athlete
	if err := dbFrom(ctx, r.db).
		Where("parent_user_id = ?", parentUserID).
		Order("created_at").
		Find(&athletes).Error; err != nil {
		return nil, err
	}
	return athletes, nil
}

func (r *pgAthleteRepository) ListAll(ctx context.Context) ([]model.Athlete, error) {
	var athletes []model.Athlete
	if err := dbFrom(ctx, r.db).
		Order("last_name, first_name").
		Find(&athletes).Error; err != nil {
		return nil, err
	}
	return athletes, nil
}
