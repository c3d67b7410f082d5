package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
)

type pgRegistrationRepository struct {
	db *gorm.DB
}

func NewPGRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &pgRegistrationRepository{db: db}
}

func (r *pgRegistrationRepository) Create(ctx context.Context, reg *model.Registration) error {
	return dbFrom(ctx, r.db).Create(reg).Error
}

func (r *pgRegistrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Registration, error) {
	var reg model.Registration
	if err := dbFrom(ctx, r.db).
		Preload("Camp").Preload("Athlete").
		First(&reg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *pgRegistrationRepository) GetByCampAndAthlete(ctx context.Context, campID, athleteID uuid.UUID) (*model.Registration, error) {
	var reg model.Registration
	if err := dbFrom(ctx, r.db).
		Where("camp_id = ? AND athlete_id = ?", campID, athleteID).
		First(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *pgRegistrationRepository) Update(ctx context.Context, reg *model.Registration) error {
	return dbFrom(ctx, r.db).Save(reg).Error
}

func (r *pgRegistrationRepository) ListByCamp(ctx context.Context, campID uuid.UUID, page Page) ([]model.Registration, int64, error) {
	var (
		regs  []model.Registration
		total int64
	)
	q := dbFrom(ctx, r.db).Model(&model.Registration{}).Where("camp_id = ?", campID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Preload("Athlete").
		Order("created_at").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&regs).Error; err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}

func (r *pgRegistrationRepository) ListConfirmedByCamp(ctx context.Context, campID uuid.UUID) ([]model.Registration, error) {
	var regs []model.Registration
	if err := dbFrom(ctx, r.db).
		Preload("Athlete").
		Where("camp_id = ? AND status = ?", campID, model.RegistrationConfirmed).
		Order("created_at").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *pgRegistrationRepository) ListByParent(ctx context.Context, parentUserID uuid.UUID) ([]model.Registration, error) {
	var regs []model.Registration
	if err := dbFrom(ctx, r.db).
		Preload("Camp").Preload("Athlete").
		Where("parent_user_id = ?", parentUserID).
		Order("created_at DESC").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *pgRegistrationRepository) ListAll(ctx context.Context) ([]model.Registration, error) {
	var regs []model.Registration
	if err := dbFrom(ctx, r.db).
		Preload("Camp").Preload("Athlete").
		Order("created_at").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *pgRegistrationRepository) CountConfirmed(ctx context.Context, campID uuid.UUID) (int64, error) {
	var n int64
	err := dbFrom(ctx, r.db).
		Model(&model.Registration{}).
		Where("camp_id = ? AND status = ?", campID, model.RegistrationConfirmed).
		Count(&n).Error
	return n, err
}
