package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
)

type pgLmsRepository struct {
	db *gorm.DB
}

func NewPGLmsRepository(db *gorm.DB) LmsRepository {
	return &pgLmsRepository{db: db}
}

func (r *pgLmsRepository) CreateModule(ctx context.Context, mod *model.LmsModule) error {
	return dbFrom(ctx, r.db).Create(mod).Error
}

func (r *pgLmsRepository) GetModule(ctx context.Context, id uuid.UUID) (*model.LmsModule, error) {
	var mod model.LmsModule
	if err := dbFrom(ctx, r.db).First(&mod, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &mod, nil
}

func (r *pgLmsRepository) UpdateModule(ctx context.Context, mod *model.LmsModule) error {
	return dbFrom(ctx, r.db).Save(mod).Error
}

func (r *pgLmsRepository) DeleteModule(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&model.LmsModule{}, "id = ?", id).Error
}

func (r *pgLmsRepository) ListModules(ctx context.Context) ([]model.LmsModule, error) {
	var mods []model.LmsModule
	if err := dbFrom(ctx, r.db).
		Order("position, created_at").
		Find(&mods).Error; err != nil {
		return nil, err
	}
	return mods, nil
}

func (r *pgLmsRepository) GetProgress(ctx context.Context, userID, moduleID uuid.UUID) (*model.LmsProgress, error) {
	var progress model.LmsProgress
	if err := dbFrom(ctx, r.db).
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *pgLmsRepository) SaveProgress(ctx context.Context, progress *model.LmsProgress) error {
	return dbFrom(ctx, r.db).Save(progress).Error
}

func (r *pgLmsRepository) ListProgressByUser(ctx context.Context, userID uuid.UUID) ([]model.LmsProgress, error) {
	var rows []model.LmsProgress
	if err := dbFrom(ctx, r.db).
		Where("user_id = ?", userID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
