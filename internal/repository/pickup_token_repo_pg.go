package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
)

type pgPickupTokenRepository struct {
	db *gorm.DB
}

func NewPGPickupTokenRepository(db *gorm.DB) PickupTokenRepository {
	return &pgPickupTokenRepository{db: db}
}

func (r *pgPickupTokenRepository) Create(ctx context.Context, token *model.PickupToken) error {
	return dbFrom(ctx, r.db).Create(token).Error
}

func (r *pgPickupTokenRepository) CreateBatch(ctx context.Context, tokens []*model.PickupToken) error {
	if len(tokens) == 0 {
		return nil
	}
	return dbFrom(ctx, r.db).Create(tokens).Error
}

func (r *pgPickupTokenRepository) GetByToken(ctx context.Context, token string) (*model.PickupToken, error) {
	var pt model.PickupToken
	if err := dbFrom(ctx, r.db).
		Preload("Athlete").
		Preload("CampDay").
		Preload("CampDay.Camp").
		Where("token = ?", token).
		First(&pt).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *pgPickupTokenRepository) Update(ctx context.Context, token *model.PickupToken) error {
	return dbFrom(ctx, r.db).Save(token).Error
}

func (r *pgPickupTokenRepository) FindLive(ctx context.Context, campDayID, athleteID uuid.UUID, now time.Time) (*model.PickupToken, error) {
	var pt model.PickupToken
	if err := dbFrom(ctx, r.db).
		Where("camp_day_id = ? AND athlete_id = ? AND is_used = false AND expires_at > ?",
			campDayID, athleteID, now).
		First(&pt).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *pgPickupTokenRepository) ExpireUnusedForCampDay(ctx context.Context, campDayID uuid.UUID, now time.Time) (int64, error) {
	res := dbFrom(ctx, r.db).
		Model(&model.PickupToken{}).
		Where("camp_day_id = ? AND is_used = false AND expires_at > ?", campDayID, now).
		UpdateColumn("expires_at", now)
	return res.RowsAffected, res.Error
}

func (r *pgPickupTokenRepository) MarkLiveUsed(ctx context.Context, campDayID, athleteID, usedBy uuid.UUID, reason string, now time.Time) (int64, error) {
	res := dbFrom(ctx, r.db).
		Model(&model.PickupToken{}).
		Where("camp_day_id = ? AND athlete_id = ? AND is_used = false AND expires_at > ?",
			campDayID, athleteID, now).
		Updates(map[string]interface{}{
			"is_used":         true,
			"used_at":         now,
			"used_by_user_id": usedBy,
			"manual_reason":   reason,
		})
	return res.RowsAffected, res.Error
}

func (r *pgPickupTokenRepository) ListByCampDay(ctx context.Context, campDayID uuid.UUID) ([]model.PickupToken, error) {
	var tokens []model.PickupToken
	if err := dbFrom(ctx, r.db).
		Preload("Athlete").
		Where("camp_day_id = ?", campDayID).
		Order("created_at DESC").
		Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}
