package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
)

type pgWaiverRepository struct {
	db *gorm.DB
}

func NewPGWaiverRepository(db *gorm.DB) WaiverRepository {
	return &pgWaiverRepository{db: db}
}

func (r *pgWaiverRepository) CreateTemplate(ctx context.Context, tpl *model.WaiverTemplate) error {
	return dbFrom(ctx, r.db).Create(tpl).Error
}

func (r *pgWaiverRepository) GetTemplate(ctx context.Context, id uuid.UUID) (*model.WaiverTemplate, error) {
	var tpl model.WaiverTemplate
	if err := dbFrom(ctx, r.db).First(&tpl, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *pgWaiverRepository) UpdateTemplate(ctx context.Context, tpl *model.WaiverTemplate) error {
	return dbFrom(ctx, r.db).Save(tpl).Error
}

func (r *pgWaiverRepository) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&model.WaiverTemplate{}, "id = ?", id).Error
}

func (r *pgWaiverRepository) ListTemplates(ctx context.Context, licenseeID uuid.UUID) ([]model.WaiverTemplate, error) {
	var tpls []model.WaiverTemplate
	if err := dbFrom(ctx, r.db).
		Where("licensee_id = ?", licenseeID).
		Order("created_at DESC").
		Find(&tpls).Error; err != nil {
		return nil, err
	}
	return tpls, nil
}

func (r *pgWaiverRepository) CreateSigning(ctx context.Context, signing *model.WaiverSigning) error {
	return dbFrom(ctx, r.db).Create(signing).Error
}

func (r *pgWaiverRepository) GetSigning(ctx context.Context, templateID uuid.UUID, version int, athleteID uuid.UUID) (*model.WaiverSigning, error) {
	var signing model.WaiverSigning
	if err := dbFrom(ctx, r.db).
		Where("template_id = ? AND template_version = ? AND athlete_id = ?",
			templateID, version, athleteID).
		First(&signing).Error; err != nil {
		return nil, err
	}
	return &signing, nil
}

func (r *pgWaiverRepository) ListSigningsByTemplate(ctx context.Context, templateID uuid.UUID) ([]model.WaiverSigning, error) {
	var signings []model.WaiverSigning
	if err := dbFrom(ctx, r.db).
		Where("template_id = ?", templateID).
		Order("signed_at DESC").
		Find(&signings).Error; err != nil {
		return nil, err
	}
	return signings, nil
}

func (r *pgWaiverRepository) LatestSignedVersions(ctx context.Context, templateID uuid.UUID, athleteIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(athleteIDs) == 0 {
		return map[uuid.UUID]int{}, nil
	}

	var rows []struct {
		AthleteID  uuid.UUID
		MaxVersion int
	}
	if err := dbFrom(ctx, r.db).
		Model(&model.WaiverSigning{}).
		Select("athlete_id, MAX(template_version) AS max_version").
		Where("template_id = ? AND athlete_id IN ?", templateID, athleteIDs).
		Group("athlete_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		out[row.AthleteID] = row.MaxVersion
	}
	return out, nil
}
