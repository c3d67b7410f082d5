package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
)

type pgCurriculumRepository struct {
	db *gorm.DB
}

func NewPGCurriculumRepository(db *gorm.DB) CurriculumRepository {
	return &pgCurriculumRepository{db: db}
}

func (r *pgCurriculumRepository) CreateTemplate(ctx context.Context, tpl *model.CurriculumTemplate) error {
	return dbFrom(ctx, r.db).Create(tpl).Error
}

func (r *pgCurriculumRepository) GetTemplate(ctx context.Context, id uuid.UUID) (*model.CurriculumTemplate, error) {
	var tpl model.CurriculumTemplate
	if err := dbFrom(ctx, r.db).
		Preload("Blocks", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&tpl, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *pgCurriculumRepository) UpdateTemplate(ctx context.Context, tpl *model.CurriculumTemplate) error {
	return dbFrom(ctx, r.db).Save(tpl).Error
}

func (r *pgCurriculumRepository) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&model.CurriculumTemplate{}, "id = ?", id).Error
}

func (r *pgCurriculumRepository) ListTemplates(ctx context.Context, licenseeID uuid.UUID, page Page) ([]model.CurriculumTemplate, int64, error) {
	var (
		tpls  []model.CurriculumTemplate
		total int64
	)
	q := dbFrom(ctx, r.db).Model(&model.CurriculumTemplate{}).Where("licensee_id = ?", licenseeID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("name").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&tpls).Error; err != nil {
		return nil, 0, err
	}
	return tpls, total, nil
}

func (r *pgCurriculumRepository) CreateBlock(ctx context.Context, block *model.CurriculumBlock) error {
	return dbFrom(ctx, r.db).Create(block).Error
}

func (r *pgCurriculumRepository) GetBlock(ctx context.Context, id uuid.UUID) (*model.CurriculumBlock, error) {
	var block model.CurriculumBlock
	if err := dbFrom(ctx, r.db).First(&block, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *pgCurriculumRepository) UpdateBlock(ctx context.Context, block *model.CurriculumBlock) error {
	return dbFrom(ctx, r.db).Save(block).Error
}

func (r *pgCurriculumRepository) DeleteBlock(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&model.CurriculumBlock{}, "id = ?", id).Error
}

func (r *pgCurriculumRepository) ListBlocks(ctx context.Context, templateID uuid.UUID) ([]model.CurriculumBlock, error) {
	var blocks []model.CurriculumBlock
	if err := dbFrom(ctx, r.db).
		Where("template_id = ?", templateID).
		Order("position").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *pgCurriculumRepository) MaxBlockPosition(ctx context.Context, templateID uuid.UUID) (int, error) {
	var max *int
	if err := dbFrom(ctx, r.db).
		Model(&model.CurriculumBlock{}).
		Select("MAX(position)").
		Where("template_id = ?", templateID).
		Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}
