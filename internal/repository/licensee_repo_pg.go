package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
)

type pgTerritoryRepository struct {
	db *gorm.DB
}

func NewPGTerritoryRepository(db *gorm.DB) TerritoryRepository {
	return &pgTerritoryRepository{db: db}
}

func (r *pgTerritoryRepository) Create(ctx context.Context, territory *model.Territory) error {
	return dbFrom(ctx, r.db).Create(territory).Error
}

func (r *pgTerritoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Territory, error) {
	var territory model.Territory
	if err := dbFrom(ctx, r.db).First(&territory, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &territory, nil
}

func (r *pgTerritoryRepository) Update(ctx context.Context, territory *model.Territory) error {
	return dbFrom(ctx, r.db).Save(territory).Error
}

func (r *pgTerritoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&model.Territory{}, "id = ?", id).Error
}

func (r *pgTerritoryRepository) List(ctx context.Context) ([]model.Territory, error) {
	var territories []model.Territory
	if err := dbFrom(ctx, r.db).Order("name").Find(&territories).Error; err != nil {
		return nil, err
	}
	return territories, nil
}

type pgLicenseeRepository struct {
	db *gorm.DB
}

func NewPGLicenseeRepository(db *gorm.DB) LicenseeRepository {
	return &pgLicenseeRepository{db: db}
}

func (r *pgLicenseeRepository) Create(ctx context.Context, licensee *model.Licensee) error {
	return dbFrom(ctx, r.db).Create(licensee).Error
}

func (r *pgLicenseeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Licensee, error) {
	var licensee model.Licensee
	if err := dbFrom(ctx, r.db).
		Preload("Territory").
		First(&licensee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &licensee, nil
}

func (r *pgLicenseeRepository) Update(ctx context.Context, licensee *model.Licensee) error {
	return dbFrom(ctx, r.db).Save(licensee).Error
}

func (r *pgLicenseeRepository) List(ctx context.Context, page Page) ([]model.Licensee, int64, error) {
	var (
		licensees []model.Licensee
		total     int64
	)
	q := dbFrom(ctx, r.db).Model(&model.Licensee{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Preload("Territory").
		Order("business_name").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&licensees).Error; err != nil {
		return nil, 0, err
	}
	return licensees, total, nil
}

func (r *pgLicenseeRepository) CountActiveByTerritory(ctx context.Context, territoryID uuid.UUID) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&model.Licensee{}).
		Where("territory_id = ? AND active", territoryID).
		Count(&count).Error
	return count, err
}

type pgLicenseeApplicationRepository struct {
	db *gorm.DB
}

func NewPGLicenseeApplicationRepository(db *gorm.DB) LicenseeApplicationRepository {
	return &pgLicenseeApplicationRepository{db: db}
}

func (r *pgLicenseeApplicationRepository) Create(ctx context.Context, app *model.LicenseeApplication) error {
	return dbFrom(ctx, r.db).Create(app).Error
}

func (r *pgLicenseeApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.LicenseeApplication, error) {
	var app model.LicenseeApplication
	if err := dbFrom(ctx, r.db).First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *pgLicenseeApplicationRepository) Update(ctx context.Context, app *model.LicenseeApplication) error {
	return dbFrom(ctx, r.db).Save(app).Error
}

func (r *pgLicenseeApplicationRepository) List(ctx context.Context, status *model.ApplicationStatus, page Page) ([]model.LicenseeApplication, int64, error) {
	var (
		apps  []model.LicenseeApplication
		total int64
	)
	q := dbFrom(ctx, r.db).Model(&model.LicenseeApplication{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("created_at DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&apps).Error; err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}
