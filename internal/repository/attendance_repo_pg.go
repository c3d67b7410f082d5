package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
)

type pgAttendanceRepository struct {
	db *gorm.DB
}

func NewPGAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &pgAttendanceRepository{db: db}
}

func (r *pgAttendanceRepository) Create(ctx context.Context, att *model.CampAttendance) error {
	return dbFrom(ctx, r.db).Create(att).Error
}

func (r *pgAttendanceRepository) Update(ctx context.Context, att *model.CampAttendance) error {
	return dbFrom(ctx, r.db).Save(att).Error
}

func (r *pgAttendanceRepository) GetByDayAndAthlete(ctx context.Context, campDayID, athleteID uuid.UUID) (*model.CampAttendance, error) {
	var att model.CampAttendance
	if err := dbFrom(ctx, r.db).
		Where("camp_day_id = ? AND athlete_id = ?", campDayID, athleteID).
		First(&att).Error; err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *pgAttendanceRepository) ListByCampDay(ctx context.Context, campDayID uuid.UUID) ([]model.CampAttendance, error) {
	var rows []model.CampAttendance
	if err := dbFrom(ctx, r.db).
		Preload("Athlete").
		Where("camp_day_id = ?", campDayID).
		Order("checked_in_at").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *pgAttendanceRepository) ListCheckedIn(ctx context.Context, campDayID uuid.UUID) ([]model.CampAttendance, error) {
	var rows []model.CampAttendance
	if err := dbFrom(ctx, r.db).
		Preload("Athlete").
		Where("camp_day_id = ? AND status = ?", campDayID, model.AttendanceCheckedIn).
		Order("checked_in_at").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
