package repository

import (
	"context"

	"github.com/google/uuid"

	"camphq/platform/internal/model"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att *model.CampAttendance) error
	Update(ctx context.Context, att *model.CampAttendance) error
	GetByDayAndAthlete(ctx context.Context, campDayID, athleteID uuid.UUID) (*model.CampAttendance, error)
	ListByCampDay(ctx context.Context, campDayID uuid.UUID) ([]model.CampAttendance, error)
	ListCheckedIn(ctx context.Context, campDayID uuid.UUID) ([]model.CampAttendance, error)
}
