package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
	"camphq/platform/internal/repository"
)

type CampInput struct {
	LicenseeID uuid.UUID
	VenueID    uuid.UUID
	Name       string
	Sport      string
	StartDate  time.Time
	EndDate    time.Time
	Capacity   int
	PriceCents int64
	Status     model.CampStatus
}

type CampService interface {
	Create(ctx context.Context, input CampInput) (*model.Camp, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Camp, error)
	Update(ctx context.Context, id uuid.UUID, input CampInput) (*model.Camp, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, licenseeID *uuid.UUID, page repository.Page) ([]model.Camp, int64, error)

	// AddDay creates a camp day; the date must fall inside the camp range.
	AddDay(ctx context.Context, campID uuid.UUID, date time.Time, notes string) (*model.CampDay, error)
	ListDays(ctx context.Context, campID uuid.UUID) ([]model.CampDay, error)

	// CheckIn records an athlete's arrival on a camp day. The athlete must
	// hold a confirmed registration for the camp.
	CheckIn(ctx context.Context, campDayID, athleteID, byUserID uuid.UUID) (*model.CampAttendance, error)
	Roster(ctx context.Context, campDayID uuid.UUID) ([]model.CampAttendance, error)
}

type campService struct {
	campRepo         repository.CampRepository
	registrationRepo repository.RegistrationRepository
	attendanceRepo   repository.AttendanceRepository
	now              nowFunc
}

func NewCampService(
	campRepo repository.CampRepository,
	registrationRepo repository.RegistrationRepository,
	attendanceRepo repository.AttendanceRepository,
) CampService {
	return &campService{
		campRepo:         campRepo,
		registrationRepo: registrationRepo,
		attendanceRepo:   attendanceRepo,
		now:              defaultNow,
	}
}

func (s *campService) Create(ctx context.Context, input CampInput) (*model.Camp, error) {
	camp := &model.Camp{
		LicenseeID: input.LicenseeID,
		VenueID:    input.VenueID,
		Name:       input.Name,
		Sport:      input.Sport,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Capacity:   input.Capacity,
		PriceCents: input.PriceCents,
		Status:     model.CampDraft,
	}
	if err := s.campRepo.Create(ctx, camp); err != nil {
		return nil, fmt.Errorf("create camp: %w", err)
	}
	return camp, nil
}

func (s *campService) Get(ctx context.Context, id uuid.UUID) (*model.Camp, error) {
	camp, err := s.campRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return camp, nil
}

func (s *campService) Update(ctx context.Context, id uuid.UUID, input CampInput) (*model.Camp, error) {
	camp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		camp.Name = input.Name
	}
	if input.Sport != "" {
		camp.Sport = input.Sport
	}
	if input.VenueID != uuid.Nil {
		camp.VenueID = input.VenueID
	}
	if !input.StartDate.IsZero() {
		camp.StartDate = input.StartDate
	}
	if !input.EndDate.IsZero() {
		camp.EndDate = input.EndDate
	}
	if input.Capacity > 0 {
		camp.Capacity = input.Capacity
	}
	if input.PriceCents > 0 {
		camp.PriceCents = input.PriceCents
	}
	if input.Status != "" {
		camp.Status = input.Status
	}

	if err := s.campRepo.Update(ctx, camp); err != nil {
		return nil, fmt.Errorf("update camp: %w", err)
	}
	return camp, nil
}

func (s *campService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.campRepo.Delete(ctx, id)
}

func (s *campService) List(ctx context.Context, licenseeID *uuid.UUID, page repository.Page) ([]model.Camp, int64, error) {
	return s.campRepo.List(ctx, licenseeID, page)
}

func (s *campService) AddDay(ctx context.Context, campID uuid.UUID, date time.Time, notes string) (*model.CampDay, error) {
	camp, err := s.Get(ctx, campID)
	if err != nil {
		return nil, err
	}
	if date.Before(camp.StartDate) || date.After(camp.EndDate) {
		return nil, ErrCampDayOutsideCamp
	}

	day := &model.CampDay{
		CampID: campID,
		Date:   date,
		Notes:  notes,
	}
	if err := s.campRepo.CreateDay(ctx, day); err != nil {
		return nil, fmt.Errorf("create camp day: %w", err)
	}
	return day, nil
}

func (s *campService) ListDays(ctx context.Context, campID uuid.UUID) ([]model.CampDay, error) {
	return s.campRepo.ListDays(ctx, campID)
}

func (s *campService) CheckIn(ctx context.Context, campDayID, athleteID, byUserID uuid.UUID) (*model.CampAttendance, error) {
	day, err := s.campRepo.GetDay(ctx, campDayID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup camp day: %w", err)
	}

	reg, err := s.registrationRepo.GetByCampAndAthlete(ctx, day.CampID, athleteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotRegistered
		}
		return nil, fmt.Errorf("lookup registration: %w", err)
	}
	if reg.Status != model.RegistrationConfirmed {
		return nil, ErrNotRegistered
	}

	if existing, err := s.attendanceRepo.GetByDayAndAthlete(ctx, campDayID, athleteID); err == nil {
		if existing.Status == model.AttendanceCheckedIn {
			return nil, ErrAlreadyCheckedIn
		}
		// Re-admit after an earlier checkout (e.g. midday appointment).
		existing.Status = model.AttendanceCheckedIn
		existing.CheckedInAt = s.now()
		existing.CheckedInBy = byUserID
		existing.CheckedOutAt = nil
		existing.CheckedOutBy = nil
		existing.CheckoutMethod = nil
		if err := s.attendanceRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update attendance: %w", err)
		}
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup attendance: %w", err)
	}

	att := &model.CampAttendance{
		CampDayID:   campDayID,
		AthleteID:   athleteID,
		Status:      model.AttendanceCheckedIn,
		CheckedInAt: s.now(),
		CheckedInBy: byUserID,
	}
	if err := s.attendanceRepo.Create(ctx, att); err != nil {
		return nil, fmt.Errorf("create attendance: %w", err)
	}
	return att, nil
}

func (s *campService) Roster(ctx context.Context, campDayID uuid.UUID) ([]model.CampAttendance, error) {
	return s.attendanceRepo.ListByCampDay(ctx, campDayID)
}
