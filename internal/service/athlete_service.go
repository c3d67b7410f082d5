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

type AthleteInput struct {
	FirstName    string
	LastName     string
	BirthDate    time.Time
	Gender       string
	MedicalNotes string
	PhotoURL     string
}

type AthleteService interface {
	Create(ctx context.Context, parentUserID uuid.UUID, input AthleteInput) (*model.Athlete, error)
	// Get enforces ownership: parents may only read their own athletes,
	// staff may read any.
	Get(ctx context.Context, id uuid.UUID, requester *model.User) (*model.Athlete, error)
	Update(ctx context.Context, id uuid.UUID, requester *model.User, input AthleteInput) (*model.Athlete, error)
	Delete(ctx context.Context, id uuid.UUID, requester *model.User) error
	List(ctx context.Context, page repository.Page) ([]model.Athlete, int64, error)
	ListByParent(ctx context.Context, parentUserID uuid.UUID) ([]model.Athlete, error)

	Register(ctx context.Context, campID, athleteID, parentUserID uuid.UUID) (*model.Registration, error)
	ListRegistrationsByParent(ctx context.Context, parentUserID uuid.UUID) ([]model.Registration, error)
	UpdateRegistrationStatus(ctx context.Context, id uuid.UUID, status model.RegistrationStatus, amountPaidCents int64) (*model.Registration, error)
}

type athleteService struct {
	athleteRepo      repository.AthleteRepository
	registrationRepo repository.RegistrationRepository
	campRepo         repository.CampRepository
}

func NewAthleteService(
	athleteRepo repository.AthleteRepository,
	registrationRepo repository.RegistrationRepository,
	campRepo repository.CampRepository,
) AthleteService {
	return &athleteService{
		athleteRepo:      athleteRepo,
		registrationRepo: registrationRepo,
		campRepo:         campRepo,
	}
}

func (s *athleteService) Create(ctx context.Context, parentUserID uuid.UUID, input AthleteInput) (*model.Athlete, error) {
	athlete := &model.Athlete{
		ParentUserID: parentUserID,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		BirthDate:    input.BirthDate,
		Gender:       input.Gender,
		MedicalNotes: input.MedicalNotes,
		PhotoURL:     input.PhotoURL,
	}
	if err := s.athleteRepo.Create(ctx, athlete); err != nil {
		return nil, fmt.Errorf("create athlete: %w", err)
	}
	return athlete, nil
}

func (s *athleteService) Get(ctx context.Context, id uuid.UUID, requester *model.User) (*model.Athlete, error) {
	athlete, err := s.athleteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !requester.IsStaff() && athlete.ParentUserID != requester.ID {
		return nil, ErrNotOwned
	}
	return athlete, nil
}

func (s *athleteService) Update(ctx context.Context, id uuid.UUID, requester *model.User, input AthleteInput) (*model.Athlete, error) {
	athlete, err := s.Get(ctx, id, requester)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		athlete.FirstName = input.FirstName
	}
	if input.LastName != "" {
		athlete.LastName = input.LastName
	}
	if !input.BirthDate.IsZero() {
		athlete.BirthDate = input.BirthDate
	}
	if input.Gender != "" {
		athlete.Gender = input.Gender
	}
	if input.MedicalNotes != "" {
		athlete.MedicalNotes = input.MedicalNotes
	}
	if input.PhotoURL != "" {
		athlete.PhotoURL = input.PhotoURL
	}

	if err := s.athleteRepo.Update(ctx, athlete); err != nil {
		return nil, fmt.Errorf("update athlete: %w", err)
	}
	return athlete, nil
}

func (s *athleteService) Delete(ctx context.Context, id uuid.UUID, requester *model.User) error {
	if _, err := s.Get(ctx, id, requester); err != nil {
		return err
	}
	return s.athleteRepo.Delete(ctx, id)
}

func (s *athleteService) List(ctx context.Context, page repository.Page) ([]model.Athlete, int64, error) {
	return s.athleteRepo.List(ctx, page)
}

func (s *athleteService) ListByParent(ctx context.Context, parentUserID uuid.UUID) ([]model.Athlete, error) {
	return s.athleteRepo.ListByParent(ctx, parentUserID)
}

func (s *athleteService) Register(ctx context.Context, campID, athleteID, parentUserID uuid.UUID) (*model.Registration, error) {
	athlete, err := s.athleteRepo.GetByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if athlete.ParentUserID != parentUserID {
		return nil, ErrNotOwned
	}
	if _, err := s.campRepo.GetByID(ctx, campID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Duplicate registration returns the existing row.
	if existing, err := s.registrationRepo.GetByCampAndAthlete(ctx, campID, athleteID); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup registration: %w", err)
	}

	reg := &model.Registration{
		CampID:       campID,
		AthleteID:    athleteID,
		ParentUserID: parentUserID,
		Status:       model.RegistrationPending,
	}
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return reg, nil
}

func (s *athleteService) ListRegistrationsByParent(ctx context.Context, parentUserID uuid.UUID) ([]model.Registration, error) {
	return s.registrationRepo.ListByParent(ctx, parentUserID)
}

func (s *athleteService) UpdateRegistrationStatus(ctx context.Context, id uuid.UUID, status model.RegistrationStatus, amountPaidCents int64) (*model.Registration, error) {
	switch status {
	case model.RegistrationPending, model.RegistrationConfirmed, model.RegistrationCancelled:
	default:
		return nil, ErrInvalidStatusChange
	}

	reg, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reg.Status = status
	if amountPaidCents > 0 {
		reg.AmountPaidCents = amountPaidCents
	}
	if err := s.registrationRepo.Update(ctx, reg); err != nil {
		return nil, fmt.Errorf("update registration: %w", err)
	}
	return reg, nil
}
