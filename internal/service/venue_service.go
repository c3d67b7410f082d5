package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
	"camphq/platform/internal/repository"
)

type VenueInput struct {
	Name       string
	Address    string
	City       string
	State      string
	PostalCode string
	Capacity   int
	Indoor     *bool
}

type VenueService interface {
	Create(ctx context.Context, licenseeID uuid.UUID, input VenueInput) (*model.Venue, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Venue, error)
	Update(ctx context.Context, id uuid.UUID, input VenueInput) (*model.Venue, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, licenseeID uuid.UUID, page repository.Page) ([]model.Venue, int64, error)
}

type venueService struct {
	venueRepo repository.VenueRepository
}

func NewVenueService(venueRepo repository.VenueRepository) VenueService {
	return &venueService{venueRepo: venueRepo}
}

func (s *venueService) Create(ctx context.Context, licenseeID uuid.UUID, input VenueInput) (*model.Venue, error) {
	venue := &model.Venue{
		LicenseeID: licenseeID,
		Name:       input.Name,
		Address:    input.Address,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
		Capacity:   input.Capacity,
	}
	if input.Indoor != nil {
		venue.Indoor = *input.Indoor
	}
	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}
	return venue, nil
}

func (s *venueService) Get(ctx context.Context, id uuid.UUID) (*model.Venue, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return venue, nil
}

func (s *venueService) Update(ctx context.Context, id uuid.UUID, input VenueInput) (*model.Venue, error) {
	venue, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		venue.Name = input.Name
	}
	if input.Address != "" {
		venue.Address = input.Address
	}
	if input.City != "" {
		venue.City = input.City
	}
	if input.State != "" {
		venue.State = input.State
	}
	if input.PostalCode != "" {
		venue.PostalCode = input.PostalCode
	}
	if input.Capacity > 0 {
		venue.Capacity = input.Capacity
	}
	if input.Indoor != nil {
		venue.Indoor = *input.Indoor
	}

	if err := s.venueRepo.Update(ctx, venue); err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}
	return venue, nil
}

func (s *venueService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.venueRepo.Delete(ctx, id)
}

func (s *venueService) List(ctx context.Context, licenseeID uuid.UUID, page repository.Page) ([]model.Venue, int64, error) {
	return s.venueRepo.ListByLicensee(ctx, licenseeID, page)
}
