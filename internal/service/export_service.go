package service

import (
	"context"

	"camphq/platform/internal/model"
	"camphq/platform/internal/repository"
)

// Export row DTOs: flat, snake_case, ready for client-side CSV serialization.

type AthleteExportRow struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	BirthDate    string `json:"birth_date"`
	Gender       string `json:"gender"`
	ParentUserID string `json:"parent_user_id"`
}

type EmailExportRow struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type RegistrationExportRow struct {
	ID              string `json:"id"`
	CampName        string `json:"camp_name"`
	AthleteName     string `json:"athlete_name"`
	Status          string `json:"status"`
	AmountPaidCents int64  `json:"amount_paid_cents"`
	CreatedAt       string `json:"created_at"`
}

type ExportService interface {
	// Export returns a JSON-ready row slice for the given type:
	// athletes | emails | registrations.
	Export(ctx context.Context, exportType string) (interface{}, error)
}

type exportService struct {
	athleteRepo      repository.AthleteRepository
	userRepo         repository.UserRepository
	registrationRepo repository.RegistrationRepository
}

func NewExportService(
	athleteRepo repository.AthleteRepository,
	userRepo repository.UserRepository,
	registrationRepo repository.RegistrationRepository,
) ExportService {
	return &exportService{
		athleteRepo:      athleteRepo,
		userRepo:         userRepo,
		registrationRepo: registrationRepo,
	}
}

func (s *exportService) Export(ctx context.Context, exportType string) (interface{}, error) {
	switch exportType {
	case "athletes":
		return s.exportAthletes(ctx)
	case "emails":
		return s.exportEmails(ctx)
	case "registrations":
		return s.exportRegistrations(ctx)
	default:
		return nil, ErrUnknownExportType
	}
}

func (s *exportService) exportAthletes(ctx context.Context) ([]AthleteExportRow, error) {
	athletes, err := s.athleteRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]AthleteExportRow, 0, len(athletes))
	for _, a := range athletes {
		rows = append(rows, AthleteExportRow{
			ID:           a.ID.String(),
			FirstName:    a.FirstName,
			LastName:     a.LastName,
			BirthDate:    a.BirthDate.Format("2006-01-02"),
			Gender:       a.Gender,
			ParentUserID: a.ParentUserID.String(),
		})
	}
	return rows, nil
}

func (s *exportService) exportEmails(ctx context.Context) ([]EmailExportRow, error) {
	parents, err := s.userRepo.ListByRole(ctx, model.RoleParent)
	if err != nil {
		return nil, err
	}
	rows := make([]EmailExportRow, 0, len(parents))
	for _, u := range parents {
		rows = append(rows, EmailExportRow{
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      string(u.Role),
		})
	}
	return rows, nil
}

func (s *exportService) exportRegistrations(ctx context.Context) ([]RegistrationExportRow, error) {
	regs, err := s.registrationRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]RegistrationExportRow, 0, len(regs))
	for _, reg := range regs {
		row := RegistrationExportRow{
			ID:              reg.ID.String(),
			Status:          string(reg.Status),
			AmountPaidCents: reg.AmountPaidCents,
			CreatedAt:       reg.CreatedAt.Format("2006-01-02"),
		}
		if reg.Camp != nil {
			row.CampName = reg.Camp.Name
		}
		if reg.Athlete != nil {
			row.AthleteName = reg.Athlete.FullName()
		}
		rows = append(rows, row)
	}
	return rows, nil
}
