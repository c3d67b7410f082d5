package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
	"camphq/platform/internal/repository"
)

type ApplicationInput struct {
	TerritoryID    uuid.UUID
	BusinessName   string
	ApplicantName  string
	ApplicantEmail string
	Phone          string
	Message        string
}

type LicenseeService interface {
	CreateTerritory(ctx context.Context, name, region, country string) (*model.Territory, error)
	ListTerritories(ctx context.Context) ([]model.Territory, error)
	DeleteTerritory(ctx context.Context, id uuid.UUID) error

	GetLicensee(ctx context.Context, id uuid.UUID) (*model.Licensee, error)
	ListLicensees(ctx context.Context, page repository.Page) ([]model.Licensee, int64, error)

	SubmitApplication(ctx context.Context, input ApplicationInput) (*model.LicenseeApplication, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*model.LicenseeApplication, error)
	ListApplications(ctx context.Context, status *model.ApplicationStatus, page repository.Page) ([]model.LicenseeApplication, int64, error)
	// Review transitions a pending or in-review application. Approval creates
	// the Licensee row in the same transaction and emails the applicant.
	Review(ctx context.Context, id uuid.UUID, status model.ApplicationStatus, notes string, reviewedBy uuid.UUID) (*model.LicenseeApplication, error)
}

type licenseeService struct {
	territoryRepo   repository.TerritoryRepository
	licenseeRepo    repository.LicenseeRepository
	applicationRepo repository.LicenseeApplicationRepository
	tx              repository.TxManager
	mailer          MailSender
	logger          *zap.Logger
	now             nowFunc
}

func NewLicenseeService(
	territoryRepo repository.TerritoryRepository,
	licenseeRepo repository.LicenseeRepository,
	applicationRepo repository.LicenseeApplicationRepository,
	tx repository.TxManager,
	mailer MailSender,
	logger *zap.Logger,
) LicenseeService {
	return &licenseeService{
		territoryRepo:   territoryRepo,
		licenseeRepo:    licenseeRepo,
		applicationRepo: applicationRepo,
		tx:              tx,
		mailer:          mailer,
		logger:          logger,
		now:             defaultNow,
	}
}

func (s *licenseeService) CreateTerritory(ctx context.Context, name, region, country string) (*model.Territory, error) {
	territory := &model.Territory{Name: name, Region: region, Country: country}
	if territory.Country == "" {
		territory.Country = "US"
	}
	if err := s.territoryRepo.Create(ctx, territory); err != nil {
		return nil, fmt.Errorf("create territory: %w", err)
	}
	return territory, nil
}

func (s *licenseeService) ListTerritories(ctx context.Context) ([]model.Territory, error) {
	return s.territoryRepo.List(ctx)
}

func (s *licenseeService) DeleteTerritory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.territoryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("lookup territory: %w", err)
	}

	active, err := s.licenseeRepo.CountActiveByTerritory(ctx, id)
	if err != nil {
		return fmt.Errorf("count licensees: %w", err)
	}
	if active > 0 {
		return ErrTerritoryHasLicensee
	}

	return s.territoryRepo.Delete(ctx, id)
}

func (s *licenseeService) GetLicensee(ctx context.Context, id uuid.UUID) (*model.Licensee, error) {
	licensee, err := s.licenseeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return licensee, nil
}

func (s *licenseeService) ListLicensees(ctx context.Context, page repository.Page) ([]model.Licensee, int64, error) {
	return s.licenseeRepo.List(ctx, page)
}

func (s *licenseeService) SubmitApplication(ctx context.Context, input ApplicationInput) (*model.LicenseeApplication, error) {
	if _, err := s.territoryRepo.GetByID(ctx, input.TerritoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup territory: %w", err)
	}

	app := &model.LicenseeApplication{
		TerritoryID:    input.TerritoryID,
		BusinessName:   input.BusinessName,
		ApplicantName:  input.ApplicantName,
		ApplicantEmail: input.ApplicantEmail,
		Phone:          input.Phone,
		Message:        input.Message,
		Status:         model.ApplicationPending,
	}
	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return app, nil
}

func (s *licenseeService) GetApplication(ctx context.Context, id uuid.UUID) (*model.LicenseeApplication, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

func (s *licenseeService) ListApplications(ctx context.Context, status *model.ApplicationStatus, page repository.Page) ([]model.LicenseeApplication, int64, error) {
	return s.applicationRepo.List(ctx, status, page)
}

func (s *licenseeService) Review(ctx context.Context, id uuid.UUID, status model.ApplicationStatus, notes string, reviewedBy uuid.UUID) (*model.LicenseeApplication, error) {
	switch status {
	case model.ApplicationInReview, model.ApplicationApproved, model.ApplicationRejected:
	default:
		return nil, ErrInvalidStatusChange
	}

	app, err := s.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.IsTerminal() {
		return nil, ErrApplicationFinalized
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		now := s.now()
		app.Status = status
		app.ReviewNotes = notes
		app.ReviewedBy = &reviewedBy
		if status == model.ApplicationApproved || status == model.ApplicationRejected {
			app.ReviewedAt = &now
		}

		if status == model.ApplicationApproved {
			licensee := &model.Licensee{
				TerritoryID:  app.TerritoryID,
				BusinessName: app.BusinessName,
				ContactEmail: app.ApplicantEmail,
				Active:       true,
			}
			if err := s.licenseeRepo.Create(ctx, licensee); err != nil {
				return fmt.Errorf("create licensee: %w", err)
			}
			app.LicenseeID = &licensee.ID
		}

		return s.applicationRepo.Update(ctx, app)
	})
	if err != nil {
		return nil, err
	}

	s.notifyApplicant(ctx, app)
	return app, nil
}

// notifyApplicant emails the decision. Delivery is best-effort: a mail
// failure never fails the review.
func (s *licenseeService) notifyApplicant(ctx context.Context, app *model.LicenseeApplication) {
	if s.mailer == nil || !app.IsTerminal() {
		return
	}

	subject := "Your licensee application was not approved"
	body := fmt.Sprintf("Hi %s,\n\nYour application for %s was reviewed and not approved at this time.\n", app.ApplicantName, app.BusinessName)
	if app.Status == model.ApplicationApproved {
		subject = "Your licensee application was approved"
		body = fmt.Sprintf("Hi %s,\n\nCongratulations! Your application for %s has been approved. We'll be in touch with onboarding steps.\n", app.ApplicantName, app.BusinessName)
	}

	if err := s.mailer.Send(ctx, app.ApplicantEmail, subject, body); err != nil {
		s.logger.Warn("application decision email failed",
			zap.String("application_id", app.ID.String()),
			zap.Error(err))
	}
}
