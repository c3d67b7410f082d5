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

type WaiverTemplateInput struct {
	Title   string
	Content string
	Active  *bool
}

// AthleteWaiverStatus reports one athlete's standing against the current
// template version.
type AthleteWaiverStatus struct {
	AthleteID     uuid.UUID `json:"athlete_id"`
	AthleteName   string    `json:"athlete_name"`
	SignedVersion int       `json:"signed_version"` // 0 when unsigned
	Current       bool      `json:"current"`
}

// WaiverCampStatus aggregates signing standing for every confirmed
// registration of a camp.
type WaiverCampStatus struct {
	TemplateID      uuid.UUID             `json:"template_id"`
	TemplateVersion int                   `json:"template_version"`
	SignedCurrent   int                   `json:"signed_current"`
	SignedOutdated  int                   `json:"signed_outdated"`
	Unsigned        int                   `json:"unsigned"`
	Athletes        []AthleteWaiverStatus `json:"athletes"`
}

type WaiverService interface {
	CreateTemplate(ctx context.Context, licenseeID uuid.UUID, title, content string) (*model.WaiverTemplate, error)
	GetTemplate(ctx context.Context, id uuid.UUID) (*model.WaiverTemplate, error)
	// UpdateTemplate bumps Version whenever Content changes; title-only or
	// active-only edits keep the version.
	UpdateTemplate(ctx context.Context, id uuid.UUID, input WaiverTemplateInput) (*model.WaiverTemplate, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	ListTemplates(ctx context.Context, licenseeID uuid.UUID) ([]model.WaiverTemplate, error)

	// Sign records acceptance of the template's current version. Re-signing
	// the same version is a no-op returning the existing signing.
	Sign(ctx context.Context, templateID, athleteID, parentUserID uuid.UUID, ipAddress string) (*model.WaiverSigning, error)
	CampStatus(ctx context.Context, templateID, campID uuid.UUID) (*WaiverCampStatus, error)
}

type waiverService struct {
	waiverRepo       repository.WaiverRepository
	registrationRepo repository.RegistrationRepository
	now              nowFunc
}

func NewWaiverService(waiverRepo repository.WaiverRepository, registrationRepo repository.RegistrationRepository) WaiverService {
	return &waiverService{
		waiverRepo:       waiverRepo,
		registrationRepo: registrationRepo,
		now:              defaultNow,
	}
}

func (s *waiverService) CreateTemplate(ctx context.Context, licenseeID uuid.UUID, title, content string) (*model.WaiverTemplate, error) {
	tpl := &model.WaiverTemplate{
		LicenseeID: licenseeID,
		Title:      title,
		Content:    content,
		Version:    1,
		Active:     true,
	}
	if err := s.waiverRepo.CreateTemplate(ctx, tpl); err != nil {
		return nil, fmt.Errorf("create waiver template: %w", err)
	}
	return tpl, nil
}

func (s *waiverService) GetTemplate(ctx context.Context, id uuid.UUID) (*model.WaiverTemplate, error) {
	tpl, err := s.waiverRepo.GetTemplate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tpl, nil
}

func (s *waiverService) UpdateTemplate(ctx context.Context, id uuid.UUID, input WaiverTemplateInput) (*model.WaiverTemplate, error) {
	tpl, err := s.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		tpl.Title = input.Title
	}
	if input.Active != nil {
		tpl.Active = *input.Active
	}
	if input.Content != "" && input.Content != tpl.Content {
		tpl.Content = input.Content
		tpl.Version++
	}

	if err := s.waiverRepo.UpdateTemplate(ctx, tpl); err != nil {
		return nil, fmt.Errorf("update waiver template: %w", err)
	}
	return tpl, nil
}

func (s *waiverService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return s.waiverRepo.DeleteTemplate(ctx, id)
}

func (s *waiverService) ListTemplates(ctx context.Context, licenseeID uuid.UUID) ([]model.WaiverTemplate, error) {
	return s.waiverRepo.ListTemplates(ctx, licenseeID)
}

func (s *waiverService) Sign(ctx context.Context, templateID, athleteID, parentUserID uuid.UUID, ipAddress string) (*model.WaiverSigning, error) {
	tpl, err := s.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	existing, err := s.waiverRepo.GetSigning(ctx, templateID, tpl.Version, athleteID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup signing: %w", err)
	}

	signing := &model.WaiverSigning{
		TemplateID:      templateID,
		TemplateVersion: tpl.Version,
		AthleteID:       athleteID,
		ParentUserID:    parentUserID,
		SignedAt:        s.now(),
		IPAddress:       ipAddress,
	}
	if err := s.waiverRepo.CreateSigning(ctx, signing); err != nil {
		return nil, fmt.Errorf("create signing: %w", err)
	}
	return signing, nil
}

func (s *waiverService) CampStatus(ctx context.Context, templateID, campID uuid.UUID) (*WaiverCampStatus, error) {
	tpl, err := s.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	regs, err := s.registrationRepo.ListConfirmedByCamp(ctx, campID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	athleteIDs := make([]uuid.UUID, 0, len(regs))
	for _, reg := range regs {
		athleteIDs = append(athleteIDs, reg.AthleteID)
	}
	signedVersions, err := s.waiverRepo.LatestSignedVersions(ctx, templateID, athleteIDs)
	if err != nil {
		return nil, fmt.Errorf("aggregate signings: %w", err)
	}

	status := &WaiverCampStatus{
		TemplateID:      templateID,
		TemplateVersion: tpl.Version,
		Athletes:        make([]AthleteWaiverStatus, 0, len(regs)),
	}
	for _, reg := range regs {
		row := AthleteWaiverStatus{AthleteID: reg.AthleteID}
		if reg.Athlete != nil {
			row.AthleteName = reg.Athlete.FullName()
		}
		version, signed := signedVersions[reg.AthleteID]
		switch {
		case !signed:
			status.Unsigned++
		case version >= tpl.Version:
			row.SignedVersion = version
			row.Current = true
			status.SignedCurrent++
		default:
			row.SignedVersion = version
			status.SignedOutdated++
		}
		status.Athletes = append(status.Athletes, row)
	}
	return status, nil
}
