package repository

import (
	"context"

	"github.com/google/uuid"

	"camphq/platform/internal/model"
)

type WaiverRepository interface {
	CreateTemplate(ctx context.Context, tpl *model.WaiverTemplate) error
	GetTemplate(ctx context.Context, id uuid.UUID) (*model.WaiverTemplate, error)
	UpdateTemplate(ctx context.Context, tpl *model.WaiverTemplate) error
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	ListTemplates(ctx context.Context, licenseeID uuid.UUID) ([]model.WaiverTemplate, error)

	CreateSigning(ctx context.Context, signing *model.WaiverSigning) error
	GetSigning(ctx context.Context, templateID uuid.UUID, version int, athleteID uuid.UUID) (*model.WaiverSigning, error)
	ListSigningsByTemplate(ctx context.Context, templateID uuid.UUID) ([]model.WaiverSigning, error)
	// LatestSignedVersions returns, per athlete, the highest template version
	// that athlete has signed for the given template.
	LatestSignedVersions(ctx context.Context, templateID uuid.UUID, athleteIDs []uuid.UUID) (map[uuid.UUID]int, error)
}
