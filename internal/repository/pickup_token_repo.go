package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"camphq/platform/internal/model"
)

type PickupTokenRepository interface {
	Create(ctx context.Context, token *model.PickupToken) error
	CreateBatch(ctx context.Context, tokens []*model.PickupToken) error
	GetByToken(ctx context.Context, token string) (*model.PickupToken, error)
	Update(ctx context.Context, token *model.PickupToken) error
	// FindLive returns the unused, unexpired token for (camp_day, athlete),
	// or gorm.ErrRecordNotFound.
	FindLive(ctx context.Context, campDayID, athleteID uuid.UUID, now time.Time) (*model.PickupToken, error)
	// ExpireUnusedForCampDay force-expires every unused token of the day by
	// setting expires_at to now. Returns the number of rows touched.
	ExpireUnusedForCampDay(ctx context.Context, campDayID uuid.UUID, now time.Time) (int64, error)
	// MarkLiveUsed marks any outstanding live token for (camp_day, athlete)
	// as used with the given reason. Returns the number of rows touched.
	MarkLiveUsed(ctx context.Context, campDayID, athleteID, usedBy uuid.UUID, reason string, now time.Time) (int64, error)
	ListByCampDay(ctx context.Context, campDayID uuid.UUID) ([]model.PickupToken, error)
}
