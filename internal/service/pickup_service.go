package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
	"camphq/platform/internal/repository"
)

// Validation error codes, checked in priority order.
const (
	PickupCodeNotFound     = "not_found"
	PickupCodeAlreadyUsed  = "already_used"
	PickupCodeExpired      = "expired"
	PickupCodeWrongCampDay = "wrong_camp_day"
)

// PickupValidation is the outcome of validating a token string. Validation
// failures are data, not errors: callers branch on ErrorCode. Infrastructure
// failures travel in the error return instead.
type PickupValidation struct {
	Valid     bool   `json:"valid"`
	ErrorCode string `json:"error_code,omitempty"`

	Token       *model.PickupToken `json:"token,omitempty"`
	AthleteName string             `json:"athlete_name,omitempty"`
	CampName    string             `json:"camp_name,omitempty"`
	CampDayDate string             `json:"camp_day_date,omitempty"`
}

// GenerateResult reports the outcome of a batch generation pass.
type GenerateResult struct {
	Generated int `json:"generated"`
	Expired   int `json:"expired"`
}

// PickupUseResult reports a successful QR checkout.
type PickupUseResult struct {
	AthleteID   uuid.UUID `json:"athlete_id"`
	AthleteName string    `json:"athlete_name"`
	CampDayID   uuid.UUID `json:"camp_day_id"`
	UsedAt      time.Time `json:"used_at"`
}

type PickupService interface {
	// GenerateForCampDay force-expires every unused token of the day, then
	// mints one fresh token per currently checked-in athlete.
	GenerateForCampDay(ctx context.Context, campDayID uuid.UUID) (*GenerateResult, error)
	// GenerateForAthlete is the idempotent single-athlete variant: an
	// existing live token is returned instead of minting a duplicate.
	GenerateForAthlete(ctx context.Context, campDayID, athleteID uuid.UUID) (*model.PickupToken, error)
	Validate(ctx context.Context, token string, expectedCampDayID *uuid.UUID) (*PickupValidation, error)
	// Use re-validates, then atomically marks the token used and flips the
	// matching attendance row to checked_out with method qr.
	Use(ctx context.Context, token string, usedBy uuid.UUID) (*PickupUseResult, error)
	// ManualCheckout bypasses token validation for staff override. A reason
	// is required; any outstanding live token is marked used with it so a
	// stale token cannot linger as valid after the override.
	ManualCheckout(ctx context.Context, campDayID, athleteID, byUserID uuid.UUID, reason string) error
	ListForCampDay(ctx context.Context, campDayID uuid.UUID) ([]model.PickupToken, error)
}

type pickupService struct {
	tokenRepo      repository.PickupTokenRepository
	attendanceRepo repository.AttendanceRepository
	athleteRepo    repository.AthleteRepository
	campRepo       repository.CampRepository
	tx             repository.TxManager
	now            nowFunc
}

func NewPickupService(
	tokenRepo repository.PickupTokenRepository,
	attendanceRepo repository.AttendanceRepository,
	athleteRepo repository.AthleteRepository,
	campRepo repository.CampRepository,
	tx repository.TxManager,
) PickupService {
	return &pickupService{
		tokenRepo:      tokenRepo,
		attendanceRepo: attendanceRepo,
		athleteRepo:    athleteRepo,
		campRepo:       campRepo,
		tx:             tx,
		now:            defaultNow,
	}
}

func (s *pickupService) GenerateForCampDay(ctx context.Context, campDayID uuid.UUID) (*GenerateResult, error) {
	if _, err := s.campRepo.GetDay(ctx, campDayID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup camp day: %w", err)
	}

	result := &GenerateResult{}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		now := s.now()

		expired, err := s.tokenRepo.ExpireUnusedForCampDay(ctx, campDayID, now)
		if err != nil {
			return fmt.Errorf("expire outstanding tokens: %w", err)
		}
		result.Expired = int(expired)

		checkedIn, err := s.attendanceRepo.ListCheckedIn(ctx, campDayID)
		if err != nil {
			return fmt.Errorf("list checked-in athletes: %w", err)
		}

		tokens := make([]*model.PickupToken, 0, len(checkedIn))
		for _, att := range checkedIn {
			if att.Athlete == nil {
				continue
			}
			code, err := generatePickupCode()
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}
			tokens = append(tokens, &model.PickupToken{
				CampDayID:       campDayID,
				AthleteID:       att.AthleteID,
				ParentProfileID: att.Athlete.ParentUserID,
				Token:           code,
				ExpiresAt:       endOfDay(now),
			})
		}
		if err := s.tokenRepo.CreateBatch(ctx, tokens); err != nil {
			return fmt.Errorf("create tokens: %w", err)
		}
		result.Generated = len(tokens)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *pickupService) GenerateForAthlete(ctx context.Context, campDayID, athleteID uuid.UUID) (*model.PickupToken, error) {
	now := s.now()

	existing, err := s.tokenRepo.FindLive(ctx, campDayID, athleteID, now)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup live token: %w", err)
	}

	athlete, err := s.athleteRepo.GetByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup athlete: %w", err)
	}

	code, err := generatePickupCode()
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	token := &model.PickupToken{
		CampDayID:       campDayID,
		AthleteID:       athleteID,
		ParentProfileID: athlete.ParentUserID,
		Token:           code,
		ExpiresAt:       endOfDay(now),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}
	return token, nil
}

func (s *pickupService) Validate(ctx context.Context, token string, expectedCampDayID *uuid.UUID) (*PickupValidation, error) {
	pt, err := s.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &PickupValidation{ErrorCode: PickupCodeNotFound}, nil
		}
		return nil, fmt.Errorf("lookup token: %w", err)
	}

	if pt.IsUsed {
		return &PickupValidation{ErrorCode: PickupCodeAlreadyUsed, Token: pt}, nil
	}
	if pt.IsExpired(s.now()) {
		return &PickupValidation{ErrorCode: PickupCodeExpired, Token: pt}, nil
	}
	if expectedCampDayID != nil && pt.CampDayID != *expectedCampDayID {
		return &PickupValidation{ErrorCode: PickupCodeWrongCampDay, Token: pt}, nil
	}

	result := &PickupValidation{Valid: true, Token: pt}
	if pt.Athlete != nil {
		result.AthleteName = pt.Athlete.FullName()
	}
	if pt.CampDay != nil {
		result.CampDayDate = pt.CampDay.Date.Format("2006-01-02")
		if pt.CampDay.Camp != nil {
			result.CampName = pt.CampDay.Camp.Name
		}
	}
	return result, nil
}

func (s *pickupService) Use(ctx context.Context, token string, usedBy uuid.UUID) (*PickupUseResult, error) {
	validation, err := s.Validate(ctx, token, nil)
	if err != nil {
		return nil, err
	}
	if !validation.Valid {
		return nil, fmt.Errorf("%w: %s", ErrPickupTokenInvalid, validation.ErrorCode)
	}

	// Between the validation above and the update below, a concurrent scan
	// of the same code can slip through: the update carries no
	// is_used = false guard. Kept as-is; see design notes.
	pt := validation.Token
	now := s.now()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		pt.IsUsed = true
		pt.UsedAt = &now
		pt.UsedByUserID = &usedBy
		if err := s.tokenRepo.Update(ctx, pt); err != nil {
			return fmt.Errorf("mark token used: %w", err)
		}

		att, err := s.attendanceRepo.GetByDayAndAthlete(ctx, pt.CampDayID, pt.AthleteID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotCheckedIn
			}
			return fmt.Errorf("lookup attendance: %w", err)
		}
		method := model.CheckoutMethodQR
		att.Status = model.AttendanceCheckedOut
		att.CheckedOutAt = &now
		att.CheckedOutBy = &usedBy
		att.CheckoutMethod = &method
		if err := s.attendanceRepo.Update(ctx, att); err != nil {
			return fmt.Errorf("check out athlete: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PickupUseResult{
		AthleteID:   pt.AthleteID,
		AthleteName: validation.AthleteName,
		CampDayID:   pt.CampDayID,
		UsedAt:      now,
	}, nil
}

func (s *pickupService) ManualCheckout(ctx context.Context, campDayID, athleteID, byUserID uuid.UUID, reason string) error {
	if reason == "" {
		return ErrManualReasonRequired
	}
	now := s.now()

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		att, err := s.attendanceRepo.GetByDayAndAthlete(ctx, campDayID, athleteID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotCheckedIn
			}
			return fmt.Errorf("lookup attendance: %w", err)
		}

		method := model.CheckoutMethodManual
		att.Status = model.AttendanceCheckedOut
		att.CheckedOutAt = &now
		att.CheckedOutBy = &byUserID
		att.CheckoutMethod = &method
		if err := s.attendanceRepo.Update(ctx, att); err != nil {
			return fmt.Errorf("check out athlete: %w", err)
		}

		// Consume any outstanding token so it cannot be scanned as valid
		// after the override.
		if _, err := s.tokenRepo.MarkLiveUsed(ctx, campDayID, athleteID, byUserID, reason, now); err != nil {
			return fmt.Errorf("invalidate outstanding token: %w", err)
		}
		return nil
	})
}

func (s *pickupService) ListForCampDay(ctx context.Context, campDayID uuid.UUID) ([]model.PickupToken, error) {
	return s.tokenRepo.ListByCampDay(ctx, campDayID)
}

// generatePickupCode returns 16 random bytes hex-encoded. Collision
// probability at this size is treated as negligible; there is no retry.
func generatePickupCode() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// endOfDay returns the last second of the given time's calendar day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}
