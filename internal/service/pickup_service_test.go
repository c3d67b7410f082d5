package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
	"camphq/platform/internal/repository"
)

var testNow = time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

// passTx runs the function directly; repos in tests have no transactions.
type passTx struct{}

func (passTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockTokenRepo struct {
	tokens map[string]*model.PickupToken
}

func newMockTokenRepo() *mockTokenRepo {
	return &mockTokenRepo{tokens: make(map[string]*model.PickupToken)}
}

func (m *mockTokenRepo) Create(_ context.Context, t *model.PickupToken) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	m.tokens[t.Token] = t
	return nil
}

func (m *mockTokenRepo) CreateBatch(ctx context.Context, ts []*model.PickupToken) error {
	for _, t := range ts {
		if err := m.Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockTokenRepo) GetByToken(_ context.Context, token string) (*model.PickupToken, error) {
	t, ok := m.tokens[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (m *mockTokenRepo) Update(_ context.Context, t *model.PickupToken) error {
	m.tokens[t.Token] = t
	return nil
}

func (m *mockTokenRepo) FindLive(_ context.Context, campDayID, athleteID uuid.UUID, now time.Time) (*model.PickupToken, error) {
	for _, t := range m.tokens {
		if t.CampDayID == campDayID && t.AthleteID == athleteID && !t.IsUsed && t.ExpiresAt.After(now) {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTokenRepo) ExpireUnusedForCampDay(_ context.Context, campDayID uuid.UUID, now time.Time) (int64, error) {
	var n int64
	for _, t := range m.tokens {
		if t.CampDayID == campDayID && !t.IsUsed && t.ExpiresAt.After(now) {
			t.ExpiresAt = now
			n++
		}
	}
	return n, nil
}

func (m *mockTokenRepo) MarkLiveUsed(_ context.Context, campDayID, athleteID, usedBy uuid.UUID, reason string, now time.Time) (int64, error) {
	var n int64
	for _, t := range m.tokens {
		if t.CampDayID == campDayID && t.AthleteID == athleteID && !t.IsUsed && t.ExpiresAt.After(now) {
			t.IsUsed = true
			t.UsedAt = &now
			t.UsedByUserID = &usedBy
			t.ManualReason = reason
			n++
		}
	}
	return n, nil
}

func (m *mockTokenRepo) ListByCampDay(_ context.Context, campDayID uuid.UUID) ([]model.PickupToken, error) {
	var out []model.PickupToken
	for _, t := range m.tokens {
		if t.CampDayID == campDayID {
			out = append(out, *t)
		}
	}
	return out, nil
}

type mockAttendanceRepo struct {
	rows map[uuid.UUID]*model.CampAttendance
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{rows: make(map[uuid.UUID]*model.CampAttendance)}
}

func (m *mockAttendanceRepo) Create(_ context.Context, att *model.CampAttendance) error {
	if att.ID == uuid.Nil {
		att.ID = uuid.New()
	}
	m.rows[att.ID] = att
	return nil
}

func (m *mockAttendanceRepo) Update(_ context.Context, att *model.CampAttendance) error {
	m.rows[att.ID] = att
	return nil
}

func (m *mockAttendanceRepo) GetByDayAndAthlete(_ context.Context, campDayID, athleteID uuid.UUID) (*model.CampAttendance, error) {
	for _, att := range m.rows {
		if att.CampDayID == campDayID && att.AthleteID == athleteID {
			return att, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) ListByCampDay(_ context.Context, campDayID uuid.UUID) ([]model.CampAttendance, error) {
	var out []model.CampAttendance
	for _, att := range m.rows {
		if att.CampDayID == campDayID {
			out = append(out, *att)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepo) ListCheckedIn(_ context.Context, campDayID uuid.UUID) ([]model.CampAttendance, error) {
	var out []model.CampAttendance
	for _, att := range m.rows {
		if att.CampDayID == campDayID && att.Status == model.AttendanceCheckedIn {
			out = append(out, *att)
		}
	}
	return out, nil
}

type mockAthleteRepo struct {
	athletes map[uuid.UUID]*model.Athlete
}

func newMockAthleteRepo() *mockAthleteRepo {
	return &mockAthleteRepo{athletes: make(map[uuid.UUID]*model.Athlete)}
}

func (m *mockAthleteRepo) Create(_ context.Context, a *model.Athlete) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	m.athletes[a.ID] = a
	return nil
}

func (m *mockAthleteRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Athlete, error) {
	a, ok := m.athletes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (m *mockAthleteRepo) Update(_ context.Context, a *model.Athlete) error {
	m.athletes[a.ID] = a
	return nil
}

func (m *mockAthleteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.athletes, id)
	return nil
}

func (m *mockAthleteRepo) List(_ context.Context, _ repository.Page) ([]model.Athlete, int64, error) {
	var out []model.Athlete
	for _, a := range m.athletes {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (m *mockAthleteRepo) ListByParent(_ context.Context, parentUserID uuid.UUID) ([]model.Athlete, error) {
	var out []model.Athlete
	for _, a := range m.athletes {
		if a.ParentUserID == parentUserID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockAthleteRepo) ListAll(_ context.Context) ([]model.Athlete, error) {
	var out []model.Athlete
	for _, a := range m.athletes {
		out = append(out, *a)
	}
	return out, nil
}

type mockCampRepo struct {
	camps map[uuid.UUID]*model.Camp
	days  map[uuid.UUID]*model.CampDay
}

func newMockCampRepo() *mockCampRepo {
	return &mockCampRepo{
		camps: make(map[uuid.UUID]*model.Camp),
		days:  make(map[uuid.UUID]*model.CampDay),
	}
}

func (m *mockCampRepo) Create(_ context.Context, c *model.Camp) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	m.camps[c.ID] = c
	return nil
}

func (m *mockCampRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Camp, error) {
	c, ok := m.camps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (m *mockCampRepo) Update(_ context.Context, c *model.Camp) error {
	m.camps[c.ID] = c
	return nil
}

func (m *mockCampRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.camps, id)
	return nil
}

func (m *mockCampRepo) List(_ context.Context, _ *uuid.UUID, _ repository.Page) ([]model.Camp, int64, error) {
	var out []model.Camp
	for _, c := range m.camps {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (m *mockCampRepo) CreateDay(_ context.Context, d *model.CampDay) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	m.days[d.ID] = d
	return nil
}

func (m *mockCampRepo) GetDay(_ context.Context, id uuid.UUID) (*model.CampDay, error) {
	d, ok := m.days[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (m *mockCampRepo) ListDays(_ context.Context, campID uuid.UUID) ([]model.CampDay, error) {
	var out []model.CampDay
	for _, d := range m.days {
		if d.CampID == campID {
			out = append(out, *d)
		}
	}
	return out, nil
}

type pickupFixture struct {
	svc       *pickupService
	tokens    *mockTokenRepo
	atts      *mockAttendanceRepo
	athletes  *mockAthleteRepo
	camps     *mockCampRepo
	campDayID uuid.UUID
	athleteID uuid.UUID
	parentID  uuid.UUID
	staffID   uuid.UUID
}

// newPickupFixture wires a service over mocks with one camp day and one
// checked-in athlete.
func newPickupFixture(t *testing.T) *pickupFixture {
	t.Helper()

	tokens := newMockTokenRepo()
	atts := newMockAttendanceRepo()
	athletes := newMockAthleteRepo()
	camps := newMockCampRepo()

	svc := NewPickupService(tokens, atts, athletes, camps, passTx{}).(*pickupService)
	svc.now = fixedNow

	parentID := uuid.New()
	athlete := &model.Athlete{
		ID:           uuid.New(),
		ParentUserID: parentID,
		FirstName:    "Maya",
		LastName:     "Torres",
	}
	_ = athletes.Create(context.Background(), athlete)

	camp := &model.Camp{ID: uuid.New(), Name: "Summer Soccer"}
	_ = camps.Create(context.Background(), camp)
	day := &model.CampDay{ID: uuid.New(), CampID: camp.ID, Date: testNow, Camp: camp}
	_ = camps.CreateDay(context.Background(), day)

	staffID := uuid.New()
	_ = atts.Create(context.Background(), &model.CampAttendance{
		CampDayID:   day.ID,
		AthleteID:   athlete.ID,
		Status:      model.AttendanceCheckedIn,
		CheckedInAt: testNow,
		CheckedInBy: staffID,
		Athlete:     athlete,
	})

	return &pickupFixture{
		svc:       svc,
		tokens:    tokens,
		atts:      atts,
		athletes:  athletes,
		camps:     camps,
		campDayID: day.ID,
		athleteID: athlete.ID,
		parentID:  parentID,
		staffID:   staffID,
	}
}

func TestGenerateForCampDay_MintsPerCheckedInAthlete(t *testing.T) {
	f := newPickupFixture(t)

	result, err := f.svc.GenerateForCampDay(context.Background(), f.campDayID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Generated != 1 {
		t.Errorf("expected 1 token generated, got %d", result.Generated)
	}
	if result.Expired != 0 {
		t.Errorf("expected 0 tokens expired, got %d", result.Expired)
	}

	live, err := f.tokens.FindLive(context.Background(), f.campDayID, f.athleteID, testNow)
	if err != nil {
		t.Fatalf("expected a live token: %v", err)
	}
	if len(live.Token) != 32 {
		t.Errorf("expected 32-char hex token, got %q", live.Token)
	}
	if live.ParentProfileID != f.parentID {
		t.Errorf("token bound to wrong parent")
	}
}

func TestGenerateForCampDay_SkipsCheckedOutAthletes(t *testing.T) {
	f := newPickupFixture(t)

	goneHome := &model.Athlete{
		ID:           uuid.New(),
		ParentUserID: uuid.New(),
		FirstName:    "Leo",
		LastName:     "Park",
	}
	_ = f.athletes.Create(context.Background(), goneHome)
	_ = f.atts.Create(context.Background(), &model.CampAttendance{
		CampDayID:   f.campDayID,
		AthleteID:   goneHome.ID,
		Status:      model.AttendanceCheckedOut,
		CheckedInAt: testNow,
		CheckedInBy: f.staffID,
		Athlete:     goneHome,
	})

	result, err := f.svc.GenerateForCampDay(context.Background(), f.campDayID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Generated != 1 {
		t.Errorf("expected 1 token for the checked-in athlete only, got %d", result.Generated)
	}

	if _, err := f.tokens.FindLive(context.Background(), f.campDayID, f.athleteID, testNow); err != nil {
		t.Errorf("expected a live token for the checked-in athlete: %v", err)
	}
	if _, err := f.tokens.FindLive(context.Background(), f.campDayID, goneHome.ID, testNow); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected no token for the checked-out athlete, got %v", err)
	}
}

func TestGenerateForCampDay_ForceExpiresOutstanding(t *testing.T) {
	f := newPickupFixture(t)

	first, err := f.svc.GenerateForCampDay(context.Background(), f.campDayID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Generated != 1 {
		t.Fatalf("expected 1 token, got %d", first.Generated)
	}

	second, err := f.svc.GenerateForCampDay(context.Background(), f.campDayID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Expired != 1 {
		t.Errorf("expected 1 old token expired, got %d", second.Expired)
	}
	if second.Generated != 1 {
		t.Errorf("expected 1 fresh token, got %d", second.Generated)
	}

	// Exactly one live token per athlete after regeneration.
	var liveCount int
	for _, tok := range f.tokens.tokens {
		if !tok.IsUsed && tok.ExpiresAt.After(testNow) {
			liveCount++
		}
	}
	if liveCount != 1 {
		t.Errorf("expected exactly 1 live token, got %d", liveCount)
	}
}

func TestGenerateForCampDay_UnknownDay(t *testing.T) {
	f := newPickupFixture(t)

	_, err := f.svc.GenerateForCampDay(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGenerateForAthlete_Idempotent(t *testing.T) {
	f := newPickupFixture(t)

	first, err := f.svc.GenerateForAthlete(context.Background(), f.campDayID, f.athleteID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := f.svc.GenerateForAthlete(context.Background(), f.campDayID, f.athleteID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Token != second.Token {
		t.Errorf("expected the live token to be reused, got %q vs %q", first.Token, second.Token)
	}
}

func TestValidate_NotFound(t *testing.T) {
	f := newPickupFixture(t)

	result, err := f.svc.Validate(context.Background(), "deadbeef", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Error("expected invalid result")
	}
	if result.ErrorCode != PickupCodeNotFound {
		t.Errorf("expected %s, got %s", PickupCodeNotFound, result.ErrorCode)
	}
}

func TestValidate_UsedBeatsExpired(t *testing.T) {
	f := newPickupFixture(t)

	usedAt := testNow.Add(-2 * time.Hour)
	staff := f.staffID
	// Used AND expired: already_used must win.
	_ = f.tokens.Create(context.Background(), &model.PickupToken{
		CampDayID:    f.campDayID,
		AthleteID:    f.athleteID,
		Token:        "aaaa",
		IsUsed:       true,
		UsedAt:       &usedAt,
		UsedByUserID: &staff,
		ExpiresAt:    testNow.Add(-time.Hour),
	})

	result, err := f.svc.Validate(context.Background(), "aaaa", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ErrorCode != PickupCodeAlreadyUsed {
		t.Errorf("expected %s, got %s", PickupCodeAlreadyUsed, result.ErrorCode)
	}
}

func TestValidate_Expired(t *testing.T) {
	f := newPickupFixture(t)

	_ = f.tokens.Create(context.Background(), &model.PickupToken{
		CampDayID: f.campDayID,
		AthleteID: f.athleteID,
		Token:     "bbbb",
		ExpiresAt: testNow.Add(-time.Minute),
	})

	result, err := f.svc.Validate(context.Background(), "bbbb", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ErrorCode != PickupCodeExpired {
		t.Errorf("expected %s, got %s", PickupCodeExpired, result.ErrorCode)
	}
}

func TestValidate_WrongCampDay(t *testing.T) {
	f := newPickupFixture(t)

	_ = f.tokens.Create(context.Background(), &model.PickupToken{
		CampDayID: f.campDayID,
		AthleteID: f.athleteID,
		Token:     "cccc",
		ExpiresAt: testNow.Add(time.Hour),
	})

	otherDay := uuid.New()
	result, err := f.svc.Validate(context.Background(), "cccc", &otherDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ErrorCode != PickupCodeWrongCampDay {
		t.Errorf("expected %s, got %s", PickupCodeWrongCampDay, result.ErrorCode)
	}
}

func TestValidate_LiveTokenCarriesDetails(t *testing.T) {
	f := newPickupFixture(t)

	token, err := f.svc.GenerateForAthlete(context.Background(), f.campDayID, f.athleteID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Simulate the preloads a DB fetch would return.
	athlete, _ := f.athletes.GetByID(context.Background(), f.athleteID)
	day, _ := f.camps.GetDay(context.Background(), f.campDayID)
	stored := f.tokens.tokens[token.Token]
	stored.Athlete = athlete
	stored.CampDay = day

	result, err := f.svc.Validate(context.Background(), token.Token, &f.campDayID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid result, got error_code %s", result.ErrorCode)
	}
	if result.AthleteName != "Maya Torres" {
		t.Errorf("expected athlete name, got %q", result.AthleteName)
	}
	if result.CampName != "Summer Soccer" {
		t.Errorf("expected camp name, got %q", result.CampName)
	}
}

func TestUse_MarksUsedAndChecksOut(t *testing.T) {
	f := newPickupFixture(t)

	token, err := f.svc.GenerateForAthlete(context.Background(), f.campDayID, f.athleteID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := f.svc.Use(context.Background(), token.Token, f.staffID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AthleteID != f.athleteID {
		t.Errorf("wrong athlete in result")
	}

	stored := f.tokens.tokens[token.Token]
	if !stored.IsUsed {
		t.Error("expected token marked used")
	}
	if stored.UsedByUserID == nil || *stored.UsedByUserID != f.staffID {
		t.Error("expected used_by to record the scanning staff member")
	}

	att, err := f.atts.GetByDayAndAthlete(context.Background(), f.campDayID, f.athleteID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if att.Status != model.AttendanceCheckedOut {
		t.Errorf("expected checked_out, got %s", att.Status)
	}
	if att.CheckoutMethod == nil || *att.CheckoutMethod != model.CheckoutMethodQR {
		t.Error("expected checkout method qr")
	}
}

func TestUse_SecondScanRejected(t *testing.T) {
	f := newPickupFixture(t)

	token, err := f.svc.GenerateForAthlete(context.Background(), f.campDayID, f.athleteID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.svc.Use(context.Background(), token.Token, f.staffID); err != nil {
		t.Fatalf("first use failed: %v", err)
	}
	_, err = f.svc.Use(context.Background(), token.Token, f.staffID)
	if !errors.Is(err, ErrPickupTokenInvalid) {
		t.Errorf("expected ErrPickupTokenInvalid on second scan, got %v", err)
	}
}

func TestUse_InvalidTokenLeavesAttendanceAlone(t *testing.T) {
	f := newPickupFixture(t)

	_, err := f.svc.Use(context.Background(), "nope", f.staffID)
	if !errors.Is(err, ErrPickupTokenInvalid) {
		t.Fatalf("expected ErrPickupTokenInvalid, got %v", err)
	}

	att, err := f.atts.GetByDayAndAthlete(context.Background(), f.campDayID, f.athleteID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if att.Status != model.AttendanceCheckedIn {
		t.Errorf("attendance should be untouched, got %s", att.Status)
	}
}

func TestManualCheckout_RequiresReason(t *testing.T) {
	f := newPickupFixture(t)

	err := f.svc.ManualCheckout(context.Background(), f.campDayID, f.athleteID, f.staffID, "")
	if !errors.Is(err, ErrManualReasonRequired) {
		t.Errorf("expected ErrManualReasonRequired, got %v", err)
	}
}

func TestManualCheckout_ConsumesLiveToken(t *testing.T) {
	f := newPickupFixture(t)

	token, err := f.svc.GenerateForAthlete(context.Background(), f.campDayID, f.athleteID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = f.svc.ManualCheckout(context.Background(), f.campDayID, f.athleteID, f.staffID, "parent lost phone")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	att, _ := f.atts.GetByDayAndAthlete(context.Background(), f.campDayID, f.athleteID)
	if att.Status != model.AttendanceCheckedOut {
		t.Errorf("expected checked_out, got %s", att.Status)
	}
	if att.CheckoutMethod == nil || *att.CheckoutMethod != model.CheckoutMethodManual {
		t.Error("expected checkout method manual")
	}

	stored := f.tokens.tokens[token.Token]
	if !stored.IsUsed {
		t.Error("expected outstanding token consumed by override")
	}
	if stored.ManualReason != "parent lost phone" {
		t.Errorf("expected reason recorded, got %q", stored.ManualReason)
	}

	result, err := f.svc.Validate(context.Background(), token.Token, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ErrorCode != PickupCodeAlreadyUsed {
		t.Errorf("stale token should scan as already_used, got %s", result.ErrorCode)
	}
}

func TestManualCheckout_NotCheckedIn(t *testing.T) {
	f := newPickupFixture(t)

	err := f.svc.ManualCheckout(context.Background(), f.campDayID, uuid.New(), f.staffID, "left early")
	if !errors.Is(err, ErrNotCheckedIn) {
		t.Errorf("expected ErrNotCheckedIn, got %v", err)
	}
}

func TestEndOfDay(t *testing.T) {
	eod := endOfDay(testNow)
	if eod.Hour() != 23 || eod.Minute() != 59 || eod.Second() != 59 {
		t.Errorf("expected 23:59:59, got %v", eod)
	}
	if eod.Day() != testNow.Day() {
		t.Errorf("expiry crossed the day boundary: %v", eod)
	}
}
