package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
	"camphq/platform/internal/repository"
)

type mockTerritoryRepo struct {
	territories map[uuid.UUID]*model.Territory
}

func (m *mockTerritoryRepo) Create(_ context.Context, t *model.Territory) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	m.territories[t.ID] = t
	return nil
}

func (m *mockTerritoryRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Territory, error) {
	t, ok := m.territories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (m *mockTerritoryRepo) Update(_ context.Context, t *model.Territory) error {
	m.territories[t.ID] = t
	return nil
}

func (m *mockTerritoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.territories, id)
	return nil
}

func (m *mockTerritoryRepo) List(_ context.Context) ([]model.Territory, error) {
	var out []model.Territory
	for _, t := range m.territories {
		out = append(out, *t)
	}
	return out, nil
}

type mockLicenseeRepo struct {
	licensees map[uuid.UUID]*model.Licensee
}

func (m *mockLicenseeRepo) Create(_ context.Context, l *model.Licensee) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	m.licensees[l.ID] = l
	return nil
}

func (m *mockLicenseeRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Licensee, error) {
	l, ok := m.licensees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (m *mockLicenseeRepo) Update(_ context.Context, l *model.Licensee) error {
	m.licensees[l.ID] = l
	return nil
}

func (m *mockLicenseeRepo) List(_ context.Context, _ repository.Page) ([]model.Licensee, int64, error) {
	var out []model.Licensee
	for _, l := range m.licensees {
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

func (m *mockLicenseeRepo) CountActiveByTerritory(_ context.Context, territoryID uuid.UUID) (int64, error) {
	var count int64
	for _, l := range m.licensees {
		if l.TerritoryID == territoryID && l.Active {
			count++
		}
	}
	return count, nil
}

type mockApplicationRepo struct {
	apps map[uuid.UUID]*model.LicenseeApplication
}

func (m *mockApplicationRepo) Create(_ context.Context, app *model.LicenseeApplication) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	m.apps[app.ID] = app
	return nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (*model.LicenseeApplication, error) {
	app, ok := m.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return app, nil
}

func (m *mockApplicationRepo) Update(_ context.Context, app *model.LicenseeApplication) error {
	m.apps[app.ID] = app
	return nil
}

func (m *mockApplicationRepo) List(_ context.Context, status *model.ApplicationStatus, _ repository.Page) ([]model.LicenseeApplication, int64, error) {
	var out []model.LicenseeApplication
	for _, app := range m.apps {
		if status != nil && app.Status != *status {
			continue
		}
		out = append(out, *app)
	}
	return out, int64(len(out)), nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type captureMailer struct {
	sent []sentMail
}

func (m *captureMailer) Send(_ context.Context, to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type licenseeFixture struct {
	svc       *licenseeService
	licensees *mockLicenseeRepo
	mailer    *captureMailer
	territory *model.Territory
	app       *model.LicenseeApplication
}

func newLicenseeFixture(t *testing.T) *licenseeFixture {
	t.Helper()
	territories := &mockTerritoryRepo{territories: make(map[uuid.UUID]*model.Territory)}
	licensees := &mockLicenseeRepo{licensees: make(map[uuid.UUID]*model.Licensee)}
	apps := &mockApplicationRepo{apps: make(map[uuid.UUID]*model.LicenseeApplication)}
	mailer := &captureMailer{}

	svc := NewLicenseeService(territories, licensees, apps, passTx{}, mailer, zap.NewNop()).(*licenseeService)
	svc.now = fixedNow

	territory, err := svc.CreateTerritory(context.Background(), "North Austin", "TX", "")
	if err != nil {
		t.Fatalf("create territory: %v", err)
	}
	app, err := svc.SubmitApplication(context.Background(), ApplicationInput{
		TerritoryID:    territory.ID,
		BusinessName:   "Hill Country Sports LLC",
		ApplicantName:  "Dana Wells",
		ApplicantEmail: "dana@hilcountrysports.com",
	})
	if err != nil {
		t.Fatalf("submit application: %v", err)
	}
	return &licenseeFixture{svc: svc, licensees: licensees, mailer: mailer, territory: territory, app: app}
}

func TestSubmitApplication_Defaults(t *testing.T) {
	f := newLicenseeFixture(t)

	if f.app.Status != model.ApplicationPending {
		t.Errorf("expected pending status, got %s", f.app.Status)
	}
	if f.territory.Country != "US" {
		t.Errorf("expected country default US, got %s", f.territory.Country)
	}
}

func TestSubmitApplication_UnknownTerritory(t *testing.T) {
	f := newLicenseeFixture(t)

	_, err := f.svc.SubmitApplication(context.Background(), ApplicationInput{TerritoryID: uuid.New()})
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReview_InReviewKeepsApplicationOpen(t *testing.T) {
	f := newLicenseeFixture(t)
	reviewer := uuid.New()

	app, err := f.svc.Review(context.Background(), f.app.ID, model.ApplicationInReview, "checking references", reviewer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Status != model.ApplicationInReview {
		t.Errorf("expected in_review, got %s", app.Status)
	}
	if app.ReviewedAt != nil {
		t.Error("ReviewedAt must stay unset until a terminal decision")
	}
	if len(f.mailer.sent) != 0 {
		t.Error("non-terminal review must not email the applicant")
	}

	// Still reviewable afterwards.
	if _, err := f.svc.Review(context.Background(), f.app.ID, model.ApplicationApproved, "", reviewer); err != nil {
		t.Fatalf("expected approval after in_review, got %v", err)
	}
}

func TestReview_ApproveCreatesLicensee(t *testing.T) {
	f := newLicenseeFixture(t)
	reviewer := uuid.New()

	app, err := f.svc.Review(context.Background(), f.app.ID, model.ApplicationApproved, "looks solid", reviewer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Status != model.ApplicationApproved {
		t.Errorf("expected approved, got %s", app.Status)
	}
	if app.ReviewedAt == nil || !app.ReviewedAt.Equal(testNow) {
		t.Error("expected ReviewedAt pinned to review time")
	}
	if app.LicenseeID == nil {
		t.Fatal("approval must link the created licensee")
	}

	licensee, ok := f.licensees.licensees[*app.LicenseeID]
	if !ok {
		t.Fatal("expected licensee row created")
	}
	if licensee.TerritoryID != f.territory.ID || licensee.BusinessName != f.app.BusinessName {
		t.Errorf("licensee fields not carried from application: %+v", licensee)
	}
	if !licensee.Active {
		t.Error("new licensee must start active")
	}

	if len(f.mailer.sent) != 1 {
		t.Fatalf("expected one decision email, got %d", len(f.mailer.sent))
	}
	if f.mailer.sent[0].to != f.app.ApplicantEmail {
		t.Errorf("email sent to %s", f.mailer.sent[0].to)
	}
	if !strings.Contains(f.mailer.sent[0].subject, "approved") {
		t.Errorf("unexpected subject %q", f.mailer.sent[0].subject)
	}
}

func TestReview_RejectLeavesNoLicensee(t *testing.T) {
	f := newLicenseeFixture(t)

	app, err := f.svc.Review(context.Background(), f.app.ID, model.ApplicationRejected, "territory taken", uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.LicenseeID != nil {
		t.Error("rejection must not create a licensee")
	}
	if len(f.licensees.licensees) != 0 {
		t.Error("expected no licensee rows")
	}
	if len(f.mailer.sent) != 1 || strings.Contains(f.mailer.sent[0].subject, "was approved") {
		t.Errorf("expected rejection email, got %+v", f.mailer.sent)
	}
}

func TestReview_FinalizedApplicationIsImmutable(t *testing.T) {
	f := newLicenseeFixture(t)
	reviewer := uuid.New()

	if _, err := f.svc.Review(context.Background(), f.app.ID, model.ApplicationRejected, "", reviewer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := f.svc.Review(context.Background(), f.app.ID, model.ApplicationApproved, "", reviewer)
	if err != ErrApplicationFinalized {
		t.Errorf("expected ErrApplicationFinalized, got %v", err)
	}
}

func TestDeleteTerritory_UnknownTerritory(t *testing.T) {
	f := newLicenseeFixture(t)

	err := f.svc.DeleteTerritory(context.Background(), uuid.New())
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTerritory_BlockedByActiveLicensee(t *testing.T) {
	f := newLicenseeFixture(t)

	if _, err := f.svc.Review(context.Background(), f.app.ID, model.ApplicationApproved, "", uuid.New()); err != nil {
		t.Fatalf("approve application: %v", err)
	}

	err := f.svc.DeleteTerritory(context.Background(), f.territory.ID)
	if err != ErrTerritoryHasLicensee {
		t.Fatalf("expected ErrTerritoryHasLicensee, got %v", err)
	}

	territories, err := f.svc.ListTerritories(context.Background())
	if err != nil {
		t.Fatalf("list territories: %v", err)
	}
	if len(territories) != 1 {
		t.Error("territory must survive a blocked delete")
	}
}

func TestDeleteTerritory_AllowedOnceLicenseeInactive(t *testing.T) {
	f := newLicenseeFixture(t)

	app, err := f.svc.Review(context.Background(), f.app.ID, model.ApplicationApproved, "", uuid.New())
	if err != nil {
		t.Fatalf("approve application: %v", err)
	}
	f.licensees.licensees[*app.LicenseeID].Active = false

	if err := f.svc.DeleteTerritory(context.Background(), f.territory.ID); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
	if _, err := f.svc.SubmitApplication(context.Background(), ApplicationInput{TerritoryID: f.territory.ID}); err != ErrNotFound {
		t.Errorf("expected territory gone, got %v", err)
	}
}

func TestReview_InvalidStatus(t *testing.T) {
	f := newLicenseeFixture(t)

	_, err := f.svc.Review(context.Background(), f.app.ID, model.ApplicationStatus("archived"), "", uuid.New())
	if err != ErrInvalidStatusChange {
		t.Errorf("expected ErrInvalidStatusChange, got %v", err)
	}
}
