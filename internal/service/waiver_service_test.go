package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
	"camphq/platform/internal/repository"
)

type signingKey struct {
	templateID uuid.UUID
	version    int
	athleteID  uuid.UUID
}

type mockWaiverRepo struct {
	templates map[uuid.UUID]*model.WaiverTemplate
	signings  map[signingKey]*model.WaiverSigning
}

func newMockWaiverRepo() *mockWaiverRepo {
	return &mockWaiverRepo{
		templates: make(map[uuid.UUID]*model.WaiverTemplate),
		signings:  make(map[signingKey]*model.WaiverSigning),
	}
}

func (m *mockWaiverRepo) CreateTemplate(_ context.Context, tpl *model.WaiverTemplate) error {
	if tpl.ID == uuid.Nil {
		tpl.ID = uuid.New()
	}
	m.templates[tpl.ID] = tpl
	return nil
}

func (m *mockWaiverRepo) GetTemplate(_ context.Context, id uuid.UUID) (*model.WaiverTemplate, error) {
	tpl, ok := m.templates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tpl, nil
}

func (m *mockWaiverRepo) UpdateTemplate(_ context.Context, tpl *model.WaiverTemplate) error {
	m.templates[tpl.ID] = tpl
	return nil
}

func (m *mockWaiverRepo) DeleteTemplate(_ context.Context, id uuid.UUID) error {
	delete(m.templates, id)
	return nil
}

func (m *mockWaiverRepo) ListTemplates(_ context.Context, licenseeID uuid.UUID) ([]model.WaiverTemplate, error) {
	var out []model.WaiverTemplate
	for _, tpl := range m.templates {
		if tpl.LicenseeID == licenseeID {
			out = append(out, *tpl)
		}
	}
	return out, nil
}

func (m *mockWaiverRepo) CreateSigning(_ context.Context, s *model.WaiverSigning) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	m.signings[signingKey{s.TemplateID, s.TemplateVersion, s.AthleteID}] = s
	return nil
}

func (m *mockWaiverRepo) GetSigning(_ context.Context, templateID uuid.UUID, version int, athleteID uuid.UUID) (*model.WaiverSigning, error) {
	s, ok := m.signings[signingKey{templateID, version, athleteID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (m *mockWaiverRepo) ListSigningsByTemplate(_ context.Context, templateID uuid.UUID) ([]model.WaiverSigning, error) {
	var out []model.WaiverSigning
	for _, s := range m.signings {
		if s.TemplateID == templateID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockWaiverRepo) LatestSignedVersions(_ context.Context, templateID uuid.UUID, athleteIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	want := make(map[uuid.UUID]bool, len(athleteIDs))
	for _, id := range athleteIDs {
		want[id] = true
	}
	out := make(map[uuid.UUID]int)
	for key, s := range m.signings {
		if key.templateID != templateID || !want[s.AthleteID] {
			continue
		}
		if key.version > out[s.AthleteID] {
			out[s.AthleteID] = key.version
		}
	}
	return out, nil
}

type mockRegistrationRepo struct {
	regs []*model.Registration
}

func (m *mockRegistrationRepo) Create(_ context.Context, reg *model.Registration) error {
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	m.regs = append(m.regs, reg)
	return nil
}

func (m *mockRegistrationRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Registration, error) {
	for _, reg := range m.regs {
		if reg.ID == id {
			return reg, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRegistrationRepo) GetByCampAndAthlete(_ context.Context, campID, athleteID uuid.UUID) (*model.Registration, error) {
	for _, reg := range m.regs {
		if reg.CampID == campID && reg.AthleteID == athleteID {
			return reg, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRegistrationRepo) Update(_ context.Context, reg *model.Registration) error {
	for i, r := range m.regs {
		if r.ID == reg.ID {
			m.regs[i] = reg
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockRegistrationRepo) ListByCamp(_ context.Context, campID uuid.UUID, _ repository.Page) ([]model.Registration, int64, error) {
	var out []model.Registration
	for _, reg := range m.regs {
		if reg.CampID == campID {
			out = append(out, *reg)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockRegistrationRepo) ListConfirmedByCamp(_ context.Context, campID uuid.UUID) ([]model.Registration, error) {
	var out []model.Registration
	for _, reg := range m.regs {
		if reg.CampID == campID && reg.Status == model.RegistrationConfirmed {
			out = append(out, *reg)
		}
	}
	return out, nil
}

func (m *mockRegistrationRepo) ListByParent(_ context.Context, parentUserID uuid.UUID) ([]model.Registration, error) {
	var out []model.Registration
	for _, reg := range m.regs {
		if reg.ParentUserID == parentUserID {
			out = append(out, *reg)
		}
	}
	return out, nil
}

func (m *mockRegistrationRepo) ListAll(_ context.Context) ([]model.Registration, error) {
	var out []model.Registration
	for _, reg := range m.regs {
		out = append(out, *reg)
	}
	return out, nil
}

func (m *mockRegistrationRepo) CountConfirmed(_ context.Context, campID uuid.UUID) (int64, error) {
	var n int64
	for _, reg := range m.regs {
		if reg.CampID == campID && reg.Status == model.RegistrationConfirmed {
			n++
		}
	}
	return n, nil
}

func newWaiverService(waiverRepo *mockWaiverRepo, regRepo *mockRegistrationRepo) *waiverService {
	svc := NewWaiverService(waiverRepo, regRepo).(*waiverService)
	svc.now = fixedNow
	return svc
}

func TestUpdateTemplate_ContentChangeBumpsVersion(t *testing.T) {
	repo := newMockWaiverRepo()
	svc := newWaiverService(repo, &mockRegistrationRepo{})

	tpl, err := svc.CreateTemplate(context.Background(), uuid.New(), "Liability Waiver", "v1 text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tpl.Version != 1 {
		t.Fatalf("expected version 1, got %d", tpl.Version)
	}

	updated, err := svc.UpdateTemplate(context.Background(), tpl.ID, WaiverTemplateInput{Content: "v2 text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Version != 2 {
		t.Errorf("expected version bump to 2, got %d", updated.Version)
	}
}

func TestUpdateTemplate_TitleOnlyKeepsVersion(t *testing.T) {
	repo := newMockWaiverRepo()
	svc := newWaiverService(repo, &mockRegistrationRepo{})

	tpl, _ := svc.CreateTemplate(context.Background(), uuid.New(), "Liability Waiver", "text")

	updated, err := svc.UpdateTemplate(context.Background(), tpl.ID, WaiverTemplateInput{Title: "Renamed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Version != 1 {
		t.Errorf("title-only edit must not bump version, got %d", updated.Version)
	}
	if updated.Title != "Renamed" {
		t.Errorf("expected title updated, got %q", updated.Title)
	}
}

func TestSign_IdempotentPerVersion(t *testing.T) {
	repo := newMockWaiverRepo()
	svc := newWaiverService(repo, &mockRegistrationRepo{})

	tpl, _ := svc.CreateTemplate(context.Background(), uuid.New(), "Waiver", "text")
	athleteID := uuid.New()
	parentID := uuid.New()

	first, err := svc.Sign(context.Background(), tpl.ID, athleteID, parentID, "10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Sign(context.Background(), tpl.ID, athleteID, parentID, "10.0.0.2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != second.ID {
		t.Error("re-signing the same version should return the existing signing")
	}
	if len(repo.signings) != 1 {
		t.Errorf("expected 1 signing, got %d", len(repo.signings))
	}
}

func TestSign_NewVersionRequiresNewSigning(t *testing.T) {
	repo := newMockWaiverRepo()
	svc := newWaiverService(repo, &mockRegistrationRepo{})

	tpl, _ := svc.CreateTemplate(context.Background(), uuid.New(), "Waiver", "v1")
	athleteID := uuid.New()
	parentID := uuid.New()

	v1, _ := svc.Sign(context.Background(), tpl.ID, athleteID, parentID, "")
	if _, err := svc.UpdateTemplate(context.Background(), tpl.ID, WaiverTemplateInput{Content: "v2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v2, err := svc.Sign(context.Background(), tpl.ID, athleteID, parentID, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v1.ID == v2.ID {
		t.Error("signing after a content change should create a fresh row")
	}
	if v2.TemplateVersion != 2 {
		t.Errorf("expected signing pinned to version 2, got %d", v2.TemplateVersion)
	}
}

func TestCampStatus_Buckets(t *testing.T) {
	repo := newMockWaiverRepo()
	regs := &mockRegistrationRepo{}
	svc := newWaiverService(repo, regs)

	tpl, _ := svc.CreateTemplate(context.Background(), uuid.New(), "Waiver", "v1")
	campID := uuid.New()

	current := &model.Athlete{ID: uuid.New(), FirstName: "Ana", LastName: "Reyes"}
	outdated := &model.Athlete{ID: uuid.New(), FirstName: "Ben", LastName: "Okafor"}
	unsigned := &model.Athlete{ID: uuid.New(), FirstName: "Cy", LastName: "Lund"}
	for _, a := range []*model.Athlete{current, outdated, unsigned} {
		_ = regs.Create(context.Background(), &model.Registration{
			CampID:    campID,
			AthleteID: a.ID,
			Status:    model.RegistrationConfirmed,
			Athlete:   a,
		})
	}

	// outdated signs v1, then content changes, then current signs v2.
	if _, err := svc.Sign(context.Background(), tpl.ID, outdated.ID, uuid.New(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.UpdateTemplate(context.Background(), tpl.ID, WaiverTemplateInput{Content: "v2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Sign(context.Background(), tpl.ID, current.ID, uuid.New(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status, err := svc.CampStatus(context.Background(), tpl.ID, campID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.TemplateVersion != 2 {
		t.Errorf("expected template version 2, got %d", status.TemplateVersion)
	}
	if status.SignedCurrent != 1 || status.SignedOutdated != 1 || status.Unsigned != 1 {
		t.Errorf("expected 1/1/1 buckets, got %d/%d/%d",
			status.SignedCurrent, status.SignedOutdated, status.Unsigned)
	}
	if len(status.Athletes) != 3 {
		t.Fatalf("expected 3 athlete rows, got %d", len(status.Athletes))
	}
	for _, row := range status.Athletes {
		if row.AthleteID == current.ID && (!row.Current || row.SignedVersion != 2) {
			t.Errorf("expected current signer at v2, got %+v", row)
		}
		if row.AthleteID == unsigned.ID && row.SignedVersion != 0 {
			t.Errorf("expected unsigned athlete at version 0, got %+v", row)
		}
	}
}
