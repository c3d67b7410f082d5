package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
)

type progressKey struct {
	userID   uuid.UUID
	moduleID uuid.UUID
}

type mockLmsRepo struct {
	modules  map[uuid.UUID]*model.LmsModule
	progress map[progressKey]*model.LmsProgress
}

func newMockLmsRepo() *mockLmsRepo {
	return &mockLmsRepo{
		modules:  make(map[uuid.UUID]*model.LmsModule),
		progress: make(map[progressKey]*model.LmsProgress),
	}
}

func (m *mockLmsRepo) CreateModule(_ context.Context, mod *model.LmsModule) error {
	if mod.ID == uuid.Nil {
		mod.ID = uuid.New()
	}
	m.modules[mod.ID] = mod
	return nil
}

func (m *mockLmsRepo) GetModule(_ context.Context, id uuid.UUID) (*model.LmsModule, error) {
	mod, ok := m.modules[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return mod, nil
}

func (m *mockLmsRepo) UpdateModule(_ context.Context, mod *model.LmsModule) error {
	m.modules[mod.ID] = mod
	return nil
}

func (m *mockLmsRepo) DeleteModule(_ context.Context, id uuid.UUID) error {
	delete(m.modules, id)
	return nil
}

func (m *mockLmsRepo) ListModules(_ context.Context) ([]model.LmsModule, error) {
	var out []model.LmsModule
	for _, mod := range m.modules {
		out = append(out, *mod)
	}
	return out, nil
}

func (m *mockLmsRepo) GetProgress(_ context.Context, userID, moduleID uuid.UUID) (*model.LmsProgress, error) {
	p, ok := m.progress[progressKey{userID, moduleID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (m *mockLmsRepo) SaveProgress(_ context.Context, p *model.LmsProgress) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.progress[progressKey{p.UserID, p.ModuleID}] = p
	return nil
}

func (m *mockLmsRepo) ListProgressByUser(_ context.Context, userID uuid.UUID) ([]model.LmsProgress, error) {
	var out []model.LmsProgress
	for key, p := range m.progress {
		if key.userID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func newLmsService(repo *mockLmsRepo) *lmsService {
	svc := NewLmsService(repo).(*lmsService)
	svc.now = fixedNow
	return svc
}

func TestRecordProgress_ClampsPercent(t *testing.T) {
	repo := newMockLmsRepo()
	svc := newLmsService(repo)

	mod, _ := svc.CreateModule(context.Background(), LmsModuleInput{Title: "Safety Basics", PassThreshold: 80})
	userID := uuid.New()

	p, err := svc.RecordProgress(context.Background(), userID, mod.ID, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Percent != 100 {
		t.Errorf("expected clamp to 100, got %d", p.Percent)
	}

	p2, err := svc.RecordProgress(context.Background(), uuid.New(), mod.ID, -5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p2.Percent != 0 {
		t.Errorf("expected clamp to 0, got %d", p2.Percent)
	}
}

func TestRecordProgress_NeverDecreases(t *testing.T) {
	repo := newMockLmsRepo()
	svc := newLmsService(repo)

	mod, _ := svc.CreateModule(context.Background(), LmsModuleInput{Title: "Drills", PassThreshold: 100})
	userID := uuid.New()

	if _, err := svc.RecordProgress(context.Background(), userID, mod.ID, 60); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := svc.RecordProgress(context.Background(), userID, mod.ID, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Percent != 60 {
		t.Errorf("progress must be monotone, expected 60, got %d", p.Percent)
	}
}

func TestRecordProgress_CompletionLatches(t *testing.T) {
	repo := newMockLmsRepo()
	svc := newLmsService(repo)

	mod, _ := svc.CreateModule(context.Background(), LmsModuleInput{Title: "First Aid", PassThreshold: 80})
	userID := uuid.New()

	p, err := svc.RecordProgress(context.Background(), userID, mod.ID, 85)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CompletedAt == nil {
		t.Fatal("expected completion at threshold")
	}
	completedAt := *p.CompletedAt

	p2, err := svc.RecordProgress(context.Background(), userID, mod.ID, 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p2.CompletedAt == nil || !p2.CompletedAt.Equal(completedAt) {
		t.Error("completion timestamp must latch on first crossing")
	}
}

func TestRecordProgress_UnknownModule(t *testing.T) {
	svc := newLmsService(newMockLmsRepo())

	_, err := svc.RecordProgress(context.Background(), uuid.New(), uuid.New(), 50)
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSummary_Rollup(t *testing.T) {
	repo := newMockLmsRepo()
	svc := newLmsService(repo)

	done, _ := svc.CreateModule(context.Background(), LmsModuleInput{Title: "A", PassThreshold: 50})
	_, _ = svc.CreateModule(context.Background(), LmsModuleInput{Title: "B", PassThreshold: 100})
	userID := uuid.New()

	if _, err := svc.RecordProgress(context.Background(), userID, done.ID, 75); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := svc.Summary(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalModules != 2 {
		t.Errorf("expected 2 modules, got %d", summary.TotalModules)
	}
	if summary.CompletedModules != 1 {
		t.Errorf("expected 1 completed, got %d", summary.CompletedModules)
	}
	if summary.PercentComplete != 50 {
		t.Errorf("expected 50%% complete, got %d", summary.PercentComplete)
	}
}
