package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
	"camphq/platform/internal/repository"
)

type mockProductRepo struct {
	products map[uuid.UUID]*model.Product
	variants map[uuid.UUID]*model.ProductVariant
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{
		products: make(map[uuid.UUID]*model.Product),
		variants: make(map[uuid.UUID]*model.ProductVariant),
	}
}

func (m *mockProductRepo) Create(_ context.Context, product *model.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (m *mockProductRepo) Update(_ context.Context, product *model.Product) error {
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) ListActive(_ context.Context, _ repository.Page) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range m.products {
		if p.Active {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockProductRepo) List(_ context.Context, _ repository.Page) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (m *mockProductRepo) CreateVariant(_ context.Context, variant *model.ProductVariant) error {
	if variant.ID == uuid.Nil {
		variant.ID = uuid.New()
	}
	m.variants[variant.ID] = variant
	return nil
}

func (m *mockProductRepo) GetVariant(_ context.Context, id uuid.UUID) (*model.ProductVariant, error) {
	v, ok := m.variants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (m *mockProductRepo) UpdateVariant(_ context.Context, variant *model.ProductVariant) error {
	m.variants[variant.ID] = variant
	return nil
}

func (m *mockProductRepo) DeleteVariant(_ context.Context, id uuid.UUID) error {
	delete(m.variants, id)
	return nil
}

func (m *mockProductRepo) GetVariantsByIDs(_ context.Context, ids []uuid.UUID) ([]model.ProductVariant, error) {
	var out []model.ProductVariant
	for _, id := range ids {
		if v, ok := m.variants[id]; ok {
			out = append(out, *v)
		}
	}
	return out, nil
}

type shopFixture struct {
	repo    *mockProductRepo
	svc     *shopService
	variant *model.ProductVariant
}

func newShopFixture(t *testing.T) *shopFixture {
	t.Helper()
	repo := newMockProductRepo()
	svc := NewShopService(repo, repository.NewMemoryStateStore(), 0).(*shopService)
	svc.now = fixedNow

	product, err := svc.CreateProduct(context.Background(), ProductInput{Name: "Camp Jersey"})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	variant, err := svc.AddVariant(context.Background(), product.ID, VariantInput{
		SKU:        "JRS-YM-RED",
		Size:       "YM",
		Color:      "red",
		PriceCents: 2500,
		Stock:      10,
	})
	if err != nil {
		t.Fatalf("add variant: %v", err)
	}
	return &shopFixture{repo: repo, svc: svc, variant: variant}
}

func TestSetCartItem_AddUpdateRemove(t *testing.T) {
	f := newShopFixture(t)
	cartID := uuid.NewString()

	view, err := f.svc.SetCartItem(context.Background(), cartID, f.variant.ID, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Quantity != 2 {
		t.Fatalf("expected one line with qty 2, got %+v", view.Items)
	}
	if view.TotalCents != 5000 {
		t.Errorf("expected total 5000, got %d", view.TotalCents)
	}

	view, err = f.svc.SetCartItem(context.Background(), cartID, f.variant.ID, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Quantity != 5 {
		t.Fatalf("expected qty replaced with 5, got %+v", view.Items)
	}

	view, err = f.svc.SetCartItem(context.Background(), cartID, f.variant.ID, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Items) != 0 || view.TotalCents != 0 {
		t.Errorf("expected empty cart after zero quantity, got %+v", view)
	}
}

func TestSetCartItem_NegativeQuantity(t *testing.T) {
	f := newShopFixture(t)

	_, err := f.svc.SetCartItem(context.Background(), uuid.NewString(), f.variant.ID, -1)
	if err != ErrInvalidQuantity {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestSetCartItem_UnknownVariant(t *testing.T) {
	f := newShopFixture(t)

	_, err := f.svc.SetCartItem(context.Background(), uuid.NewString(), uuid.New(), 1)
	if err != ErrVariantNotFound {
		t.Errorf("expected ErrVariantNotFound, got %v", err)
	}
}

func TestGetCart_DropsVanishedVariants(t *testing.T) {
	f := newShopFixture(t)
	cartID := uuid.NewString()

	if _, err := f.svc.SetCartItem(context.Background(), cartID, f.variant.ID, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.svc.DeleteVariant(context.Background(), f.variant.ID); err != nil {
		t.Fatalf("delete variant: %v", err)
	}

	view, err := f.svc.GetCart(context.Background(), cartID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Items) != 0 {
		t.Errorf("expected vanished variant dropped, got %+v", view.Items)
	}
}

func TestGetCart_CapsQuantityAtStock(t *testing.T) {
	f := newShopFixture(t)
	cartID := uuid.NewString()

	if _, err := f.svc.SetCartItem(context.Background(), cartID, f.variant.ID, 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.variant.Stock = 3

	view, err := f.svc.GetCart(context.Background(), cartID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity capped at 3, got %+v", view.Items)
	}
	if view.TotalCents != 7500 {
		t.Errorf("expected total 7500, got %d", view.TotalCents)
	}
}

func TestGetCart_EmptyForUnknownID(t *testing.T) {
	f := newShopFixture(t)

	view, err := f.svc.GetCart(context.Background(), uuid.NewString())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Items) != 0 || view.TotalCents != 0 {
		t.Errorf("expected empty view, got %+v", view)
	}
}

func TestClearCart(t *testing.T) {
	f := newShopFixture(t)
	cartID := uuid.NewString()

	if _, err := f.svc.SetCartItem(context.Background(), cartID, f.variant.ID, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.svc.ClearCart(context.Background(), cartID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view, err := f.svc.GetCart(context.Background(), cartID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Items) != 0 {
		t.Errorf("expected cart cleared, got %+v", view.Items)
	}
}
