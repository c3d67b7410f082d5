package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
	"camphq/platform/internal/repository"
)

type ProductInput struct {
	Name        string
	Description string
	ImageURL    string
	Active      *bool
}

type VariantInput struct {
	SKU        string
	Size       string
	Color      string
	PriceCents int64
	Stock      int
}

// CartView is a cart joined against live variant data: stale lines (deleted
// variants) are dropped and quantities are capped at current stock.
type CartView struct {
	ID         string         `json:"id"`
	Items      []CartViewItem `json:"items"`
	TotalCents int64          `json:"total_cents"`
}

type CartViewItem struct {
	Variant  model.ProductVariant `json:"variant"`
	Quantity int                  `json:"quantity"`
}

type ShopService interface {
	CreateProduct(ctx context.Context, input ProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, page repository.Page, activeOnly bool) ([]model.Product, int64, error)

	AddVariant(ctx context.Context, productID uuid.UUID, input VariantInput) (*model.ProductVariant, error)
	UpdateVariant(ctx context.Context, id uuid.UUID, input VariantInput) (*model.ProductVariant, error)
	DeleteVariant(ctx context.Context, id uuid.UUID) error

	GetCart(ctx context.Context, cartID string) (*CartView, error)
	// SetCartItem sets the quantity for a variant; zero removes the line.
	SetCartItem(ctx context.Context, cartID string, variantID uuid.UUID, quantity int) (*CartView, error)
	ClearCart(ctx context.Context, cartID string) error
}

type shopService struct {
	productRepo repository.ProductRepository
	carts       repository.StateStore
	cartTTL     time.Duration
	now         nowFunc
}

func NewShopService(productRepo repository.ProductRepository, carts repository.StateStore, cartTTL time.Duration) ShopService {
	if cartTTL <= 0 {
		cartTTL = 30 * 24 * time.Hour
	}
	return &shopService{
		productRepo: productRepo,
		carts:       carts,
		cartTTL:     cartTTL,
		now:         defaultNow,
	}
}

func (s *shopService) CreateProduct(ctx context.Context, input ProductInput) (*model.Product, error) {
	product := &model.Product{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Active:      true,
	}
	if input.Active != nil {
		product.Active = *input.Active
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (s *shopService) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *shopService) UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*model.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.ImageURL != "" {
		product.ImageURL = input.ImageURL
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

func (s *shopService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *shopService) ListProducts(ctx context.Context, page repository.Page, activeOnly bool) ([]model.Product, int64, error) {
	if activeOnly {
		return s.productRepo.ListActive(ctx, page)
	}
	return s.productRepo.List(ctx, page)
}

func (s *shopService) AddVariant(ctx context.Context, productID uuid.UUID, input VariantInput) (*model.ProductVariant, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	variant := &model.ProductVariant{
		ProductID:  productID,
		SKU:        input.SKU,
		Size:       input.Size,
		Color:      input.Color,
		PriceCents: input.PriceCents,
		Stock:      input.Stock,
	}
	if err := s.productRepo.CreateVariant(ctx, variant); err != nil {
		return nil, fmt.Errorf("create variant: %w", err)
	}
	return variant, nil
}

func (s *shopService) UpdateVariant(ctx context.Context, id uuid.UUID, input VariantInput) (*model.ProductVariant, error) {
	variant, err := s.productRepo.GetVariant(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.SKU != "" {
		variant.SKU = input.SKU
	}
	if input.Size != "" {
		variant.Size = input.Size
	}
	if input.Color != "" {
		variant.Color = input.Color
	}
	if input.PriceCents > 0 {
		variant.PriceCents = input.PriceCents
	}
	if input.Stock >= 0 {
		variant.Stock = input.Stock
	}

	if err := s.productRepo.UpdateVariant(ctx, variant); err != nil {
		return nil, fmt.Errorf("update variant: %w", err)
	}
	return variant, nil
}

func (s *shopService) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.DeleteVariant(ctx, id)
}

func (s *shopService) GetCart(ctx context.Context, cartID string) (*CartView, error) {
	cart, err := s.loadCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, cart)
}

func (s *shopService) SetCartItem(ctx context.Context, cartID string, variantID uuid.UUID, quantity int) (*CartView, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.productRepo.GetVariant(ctx, variantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVariantNotFound
		}
		return nil, fmt.Errorf("lookup variant: %w", err)
	}

	cart, err := s.loadCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	items := cart.Items[:0]
	for _, it := range cart.Items {
		if it.VariantID != variantID {
			items = append(items, it)
		}
	}
	if quantity > 0 {
		items = append(items, model.CartItem{VariantID: variantID, Quantity: quantity})
	}
	cart.Items = items
	cart.UpdatedAt = s.now()

	if err := repository.SetJSON(ctx, s.carts, cartKey(cartID), cart, s.cartTTL); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return s.buildView(ctx, cart)
}

func (s *shopService) ClearCart(ctx context.Context, cartID string) error {
	return s.carts.Delete(ctx, cartKey(cartID))
}

func (s *shopService) loadCart(ctx context.Context, cartID string) (*model.Cart, error) {
	cart := &model.Cart{ID: cartID}
	found, err := repository.GetJSON(ctx, s.carts, cartKey(cartID), cart)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !found {
		cart = &model.Cart{ID: cartID}
	}
	return cart, nil
}

// buildView resolves cart lines against live variants. Lines whose variant
// vanished are dropped; quantities are capped at current stock.
func (s *shopService) buildView(ctx context.Context, cart *model.Cart) (*CartView, error) {
	view := &CartView{ID: cart.ID, Items: []CartViewItem{}}
	if len(cart.Items) == 0 {
		return view, nil
	}

	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, it := range cart.Items {
		ids = append(ids, it.VariantID)
	}
	variants, err := s.productRepo.GetVariantsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve variants: %w", err)
	}
	byID := make(map[uuid.UUID]model.ProductVariant, len(variants))
	for _, v := range variants {
		byID[v.ID] = v
	}

	for _, it := range cart.Items {
		variant, ok := byID[it.VariantID]
		if !ok {
			continue
		}
		qty := it.Quantity
		if qty > variant.Stock {
			qty = variant.Stock
		}
		if qty == 0 {
			continue
		}
		view.Items = append(view.Items, CartViewItem{Variant: variant, Quantity: qty})
		view.TotalCents += variant.PriceCents * int64(qty)
	}
	return view, nil
}

func cartKey(cartID string) string {
	return "cart:" + cartID
}
