package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"camphq/platform/internal/service"
	"camphq/platform/pkg/response"
)

type ShopHandler struct {
	shopService service.ShopService
}

func NewShopHandler(shopService service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

type ProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Active      *bool  `json:"active"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Active:      r.Active,
	}
}

func (h *ShopHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	product, err := h.shopService.CreateProduct(c.Request.Context(), req.toInput())
	if err != nil {
		response.InternalError(c, "failed to create product")
		return
	}
	response.Success(c, product)
}

func (h *ShopHandler) GetProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}

	product, err := h.shopService.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalError(c, "failed to load product")
		return
	}
	response.Success(c, product)
}

func (h *ShopHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	product, err := h.shopService.UpdateProduct(c.Request.Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalError(c, "failed to update product")
		return
	}
	response.Success(c, product)
}

func (h *ShopHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}

	if err := h.shopService.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalError(c, "failed to delete product")
		return
	}
	response.Success(c, nil)
}

// ListProducts is public; only active products are shown unless the caller
// asks for all (admin listing reuses this with ?all=true).
func (h *ShopHandler) ListProducts(c *gin.Context) {
	page := parsePage(c)
	activeOnly := c.Query("all") != "true"

	products, total, err := h.shopService.ListProducts(c.Request.Context(), page, activeOnly)
	if err != nil {
		response.InternalError(c, "failed to list products")
		return
	}
	response.Success(c, pagedResponse(products, total, page))
}

type VariantRequest struct {
	SKU        string `json:"sku" binding:"required"`
	Size       string `json:"size"`
	Color      string `json:"color"`
	PriceCents int64  `json:"price_cents"`
	Stock      int    `json:"stock"`
}

func (r VariantRequest) toInput() service.VariantInput {
	return service.VariantInput{
		SKU:        r.SKU,
		Size:       r.Size,
		Color:      r.Color,
		PriceCents: r.PriceCents,
		Stock:      r.Stock,
	}
}

func (h *ShopHandler) AddVariant(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}

	var req VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	variant, err := h.shopService.AddVariant(c.Request.Context(), productID, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalError(c, "failed to add variant")
		return
	}
	response.Success(c, variant)
}

func (h *ShopHandler) UpdateVariant(c *gin.Context) {
	variantID, ok := parseUUIDParam(c, "variantID")
	if !ok {
		response.BadRequest(c, "invalid variant id")
		return
	}

	var req VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	variant, err := h.shopService.UpdateVariant(c.Request.Context(), variantID, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "variant not found")
			return
		}
		response.InternalError(c, "failed to update variant")
		return
	}
	response.Success(c, variant)
}

func (h *ShopHandler) DeleteVariant(c *gin.Context) {
	variantID, ok := parseUUIDParam(c, "variantID")
	if !ok {
		response.BadRequest(c, "invalid variant id")
		return
	}

	if err := h.shopService.DeleteVariant(c.Request.Context(), variantID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "variant not found")
			return
		}
		response.InternalError(c, "failed to delete variant")
		return
	}
	response.Success(c, nil)
}

// Carts are keyed by a client-held opaque id, so no login is required to
// build one. A fresh cart id is handed out on first touch.

func (h *ShopHandler) GetCart(c *gin.Context) {
	cartID := c.Param("cartID")
	if cartID == "" {
		response.BadRequest(c, "invalid cart id")
		return
	}

	cart, err := h.shopService.GetCart(c.Request.Context(), cartID)
	if err != nil {
		response.InternalError(c, "failed to load cart")
		return
	}
	response.Success(c, cart)
}

func (h *ShopHandler) CreateCart(c *gin.Context) {
	cartID := uuid.New().String()
	cart, err := h.shopService.GetCart(c.Request.Context(), cartID)
	if err != nil {
		response.InternalError(c, "failed to create cart")
		return
	}
	response.Success(c, cart)
}

type SetCartItemRequest struct {
	VariantID uuid.UUID `json:"variant_id" binding:"required"`
	Quantity  int       `json:"quantity"`
}

func (h *ShopHandler) SetCartItem(c *gin.Context) {
	cartID := c.Param("cartID")
	if cartID == "" {
		response.BadRequest(c, "invalid cart id")
		return
	}

	var req SetCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	cart, err := h.shopService.SetCartItem(c.Request.Context(), cartID, req.VariantID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVariantNotFound):
			response.NotFound(c, "variant not found")
		case errors.Is(err, service.ErrInvalidQuantity):
			response.BadRequest(c, "quantity must not be negative")
		default:
			response.InternalError(c, "failed to update cart")
		}
		return
	}
	response.Success(c, cart)
}

func (h *ShopHandler) ClearCart(c *gin.Context) {
	cartID := c.Param("cartID")
	if cartID == "" {
		response.BadRequest(c, "invalid cart id")
		return
	}

	if err := h.shopService.ClearCart(c.Request.Context(), cartID); err != nil {
		response.InternalError(c, "failed to clear cart")
		return
	}
	response.Success(c, nil)
}
