package handler

import (
	"log/slog"
	"net/http"

	"mpeshop/internal/delivery/http/response"
	"mpeshop/internal/domain/entity"
	"mpeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type addItemInput struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"`
}

type cartLineResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type cartResponse struct {
	Lines     []cartLineResponse `json:"lines"`
	Subtotal  string             `json:"subtotal"`
	ItemCount int                `json:"item_count"`
}

type productResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	SKU            string `json:"sku"`
	Category       string `json:"category"`
	Price          string `json:"price"`
	PriceOnRequest bool   `json:"price_on_request"`
	InStock        bool   `json:"in_stock"`
}

// GetProduct serves the product detail lookup by slug.
func (h *CartHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	price := product.EffectivePrice()

	return response.Success(c, http.StatusOK, productResponse{
		ID:             product.ID.String(),
		Name:           product.Name,
		Slug:           product.Slug,
		SKU:            product.SKU,
		Category:       string(product.Category),
		Price:          price.StringFixed(2),
		PriceOnRequest: price.IsZero(),
		InStock:        product.InStock,
	}, "")
}

// AddItem handles adding a product to the session cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input addItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart input")
	}

	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	qty := input.Quantity
	if qty == 0 {
		qty = 1
	}

	if err := h.uc.AddItem(c.Request().Context(), sessionID(c), productID, qty); err != nil {
		return errors.WithStack(err)
	}

	return h.viewCart(c, http.StatusOK, "Item added to basket")
}

// RemoveItem handles removing a product from the session cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), sessionID(c), productID); err != nil {
		return errors.WithStack(err)
	}

	return h.viewCart(c, http.StatusOK, "Item removed from basket")
}

// View handles the resolved cart view request.
func (h *CartHandler) View(c echo.Context) error {
	return h.viewCart(c, http.StatusOK, "")
}

func (h *CartHandler) viewCart(c echo.Context, statusCode int, message string) error {
	view, err := h.uc.View(c.Request().Context(), sessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, statusCode, toCartResponse(view), message)
}

func toCartResponse(view *entity.CartView) cartResponse {
	out := cartResponse{
		Lines:     make([]cartLineResponse, 0, len(view.Lines)),
		Subtotal:  view.Subtotal.StringFixed(2),
		ItemCount: view.ItemCount,
	}
	for _, line := range view.Lines {
		out.Lines = append(out.Lines, cartLineResponse{
			ProductID: line.Product.ID.String(),
			Name:      line.Product.Name,
			SKU:       line.Product.SKU,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.EffectivePrice().StringFixed(2),
			LineTotal: line.LineTotal.StringFixed(2),
		})
	}

	return out
}
