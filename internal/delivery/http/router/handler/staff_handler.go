package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mpeshop/internal/delivery/http/response"
	"mpeshop/internal/domain/entity"
	"mpeshop/internal/infra/settings"
	"mpeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StaffHandler holds dependencies for the staff-facing order operations.
type StaffHandler struct {
	orders   usecase.OrderUsecase
	importer usecase.ProductImportUsecase
	settings *settings.Store
	logger   *slog.Logger
}

// NewStaffHandler is the constructor for StaffHandler, injected by Fx.
func NewStaffHandler(
	orders usecase.OrderUsecase,
	importer usecase.ProductImportUsecase,
	store *settings.Store,
	logger *slog.Logger,
) *StaffHandler {
	return &StaffHandler{
		orders:   orders,
		importer: importer,
		settings: store,
		logger:   logger,
	}
}

type staffOrderItemResponse struct {
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
}

type staffOrderResponse struct {
	orderResponse
	Notes    string                   `json:"notes,omitempty"`
	Customer *staffContactResponse    `json:"customer,omitempty"`
	Items    []staffOrderItemResponse `json:"items"`
}

type staffContactResponse struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
}

// GetOrder returns the full order; fetching a new order marks it viewed.
func (h *StaffHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.orders.GetOrder(c.Request().Context(), orderID, true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStaffOrderResponse(order), "")
}

type updateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus sets the processing status.
func (h *StaffHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var input updateStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Status is required")
	}

	if err := h.orders.UpdateStatus(c.Request().Context(), orderID, entity.OrderStatus(input.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": input.Status}, "Order status updated")
}

type deliveryResponse struct {
	SentToCustomer bool       `json:"sent_to_customer"`
	SentToInternal bool       `json:"sent_to_internal"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	LastError      string     `json:"last_error,omitempty"`
}

// ResendEmail re-runs the notification dispatch for an order.
func (h *StaffHandler) ResendEmail(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	delivery, err := h.orders.ResendEmail(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deliveryResponse{
		SentToCustomer: delivery.SentToCustomer,
		SentToInternal: delivery.SentToInternal,
		SentAt:         delivery.SentAt,
		LastError:      delivery.LastError,
	}, "Notification dispatched")
}

type importInput struct {
	Rows []usecase.ImportRow `json:"rows" validate:"required,min=1"`
}

// ImportProducts upserts catalog products from an uploaded feed.
func (h *StaffHandler) ImportProducts(c echo.Context) error {
	var input importInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid import payload")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Import payload must contain rows")
	}

	report, err := h.importer.Import(c.Request().Context(), input.Rows)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Import complete")
}

// ReloadSettings re-reads the shop/pdf/email settings from the config source.
func (h *StaffHandler) ReloadSettings(c echo.Context) error {
	if err := h.settings.Reload(); err != nil {
		h.logger.ErrorContext(c.Request().Context(), "settings reload failed", slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "SETTINGS_RELOAD_FAILED", "Settings reload failed", err.Error())
	}

	return response.Success(c, http.StatusOK, nil, "Settings reloaded")
}

func toStaffOrderResponse(order *entity.Order) staffOrderResponse {
	out := staffOrderResponse{
		orderResponse: toOrderResponse(order),
		Notes:         order.Notes,
		Items:         make([]staffOrderItemResponse, 0, len(order.Items)),
	}
	if order.Contact != nil {
		out.Customer = &staffContactResponse{
			Name:    order.Contact.Name,
			Company: order.Contact.Company,
			Email:   order.Contact.Email,
			Phone:   order.Contact.Phone,
		}
	}
	for _, item := range order.Items {
		out.Items = append(out.Items, staffOrderItemResponse{
			ProductName: item.ProductName,
			SKU:         item.SKU,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Quantity:    item.Quantity,
		})
	}

	return out
}
