package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mpeshop/internal/delivery/http/response"
	"mpeshop/internal/domain/entity"
	domainerrors "mpeshop/internal/domain/errors"
	"mpeshop/internal/infra/settings"
	"mpeshop/internal/usecase"

	validatorlib "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for the checkout handler.
type CheckoutHandler struct {
	uc       usecase.CheckoutUsecase
	settings *settings.Store
	logger   *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, store *settings.Store, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:       uc,
		settings: store,
		logger:   logger,
	}
}

type orderResponse struct {
	ID                  string     `json:"id"`
	Reference           string     `json:"reference"`
	Status              string     `json:"status"`
	Total               string     `json:"total"`
	ItemCount           int        `json:"item_count"`
	EmailSentToCustomer bool       `json:"email_sent_to_customer"`
	EmailSentToInternal bool       `json:"email_sent_to_internal"`
	EmailSentAt         *time.Time `json:"email_sent_at,omitempty"`
	EmailLastError      string     `json:"email_last_error,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// Checkout turns the session cart into an order.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var input usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&input); err != nil {
		return validationError(c, err)
	}

	order, err := h.uc.Checkout(c.Request().Context(), sessionID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	out := checkoutResponse{
		orderResponse: toOrderResponse(order),
		Redirect:      h.confirmationURL(order),
	}

	return response.Success(c, http.StatusCreated, out, "Order placed successfully")
}

type checkoutResponse struct {
	orderResponse
	Redirect string `json:"redirect,omitempty"`
}

// confirmationURL points the customer at their order document. Empty when no
// public base URL is configured.
func (h *CheckoutHandler) confirmationURL(order *entity.Order) string {
	base := strings.TrimRight(h.settings.Current().Shop.PublicBaseURL, "/")
	if base == "" {
		return ""
	}

	return base + "/shop/orders/" + order.ID.String() + "/pdf"
}

// validationError maps field-level validation failures to a response the
// checkout form can render next to its fields.
func validationError(c echo.Context, err error) error {
	var fieldErrs validatorlib.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, strings.ToLower(fe.Field())+": "+fe.Tag())
		}

		return response.Error(c,
			domainerrors.ErrValidationFailed.HTTPCode(),
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			strings.Join(fields, "; "),
		)
	}

	return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid checkout input")
}

func toOrderResponse(order *entity.Order) orderResponse {
	return orderResponse{
		ID:                  order.ID.String(),
		Reference:           order.Reference(),
		Status:              string(order.Status),
		Total:               order.Total.StringFixed(2),
		ItemCount:           len(order.Items),
		EmailSentToCustomer: order.EmailSentToCustomer,
		EmailSentToInternal: order.EmailSentToInternal,
		EmailSentAt:         order.EmailSentAt,
		EmailLastError:      order.EmailLastError,
		CreatedAt:           order.CreatedAt,
	}
}
