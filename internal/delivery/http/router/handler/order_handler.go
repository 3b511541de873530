package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"mpeshop/internal/delivery/http/response"
	domainerrors "mpeshop/internal/domain/errors"
	"mpeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler serves the customer-facing order document download.
type OrderHandler struct {
	documents usecase.DocumentUsecase
	logger    *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(documents usecase.DocumentUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		documents: documents,
		logger:    logger,
	}
}

// DownloadPDF streams the rendered order document.
func (h *OrderHandler) DownloadPDF(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	doc, err := h.documents.Download(c.Request().Context(), orderID)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.ErrorCode() == domainerrors.ErrDocumentRenderFailed.ErrorCode() {
			// Every render engine failed. A browser following a download link
			// gets a plain explanation rather than a JSON envelope.
			h.logger.ErrorContext(c.Request().Context(), "order document unavailable",
				slog.String("orderID", orderID.String()),
				slog.String("reasons", appErr.Details()),
			)

			return c.String(http.StatusInternalServerError, "The order document could not be generated. Please try again later.")
		}

		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, doc.Filename))

	return c.Blob(http.StatusOK, "application/pdf", doc.Content)
}
