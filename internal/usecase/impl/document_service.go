package impl

import (
	"context"
	"log/slog"
	"strings"

	"mpeshop/internal/domain/entity"
	domainerrors "mpeshop/internal/domain/errors"
	"mpeshop/internal/domain/repository"
	"mpeshop/internal/domain/service"
	"mpeshop/internal/errors"
	"mpeshop/internal/infra/settings"
	"mpeshop/internal/metrics"
	"mpeshop/internal/usecase"

	"github.com/google/uuid"
)

// Engine names used in logs, metrics and failure reasons.
const (
	engineStyled = "styled"
	engineVector = "vector"
)

type renderAttempt struct {
	engine   string
	renderer service.DocumentRenderer
}

type documentService struct {
	attempts []renderAttempt
	orders   repository.OrderRepository
	settings *settings.Store
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewDocumentService creates the document use case over the engine chain.
// The styled engine runs first and exactly once; the vector engine is the
// fallback.
func NewDocumentService(
	styled service.DocumentRenderer,
	vector service.DocumentRenderer,
	orders repository.OrderRepository,
	store *settings.Store,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.DocumentUsecase {
	return &documentService{
		attempts: []renderAttempt{
			{engine: engineStyled, renderer: styled},
			{engine: engineVector, renderer: vector},
		},
		orders:   orders,
		settings: store,
		metrics:  m,
		logger:   logger,
	}
}

func (s *documentService) Download(ctx context.Context, orderID uuid.UUID) (*usecase.Document, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find order")
	}

	content, err := s.render(ctx, order)
	if err != nil {
		return nil, domainerrors.ErrDocumentRenderFailed.WithDetails(err.Error())
	}

	return &usecase.Document{
		Filename: s.filename(order),
		Content:  content,
	}, nil
}

func (s *documentService) ForAttachment(ctx context.Context, order *entity.Order) (*usecase.Document, bool) {
	content, err := s.render(ctx, order)
	if err != nil {
		s.logger.WarnContext(ctx, "document render failed, email goes out without attachment",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)

		return nil, false
	}

	return &usecase.Document{
		Filename: s.filename(order),
		Content:  content,
	}, true
}

// render walks the engine chain in order. Each engine is attempted at most
// once; the first success wins and every failure is tagged with its engine
// name so the combined error names each culprit.
func (s *documentService) render(ctx context.Context, order *entity.Order) ([]byte, error) {
	var reasons []string
	for i, attempt := range s.attempts {
		content, err := attempt.renderer.Render(ctx, order)
		s.metrics.ObserveRender(attempt.engine, err)
		if err == nil && len(content) > 0 {
			if i > 0 {
				s.metrics.RenderFallbacks.Inc()
				s.logger.WarnContext(ctx, "document produced by fallback engine",
					slog.String("orderID", order.ID.String()),
					slog.String("engine", attempt.engine),
				)
			}

			return content, nil
		}
		if err == nil {
			err = errors.New("engine produced no output")
		}
		reasons = append(reasons, attempt.engine+": "+err.Error())
	}

	return nil, errors.New(strings.Join(reasons, "; "))
}

func (s *documentService) filename(order *entity.Order) string {
	tmpl := templateOrDefault(s.settings.Current().Email.PDFFilenameTemplate, defaultPDFFilenameTemplate)

	return applyOrderTemplate(tmpl, order)
}
