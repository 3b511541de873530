package main

import (
	"context"
	"log/slog"
	"os"

	"mpeshop/config"
	"mpeshop/internal/delivery"
	"mpeshop/internal/delivery/http"
	"mpeshop/internal/delivery/http/middleware"
	"mpeshop/internal/delivery/http/router/handler"
	"mpeshop/internal/domain/repository"
	"mpeshop/internal/domain/service"
	"mpeshop/internal/infra/assets"
	"mpeshop/internal/infra/cart"
	logs "mpeshop/internal/infra/log"
	"mpeshop/internal/infra/mail"
	"mpeshop/internal/infra/pdf"
	"mpeshop/internal/infra/persistence/postgres"
	"mpeshop/internal/infra/settings"
	"mpeshop/internal/metrics"
	"mpeshop/internal/usecase"
	"mpeshop/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		settings.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewContactRepository,
			postgres.NewOrderRepository,
			postgres.NewProductRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			cart.NewMemoryStore,
			mail.NewBrevoMailer,
			newAssetFetcher,
		),
	)
}

// newAssetFetcher creates the logo fetcher used by the styled renderer.
func newAssetFetcher(cfg *config.Config, logger *slog.Logger) service.AssetFetcher {
	bucketURL := ""
	if cfg.PDF != nil {
		bucketURL = cfg.PDF.LogoBucketURL
	}

	return assets.NewBucketFetcher(bucketURL, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewCheckoutService,
			newDocumentUsecase,
			impl.NewNotificationService,
			impl.NewOrderService,
			impl.NewProductImportService,
		),
	)
}

// newDocumentUsecase wires both render engines into the document use case.
// The engines share the service.DocumentRenderer interface, so they are
// constructed here instead of being provided separately.
func newDocumentUsecase(
	store *settings.Store,
	fetcher service.AssetFetcher,
	orders repository.OrderRepository,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.DocumentUsecase {
	styled := pdf.NewStyledRenderer(store, fetcher, logger)
	vector := pdf.NewVectorRenderer(store, logger)

	return impl.NewDocumentService(styled, vector, orders, store, m, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewStaffAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			handler.NewStaffHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
