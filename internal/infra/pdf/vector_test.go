package pdf

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"mpeshop/config"
	"mpeshop/internal/domain/entity"
	"mpeshop/internal/infra/settings"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(showPrices bool) *settings.Store {
	cfg := &config.Config{
		Shop: &config.ShopConfig{ShowPrices: showPrices},
		PDF: &config.PDFConfig{
			CompanyName:     "MPE UK Ltd",
			DocumentTitle:   "Order Summary",
			ShowPageNumbers: true,
		},
	}

	return settings.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestVectorRenderer_RenderProducesPDF(t *testing.T) {
	t.Parallel()

	renderer := NewVectorRenderer(testStore(true), slog.New(slog.NewTextHandler(io.Discard, nil)))

	out, err := renderer.Render(context.Background(), sampleOrder())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestVectorRenderer_RenderEmptyOrder(t *testing.T) {
	t.Parallel()

	renderer := NewVectorRenderer(testStore(true), slog.New(slog.NewTextHandler(io.Discard, nil)))

	order := &entity.Order{OrderNumber: "PO-EMPTY"}
	out, err := renderer.Render(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestVectorRenderer_RenderManyItemsPaginates(t *testing.T) {
	t.Parallel()

	renderer := NewVectorRenderer(testStore(true), slog.New(slog.NewTextHandler(io.Discard, nil)))

	order := sampleOrder()
	order.Items = nil
	for i := 0; i < 120; i++ {
		order.Items = append(order.Items, &entity.OrderItem{
			ProductName: fmt.Sprintf("Item %03d", i),
			SKU:         fmt.Sprintf("SKU-%03d", i),
			UnitPrice:   decimal.RequireFromString("1.00"),
			Quantity:    1,
		})
	}

	out, err := renderer.Render(context.Background(), order)
	require.NoError(t, err)
	// A 120-row table cannot fit one A4 page; the output must be
	// substantially larger than the single-page render.
	single, err := renderer.Render(context.Background(), sampleOrder())
	require.NoError(t, err)
	assert.Greater(t, len(out), len(single))
}

func TestVectorRenderer_HiddenPrices(t *testing.T) {
	t.Parallel()

	renderer := NewVectorRenderer(testStore(false), slog.New(slog.NewTextHandler(io.Discard, nil)))

	out, err := renderer.Render(context.Background(), sampleOrder())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
