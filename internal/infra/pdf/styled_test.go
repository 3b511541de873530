package pdf

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mpeshop/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingFetcher struct{}

func (failingFetcher) Fetch(context.Context, string) ([]byte, error) {
	return nil, errors.New("bucket unreachable")
}

func TestStyledRenderer_RenderProducesPDF(t *testing.T) {
	t.Parallel()

	renderer := NewStyledRenderer(testStore(true), failingFetcher{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	out, err := renderer.Render(context.Background(), sampleOrder())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestStyledRenderer_LogoFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	// LogoKey set but the fetcher errors: the document renders without it.
	store := testStore(true)
	renderer := NewStyledRenderer(store, failingFetcher{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	out, err := renderer.Render(context.Background(), sampleOrder())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestImageExtension(t *testing.T) {
	t.Parallel()

	ext, ok := imageExtension([]byte("\x89PNG\r\n\x1a\n...."))
	assert.True(t, ok)
	assert.NotEmpty(t, ext)

	ext, ok = imageExtension([]byte("\xff\xd8\xff\xe0...."))
	assert.True(t, ok)
	assert.NotEmpty(t, ext)

	_, ok = imageExtension([]byte("GIF89a"))
	assert.False(t, ok)
}
