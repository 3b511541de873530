package pdf

import (
	"bytes"
	"context"
	"log/slog"

	"mpeshop/internal/domain/entity"
	"mpeshop/internal/domain/service"
	"mpeshop/internal/errors"
	"mpeshop/internal/infra/settings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// styledRenderer is the primary engine: branded header with logo, accent
// colours and a styled line-item table.
type styledRenderer struct {
	settings *settings.Store
	assets   service.AssetFetcher
	logger   *slog.Logger
}

// NewStyledRenderer creates the branded document engine. The logo is fetched
// per render; a missing or unreadable logo degrades to a text-only header.
func NewStyledRenderer(store *settings.Store, assets service.AssetFetcher, logger *slog.Logger) service.DocumentRenderer {
	return &styledRenderer{
		settings: store,
		assets:   assets,
		logger:   logger,
	}
}

func (r *styledRenderer) Render(ctx context.Context, order *entity.Order) (out []byte, err error) {
	// Engine failures must surface as tagged errors to the fallback chain,
	// whatever form they take inside the library.
	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = errors.Errorf("styled render panicked: %v", rec)
		}
	}()

	snap := r.settings.Current()
	layout := buildLayout(order, snap)
	accent := parseHexColor(layout.AccentColor)

	builder := marotocfg.NewBuilder().
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12)
	if layout.ShowPageNumbers {
		builder = builder.WithPageNumber()
	}

	m := maroto.New(builder.Build())

	r.addHeader(ctx, m, layout, accent)
	addMetaPanel(m, layout)
	addItemTable(m, layout, accent)

	if layout.Notes != "" {
		m.AddRow(6)
		m.AddRow(5, text.NewCol(12, "Notes", props.Text{Style: fontstyle.Bold, Size: 10}))
		m.AddRow(10, text.NewCol(12, layout.Notes, props.Text{Size: 9}))
	}
	if layout.FooterText != "" {
		m.AddRow(8)
		m.AddRow(5, text.NewCol(12, layout.FooterText, props.Text{
			Size:  8,
			Align: align.Center,
			Color: &props.Color{Red: 120, Green: 120, Blue: 120},
		}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "styled document generation failed")
	}

	return doc.GetBytes(), nil
}

func (r *styledRenderer) addHeader(ctx context.Context, m core.Maroto, layout *docLayout, accent *props.Color) {
	snap := r.settings.Current()

	logoCol := r.logoCol(ctx, snap)
	nameProps := props.Text{Style: fontstyle.Bold, Size: 16, Color: accent}

	if logoCol != nil {
		m.AddRow(18,
			logoCol,
			text.NewCol(9, layout.CompanyName, nameProps),
		)
	} else {
		m.AddRow(12, text.NewCol(12, layout.CompanyName, nameProps))
	}

	for _, hl := range layout.HeaderLines {
		m.AddRow(4, text.NewCol(12, hl, props.Text{Size: 8}))
	}

	m.AddRow(8, text.NewCol(12, layout.Title, props.Text{
		Style: fontstyle.Bold,
		Size:  13,
		Top:   3,
	}))
	m.AddRow(2, line.NewCol(12, props.Line{Color: accent, Thickness: 0.6}))
}

// logoCol fetches the logo and wraps it in an image column, or returns nil
// when the asset is missing or not a usable image.
func (r *styledRenderer) logoCol(ctx context.Context, snap *settings.Snapshot) core.Col {
	if snap.PDF.LogoKey == "" {
		return nil
	}

	data, err := r.assets.Fetch(ctx, snap.PDF.LogoKey)
	if err != nil {
		r.logger.WarnContext(ctx, "logo fetch failed, rendering without logo",
			slog.String("key", snap.PDF.LogoKey),
			slog.Any("error", err),
		)

		return nil
	}

	ext, ok := imageExtension(data)
	if !ok {
		r.logger.WarnContext(ctx, "logo is not a supported image format",
			slog.String("key", snap.PDF.LogoKey),
		)

		return nil
	}

	return image.NewFromBytesCol(3, data, ext, props.Rect{
		Center:  true,
		Percent: 90,
	})
}

func addMetaPanel(m core.Maroto, layout *docLayout) {
	m.AddRow(4)
	for _, pair := range layout.Meta {
		m.AddRow(5,
			text.NewCol(3, pair[0], props.Text{Style: fontstyle.Bold, Size: 9}),
			text.NewCol(9, pair[1], props.Text{Size: 9}),
		)
	}

	if len(layout.AddressLines) > 0 {
		m.AddRow(6, text.NewCol(12, "Delivery Address", props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}))
		for _, al := range layout.AddressLines {
			m.AddRow(4, text.NewCol(12, al, props.Text{Size: 9}))
		}
	}
}

func addItemTable(m core.Maroto, layout *docLayout, accent *props.Color) {
	m.AddRow(6)

	headerCols := make([]core.Col, 0, len(layout.Columns))
	for i, name := range layout.Columns {
		headerCols = append(headerCols, text.NewCol(columnWidth(layout, i), name, props.Text{
			Style: fontstyle.Bold,
			Size:  9,
			Color: &props.Color{Red: 255, Green: 255, Blue: 255},
			Left:  1,
		}))
	}
	m.AddRow(7, headerCols...).WithStyle(&props.Cell{BackgroundColor: accent})

	zebra := &props.Color{Red: 242, Green: 242, Blue: 242}
	for idx, cells := range layout.Rows {
		rowCols := make([]core.Col, 0, len(cells))
		for i, cell := range cells {
			rowCols = append(rowCols, text.NewCol(columnWidth(layout, i), cell, props.Text{Size: 9, Left: 1}))
		}
		tableRow := m.AddRow(6, rowCols...)
		if idx%2 == 1 {
			tableRow.WithStyle(&props.Cell{BackgroundColor: zebra})
		}
	}

	if layout.TotalLabel != "" {
		m.AddRow(2, line.NewCol(12, props.Line{Thickness: 0.3}))
		m.AddRow(7,
			col.New(7),
			text.NewCol(2, layout.TotalLabel, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
			text.NewCol(3, layout.TotalValue, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
		)
	}
}

// columnWidth maps table columns onto maroto's 12-unit grid for both the
// priced (5-column) and unpriced (3-column) layouts.
func columnWidth(layout *docLayout, idx int) int {
	if layout.ShowPrices {
		// SKU, Item, Qty, Unit Price, Line Total
		return []int{2, 4, 1, 2, 3}[idx]
	}
	// SKU, Item, Qty
	return []int{3, 7, 2}[idx]
}

func imageExtension(data []byte) (extension.Type, bool) {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG")):
		return extension.Png, true
	case bytes.HasPrefix(data, []byte("\xff\xd8")):
		return extension.Jpg, true
	}

	return "", false
}

// parseHexColor parses "#RRGGBB" into a maroto colour, falling back to a
// dark slate when the value is absent or malformed.
func parseHexColor(hex string) *props.Color {
	fallback := &props.Color{Red: 31, Green: 61, Blue: 92}
	if len(hex) != 7 || hex[0] != '#' {
		return fallback
	}

	channels := make([]int, 3)
	for i := range channels {
		v, ok := hexByte(hex[1+i*2], hex[2+i*2])
		if !ok {
			return fallback
		}
		channels[i] = v
	}

	return &props.Color{Red: channels[0], Green: channels[1], Blue: channels[2]}
}

func hexByte(hi, lo byte) (int, bool) {
	h, ok := hexNibble(hi)
	if !ok {
		return 0, false
	}
	l, ok := hexNibble(lo)
	if !ok {
		return 0, false
	}

	return h<<4 | l, true
}

func hexNibble(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}

	return 0, false
}
