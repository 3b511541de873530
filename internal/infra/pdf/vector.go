package pdf

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"mpeshop/internal/domain/entity"
	"mpeshop/internal/domain/service"
	"mpeshop/internal/errors"
	"mpeshop/internal/infra/settings"

	"github.com/go-pdf/fpdf"
)

const (
	vectorPageMargin = 15.0
	vectorRowHeight  = 6.0

	// Remaining vertical space below which a new page is started before the
	// next table row.
	vectorPageBreakThreshold = 30.0
)

// vectorRenderer is the fallback engine: plain Helvetica layout with manual
// pagination and no external assets, so it keeps working when the styled
// engine or its branding inputs are broken.
type vectorRenderer struct {
	settings *settings.Store
	logger   *slog.Logger
}

// NewVectorRenderer creates the plain-vector fallback engine.
func NewVectorRenderer(store *settings.Store, logger *slog.Logger) service.DocumentRenderer {
	return &vectorRenderer{
		settings: store,
		logger:   logger,
	}
}

func (r *vectorRenderer) Render(_ context.Context, order *entity.Order) (out []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = errors.Errorf("vector render panicked: %v", rec)
		}
	}()

	layout := buildLayout(order, r.settings.Current())

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(vectorPageMargin, vectorPageMargin, vectorPageMargin)
	pdf.SetAutoPageBreak(false, vectorPageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if layout.ShowPageNumbers {
		pdf.SetFooterFunc(func() {
			pdf.SetY(-12)
			pdf.SetFont("Helvetica", "", 8)
			pdf.CellFormat(0, 5, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
		})
	}

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, tr(layout.CompanyName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	for _, hl := range layout.HeaderLines {
		pdf.CellFormat(0, 4, tr(hl), "", 1, "L", false, 0, "")
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr(layout.Title), "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 9)
	for _, pair := range layout.Meta {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(32, 5, tr(pair[0]), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, tr(pair[1]), "", 1, "L", false, 0, "")
	}

	if len(layout.AddressLines) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Delivery Address", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, al := range layout.AddressLines {
			pdf.CellFormat(0, 4.5, tr(al), "", 1, "L", false, 0, "")
		}
	}

	pdf.Ln(4)
	r.writeTable(pdf, tr, layout)

	if layout.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 5, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 4.5, tr(layout.Notes), "", "L", false)
	}
	if layout.FooterText != "" {
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 4, tr(layout.FooterText), "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "vector document generation failed")
	}

	return buf.Bytes(), nil
}

func (r *vectorRenderer) writeTable(pdf *fpdf.Fpdf, tr func(string) string, layout *docLayout) {
	widths := vectorColumnWidths(layout)
	_, pageHeight := pdf.GetPageSize()

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(225, 225, 225)
		for i, name := range layout.Columns {
			pdf.CellFormat(widths[i], vectorRowHeight, tr(name), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}

	writeHeader()
	for _, cells := range layout.Rows {
		if pageHeight-pdf.GetY() < vectorPageBreakThreshold {
			pdf.AddPage()
			writeHeader()
		}
		for i, cell := range cells {
			align := "L"
			if i >= 2 {
				align = "R"
			}
			pdf.CellFormat(widths[i], vectorRowHeight, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if layout.TotalLabel != "" {
		if pageHeight-pdf.GetY() < vectorPageBreakThreshold {
			pdf.AddPage()
		}
		labelWidth := 0.0
		for _, w := range widths[:len(widths)-1] {
			labelWidth += w
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelWidth, vectorRowHeight+1, tr(layout.TotalLabel), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[len(widths)-1], vectorRowHeight+1, tr(layout.TotalValue), "1", 1, "R", false, 0, "")
	}
}

func vectorColumnWidths(layout *docLayout) []float64 {
	// Usable width on A4 portrait with 15mm margins is 180mm.
	if layout.ShowPrices {
		return []float64{30, 75, 15, 28, 32}
	}

	return []float64{45, 110, 25}
}
