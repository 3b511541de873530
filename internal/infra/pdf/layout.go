// Package pdf contains the two order-document render engines. Both consume
// the same computed layout so the styled and plain documents carry identical
// content; only the visual treatment differs.
package pdf

import (
	"fmt"
	"time"

	"mpeshop/internal/domain/entity"
	"mpeshop/internal/infra/settings"

	"github.com/shopspring/decimal"
)

const (
	defaultCompanyName   = "MPE UK Ltd"
	defaultDocumentTitle = "Order Summary"

	// Text shown in place of a price when the unit price is zero, which
	// means "contact us for a quote".
	priceOnRequest = "On request"
	noLineTotal    = "—"
)

// docLayout is the engine-independent content of an order document.
type docLayout struct {
	Title       string
	CompanyName string
	HeaderLines []string // email / phone / location, blanks dropped.

	Reference string
	OrderDate string
	Meta      [][2]string // label/value pairs for the order meta panel.

	AddressLines []string
	Notes        string

	// ShowPrices mirrors the site-wide flag: when false the price columns
	// and the total row are absent from the document entirely, not blanked.
	ShowPrices bool
	Columns    []string
	Rows       [][]string
	TotalLabel string
	TotalValue string

	FooterText      string
	ShowPageNumbers bool
	AccentColor     string
}

func buildLayout(order *entity.Order, snap *settings.Snapshot) *docLayout {
	l := &docLayout{
		Title:           snap.PDF.DocumentTitle,
		CompanyName:     snap.PDF.CompanyName,
		ShowPrices:      snap.Shop.ShowPrices,
		FooterText:      snap.PDF.FooterText,
		ShowPageNumbers: snap.PDF.ShowPageNumbers,
		AccentColor:     snap.PDF.AccentColor,
		Reference:       order.Reference(),
		OrderDate:       order.CreatedAt.Format("02 Jan 2006"),
	}
	if l.Title == "" {
		l.Title = defaultDocumentTitle
	}
	if l.CompanyName == "" {
		l.CompanyName = defaultCompanyName
	}
	if order.CreatedAt.IsZero() {
		l.OrderDate = time.Now().Format("02 Jan 2006")
	}

	for _, line := range []string{snap.PDF.HeaderEmail, snap.PDF.HeaderPhone, snap.PDF.HeaderLocation} {
		if line != "" {
			l.HeaderLines = append(l.HeaderLines, line)
		}
	}

	l.Meta = append(l.Meta, [2]string{"Order Ref", l.Reference})
	l.Meta = append(l.Meta, [2]string{"Date", l.OrderDate})
	if order.Contact != nil {
		l.Meta = append(l.Meta, [2]string{"Customer", order.Contact.Name})
		if order.Contact.Company != "" {
			l.Meta = append(l.Meta, [2]string{"Company", order.Contact.Company})
		}
		l.Meta = append(l.Meta, [2]string{"Email", order.Contact.Email})
		if order.Contact.Phone != "" {
			l.Meta = append(l.Meta, [2]string{"Phone", order.Contact.Phone})
		}
	}

	if order.Address != nil {
		for _, line := range []string{
			order.Address.Address1,
			order.Address.Address2,
			order.Address.City,
			order.Address.County,
			order.Address.Postcode,
			order.Address.Country,
		} {
			if line != "" {
				l.AddressLines = append(l.AddressLines, line)
			}
		}
	}
	l.Notes = order.Notes

	if l.ShowPrices {
		l.Columns = []string{"SKU", "Item", "Qty", "Unit Price", "Line Total"}
	} else {
		l.Columns = []string{"SKU", "Item", "Qty"}
	}

	total := decimal.Zero
	for _, item := range order.Items {
		row := []string{item.SKU, item.ProductName, fmt.Sprintf("%d", item.Quantity)}
		if l.ShowPrices {
			if item.UnitPrice.IsZero() {
				row = append(row, priceOnRequest, noLineTotal)
			} else {
				lineTotal := item.LineTotal()
				row = append(row, formatGBP(item.UnitPrice), formatGBP(lineTotal))
				total = total.Add(lineTotal)
			}
		}
		l.Rows = append(l.Rows, row)
	}

	if l.ShowPrices {
		l.TotalLabel = "Total"
		l.TotalValue = formatGBP(total)
	}

	return l
}

func formatGBP(d decimal.Decimal) string {
	return "£" + d.StringFixed(2)
}
