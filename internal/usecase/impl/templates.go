package impl

import (
	"strings"

	"mpeshop/internal/domain/entity"
)

// Built-in templates used when the configured ones are blank.
const (
	defaultPDFFilenameTemplate     = "Order_{order_ref}.pdf"
	defaultCustomerSubjectTemplate = "Order Confirmation - {order_ref}"
	defaultInternalSubjectTemplate = "New Website Order - {order_ref}"
)

// applyOrderTemplate substitutes the supported placeholders. Unknown
// placeholders pass through untouched.
func applyOrderTemplate(tmpl string, order *entity.Order) string {
	replacer := strings.NewReplacer(
		"{order_ref}", order.Reference(),
		"{order_id}", order.ID.String(),
		"{order_number}", order.OrderNumber,
	)

	return replacer.Replace(tmpl)
}

func templateOrDefault(tmpl, fallback string) string {
	if strings.TrimSpace(tmpl) == "" {
		return fallback
	}

	return tmpl
}

// parseRecipients splits a newline- or comma-separated recipient list and
// dedupes it case-insensitively, keeping first-seen order and casing.
func parseRecipients(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})

	seen := make(map[string]struct{}, len(fields))
	var out []string
	for _, field := range fields {
		addr := strings.TrimSpace(field)
		if addr == "" {
			continue
		}
		key := strings.ToLower(addr)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, addr)
	}

	return out
}
