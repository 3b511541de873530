package impl

import (
	"testing"

	"mpeshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestApplyOrderTemplate(t *testing.T) {
	t.Parallel()

	order := &entity.Order{ID: uuid.New(), OrderNumber: "PO-77"}

	assert.Equal(t, "Order_PO-77.pdf", applyOrderTemplate("Order_{order_ref}.pdf", order))
	assert.Equal(t, "PO-77 / "+order.ID.String(), applyOrderTemplate("{order_number} / {order_id}", order))

	// Unknown placeholders pass through.
	assert.Equal(t, "{nope} PO-77", applyOrderTemplate("{nope} {order_ref}", order))

	// Without an order number the reference falls back to the id.
	order.OrderNumber = ""
	assert.Equal(t, order.ID.String(), applyOrderTemplate("{order_ref}", order))
}

func TestParseRecipients(t *testing.T) {
	t.Parallel()

	got := parseRecipients("sales@example.co.uk\nworkshop@example.co.uk, sales@example.co.uk")
	assert.Equal(t, []string{"sales@example.co.uk", "workshop@example.co.uk"}, got)

	// Dedupe is case-insensitive and keeps the first-seen casing and order.
	got = parseRecipients("Sales@Example.co.uk,sales@example.co.uk\nOps@example.co.uk")
	assert.Equal(t, []string{"Sales@Example.co.uk", "Ops@example.co.uk"}, got)

	assert.Empty(t, parseRecipients("  \n , \r\n"))
	assert.Empty(t, parseRecipients(""))
}
