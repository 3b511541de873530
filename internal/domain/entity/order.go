package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the staff-driven processing state of an order. Transitions
// are manual; nothing in the pipeline advances the status automatically.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusViewed     OrderStatus = "viewed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusComplete   OrderStatus = "complete"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusNew, OrderStatusViewed, OrderStatusProcessing, OrderStatusComplete:
		return true
	}

	return false
}

// Order is the durable record of a completed checkout. Items and the address
// snapshot are immutable once committed; only the status and the email
// delivery-tracking fields may change afterwards.
type Order struct {
	ID          uuid.UUID
	ContactID   uuid.UUID
	Contact     *Contact // Loaded with the order for notification/rendering.
	OrderNumber string   // Customer's own PO / reference number, optional.
	Status      OrderStatus
	Notes       string
	Total       decimal.Decimal
	Items       []*OrderItem
	Address     *OrderAddress

	// Email delivery tracking for the most recent send attempt only.
	// Helps staff diagnose provider problems vs. website problems.
	EmailSentToCustomer bool
	EmailSentToInternal bool
	EmailSentAt         *time.Time
	EmailLastError      string

	CreatedAt time.Time
}

// Reference returns the customer-facing order reference: the customer's own
// order number when given, otherwise the order id.
func (o *Order) Reference() string {
	if o.OrderNumber != "" {
		return o.OrderNumber
	}

	return o.ID.String()
}

// EmailDelivery is the per-attempt outcome recorded by the notification
// dispatcher. It reflects only the most recent attempt, not history.
type EmailDelivery struct {
	SentToCustomer bool
	SentToInternal bool
	SentAt         *time.Time // Set when at least one channel succeeded.
	LastError      string     // "<reason A> | <reason B>" when both channels failed.
}

// OrderItem is a denormalized snapshot of a product line at checkout time.
// Order history must not change when the live catalog product is later
// edited or deleted, so name/SKU/price are copied, not referenced.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   *uuid.UUID // Nullable: the live product may be deleted later.
	ProductName string
	SKU         string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// LineTotal returns unit price times quantity.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderAddress is the immutable postal snapshot copied onto the order at
// checkout time, decoupled from later edits to the contact's address book.
type OrderAddress struct {
	ID       uuid.UUID
	OrderID  uuid.UUID
	Label    string
	Address1 string
	Address2 string
	City     string
	County   string
	Postcode string
	Country  string
}
