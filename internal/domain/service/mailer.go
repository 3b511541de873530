// Package service defines interfaces for external capabilities consumed by
// the use case layer (email transport, document rendering, session carts,
// branding assets). Implementations live under internal/infra.
package service

import "context"

// Attachment is a file attached inline to an outgoing email.
type Attachment struct {
	Filename string
	Content  []byte
	MIMEType string
}

// Message is one outbound transactional email.
type Message struct {
	FromEmail   string
	FromName    string
	ReplyTo     string
	To          []string
	Subject     string
	TextBody    string
	Attachments []Attachment
}

// Mailer sends a single transactional email. One call is one delivery
// attempt: there is no retry or queueing behind this interface, and a
// non-2xx provider response or transport error is returned as-is.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
