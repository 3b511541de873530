package usecase

import (
	"context"

	"mpeshop/internal/domain/entity"

	"github.com/google/uuid"
)

// Document is a rendered order document ready for download or attachment.
type Document struct {
	Filename string
	Content  []byte
}

// DocumentUsecase renders order documents through the engine fallback chain:
// the styled engine is attempted exactly once, then the plain vector engine.
type DocumentUsecase interface {
	// Download renders the document for direct download. When every engine
	// fails the error carries each engine's tagged failure reason.
	Download(ctx context.Context, orderID uuid.UUID) (*Document, error)

	// ForAttachment renders the document for the notification email. Unlike
	// Download a total failure is tolerable: ok reports whether a document
	// was produced, and the email goes out without one when it is false.
	ForAttachment(ctx context.Context, order *entity.Order) (doc *Document, ok bool)
}
