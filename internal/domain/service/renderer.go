package service

import (
	"context"

	"mpeshop/internal/domain/entity"
)

// DocumentRenderer renders an order summary document. A renderer returns
// either the document bytes or an error; it never panics across the
// boundary. Callers decide whether an empty result is tolerable (email
// attachment path) or fatal (direct download path).
type DocumentRenderer interface {
	Render(ctx context.Context, order *entity.Order) ([]byte, error)
}
