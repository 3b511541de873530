package service

import "context"

// AssetFetcher retrieves branding assets (the PDF logo) from wherever the
// site stores them. A failed fetch is not fatal anywhere in the pipeline:
// renderers lay out the document without the asset instead of failing.
type AssetFetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}
