package usecase

import "context"

// ImportRow is one incoming product record keyed by column name. Keys
// outside the import whitelist are ignored rather than rejected, so feeds
// can carry extra columns without breaking.
type ImportRow map[string]string

// ImportRowError reports why one row was skipped.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportReport summarizes an import run.
type ImportReport struct {
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Skipped int              `json:"skipped"`
	Errors  []ImportRowError `json:"errors,omitempty"`
}

// ProductImportUsecase upserts catalog products from an external feed,
// keyed by SKU.
type ProductImportUsecase interface {
	Import(ctx context.Context, rows []ImportRow) (*ImportReport, error)
}
