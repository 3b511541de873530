// Package settings exposes the staff-editable configuration sections
// (shop behavior, PDF branding, email templates) as a process-wide value
// with an explicit reload entry point. This replaces the database-enforced
// "singleton configuration row" pattern: the value is loaded once at startup
// and swapped atomically when staff trigger a reload.
package settings

import (
	"log/slog"
	"sync/atomic"

	"mpeshop/config"

	"github.com/pkg/errors"
)

// Snapshot is one immutable view of the reloadable sections. Readers hold a
// snapshot for the duration of a request; a concurrent reload never mutates
// a snapshot already handed out.
type Snapshot struct {
	Shop  config.ShopConfig
	PDF   config.PDFConfig
	Email config.EmailConfig
}

// Store serves the current Snapshot and reloads it from the config source.
type Store struct {
	current atomic.Pointer[Snapshot]
	logger  *slog.Logger
}

// New builds a Store seeded from cfg.
func New(cfg *config.Config, logger *slog.Logger) *Store {
	s := &Store{logger: logger}
	s.current.Store(snapshotFrom(cfg))

	return s
}

// Current returns the live snapshot.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Reload re-reads the configuration source and swaps the snapshot. The old
// snapshot stays valid for requests already in flight.
func (s *Store) Reload() error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "reload configuration")
	}

	s.current.Store(snapshotFrom(cfg))
	s.logger.Info("settings reloaded",
		slog.Bool("showPrices", cfg.Shop != nil && cfg.Shop.ShowPrices),
	)

	return nil
}

func snapshotFrom(cfg *config.Config) *Snapshot {
	snap := &Snapshot{}
	if cfg.Shop != nil {
		snap.Shop = *cfg.Shop
	}
	if cfg.PDF != nil {
		snap.PDF = *cfg.PDF
	}
	if cfg.Email != nil {
		snap.Email = *cfg.Email
	}

	return snap
}
