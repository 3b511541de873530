package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"mpeshop/internal/domain/repository"
	"mpeshop/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements repository.TransactionManager on a gorm connection.
type gormTransactionManager struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewTransactionManager creates a TransactionManager backed by PostgreSQL.
func NewTransactionManager(db *gorm.DB, logger *slog.Logger) repository.TransactionManager {
	return &gormTransactionManager{
		db:     db,
		logger: logger,
	}
}

func (m *gormTransactionManager) Execute(ctx context.Context, fn func(factory repository.RepositoryFactory) error) error {
	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			if rbErr := tx.Rollback().Error; rbErr != nil {
				m.logger.ErrorContext(ctx, "rollback after panic failed", slog.Any("error", rbErr))
			}
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}
	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrap(err, fmt.Sprintf("transaction rollback failed: %v, original error", rbErr))
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

// gormRepositoryFactory hands out repositories bound to a single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) ContactRepo() repository.ContactRepository {
	return NewContactRepository(f.tx)
}

func (f *gormRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f *gormRepositoryFactory) ProductRepo() repository.ProductRepository {
	return NewProductRepository(f.tx)
}
