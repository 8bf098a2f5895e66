package repository

import (
	"context"

	"github.com/ceccimesquita/papillon/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type txKey struct{}

// dbFromContext returns the transaction handle stashed by GormTxManager,
// or the repository's own handle when no transaction is in flight.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return fallback.WithContext(ctx)
}

// GormTxManager runs a function inside a single database transaction.
// Repositories called through the derived context share that transaction.
type GormTxManager struct {
	db *gorm.DB
}

var _ interfaces.ITxManager = (*GormTxManager)(nil)

func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

func (m *GormTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
