// internal/repository/repository.go
package repository

import (
	"context"

	"gorm.io/gorm"
)

// inTx runs fn inside a transaction bound to ctx. The find-then-write upserts
// use it so two concurrent first saves don't race into duplicate rows.
func inTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}
