// Package fixtures holds repeatable test-data steps and the loader that
// applies them to a database.
package fixtures

import (
	"context"

	"gorm.io/gorm"
)

// Fixture mutates or seeds data through tx. Load must not commit; the
// caller owns the transaction.
type Fixture interface {
	Name() string
	Load(ctx context.Context, tx *gorm.DB) error
}

// Apply runs f in its own transaction. Changes are committed only when Load
// succeeds; otherwise they are rolled back and Load's error is returned.
// Failing to begin or commit the transaction yields a *CommitError.
func Apply(ctx context.Context, db *gorm.DB, f Fixture) error {
	var loadErr error
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		loadErr = f.Load(ctx, tx)
		return loadErr
	})

	switch {
	case err == nil:
		return nil
	case loadErr != nil:
		return loadErr
	default:
		return &CommitError{Fixture: f.Name(), Err: err}
	}
}
