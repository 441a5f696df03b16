package fixtures

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("fixture: record not found")

	ErrUnknownFixture   = errors.New("fixture: unknown fixture")
	ErrDuplicateFixture = errors.New("fixture: duplicate fixture name")
)

// NotFoundError reports that a record a fixture depends on does not exist.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("fixture: %s %q not found", e.Entity, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// CommitError reports that the store rejected a fixture's changes.
type CommitError struct {
	Fixture string
	Err     error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("fixture %s: commit: %v", e.Fixture, e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }
