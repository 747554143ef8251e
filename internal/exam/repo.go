package exam

import (
	"context"
	"errors"
)

// ErrTestNotFound indicates the catalog has no test with the requested id.
var ErrTestNotFound = errors.New("test not found")

// Catalog holds the published tests. Reads outside this package only get
// redacted projections; the authoritative view stays behind Authoritative,
// which only the submission flow in this package consumes.
type Catalog interface {
	// PutTest publishes a test. Used at bootstrap; the catalog is never
	// mutated afterwards.
	PutTest(ctx context.Context, t Test) error
	ListTests(ctx context.Context) ([]TestSummary, error)
	GetTest(ctx context.Context, id int) (PublicTest, error)
	// Authoritative returns the full test including answer keys.
	Authoritative(ctx context.Context, id int) (Test, error)
}

// Ledger is the append-only store of completed submissions. Record must be
// atomic with respect to id allocation and append; repeated submissions of
// the same test produce independent entries.
type Ledger interface {
	Record(ctx context.Context, r Result) (Result, error)
	ListForUser(ctx context.Context, userID string) ([]ResultSummary, error)
}

// Store is what the concrete backends (memory, SQL) implement.
type Store interface {
	Catalog
	Ledger
}
