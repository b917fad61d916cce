// Package secondary defines the driven-side ports: the archival-record
// client, the spreadsheet reader, and the run-audit repository.
package secondary

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/asreorder/internal/models"
)

// LookupErrorKind classifies a failed record lookup.
type LookupErrorKind string

const (
	KindNotFound     LookupErrorKind = "not_found"
	KindAccessDenied LookupErrorKind = "access_denied"
	KindTransport    LookupErrorKind = "transport"
)

// LookupError is a classified lookup failure. Every failure names the
// record it concerns.
type LookupError struct {
	Kind       LookupErrorKind
	RecordType string
	ID         int
	Reason     string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %d: %s (%s)", e.RecordType, e.ID, e.Reason, e.Kind)
}

// IsNotFound reports whether err is a not-found lookup failure.
func IsNotFound(err error) bool {
	var le *LookupError
	return errors.As(err, &le) && le.Kind == KindNotFound
}

// IsAccessDenied reports whether err is a permission/suppression failure.
func IsAccessDenied(err error) bool {
	var le *LookupError
	return errors.As(err, &le) && le.Kind == KindAccessDenied
}

// RecordClient is the abstract archival-record capability the core depends
// on. Implementations own session handling, timeouts, and transport; the
// core treats every call as one blocking request with a classified outcome.
type RecordClient interface {
	// Lookup fetches a record by type and id. Failures are *LookupError.
	Lookup(ctx context.Context, recordType string, id int) (*models.Record, error)

	// SetPosition moves one child to an absolute position under the parent.
	SetPosition(ctx context.Context, parentType string, parentID, childID, position int) error

	// BulkInsert moves all children in the given order in a single call,
	// inserted starting at position.
	BulkInsert(ctx context.Context, parentType string, parentID int, childIDs []int, position int) error
}
