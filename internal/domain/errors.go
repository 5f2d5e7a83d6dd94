package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across services. Controllers map these to HTTP
// status codes.
var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a request fails validation before any
	// mutation happens. Wrap it with fmt.Errorf("%w: reason", ...).
	ErrInvalidInput = errors.New("invalid input")
)

// ResourceKind is one of the three shared resources a lesson occupies, plus
// "all" for unfiltered listings.
type ResourceKind string

const (
	ResourceRoom    ResourceKind = "room"
	ResourceTrainer ResourceKind = "trainer"
	ResourceClass   ResourceKind = "class"
	ResourceAll     ResourceKind = "all"
)

// ConflictError reports a scheduling collision. Resources holds the
// deduplicated set of resource kinds already booked in the proposed slot.
type ConflictError struct {
	Resources []ResourceKind
}

func (e *ConflictError) Error() string {
	kinds := make([]string, len(e.Resources))
	for i, k := range e.Resources {
		kinds[i] = string(k)
	}
	return fmt.Sprintf("schedule conflict: %s already booked in this slot", strings.Join(kinds, ", "))
}
