// Package store persists case graphs as opaque documents keyed by claim id.
// Saves are full-document last-write-wins; concurrent sessions are not
// reconciled.
package store

import (
	"context"
	"errors"

	"github.com/ppiankov/claimready/internal/model"
)

// ErrNotFound is returned by Load when no graph exists for the claim.
var ErrNotFound = errors.New("graph not found")

// Store defines the persistence interface for case graphs.
// Abstracted so screens and tests can swap the backing document store.
type Store interface {
	Load(ctx context.Context, claimID string) (*model.CaseGraph, error)
	Save(ctx context.Context, g *model.CaseGraph) error
}
