package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/claimready/internal/model"
)

// FileStore implements Store with one JSON document per claim id.
type FileStore struct {
	dir string
}

// NewFileStore creates a filesystem-backed graph store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// path returns the document path for a claim id.
func (s *FileStore) path(claimID string) string {
	return filepath.Join(s.dir, claimID+".json")
}

// Load reads the graph document for the claim.
func (s *FileStore) Load(ctx context.Context, claimID string) (*model.CaseGraph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(claimID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading graph document: %w", err)
	}

	var g model.CaseGraph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parsing graph document for %q: %w", claimID, err)
	}
	return &g, nil
}

// Save writes the full graph document, replacing any prior version.
func (s *FileStore) Save(ctx context.Context, g *model.CaseGraph) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if g.ClaimID == "" {
		return fmt.Errorf("graph has no claim id")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating graph directory: %w", err)
	}

	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal graph: %w", err)
	}

	if err := os.WriteFile(s.path(g.ClaimID), data, 0o644); err != nil {
		return fmt.Errorf("write graph document: %w", err)
	}
	return nil
}
