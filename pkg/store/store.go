// Package store provides the variable stores the exporter reads from: the
// Figma REST API, snapshot files and in-memory fixtures.
package store

import (
	"context"
	"errors"

	"github.com/kataras/figma-tokens/pkg/figma"
)

var (
	// ErrCollectionNotFound is returned by GetCollection for unknown ids.
	ErrCollectionNotFound = errors.New("variable collection not found")
	// ErrUnsupportedSnapshot is returned when a snapshot file has an unknown extension or shape.
	ErrUnsupportedSnapshot = errors.New("unsupported snapshot")
)

// Store exposes a consistent snapshot of a file's variables for one run.
type Store interface {
	// ListVariables returns every local variable in document order.
	ListVariables(ctx context.Context) ([]figma.Variable, error)
	// GetCollection returns the collection with the given id.
	GetCollection(ctx context.Context, id string) (*figma.VariableCollection, error)
}

// snapshotStore serves a loaded snapshot.
type snapshotStore struct {
	snap  *figma.Snapshot
	byID  map[string]*figma.VariableCollection
	fails map[string]error
}

func newSnapshotStore(snap *figma.Snapshot) *snapshotStore {
	s := &snapshotStore{
		snap: snap,
		byID: make(map[string]*figma.VariableCollection, len(snap.Collections)),
	}
	for i := range snap.Collections {
		s.byID[snap.Collections[i].ID] = &snap.Collections[i]
	}
	return s
}

func (s *snapshotStore) ListVariables(ctx context.Context) ([]figma.Variable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]figma.Variable(nil), s.snap.Variables...), nil
}

func (s *snapshotStore) GetCollection(ctx context.Context, id string) (*figma.VariableCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := s.fails[id]; ok {
		return nil, err
	}
	c, ok := s.byID[id]
	if !ok {
		return nil, ErrCollectionNotFound
	}
	return c, nil
}
