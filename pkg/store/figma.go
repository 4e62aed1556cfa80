package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/kataras/figma-tokens/pkg/figma"
)

// Figma reads variables of one file through the REST API. Every
// ListVariables call fetches a fresh snapshot; GetCollection answers from the
// most recent one, so both reads of a run see the same data.
type Figma struct {
	client  *figma.Client
	fileKey string

	mu   sync.Mutex
	last *snapshotStore
}

// NewFigma returns a store for the file identified by fileKey.
func NewFigma(client *figma.Client, fileKey string) *Figma {
	return &Figma{client: client, fileKey: fileKey}
}

// ListVariables fetches the file's local variables.
func (f *Figma) ListVariables(ctx context.Context) ([]figma.Variable, error) {
	resp, err := f.client.GetLocalVariables(ctx, f.fileKey)
	if err != nil {
		return nil, fmt.Errorf("fetch local variables: %w", err)
	}

	s := newSnapshotStore(resp.Snapshot())

	f.mu.Lock()
	f.last = s
	f.mu.Unlock()

	return s.ListVariables(ctx)
}

// GetCollection returns a collection of the last fetched snapshot, fetching one first if needed.
func (f *Figma) GetCollection(ctx context.Context, id string) (*figma.VariableCollection, error) {
	f.mu.Lock()
	s := f.last
	f.mu.Unlock()

	if s == nil {
		if _, err := f.ListVariables(ctx); err != nil {
			return nil, err
		}
		f.mu.Lock()
		s = f.last
		f.mu.Unlock()
	}

	return s.GetCollection(ctx, id)
}
