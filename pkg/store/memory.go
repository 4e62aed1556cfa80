package store

import "github.com/kataras/figma-tokens/pkg/figma"

// Memory is an in-memory Store, handy for tests and embedding.
type Memory struct {
	*snapshotStore
}

// NewMemory returns a store serving snap.
func NewMemory(snap *figma.Snapshot) *Memory {
	if snap == nil {
		snap = &figma.Snapshot{}
	}
	return &Memory{snapshotStore: newSnapshotStore(snap)}
}

// FailCollection makes GetCollection return err for id.
func (m *Memory) FailCollection(id string, err error) {
	if m.fails == nil {
		m.fails = make(map[string]error)
	}
	m.fails[id] = err
}
