package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kataras/figma-tokens/pkg/figma"
)

// LoadFile reads a variables snapshot from disk.
//
// JSON files may hold either the raw response of the local variables
// endpoint (with a top-level "meta" object) or a snapshot with "variables"
// and "collections" arrays. YAML files hold a snapshot.
func LoadFile(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %q: %w", path, err)
	}

	snap, err := ParseSnapshot(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return newSnapshotStore(snap), nil
}

// ParseSnapshot decodes a snapshot document; ext selects the format (".json", ".yaml" or ".yml").
func ParseSnapshot(data []byte, ext string) (*figma.Snapshot, error) {
	switch strings.ToLower(ext) {
	case ".json":
		var probe struct {
			Meta json.RawMessage `json:"meta"`
		}
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedSnapshot, err)
		}

		if len(probe.Meta) > 0 {
			var resp figma.LocalVariablesResponse
			if err := json.Unmarshal(data, &resp); err != nil {
				return nil, fmt.Errorf("decode local variables response: %w", err)
			}
			return resp.Snapshot(), nil
		}

		var snap figma.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
		return &snap, nil

	case ".yaml", ".yml":
		var snap figma.Snapshot
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
		return &snap, nil

	default:
		return nil, fmt.Errorf("%w: extension %q", ErrUnsupportedSnapshot, ext)
	}
}
