package visual

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTemplates reads a YAML list of component templates from path.
func LoadTemplates(path string) ([]Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	return ParseTemplates(data)
}

// ParseTemplates decodes a YAML list of component templates. Templates
// missing from the list are left missing; Project reports them.
func ParseTemplates(data []byte) ([]Component, error) {
	var list []Component
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode templates: %w", err)
	}

	seen := make(map[string]struct{}, len(list))
	for i, c := range list {
		if c.Name == "" {
			return nil, fmt.Errorf("template %d: missing name", i)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("template %q: defined twice", c.Name)
		}
		if c.Width < 0 || c.Height < 0 {
			return nil, fmt.Errorf("template %q: negative size", c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return list, nil
}
