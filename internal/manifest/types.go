package manifest

import (
	"encoding/json"
	"sort"
)

// Entry describes one module in a build manifest: its published output file,
// whether it is an entry point, and its stylesheet and static asset
// dependencies.
type Entry struct {
	File    string   `json:"file"`
	IsEntry bool     `json:"isEntry,omitempty"`
	CSS     []string `json:"css,omitempty"`
	Assets  []string `json:"assets,omitempty"`
}

// Manifest maps module keys to their entries. Fetched once per embed and
// treated as immutable thereafter; key insertion order is irrelevant.
type Manifest map[string]Entry

// Parse decodes a manifest document from raw JSON
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Keys returns the manifest keys in sorted order. Iteration over the
// manifest goes through this to keep heuristic evaluation deterministic.
func (m Manifest) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
