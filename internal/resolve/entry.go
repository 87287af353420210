package resolve

import (
	"path"
	"strings"

	"github.com/pagemount/pagemount/internal/domain"
	"github.com/pagemount/pagemount/internal/manifest"
)

// Options tunes the resolution heuristics. Defaults follow Vite output
// conventions.
type Options struct {
	// EntryPrefix is the recognized output-file naming convention for
	// entry scripts and stylesheets (matched against the file base name).
	EntryPrefix string
	// MainMarker is the substring identifying a main-module manifest key.
	MainMarker string
	// SourcePrefix is the conventional source directory prefix stripped
	// when building the asset map ("src/").
	SourcePrefix string
}

// EntryRule is one predicate in the entry-selection chain
type EntryRule struct {
	Name  string
	Match func(key string, e manifest.Entry, opts Options) bool
}

// EntryRules is the entry-selection chain, evaluated in order with first
// match winning. The ordering is a compatibility contract with earlier
// loader generations; do not reorder.
var EntryRules = []EntryRule{
	{
		Name: "entry-with-recognized-name",
		Match: func(key string, e manifest.Entry, opts Options) bool {
			return e.IsEntry && strings.HasPrefix(path.Base(e.File), opts.EntryPrefix)
		},
	},
	{
		Name: "any-entry",
		Match: func(key string, e manifest.Entry, opts Options) bool {
			return e.IsEntry
		},
	},
	{
		Name: "main-module-key",
		Match: func(key string, e manifest.Entry, opts Options) bool {
			return strings.Contains(key, opts.MainMarker)
		},
	},
}

// SelectEntry picks the entry-point module from the manifest. Rules are
// tried strictly in EntryRules order; within a rule, keys are visited in
// sorted order so selection does not depend on map iteration. When nothing
// matches, the error enumerates the available keys.
func SelectEntry(m manifest.Manifest, opts Options) (string, manifest.Entry, error) {
	keys := m.Keys()
	for _, rule := range EntryRules {
		for _, key := range keys {
			if rule.Match(key, m[key], opts) {
				return key, m[key], nil
			}
		}
	}
	return "", manifest.Entry{}, &domain.EntryResolutionError{Keys: keys}
}

// SelectStylesheet picks at most one stylesheet for the chosen entry:
// the entry's own first stylesheet, else the first convention-named
// stylesheet anywhere in the manifest, else the first stylesheet found at
// all. An empty result means stylesheet loading is skipped, which is not
// an error.
func SelectStylesheet(m manifest.Manifest, entry manifest.Entry, opts Options) (string, bool) {
	if len(entry.CSS) > 0 {
		return entry.CSS[0], true
	}

	var all []string
	for _, key := range m.Keys() {
		all = append(all, m[key].CSS...)
	}

	for _, css := range all {
		if strings.HasPrefix(path.Base(css), opts.EntryPrefix) {
			return css, true
		}
	}

	if len(all) > 0 {
		return all[0], true
	}

	return "", false
}
