package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemount/pagemount/internal/domain"
	"github.com/pagemount/pagemount/internal/manifest"
)

func testOptions() Options {
	return Options{
		EntryPrefix:  "index",
		MainMarker:   "main",
		SourcePrefix: "src/",
	}
}

func TestEntryRules_Ordering(t *testing.T) {
	// The rule ordering is a compatibility contract.
	require.Len(t, EntryRules, 3)
	assert.Equal(t, "entry-with-recognized-name", EntryRules[0].Name)
	assert.Equal(t, "any-entry", EntryRules[1].Name)
	assert.Equal(t, "main-module-key", EntryRules[2].Name)
}

func TestSelectEntry_PrefersRecognizedName(t *testing.T) {
	m := manifest.Manifest{
		"src/admin.tsx": {File: "admin.1a2b.js", IsEntry: true},
		"src/index.tsx": {File: "index.3c4d.js", IsEntry: true},
	}

	key, entry, err := SelectEntry(m, testOptions())

	require.NoError(t, err)
	assert.Equal(t, "src/index.tsx", key)
	assert.Equal(t, "index.3c4d.js", entry.File)
}

func TestSelectEntry_SingleEntryFlagWins(t *testing.T) {
	// With exactly one isEntry module, it wins regardless of naming or
	// manifest key ordering.
	m := manifest.Manifest{
		"src/widget.tsx": {File: "widget.9f8e.js", IsEntry: true},
		"src/helper.ts":  {File: "helper.7d6c.js"},
	}

	key, entry, err := SelectEntry(m, testOptions())

	require.NoError(t, err)
	assert.Equal(t, "src/widget.tsx", key)
	assert.Equal(t, "widget.9f8e.js", entry.File)
}

func TestSelectEntry_MainMarkerFallback(t *testing.T) {
	m := manifest.Manifest{
		"src/main.tsx":   {File: "app.1111.js"},
		"src/helper.tsx": {File: "helper.2222.js"},
	}

	key, _, err := SelectEntry(m, testOptions())

	require.NoError(t, err)
	assert.Equal(t, "src/main.tsx", key)
}

func TestSelectEntry_NoMatchEnumeratesKeys(t *testing.T) {
	m := manifest.Manifest{
		"src/b.ts": {File: "b.js"},
		"src/a.ts": {File: "a.js"},
	}

	_, _, err := SelectEntry(m, testOptions())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoEntryPoint)

	var resErr *domain.EntryResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, []string{"src/a.ts", "src/b.ts"}, resErr.Keys)
	assert.Contains(t, err.Error(), "src/a.ts")
	assert.Contains(t, err.Error(), "src/b.ts")
}

func TestSelectStylesheet_EntryOwnListFirst(t *testing.T) {
	m := manifest.Manifest{
		"src/main.tsx": {File: "main.js", IsEntry: true, CSS: []string{"a.css", "b.css"}},
	}
	entry := m["src/main.tsx"]

	css, ok := SelectStylesheet(m, entry, testOptions())

	require.True(t, ok)
	assert.Equal(t, "a.css", css)
}

func TestSelectStylesheet_ConventionFallback(t *testing.T) {
	m := manifest.Manifest{
		"src/main.tsx":  {File: "main.js", IsEntry: true},
		"src/other.tsx": {File: "other.js", CSS: []string{"zz.css"}},
		"src/theme.tsx": {File: "theme.js", CSS: []string{"index.ab12.css"}},
	}
	entry := m["src/main.tsx"]

	css, ok := SelectStylesheet(m, entry, testOptions())

	require.True(t, ok)
	assert.Equal(t, "index.ab12.css", css)
}

func TestSelectStylesheet_AnyFallback(t *testing.T) {
	m := manifest.Manifest{
		"src/main.tsx":  {File: "main.js", IsEntry: true},
		"src/other.tsx": {File: "other.js", CSS: []string{"zz.css"}},
	}
	entry := m["src/main.tsx"]

	css, ok := SelectStylesheet(m, entry, testOptions())

	require.True(t, ok)
	assert.Equal(t, "zz.css", css)
}

func TestSelectStylesheet_NoneIsSkip(t *testing.T) {
	m := manifest.Manifest{
		"src/main.tsx": {File: "main.js", IsEntry: true},
	}
	entry := m["src/main.tsx"]

	css, ok := SelectStylesheet(m, entry, testOptions())

	assert.False(t, ok)
	assert.Empty(t, css)
}
