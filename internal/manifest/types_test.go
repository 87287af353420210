package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	data := []byte(`{
		"src/main.tsx": {
			"file": "main.abc123.js",
			"isEntry": true,
			"css": ["main.abc123.css"],
			"assets": ["logo.def456.png"]
		},
		"src/helper.ts": {
			"file": "helper.789.js"
		}
	}`)

	m, err := Parse(data)

	require.NoError(t, err)
	require.Len(t, m, 2)

	entry := m["src/main.tsx"]
	assert.Equal(t, "main.abc123.js", entry.File)
	assert.True(t, entry.IsEntry)
	assert.Equal(t, []string{"main.abc123.css"}, entry.CSS)
	assert.Equal(t, []string{"logo.def456.png"}, entry.Assets)

	helper := m["src/helper.ts"]
	assert.False(t, helper.IsEntry)
	assert.Empty(t, helper.CSS)
}

func TestParse_Invalid(t *testing.T) {
	m, err := Parse([]byte(`{not json`))

	assert.Error(t, err)
	assert.Nil(t, m)
}

func TestParse_EmptyObject(t *testing.T) {
	m, err := Parse([]byte(`{}`))

	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestManifest_KeysSorted(t *testing.T) {
	m := Manifest{
		"src/c.ts": {File: "c.js"},
		"src/a.ts": {File: "a.js"},
		"src/b.ts": {File: "b.js"},
	}

	assert.Equal(t, []string{"src/a.ts", "src/b.ts", "src/c.ts"}, m.Keys())
}
