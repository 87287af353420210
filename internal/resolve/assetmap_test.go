package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pagemount/pagemount/internal/manifest"
)

func TestBuildAssetMap_KeyAndStrippedKey(t *testing.T) {
	m := manifest.Manifest{
		"src/main.tsx": {File: "main.abc123.js", IsEntry: true},
	}

	am := BuildAssetMap(m, "src/")

	assert.Equal(t, "main.abc123.js", am["src/main.tsx"])
	assert.Equal(t, "main.abc123.js", am["main.tsx"])
}

func TestBuildAssetMap_AssetsSelfMap(t *testing.T) {
	m := manifest.Manifest{
		"src/main.tsx": {
			File:   "main.abc123.js",
			Assets: []string{"logo.def456.png"},
		},
	}

	am := BuildAssetMap(m, "src/")

	assert.Equal(t, "logo.def456.png", am["logo.def456.png"])
}

func TestBuildAssetMap_ReverseOriginalKey(t *testing.T) {
	// When a module's published file shows up as another entry's asset,
	// the module key resolves to the asset path in both spellings.
	m := manifest.Manifest{
		"src/main.tsx": {
			File:   "main.abc123.js",
			Assets: []string{"logo.def456.png"},
		},
		"src/assets/logo.png": {
			File: "logo.def456.png",
		},
	}

	am := BuildAssetMap(m, "src/")

	assert.Equal(t, "logo.def456.png", am["src/assets/logo.png"])
	assert.Equal(t, "logo.def456.png", am["assets/logo.png"])
}

func TestBuildAssetMap_SkipsEmptyFiles(t *testing.T) {
	m := manifest.Manifest{
		"src/empty.ts": {},
		"src/real.ts":  {File: "real.js"},
	}

	am := BuildAssetMap(m, "src/")

	_, ok := am["src/empty.ts"]
	assert.False(t, ok)
	assert.Equal(t, "real.js", am["src/real.ts"])
}
