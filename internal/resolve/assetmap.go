package resolve

import (
	"strings"

	"github.com/pagemount/pagemount/internal/manifest"
)

// AssetMap is the reverse lookup from original or source-relative asset
// paths to their published (possibly content-hashed) paths. Built once from
// the manifest and immutable afterwards.
type AssetMap map[string]string

// BuildAssetMap derives the asset map from a manifest. Every module key
// maps to its published file, both with and without the conventional source
// directory prefix. Published asset paths map to themselves, and when a
// module's published file is itself listed as another entry's asset, the
// module key maps to that asset path too, so either spelling of an original
// path resolves to the same published file.
func BuildAssetMap(m manifest.Manifest, sourcePrefix string) AssetMap {
	am := make(AssetMap)
	keys := m.Keys()

	for _, key := range keys {
		file := m[key].File
		if file == "" {
			continue
		}
		am[key] = file
		am[strings.TrimPrefix(key, sourcePrefix)] = file
	}

	for _, key := range keys {
		for _, asset := range m[key].Assets {
			am[asset] = asset
			for _, original := range keys {
				if m[original].File == asset {
					am[original] = asset
					am[strings.TrimPrefix(original, sourcePrefix)] = asset
				}
			}
		}
	}

	return am
}
