package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestResolver() *Resolver {
	return NewResolver("https://cdn.example.com/app", AssetMap{
		"assets/logo.png": "logo.def456.png",
		"logo.def456.png": "logo.def456.png",
	})
}

func TestResolver_AbsoluteRefsAreIdentity(t *testing.T) {
	r := newTestResolver()

	for _, ref := range []string{
		"http://other.example.com/x.png",
		"https://other.example.com/x.png",
		"data:image/png;base64,AAAA",
		"blob:https://example.com/uuid",
	} {
		assert.Equal(t, ref, r.ResolveAssetURL(ref))
	}
}

func TestResolver_KnownPathUsesPublishedFile(t *testing.T) {
	r := newTestResolver()

	// Both the original spelling and the leading-slash form resolve to the
	// published, content-hashed path.
	assert.Equal(t, "https://cdn.example.com/app/logo.def456.png", r.ResolveAssetURL("assets/logo.png"))
	assert.Equal(t, "https://cdn.example.com/app/logo.def456.png", r.ResolveAssetURL("/assets/logo.png"))
}

func TestResolver_UnknownPathFallsBack(t *testing.T) {
	r := newTestResolver()

	assert.Equal(t, "https://cdn.example.com/app/unknown.svg", r.ResolveAssetURL("unknown.svg"))
	assert.Equal(t, "https://cdn.example.com/app/unknown.svg", r.ResolveAssetURL("/unknown.svg"))
}

func TestResolver_BaseURL(t *testing.T) {
	r := newTestResolver()
	assert.Equal(t, "https://cdn.example.com/app", r.BaseURL())
}
