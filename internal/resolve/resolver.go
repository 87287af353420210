package resolve

import "strings"

// Resolver resolves asset paths against the embed base URL through the
// asset map. It is constructed once per embed and handed explicitly to
// whatever needs it (the patcher, the CLI, the embedded application);
// there is no ambient global handle.
type Resolver struct {
	baseURL string
	assets  AssetMap
}

// NewResolver creates a resolver for the given base URL and asset map
func NewResolver(baseURL string, assets AssetMap) *Resolver {
	return &Resolver{
		baseURL: baseURL,
		assets:  assets,
	}
}

// ResolveAssetURL resolves an asset path to an absolute URL. Absolute
// network, data, and blob references are returned unchanged. Relative
// paths are looked up in the asset map after stripping one leading slash;
// unknown paths fall back to joining the literal path with the base URL.
// It never fails.
func (r *Resolver) ResolveAssetURL(path string) string {
	if IsAbsoluteRef(path) {
		return path
	}

	key := strings.TrimPrefix(path, "/")
	if published, ok := r.assets[key]; ok {
		return JoinBaseURL(r.baseURL, published)
	}

	return JoinBaseURL(r.baseURL, path)
}

// BaseURL returns the base URL the resolver joins against
func (r *Resolver) BaseURL() string {
	return r.baseURL
}
