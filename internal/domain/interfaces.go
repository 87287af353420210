package domain

import "context"

// Fetcher retrieves content over HTTP
type Fetcher interface {
	Get(ctx context.Context, url string) (*Response, error)
}

// AssetResolver resolves an asset path to an absolute URL. Implementations
// must be total: unknown paths resolve to a best-effort URL, never an error.
type AssetResolver interface {
	ResolveAssetURL(path string) string
}
