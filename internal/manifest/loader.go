package manifest

import (
	"context"
	"strings"

	"github.com/pagemount/pagemount/internal/domain"
	"github.com/pagemount/pagemount/internal/utils"
)

// Loader fetches and parses build manifests
type Loader struct {
	fetcher domain.Fetcher
	logger  *utils.Logger
}

// NewLoader creates a new manifest loader
func NewLoader(fetcher domain.Fetcher, logger *utils.Logger) *Loader {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Loader{
		fetcher: fetcher,
		logger:  logger.WithComponent("manifest"),
	}
}

// URL builds the manifest URL from the base URL and manifest path,
// trimming exactly one trailing slash from the base. The manifest path is
// expected to begin with a slash.
func URL(baseURL, manifestPath string) string {
	return strings.TrimSuffix(baseURL, "/") + manifestPath
}

// Fetch retrieves and parses the manifest at {baseURL}{manifestPath}.
// A non-success response or transport failure surfaces as a FetchError,
// a malformed body as a ManifestParseError.
func (l *Loader) Fetch(ctx context.Context, baseURL, manifestPath string) (Manifest, error) {
	url := URL(baseURL, manifestPath)

	l.logger.Debug().Str("url", url).Msg("Fetching manifest")

	resp, err := l.fetcher.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	m, err := Parse(resp.Body)
	if err != nil {
		return nil, &domain.ManifestParseError{URL: url, Err: err}
	}

	l.logger.Debug().Int("entries", len(m)).Msg("Manifest parsed")
	return m, nil
}
