package page

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagemount/pagemount/internal/domain"
	"github.com/pagemount/pagemount/internal/utils"
)

// Mount strategies select among multiple elements matching the container
// selector.
const (
	MountFirst = "first"
	MountLast  = "last"
	MountAll   = "all"
)

// LocateContainers selects the mount target(s) for the embedded application.
// The same selection is later reused as the error-rendering target. An
// unrecognized strategy degrades to "first" with a warning; matching nothing
// is an error.
func LocateContainers(doc *goquery.Document, selector, strategy string, logger *utils.Logger) (*goquery.Selection, error) {
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	matches := doc.Find(selector)
	if matches.Length() == 0 {
		return nil, fmt.Errorf("%w: selector %q matched no elements", domain.ErrContainerNotFound, selector)
	}

	switch strategy {
	case MountFirst:
		return matches.First(), nil
	case MountLast:
		return matches.Last(), nil
	case MountAll:
		return matches, nil
	default:
		logger.Warn().
			Str("strategy", strategy).
			Msg("Unrecognized mount strategy, falling back to first")
		return matches.First(), nil
	}
}
