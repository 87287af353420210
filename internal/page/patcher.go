package page

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagemount/pagemount/internal/domain"
	"github.com/pagemount/pagemount/internal/resolve"
	"github.com/pagemount/pagemount/internal/utils"
)

// PatchedAttr marks a document whose asset paths have been claimed by a
// patcher. The marker is what makes installation idempotent: a second
// install against the same document is a no-op, so no path is ever
// rewritten twice.
const PatchedAttr = "data-pagemount-patched"

var backgroundURLRe = regexp.MustCompile(`url\(\s*['"]?([^'")]+)['"]?\s*\)`)

// Patcher rewrites relatively addressed asset references in the host
// document so they resolve through the embed base URL. The embedded
// application resolves its own dynamic references through the Resolver
// handed back from the pipeline; the patcher covers everything already
// present in the markup.
type Patcher struct {
	logger    *utils.Logger
	installed bool
}

// NewPatcher creates a new Patcher
func NewPatcher(logger *utils.Logger) *Patcher {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Patcher{logger: logger.WithComponent("patcher")}
}

// Install claims the document for this patcher. Returns false when another
// patcher already holds the claim, in which case Apply later does nothing.
func (p *Patcher) Install(doc *goquery.Document) bool {
	root := doc.Find("html").First()
	if root.Length() == 0 {
		root = doc.Selection.First()
	}

	if _, already := root.Attr(PatchedAttr); already {
		p.logger.Warn().Msg("Asset patcher already installed for this document, skipping")
		return false
	}

	root.SetAttr(PatchedAttr, "true")
	p.installed = true
	p.logger.Debug().Msg("Asset patcher installed")
	return true
}

// Apply rewrites relative image sources, srcset candidates, and inline
// background url() references through the resolver. Absolute, data, and
// blob references pass through untouched. This is a one-time pass over the
// markup present at install time; it does not see anything added later.
func (p *Patcher) Apply(doc *goquery.Document, resolver domain.AssetResolver) {
	if !p.installed {
		return
	}

	rewritten := 0

	doc.Find("img[src]").Each(func(_ int, node *goquery.Selection) {
		src, _ := node.Attr("src")
		if !rewritable(src) {
			return
		}
		node.SetAttr("src", resolver.ResolveAssetURL(src))
		rewritten++
	})

	doc.Find("[srcset]").Each(func(_ int, node *goquery.Selection) {
		srcset, _ := node.Attr("srcset")
		node.SetAttr("srcset", rewriteSrcset(srcset, resolver))
	})

	doc.Find("[style*='background']").Each(func(_ int, node *goquery.Selection) {
		style, _ := node.Attr("style")
		node.SetAttr("style", rewriteBackgroundURLs(style, resolver))
	})

	p.logger.Debug().Int("images", rewritten).Msg("Relative asset paths rewritten")
}

// rewritable reports whether an asset reference should be rewritten:
// only non-empty relative paths qualify.
func rewritable(ref string) bool {
	return ref != "" && !resolve.IsAbsoluteRef(ref)
}

// rewriteSrcset resolves each candidate URL in a srcset value
func rewriteSrcset(srcset string, resolver domain.AssetResolver) string {
	parts := strings.Split(srcset, ",")
	for i, part := range parts {
		tokens := strings.Fields(strings.TrimSpace(part))
		if len(tokens) > 0 && rewritable(tokens[0]) {
			tokens[0] = resolver.ResolveAssetURL(tokens[0])
		}
		parts[i] = strings.Join(tokens, " ")
	}
	return strings.Join(parts, ", ")
}

// rewriteBackgroundURLs resolves url() references inside an inline style
// value.
func rewriteBackgroundURLs(style string, resolver domain.AssetResolver) string {
	return backgroundURLRe.ReplaceAllStringFunc(style, func(match string) string {
		sub := backgroundURLRe.FindStringSubmatch(match)
		if len(sub) < 2 || !rewritable(sub[1]) {
			return match
		}
		return "url('" + resolver.ResolveAssetURL(sub[1]) + "')"
	})
}
