package page

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagemount/pagemount/internal/domain"
	"github.com/pagemount/pagemount/internal/utils"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Injector inserts stylesheet and script elements into the host document
// head. The pipeline guarantees the stylesheet is injected (or explicitly
// skipped) strictly before the script, so the browser honors the same load
// order the application was built against.
type Injector struct {
	doc     *goquery.Document
	fetcher domain.Fetcher
	verify  bool
	logger  *utils.Logger
}

// InjectorOptions contains options for creating an Injector
type InjectorOptions struct {
	Doc     *goquery.Document
	Fetcher domain.Fetcher
	// Verify confirms each asset URL is retrievable before injecting its
	// element, surfacing load failures at embed time instead of in the
	// visitor's browser.
	Verify bool
	Logger *utils.Logger
}

// NewInjector creates a new Injector
func NewInjector(opts InjectorOptions) *Injector {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Injector{
		doc:     opts.Doc,
		fetcher: opts.Fetcher,
		verify:  opts.Verify,
		logger:  logger.WithComponent("injector"),
	}
}

// Stylesheet injects a <link rel="stylesheet"> for the given absolute URL
func (i *Injector) Stylesheet(ctx context.Context, href string) error {
	if err := i.load(ctx, href); err != nil {
		return err
	}

	i.appendToHead(&html.Node{
		Type:     html.ElementNode,
		Data:     "link",
		DataAtom: atom.Link,
		Attr: []html.Attribute{
			{Key: "rel", Val: "stylesheet"},
			{Key: "href", Val: href},
		},
	})

	i.logger.Debug().Str("href", href).Msg("Stylesheet injected")
	return nil
}

// Script injects a <script type="module"> for the given absolute URL
func (i *Injector) Script(ctx context.Context, src string) error {
	if err := i.load(ctx, src); err != nil {
		return err
	}

	i.appendToHead(&html.Node{
		Type:     html.ElementNode,
		Data:     "script",
		DataAtom: atom.Script,
		Attr: []html.Attribute{
			{Key: "type", Val: "module"},
			{Key: "crossorigin", Val: ""},
			{Key: "src", Val: src},
		},
	})

	i.logger.Debug().Str("src", src).Msg("Script injected")
	return nil
}

// load verifies the asset is retrievable when verification is enabled
func (i *Injector) load(ctx context.Context, url string) error {
	if !i.verify || i.fetcher == nil {
		return nil
	}
	if _, err := i.fetcher.Get(ctx, url); err != nil {
		return &domain.AssetLoadError{URL: url, Err: err}
	}
	return nil
}

func (i *Injector) appendToHead(node *html.Node) {
	head := i.doc.Find("head").First()
	if head.Length() == 0 {
		// The html parser materializes head for every document, but a
		// detached fragment may lack one.
		i.doc.Selection.First().AppendNodes(node)
		return
	}
	head.AppendNodes(node)
}
