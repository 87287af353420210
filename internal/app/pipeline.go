package app

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagemount/pagemount/internal/config"
	"github.com/pagemount/pagemount/internal/domain"
	"github.com/pagemount/pagemount/internal/fetcher"
	"github.com/pagemount/pagemount/internal/manifest"
	"github.com/pagemount/pagemount/internal/page"
	"github.com/pagemount/pagemount/internal/resolve"
	"github.com/pagemount/pagemount/internal/utils"
)

// Pipeline embeds a manifest-described application bundle into a host
// document. The stages run strictly in sequence; any failure short-circuits
// to the error presenter and the terminal Failed state. A pipeline holds an
// immutable configuration built once at construction and never reads
// ambient state.
type Pipeline struct {
	cfg     *config.Config
	fetcher domain.Fetcher
	logger  *utils.Logger
}

// PipelineOptions contains options for creating a Pipeline
type PipelineOptions struct {
	Config  *config.Config
	Fetcher domain.Fetcher
	Logger  *utils.Logger
}

// Result carries the terminal state of one embed run. Resolver is the
// handle the embedded application uses for its own dynamic asset
// references; it is non-nil whenever asset identification succeeded.
type Result struct {
	Stage         domain.Stage
	Resolver      *resolve.Resolver
	EntryKey      string
	StylesheetURL string
	ScriptURL     string
	Err           error
}

// NewPipeline creates a pipeline from caller options merged over defaults
func NewPipeline(opts PipelineOptions) (*Pipeline, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("config is required")
	}

	cfg := opts.Config

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
	}

	cfg.Normalize(logger)

	client := opts.Fetcher
	if client == nil {
		client = fetcher.NewClient(fetcher.ClientOptions{
			Timeout:   cfg.Fetch.Timeout,
			UserAgent: cfg.Fetch.UserAgent,
		})
	}

	return &Pipeline{
		cfg:     cfg,
		fetcher: client,
		logger:  logger.WithComponent("pipeline"),
	}, nil
}

// Embed runs the full pipeline against the host document. It always
// returns a Result; on failure the result carries the error after the
// presenter has rendered it into the located containers.
func (p *Pipeline) Embed(ctx context.Context, doc *goquery.Document) *Result {
	embed := p.cfg.Embed
	presenter := page.NewPresenter(embed.ShowErrors, p.logger)

	result := &Result{Stage: domain.StageInit}
	p.transition(result, domain.StageInit)

	// Config validation comes before any document query or network call.
	if err := p.cfg.Validate(); err != nil {
		return p.fail(result, presenter, nil, err)
	}
	p.transition(result, domain.StageConfigValidated)

	containers, err := page.LocateContainers(doc, embed.ContainerSelector, embed.MountStrategy, p.logger)
	if err != nil {
		return p.fail(result, presenter, nil, err)
	}
	p.transition(result, domain.StageContainersLocated)

	patcher := page.NewPatcher(p.logger)
	patcher.Install(doc)
	p.transition(result, domain.StagePatcherInstalled)

	loader := manifest.NewLoader(p.fetcher, p.logger)
	man, err := loader.Fetch(ctx, embed.BaseURL, embed.ManifestPath)
	if err != nil {
		return p.fail(result, presenter, containers, err)
	}
	p.transition(result, domain.StageManifestFetched)

	heuristics := resolve.Options{
		EntryPrefix:  embed.EntryPrefix,
		MainMarker:   embed.MainMarker,
		SourcePrefix: embed.SourcePrefix,
	}

	entryKey, entry, err := resolve.SelectEntry(man, heuristics)
	if err != nil {
		return p.fail(result, presenter, containers, err)
	}
	stylesheet, hasStylesheet := resolve.SelectStylesheet(man, entry, heuristics)

	resolver := resolve.NewResolver(embed.BaseURL, resolve.BuildAssetMap(man, embed.SourcePrefix))
	result.Resolver = resolver
	result.EntryKey = entryKey
	p.transition(result, domain.StageAssetsIdentified)

	// The patch pass needs the asset map, so it runs once the resolver
	// exists; installation above already claimed the document.
	patcher.Apply(doc, resolver)

	injector := page.NewInjector(page.InjectorOptions{
		Doc:     doc,
		Fetcher: p.fetcher,
		Verify:  embed.VerifyAssets,
		Logger:  p.logger,
	})

	// Stylesheet completes (or is explicitly skipped) strictly before the
	// script element is created.
	if hasStylesheet {
		href := resolve.JoinBaseURL(embed.BaseURL, stylesheet)
		if err := injector.Stylesheet(ctx, href); err != nil {
			return p.fail(result, presenter, containers, err)
		}
		result.StylesheetURL = href
		p.transition(result, domain.StageStylesLoaded)
	} else {
		p.transition(result, domain.StageStylesSkipped)
	}

	src := resolve.JoinBaseURL(embed.BaseURL, entry.File)
	if err := injector.Script(ctx, src); err != nil {
		return p.fail(result, presenter, containers, err)
	}
	result.ScriptURL = src
	p.transition(result, domain.StageScriptLoaded)

	p.transition(result, domain.StageReady)
	return result
}

// transition records and logs a stage change
func (p *Pipeline) transition(result *Result, stage domain.Stage) {
	result.Stage = stage
	p.logger.Debug().Str("stage", string(stage)).Msg("Pipeline stage")
}

// fail moves the pipeline to the terminal Failed state, presenting the
// error exactly once. Errors raised before containers are known reach the
// log only.
func (p *Pipeline) fail(result *Result, presenter *page.Presenter, containers *goquery.Selection, err error) *Result {
	result.Err = err
	presenter.Present(containers, err)
	p.transition(result, domain.StageFailed)
	return result
}
