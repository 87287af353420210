package page

import (
	"fmt"
	"html"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagemount/pagemount/internal/utils"
)

// panelTemplate is self-contained: every style is inline so the panel does
// not depend on any stylesheet that may have failed to load.
const panelTemplate = `<div style="padding:16px;border:1px solid #e0b4b4;border-radius:4px;background:#fff6f6;color:#9f3a38;font-family:sans-serif">` +
	`<strong style="display:block;margin-bottom:8px">Application failed to load</strong>` +
	`<p style="margin:0 0 8px 0">%s</p>` +
	`<p style="margin:0;font-size:smaller">Please try reloading the page. If the problem persists, contact the site operator.</p>` +
	`</div>`

// Presenter renders a fallback panel into the located containers when a
// pipeline stage fails.
type Presenter struct {
	showErrors bool
	logger     *utils.Logger
}

// NewPresenter creates a new Presenter
func NewPresenter(showErrors bool, logger *utils.Logger) *Presenter {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Presenter{
		showErrors: showErrors,
		logger:     logger.WithComponent("errors"),
	}
}

// Present writes the error panel into every located container. When error
// display is disabled, or no containers are known, the failure is reported
// through the log only. Present never fails.
func (p *Presenter) Present(containers *goquery.Selection, err error) {
	p.logger.Error().Err(err).Msg("Embed pipeline failed")

	if !p.showErrors {
		return
	}
	if containers == nil || containers.Length() == 0 {
		p.logger.Debug().Msg("No containers located, error shown in log only")
		return
	}

	panel := fmt.Sprintf(panelTemplate, html.EscapeString(err.Error()))
	containers.Each(func(_ int, container *goquery.Selection) {
		container.SetHtml(panel)
	})
}
