// Package pages contains the page objects of the suite. Each object owns one
// screen: it knows the screen's locators and workflows, and nothing about
// assertions beyond failing the test when an interaction that must succeed
// does not.
//
// Method shapes follow one rule. Workflow steps (open, click, fill, submit)
// fail the test via require on error. Probes (is something visible, what does
// an optional element say) return a value plus ok and never fail the test.
package pages

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/matchqueue/e2e/browser"
	"github.com/matchqueue/e2e/config"
	"github.com/matchqueue/e2e/selectors"
)

// Base carries what every page object needs: the interaction surface, the
// locator profile and the application origin.
type Base struct {
	t       *testing.T
	b       *browser.Interactions
	sel     selectors.Profile
	baseURL string
	cfg     config.Config
}

func newBase(t *testing.T, b *browser.Interactions, sel selectors.Profile, baseURL string) Base {
	return Base{t: t, b: b, sel: sel, baseURL: baseURL, cfg: config.Get()}
}

// Browser exposes the interaction surface for steps no page object wraps.
func (p *Base) Browser() *browser.Interactions {
	return p.b
}

// URL returns the current page URL.
func (p *Base) URL() string {
	return p.b.URL()
}

// Screenshot captures the page under the given name and returns the path.
func (p *Base) Screenshot(name string) string {
	p.t.Helper()
	path, err := p.b.Screenshot(name)
	require.NoError(p.t, err, "screenshot %s", name)
	return path
}

func (p *Base) open(path string) {
	p.t.Helper()
	require.NoError(p.t, p.b.Goto(p.baseURL+path), "open %s", path)
}

func (p *Base) click(selector string) {
	p.t.Helper()
	require.NoError(p.t, p.b.Click(selector), "click %s", selector)
}

func (p *Base) fill(selector, value string) {
	p.t.Helper()
	require.NoError(p.t, p.b.Fill(selector, value), "fill %s", selector)
}

func (p *Base) typeSlow(selector, value string) {
	p.t.Helper()
	require.NoError(p.t, p.b.Type(selector, value, 100*time.Millisecond), "type into %s", selector)
}

func (p *Base) selectLabel(selector, label string) {
	p.t.Helper()
	require.NoError(p.t, p.b.Select(selector, label), "select %q in %s", label, selector)
}

func (p *Base) waitVisible(selector string) {
	p.t.Helper()
	require.NoError(p.t, p.b.WaitFor(selector, p.cfg.Timeouts.Medium), "wait for %s", selector)
}

func (p *Base) waitHidden(selector string) {
	p.t.Helper()
	require.NoError(p.t, p.b.WaitForHidden(selector, p.cfg.Timeouts.Medium), "wait for %s to hide", selector)
}

func (p *Base) waitNavigation(trigger func() error) {
	p.t.Helper()
	require.NoError(p.t, p.b.WaitForNavigation(trigger))
}
