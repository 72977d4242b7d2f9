package browser

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/matchqueue/e2e/config"
	"github.com/matchqueue/e2e/logging"
)

// Fixture manages the Playwright driver and browser for a test. Contexts and
// pages hang off it; every test gets its own context so storage and cookies
// never leak between tests.
type Fixture struct {
	PW      *playwright.Playwright
	Browser playwright.Browser
	Config  config.Config
}

// NewFixture starts Playwright and launches Chromium according to the shared
// configuration. Set HEADLESS=false to watch the browser while debugging.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()

	cfg := config.Get()

	pw, err := playwright.Run()
	require.NoError(t, err, "failed to start playwright")

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(float64(cfg.SlowMo.Milliseconds())),
	})
	require.NoError(t, err, "failed to launch browser")

	f := &Fixture{PW: pw, Browser: browser, Config: cfg}
	t.Cleanup(f.Close)
	return f
}

// NewContext creates an isolated browser context with the configured locale,
// timezone and desktop viewport.
func (f *Fixture) NewContext(t *testing.T) playwright.BrowserContext {
	t.Helper()

	opts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  f.Config.Desktop.Width,
			Height: f.Config.Desktop.Height,
		},
		Locale:     playwright.String(f.Config.Locale),
		TimezoneId: playwright.String(f.Config.Timezone),
	}
	if f.Config.Video {
		opts.RecordVideo = &playwright.RecordVideo{Dir: f.Config.Paths.Videos}
	}

	ctx, err := f.Browser.NewContext(opts)
	require.NoError(t, err, "failed to create browser context")
	t.Cleanup(func() { _ = ctx.Close() })
	return ctx
}

// NewPage creates a fresh page in its own context.
func (f *Fixture) NewPage(t *testing.T) playwright.Page {
	t.Helper()

	ctx := f.NewContext(t)
	page, err := ctx.NewPage()
	require.NoError(t, err, "failed to create page")
	page.SetDefaultTimeout(float64(f.Config.Timeouts.Medium.Milliseconds()))
	return page
}

// Close releases the browser and the driver.
func (f *Fixture) Close() {
	if err := f.Browser.Close(); err != nil {
		logging.Error("failed to close browser", err)
	}
	if err := f.PW.Stop(); err != nil {
		logging.Error("failed to stop playwright", err)
	}
}
