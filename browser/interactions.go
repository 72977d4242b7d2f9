// Package browser wraps the Playwright engine into the interaction vocabulary
// the page objects speak. Page objects never touch the engine directly.
//
// The error contract is deliberate: actions and waits return errors (the UI
// was expected to be actionable and was not), probes degrade to a zero value
// plus ok=false because absence is a legitimate outcome there.
package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/matchqueue/e2e/config"
	"github.com/matchqueue/e2e/logging"
)

// Interactions is the shared interaction surface over one browser page. It is
// handed to page objects by composition; it owns no state beyond the page
// handle and the configured timeouts.
type Interactions struct {
	page playwright.Page
	cfg  config.Config
}

// NewInteractions wraps a page.
func NewInteractions(page playwright.Page, cfg config.Config) *Interactions {
	return &Interactions{page: page, cfg: cfg}
}

// Page exposes the underlying page for the rare step with no wrapper.
func (in *Interactions) Page() playwright.Page {
	return in.page
}

// Goto navigates and blocks until the network is idle and the DOM is ready.
// Navigation failures and timeouts propagate.
func (in *Interactions) Goto(url string) error {
	logging.Info("navigating", "url", url)
	if _, err := in.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return fmt.Errorf("goto %s: %w", url, err)
	}
	return in.WaitForPageLoad()
}

// Click clicks the first element matching selector.
func (in *Interactions) Click(selector string) error {
	logging.Debug("click", "selector", selector)
	return in.page.Locator(selector).First().Click()
}

// Fill replaces the value of the matched input.
func (in *Interactions) Fill(selector, value string) error {
	logging.Debug("fill", "selector", selector)
	return in.page.Locator(selector).First().Fill(value)
}

// Type dispatches one key event per character with a fixed inter-key delay,
// for inputs with keystroke-driven validation. Use Fill when the delay does
// not matter.
func (in *Interactions) Type(selector, value string, delay time.Duration) error {
	logging.Debug("type", "selector", selector)
	return in.page.Locator(selector).First().PressSequentially(value, playwright.LocatorPressSequentiallyOptions{
		Delay: playwright.Float(float64(delay.Milliseconds())),
	})
}

// GetText returns the text content of the matched element, or an error when
// it cannot be resolved.
func (in *Interactions) GetText(selector string) (string, error) {
	return in.page.Locator(selector).First().TextContent()
}

// GetAttribute returns the attribute value of the matched element.
func (in *Interactions) GetAttribute(selector, name string) (string, error) {
	return in.page.Locator(selector).First().GetAttribute(name)
}

// InputValue returns the current value of the matched input.
func (in *Interactions) InputValue(selector string) (string, error) {
	return in.page.Locator(selector).First().InputValue()
}

// IsVisible probes visibility. It never fails: a missing element, a detached
// frame or a closed page all read as not visible.
func (in *Interactions) IsVisible(selector string) bool {
	visible, err := in.page.Locator(selector).First().IsVisible()
	if err != nil {
		return false
	}
	return visible
}

// IsEnabled probes the enabled state, degrading to false on any error.
func (in *Interactions) IsEnabled(selector string) bool {
	enabled, err := in.page.Locator(selector).First().IsEnabled()
	if err != nil {
		return false
	}
	return enabled
}

// IsChecked probes a checkbox state, degrading to false on any error.
func (in *Interactions) IsChecked(selector string) bool {
	checked, err := in.page.Locator(selector).First().IsChecked()
	if err != nil {
		return false
	}
	return checked
}

// Count returns the number of matching elements, zero on error.
func (in *Interactions) Count(selector string) int {
	n, err := in.page.Locator(selector).Count()
	if err != nil {
		return 0
	}
	return n
}

// TextIfVisible probes for optional UI: it returns the element text and true
// only when the element exists and is visible.
func (in *Interactions) TextIfVisible(selector string) (string, bool) {
	if !in.IsVisible(selector) {
		return "", false
	}
	text, err := in.page.Locator(selector).First().TextContent()
	if err != nil {
		return "", false
	}
	return text, true
}

// AllTexts returns the text contents of every matching element, nil when
// nothing matches or the page cannot be read.
func (in *Interactions) AllTexts(selector string) []string {
	texts, err := in.page.Locator(selector).AllTextContents()
	if err != nil {
		return nil
	}
	return texts
}

// URL returns the current page URL.
func (in *Interactions) URL() string {
	return in.page.URL()
}

// Title returns the page title.
func (in *Interactions) Title() (string, error) {
	return in.page.Title()
}

// Reload reloads and waits for the network to settle.
func (in *Interactions) Reload() error {
	_, err := in.page.Reload(playwright.PageReloadOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	})
	return err
}

// GoBack navigates back and waits for the network to settle.
func (in *Interactions) GoBack() error {
	_, err := in.page.GoBack(playwright.PageGoBackOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	})
	return err
}

// Select chooses a dropdown option by label.
func (in *Interactions) Select(selector, label string) error {
	logging.Debug("select", "selector", selector, "label", label)
	_, err := in.page.Locator(selector).First().SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{label},
	})
	return err
}

// Check ticks a checkbox.
func (in *Interactions) Check(selector string) error {
	return in.page.Locator(selector).First().Check()
}

// Uncheck unticks a checkbox.
func (in *Interactions) Uncheck(selector string) error {
	return in.page.Locator(selector).First().Uncheck()
}

// Press sends a single key chord to the page.
func (in *Interactions) Press(key string) error {
	return in.page.Keyboard().Press(key)
}

// Hover moves the pointer over the matched element.
func (in *Interactions) Hover(selector string) error {
	return in.page.Locator(selector).First().Hover()
}

// UploadFile attaches a file from disk to a file input.
func (in *Interactions) UploadFile(selector, path string) error {
	logging.Info("uploading file", "selector", selector, "path", path)
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read upload fixture %s: %w", path, err)
	}
	return in.page.Locator(selector).First().SetInputFiles([]playwright.InputFile{{
		Name:     filepath.Base(path),
		MimeType: mimeTypeByExt(path),
		Buffer:   buf,
	}})
}

// SetViewport resizes the page viewport.
func (in *Interactions) SetViewport(v config.Viewport) error {
	return in.page.SetViewportSize(v.Width, v.Height)
}

// LocalStorageItem reads a localStorage key, returning ok=false when the key
// is absent or the page cannot evaluate scripts.
func (in *Interactions) LocalStorageItem(key string) (string, bool) {
	value, err := in.page.Evaluate(`key => window.localStorage.getItem(key)`, key)
	if err != nil || value == nil {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// SetLocalStorageItem writes a localStorage key.
func (in *Interactions) SetLocalStorageItem(key, value string) error {
	_, err := in.page.Evaluate(`([key, value]) => window.localStorage.setItem(key, value)`, []string{key, value})
	return err
}

// ClearLocalStorage wipes localStorage and sessionStorage.
func (in *Interactions) ClearLocalStorage() error {
	_, err := in.page.Evaluate(`() => { window.localStorage.clear(); window.sessionStorage.clear(); }`)
	return err
}

// ClearCookies wipes the context's cookies.
func (in *Interactions) ClearCookies() error {
	return in.page.Context().ClearCookies()
}

// Screenshot captures the full page under the configured screenshots
// directory, namespaced by name and capture time, and returns the path.
func (in *Interactions) Screenshot(name string) (string, error) {
	path := filepath.Join(in.cfg.Paths.Screenshots, fmt.Sprintf("%s_%d.png", name, time.Now().UnixMilli()))
	if err := os.MkdirAll(in.cfg.Paths.Screenshots, 0o755); err != nil {
		return "", err
	}
	if _, err := in.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return "", fmt.Errorf("screenshot %s: %w", name, err)
	}
	return path, nil
}

// ElementScreenshot captures a single element to the screenshots directory.
func (in *Interactions) ElementScreenshot(selector, name string) (string, error) {
	path := filepath.Join(in.cfg.Paths.Screenshots, fmt.Sprintf("%s_%d.png", name, time.Now().UnixMilli()))
	if err := os.MkdirAll(in.cfg.Paths.Screenshots, 0o755); err != nil {
		return "", err
	}
	if _, err := in.page.Locator(selector).First().Screenshot(playwright.LocatorScreenshotOptions{
		Path: playwright.String(path),
	}); err != nil {
		return "", fmt.Errorf("element screenshot %s: %w", name, err)
	}
	return path, nil
}

func mimeTypeByExt(path string) string {
	switch filepath.Ext(path) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
