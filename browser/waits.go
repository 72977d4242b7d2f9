package browser

import (
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/matchqueue/e2e/logging"
)

// WaitFor blocks until the matched element is visible, up to timeout.
func (in *Interactions) WaitFor(selector string, timeout time.Duration) error {
	logging.Debug("waiting for element", "selector", selector)
	err := in.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("wait for %s: %w", selector, err)
	}
	return nil
}

// WaitForHidden blocks until the matched element is hidden or detached.
func (in *Interactions) WaitForHidden(selector string, timeout time.Duration) error {
	err := in.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("wait for %s hidden: %w", selector, err)
	}
	return nil
}

// WaitForURL blocks until the page URL matches the glob pattern.
func (in *Interactions) WaitForURL(pattern string, timeout time.Duration) error {
	err := in.page.WaitForURL(pattern, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("wait for url %s: %w", pattern, err)
	}
	return nil
}

// WaitForPageLoad blocks until the DOM is parsed and the network has been
// quiet, the readiness bar every navigation in the suite settles on.
func (in *Interactions) WaitForPageLoad() error {
	if err := in.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateDomcontentloaded,
	}); err != nil {
		return err
	}
	return in.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	})
}

// WaitForNavigation arms a navigation listener before running trigger, so a
// navigation that completes quickly is never missed. The trigger's own error
// takes precedence over the wait's.
func (in *Interactions) WaitForNavigation(trigger func() error) error {
	_, err := in.page.ExpectNavigation(func() error {
		return trigger()
	}, playwright.PageExpectNavigationOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	})
	if err != nil {
		return fmt.Errorf("wait for navigation: %w", err)
	}
	return nil
}

// WaitForResponse arms a response listener for any response whose URL
// contains urlPart, then runs trigger. It returns the matched response.
func (in *Interactions) WaitForResponse(urlPart string, trigger func() error) (playwright.Response, error) {
	resp, err := in.page.ExpectResponse(func(r playwright.Response) bool {
		return strings.Contains(r.URL(), urlPart)
	}, func() error {
		return trigger()
	})
	if err != nil {
		return nil, fmt.Errorf("wait for response %q: %w", urlPart, err)
	}
	return resp, nil
}
