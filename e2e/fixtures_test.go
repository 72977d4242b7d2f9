//go:build e2e
// +build e2e

package e2e

import (
	"strings"
	"testing"

	"github.com/matchqueue/e2e/browser"
	"github.com/matchqueue/e2e/config"
	"github.com/matchqueue/e2e/logging"
	"github.com/matchqueue/e2e/pages"
	"github.com/matchqueue/e2e/selectors"
)

// TestFixtures bundles the application under test, the browser and one page
// object per screen, all sharing the same page.
type TestFixtures struct {
	App     *StubApp
	Fixture *browser.Fixture
	B       *browser.Interactions

	Login         *pages.LoginPage
	Community     *pages.CommunityPage
	Matching      *pages.MatchingPage
	Team          *pages.TeamPage
	Notifications *pages.NotificationPage
	Profile       *pages.UserProfilePage
	Dashboard     *pages.DashboardPage
}

// WithFixtures creates all fixtures, registers cleanup with t.Cleanup(), and
// calls the test function. A failed test leaves a full-page screenshot in the
// configured screenshots directory.
func WithFixtures(t *testing.T, fn func(t *testing.T, f *TestFixtures)) {
	t.Helper()

	app := NewStubApp(t)

	fixture := browser.NewFixture(t)
	page := fixture.NewPage(t)
	b := browser.NewInteractions(page, fixture.Config)

	cfg := config.Get()
	t.Cleanup(func() {
		if !t.Failed() || cfg.Screenshot == "off" {
			return
		}
		name := strings.ReplaceAll(t.Name(), "/", "_")
		if path, err := b.Screenshot(name); err == nil {
			logging.Info("saved failure screenshot", "path", path)
		}
	})

	sel := selectors.Default
	fn(t, &TestFixtures{
		App:     app,
		Fixture: fixture,
		B:       b,

		Login:         pages.NewLoginPage(t, b, sel, app.BaseURL),
		Community:     pages.NewCommunityPage(t, b, sel, app.BaseURL),
		Matching:      pages.NewMatchingPage(t, b, sel, app.BaseURL),
		Team:          pages.NewTeamPage(t, b, sel, app.BaseURL),
		Notifications: pages.NewNotificationPage(t, b, sel, app.BaseURL),
		Profile:       pages.NewUserProfilePage(t, b, sel, app.BaseURL),
		Dashboard:     pages.NewDashboardPage(t, b, sel, app.BaseURL),
	})
}

// WithAuthenticatedFixtures logs in through the UI before handing control to
// the test function.
func WithAuthenticatedFixtures(t *testing.T, fn func(t *testing.T, f *TestFixtures)) {
	t.Helper()

	WithFixtures(t, func(t *testing.T, f *TestFixtures) {
		cfg := config.Get()
		f.Login.Open()
		f.Login.Login(cfg.ValidUser.Email, cfg.ValidUser.Password)
		fn(t, f)
	})
}
