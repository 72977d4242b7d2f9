package pages

import (
	"testing"

	"github.com/matchqueue/e2e/browser"
	"github.com/matchqueue/e2e/selectors"
)

// DashboardPage drives the authenticated chrome: the user menu, logout and
// the header navigation shared by every signed-in screen.
type DashboardPage struct {
	Base
}

// NewDashboardPage builds the page object.
func NewDashboardPage(t *testing.T, b *browser.Interactions, sel selectors.Profile, baseURL string) *DashboardPage {
	return &DashboardPage{Base: newBase(t, b, sel, baseURL)}
}

// Open navigates to the authenticated landing screen.
func (p *DashboardPage) Open() {
	p.t.Helper()
	p.open(p.sel.Routes.Dashboard)
	p.waitVisible(p.sel.Dashboard.UserMenu)
}

// IsAuthenticated probes the user menu, present only with a live session.
func (p *DashboardPage) IsAuthenticated() bool {
	return p.b.IsVisible(p.sel.Dashboard.UserMenu)
}

// OpenUserMenu expands the user dropdown.
func (p *DashboardPage) OpenUserMenu() {
	p.t.Helper()
	p.click(p.sel.Dashboard.UserMenu)
	p.waitVisible(p.sel.Dashboard.LogoutButton)
}

// Logout signs the session out and waits for the redirect to the login
// screen.
func (p *DashboardPage) Logout() {
	p.t.Helper()
	p.OpenUserMenu()
	p.waitNavigation(func() error {
		return p.b.Click(p.sel.Dashboard.LogoutButton)
	})
}

// GoToProfile follows the header link to the profile screen.
func (p *DashboardPage) GoToProfile() {
	p.t.Helper()
	p.OpenUserMenu()
	p.waitNavigation(func() error {
		return p.b.Click(p.sel.Dashboard.ProfileLink)
	})
}

// GoToNotifications follows the header icon to the notification center.
func (p *DashboardPage) GoToNotifications() {
	p.t.Helper()
	p.waitNavigation(func() error {
		return p.b.Click(p.sel.Dashboard.NotificationsIcon)
	})
}
