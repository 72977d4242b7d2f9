package pages

import (
	"strings"
	"testing"

	"github.com/samber/lo"

	"github.com/matchqueue/e2e/browser"
	"github.com/matchqueue/e2e/selectors"
)

// NotificationPage drives the notification center.
type NotificationPage struct {
	Base
}

// NewNotificationPage builds the page object.
func NewNotificationPage(t *testing.T, b *browser.Interactions, sel selectors.Profile, baseURL string) *NotificationPage {
	return &NotificationPage{Base: newBase(t, b, sel, baseURL)}
}

// Open navigates to the notification center.
func (p *NotificationPage) Open() {
	p.t.Helper()
	p.open(p.sel.Routes.Notifications)
	p.waitVisible(p.sel.Notification.PageTitle)
}

// SwitchToUnread activates the unread tab.
func (p *NotificationPage) SwitchToUnread() {
	p.t.Helper()
	p.waitNavigation(func() error {
		return p.b.Click(p.sel.Notification.TabUnread)
	})
}

// SwitchToAll activates the all tab.
func (p *NotificationPage) SwitchToAll() {
	p.t.Helper()
	p.waitNavigation(func() error {
		return p.b.Click(p.sel.Notification.TabAll)
	})
}

// MarkAllRead clicks mark-as-read and waits for the unread badges to clear.
func (p *NotificationPage) MarkAllRead() {
	p.t.Helper()
	p.waitNavigation(func() error {
		return p.b.Click(p.sel.Notification.MarkReadButton)
	})
}

// DeleteAll clicks delete-all and waits for the list to reload.
func (p *NotificationPage) DeleteAll() {
	p.t.Helper()
	p.waitNavigation(func() error {
		return p.b.Click(p.sel.Notification.DeleteAllButton)
	})
}

// Items reads the visible notification texts, most recent first.
func (p *NotificationPage) Items() []string {
	return lo.Map(p.b.AllTexts(p.sel.Notification.NotificationItem+" "+p.sel.Notification.NotificationContent), func(text string, _ int) string {
		return strings.TrimSpace(text)
	})
}

// Count returns the number of visible notifications.
func (p *NotificationPage) Count() int {
	return p.b.Count(p.sel.Notification.NotificationItem)
}

// UnreadCount returns the number of visible unread notifications.
func (p *NotificationPage) UnreadCount() int {
	return p.b.Count(p.sel.Notification.NotificationUnread)
}

// EmptyMessage probes the placeholder shown when no notifications match the
// active tab.
func (p *NotificationPage) EmptyMessage() (string, bool) {
	return p.b.TextIfVisible(p.sel.Notification.EmptyMessage)
}
