//go:build e2e
// +build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchqueue/e2e/testdata"
)

func TestNotificationsListAfterLogin(t *testing.T) {
	WithAuthenticatedFixtures(t, func(t *testing.T, f *TestFixtures) {
		f.Notifications.Open()

		require.Greater(t, f.Notifications.Count(), 0, "login seeds notifications")
		assert.Greater(t, f.Notifications.UnreadCount(), 0)
		assert.NotEmpty(t, f.Notifications.Items()[0])
	})
}

func TestUnreadTabFiltersNotifications(t *testing.T) {
	WithAuthenticatedFixtures(t, func(t *testing.T, f *TestFixtures) {
		f.Notifications.Open()
		total := f.Notifications.Count()
		unread := f.Notifications.UnreadCount()
		require.Greater(t, total, unread, "some seeded notifications are already read")

		f.Notifications.SwitchToUnread()
		assert.Equal(t, unread, f.Notifications.Count(), "unread tab only lists unread items")

		f.Notifications.SwitchToAll()
		assert.Equal(t, total, f.Notifications.Count())
	})
}

func TestMarkAllReadClearsUnread(t *testing.T) {
	WithAuthenticatedFixtures(t, func(t *testing.T, f *TestFixtures) {
		f.Notifications.Open()
		require.Greater(t, f.Notifications.UnreadCount(), 0)

		f.Notifications.MarkAllRead()
		assert.Zero(t, f.Notifications.UnreadCount())

		f.Notifications.SwitchToUnread()
		msg, ok := f.Notifications.EmptyMessage()
		require.True(t, ok, "unread tab should be empty after marking all read")
		assert.Equal(t, "Không có thông báo nào", msg)
	})
}

func TestDeleteAllEmptiesNotificationList(t *testing.T) {
	WithAuthenticatedFixtures(t, func(t *testing.T, f *TestFixtures) {
		f.Notifications.Open()
		require.Greater(t, f.Notifications.Count(), 0)

		f.Notifications.DeleteAll()
		assert.Zero(t, f.Notifications.Count())
		msg, ok := f.Notifications.EmptyMessage()
		require.True(t, ok, "empty placeholder shows once everything is deleted")
		assert.Equal(t, "Không có thông báo nào", msg)
	})
}

func TestNewActivityAddsNotificationFirst(t *testing.T) {
	WithAuthenticatedFixtures(t, func(t *testing.T, f *TestFixtures) {
		f.Matching.OpenCreate()
		f.Matching.CreateMatch(testdata.Matches.Valid)

		f.Notifications.Open()
		items := f.Notifications.Items()
		require.NotEmpty(t, items)
		assert.Contains(t, items[0], testdata.Matches.Valid.Stadium, "newest notification renders first")
	})
}
