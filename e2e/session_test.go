//go:build e2e
// +build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchqueue/e2e/config"
)

func TestUnauthenticatedVisitRedirectsToLogin(t *testing.T) {
	WithFixtures(t, func(t *testing.T, f *TestFixtures) {
		// The guard redirect can interrupt the navigation mid-load, so the
		// goto error is not meaningful here.
		_ = f.B.Goto(f.App.BaseURL + "/")
		require.NoError(t, f.B.WaitForURL("**/login", config.Get().Timeouts.Medium))

		assert.False(t, f.Dashboard.IsAuthenticated())
	})
}

func TestForgedTokenIsRejectedAndCleared(t *testing.T) {
	WithFixtures(t, func(t *testing.T, f *TestFixtures) {
		f.Login.Open()
		f.Login.SetToken("bogus-token")

		_ = f.B.Goto(f.App.BaseURL + "/")
		require.NoError(t, f.B.WaitForURL("**/login", config.Get().Timeouts.Medium))

		assert.Empty(t, f.Login.Token(), "forged token must be wiped from storage")
	})
}

func TestLogoutInvalidatesSession(t *testing.T) {
	WithAuthenticatedFixtures(t, func(t *testing.T, f *TestFixtures) {
		token := f.Login.Token()
		require.NotEmpty(t, token)

		f.Dashboard.Logout()
		assert.Empty(t, f.Login.Token())

		// The old token no longer resolves on the server either.
		_ = f.B.Goto(f.App.BaseURL + "/")
		require.NoError(t, f.B.WaitForURL("**/login", config.Get().Timeouts.Medium))
	})
}

func TestExpiredSessionBouncesToLogin(t *testing.T) {
	WithAuthenticatedFixtures(t, func(t *testing.T, f *TestFixtures) {
		sessions := f.App.Sessions()
		if sessions == nil {
			t.Skip("session expiry needs the in-process application")
		}

		// Expire the session server-side while the token is still in the
		// browser's storage.
		sessions.Delete(f.Login.Token())

		_ = f.B.Goto(f.App.BaseURL + "/profile")
		require.NoError(t, f.B.WaitForURL("**/login", config.Get().Timeouts.Medium))
		assert.Empty(t, f.Login.Token())
	})
}
