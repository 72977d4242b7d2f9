//go:build e2e
// +build e2e

package e2e

import (
	"net/http/httptest"
	"testing"

	"github.com/matchqueue/e2e/appstub"
	"github.com/matchqueue/e2e/config"
)

// StubApp is the application under test. With BASE_URL set the suite runs
// against that deployment; otherwise an in-process stub serves each test its
// own isolated application.
type StubApp struct {
	BaseURL string

	app    *appstub.App
	server *httptest.Server
}

// NewStubApp starts the application under test and registers cleanup.
func NewStubApp(t *testing.T) *StubApp {
	t.Helper()

	cfg := config.Get()
	if cfg.BaseURL != "" {
		return &StubApp{BaseURL: cfg.BaseURL}
	}

	app := appstub.NewApp(appstub.Options{})
	server := httptest.NewServer(app)
	t.Cleanup(func() {
		server.Close()
		app.Close()
	})

	return &StubApp{
		BaseURL: server.URL,
		app:     app,
		server:  server,
	}
}

// Sessions exposes the stub's session manager, nil when running against an
// external deployment.
func (s *StubApp) Sessions() *appstub.SessionManager {
	if s.app == nil {
		return nil
	}
	return s.app.Sessions()
}
