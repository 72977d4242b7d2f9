package pages

import (
	"testing"

	"github.com/matchqueue/e2e/browser"
	"github.com/matchqueue/e2e/selectors"
	"github.com/matchqueue/e2e/testdata"
)

// TeamPage drives the club creation form.
type TeamPage struct {
	Base
}

// NewTeamPage builds the page object.
func NewTeamPage(t *testing.T, b *browser.Interactions, sel selectors.Profile, baseURL string) *TeamPage {
	return &TeamPage{Base: newBase(t, b, sel, baseURL)}
}

// Open navigates to the club creation form.
func (p *TeamPage) Open() {
	p.t.Helper()
	p.open(p.sel.Routes.Club)
	p.waitVisible(p.sel.Team.NameInput)
}

// FillForm fills the non-empty fields of the club record.
func (p *TeamPage) FillForm(team testdata.Team) {
	p.t.Helper()
	if team.Name != "" {
		p.fill(p.sel.Team.NameInput, team.Name)
	}
	if team.Description != "" {
		p.fill(p.sel.Team.DescriptionInput, team.Description)
	}
	if team.ImagePath != "" {
		p.UploadImage(team.ImagePath)
	}
}

// UploadImage attaches the club image and waits for the preview to render.
func (p *TeamPage) UploadImage(path string) {
	p.t.Helper()
	if err := p.b.UploadFile(p.sel.Team.ImageUploadInput, path); err != nil {
		p.t.Fatalf("upload club image: %v", err)
	}
	p.waitVisible(p.sel.Team.ImagePreview)
}

// Submit sends the form.
func (p *TeamPage) Submit() {
	p.t.Helper()
	p.click(p.sel.Team.SubmitButton)
}

// CreateTeam fills and submits a complete club record, waiting for the
// confirmation.
func (p *TeamPage) CreateTeam(team testdata.Team) {
	p.t.Helper()
	p.FillForm(team)
	p.Submit()
	p.waitVisible(p.sel.Team.SuccessMessage)
}

// NameError probes the name field's validation message.
func (p *TeamPage) NameError() (string, bool) {
	return p.b.TextIfVisible(p.sel.Team.NameErrorMessage)
}

// ImageError probes the image field's validation message.
func (p *TeamPage) ImageError() (string, bool) {
	return p.b.TextIfVisible(p.sel.Team.ImageErrorMessage)
}

// SuccessMessage probes the confirmation message.
func (p *TeamPage) SuccessMessage() (string, bool) {
	return p.b.TextIfVisible(p.sel.Team.SuccessMessage)
}

// HasImagePreview probes the preview rendered after an upload.
func (p *TeamPage) HasImagePreview() bool {
	return p.b.IsVisible(p.sel.Team.ImagePreview)
}
