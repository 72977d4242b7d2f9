package pages

import (
	"testing"

	"github.com/matchqueue/e2e/browser"
	"github.com/matchqueue/e2e/selectors"
	"github.com/matchqueue/e2e/testdata"
)

// UserProfilePage drives the profile screen: viewing, editing and the avatar
// upload.
type UserProfilePage struct {
	Base
}

// NewUserProfilePage builds the page object.
func NewUserProfilePage(t *testing.T, b *browser.Interactions, sel selectors.Profile, baseURL string) *UserProfilePage {
	return &UserProfilePage{Base: newBase(t, b, sel, baseURL)}
}

// Open navigates to the profile screen.
func (p *UserProfilePage) Open() {
	p.t.Helper()
	p.open(p.sel.Routes.Profile)
	p.waitVisible(p.sel.UserProfile.PageTitle)
}

// SwitchToPosts activates the user's posts tab.
func (p *UserProfilePage) SwitchToPosts() {
	p.t.Helper()
	p.click(p.sel.UserProfile.TabPosts)
}

// SwitchToInfo activates the info tab.
func (p *UserProfilePage) SwitchToInfo() {
	p.t.Helper()
	p.click(p.sel.UserProfile.TabInfo)
}

// StartEdit enables the form fields for editing.
func (p *UserProfilePage) StartEdit() {
	p.t.Helper()
	p.click(p.sel.UserProfile.EditButton)
	p.waitVisible(p.sel.UserProfile.SaveButton)
}

// FillForm overwrites the non-empty fields of the profile record. StartEdit
// must have been called.
func (p *UserProfilePage) FillForm(profile testdata.Profile) {
	p.t.Helper()
	if profile.Username != "" {
		p.fill(p.sel.UserProfile.UsernameInput, profile.Username)
	}
	if profile.Email != "" {
		p.fill(p.sel.UserProfile.EmailInput, profile.Email)
	}
	if profile.Phone != "" {
		p.fill(p.sel.UserProfile.PhoneInput, profile.Phone)
	}
}

// Save submits the edit and waits for the confirmation.
func (p *UserProfilePage) Save() {
	p.t.Helper()
	p.click(p.sel.UserProfile.SaveButton)
	p.waitVisible(p.sel.UserProfile.SuccessMessage)
}

// SaveExpectingError submits an invalid edit and waits for the general error
// message.
func (p *UserProfilePage) SaveExpectingError() {
	p.t.Helper()
	p.click(p.sel.UserProfile.SaveButton)
	p.waitVisible(p.sel.UserProfile.ErrorMessage)
}

// SaveExpectingEmailError submits an edit with a malformed email and waits
// for the email field's validation message.
func (p *UserProfilePage) SaveExpectingEmailError() {
	p.t.Helper()
	p.click(p.sel.UserProfile.SaveButton)
	p.waitVisible(p.sel.UserProfile.EmailErrorMessage)
}

// CancelEdit abandons the edit.
func (p *UserProfilePage) CancelEdit() {
	p.t.Helper()
	p.click(p.sel.UserProfile.CancelButton)
}

// UpdateProfile performs the full edit flow.
func (p *UserProfilePage) UpdateProfile(profile testdata.Profile) {
	p.t.Helper()
	p.StartEdit()
	p.FillForm(profile)
	p.Save()
}

// UploadAvatar attaches a new avatar image.
func (p *UserProfilePage) UploadAvatar(path string) {
	p.t.Helper()
	if err := p.b.UploadFile(p.sel.UserProfile.AvatarUploadInput, path); err != nil {
		p.t.Fatalf("upload avatar: %v", err)
	}
}

// Username reads the username field's current value.
func (p *UserProfilePage) Username() string {
	value, err := p.b.InputValue(p.sel.UserProfile.UsernameInput)
	if err != nil {
		return ""
	}
	return value
}

// Phone reads the phone field's current value.
func (p *UserProfilePage) Phone() string {
	value, err := p.b.InputValue(p.sel.UserProfile.PhoneInput)
	if err != nil {
		return ""
	}
	return value
}

// SuccessMessage probes the update confirmation.
func (p *UserProfilePage) SuccessMessage() (string, bool) {
	return p.b.TextIfVisible(p.sel.UserProfile.SuccessMessage)
}

// EmailError probes the email field's validation message.
func (p *UserProfilePage) EmailError() (string, bool) {
	return p.b.TextIfVisible(p.sel.UserProfile.EmailErrorMessage)
}

// ErrorMessage probes the general error message.
func (p *UserProfilePage) ErrorMessage() (string, bool) {
	return p.b.TextIfVisible(p.sel.UserProfile.ErrorMessage)
}

// HasAvatar probes whether an avatar image is rendered.
func (p *UserProfilePage) HasAvatar() bool {
	return p.b.IsVisible(p.sel.UserProfile.Avatar)
}
