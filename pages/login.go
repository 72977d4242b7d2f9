package pages

import (
	"strings"
	"testing"

	"github.com/matchqueue/e2e/browser"
	"github.com/matchqueue/e2e/selectors"
)

// LoginPage drives the login screen, including the token handling behind it.
type LoginPage struct {
	Base
}

// NewLoginPage builds the page object. It does not navigate.
func NewLoginPage(t *testing.T, b *browser.Interactions, sel selectors.Profile, baseURL string) *LoginPage {
	return &LoginPage{Base: newBase(t, b, sel, baseURL)}
}

// Open navigates to the login route and waits for the form.
func (p *LoginPage) Open() {
	p.t.Helper()
	p.open(p.sel.Routes.Login)
	p.waitVisible(p.sel.Login.EmailInput)
}

// EnterEmail types the email with per-key delay, matching a user.
func (p *LoginPage) EnterEmail(email string) {
	p.t.Helper()
	p.typeSlow(p.sel.Login.EmailInput, email)
}

// EnterPassword types the password with per-key delay.
func (p *LoginPage) EnterPassword(password string) {
	p.t.Helper()
	p.typeSlow(p.sel.Login.PasswordInput, password)
}

// ClearEmail empties the email field. Clearing an already empty field is a
// no-op.
func (p *LoginPage) ClearEmail() {
	p.t.Helper()
	p.fill(p.sel.Login.EmailInput, "")
}

// ClearPassword empties the password field.
func (p *LoginPage) ClearPassword() {
	p.t.Helper()
	p.fill(p.sel.Login.PasswordInput, "")
}

// EmailValue reads back the email field.
func (p *LoginPage) EmailValue() string {
	p.t.Helper()
	value, err := p.b.InputValue(p.sel.Login.EmailInput)
	if err != nil {
		return ""
	}
	return value
}

// CheckRememberMe ticks the remember-me checkbox.
func (p *LoginPage) CheckRememberMe() {
	p.t.Helper()
	if err := p.b.Check(p.sel.Login.RememberMeCheckbox); err != nil {
		p.t.Fatalf("check remember me: %v", err)
	}
}

// RememberMeChecked probes the checkbox state.
func (p *LoginPage) RememberMeChecked() bool {
	return p.b.IsChecked(p.sel.Login.RememberMeCheckbox)
}

// Submit clicks the login button without waiting for any outcome.
func (p *LoginPage) Submit() {
	p.t.Helper()
	p.click(p.sel.Login.SubmitButton)
}

// Login performs the full happy-path flow: fill credentials, submit, and
// wait for the navigation away from the login route.
func (p *LoginPage) Login(email, password string) {
	p.t.Helper()
	p.EnterEmail(email)
	p.EnterPassword(password)
	p.waitNavigation(func() error {
		return p.b.Click(p.sel.Login.SubmitButton)
	})
}

// LoginExpectingError submits credentials that must be rejected and waits
// for the error banner instead of a navigation.
func (p *LoginPage) LoginExpectingError(email, password string) {
	p.t.Helper()
	if email != "" {
		p.EnterEmail(email)
	}
	if password != "" {
		p.EnterPassword(password)
	}
	p.Submit()
	p.waitVisible(p.sel.Login.ErrorMessage)
}

// ErrorMessage probes the general error banner.
func (p *LoginPage) ErrorMessage() (string, bool) {
	return p.b.TextIfVisible(p.sel.Login.ErrorMessage)
}

// EmailError probes the email field's validation message.
func (p *LoginPage) EmailError() (string, bool) {
	return p.b.TextIfVisible(p.sel.Login.EmailErrorMessage)
}

// PasswordError probes the password field's validation message.
func (p *LoginPage) PasswordError() (string, bool) {
	return p.b.TextIfVisible(p.sel.Login.PasswordErrorMessage)
}

// IsLoggedIn reports whether the session landed on an authenticated screen.
func (p *LoginPage) IsLoggedIn() bool {
	return !strings.Contains(p.b.URL(), p.sel.Routes.Login) && p.Token() != ""
}

// Token reads the session token from localStorage, empty when absent.
func (p *LoginPage) Token() string {
	token, ok := p.b.LocalStorageItem("token")
	if !ok {
		return ""
	}
	return token
}

// SetToken plants a session token, for tests driving expired or forged
// sessions.
func (p *LoginPage) SetToken(token string) {
	p.t.Helper()
	if err := p.b.SetLocalStorageItem("token", token); err != nil {
		p.t.Fatalf("set token: %v", err)
	}
}

// ClearSession wipes storage and cookies so the next navigation starts
// unauthenticated.
func (p *LoginPage) ClearSession() {
	p.t.Helper()
	if err := p.b.ClearLocalStorage(); err != nil {
		p.t.Fatalf("clear storage: %v", err)
	}
	if err := p.b.ClearCookies(); err != nil {
		p.t.Fatalf("clear cookies: %v", err)
	}
}

// PageTitle probes the login headline.
func (p *LoginPage) PageTitle() (string, bool) {
	return p.b.TextIfVisible(p.sel.Login.PageTitle)
}

// PasswordMasked reports whether the password field hides its input.
func (p *LoginPage) PasswordMasked() bool {
	inputType, err := p.b.GetAttribute(p.sel.Login.PasswordInput, "type")
	return err == nil && inputType == "password"
}

// HasLogo probes the logo image.
func (p *LoginPage) HasLogo() bool {
	return p.b.IsVisible(p.sel.Login.Logo)
}

// HasGoogleLogin probes the Google social login button.
func (p *LoginPage) HasGoogleLogin() bool {
	return p.b.IsVisible(p.sel.Login.GoogleLoginButton)
}

// HasFacebookLogin probes the Facebook social login button.
func (p *LoginPage) HasFacebookLogin() bool {
	return p.b.IsVisible(p.sel.Login.FacebookLoginButton)
}

// FeatureTitles returns the marketing panel's feature headings.
func (p *LoginPage) FeatureTitles() []string {
	return p.b.AllTexts(p.sel.Login.FeatureTitles)
}

// SubmitEnabled probes whether the login button is clickable.
func (p *LoginPage) SubmitEnabled() bool {
	return p.b.IsEnabled(p.sel.Login.SubmitButton)
}
