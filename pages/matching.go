package pages

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/matchqueue/e2e/browser"
	"github.com/matchqueue/e2e/selectors"
	"github.com/matchqueue/e2e/testdata"
)

// MatchingPage drives the create-match form and the manage-match table.
type MatchingPage struct {
	Base
}

// NewMatchingPage builds the page object.
func NewMatchingPage(t *testing.T, b *browser.Interactions, sel selectors.Profile, baseURL string) *MatchingPage {
	return &MatchingPage{Base: newBase(t, b, sel, baseURL)}
}

// OpenCreate navigates to the create-match form.
func (p *MatchingPage) OpenCreate() {
	p.t.Helper()
	p.open(p.sel.Routes.MatchingCreate)
	p.waitVisible(p.sel.Matching.ClubSelect)
}

// OpenManage navigates to the manage-match table.
func (p *MatchingPage) OpenManage() {
	p.t.Helper()
	p.open(p.sel.Routes.MatchingManage)
	p.waitVisible(p.sel.Matching.ManageTable)
}

// SelectClub picks a club and waits for the stadium dropdown to repopulate
// from it. The response wait is armed before the select so a fast reload is
// not missed.
func (p *MatchingPage) SelectClub(name string) {
	p.t.Helper()
	_, err := p.b.WaitForResponse("/api/stadiums", func() error {
		return p.b.Select(p.sel.Matching.ClubSelect, name)
	})
	require.NoError(p.t, err, "select club %q", name)
}

// SelectStadium picks a stadium from the options the chosen club offers.
func (p *MatchingPage) SelectStadium(name string) {
	p.t.Helper()
	p.selectLabel(p.sel.Matching.StadiumSelect, name)
}

// StadiumOptions reads the stadium dropdown's current option labels,
// excluding the placeholder.
func (p *MatchingPage) StadiumOptions() []string {
	options := p.b.AllTexts(p.sel.Matching.StadiumSelect + " option")
	return lo.FilterMap(options, func(label string, _ int) (string, bool) {
		label = strings.TrimSpace(label)
		return label, label != "" && !strings.HasPrefix(label, "--")
	})
}

// FillForm fills every non-empty field of the match record without
// submitting. Empty fields stay untouched so per-field validation can fire.
func (p *MatchingPage) FillForm(m testdata.Match) {
	p.t.Helper()
	if m.Club != "" {
		p.SelectClub(m.Club)
	}
	// Without a club the stadium dropdown only holds its placeholder.
	if m.Stadium != "" && m.Club != "" {
		p.SelectStadium(m.Stadium)
	}
	if m.Date != "" {
		p.fill(p.sel.Matching.DateInput, m.Date)
	}
	if m.Time != "" {
		p.fill(p.sel.Matching.TimeInput, m.Time)
	}
	if m.ContactNumber != "" {
		p.fill(p.sel.Matching.ContactInput, m.ContactNumber)
	}
	if m.Description != "" {
		p.fill(p.sel.Matching.DescriptionInput, m.Description)
	}
}

// Submit sends the form without waiting for an outcome.
func (p *MatchingPage) Submit() {
	p.t.Helper()
	p.click(p.sel.Matching.SubmitButton)
}

// CreateMatch fills the form and submits, waiting for the success message.
func (p *MatchingPage) CreateMatch(m testdata.Match) {
	p.t.Helper()
	p.FillForm(m)
	p.Submit()
	p.waitVisible(p.sel.Matching.SuccessMessage)
}

// SubmitExpectingErrors submits an incomplete form and waits for at least
// one field error.
func (p *MatchingPage) SubmitExpectingErrors(m testdata.Match) {
	p.t.Helper()
	p.FillForm(m)
	p.Submit()
	p.waitVisible(p.sel.Matching.ErrorMessage)
}

// ErrorMessages returns every visible field error, trimmed, in DOM order.
func (p *MatchingPage) ErrorMessages() []string {
	return lo.FilterMap(p.b.AllTexts(p.sel.Matching.ErrorMessage), func(text string, _ int) (string, bool) {
		text = strings.TrimSpace(text)
		return text, text != ""
	})
}

// SuccessMessage probes the create-match confirmation.
func (p *MatchingPage) SuccessMessage() (string, bool) {
	return p.b.TextIfVisible(p.sel.Matching.SuccessMessage)
}

// MatchRowCount returns the number of rows in the manage table.
func (p *MatchingPage) MatchRowCount() int {
	return p.b.Count(p.sel.Matching.ManageTableRow)
}

// ManageRows reads the manage table rows as raw cell text.
func (p *MatchingPage) ManageRows() []string {
	return lo.Map(p.b.AllTexts(p.sel.Matching.ManageTableRow), func(row string, _ int) string {
		return strings.Join(strings.Fields(row), " ")
	})
}

// CancelFirstMatch cancels the first match in the manage table and waits for
// the table to re-render.
func (p *MatchingPage) CancelFirstMatch() {
	p.t.Helper()
	p.waitNavigation(func() error {
		return p.b.Click(p.sel.Matching.CancelMatchButton)
	})
}
