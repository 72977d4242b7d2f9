//go:build e2e
// +build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchqueue/e2e/testdata"
)

func TestCreateClubHappyPath(t *testing.T) {
	WithAuthenticatedFixtures(t, func(t *testing.T, f *TestFixtures) {
		f.Team.Open()
		f.Team.CreateTeam(testdata.Teams.Valid)

		msg, ok := f.Team.SuccessMessage()
		require.True(t, ok)
		assert.Equal(t, "Tạo câu lạc bộ thành công", msg)
	})
}

func TestCreateClubRequiresName(t *testing.T) {
	WithAuthenticatedFixtures(t, func(t *testing.T, f *TestFixtures) {
		f.Team.Open()
		f.Team.FillForm(testdata.Teams.MissingName)
		f.Team.Submit()

		msg, ok := f.Team.NameError()
		require.True(t, ok)
		assert.Equal(t, "Tên đội bóng không được để trống", msg)
	})
}

func TestCreateClubRequiresImage(t *testing.T) {
	WithAuthenticatedFixtures(t, func(t *testing.T, f *TestFixtures) {
		f.Team.Open()
		f.Team.FillForm(testdata.Teams.MissingImage)
		f.Team.Submit()

		msg, ok := f.Team.ImageError()
		require.True(t, ok)
		assert.Equal(t, "Hình ảnh không được để trống", msg)
	})
}

func TestClubImagePreview(t *testing.T) {
	WithAuthenticatedFixtures(t, func(t *testing.T, f *TestFixtures) {
		f.Team.Open()
		assert.False(t, f.Team.HasImagePreview(), "no preview before an upload")

		f.Team.UploadImage(testdata.UploadImage())
		assert.True(t, f.Team.HasImagePreview())
	})
}
