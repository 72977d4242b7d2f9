package appstub

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingRecentNewestFirst(t *testing.T) {
	r := newRing[Post](10)
	for i := 1; i <= 3; i++ {
		r.Add(Post{Content: fmt.Sprintf("post %d", i)})
	}

	recent := r.Recent(10)
	require.Len(t, recent, 3)
	assert.Equal(t, "post 3", recent[0].Content)
	assert.Equal(t, "post 2", recent[1].Content)
	assert.Equal(t, "post 1", recent[2].Content)
}

func TestRingEvictsOldest(t *testing.T) {
	r := newRing[Post](3)
	for i := 1; i <= 5; i++ {
		r.Add(Post{Content: fmt.Sprintf("post %d", i)})
	}

	assert.Equal(t, uint64(3), r.Size())
	recent := r.Recent(10)
	require.Len(t, recent, 3)
	assert.Equal(t, "post 5", recent[0].Content)
	assert.Equal(t, "post 3", recent[2].Content)
}

func TestRingRecentLimit(t *testing.T) {
	r := newRing[Post](10)
	for i := 1; i <= 5; i++ {
		r.Add(Post{Content: fmt.Sprintf("post %d", i)})
	}

	recent := r.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "post 5", recent[0].Content)
	assert.Equal(t, "post 4", recent[1].Content)
}

func TestRingUpdate(t *testing.T) {
	r := newRing[Notification](5)
	r.Add(Notification{Email: "a@example.com", Read: false})
	r.Add(Notification{Email: "b@example.com", Read: false})

	r.Update(func(n *Notification) {
		if n.Email == "a@example.com" {
			n.Read = true
		}
	})

	recent := r.Recent(5)
	require.Len(t, recent, 2)
	assert.False(t, recent[0].Read)
	assert.True(t, recent[1].Read)
}

func TestRingZeroCapacityPanics(t *testing.T) {
	assert.Panics(t, func() {
		newRing[Post](0)
	})
}
