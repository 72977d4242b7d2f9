package pages

import (
	"strings"
	"testing"

	"github.com/samber/lo"

	"github.com/matchqueue/e2e/browser"
	"github.com/matchqueue/e2e/selectors"
)

// CommunityPage drives the community feed: creating posts and reading the
// rendered feed back.
type CommunityPage struct {
	Base
}

// Post is one rendered feed entry.
type Post struct {
	Username string
	Content  string
}

// NewCommunityPage builds the page object.
func NewCommunityPage(t *testing.T, b *browser.Interactions, sel selectors.Profile, baseURL string) *CommunityPage {
	return &CommunityPage{Base: newBase(t, b, sel, baseURL)}
}

// Open navigates to the feed and waits for the post list.
func (p *CommunityPage) Open() {
	p.t.Helper()
	p.open(p.sel.Routes.Community)
	p.waitVisible(p.sel.Community.PostList)
}

// CreatePost publishes a text post and waits until it shows in the feed.
func (p *CommunityPage) CreatePost(content string) {
	p.t.Helper()
	p.click(p.sel.Community.CreatePostButton)
	p.waitVisible(p.sel.Community.PostInput)
	p.fill(p.sel.Community.PostInput, content)
	p.waitNavigation(func() error {
		return p.b.Click(p.sel.Community.PostButton)
	})
	p.waitVisible(p.sel.Community.PostItem)
}

// CreatePostWithImage publishes a post with an attached image.
func (p *CommunityPage) CreatePostWithImage(content, imagePath string) {
	p.t.Helper()
	p.click(p.sel.Community.CreatePostButton)
	p.waitVisible(p.sel.Community.PostInput)
	p.fill(p.sel.Community.PostInput, content)
	if err := p.b.UploadFile(p.sel.Community.ImageUploadInput, imagePath); err != nil {
		p.t.Fatalf("attach image: %v", err)
	}
	p.waitNavigation(func() error {
		return p.b.Click(p.sel.Community.PostButton)
	})
	p.waitVisible(p.sel.Community.PostItem)
}

// SubmitEmptyPost opens the composer and submits without content. The
// application must reject it client-side, so no navigation is awaited.
func (p *CommunityPage) SubmitEmptyPost() {
	p.t.Helper()
	p.click(p.sel.Community.CreatePostButton)
	p.waitVisible(p.sel.Community.PostInput)
	p.click(p.sel.Community.PostButton)
}

// EmptyPostError probes the composer's validation message.
func (p *CommunityPage) EmptyPostError() (string, bool) {
	return p.b.TextIfVisible(p.sel.Community.PostEmptyError)
}

// PostCount returns the number of rendered posts.
func (p *CommunityPage) PostCount() int {
	return p.b.Count(p.sel.Community.PostItem)
}

// Posts reads the rendered feed, most recent first.
func (p *CommunityPage) Posts() []Post {
	contents := p.b.AllTexts(p.sel.Community.PostItem + " " + p.sel.Community.PostContent)
	usernames := p.b.AllTexts(p.sel.Community.PostItem + " " + p.sel.Community.PostUsername)

	return lo.Map(contents, func(content string, i int) Post {
		post := Post{Content: strings.TrimSpace(content)}
		if i < len(usernames) {
			post.Username = strings.TrimSpace(usernames[i])
		}
		return post
	})
}

// LatestPostHasImage probes whether the most recent post carries an image.
func (p *CommunityPage) LatestPostHasImage() bool {
	return p.b.IsVisible(p.sel.Community.PostItem + ":first-child " + p.sel.Community.PostImage)
}

// LatestPost probes the first (most recent) feed entry.
func (p *CommunityPage) LatestPost() (Post, bool) {
	posts := p.Posts()
	if len(posts) == 0 {
		return Post{}, false
	}
	return posts[0], true
}

// HasPostWithContent reports whether any rendered post carries the content.
func (p *CommunityPage) HasPostWithContent(content string) bool {
	return lo.SomeBy(p.Posts(), func(post Post) bool {
		return strings.Contains(post.Content, content)
	})
}
