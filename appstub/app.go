// Package appstub is the in-process application the browser suite runs
// against when no BASE_URL is configured. It is a deliberately small rendition
// of the matching platform: fixed accounts, in-memory stores, server-rendered
// pages with a thin client-side script for token handling and form
// validation.
package appstub

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/gofrs/uuid"

	"github.com/matchqueue/e2e/appstub/static"
	"github.com/matchqueue/e2e/appstub/views"
	"github.com/matchqueue/e2e/logging"
)

// Club is a created club.
type Club struct {
	ID          uint64
	Owner       string
	Name        string
	Description string
	ImageName   string
	CreatedAt   time.Time
}

// App is the stub application. Zero-value is not usable; use NewApp.
type App struct {
	accounts      *Accounts
	sessions      *SessionManager
	posts         *ring[Post]
	notifications *ring[Notification]
	matches       *MatchStore

	clubsMu    sync.RWMutex
	clubs      []Club
	nextClubID uint64

	uploadsMu sync.RWMutex
	uploads   map[string][]byte

	nextNotificationID uint64
	notificationIDMu   sync.Mutex

	mux http.Handler
}

// Options configures an App.
type Options struct {
	// FeedCapacity bounds the number of posts kept; zero means 100.
	FeedCapacity uint64
	// SessionIdleTimeout expires idle sessions; zero means the default.
	SessionIdleTimeout time.Duration
}

// NewApp builds the application with its fixed accounts and empty stores.
func NewApp(opts Options) *App {
	feedCapacity := opts.FeedCapacity
	if feedCapacity == 0 {
		feedCapacity = 100
	}

	app := &App{
		accounts:      NewAccounts(),
		sessions:      NewSessionManager(opts.SessionIdleTimeout),
		posts:         newRing[Post](feedCapacity),
		notifications: newRing[Notification](feedCapacity),
		matches:       NewMatchStore(),
		uploads:       make(map[string][]byte),
		nextClubID:    1,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /login", app.loginPage)
	mux.HandleFunc("GET /", app.feedPage)
	mux.HandleFunc("GET /matching/create", app.matchingCreatePage)
	mux.HandleFunc("GET /matching/manage", app.matchingManagePage)
	mux.HandleFunc("GET /club/create", app.clubCreatePage)
	mux.HandleFunc("GET /notifications", app.notificationsPage)
	mux.HandleFunc("GET /profile", app.profilePage)
	mux.HandleFunc("GET /user-post", app.userPostPage)

	mux.HandleFunc("POST /api/login", app.apiLogin)
	mux.HandleFunc("GET /api/session", app.apiSession)
	mux.HandleFunc("POST /api/logout", app.apiLogout)
	mux.HandleFunc("POST /api/posts", app.apiCreatePost)
	mux.HandleFunc("GET /api/stadiums", app.apiStadiums)
	mux.HandleFunc("POST /api/matches", app.apiCreateMatch)
	mux.HandleFunc("POST /api/matches/cancel", app.apiCancelMatch)
	mux.HandleFunc("POST /api/clubs", app.apiCreateClub)
	mux.HandleFunc("POST /api/profile", app.apiUpdateProfile)
	mux.HandleFunc("POST /api/avatar", app.apiUploadAvatar)
	mux.HandleFunc("POST /api/notifications/read-all", app.apiMarkNotificationsRead)
	mux.HandleFunc("POST /api/notifications/delete-all", app.apiDeleteNotifications)

	mux.HandleFunc("GET /uploads/{name}", app.serveUpload)
	mux.Handle("GET /static/", http.StripPrefix("/static", http.FileServerFS(static.Assets)))

	app.mux = mux
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// Close stops background work.
func (a *App) Close() {
	a.sessions.Close()
}

// Sessions exposes the session manager, for tests that expire tokens.
func (a *App) Sessions() *SessionManager {
	return a.sessions
}

// sessionEmail resolves the request's account. Pages read the session cookie
// (set by the client script at login); API calls carry a bearer token.
func (a *App) sessionEmail(r *http.Request) (string, bool) {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return a.sessions.Resolve(strings.TrimPrefix(auth, "Bearer "))
	}
	if cookie, err := r.Cookie("token"); err == nil {
		return a.sessions.Resolve(cookie.Value)
	}
	return "", false
}

func (a *App) addNotification(email, content string, read bool) {
	a.notificationIDMu.Lock()
	a.nextNotificationID++
	id := a.nextNotificationID
	a.notificationIDMu.Unlock()

	a.notifications.Add(Notification{
		ID:        id,
		Email:     email,
		Content:   content,
		Read:      read,
		CreatedAt: time.Now(),
	})
}

func (a *App) notificationsFor(email string, unreadOnly bool) []Notification {
	all := a.notifications.Recent(a.notifications.Size())
	out := make([]Notification, 0, len(all))
	for _, n := range all {
		if n.Email != email {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (a *App) storeUpload(data []byte, originalName string) string {
	id, _ := uuid.NewV4()
	name := fmt.Sprintf("%s_%s", strings.Split(id.String(), "-")[0], sanitizeFileName(originalName))

	a.uploadsMu.Lock()
	a.uploads[name] = data
	a.uploadsMu.Unlock()

	return name
}

func (a *App) serveUpload(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	a.uploadsMu.RLock()
	data, ok := a.uploads[name]
	a.uploadsMu.RUnlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}

func sanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		name = "upload.png"
	}
	return name
}

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	if err := component.Render(r.Context(), w); err != nil {
		logging.Error("render failed", err, "path", r.URL.Path)
	}
}

func (a *App) loginPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, views.LoginPage())
}

func (a *App) feedPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	posts := a.posts.Recent(a.posts.Size())
	render(w, r, views.FeedPage(toViewPosts(posts)))
}

func (a *App) matchingCreatePage(w http.ResponseWriter, r *http.Request) {
	render(w, r, views.MatchingCreatePage(clubNames()))
}

func (a *App) matchingManagePage(w http.ResponseWriter, r *http.Request) {
	email, _ := a.sessionEmail(r)
	matches := a.matches.ByOwner(email)

	rows := make([]views.MatchRow, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, views.MatchRow{
			ID:      m.ID,
			Club:    m.Club,
			Stadium: m.Stadium,
			Date:    m.Date,
			Time:    m.Time,
			Contact: m.ContactNumber,
		})
	}
	render(w, r, views.MatchingManagePage(rows))
}

func (a *App) clubCreatePage(w http.ResponseWriter, r *http.Request) {
	render(w, r, views.ClubCreatePage())
}

func (a *App) notificationsPage(w http.ResponseWriter, r *http.Request) {
	email, _ := a.sessionEmail(r)
	unreadOnly := r.URL.Query().Get("tab") == "unread"

	items := a.notificationsFor(email, unreadOnly)
	viewItems := make([]views.NotificationItem, 0, len(items))
	for _, n := range items {
		viewItems = append(viewItems, views.NotificationItem{
			Content: n.Content,
			Time:    n.CreatedAt.Format("15:04 02/01/2006"),
			Unread:  !n.Read,
		})
	}
	render(w, r, views.NotificationsPage(viewItems, unreadOnly))
}

func (a *App) profilePage(w http.ResponseWriter, r *http.Request) {
	email, _ := a.sessionEmail(r)
	account, ok := a.accounts.Get(email)
	if !ok {
		account = &Account{}
	}

	avatarURL := "/static/avatar.png"
	if account.Avatar != "" {
		avatarURL = "/uploads/" + account.Avatar
	}
	render(w, r, views.ProfilePage(views.ProfileProps{
		Username:  account.Username,
		Email:     account.Email,
		Phone:     account.Phone,
		AvatarURL: avatarURL,
	}))
}

func (a *App) userPostPage(w http.ResponseWriter, r *http.Request) {
	email, _ := a.sessionEmail(r)
	account, _ := a.accounts.Get(email)

	var username string
	if account != nil {
		username = account.Username
	}

	all := a.posts.Recent(a.posts.Size())
	own := make([]Post, 0, len(all))
	for _, p := range all {
		if p.Username == username {
			own = append(own, p)
		}
	}
	render(w, r, views.UserPostPage(toViewPosts(own)))
}

func toViewPosts(posts []Post) []views.PostItem {
	items := make([]views.PostItem, 0, len(posts))
	for _, p := range posts {
		item := views.PostItem{
			Username: p.Username,
			Content:  p.Content,
			Time:     p.CreatedAt.Format("15:04 02/01/2006"),
		}
		if p.ImageName != "" {
			item.ImageURL = "/uploads/" + p.ImageName
		}
		items = append(items, item)
	}
	return items
}
