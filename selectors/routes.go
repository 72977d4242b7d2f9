package selectors

// Routes maps screen names to application paths.
type Routes struct {
	Login          string
	Register       string
	ForgotPassword string

	Dashboard      string
	Community      string
	Matching       string
	MatchingCreate string
	MatchingManage string

	Profile       string
	Club          string
	Notifications string
	UserPost      string
}

// DefaultRoutes is the route table of the current application build. An older
// build used /dashboard and /club; keep a separate profile if testing it.
var DefaultRoutes = Routes{
	Login:          "/login",
	Register:       "/register",
	ForgotPassword: "/forgot-password",

	Dashboard:      "/",
	Community:      "/",
	Matching:       "/matching",
	MatchingCreate: "/matching/create",
	MatchingManage: "/matching/manage",

	Profile:       "/profile",
	Club:          "/club/create",
	Notifications: "/notifications",
	UserPost:      "/user-post",
}
