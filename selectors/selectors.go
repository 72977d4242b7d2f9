// Package selectors is the static locator registry: one struct per screen,
// immutable after process start. Page objects receive a Profile via their
// constructor instead of reaching for globals.
package selectors

// Login screen locators.
type Login struct {
	EmailInput           string
	PasswordInput        string
	SubmitButton         string
	ForgotPasswordLink   string
	RegisterLink         string
	GoogleLoginButton    string
	FacebookLoginButton  string
	ErrorMessage         string
	EmailErrorMessage    string
	PasswordErrorMessage string
	SuccessMessage       string
	RememberMeCheckbox   string
	PageTitle            string
	Logo                 string
	FeatureTitles        string
	FeatureDescriptions  string
	LoadingSpinner       string
}

// Common locators shared across screens.
type Common struct {
	LoadingSpinner string
	Modal          string
	ModalClose     string
	ToastMessage   string
	ConfirmButton  string
	CancelButton   string
}

// Community feed locators.
type Community struct {
	CreatePostButton string
	PostInput        string
	PostButton       string
	ImageUploadInput string
	PostList         string
	PostItem         string
	PostContent      string
	PostImage        string
	PostUsername     string
	PostAvatar       string
	PostTime         string
	PostEmptyError   string
	LoadingPosts     string
}

// Matching (create + manage) locators.
type Matching struct {
	PageTitle         string
	CreateMatchButton string
	ClubSelect        string
	StadiumSelect     string
	DateInput         string
	TimeInput         string
	ContactInput      string
	DescriptionInput  string
	SubmitButton      string
	ErrorMessage      string
	SuccessMessage    string

	ManagePageTitle   string
	ManageTable       string
	ManageTableRow    string
	CancelMatchButton string
}

// Team (club creation) locators.
type Team struct {
	NameInput         string
	DescriptionInput  string
	ImageUploadInput  string
	ImagePreview      string
	SubmitButton      string
	NameErrorMessage  string
	ImageErrorMessage string
	ErrorMessage      string
	SuccessMessage    string
}

// Notification screen locators.
type Notification struct {
	PageTitle           string
	NotificationList    string
	NotificationItem    string
	NotificationContent string
	NotificationTime    string
	NotificationUnread  string
	TabAll              string
	TabUnread           string
	MarkReadButton      string
	DeleteAllButton     string
	EmptyMessage        string
}

// UserProfile screen locators.
type UserProfile struct {
	PageTitle         string
	TabInfo           string
	TabPosts          string
	Avatar            string
	AvatarUploadInput string
	UsernameInput     string
	EmailInput        string
	PhoneInput        string
	EditButton        string
	SaveButton        string
	CancelButton      string
	ErrorMessage      string
	EmailErrorMessage string
	SuccessMessage    string
}

// Dashboard chrome locators (header shared by authenticated screens).
type Dashboard struct {
	UserMenu          string
	LogoutButton      string
	ProfileLink       string
	NotificationsIcon string
}

// Profile bundles one consistent set of locators, routes and message
// fixtures. The original suite accumulated several mutually inconsistent
// versions of these tables; each version is a distinct Profile and Default is
// the one verified against the stub application.
type Profile struct {
	Login        Login
	Common       Common
	Community    Community
	Matching     Matching
	Team         Team
	Notification Notification
	UserProfile  UserProfile
	Dashboard    Dashboard

	Routes   Routes
	Messages Messages
}

// Default is the profile matching the stub application's DOM.
var Default = Profile{
	Login: Login{
		EmailInput:           `input[type="email"], input[name="email"]`,
		PasswordInput:        `input[type="password"], input[name="password"]`,
		SubmitButton:         `button[type="submit"]`,
		ForgotPasswordLink:   `#forgot-password`,
		RegisterLink:         `#register-link`,
		GoogleLoginButton:    `button:has-text("Google")`,
		FacebookLoginButton:  `button:has-text("Facebook")`,
		ErrorMessage:         `.error-message, .alert-error, [role="alert"]`,
		EmailErrorMessage:    `#email-error`,
		PasswordErrorMessage: `#password-error`,
		SuccessMessage:       `.success-message, .alert-success`,
		RememberMeCheckbox:   `input[type="checkbox"]#remember`,
		PageTitle:            `h1, .login-title`,
		Logo:                 `img[alt*="logo"], img[alt*="Logo"], .logo`,
		FeatureTitles:        `.feature h3`,
		FeatureDescriptions:  `.feature p`,
		LoadingSpinner:       `.loading, .spinner`,
	},
	Common: Common{
		LoadingSpinner: `.loading, .spinner`,
		Modal:          `.modal, [role="dialog"]`,
		ModalClose:     `.modal-close, button[aria-label="Close"]`,
		ToastMessage:   `.toast, [role="status"]`,
		ConfirmButton:  `button:has-text("Xác nhận"), button:has-text("OK")`,
		CancelButton:   `button:has-text("Hủy"), button:has-text("Cancel")`,
	},
	Community: Community{
		CreatePostButton: `#create-post`,
		PostInput:        `#post-input`,
		PostButton:       `#submit-post`,
		ImageUploadInput: `#post-image`,
		PostList:         `#post-list`,
		PostItem:         `#post-list .post-item`,
		PostContent:      `.post-content`,
		PostImage:        `.post-image`,
		PostUsername:     `.post-username`,
		PostAvatar:       `.post-avatar`,
		PostTime:         `.post-time`,
		PostEmptyError:   `#post-empty-error`,
		LoadingPosts:     `.loading-posts`,
	},
	Matching: Matching{
		PageTitle:         `h2.page-title`,
		CreateMatchButton: `a:has-text("Tạo trận đấu")`,
		ClubSelect:        `select#club`,
		StadiumSelect:     `select#stadium`,
		DateInput:         `input#match-date`,
		TimeInput:         `input#match-time`,
		ContactInput:      `input#contact-number`,
		DescriptionInput:  `textarea#description`,
		SubmitButton:      `button[type="submit"]`,
		ErrorMessage:      `.field-error`,
		SuccessMessage:    `.success-message`,

		ManagePageTitle:   `#manage-title`,
		ManageTable:       `table#match-table`,
		ManageTableRow:    `table#match-table tbody tr`,
		CancelMatchButton: `button.cancel-match`,
	},
	Team: Team{
		NameInput:         `input#team-name`,
		DescriptionInput:  `textarea#team-description`,
		ImageUploadInput:  `input#team-image`,
		ImagePreview:      `img#image-preview`,
		SubmitButton:      `button[type="submit"]`,
		NameErrorMessage:  `#name-error`,
		ImageErrorMessage: `#image-error`,
		ErrorMessage:      `.error-message, .field-error`,
		SuccessMessage:    `.success-message`,
	},
	Notification: Notification{
		PageTitle:           `#notifications-title`,
		NotificationList:    `#notification-list`,
		NotificationItem:    `#notification-list .notification-item`,
		NotificationContent: `.notification-content`,
		NotificationTime:    `.notification-time`,
		NotificationUnread:  `#notification-list .notification-item.unread`,
		TabAll:              `#tab-all`,
		TabUnread:           `#tab-unread`,
		MarkReadButton:      `#mark-read`,
		DeleteAllButton:     `#delete-all`,
		EmptyMessage:        `#empty-message`,
	},
	UserProfile: UserProfile{
		PageTitle:         `#profile-title`,
		TabInfo:           `#tab-info`,
		TabPosts:          `#tab-posts`,
		Avatar:            `img#avatar`,
		AvatarUploadInput: `input#avatar-upload`,
		UsernameInput:     `input#username`,
		EmailInput:        `input#profile-email`,
		PhoneInput:        `input#phone`,
		EditButton:        `#edit-profile`,
		SaveButton:        `#save-profile`,
		CancelButton:      `#cancel-edit`,
		ErrorMessage:      `.error-message`,
		EmailErrorMessage: `#email-error`,
		SuccessMessage:    `.success-message`,
	},
	Dashboard: Dashboard{
		UserMenu:          `#user-menu`,
		LogoutButton:      `#logout`,
		ProfileLink:       `#profile-link`,
		NotificationsIcon: `#notifications-icon`,
	},

	Routes:   DefaultRoutes,
	Messages: DefaultMessages,
}
