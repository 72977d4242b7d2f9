package selectors

// Messages are the literal user-facing strings asserted by the specs. They
// are fixtures, not logic; update them only against the running application.
type Messages struct {
	LoginSuccess  string
	LogoutSuccess string
	UpdateProfile string

	LoginFailed        string
	InvalidCredentials string
	EmailRequired      string
	PasswordRequired   string
	EmailInvalid       string
	PasswordTooShort   string
	NetworkError       string

	RequiredField string

	MissingClub    string
	MissingStadium string
	MissingDate    string
	MissingTime    string
	InvalidContact string
	MatchCreated   string

	TeamNameRequired  string
	TeamImageRequired string

	PostEmpty string

	LoginPageTitle string
}

// DefaultMessages holds the Vietnamese strings of the current application
// build.
var DefaultMessages = Messages{
	LoginSuccess:  "Đăng nhập thành công",
	LogoutSuccess: "Đăng xuất thành công",
	UpdateProfile: "Cập nhật thông tin thành công",

	LoginFailed:        "Đăng nhập thất bại",
	InvalidCredentials: "Email hoặc mật khẩu không đúng",
	EmailRequired:      "Vui lòng nhập email",
	PasswordRequired:   "Vui lòng nhập mật khẩu",
	EmailInvalid:       "Email không hợp lệ",
	PasswordTooShort:   "Mật khẩu phải có ít nhất 6 ký tự",
	NetworkError:       "Lỗi kết nối mạng",

	RequiredField: "Trường này là bắt buộc",

	MissingClub:    "Vui lòng chọn câu lạc bộ.",
	MissingStadium: "Vui lòng chọn sân bóng.",
	MissingDate:    "Vui lòng chọn ngày thi đấu",
	MissingTime:    "Vui lòng chọn giờ thi đấu",
	InvalidContact: "Số điện thoại không hợp lệ",
	MatchCreated:   "Tạo trận đấu thành công",

	TeamNameRequired:  "Tên đội bóng không được để trống",
	TeamImageRequired: "Hình ảnh không được để trống",

	PostEmpty: "Nội dung bài viết không được để trống",

	LoginPageTitle: "Chào mừng quay trở lại",
}
