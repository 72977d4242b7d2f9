package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// PostItem is one rendered feed entry.
type PostItem struct {
	Username string
	Content  string
	Time     string
	ImageURL string
}

// MatchRow is one row of the manage-match table.
type MatchRow struct {
	ID      uint64
	Club    string
	Stadium string
	Date    string
	Time    string
	Contact string
}

// NotificationItem is one rendered notification.
type NotificationItem struct {
	Content string
	Time    string
	Unread  bool
}

// ProfileProps is the profile screen's data.
type ProfileProps struct {
	Username  string
	Email     string
	Phone     string
	AvatarURL string
}

// LoginPage renders the login screen with its marketing panel.
func LoginPage() templ.Component {
	return layout("Đăng nhập", false, func(ctx context.Context, w io.Writer) error {
		return writef(w, `<div style="display:flex;gap:2rem">
<section style="flex:1">
<img class="logo" src="/static/logo.png" alt="MatchQueue logo">
<h1 class="login-title">Chào mừng quay trở lại</h1>
<form id="login-form" novalidate>
<div><label>Email <input type="email" name="email" autocomplete="email"></label></div>
<div id="email-error" class="field-error"></div>
<div><label>Mật khẩu <input type="password" name="password" autocomplete="current-password"></label></div>
<div id="password-error" class="field-error"></div>
<div><label><input type="checkbox" id="remember"> Ghi nhớ đăng nhập</label></div>
<div class="error-message"></div>
<div class="success-message"></div>
<button type="submit">Đăng nhập</button>
</form>
<div>
<button type="button" class="social-login">Đăng nhập với Google</button>
<button type="button" class="social-login">Đăng nhập với Facebook</button>
</div>
<a id="forgot-password" href="/forgot-password">Quên mật khẩu?</a>
<a id="register-link" href="/register">Đăng ký tài khoản</a>
</section>
<aside style="flex:1">
<div class="feature"><h3>Tìm đối thủ</h3><p>Ghép trận với đội bóng cùng trình độ trong khu vực.</p></div>
<div class="feature"><h3>Quản lý CLB</h3><p>Tạo câu lạc bộ, quản lý thành viên và lịch thi đấu.</p></div>
<div class="feature"><h3>Cộng đồng</h3><p>Chia sẻ khoảnh khắc bóng đá với cộng đồng của bạn.</p></div>
</aside>
</div>
`)
	})
}

// FeedPage renders the community feed with the post composer.
func FeedPage(posts []PostItem) templ.Component {
	return layout("Cộng đồng", true, func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<button id="create-post" type="button">Tạo bài viết</button>
<div id="composer" class="hidden">
<textarea id="post-input" placeholder="Bạn đang nghĩ gì?"></textarea>
<input id="post-image" type="file" accept="image/*">
<div id="post-empty-error" class="field-error"></div>
<button id="submit-post" type="button">Đăng</button>
</div>
<div id="post-list">
`); err != nil {
			return err
		}
		if err := renderPosts(w, posts); err != nil {
			return err
		}
		return writef(w, "</div>\n")
	})
}

func renderPosts(w io.Writer, posts []PostItem) error {
	for _, post := range posts {
		if err := writef(w, `<div class="post-item">
<img class="post-avatar" src="/static/avatar.png" alt="avatar">
<span class="post-username">%s</span>
<span class="post-time">%s</span>
<p class="post-content">%s</p>
`, esc(post.Username), esc(post.Time), esc(post.Content)); err != nil {
			return err
		}
		if post.ImageURL != "" {
			if err := writef(w, `<img class="post-image" src="%s" alt="post image">
`, esc(post.ImageURL)); err != nil {
				return err
			}
		}
		if err := writef(w, "</div>\n"); err != nil {
			return err
		}
	}
	return nil
}

// MatchingCreatePage renders the create-match form.
func MatchingCreatePage(clubs []string) templ.Component {
	return layout("Tạo trận đấu", true, func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<h2 class="page-title">Tạo trận đấu</h2>
<form id="match-form" novalidate>
<div><label>Câu lạc bộ
<select id="club"><option value="">-- Chọn câu lạc bộ --</option>
`); err != nil {
			return err
		}
		for _, club := range clubs {
			if err := writef(w, "<option>%s</option>\n", esc(club)); err != nil {
				return err
			}
		}
		return writef(w, `</select></label></div>
<div class="field-error" data-field="club"></div>
<div><label>Sân bóng
<select id="stadium"><option value="">-- Chọn sân bóng --</option></select>
</label></div>
<div class="field-error" data-field="stadium"></div>
<div><label>Ngày thi đấu <input id="match-date" type="text" placeholder="MM/DD/YYYY"></label></div>
<div class="field-error" data-field="date"></div>
<div><label>Giờ thi đấu <input id="match-time" type="text" placeholder="HH:MM AM"></label></div>
<div class="field-error" data-field="time"></div>
<div><label>Số điện thoại liên hệ <input id="contact-number" type="text"></label></div>
<div class="field-error" data-field="contactNumber"></div>
<div><label>Mô tả <textarea id="description"></textarea></label></div>
<div class="success-message"></div>
<button type="submit">Tạo trận đấu</button>
</form>
`)
	})
}

// MatchingManagePage renders the manage-match table.
func MatchingManagePage(rows []MatchRow) templ.Component {
	return layout("Quản lý trận đấu", true, func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<h2 id="manage-title">Quản lý trận đấu</h2>
<a href="/matching/create">Tạo trận đấu</a>
<table id="match-table">
<thead><tr><th>CLB</th><th>Sân</th><th>Ngày</th><th>Giờ</th><th>Liên hệ</th><th></th></tr></thead>
<tbody>
`); err != nil {
			return err
		}
		for _, row := range rows {
			if err := writef(w, `<tr>
<td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>
<td><button class="cancel-match" type="button" data-id="%d">Hủy</button></td>
</tr>
`, esc(row.Club), esc(row.Stadium), esc(row.Date), esc(row.Time), esc(row.Contact), row.ID); err != nil {
				return err
			}
		}
		return writef(w, "</tbody>\n</table>\n")
	})
}

// ClubCreatePage renders the club creation form.
func ClubCreatePage() templ.Component {
	return layout("Tạo câu lạc bộ", true, func(ctx context.Context, w io.Writer) error {
		return writef(w, `<h2 class="page-title">Tạo câu lạc bộ</h2>
<form id="club-form" novalidate>
<div><label>Tên đội bóng <input id="team-name" type="text"></label></div>
<div id="name-error" class="field-error"></div>
<div><label>Mô tả <textarea id="team-description"></textarea></label></div>
<div><label>Hình ảnh <input id="team-image" type="file" accept="image/*"></label></div>
<div id="image-error" class="field-error"></div>
<img id="image-preview" class="hidden" alt="preview">
<div class="error-message"></div>
<div class="success-message"></div>
<button type="submit">Tạo câu lạc bộ</button>
</form>
`)
	})
}

// NotificationsPage renders the notification center with its tabs.
func NotificationsPage(items []NotificationItem, unreadOnly bool) templ.Component {
	return layout("Thông báo", true, func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<h2 id="notifications-title">Thông báo</h2>
<nav>
<a id="tab-all" href="/notifications?tab=all">Tất cả</a>
<a id="tab-unread" href="/notifications?tab=unread">Chưa đọc</a>
<button id="mark-read" type="button">Đánh dấu đã đọc</button>
<button id="delete-all" type="button">Xóa tất cả</button>
</nav>
<div id="notification-list">
`); err != nil {
			return err
		}
		for _, item := range items {
			class := "notification-item"
			if item.Unread {
				class += " unread"
			}
			if err := writef(w, `<div class="%s">
<span class="notification-content">%s</span>
<span class="notification-time">%s</span>
</div>
`, class, esc(item.Content), esc(item.Time)); err != nil {
				return err
			}
		}
		if err := writef(w, "</div>\n"); err != nil {
			return err
		}
		if len(items) == 0 {
			return writef(w, "<div id=\"empty-message\">Không có thông báo nào</div>\n")
		}
		return nil
	})
}

// ProfilePage renders the profile screen with its edit form.
func ProfilePage(props ProfileProps) templ.Component {
	return layout("Thông tin cá nhân", true, func(ctx context.Context, w io.Writer) error {
		return writef(w, `<h2 id="profile-title">Thông tin cá nhân</h2>
<nav>
<button id="tab-info" type="button">Thông tin</button>
<a id="tab-posts" href="/user-post">Bài viết</a>
</nav>
<img id="avatar" src="%s" alt="avatar">
<input id="avatar-upload" type="file" accept="image/*">
<form id="profile-form" novalidate>
<div><label>Tên người dùng <input id="username" type="text" value="%s" disabled></label></div>
<div><label>Email <input id="profile-email" type="email" value="%s" disabled></label></div>
<div id="email-error" class="field-error"></div>
<div><label>Số điện thoại <input id="phone" type="text" value="%s" disabled></label></div>
<div class="field-error" data-field="phone"></div>
<div class="error-message"></div>
<div class="success-message"></div>
<button id="edit-profile" type="button">Chỉnh sửa</button>
<button id="save-profile" type="button" class="hidden">Lưu</button>
<button id="cancel-edit" type="button" class="hidden">Hủy</button>
</form>
`, esc(props.AvatarURL), esc(props.Username), esc(props.Email), esc(props.Phone))
	})
}

// UserPostPage renders the signed-in user's own posts.
func UserPostPage(posts []PostItem) templ.Component {
	return layout("Bài viết của tôi", true, func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<h2 class="page-title">Bài viết của tôi</h2>
<div id="post-list">
`); err != nil {
			return err
		}
		if err := renderPosts(w, posts); err != nil {
			return err
		}
		if len(posts) == 0 {
			if err := writef(w, "<div id=\"empty-message\">Chưa có bài viết nào</div>\n"); err != nil {
				return err
			}
		}
		return writef(w, "</div>\n")
	})
}
