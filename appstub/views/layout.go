// Package views renders the stub application's pages. Components are written
// directly against the templ runtime; the markup is small enough that
// generated templates would be overhead.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// esc escapes a dynamic value for HTML interpolation.
func esc(s string) string {
	return templ.EscapeString(s)
}

const baseStyles = `
body { font-family: sans-serif; margin: 0; }
header { display: flex; justify-content: space-between; align-items: center; padding: 0.5rem 1rem; border-bottom: 1px solid #ddd; }
main { max-width: 48rem; margin: 1rem auto; padding: 0 1rem; }
.hidden { display: none; }
.error-message:empty, .success-message:empty, .field-error:empty { display: none; }
.error-message, .field-error { color: #c00; }
.success-message { color: #080; }
.dropdown { position: relative; }
.dropdown-menu { position: absolute; right: 0; background: #fff; border: 1px solid #ddd; padding: 0.5rem; }
.post-item, .notification-item { border: 1px solid #eee; padding: 0.5rem; margin: 0.5rem 0; }
#post-list, #notification-list { min-height: 1rem; }
.notification-item.unread { background: #eef6ff; font-weight: bold; }
table { border-collapse: collapse; width: 100%%; }
td, th { border: 1px solid #ddd; padding: 0.25rem 0.5rem; }
img.post-image, img#image-preview { max-width: 12rem; display: block; }
`

// layout wraps a page body in the shared chrome. Authenticated pages carry
// the header and the session guard attribute the client script keys on.
func layout(title string, authenticated bool, body func(ctx context.Context, w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		guard := "anon"
		if authenticated {
			guard = "auth"
		}
		if err := writef(w, `<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>`+baseStyles+`</style>
</head>
<body data-guard="%s">
`, esc(title), guard); err != nil {
			return err
		}

		if authenticated {
			if err := writef(w, `<header>
<a href="/">MatchQueue</a>
<nav style="display:flex;gap:1rem;align-items:center">
<a id="notifications-icon" href="/notifications">&#128276;</a>
<div class="dropdown">
<button id="user-menu" type="button">Tài khoản</button>
<div id="user-dropdown" class="dropdown-menu hidden">
<a id="profile-link" href="/profile">Thông tin cá nhân</a><br>
<button id="logout" type="button">Đăng xuất</button>
</div>
</div>
</nav>
</header>
`); err != nil {
				return err
			}
		}

		if err := writef(w, "<main>\n"); err != nil {
			return err
		}
		if err := body(ctx, w); err != nil {
			return err
		}
		return writef(w, "</main>\n<script src=\"/static/app.js\"></script>\n</body>\n</html>\n")
	})
}
