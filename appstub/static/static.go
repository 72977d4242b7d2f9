// Package static embeds the stub application's client assets.
package static

import "embed"

//go:embed app.js logo.png avatar.png
var Assets embed.FS
