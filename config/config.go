// Package config holds the shared test configuration. It is loaded once per
// process from the environment (with an optional .env file for local runs)
// and treated as read-only afterwards.
package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Timeouts are the only per-call configurable waits in the suite.
type Timeouts struct {
	Short      time.Duration
	Medium     time.Duration
	Long       time.Duration
	Navigation time.Duration
}

// Retry configures the retry-with-backoff primitive.
type Retry struct {
	MaxAttempts int
	Delay       time.Duration
	Timeout     time.Duration
}

// Viewport is a browser viewport size.
type Viewport struct {
	Width  int
	Height int
}

// Paths are the artifact output directories.
type Paths struct {
	Screenshots string
	Reports     string
	Videos      string
	Downloads   string
}

// Credentials is a login email/password pair.
type Credentials struct {
	Email    string
	Password string
}

// Config is the full test configuration.
type Config struct {
	BaseURL string
	APIURL  string

	Headless   bool
	SlowMo     time.Duration
	Video      bool
	Screenshot string

	Timeouts Timeouts
	Retry    Retry

	Desktop Viewport
	Tablet  Viewport
	Mobile  Viewport

	Paths Paths

	Locale   string
	Timezone string

	ValidUser   Credentials
	InvalidUser Credentials
}

var (
	loadOnce sync.Once
	loaded   Config
)

// Get returns the process-wide configuration, loading it on first call.
// BASE_URL left empty means the suite runs against an in-process stub app.
func Get() Config {
	loadOnce.Do(func() {
		v := viper.New()

		v.SetConfigFile(".env")
		v.SetConfigType("env")
		_ = v.ReadInConfig() // a missing .env is fine
		v.AutomaticEnv()

		v.SetDefault("BASE_URL", "")
		v.SetDefault("API_URL", "")
		v.SetDefault("HEADLESS", true)
		v.SetDefault("SLOW_MO", 0)
		v.SetDefault("VIDEO", false)
		v.SetDefault("SCREENSHOT", "only-on-failure")
		v.SetDefault("TEST_EMAIL", "test01@gmail.com")
		v.SetDefault("TEST_PASSWORD", "123456")

		loaded = Config{
			BaseURL: v.GetString("BASE_URL"),
			APIURL:  v.GetString("API_URL"),

			Headless:   v.GetBool("HEADLESS"),
			SlowMo:     time.Duration(v.GetInt("SLOW_MO")) * time.Millisecond,
			Video:      v.GetBool("VIDEO"),
			Screenshot: v.GetString("SCREENSHOT"),

			Timeouts: Timeouts{
				Short:      5 * time.Second,
				Medium:     10 * time.Second,
				Long:       30 * time.Second,
				Navigation: 30 * time.Second,
			},
			Retry: Retry{
				MaxAttempts: 3,
				Delay:       time.Second,
				Timeout:     30 * time.Second,
			},

			Desktop: Viewport{Width: 1920, Height: 1080},
			Tablet:  Viewport{Width: 768, Height: 1024},
			Mobile:  Viewport{Width: 375, Height: 667},

			Paths: Paths{
				Screenshots: "./test-results/screenshots",
				Reports:     "./test-results/reports",
				Videos:      "./test-results/videos",
				Downloads:   "./test-results/downloads",
			},

			Locale:   "vi-VN",
			Timezone: "Asia/Ho_Chi_Minh",

			ValidUser: Credentials{
				Email:    v.GetString("TEST_EMAIL"),
				Password: v.GetString("TEST_PASSWORD"),
			},
			InvalidUser: Credentials{
				Email:    "invalid@example.com",
				Password: "wrongpassword",
			},
		}
	})

	return loaded
}
