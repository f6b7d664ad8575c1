// Package models holds the payloads exchanged with the ocserv admin api
package models

// Config is the bootstrap configuration served before login
type Config struct {
	Raw `json:"-" yaml:"-"`

	Config         bool   `json:"config" yaml:"config"`
	CaptchaSiteKey string `json:"captcha_site_key,omitempty" yaml:"captcha_site_key,omitempty"`
}

// AdminLogin - admin credentials posted to the login endpoint
type AdminLogin struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Token    string `json:"token,omitempty" yaml:"token,omitempty"`
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Raw `json:"-" yaml:"-"`

	Token string `json:"token" yaml:"token"`
	User  string `json:"user" yaml:"user"`
}

// AdminConfig - site wide settings editable by the admin
type AdminConfig struct {
	Raw `json:"-" yaml:"-"`

	Username         string `json:"username,omitempty" yaml:"username,omitempty"`
	Password         string `json:"password,omitempty" yaml:"password,omitempty"`
	CaptchaSiteKey   string `json:"captcha_site_key" yaml:"captcha_site_key"`
	CaptchaSecretKey string `json:"captcha_secret_key" yaml:"captcha_secret_key"`
	DefaultTraffic   any    `json:"default_traffic" yaml:"default_traffic"`
	DefaultGroup     any    `json:"default_group,omitempty" yaml:"default_group,omitempty"`
}

// Dashboard is the summary shown on the admin landing page
type Dashboard struct {
	Raw `json:"-" yaml:"-"`

	OnlineUsers []any          `json:"online_users" yaml:"online_users"`
	UserStats   map[string]any `json:"user_stats,omitempty" yaml:"user_stats,omitempty"`
	Statistics  map[string]any `json:"statistics,omitempty" yaml:"statistics,omitempty"`
}

// Stats is a snapshot of server statistics
type Stats struct {
	Raw `json:"-" yaml:"-"`

	Stats any `json:"stats" yaml:"stats"`
}

// Occtl holds the output of an occtl command run on the server
type Occtl struct {
	Raw `json:"-" yaml:"-"`

	Result any `json:"result" yaml:"result"`
}

// ErrorResponse is the error envelope used by the api.
// Validation failures fill Error, every other failure fills Detail.
type ErrorResponse struct {
	Error  []string `json:"error,omitempty"`
	Detail string   `json:"detail,omitempty"`
}
