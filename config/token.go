package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sasha-s/go-deadlock"
	"gopkg.in/yaml.v3"
)

// Session is the persisted login state
type Session struct {
	Token string `yaml:"token"`
	User  string `yaml:"user"`
}

// TokenFile stores the auth token on disk
type TokenFile struct {
	mutex   deadlock.RWMutex
	path    string
	session Session
	loaded  bool
}

// NewTokenFile returns a token store backed by path
func NewTokenFile(path string) *TokenFile {
	return &TokenFile{path: path}
}

// Path - location of the token file
func (t *TokenFile) Path() string {
	return t.path
}

func (t *TokenFile) load() {
	if t.loaded {
		return
	}
	t.loaded = true
	f, err := os.Open(t.path)
	if err != nil {
		return
	}
	defer f.Close()
	session := Session{}
	if err := yaml.NewDecoder(f).Decode(&session); err == nil {
		t.session = session
	}
}

// Session returns the stored session
func (t *TokenFile) Session() Session {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.load()
	return t.session
}

// Token returns the stored token, empty when logged out
func (t *TokenFile) Token() string {
	return t.Session().Token
}

// SetToken persists the session token and user
func (t *TokenFile) SetToken(token, user string) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if err := os.MkdirAll(filepath.Dir(t.path), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(t.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	session := Session{Token: token, User: user}
	if err := yaml.NewEncoder(f).Encode(session); err != nil {
		return err
	}
	t.session = session
	t.loaded = true
	return f.Sync()
}

// RemoveToken deletes the stored token
func (t *TokenFile) RemoveToken() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.session = Session{}
	t.loaded = true
	if err := os.Remove(t.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
