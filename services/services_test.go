package services

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/devilcove/httpclient"
	"github.com/ocserv-admin/ocservctl/models"
	"github.com/ocserv-admin/ocservctl/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu       sync.Mutex
	overlays []state.Overlay
	snacks   []state.SnackBar
	events   []string
}

func (f *fakeStore) SetLoadingOverlay(o state.Overlay) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overlays = append(f.overlays, o)
	if o.Active {
		f.events = append(f.events, "overlay on")
	} else {
		f.events = append(f.events, "overlay off")
	}
}

func (f *fakeStore) SetSnackBar(s state.SnackBar) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snacks = append(f.snacks, s)
	f.events = append(f.events, "snack "+s.Text)
}

type fakeTokens struct {
	token   string
	removed bool
}

func (f *fakeTokens) Token() string { return f.token }

func (f *fakeTokens) RemoveToken() error {
	f.token = ""
	f.removed = true
	return nil
}

type fakeNav struct {
	paths []string
}

func (f *fakeNav) Navigate(path string) { f.paths = append(f.paths, path) }

type fixture struct {
	client *Client
	store  *fakeStore
	tokens *fakeTokens
	nav    *fakeNav
	mu     sync.Mutex
	method string
	uri    string
	header http.Header
	body   []byte
}

func newFixture(t *testing.T, status int, response string) *fixture {
	t.Helper()
	f := &fixture{
		store:  &fakeStore{},
		tokens: &fakeTokens{token: "abc123"},
		nav:    &fakeNav{},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.method = r.Method
		f.uri = r.URL.RequestURI()
		f.header = r.Header.Clone()
		f.body = body
		f.mu.Unlock()
		if response != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	f.client = NewClient(Options{
		API:        srv.URL + "/api/",
		AuthScheme: "Token",
		Store:      f.store,
		Tokens:     f.tokens,
		Navigator:  f.nav,
	})
	return f
}

// seen returns the last request received by the backend
func (f *fixture) seen() (string, string, http.Header, []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.method, f.uri, f.header, f.body
}

func (f *fixture) assertOverlayCleared(t *testing.T) {
	t.Helper()
	require.Len(t, f.store.overlays, 2)
	assert.Equal(t, state.Overlay{Active: true, Text: loadingText}, f.store.overlays[0])
	assert.False(t, f.store.overlays[1].Active)
}

func TestSuccessReturnsPayload(t *testing.T) {
	f := newFixture(t, http.StatusOK, `{"page":1,"pages":2,"total":3,"result":[{"id":7,"username":"bob","active":true}]}`)
	users, err := f.client.Users.Users()
	require.NoError(t, err)
	assert.Equal(t, 1, users.Page)
	assert.Equal(t, 2, users.Pages)
	assert.Equal(t, 3, users.Total)
	require.Len(t, users.Result, 1)
	assert.Equal(t, 7, users.Result[0].ID)
	assert.Equal(t, "bob", users.Result[0].Username)
	assert.True(t, users.Result[0].Active)
	assert.JSONEq(t, `{"page":1,"pages":2,"total":3,"result":[{"id":7,"username":"bob","active":true}]}`, string(users.Body()))
	assert.Empty(t, f.store.snacks)
	assert.Equal(t, http.StatusOK, f.client.Status())
	f.assertOverlayCleared(t)
}

func TestRequestHeaders(t *testing.T) {
	f := newFixture(t, http.StatusOK, `{"stats":{}}`)
	_, err := f.client.Stats.GetStats()
	require.NoError(t, err)
	_, _, header, _ := f.seen()
	assert.Equal(t, "Token abc123", header.Get("Authorization"))
	assert.NotEmpty(t, header.Get("X-Request-Id"))

	f.tokens.token = ""
	_, err = f.client.Stats.GetStats()
	require.NoError(t, err)
	_, _, header, _ = f.seen()
	assert.Empty(t, header.Get("Authorization"))
}

func TestValidationError(t *testing.T) {
	f := newFixture(t, http.StatusBadRequest, `{"error":["a","b"]}`)
	user, err := f.client.Users.CreateUser(models.OcservUser{Username: "bob"})
	require.NoError(t, err)
	assert.Equal(t, models.OcservUser{}, user)
	require.Len(t, f.store.snacks, 1)
	assert.Equal(t, state.SnackBar{Text: "a<br/>b", Color: state.ColorError}, f.store.snacks[0])
	assert.Equal(t, http.StatusBadRequest, f.client.Status())
	f.assertOverlayCleared(t)
}

func TestUnauthorized(t *testing.T) {
	f := newFixture(t, http.StatusUnauthorized, `{"detail":"invalid token"}`)
	_, err := f.client.Admin.Dashboard()
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, f.tokens.removed)
	assert.Empty(t, f.tokens.token)
	assert.Equal(t, []string{"/login"}, f.nav.paths)
	f.assertOverlayCleared(t)
}

func TestForbidden(t *testing.T) {
	f := newFixture(t, http.StatusForbidden, `{"detail":"nope"}`)
	groups, err := f.client.Groups.Groups("")
	require.NoError(t, err)
	assert.Equal(t, models.GroupPagination{}, groups)
	require.Len(t, f.store.snacks, 1)
	assert.Equal(t, state.SnackBar{Text: forbiddenText, Color: state.ColorWarning}, f.store.snacks[0])
	f.assertOverlayCleared(t)
}

func TestFailureWithDetail(t *testing.T) {
	f := newFixture(t, http.StatusInternalServerError, `{"detail":"X"}`)
	_, err := f.client.Occtl.Command("show users", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, httpclient.ErrStatus)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Equal(t, "X", statusErr.Detail)
	require.Len(t, f.store.snacks, 1)
	assert.Equal(t, state.SnackBar{Text: "X", Color: state.ColorOrange}, f.store.snacks[0])
	f.assertOverlayCleared(t)
}

func TestFailureWithoutBody(t *testing.T) {
	f := newFixture(t, http.StatusBadGateway, "")
	err := f.client.Occtl.Reload()
	require.Error(t, err)
	assert.ErrorIs(t, err, httpclient.ErrStatus)
	require.Len(t, f.store.snacks, 1)
	assert.Equal(t, state.SnackBar{Text: failedText, Color: state.ColorError}, f.store.snacks[0])
	f.assertOverlayCleared(t)
}

func TestFailureWithoutDetail(t *testing.T) {
	f := newFixture(t, http.StatusNotFound, `{"message":"missing"}`)
	_, err := f.client.Users.DeleteUser(9)
	require.Error(t, err)
	assert.Empty(t, f.store.snacks)
	f.assertOverlayCleared(t)
}

func TestTransportFailure(t *testing.T) {
	store := &fakeStore{}
	srv := httptest.NewServer(http.NotFoundHandler())
	api := srv.URL
	srv.Close()
	client := NewClient(Options{API: api, Store: store})
	_, err := client.Admin.Config()
	require.Error(t, err)
	assert.NotErrorIs(t, err, httpclient.ErrStatus)
	require.Len(t, store.snacks, 1)
	assert.Equal(t, state.SnackBar{Text: failedText, Color: state.ColorError}, store.snacks[0])
	require.Len(t, store.overlays, 2)
	assert.False(t, store.overlays[1].Active)
	assert.Equal(t, 0, client.Status())
}

func TestUndecodablePayload(t *testing.T) {
	f := newFixture(t, http.StatusOK, `not json`)
	_, err := f.client.Admin.GetConfiguration()
	require.Error(t, err)
	require.Len(t, f.store.snacks, 1)
	assert.Equal(t, failedText, f.store.snacks[0].Text)
	f.assertOverlayCleared(t)
	// the notification is shown while the overlay is still up
	assert.Equal(t, []string{"overlay on", "snack " + failedText, "overlay off"}, f.store.events)
}

func TestMalformedValidationError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"error is a string", `{"error":"bad username"}`},
		{"empty error list", `{"error":[]}`},
		{"no error key", `{"detail":"bad"}`},
		{"not json", `<html>bad request</html>`},
		{"empty body", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, http.StatusBadRequest, tt.body)
			_, err := f.client.Users.CreateUser(map[string]any{"username": "bob"})
			require.Error(t, err)
			assert.ErrorIs(t, err, httpclient.ErrStatus)
			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, http.StatusBadRequest, statusErr.Code)
			require.Len(t, f.store.snacks, 1)
			assert.Equal(t, state.SnackBar{Text: failedText, Color: state.ColorError}, f.store.snacks[0])
			f.assertOverlayCleared(t)
		})
	}
}

func TestUnknownFieldsSurvive(t *testing.T) {
	t.Run("dashboard", func(t *testing.T) {
		body := `{"online_users":[{"username":"bob","since":"2026-01-01"}],"uptime":"3d"}`
		f := newFixture(t, http.StatusOK, body)
		dash, err := f.client.Admin.Dashboard()
		require.NoError(t, err)
		require.Len(t, dash.OnlineUsers, 1)
		assert.Equal(t, map[string]any{"username": "bob", "since": "2026-01-01"}, dash.OnlineUsers[0])
		assert.JSONEq(t, body, string(dash.Body()))
	})
	t.Run("user with choice fields", func(t *testing.T) {
		body := `{"id":3,"username":"bob","traffic":"monthly","group":{"id":1,"name":"defaults"},"extra":true}`
		f := newFixture(t, http.StatusOK, body)
		user, err := f.client.Users.UpdateUser(3, map[string]any{"traffic": "monthly"})
		require.NoError(t, err)
		assert.Equal(t, "monthly", user.Traffic)
		assert.Equal(t, map[string]any{"id": float64(1), "name": "defaults"}, user.Group)
		assert.JSONEq(t, body, string(user.Body()))
		assert.Empty(t, f.store.snacks)
	})
}

func TestEmptySuccess(t *testing.T) {
	f := newFixture(t, http.StatusNoContent, "")
	require.NoError(t, f.client.Admin.Logout())
	method, uri, _, _ := f.seen()
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/api/admin/logout/", uri)
	f.assertOverlayCleared(t)
}

func TestRequestBody(t *testing.T) {
	f := newFixture(t, http.StatusOK, `{"token":"t1","user":"admin"}`)
	resp, err := f.client.Admin.Login(models.AdminLogin{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "t1", resp.Token)
	assert.Equal(t, "admin", resp.User)
	_, _, _, body := f.seen()
	sent := models.AdminLogin{}
	require.NoError(t, json.Unmarshal(body, &sent))
	assert.Equal(t, models.AdminLogin{Username: "admin", Password: "secret"}, sent)
}
