// Package services is the http facade used to talk to the ocserv admin api
package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/devilcove/httpclient"
	"github.com/google/uuid"
	"github.com/gravitl/netmaker/logger"
	"github.com/ocserv-admin/ocservctl/models"
	"github.com/ocserv-admin/ocservctl/state"
)

const (
	loadingText   = "Requesting ..."
	forbiddenText = "forbidden error"
	failedText    = "response failed from server"
)

// ErrUnauthorized is returned once an expired session has been cleared
var ErrUnauthorized = errors.New("unauthorized, please login again")

// Store receives the ui state changes made around every request
type Store interface {
	SetLoadingOverlay(state.Overlay)
	SetSnackBar(state.SnackBar)
}

// TokenStore holds the auth token of the current session
type TokenStore interface {
	Token() string
	RemoveToken() error
}

// Navigator moves the user to another view
type Navigator interface {
	Navigate(path string)
}

// StatusError is returned for responses the api marked as failed
type StatusError struct {
	Code   int
	Status string
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %d %s", e.Detail, e.Code, e.Status)
	}
	return fmt.Sprintf("request failed %d %s", e.Code, e.Status)
}

// Unwrap lets callers test failures with errors.Is(err, httpclient.ErrStatus)
func (e *StatusError) Unwrap() error {
	return httpclient.ErrStatus
}

// Options configures a Services dispatcher
type Options struct {
	// API is the api root, e.g. http://localhost:8000/api
	API string
	// AuthScheme prefixes the token in the Authorization header
	AuthScheme string
	Store      Store
	Tokens     TokenStore
	Navigator  Navigator
}

// Services dispatches requests and applies the shared status handling
type Services struct {
	api        string
	authScheme string
	store      Store
	tokens     TokenStore
	nav        Navigator
	status     atomic.Int64
}

// New returns a dispatcher; nil collaborators are replaced with no-ops
func New(opts Options) *Services {
	s := &Services{
		api:        strings.TrimSuffix(opts.API, "/"),
		authScheme: opts.AuthScheme,
		store:      opts.Store,
		tokens:     opts.Tokens,
		nav:        opts.Navigator,
	}
	if s.store == nil {
		s.store = nopStore{}
	}
	if s.tokens == nil {
		s.tokens = nopTokens{}
	}
	if s.nav == nil {
		s.nav = nopNavigator{}
	}
	return s
}

// Status returns the http status of the last response, 0 if none
func (s *Services) Status() int {
	return int(s.status.Load())
}

func (s *Services) headers() []httpclient.Header {
	return []httpclient.Header{
		{Name: "Accept", Value: "application/json"},
		{Name: "X-Request-Id", Value: uuid.NewString()},
	}
}

func (s *Services) authorization() string {
	token := s.tokens.Token()
	if token == "" {
		return ""
	}
	if s.authScheme == "" {
		return token
	}
	return s.authScheme + " " + token
}

// do sends the request and hands the body of a successful response to
// decode while the loading overlay is still active. 400 and 403 are
// recovered here and return a nil error without calling decode.
func (s *Services) do(method, url string, data any, decode func([]byte) error) error {
	s.store.SetLoadingOverlay(state.Overlay{Active: true, Text: loadingText})
	defer s.store.SetLoadingOverlay(state.Overlay{Active: false})

	logger.Log(2, "request", method, url)
	response, err := httpclient.GetResponse(data, method, url, s.authorization(), s.headers())
	if err != nil {
		s.status.Store(0)
		s.notify(failedText, state.ColorError)
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer response.Body.Close()
	s.status.Store(int64(response.StatusCode))
	body, err := io.ReadAll(response.Body)
	if err != nil {
		s.notify(failedText, state.ColorError)
		return fmt.Errorf("error reading response %w", err)
	}
	logger.Log(3, "response", method, url, strconv.Itoa(response.StatusCode))

	switch code := response.StatusCode; {
	case code == http.StatusBadRequest:
		errData := models.ErrorResponse{}
		if err := json.Unmarshal(body, &errData); err != nil || len(errData.Error) == 0 {
			logger.Log(1, "could not decode validation errors", string(body))
			s.notify(failedText, state.ColorError)
			return newStatusError(response)
		}
		s.notify(strings.Join(errData.Error, state.LineBreak), state.ColorError)
		return nil
	case code == http.StatusUnauthorized:
		if err := s.tokens.RemoveToken(); err != nil {
			logger.Log(0, "failed to remove token", err.Error())
		}
		s.nav.Navigate(state.LoginPath)
		return ErrUnauthorized
	case code == http.StatusForbidden:
		s.notify(forbiddenText, state.ColorWarning)
		return nil
	case code >= http.StatusBadRequest:
		return s.failure(response, body)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := decode(body); err != nil {
		s.notify(failedText, state.ColorError)
		return fmt.Errorf("error decoding response %w", err)
	}
	return nil
}

func newStatusError(response *http.Response) *StatusError {
	return &StatusError{Code: response.StatusCode, Status: http.StatusText(response.StatusCode)}
}

func (s *Services) failure(response *http.Response, body []byte) error {
	statusErr := newStatusError(response)
	if len(bytes.TrimSpace(body)) == 0 {
		s.notify(failedText, state.ColorError)
		return statusErr
	}
	errData := models.ErrorResponse{}
	if err := json.Unmarshal(body, &errData); err != nil {
		s.notify(failedText, state.ColorError)
		return statusErr
	}
	if errData.Detail != "" {
		statusErr.Detail = errData.Detail
		s.notify(errData.Detail, state.ColorOrange)
	}
	return statusErr
}

func (s *Services) notify(text, color string) {
	s.store.SetSnackBar(state.SnackBar{Text: text, Color: color})
}

// rawSetter is implemented by payloads that keep the body they came from
type rawSetter interface {
	SetRaw([]byte)
}

// request issues method against base+path and decodes the payload into T.
// Recovered failures and empty bodies return the zero T.
func request[T any](s *Services, method, base, path string, data any) (T, error) {
	var result T
	err := s.do(method, s.api+base+path, data, func(body []byte) error {
		if err := json.Unmarshal(body, &result); err != nil {
			return err
		}
		if r, ok := any(&result).(rawSetter); ok {
			r.SetRaw(body)
		}
		return nil
	})
	return result, err
}

type nopStore struct{}

func (nopStore) SetLoadingOverlay(state.Overlay) {}
func (nopStore) SetSnackBar(state.SnackBar)      {}

type nopTokens struct{}

func (nopTokens) Token() string      { return "" }
func (nopTokens) RemoveToken() error { return nil }

type nopNavigator struct{}

func (nopNavigator) Navigate(string) {}
