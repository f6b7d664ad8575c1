package state

import (
	"fmt"
	"io"
	"os"

	"github.com/gravitl/netmaker/logger"
	"github.com/sasha-s/go-deadlock"
)

// LoginPath is where an expired session is sent
const LoginPath = "/login"

// Redirect stands in for browser navigation on a terminal
type Redirect struct {
	mutex deadlock.Mutex
	out   io.Writer
	last  string
}

// NewRedirect returns a navigator writing hints to out, stderr when out is nil
func NewRedirect(out io.Writer) *Redirect {
	if out == nil {
		out = os.Stderr
	}
	return &Redirect{out: out}
}

// Navigate records the target path
func (r *Redirect) Navigate(path string) {
	r.mutex.Lock()
	r.last = path
	r.mutex.Unlock()
	logger.Log(1, "navigating to", path)
	if path == LoginPath {
		fmt.Fprintln(r.out, "session expired, run `ocservctl login` to sign in again")
	}
}

// Last returns the last path navigated to
func (r *Redirect) Last() string {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.last
}
