// Package state keeps the ui state shared by every api call: the loading
// overlay and the snackbar notifications
package state

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gravitl/netmaker/logger"
	"github.com/labstack/gommon/color"
	"github.com/sasha-s/go-deadlock"
)

// Snackbar colours used by the api clients
const (
	ColorError   = "error"
	ColorWarning = "warning"
	ColorOrange  = "orange"
)

// LineBreak separates messages joined into a single snackbar
const LineBreak = "<br/>"

// Overlay is the loading indicator shown while a request is in flight
type Overlay struct {
	Active bool
	Text   string
}

// SnackBar is a transient notification
type SnackBar struct {
	Text  string
	Color string
}

// Terminal is a ui store that renders notifications on a terminal
type Terminal struct {
	mutex   deadlock.RWMutex
	out     io.Writer
	overlay Overlay
	snack   SnackBar
	count   int
}

// NewTerminal returns a store writing to out, stderr when out is nil
func NewTerminal(out io.Writer) *Terminal {
	if out == nil {
		out = os.Stderr
	}
	return &Terminal{out: out}
}

// SetLoadingOverlay - sets the loading overlay
func (t *Terminal) SetLoadingOverlay(o Overlay) {
	t.mutex.Lock()
	t.overlay = o
	t.mutex.Unlock()
	if o.Active {
		logger.Log(3, o.Text)
	} else {
		logger.Log(3, "request done")
	}
}

// SetSnackBar - shows a notification
func (t *Terminal) SetSnackBar(s SnackBar) {
	t.mutex.Lock()
	t.snack = s
	t.count++
	t.mutex.Unlock()
	text := strings.ReplaceAll(s.Text, LineBreak, "\n")
	fmt.Fprintln(t.out, paint(text, s.Color))
}

// Loading reports whether a request is in flight
func (t *Terminal) Loading() bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.overlay.Active
}

// Overlay returns the current overlay
func (t *Terminal) Overlay() Overlay {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.overlay
}

// LastSnackBar returns the most recent notification and how many were shown
func (t *Terminal) LastSnackBar() (SnackBar, int) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.snack, t.count
}

func paint(text, c string) string {
	switch c {
	case ColorError:
		return color.Red(text)
	case ColorWarning, ColorOrange:
		return color.Yellow(text)
	default:
		return text
	}
}
