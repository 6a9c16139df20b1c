// Package otp models the 6-digit one-time-code entry: a draft of
// single-digit cells with an explicit focus index, and the resend cooldown.
// The draft lives only in memory and is discarded after verification.
package otp

import (
	"errors"
	"regexp"
	"strings"
)

// Length is the fixed number of code cells.
const Length = 6

// ErrIncomplete reports a submit with fewer than Length digits filled.
// It is a local validation failure: no network call follows it.
var ErrIncomplete = errors.New("please enter a 6-digit code")

var pasteRE = regexp.MustCompile(`^\d{1,6}$`)

// Draft is the transient code entry state. The zero value is not usable;
// call NewDraft.
type Draft struct {
	cells [Length]string
	focus int
}

func NewDraft() *Draft {
	return &Draft{}
}

// Cells returns a copy of the current cell contents.
func (d *Draft) Cells() [Length]string {
	return d.cells
}

// Focus returns the focused cell index.
func (d *Draft) Focus() int {
	return d.focus
}

// SetFocus moves focus to i when it is a valid index.
func (d *Draft) SetFocus(i int) {
	if i >= 0 && i < Length {
		d.focus = i
	}
}

// Input types r into the focused cell. Non-digit input is rejected silently:
// no state changes and false is returned. A digit overwrites the cell and
// advances focus unless already on the last cell.
func (d *Draft) Input(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	d.cells[d.focus] = string(r)
	if d.focus < Length-1 {
		d.focus++
	}
	return true
}

// Backspace on a non-empty cell clears that cell. On an empty cell it moves
// focus back one and clears the PREVIOUS cell. Clearing the previous cell
// rather than stopping on it matches the behavior existing users know;
// do not change it without product sign-off.
func (d *Draft) Backspace() {
	if d.cells[d.focus] != "" {
		d.cells[d.focus] = ""
		return
	}
	if d.focus > 0 {
		d.focus--
		d.cells[d.focus] = ""
	}
}

// Paste distributes a pasted 1–6 digit string across the cells from the
// left, clearing the rest, and focuses the last filled cell. Anything that
// is not purely 1–6 digits is rejected with no state change.
func (d *Draft) Paste(s string) bool {
	s = strings.TrimSpace(s)
	if !pasteRE.MatchString(s) {
		return false
	}

	d.cells = [Length]string{}
	for i, r := range s {
		d.cells[i] = string(r)
	}
	d.focus = len(s) - 1
	if d.focus > Length-1 {
		d.focus = Length - 1
	}
	return true
}

// Code concatenates the cells. When fewer than Length are filled it returns
// ErrIncomplete so the caller can reject locally before any network call.
func (d *Draft) Code() (string, error) {
	var b strings.Builder
	for _, c := range d.cells {
		b.WriteString(c)
	}
	code := b.String()
	if len(code) != Length {
		return "", ErrIncomplete
	}
	return code, nil
}

// Reset clears all cells and returns focus to the first one.
func (d *Draft) Reset() {
	d.cells = [Length]string{}
	d.focus = 0
}
