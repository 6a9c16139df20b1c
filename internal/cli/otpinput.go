package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/otp"
)

// Terminal seams, replaced in tests.
var (
	makeRaw     = term.MakeRaw
	restoreTerm = term.Restore
	isTerminal  = term.IsTerminal
)

// errOTPCancelled reports that the user backed out of code entry with Esc
// or Ctrl+C. Callers offer a resend/retry menu instead of failing.
var errOTPCancelled = errors.New("code entry cancelled")

// renderDraft redraws the six code cells on the current line. Empty cells
// show as underscores and the focused cell is bracketed.
func renderDraft(w io.Writer, d *otp.Draft, note string) {
	cells := d.Cells()
	var b strings.Builder
	b.WriteString("\r\x1b[K")
	for i, c := range cells {
		if c == "" {
			c = "_"
		}
		if i == d.Focus() {
			b.WriteString("[" + c + "]")
		} else {
			b.WriteString(" " + c + " ")
		}
	}
	if note != "" {
		b.WriteString("  " + note)
	}
	fmt.Fprint(w, b.String())
}

// readOTPDraft drives d from keystrokes read off in until the user submits
// a complete code with Enter. Reads longer than one byte are treated as
// pastes, except escape sequences (arrow keys), which are ignored. A lone
// Esc or Ctrl+C cancels entry.
func readOTPDraft(d *otp.Draft, in io.Reader, w io.Writer) (string, error) {
	renderDraft(w, d, "")
	buf := make([]byte, 64)
	for {
		n, err := in.Read(buf)
		if err != nil {
			return "", err
		}
		if n == 0 {
			continue
		}
		if n > 1 {
			if buf[0] != 0x1b {
				d.Paste(strings.TrimSpace(string(buf[:n])))
			}
			renderDraft(w, d, "")
			continue
		}
		switch b := buf[0]; b {
		case '\r', '\n':
			code, err := d.Code()
			if err != nil {
				renderDraft(w, d, "enter all 6 digits")
				continue
			}
			fmt.Fprintln(w)
			return code, nil
		case 0x7f, 0x08:
			d.Backspace()
			renderDraft(w, d, "")
		case 0x03, 0x1b:
			fmt.Fprintln(w)
			return "", errOTPCancelled
		default:
			d.Input(rune(b))
			renderDraft(w, d, "")
		}
	}
}

// promptOTP shows the given message and collects a 6-digit code. On a real
// terminal it uses the interactive cell widget; otherwise it falls back to
// plain line input.
func (a *App) promptOTP(prompt string) (string, error) {
	fmt.Fprintln(a.out, prompt)

	d := otp.NewDraft()
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		line, err := getSimpleText(a.reader, "Enter the 6-digit code", a.out)
		if err != nil {
			return "", err
		}
		d.Paste(line)
		return d.Code()
	}

	state, err := makeRaw(fd)
	if err != nil {
		return "", err
	}
	defer restoreTerm(fd, state)

	return readOTPDraft(d, os.Stdin, a.out)
}

// collectOTP prompts for a code tied to the given verification session,
// offering resends limited by the configured cooldown. It returns the code
// the user submitted, or errOTPCancelled if they quit the menu.
func (a *App) collectOTP(ctx context.Context, sessionID, prompt string) (string, error) {
	cooldown := otp.NewCooldown(a.config.ResendCooldown)
	cooldown.Start()

	for {
		code, err := a.promptOTP(prompt)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, errOTPCancelled) && !errors.Is(err, otp.ErrIncomplete) {
			return "", err
		}

		choice, err := getSimpleText(a.reader, "(r)esend the code, (q)uit, or press Enter to try again", a.out)
		if err != nil {
			return "", err
		}
		switch strings.ToLower(choice) {
		case "q":
			return "", errOTPCancelled
		case "r":
			if cooldown.Active() {
				fmt.Fprintf(a.out, "Please wait %ds before requesting another code\n", int(cooldown.Remaining().Seconds()))
				continue
			}
			if err := a.api.ResendOTP(ctx, sessionID); err != nil {
				a.ui.Error(err.Error())
				continue
			}
			cooldown.Start()
			fmt.Fprintln(a.out, "A new code is on its way")
		}
	}
}
