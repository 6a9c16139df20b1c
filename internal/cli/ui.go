package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// consoleUI renders flow dialogs as plain terminal prompts. Returning from
// Success or Error is the dismissal that lets the flow finish.
type consoleUI struct {
	reader *bufio.Reader
	out    io.Writer
}

func (u *consoleUI) Confirm(prompt string) (bool, error) {
	answer, err := GetSimpleText(u.reader, prompt+" [y/N]", u.out)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

func (u *consoleUI) Success(message string) {
	fmt.Fprintln(u.out, "OK:", message)
}

func (u *consoleUI) Error(message string) {
	fmt.Fprintln(u.out, "Error:", message)
}
