package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/conn-castle/castle-install/internal/messages"
)

// TTY prompts on the controlling terminal rather than the standard streams,
// so the flow stays usable when stdin/stdout are redirected.
type TTY struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTTY wires a prompter to the given terminal streams. Callers typically
// pass the handle from terminal.OpenControlling for both.
func NewTTY(in io.Reader, out io.Writer) *TTY {
	return &TTY{in: bufio.NewReader(in), out: out}
}

// readLine reads one trimmed response line. EOF counts as an empty response.
func (t *TTY) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Select renders the numbered menu and reads a single choice.
func (t *TTY) Select(title string, options []string) (int, error) {
	if _, err := fmt.Fprintln(t.out, title); err != nil {
		return 0, err
	}
	for i, option := range options {
		if _, err := fmt.Fprintf(t.out, messages.PromptMenuItemFmt, i+1, option); err != nil {
			return 0, err
		}
	}
	if _, err := fmt.Fprintf(t.out, messages.PromptMenuChoiceFmt, 1); err != nil {
		return 0, err
	}

	response, err := t.readLine()
	if err != nil {
		return 0, err
	}
	if response == "" {
		return 0, nil
	}
	choice, err := strconv.Atoi(response)
	if err != nil || choice < 1 || choice > len(options) {
		return 0, fmt.Errorf(messages.PromptInvalidChoiceFmt, response)
	}
	return choice - 1, nil
}

// Confirm asks the question with its default marked and classifies the answer.
func (t *TTY) Confirm(question string, defaultYes bool) (bool, error) {
	format := messages.PromptNoDefaultFmt
	if defaultYes {
		format = messages.PromptYesDefaultFmt
	}
	if _, err := fmt.Fprintf(t.out, format, question); err != nil {
		return false, err
	}

	response, err := t.readLine()
	if err != nil {
		return false, err
	}
	return classify(response, defaultYes), nil
}

// classify applies the fuzzy yes/no rule: only a leading 'y' or 'n'
// overrides the default.
func classify(response string, defaultAnswer bool) bool {
	if response == "" {
		return defaultAnswer
	}
	switch response[0] {
	case 'y', 'Y':
		return true
	case 'n', 'N':
		return false
	}
	return defaultAnswer
}
