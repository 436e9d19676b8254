// Package prompt provides the user-interaction capability for the install
// flow. The flow depends only on the Prompter interface; the terminal-backed
// and fixed-answer implementations are interchangeable.
package prompt

// Prompter answers the flow's interactive questions.
type Prompter interface {
	// Select presents a numbered menu and returns the zero-based index of the
	// chosen option. Empty input selects the first option; anything outside
	// the offered numbers is an error.
	Select(title string, options []string) (int, error)
	// Confirm asks a yes/no question. Only a leading 'y' or 'n' overrides the
	// default; empty or unrecognized input takes it.
	Confirm(question string, defaultYes bool) (bool, error)
}

// Fixed answers every question with its default, for unattended runs.
type Fixed struct{}

// Select picks the first option, matching the menu default.
func (Fixed) Select(title string, options []string) (int, error) {
	return 0, nil
}

// Confirm returns the question's default answer.
func (Fixed) Confirm(question string, defaultYes bool) (bool, error) {
	return defaultYes, nil
}
