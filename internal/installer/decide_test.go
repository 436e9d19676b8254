package installer

import (
	"strings"
	"testing"
)

// scriptedPrompter records the question and default and returns a scripted
// answer, or the default when none is scripted.
type scriptedPrompter struct {
	question   string
	defaultYes bool
	answer     *bool
}

func (s *scriptedPrompter) Select(title string, options []string) (int, error) {
	return 0, nil
}

func (s *scriptedPrompter) Confirm(question string, defaultYes bool) (bool, error) {
	s.question = question
	s.defaultYes = defaultYes
	if s.answer != nil {
		return *s.answer, nil
	}
	return defaultYes, nil
}

func answer(v bool) *bool { return &v }

func TestDecideBranches(t *testing.T) {
	tests := []struct {
		name           string
		installed      string
		installedFound bool
		available      string
		answer         *bool
		wantDefaultYes bool
		wantProceed    bool
		wantQuestion   string
	}{
		{
			name:           "not installed defaults to yes",
			available:      "2.0.0-1",
			wantDefaultYes: true,
			wantProceed:    true,
			wantQuestion:   "Install",
		},
		{
			name:           "not installed explicit decline",
			available:      "2.0.0-1",
			answer:         answer(false),
			wantDefaultYes: true,
			wantProceed:    false,
			wantQuestion:   "Install",
		},
		{
			name:           "already installed defaults to no",
			installed:      "2.0.0-1",
			installedFound: true,
			available:      "2.0.0-1",
			wantDefaultYes: false,
			wantProceed:    false,
			wantQuestion:   "already installed",
		},
		{
			name:           "already installed explicit reinstall",
			installed:      "2.0.0-1",
			installedFound: true,
			available:      "2.0.0-1",
			answer:         answer(true),
			wantDefaultYes: false,
			wantProceed:    true,
			wantQuestion:   "already installed",
		},
		{
			name:           "different version defaults to yes",
			installed:      "1.0.0-1",
			installedFound: true,
			available:      "2.0.0-1",
			wantDefaultYes: true,
			wantProceed:    true,
			wantQuestion:   "Build and install",
		},
		{
			name:           "different version decline",
			installed:      "1.0.0-1",
			installedFound: true,
			available:      "2.0.0-1",
			answer:         answer(false),
			wantDefaultYes: true,
			wantProceed:    false,
			wantQuestion:   "Build and install",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prompter := &scriptedPrompter{answer: tc.answer}
			proceed, err := Decide(tc.installed, tc.installedFound, tc.available, prompter)
			if err != nil {
				t.Fatalf("Decide error: %v", err)
			}
			if proceed != tc.wantProceed {
				t.Fatalf("Decide = %v, want %v", proceed, tc.wantProceed)
			}
			if prompter.defaultYes != tc.wantDefaultYes {
				t.Fatalf("prompt default = %v, want %v", prompter.defaultYes, tc.wantDefaultYes)
			}
			if !strings.Contains(prompter.question, tc.wantQuestion) {
				t.Fatalf("question %q should contain %q", prompter.question, tc.wantQuestion)
			}
			if !strings.Contains(prompter.question, tc.available) {
				t.Fatalf("question %q should name the available version", prompter.question)
			}
		})
	}
}

func TestDecideExactEquality(t *testing.T) {
	// Tokens compare by string equality, so a zero-padded release revision is
	// a different version and takes the default-yes branch.
	prompter := &scriptedPrompter{}
	proceed, err := Decide("1.2.3-4", true, "1.2.3-04", prompter)
	if err != nil {
		t.Fatalf("Decide error: %v", err)
	}
	if !proceed || !prompter.defaultYes {
		t.Fatalf("zero-padded revision must be treated as a different version")
	}
}
