package installer

import (
	"fmt"

	"github.com/conn-castle/castle-install/internal/messages"
	"github.com/conn-castle/castle-install/internal/prompt"
)

// Decide compares the installed and available version tokens and consults
// the prompter. Comparison is exact string equality on the composite token;
// no semantic ordering is applied. Nothing is persisted between runs.
func Decide(installed string, installedFound bool, available string, prompter prompt.Prompter) (bool, error) {
	switch {
	case !installedFound:
		return prompter.Confirm(fmt.Sprintf(messages.DecideInstallPromptFmt, available), true)
	case installed == available:
		return prompter.Confirm(fmt.Sprintf(messages.DecideReinstallPromptFmt, available), false)
	default:
		return prompter.Confirm(fmt.Sprintf(messages.DecideUpgradePromptFmt, available), true)
	}
}
