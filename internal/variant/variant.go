// Package variant resolves which of the two Castle package flavors a run
// operates on.
package variant

import (
	"fmt"
	"strings"

	"github.com/conn-castle/castle-install/internal/messages"
	"github.com/conn-castle/castle-install/internal/prompt"
)

// Variant identifies one installable package flavor.
type Variant struct {
	// Key is the value recognized by the forced-choice override.
	Key string
	// Package is the target package built and installed for this variant.
	Package string
	// Label is the human-readable menu entry.
	Label string
}

// Keys recognized by the forced-choice override.
const (
	KeyStandard = "standard"
	KeyElectron = "electron"
)

// Choices builds the two selectable variants for the configured package names.
// Exactly these two are ever offered; the mapping is static configuration.
func Choices(standardPackage string, electronPackage string) []Variant {
	return []Variant{
		{Key: KeyStandard, Package: standardPackage, Label: messages.VariantStandard},
		{Key: KeyElectron, Package: electronPackage, Label: messages.VariantElectron},
	}
}

// Resolve returns the selected variant. A non-empty override must match one
// of the recognized keys; without an override the user picks from the menu.
func Resolve(override string, choices []Variant, prompter prompt.Prompter) (Variant, error) {
	if trimmed := strings.TrimSpace(override); trimmed != "" {
		for _, choice := range choices {
			if choice.Key == trimmed {
				return choice, nil
			}
		}
		return Variant{}, fmt.Errorf(messages.VariantInvalidFmt, trimmed, KeyStandard, KeyElectron)
	}

	options := make([]string, len(choices))
	for i, choice := range choices {
		options[i] = choice.Label
	}
	index, err := prompter.Select(messages.VariantMenuTitle, options)
	if err != nil {
		return Variant{}, err
	}
	return choices[index], nil
}
