package messages

// Prompt formatting shared by the terminal prompter.
const (
	// PromptYesDefaultFmt formats yes/no prompts with yes as default.
	PromptYesDefaultFmt = "%s [Y/n]: "
	// PromptNoDefaultFmt formats yes/no prompts with no as default.
	PromptNoDefaultFmt = "%s [y/N]: "

	PromptMenuItemFmt   = "  %d) %s\n"
	PromptMenuChoiceFmt = "Choice [%d]: "
	// PromptInvalidChoiceFmt reports menu input outside the offered options.
	PromptInvalidChoiceFmt = "invalid choice %q"
)
