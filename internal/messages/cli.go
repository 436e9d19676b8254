package messages

// CLI messages for the root command and version output.
const (
	// RootUse is the CLI command name.
	RootUse = "castle-install"
	// RootShort is the short description for the root command.
	RootShort = "Build and install the Castle desktop client from its packaging repository"
	RootLong  = "castle-install fetches the Castle packaging repository, compares the installed\n" +
		"version against the published package definition, and builds and installs the\n" +
		"selected package variant through makepkg and pacman.\n\n" +
		"Exit codes: 0 on success or when the user declines to proceed; 1 on any\n" +
		"fatal error. When interrupted, the process terminates with the signal's\n" +
		"default disposition."

	RootFlagVariant = "Package variant to install (standard or electron); skips the selection menu"
	RootFlagYes     = "Answer every confirmation with its default; requires a variant via --variant or CASTLE_INSTALL_VARIANT"
	RootFlagConfig  = "Path to a config file (default ~/.config/castle-install/config.toml)"

	RootYesRequiresVariant  = "--yes requires a variant; pass --variant or set CASTLE_INSTALL_VARIANT"
	RootRequiresTerminalFmt = "castle-install prompts on the controlling terminal, which is unavailable (%v); use --yes with --variant for unattended runs"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"
)
