package messages

// Messages for the install flow: preflight, config, fetch, version
// resolution, decision, build, and install.
const (
	// PreflightMissingToolFmt names the first required tool missing from PATH.
	PreflightMissingToolFmt = "required tool %q not found in PATH: %v"

	ConfigReadFailedFmt  = "read config file %s: %w"
	ConfigInvalidFmt     = "parse config file %s: %w"
	ConfigResolveHomeFmt = "resolve home directory: %w"
	ConfigExpandPathFmt  = "expand config path %s: %w"

	// VariantInvalidFmt reports a forced-choice value outside the recognized keys.
	VariantInvalidFmt = "invalid variant %q (valid: %s, %s)"
	VariantMenuTitle  = "Which Castle package should be installed?"
	VariantStandard   = "Castle Desktop"
	VariantElectron   = "Castle Desktop (Electron)"

	WorkspaceCreateFailedFmt       = "create workspace directory: %w"
	WorkspaceMissingAfterCreateFmt = "workspace directory %s missing after creation"
	WorkspaceReleased              = "workspace already released"

	FetchCloneFailedFmt           = "clone %s: %w"
	FetchMissingDefinitionDirFmt  = "package definition directory %s missing after clone"
	FetchMissingDefinitionFileFmt = "package definition file %s missing after clone"

	PkgbuildMissingFmt          = "package definition %s: %v"
	PkgbuildEvalFailedFmt       = "evaluate package definition %s: %w"
	PkgbuildMissingFieldsFmt    = "package definition %s does not define pkgver and pkgrel"
	PkgbuildUnexpectedOutputFmt = "unexpected evaluation output %q"

	PacmanQueryFailedFmt     = "query package database for %s: %w"
	PacmanQueryUnexpectedFmt = "unexpected pacman output for %s: %q"
	PacmanInstallFailedFmt   = "install package %s: %w"

	BuildFailedFmt        = "build package %s: %w"
	ArtifactGlobFailedFmt = "match artifacts with pattern %s: %w"
	// ArtifactNotFoundFmt names the pattern and directory that yielded no artifact.
	ArtifactNotFoundFmt = "no package artifact matches %s in %s"
	// ArtifactMultipleWarnFmt is a warning, not an error; the first match (lexicographic) wins.
	ArtifactMultipleWarnFmt = "Warning: %d artifacts match the expected name; using %s\n"

	DecideInstallPromptFmt   = "Install Castle version %s?"
	DecideReinstallPromptFmt = "Castle %s is already installed. Reinstall anyway?"
	DecideUpgradePromptFmt   = "Build and install Castle version %s?"

	RunDeclined   = "Nothing to do."
	RunSuccessFmt = "Installed %s (%s) %s.\n"
)
