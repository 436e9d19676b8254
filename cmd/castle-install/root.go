package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/castle-install/internal/config"
	"github.com/conn-castle/castle-install/internal/installer"
	"github.com/conn-castle/castle-install/internal/makepkg"
	"github.com/conn-castle/castle-install/internal/messages"
	"github.com/conn-castle/castle-install/internal/pacman"
	"github.com/conn-castle/castle-install/internal/preflight"
	"github.com/conn-castle/castle-install/internal/prompt"
	"github.com/conn-castle/castle-install/internal/terminal"
)

// Seams for tests.
var (
	isInteractiveFunc = terminal.IsInteractive
	openTTYFunc       = terminal.OpenControlling
)

func newRootCmd() *cobra.Command {
	var (
		variantFlag string
		assumeYes   bool
		configPath  string
	)

	cmd := &cobra.Command{
		Use:          messages.RootUse,
		Short:        messages.RootShort,
		Long:         messages.RootLong,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(configPath)
			if err != nil {
				return err
			}

			override := strings.TrimSpace(variantFlag)
			if override == "" {
				override = strings.TrimSpace(settings.Variant)
			}

			var prompter prompt.Prompter
			var tty *os.File
			if assumeYes {
				if override == "" {
					return fmt.Errorf(messages.RootYesRequiresVariant)
				}
				prompter = prompt.Fixed{}
			} else {
				if !isInteractiveFunc() {
					return fmt.Errorf(messages.RootRequiresTerminalFmt, terminal.ErrNotInteractive)
				}
				tty, err = openTTYFunc()
				if err != nil {
					return fmt.Errorf(messages.RootRequiresTerminalFmt, err)
				}
				defer func() { _ = tty.Close() }()
				prompter = prompt.NewTTY(tty, tty)
			}

			// Nested privilege prompts from makepkg and pacman read the same
			// controlling terminal; unattended runs fall back to stdin.
			var toolInput io.Reader = cmd.InOrStdin()
			if tty != nil {
				toolInput = tty
			}

			opts := installer.Options{
				Settings:        settings,
				VariantOverride: override,
				Prompter:        prompter,
				DB:              pacman.DB{},
				Builder: makepkg.Builder{
					TTY: toolInput,
					Out: cmd.OutOrStdout(),
					Err: cmd.ErrOrStderr(),
				},
				Installer: pacman.Installer{
					TTY: toolInput,
					Out: cmd.OutOrStdout(),
					Err: cmd.ErrOrStderr(),
				},
				Sys: preflight.RealSystem{},
				Out: cmd.OutOrStdout(),
				Err: cmd.ErrOrStderr(),
			}
			return installer.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&variantFlag, "variant", "", messages.RootFlagVariant)
	cmd.Flags().BoolVar(&assumeYes, "yes", false, messages.RootFlagYes)
	cmd.Flags().StringVar(&configPath, "config", "", messages.RootFlagConfig)
	return cmd
}
