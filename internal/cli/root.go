package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version displayed by --version.
func SetVersion(v string) {
	version = v
}

// options holds the persistent flags shared by all commands.
type options struct {
	configPath string
	email      string
	verbose    bool
}

// Execute runs the phrasecanvas CLI.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "phrasecanvas",
		Short:        "Drag phrases onto a pannable, zoomable canvas",
		Long:         `phrasecanvas opens a canvas editor: drag phrases from the list onto the canvas, move them around, and delete them. The layout is saved per user.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(logOut, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("phrasecanvas %s\n", version))
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/phrase-canvas/config.toml)")
	root.PersistentFlags().StringVar(&opts.email, "email", "", "sign in as this address")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBalloonsCmd(opts))
	root.AddCommand(newLogoutCmd(opts))

	return root
}
