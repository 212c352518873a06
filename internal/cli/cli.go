// Package cli implements the hud command-line interface.
//
// Commands:
//   - tree: print the layer tree of a vanilla HUD, optionally with a layout applied
//   - check: validate a layout file against a vanilla HUD
//   - run: open a window that draws the HUD
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried through the command context.
package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/hud"
)

// Execute runs the hud CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "hud",
		Short:        "Inspect and preview ordered HUD layer stacks",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newTreeCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newRunCmd())
	return root
}

// buildHud creates a vanilla HUD with private events, applying the layout at
// layoutPath when it is not empty.
func buildHud(ctx context.Context, layoutPath string) (*hud.Hud, error) {
	logger := loggerFromContext(ctx)
	regs := &hud.Event[hud.LayerRegistrationFunc]{}

	if layoutPath != "" {
		lay, err := hud.LoadLayoutFile(layoutPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("layout loaded", "path", layoutPath, "entries", len(lay.Layers))
		regs.Register(lay.Registration(hud.DefaultFactories()))
	}

	return hud.NewHud(hud.HudConfig{
		Registrations: regs,
		Renders:       &hud.Event[hud.HudRenderFunc]{},
		Logger:        logger,
		ScreenshotDir: defaultScreenshotDir(),
	})
}

func defaultScreenshotDir() string {
	if dir := os.Getenv("HUD_SCREENSHOT_DIR"); dir != "" {
		return dir
	}
	return "screenshots"
}
