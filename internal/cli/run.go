package cli

import (
	"image/color"

	"github.com/spf13/cobra"

	"github.com/phanxgames/hud"
)

func newRunCmd() *cobra.Command {
	var (
		layoutPath    string
		title         string
		width, height int
		screenshotDir string
		debug         bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window that draws the HUD",
		Long: `Open a window that draws the HUD with the given layout applied.

F1 toggles the hidden state, F2 saves a screenshot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := buildHud(cmd.Context(), layoutPath)
			if err != nil {
				return err
			}
			if screenshotDir != "" {
				h.ScreenshotDir = screenshotDir
			}
			return hud.Run(h, hud.RunConfig{
				Title:      title,
				Width:      width,
				Height:     height,
				Background: color.RGBA{0x20, 0x28, 0x30, 0xff},
				Debug:      debug,
			})
		},
	}

	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "layout file to apply")
	cmd.Flags().StringVar(&title, "title", "hud", "window title")
	cmd.Flags().IntVar(&width, "width", 640, "window width")
	cmd.Flags().IntVar(&height, "height", 480, "window height")
	cmd.Flags().StringVar(&screenshotDir, "screenshots", "", "screenshot output directory")
	cmd.Flags().BoolVar(&debug, "debug", false, "log per-frame render stats")
	return cmd
}
