package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <layout>",
		Short: "Validate a layout file against a vanilla HUD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := buildHud(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s %w", styleError.Render(iconError), err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styleSuccess.Render(iconSuccess), args[0])
			return err
		},
	}
}
