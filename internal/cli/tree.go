package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/phanxgames/hud"
)

func newTreeCmd() *cobra.Command {
	var (
		layoutPath string
		hidden     bool
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the HUD layer tree in draw order",
		Long: `Print the layer tree of a vanilla HUD in draw order, bottom layer first.

Sub-lists whose render condition is currently false are marked as hidden.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := buildHud(cmd.Context(), layoutPath)
			if err != nil {
				return err
			}
			h.Hidden = hidden
			_, err = fmt.Fprintln(cmd.OutOrStdout(), layerTree(h.Layers()).String())
			return err
		},
	}

	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "layout file to apply")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "evaluate render conditions with the HUD hidden")
	return cmd
}

// layerTree converts a layer list into a printable tree.
func layerTree(list *hud.LayerList) *tree.Tree {
	root := tree.Root(styleTitle.Render("hud")).
		EnumeratorStyle(styleBranch)
	stack := []*tree.Tree{root}

	// Walk is pre-order, so an entry at depth d always belongs to the most
	// recent sub-list seen at depth d-1.
	_ = list.Walk(func(depth int, layer hud.Layer) error {
		stack = stack[:depth+1]
		parent := stack[depth]
		switch l := layer.(type) {
		case *hud.IdentifiedLayer:
			parent.Child(styleLayer.Render(l.ID().String()))
		case *hud.SubLayer:
			label := "sub-list"
			if !l.ShouldRender() {
				label = styleHidden.Render("sub-list (hidden)")
			}
			sub := tree.Root(label).EnumeratorStyle(styleBranch)
			parent.Child(sub)
			stack = append(stack, sub)
		}
		return nil
	})
	return root
}
