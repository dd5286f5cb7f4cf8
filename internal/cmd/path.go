package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/uicomponent/internal/component"
	"github.com/cameronsjo/uicomponent/internal/ui"
)

// pathCmd represents the path command.
var pathCmd = &cobra.Command{
	Use:   "path <identity>...",
	Short: "Show the template path derived from identities",
	Long: `Print the template path each identity maps to, relative to the
search path. Nothing is read from disk.

Examples:
  uicomponent path shop.cart.Summary      # templates/shop/cart/Summary.tmpl
  uicomponent path Legacy_Panel           # templates/Legacy/Panel.tmpl
  uicomponent path --separator :: A::B::C # templates/A/B/C.tmpl`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	return withRenderer(func(r *component.Renderer) error {
		for _, identity := range args {
			path := r.TemplateRoot() + r.DerivePath(identity)
			fmt.Fprintln(cmd.OutOrStdout(), path)

			if resolved, ok := r.Exists(path); ok {
				ui.Debug("%s resolves to %s", identity, resolved)
			}
		}
		return nil
	})
}
