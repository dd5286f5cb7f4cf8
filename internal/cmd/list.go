package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/uicomponent/internal/component"
	"github.com/cameronsjo/uicomponent/internal/ui"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list [prefix]",
	Short: "List identities of available templates",
	Long: `Walk the template root on every search location and print the identity
of each template found. Directories are shown as namespace segments.

Examples:
  uicomponent list
  uicomponent list shop.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}

	return withRenderer(func(r *component.Renderer) error {
		ids, err := r.Identities()
		if err != nil {
			return fmt.Errorf("list templates: %w", err)
		}

		count := 0
		for _, id := range ids {
			if !strings.HasPrefix(id, prefix) {
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			count++
		}

		if count == 0 {
			ui.Warning("No templates found under %s", r.TemplateRoot())
		}
		return nil
	})
}
