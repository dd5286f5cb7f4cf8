package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/uicomponent/internal/component"
	"github.com/cameronsjo/uicomponent/internal/ui"
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check <identity>...",
	Short: "Verify templates exist on the search path",
	Long: `Resolve the template for each identity against the search path and
report where it was found. Exits non-zero if any template is missing.

Examples:
  uicomponent check shop.cart.Summary shop.cart.Line
  uicomponent check --search-path ./theme --search-path . Legacy_Panel`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	return withRenderer(func(r *component.Renderer) error {
		missing := 0
		for _, identity := range args {
			file, err := r.ResolveFile(identity)
			if errors.Is(err, component.ErrTemplateNotFound) {
				ui.Error("%v", err)
				missing++
				continue
			}
			if err != nil {
				return err
			}
			ui.Success("%s", identity)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", identity, file)
		}

		if missing > 0 {
			return fmt.Errorf("%d template(s) missing", missing)
		}
		return nil
	})
}
