package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/uicomponent/internal/component"
	"github.com/cameronsjo/uicomponent/internal/fileutil"
	"github.com/cameronsjo/uicomponent/internal/ui"
)

var (
	renderData    string
	renderSets    []string
	renderOutput  string
	renderDisplay bool
)

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render <identity>",
	Short: "Render the template for an identity",
	Long: `Render the template derived from a component identity.

The template receives the data from --data and --set as its root context,
so a data file containing "title: Cart" is reachable as {{ .title }}.
All sprig functions are available, plus:
  - include <path>   insert a file from the search path verbatim
  - identity         the identity being rendered

Examples:
  # Render shop/cart/Summary.tmpl to stdout
  uicomponent render shop.cart.Summary -d cart.yaml

  # Legacy flat identity (templates/Legacy/Panel.tmpl)
  uicomponent render Legacy_Panel --set title=Hello

  # Write to a file, never fail
  uicomponent render shop.cart.Summary -o out/summary.html --display`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderData, "data", "d", "", "YAML or JSON file with template data")
	renderCmd.Flags().StringArrayVar(&renderSets, "set", nil, "Set a data value (key=value, repeatable)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (prints to stdout if not set)")
	renderCmd.Flags().BoolVar(&renderDisplay, "display", false, "Print a diagnostic instead of failing")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	identity := args[0]

	data := make(map[string]any)
	if renderData != "" {
		loaded, err := loadData(renderData)
		if err != nil {
			return err
		}
		data = loaded
	}
	if err := applySets(data, renderSets); err != nil {
		return err
	}

	return withRenderer(func(r *component.Renderer) error {
		ui.Debug("template: %s", r.TemplateRoot()+r.DerivePath(identity))

		var out string
		if renderDisplay {
			out = r.DisplayAs(identity, data)
		} else {
			var err error
			out, err = r.RenderAs(identity, data)
			if err != nil {
				return fmt.Errorf("render %s: %w", identity, err)
			}
		}

		if renderOutput == "" {
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		}

		if err := fileutil.WriteFileAtomic(renderOutput, []byte(out), 0644); err != nil {
			return fmt.Errorf("write %s: %w", renderOutput, err)
		}
		ui.Success("%s → %s", identity, renderOutput)
		return nil
	})
}
