// Package cmd provides the CLI commands for uicomponent.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/uicomponent/internal/ui"
)

const version = "0.1.0"

var (
	flagTemplateRoot string
	flagSearchPath   []string
	flagExtension    string
	flagSeparator    string
	flagEngine       string
	flagColor        string
	flagVerbose      bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "uicomponent",
	Short: "Render components through name-derived templates",
	Long: `uicomponent - render components through name-derived templates

A component identity such as "shop.cart.Summary" maps to the template
templates/shop/cart/Summary.tmpl, looked up on the search path. Underscores
in the last segment become directories too ("Legacy_Panel" ->
templates/Legacy/Panel.tmpl).

Configuration is read from uicomponent.yaml in the project root, then
UICOMPONENT_* environment variables, then flags.

COMMANDS
  render <identity>     Render the template for an identity
    --data, -d <file>   YAML or JSON data passed to the template
    --set key=value     Set a single data value
    --output, -o <file> Write output to a file instead of stdout
    --display           Print a diagnostic instead of failing
  path <identity...>    Show the template path derived from identities
  check <identity...>   Verify templates exist on the search path
  list [prefix]         List identities of available templates
  config                Show the effective configuration
  doctor                Check the template root on every search location`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ui.Verbose = flagVerbose
		return ui.SetColorMode(flagColor)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagTemplateRoot, "root", "", "Template root directory (default \"templates/\")")
	pf.StringSliceVar(&flagSearchPath, "search-path", nil, "Directories to resolve templates against, relative to the working directory (repeatable)")
	pf.StringVar(&flagExtension, "ext", "", "Template file extension (default \".tmpl\")")
	pf.StringVar(&flagSeparator, "separator", "", "Namespace separator in identities (default \".\")")
	pf.StringVar(&flagEngine, "engine", "", "Template engine: html or text (default \"html\")")
	pf.StringVar(&flagColor, "color", ui.ColorAuto, "Color output: auto, always or never")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Show lookup details")

	rootCmd.SetVersionTemplate("uicomponent version {{.Version}}\n")
}
