package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/uicomponent/internal/preflight"
	"github.com/cameronsjo/uicomponent/internal/ui"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the template root on every search location",
	Long: `Inspect the configured search path and report locations that are
missing or carry no template root. Exits non-zero when no location can
serve templates.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	r := cfg.Renderer()

	ui.Header("Template root: %s", r.TemplateRoot())
	for _, check := range preflight.CheckLocations(r.SearchPath(), r.TemplateRoot()) {
		if check.HasRoot {
			ui.Success("%s", check.Dir)
		}
	}

	warnings, errors := preflight.CheckAll(r.SearchPath(), r.TemplateRoot())
	for _, w := range warnings {
		ui.Warning("%s", w)
	}
	for _, e := range errors {
		ui.Error("%s", e)
	}

	if len(errors) > 0 {
		return fmt.Errorf("%d problem(s) found", len(errors))
	}
	return nil
}
