package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/uicomponent/internal/component"
	"github.com/cameronsjo/uicomponent/internal/ui"
)

// completeIdentities completes template identities found on the search path.
// If single is true, completion stops after the first argument.
func completeIdentities(single bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		// Don't complete if we already have an argument
		if single && len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var names []string
		err := withRenderer(func(r *component.Renderer) error {
			ids, err := r.Identities()
			if err != nil {
				return err
			}
			for _, id := range ids {
				if strings.HasPrefix(id, toComplete) {
					names = append(names, id)
				}
			}
			return nil
		})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeFixed completes from a fixed list of values.
func completeFixed(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, v := range values {
			if strings.HasPrefix(v, toComplete) {
				names = append(names, v)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

// registerCompletions registers all dynamic completions for commands.
func registerCompletions() {
	renderCmd.ValidArgsFunction = completeIdentities(true)
	pathCmd.ValidArgsFunction = completeIdentities(false)
	checkCmd.ValidArgsFunction = completeIdentities(false)

	// Completions are optional; registration errors only mean the flag is missing.
	_ = rootCmd.RegisterFlagCompletionFunc("engine", completeFixed(string(component.EngineHTML), string(component.EngineText)))
	_ = rootCmd.RegisterFlagCompletionFunc("color", completeFixed(ui.ColorAuto, ui.ColorAlways, ui.ColorNever))
	_ = renderCmd.RegisterFlagCompletionFunc("data", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml", "json"}, cobra.ShellCompDirectiveFilterFileExt
	})
}

func init() {
	cobra.OnInitialize(registerCompletions)
}
