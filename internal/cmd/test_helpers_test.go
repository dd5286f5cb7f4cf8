package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/cameronsjo/uicomponent/internal/ui"
)

// resetFlags restores every flag on fs to its default. Slice flags are
// replaced rather than Set so values do not accumulate across executions.
func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}

// executeCmd executes the root command with the given args and returns the
// command output and the ui messages separately. Flag state from previous
// executions is reset first.
func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd.PersistentFlags())
	resetFlags(rootCmd.Flags())
	for _, cmd := range rootCmd.Commands() {
		resetFlags(cmd.Flags())
	}

	var out, msgs bytes.Buffer
	oldOutput, oldVerbose := ui.Output, ui.Verbose
	ui.Output = &msgs
	t.Cleanup(func() {
		ui.Output = oldOutput
		ui.Verbose = oldVerbose
	})

	rootCmd.SetArgs(append([]string{"--color", ui.ColorNever}, args...))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	return out.String(), msgs.String(), err
}

// writeFile writes content to rel under dir, creating parents.
func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
