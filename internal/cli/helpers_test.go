package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// Note: command tests cannot run in parallel because they share the global
// rootCmd and its flag variables.

// sampleLog is a two-commit history in --from-file format, newest first.
const sampleLog = `b2c3d4e5f6a7|fix(api): handle empty token|Bob|2026-10-02
a1b2c3d4e5f6|feat: add login page|Ann|2026-10-01
`

// executeCommand runs rootCmd with args and stdin and returns its combined
// output.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// resetFlags restores every flag in the tree to its default value.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// isolateConfig points the user config at an empty directory and clears
// SEMREL_ overrides so the developer's environment cannot leak in. Progress
// output is forced to ASCII symbols.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, kv := range os.Environ() {
		if key, _, _ := strings.Cut(kv, "="); strings.HasPrefix(key, "SEMREL_") {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
	}
	t.Setenv("SEMREL_ASCII", "1")
}

// writeProject creates a project directory with a VERSION manifest and a
// config file using it, and returns the directory and config path.
func writeProject(t *testing.T, version, extraConfig string) (dir, configPath string) {
	t.Helper()
	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "VERSION"), []byte(version+"\n"), 0o644))

	configPath = filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("manifest: VERSION\n"+extraConfig), 0o644))
	return dir, configPath
}
