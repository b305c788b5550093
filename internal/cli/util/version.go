// Package util provides utility commands: version and doctor.
package util

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/semrel/internal/build"
	"github.com/ariel-frischer/semrel/internal/cli/shared"
)

var versionPlain bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Long:    "Display version, commit, build date, and Go version information for semrel",
	Example: `  # Show version info
  semrel version

  # Plain output (for scripts)
  semrel version --plain`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if versionPlain {
			printPlainVersion(cmd.OutOrStdout())
		} else {
			printPrettyVersion(cmd.OutOrStdout())
		}
	},
}

func init() {
	versionCmd.GroupID = shared.GroupGettingStarted
	versionCmd.Flags().BoolVar(&versionPlain, "plain", false, "Plain output without formatting")
}

// Register adds the utility commands to root.
func Register(root *cobra.Command) {
	root.AddCommand(versionCmd, doctorCmd)
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(w io.Writer) {
	fmt.Fprintf(w, "semrel %s\n", build.Version)
	fmt.Fprintf(w, "commit: %s\n", build.Commit)
	fmt.Fprintf(w, "built: %s\n", build.BuildDate)
	fmt.Fprintf(w, "go: %s\n", runtime.Version())
	fmt.Fprintf(w, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printPrettyVersion prints the version info in a box
func printPrettyVersion(w io.Writer) {
	dim := color.New(color.Faint).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	info := []struct {
		label string
		value string
	}{
		{"Version", build.Version},
		{"Commit", truncateCommit(build.Commit)},
		{"Built", build.BuildDate},
		{"Go", runtime.Version()},
		{"Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
	}

	const boxWidth = 44
	inner := boxWidth - 2

	fmt.Fprintln(w, dim("╭"+strings.Repeat("─", inner)+"╮"))
	for _, item := range info {
		// label column is 10 wide plus 2 spaces of margin on each side
		pad := inner - 2 - 10 - 2 - len(item.value)
		if pad < 1 {
			pad = 1
		}
		fmt.Fprintf(w, "%s  %s  %s%s%s\n",
			dim("│"), yellow(fmt.Sprintf("%10s", item.label)), white(item.value), strings.Repeat(" ", pad), dim("│"))
	}
	fmt.Fprintln(w, dim("╰"+strings.Repeat("─", inner)+"╯"))
}

// truncateCommit shortens commit hash if it's too long
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
