// Package config provides the 'semrel config' commands.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ariel-frischer/semrel/internal/cli/shared"
	"github.com/ariel-frischer/semrel/internal/config"
	clierrors "github.com/ariel-frischer/semrel/internal/errors"
)

var (
	cGreen = color.New(color.FgGreen).SprintFunc()
	cDim   = color.New(color.Faint).SprintFunc()
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage semrel configuration",
	Long: `Manage semrel configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (SEMREL_*, '__' separates levels: SEMREL_CHANGELOG__FILE)
  2. Project config (.semrel/config.yml)
  3. User config (~/.config/semrel/config.yml)
  4. Built-in defaults`,
	Example: `  # Show the effective configuration
  semrel config show

  # Create a project config
  semrel config init

  # Set a value in the project config
  semrel config set changelog.placement prepend`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := shared.LoadConfig(cmd)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		return enc.Close()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		userPath, err := config.UserConfigPath()
		if err != nil {
			return fmt.Errorf("resolving user config path: %w", err)
		}
		out := cmd.OutOrStdout()
		printPath(out, "user", userPath)
		printPath(out, "project", shared.ProjectConfigPath(cmd))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented config file with the defaults",
	Long: `Write a commented config file containing every setting with its default.

By default the project config (.semrel/config.yml) is created. Use --user for
the user-level config. An existing file is left unchanged unless --force is
given.`,
	Example: `  semrel config init
  semrel config init --user
  semrel config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a value in the project config",
	Long: `Set a configuration value, validating it against the key's type.

Comments and formatting of the existing file are preserved. Run
'semrel config keys' for the list of keys.`,
	Example: `  semrel config set tag_prefix release-
  semrel config set release.github_release true
  semrel config set lint.max_header_length 100 --user`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one effective configuration value",
	Example: `  semrel config get changelog.file
  SEMREL_TAG_PREFIX=rel- semrel config get tag_prefix`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List configuration keys",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		for _, key := range config.SortedKeys() {
			s := config.KnownKeys[key]
			kind := s.Type.String()
			if len(s.AllowedValues) > 0 {
				kind = strings.Join(s.AllowedValues, "|")
			}
			fmt.Fprintf(out, "%-28s %-20s %s %s\n", key, kind, s.Description, cDim(fmt.Sprintf("(default: %v)", s.Default)))
		}
	},
}

func init() {
	configCmd.GroupID = shared.GroupConfiguration
	configInitCmd.Flags().Bool("user", false, "Create the user-level config instead of the project config")
	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	configSetCmd.Flags().Bool("user", false, "Write to the user-level config instead of the project config")
	configCmd.AddCommand(configShowCmd, configPathCmd, configInitCmd, configGetCmd, configSetCmd, configKeysCmd)
}

// Register adds the config command tree to root.
func Register(root *cobra.Command) {
	root.AddCommand(configCmd)
}

func printPath(out io.Writer, label, path string) {
	status := cDim("(not found)")
	if _, err := os.Stat(path); err == nil {
		status = cGreen("(exists)")
	}
	fmt.Fprintf(out, "%-8s %s %s\n", label+":", path, status)
}

// targetPath returns the config file a write command operates on.
func targetPath(cmd *cobra.Command) (string, error) {
	if user, _ := cmd.Flags().GetBool("user"); user {
		return config.UserConfigPath()
	}
	return shared.ProjectConfigPath(cmd), nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := targetPath(cmd)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s (use --force to overwrite)\n", path)
		return nil
	}

	if err := ensureDirectory(filepath.Dir(path)); err != nil {
		return clierrors.FileNotWritable(path, err)
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return clierrors.FileNotWritable(path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s\n", cGreen("✓"), path)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path, err := targetPath(cmd)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	key, value := args[0], args[1]
	if err := config.SetConfigValue(path, key, value); err != nil {
		var vErr *config.ValidationError
		if errors.As(err, &vErr) {
			return clierrors.NewConfigError(err.Error(),
				"Fix the YAML syntax in "+path+" and retry",
				"Or write a fresh template with: semrel config init --force")
		}
		return clierrors.Wrap(err, clierrors.Argument, "Run 'semrel config keys' to list keys and their types")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Set %s = %s in %s\n", cGreen("✓"), key, value, path)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if _, err := config.GetKeySchema(key); err != nil {
		return clierrors.Wrap(err, clierrors.Argument, "Run 'semrel config keys' to list keys")
	}

	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return err
	}

	var root yaml.Node
	if err := root.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	keyPath, err := config.ParseKeyPath(key)
	if err != nil {
		return clierrors.Wrap(err, clierrors.Argument)
	}
	node := config.GetNestedValue(&root, keyPath)
	if node == nil {
		return clierrors.NewArgumentError(fmt.Sprintf("%s is not set", key))
	}
	fmt.Fprintln(cmd.OutOrStdout(), node.Value)
	return nil
}

// ensureDirectory creates dir if needed and fails if it exists as a file.
func ensureDirectory(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("path exists and is not a directory: %s", dir)
	case err == nil:
		return nil
	case os.IsNotExist(err):
		return os.MkdirAll(dir, 0o755)
	default:
		return fmt.Errorf("checking path %s: %w", dir, err)
	}
}
