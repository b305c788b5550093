// Package config provides hierarchical configuration management for semrel using koanf.
// Configuration is loaded with priority: environment variables > project config >
// user config > defaults.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "SEMREL_"

// Configuration represents the semrel configuration
type Configuration struct {
	// TagPrefix is prepended to versions to form tag names (default "v").
	TagPrefix string `koanf:"tag_prefix" yaml:"tag_prefix"`
	// Branch is the release branch; releasing from another branch asks for confirmation.
	Branch string `koanf:"branch" yaml:"branch" validate:"required"`
	Remote string `koanf:"remote" yaml:"remote" validate:"required"`
	// Manifest is the file holding the current version: package.json or a plain VERSION file.
	Manifest string `koanf:"manifest" yaml:"manifest"`

	Changelog ChangelogConfig `koanf:"changelog" yaml:"changelog"`
	Release   ReleaseConfig   `koanf:"release" yaml:"release"`
	Lint      LintConfig      `koanf:"lint" yaml:"lint"`
	Migration MigrationConfig `koanf:"migration" yaml:"migration"`

	SkipConfirmations bool `koanf:"skip_confirmations" yaml:"skip_confirmations"` // Can also be set via SEMREL_YES env var
}

// ChangelogConfig controls the changelog file sink.
type ChangelogConfig struct {
	File         string `koanf:"file" yaml:"file" validate:"required"`
	Title        string `koanf:"title" yaml:"title"`
	SectionOrder string `koanf:"section_order" yaml:"section_order" validate:"oneof=first-seen canonical"`
	Placement    string `koanf:"placement" yaml:"placement" validate:"oneof=append prepend"`
}

// ReleaseConfig controls the release pipeline.
type ReleaseConfig struct {
	Publish       bool   `koanf:"publish" yaml:"publish"`
	PublishCmd    string `koanf:"publish_cmd" yaml:"publish_cmd"`
	GitHubRelease bool   `koanf:"github_release" yaml:"github_release"`
	// CommitMessage is a text/template receiving .Version, .Previous, .Tag and .Type.
	CommitMessage string `koanf:"commit_message" yaml:"commit_message" validate:"required"`
}

// LintConfig controls 'semrel lint'.
type LintConfig struct {
	MaxHeaderLength   int  `koanf:"max_header_length" yaml:"max_header_length" validate:"min=20,max=200"`
	AllowUnknownTypes bool `koanf:"allow_unknown_types" yaml:"allow_unknown_types"`
}

// MigrationConfig controls legacy history handling.
type MigrationConfig struct {
	// LineInTheSand is the last commit before the convention was adopted.
	LineInTheSand string `koanf:"line_in_the_sand" yaml:"line_in_the_sand"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .semrel/config.yml)
	ProjectConfigPath string
	// UserConfigPath overrides the user config path (default: see UserConfigPath)
	UserConfigPath string
	// SkipUserConfig ignores the user-level config file
	SkipUserConfig bool
	// WarningWriter receives warnings (default: os.Stderr)
	WarningWriter io.Writer
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
//
// Config paths:
//   - User config: ~/.config/semrel/config.yml (XDG compliant)
//   - Project config: .semrel/config.yml
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if !opts.SkipUserConfig {
		if err := loadUserConfig(k, opts.UserConfigPath); err != nil {
			return nil, err
		}
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k, getWarningWriter(opts.WarningWriter))
}

// getWarningWriter returns the warning writer or defaults to stderr
func getWarningWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

func loadUserConfig(k *koanf.Koanf, customPath string) error {
	path := customPath
	if path == "" {
		path, _ = UserConfigPath()
	}
	if !fileExists(path) {
		return nil
	}
	if err := loadYAMLConfig(k, path, "user"); err != nil {
		return fmt.Errorf("loading user config: %w", err)
	}
	return nil
}

func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	path := ProjectConfigPath()
	if customPath != "" {
		path = customPath
	}
	if !fileExists(path) {
		if customPath != "" {
			return fmt.Errorf("config file %s not found", customPath)
		}
		return nil
	}
	if err := loadYAMLConfig(k, path, "project"); err != nil {
		return fmt.Errorf("loading project config: %w", err)
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals, validates, and applies final transformations
func finalizeConfig(k *koanf.Koanf, warningWriter io.Writer) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if os.Getenv("SEMREL_YES") != "" {
		cfg.SkipConfirmations = true
	}

	if cfg.Release.Publish && strings.TrimSpace(cfg.Release.PublishCmd) == "" {
		fmt.Fprintf(warningWriter, "Warning: release.publish is enabled but release.publish_cmd is empty; publish step will be skipped\n")
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// A double underscore separates nesting levels.
// Example: SEMREL_CHANGELOG__SECTION_ORDER -> changelog.section_order
func envTransform(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Tag returns the tag name for version.
func (c *Configuration) Tag(version string) string {
	return c.TagPrefix + strings.TrimPrefix(version, c.TagPrefix)
}
