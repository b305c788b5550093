package shared

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/semrel/internal/config"
	clierrors "github.com/ariel-frischer/semrel/internal/errors"
	"github.com/ariel-frischer/semrel/internal/git"
	"github.com/ariel-frischer/semrel/internal/manifest"
)

// Persistent flag names defined on the root command.
const (
	ConfigFlag = "config"
	RepoFlag   = "repo"
)

// RepoDir returns the --repo flag value, or "." when unset.
func RepoDir(cmd *cobra.Command) string {
	if f := cmd.Flag(RepoFlag); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return "."
}

// RepoPath resolves p against the repository directory unless it is absolute.
func RepoPath(cmd *cobra.Command, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(RepoDir(cmd), p)
}

// ProjectConfigPath returns the project config file: the --config flag
// value, or .semrel/config.yml inside the repository directory.
func ProjectConfigPath(cmd *cobra.Command) string {
	if f := cmd.Flag(ConfigFlag); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return RepoPath(cmd, config.ProjectConfigPath())
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadConfig loads configuration honoring --config and --repo. Warnings go
// to the command's stderr.
func LoadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	path := ""
	if f := cmd.Flag(ConfigFlag); f != nil {
		path = f.Value.String()
	}
	if path == "" && RepoDir(cmd) != "." {
		if candidate := ProjectConfigPath(cmd); fileExists(candidate) {
			path = candidate
		}
	}

	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ProjectConfigPath: path,
		WarningWriter:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, clierrors.ConfigParseError(err)
	}
	return cfg, nil
}

// History is the commit source and version state for one command run.
type History struct {
	Source git.LogSource
	Range  git.Range
	// Repo is nil when history is read from a file.
	Repo    *git.Repo
	Current string
	// CurrentSource tells where Current came from.
	CurrentSource manifest.Source
	// Manifest is nil when no manifest is configured.
	Manifest manifest.Manifest
}

// HistoryOptions selects where commits are read from.
type HistoryOptions struct {
	// From overrides the lower range bound (default: latest version tag).
	From string
	// FromFile reads "hash|message|author|date" lines instead of git; "-" is stdin.
	FromFile string
	// AllHistory reads from the root commit when From is empty.
	AllHistory bool
}

// OpenHistory resolves the commit source, range and current version.
func OpenHistory(cmd *cobra.Command, cfg *config.Configuration, opts HistoryOptions) (*History, error) {
	h := &History{}
	if cfg.Manifest != "" {
		h.Manifest = manifest.ForPath(RepoPath(cmd, cfg.Manifest))
	}

	if opts.FromFile != "" {
		h.Source = &git.FileSource{Path: opts.FromFile, Reader: cmd.InOrStdin()}
		return h, h.resolveCurrent(cfg.TagPrefix, nil)
	}

	dir := RepoDir(cmd)
	repo, err := git.Open(dir)
	if err != nil {
		return nil, clierrors.NotGitRepository(dir)
	}
	h.Repo = repo
	h.Source = repo
	h.Range.From = opts.From

	if h.Range.From == "" && !opts.AllHistory {
		tag, err := repo.LatestTag(cfg.TagPrefix)
		switch {
		case err == nil:
			h.Range.From = tag
		case stderrors.Is(err, git.ErrNoTags):
		default:
			return nil, fmt.Errorf("finding latest tag: %w", err)
		}
	}

	return h, h.resolveCurrent(cfg.TagPrefix, repo)
}

func (h *History) resolveCurrent(prefix string, repo *git.Repo) error {
	var tags manifest.TagLookup
	if repo != nil {
		tags = repo
	}
	v, src, err := manifest.CurrentVersion(h.Manifest, tags, prefix)
	if err != nil {
		return fmt.Errorf("reading current version: %w", err)
	}
	h.Current, h.CurrentSource = v, src
	return nil
}
