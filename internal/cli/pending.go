package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/semrel/internal/changelog"
	"github.com/ariel-frischer/semrel/internal/cli/shared"
	"github.com/ariel-frischer/semrel/internal/config"
	clierrors "github.com/ariel-frischer/semrel/internal/errors"
	"github.com/ariel-frischer/semrel/internal/migrate"
	"github.com/ariel-frischer/semrel/internal/release"
	"github.com/ariel-frischer/semrel/internal/semver"
)

// pendingFlags are the history selection flags shared by next, changelog
// and release.
type pendingFlags struct {
	releaseAs string
	from      string
	fromFile  string
}

func (f *pendingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.releaseAs, "release-as", "", "Force the release type (major, minor, patch)")
	cmd.Flags().StringVar(&f.from, "from", "", "Start of the commit range (default: latest version tag)")
	cmd.Flags().StringVar(&f.fromFile, "from-file", "", "Read commits from a file of hash|message|author|date lines ('-' for stdin)")
}

// resolvePending loads history and computes the pending release.
func resolvePending(cmd *cobra.Command, cfg *config.Configuration, f *pendingFlags) (*shared.History, release.Pending, error) {
	var releaseAs semver.ReleaseType
	if f.releaseAs != "" {
		t, err := semver.ParseReleaseType(f.releaseAs)
		if err != nil {
			return nil, release.Pending{}, clierrors.InvalidReleaseType(f.releaseAs)
		}
		releaseAs = t
	}

	order, err := changelog.ParseSectionOrder(cfg.Changelog.SectionOrder)
	if err != nil {
		return nil, release.Pending{}, clierrors.Wrap(err, clierrors.Configuration)
	}

	hist, err := shared.OpenHistory(cmd, cfg, shared.HistoryOptions{From: f.from, FromFile: f.fromFile})
	if err != nil {
		return nil, release.Pending{}, err
	}

	pending, err := release.Prepare(cmd.Context(), release.Input{
		Source:    hist.Source,
		Range:     hist.Range,
		Current:   hist.Current,
		ReleaseAs: releaseAs,
		Order:     order,
		Boundary:  migrate.Boundary{Hash: cfg.Migration.LineInTheSand},
	})
	if err != nil {
		return nil, release.Pending{}, err
	}
	return hist, pending, nil
}
