package semver

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// LatestTag returns the tag with the highest semantic version among tags
// that start with prefix. Tags that are not valid semantic versions once the
// prefix is removed are ignored. Returns false if no tag qualifies.
func LatestTag(tags []string, prefix string) (string, bool) {
	var (
		best    *semver.Version
		bestTag string
	)

	for _, tag := range tags {
		if !strings.HasPrefix(tag, prefix) {
			continue
		}
		v, err := semver.StrictNewVersion(strings.TrimPrefix(tag, prefix))
		if err != nil {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestTag = tag
		}
	}

	return bestTag, best != nil
}

// TagVersion strips prefix from tag, returning the bare version string.
func TagVersion(tag, prefix string) string {
	return strings.TrimPrefix(tag, prefix)
}
