package changelog

import (
	"regexp"
	"strings"
)

// releaseHeadingPattern matches "## [x.y.z]" release headings at line start.
var releaseHeadingPattern = regexp.MustCompile(`(?m)^## \[([^\]]+)\]`)

// ReleasedVersions returns the versions of every release heading in an
// existing changelog, in file order.
func ReleasedVersions(content string) []string {
	matches := releaseHeadingPattern.FindAllStringSubmatch(content, -1)
	versions := make([]string, 0, len(matches))
	for _, m := range matches {
		versions = append(versions, m[1])
	}
	return versions
}

// HasVersion reports whether content already contains a heading for version.
// A "v" prefix on either side is ignored.
func HasVersion(content, version string) bool {
	want := NormalizeVersion(version)
	for _, v := range ReleasedVersions(content) {
		if NormalizeVersion(v) == want {
			return true
		}
	}
	return false
}

// NormalizeVersion normalizes a version string by removing the "v" prefix.
func NormalizeVersion(version string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(version)), "v")
}
