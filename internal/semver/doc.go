// Package semver derives semantic-version bumps from classified commits.
//
// Resolve reduces a set of commits to a release type and Next applies that
// release type to a version string. Both are pure. Next never fails: missing
// or non-numeric version components are treated as zero so a malformed
// manifest cannot stop a release.
package semver
