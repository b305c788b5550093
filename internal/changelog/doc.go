// Package changelog groups classified commits into sections and renders the
// release notes written to CHANGELOG.md.
//
// This package implements:
//   - a pure grouping fold from commits to ordered sections
//   - deterministic Markdown rendering of a release
//   - a colored terminal preview for dry runs
//   - the append/prepend file sink and detection of already-released versions
//
// The Markdown wording (headers, bullet formats, the breaking-changes and
// contributors blocks) is scraped by downstream tooling and must stay stable.
package changelog
