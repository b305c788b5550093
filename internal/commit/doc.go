// Package commit classifies git commit messages against the Conventional
// Commits grammar.
//
// This package implements:
//   - the closed set of commit types and their changelog metadata
//   - parsing of `type(scope)!: subject` headers
//   - a first-word keyword fallback for legacy (non-conventional) messages
//   - conversion of raw log records into classified Commit values
//
// Every function here is pure. Classification is total: any input, including
// an empty string, yields a concrete type.
package commit
