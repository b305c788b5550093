// Package migrate analyzes legacy (non-conventional) commit history and
// produces the advice and mapping rules used to move a repository onto
// Conventional Commits.
package migrate
