// Package message turns free-form text into conventional commit messages and
// checks messages against the conventional grammar.
//
// Format and Suggest are heuristic and advisory. Lint is the strict check
// behind the commit-msg hook.
package message
