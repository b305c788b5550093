package commit

// Type is a conventional commit type. The known set is closed; a literal type
// parsed from a header that is not in the set is kept verbatim and reports
// Known() == false.
type Type string

// Standard conventional commit types.
const (
	TypeFeat     Type = "feat"
	TypeFix      Type = "fix"
	TypeDocs     Type = "docs"
	TypeStyle    Type = "style"
	TypeRefactor Type = "refactor"
	TypePerf     Type = "perf"
	TypeTest     Type = "test"
	TypeBuild    Type = "build"
	TypeCI       Type = "ci"
	TypeChore    Type = "chore"
	TypeRevert   Type = "revert"
	TypeSecurity Type = "security"
)

// Impact is the version impact a commit type carries on its own, without a
// breaking marker.
type Impact int

const (
	// ImpactNone commits do not change the version beyond the patch default.
	ImpactNone Impact = iota
	// ImpactPatch commits fix behavior.
	ImpactPatch
	// ImpactMinor commits add functionality.
	ImpactMinor
)

// Meta describes how a commit type is presented in a changelog.
type Meta struct {
	Emoji  string
	Title  string
	Impact Impact
}

// otherMeta is used for every type outside the known table.
var otherMeta = Meta{Emoji: "📝", Title: "Other Changes", Impact: ImpactNone}

// typeTable lists the known types in canonical order.
var typeTable = []struct {
	typ  Type
	meta Meta
}{
	{TypeFeat, Meta{Emoji: "✨", Title: "Features", Impact: ImpactMinor}},
	{TypeFix, Meta{Emoji: "🐛", Title: "Bug Fixes", Impact: ImpactPatch}},
	{TypeDocs, Meta{Emoji: "📚", Title: "Documentation"}},
	{TypeStyle, Meta{Emoji: "💄", Title: "Styles"}},
	{TypeRefactor, Meta{Emoji: "♻️", Title: "Code Refactoring"}},
	{TypePerf, Meta{Emoji: "⚡", Title: "Performance Improvements", Impact: ImpactPatch}},
	{TypeTest, Meta{Emoji: "✅", Title: "Tests"}},
	{TypeBuild, Meta{Emoji: "📦", Title: "Build System"}},
	{TypeCI, Meta{Emoji: "👷", Title: "Continuous Integration"}},
	{TypeChore, Meta{Emoji: "🔧", Title: "Chores"}},
	{TypeRevert, Meta{Emoji: "⏪", Title: "Reverts", Impact: ImpactPatch}},
	{TypeSecurity, Meta{Emoji: "🔒", Title: "Security", Impact: ImpactPatch}},
}

// AllTypes returns the known commit types in canonical order.
func AllTypes() []Type {
	types := make([]Type, len(typeTable))
	for i, row := range typeTable {
		types[i] = row.typ
	}
	return types
}

// Known reports whether t is one of the standard types.
func (t Type) Known() bool {
	return t.Rank() < len(typeTable)
}

// Rank returns the canonical position of t. Unknown types sort last.
func (t Type) Rank() int {
	for i, row := range typeTable {
		if row.typ == t {
			return i
		}
	}
	return len(typeTable)
}

// Meta returns the presentation metadata for t, falling back to the generic
// "Other Changes" entry for unknown types.
func (t Type) Meta() Meta {
	for _, row := range typeTable {
		if row.typ == t {
			return row.meta
		}
	}
	return otherMeta
}

// SectionTitle returns the "emoji + label" heading used in changelogs.
func (t Type) SectionTitle() string {
	m := t.Meta()
	return m.Emoji + " " + m.Title
}

// String returns the string representation of the commit type.
func (t Type) String() string {
	return string(t)
}
