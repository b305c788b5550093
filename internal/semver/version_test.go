package semver

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		current string
		typ     ReleaseType
		want    string
	}{
		"major":            {current: "1.0.0", typ: Major, want: "2.0.0"},
		"minor":            {current: "2.1.3", typ: Minor, want: "2.2.0"},
		"patch":            {current: "1.9.9", typ: Patch, want: "1.9.10"},
		"zero patch":       {current: "0.0.0", typ: Patch, want: "0.0.1"},
		"v prefix":         {current: "v1.2.3", typ: Minor, want: "1.3.0"},
		"missing patch":    {current: "1.2", typ: Patch, want: "1.2.1"},
		"empty":            {current: "", typ: Minor, want: "0.1.0"},
		"garbage":          {current: "abc", typ: Major, want: "1.0.0"},
		"non numeric part": {current: "1.x.3", typ: Patch, want: "1.0.4"},
		"pre-release":      {current: "1.2.3-rc.1", typ: Patch, want: "1.2.1"},
		"extra parts":      {current: "1.2.3.4", typ: Patch, want: "1.2.4"},
		"unknown type":     {current: "1.2.3", typ: ReleaseType("huge"), want: "1.2.4"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Next(tt.current, tt.typ))
		})
	}
}

func TestComponents(t *testing.T) {
	t.Parallel()

	major, minor, patch := Components("10.20.30")
	assert.Equal(t, []int{10, 20, 30}, []int{major, minor, patch})

	major, minor, patch = Components("-1.2.3")
	assert.Equal(t, []int{0, 2, 3}, []int{major, minor, patch})
}

func TestNext_Properties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	triplet := gen.SliceOfN(3, gen.IntRange(0, 10000))

	properties.Property("major resets minor and patch", prop.ForAll(
		func(v []int) bool {
			return Next(fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2]), Major) == fmt.Sprintf("%d.0.0", v[0]+1)
		},
		triplet,
	))

	properties.Property("minor resets patch", prop.ForAll(
		func(v []int) bool {
			return Next(fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2]), Minor) == fmt.Sprintf("%d.%d.0", v[0], v[1]+1)
		},
		triplet,
	))

	properties.Property("patch increments only patch", prop.ForAll(
		func(v []int) bool {
			return Next(fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2]), Patch) == fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2]+1)
		},
		triplet,
	))

	properties.Property("output always parses back to a triplet", prop.ForAll(
		func(s string, typ ReleaseType) bool {
			next := Next(s, typ)
			major, minor, patch := Components(next)
			return next == fmt.Sprintf("%d.%d.%d", major, minor, patch)
		},
		gen.AnyString(),
		gen.OneConstOf(Major, Minor, Patch),
	))

	properties.TestingRun(t)
}
