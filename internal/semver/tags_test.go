package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatestTag(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		tags   []string
		prefix string
		want   string
		wantOK bool
	}{
		"highest wins over lexical order": {
			tags:   []string{"v1.9.0", "v1.10.0", "v1.2.0"},
			prefix: "v",
			want:   "v1.10.0",
			wantOK: true,
		},
		"invalid tags ignored": {
			tags:   []string{"nightly", "v2.0", "v1.0.0"},
			prefix: "v",
			want:   "v1.0.0",
			wantOK: true,
		},
		"release beats pre-release": {
			tags:   []string{"v2.0.0-rc.1", "v2.0.0"},
			prefix: "v",
			want:   "v2.0.0",
			wantOK: true,
		},
		"prefix filters": {
			tags:   []string{"api/v3.0.0", "v1.0.0"},
			prefix: "api/v",
			want:   "api/v3.0.0",
			wantOK: true,
		},
		"no prefix": {
			tags:   []string{"1.0.0", "0.9.0"},
			prefix: "",
			want:   "1.0.0",
			wantOK: true,
		},
		"none": {
			tags:   []string{"latest"},
			prefix: "v",
			wantOK: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := LatestTag(tt.tags, tt.prefix)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTagVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.2.3", TagVersion("v1.2.3", "v"))
	assert.Equal(t, "1.2.3", TagVersion("1.2.3", "v"))
}
