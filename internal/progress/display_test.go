package progress

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSymbols(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		caps      TerminalCapabilities
		wantCheck string
		wantSet   int
	}{
		"unicode": {caps: TerminalCapabilities{SupportsUnicode: true}, wantCheck: "✓", wantSet: 14},
		"ascii":   {caps: TerminalCapabilities{}, wantCheck: "[OK]", wantSet: 9},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := SelectSymbols(tt.caps)
			assert.Equal(t, tt.wantCheck, got.Checkmark)
			assert.Equal(t, tt.wantSet, got.SpinnerSet)
		})
	}
}

func TestDisplay_PlainOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := NewDisplay(&buf, TerminalCapabilities{})

	d.Start("tag release")
	d.Success("tag release")
	d.Start("push")
	d.Fail("push", errors.New("rejected"))
	d.Skip("publish", "--skip-publish")

	assert.Equal(t, "[OK] tag release\n[FAIL] push: rejected\n[SKIP] publish (--skip-publish)\n", buf.String())
}
