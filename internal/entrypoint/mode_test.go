package entrypoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, s := range []string{"vite", "trunk"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), m)
	}

	for _, s := range []string{"", "foo", "Vite", "TRUNK", " vite"} {
		_, err := ParseMode(s)
		assert.ErrorIs(t, err, ErrInvalidMode, "mode %q", s)
	}
}

func TestModeTitle(t *testing.T) {
	assert.Equal(t, "Vite", ModeVite.Title())
	assert.Equal(t, "Trunk", ModeTrunk.Title())
}
