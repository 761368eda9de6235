package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	c, err := Parse("gridsweeper", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, 20, c.Width)
	assert.Equal(t, 15, c.Height)
	assert.Equal(t, 20, c.Bombs)
}

func TestParseFlags(t *testing.T) {
	c, err := Parse("gridsweeper", []string{
		"--width", "9", "-H", "9", "-b", "10",
		"--cell-size=24", "--seed", "1234", "--theme", "Dark", "--log-level", "debug",
	})
	require.NoError(t, err)
	assert.Equal(t, Config{
		Width:    9,
		Height:   9,
		Bombs:    10,
		CellSize: 24,
		Seed:     1234,
		Theme:    ThemeDark,
		LogLevel: "debug",
	}, c)

	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, lvl)
}

func TestParseInvalid(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"too many bombs", []string{"-W", "3", "-H", "3", "-b", "10"}},
		{"negative bombs", []string{"--bombs=-1"}},
		{"zero width", []string{"--width", "0"}},
		{"tiny cells", []string{"--cell-size", "4"}},
		{"unknown theme", []string{"--theme", "neon"}},
		{"bad level", []string{"--log-level", "loud"}},
		{"stray argument", []string{"extra"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse("gridsweeper", tc.args)
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseUnknownFlag(t *testing.T) {
	_, err := Parse("gridsweeper", []string{"--difficulty", "expert"})
	require.Error(t, err)
}

func TestFullBoardOfBombsIsValid(t *testing.T) {
	c := Default()
	c.Width, c.Height, c.Bombs = 2, 2, 4
	require.NoError(t, c.Validate())
}

func TestFields(t *testing.T) {
	f := Default().Fields()
	assert.Equal(t, 20, f["width"])
	assert.Equal(t, ThemeClassic, f["theme"])
	assert.Len(t, f, 7)
}
