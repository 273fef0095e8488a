package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDisplayConfiguration(t *testing.T) {
	cfg := DefaultDisplayConfiguration()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "4.4", cfg.Version())
	assert.Equal(t, 4, cfg.Samples)
	assert.Equal(t, ProfileCore, cfg.Profile)
	assert.Equal(t, KeyEscape, cfg.QuitKey)
	assert.False(t, cfg.Fullscreen)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*DisplayConfiguration)
	}{
		{"zero width", func(c *DisplayConfiguration) { c.Width = 0 }},
		{"negative height", func(c *DisplayConfiguration) { c.Height = -1 }},
		{"minor without major", func(c *DisplayConfiguration) { c.Major = 0 }},
		{"negative major", func(c *DisplayConfiguration) { c.Major = -3 }},
		{"negative minor", func(c *DisplayConfiguration) { c.Minor = -1 }},
		{"negative samples", func(c *DisplayConfiguration) { c.Samples = -4 }},
		{"negative swap interval", func(c *DisplayConfiguration) { c.SwapInterval = -1 }},
		{"unknown profile", func(c *DisplayConfiguration) { c.Profile = Profile(42) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDisplayConfiguration()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfiguration)
		})
	}
}

func TestParseProfile(t *testing.T) {
	for in, want := range map[string]Profile{
		"core":          ProfileCore,
		"CORE":          ProfileCore,
		"compat":        ProfileCompat,
		"compatibility": ProfileCompat,
		"any":           ProfileAny,
	} {
		got, err := ParseProfile(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseProfile("es")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestProfileText(t *testing.T) {
	var p Profile
	require.NoError(t, p.UnmarshalText([]byte("compat")))
	assert.Equal(t, ProfileCompat, p)
	b, err := p.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "compat", string(b))
	assert.Equal(t, "Profile(9)", Profile(9).String())
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("Escape")
	require.NoError(t, err)
	assert.Equal(t, KeyEscape, k)

	k, err = ParseKey("esc")
	require.NoError(t, err)
	assert.Equal(t, KeyEscape, k)

	k, err = ParseKey("q")
	require.NoError(t, err)
	assert.Equal(t, KeyQ, k)

	_, err = ParseKey("unknown")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = ParseKey("hyper")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestKeyText(t *testing.T) {
	var k Key
	require.NoError(t, k.UnmarshalText([]byte("f10")))
	assert.Equal(t, KeyF10, k)
	assert.Error(t, k.UnmarshalText([]byte("nope")))
	assert.Equal(t, KeyF10, k)
}

func TestZeroValueDefaults(t *testing.T) {
	cfg := DisplayConfiguration{Width: 800, Height: 600, Title: "Test"}
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.HasVersion())
	assert.Equal(t, "default", cfg.Version())
	assert.Equal(t, ProfileAny, cfg.EffectiveProfile())
	assert.Equal(t, KeyEscape, cfg.EffectiveQuitKey())

	cfg.Major, cfg.Minor, cfg.QuitKey = 3, 3, KeyQ
	assert.True(t, cfg.HasVersion())
	assert.Equal(t, ProfileCore, cfg.EffectiveProfile())
	assert.Equal(t, KeyQ, cfg.EffectiveQuitKey())
}
