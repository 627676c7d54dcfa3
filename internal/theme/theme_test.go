package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manav03panchal/encore/internal/model"
)

func TestNew(t *testing.T) {
	dark := New(true)
	assert.True(t, dark.Dark)
	assert.Equal(t, Dark, dark.Palette)

	light := New(false)
	assert.False(t, light.Dark)
	assert.Equal(t, Light, light.Palette)

	assert.Equal(t, Accent, dark.Palette.Accent)
	assert.Equal(t, Accent, light.Palette.Accent)
}

func TestFromSettings(t *testing.T) {
	assert.False(t, FromSettings(nil).Dark)
	assert.False(t, FromSettings(model.DefaultSettings()).Dark)
	assert.True(t, FromSettings(&model.Settings{DarkMode: true}).Dark)
}

func TestPlainRendersUnchanged(t *testing.T) {
	c := Plain()
	assert.Equal(t, "Chill Vibes", c.Styles.Song.Render("Chill Vibes"))
	assert.Equal(t, "Undo", c.Styles.Button.Render("Undo"))
}

func TestBar(t *testing.T) {
	c := Plain()

	tests := []struct {
		used, total, width int
		want               string
	}{
		{0, 10, 10, "░░░░░░░░░░"},
		{5, 10, 10, "█████░░░░░"},
		{10, 10, 4, "████"},
		{20, 10, 4, "████"},
		{3, 0, 4, "░░░░"},
		{1, 1, 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Bar(tt.used, tt.total, tt.width))
	}
}

func TestToggle(t *testing.T) {
	c := New(true)
	assert.True(t, strings.Contains(c.Toggle(true), "on"))
	assert.True(t, strings.Contains(c.Toggle(false), "off"))
}
