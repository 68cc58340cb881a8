package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectTemplate_SingleVideo(t *testing.T) {
	tmpl := SelectTemplate(KindSingleVideo, "Channel", "My Video")

	assert.Equal(t, KindSingleVideo, tmpl.Kind)
	assert.Empty(t, tmpl.Dir)
	assert.Equal(t, "Channel - My Video.%(ext)s", tmpl.Pattern())
	assert.Equal(t, "Channel - My Video.mkv", tmpl.EntryPath(1, "", "mkv"))
}

func TestSelectTemplate_Playlist(t *testing.T) {
	tmpl := SelectTemplate(KindPlaylist, "Channel", "My Playlist")

	assert.Equal(t, KindPlaylist, tmpl.Kind)
	assert.Equal(t, "Channel - My Playlist", tmpl.Dir)
	assert.Equal(t, "Channel - My Playlist/%(playlist_index)03d - %(title)s.%(ext)s", tmpl.Pattern())
}

func TestOutputTemplate_EntryPath_PlaylistIndexPadding(t *testing.T) {
	tmpl := SelectTemplate(KindPlaylist, "Channel", "My Playlist")

	first := tmpl.EntryPath(1, "Intro", "mkv")
	twelfth := tmpl.EntryPath(12, "Outro", "mkv")

	assert.Equal(t, "Channel - My Playlist/001 - Intro.mkv", first)
	assert.Equal(t, "Channel - My Playlist/012 - Outro.mkv", twelfth)
}

func TestSelectTemplate_SanitizesMetadata(t *testing.T) {
	tmpl := SelectTemplate(KindSingleVideo, "Some: Channel", "A/B Testing?")

	assert.Equal(t, "Some- Channel - A-B Testing-.%(ext)s", tmpl.Pattern())
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"clean name passes through", "My Video", "My Video"},
		{"colon replaced", "Part 1: The Beginning", "Part 1- The Beginning"},
		{"slashes replaced", "AC/DC \\ Live", "AC-DC - Live"},
		{"windows reserved chars", `a<b>c"d|e?f*g`, "a-b-c-d-e-f-g"},
		{"control chars replaced", "tab\there", "tab-here"},
		{"surrounding space trimmed", "  padded  ", "padded"},
		{"empty falls back", "", "untitled"},
		{"illegal chars replaced not stripped", "///", "---"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestSanitizeFilename_Idempotent(t *testing.T) {
	inputs := []string{"Part 1: The Beginning", "AC/DC", "normal", "  x  "}

	for _, input := range inputs {
		once := SanitizeFilename(input)
		twice := SanitizeFilename(once)
		assert.Equal(t, once, twice, "re-sanitizing %q must be a no-op", input)
	}
}
