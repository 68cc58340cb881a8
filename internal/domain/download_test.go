package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDownload(t *testing.T) {
	url := "https://www.youtube.com/watch?v=abc"

	download := NewDownload(url, KindSingleVideo)

	assert.NotEmpty(t, download.ID)
	assert.Equal(t, url, download.URL)
	assert.Equal(t, KindSingleVideo, download.Kind)
	assert.Equal(t, StatusProcessing, download.Status)
	assert.Nil(t, download.CompletedAt)
}

func TestDownload_SetTemplate(t *testing.T) {
	download := NewDownload("https://youtu.be/abc", KindSingleVideo)
	tmpl := SelectTemplate(KindSingleVideo, "Channel", "My Video")

	download.SetTemplate(tmpl, "Channel", "My Video")

	assert.Equal(t, "Channel - My Video.%(ext)s", download.Template)
	assert.Equal(t, "Channel", download.Channel)
	assert.Equal(t, "My Video", download.Title)
}

func TestDownload_MarkCompleted(t *testing.T) {
	download := NewDownload("https://youtu.be/abc", KindSingleVideo)

	download.MarkCompleted()

	assert.Equal(t, StatusCompleted, download.Status)
	assert.NotNil(t, download.CompletedAt)
	assert.True(t, download.IsTerminal())
}

func TestDownload_MarkFailed(t *testing.T) {
	download := NewDownload("https://youtu.be/abc", KindSingleVideo)

	download.MarkFailed(errors.New("engine exited with code 1"))

	assert.Equal(t, StatusFailed, download.Status)
	assert.Equal(t, "engine exited with code 1", download.ErrorMessage)
	assert.True(t, download.IsTerminal())
}

func TestValidateStatus(t *testing.T) {
	assert.True(t, ValidateStatus(StatusProcessing))
	assert.True(t, ValidateStatus(StatusCompleted))
	assert.True(t, ValidateStatus(StatusFailed))
	assert.False(t, ValidateStatus("queued"))
}

func TestMediaInfo_Author(t *testing.T) {
	tests := []struct {
		name     string
		info     MediaInfo
		expected string
	}{
		{"channel preferred", MediaInfo{Channel: "Chan", Uploader: "Up"}, "Chan"},
		{"uploader fallback", MediaInfo{Uploader: "Up", Creator: "Cr"}, "Up"},
		{"creator fallback", MediaInfo{Creator: "Cr", UploaderID: "@handle"}, "Cr"},
		{"uploader id last", MediaInfo{UploaderID: "@handle"}, "handle"},
		{"at prefix stripped", MediaInfo{Channel: "@SomeChannel"}, "SomeChannel"},
		{"nothing known", MediaInfo{}, "Unknown Author"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.info.Author())
		})
	}
}

func TestMediaInfo_TemplateTitle(t *testing.T) {
	info := MediaInfo{Title: "Video Title", PlaylistTitle: "Playlist Title"}

	assert.Equal(t, "Video Title", info.TemplateTitle(KindSingleVideo))
	assert.Equal(t, "Playlist Title", info.TemplateTitle(KindPlaylist))

	// playlist probe without a playlist title falls back to the entry title
	assert.Equal(t, "Video Title", MediaInfo{Title: "Video Title"}.TemplateTitle(KindPlaylist))
}
