package domain

import "strings"

// MediaInfo holds metadata extracted by the engine's probe step,
// before any download happens.
type MediaInfo struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Channel       string `json:"channel,omitempty"`
	Uploader      string `json:"uploader,omitempty"`
	Creator       string `json:"creator,omitempty"`
	UploaderID    string `json:"uploader_id,omitempty"`
	PlaylistTitle string `json:"playlist_title,omitempty"`
	EntryCount    int    `json:"entry_count,omitempty"`
}

// Author resolves the channel/author name using the first non-empty
// candidate. A leading "@" (handle-style uploader ids) is stripped.
func (m MediaInfo) Author() string {
	author := firstNonEmpty(m.Channel, m.Uploader, m.Creator, m.UploaderID)
	if author == "" {
		return "Unknown Author"
	}
	return strings.TrimPrefix(author, "@")
}

// TemplateTitle returns the title used for template selection:
// the playlist title for playlists, the video title otherwise.
func (m MediaInfo) TemplateTitle(kind URLKind) string {
	if kind == KindPlaylist && m.PlaylistTitle != "" {
		return m.PlaylistTitle
	}
	return m.Title
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
