package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// engine placeholders expanded by yt-dlp, not by us
const (
	extPlaceholder       = "%(ext)s"
	entryFilePlaceholder = "%(playlist_index)03d - %(title)s.%(ext)s"
)

// fallback when sanitization strips a name down to nothing
const defaultName = "untitled"

var illegalFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// SanitizeFilename replaces characters that are invalid in filenames on
// common filesystems with "-" and trims surrounding whitespace. Applying
// it to an already-sanitized string is a no-op.
func SanitizeFilename(name string) string {
	clean := illegalFilenameChars.ReplaceAllString(name, "-")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return defaultName
	}
	return clean
}

// OutputTemplate describes how downloaded files are named and placed.
// It is a derived value: computed per invocation from the URL kind and
// the metadata probe, never persisted.
type OutputTemplate struct {
	Kind URLKind

	// Dir is the playlist directory ("<channel> - <playlist title>").
	// Empty for single videos.
	Dir string

	// File is the filename part. For single videos the channel and title
	// are literal; for playlists it carries the engine's per-entry
	// placeholders with a 3-digit zero-padded index.
	File string
}

// SelectTemplate computes the output template for a classified URL.
// channel and title come from the engine's metadata probe; for playlists
// title is the playlist title. Both are sanitized before use.
func SelectTemplate(kind URLKind, channel, title string) OutputTemplate {
	channel = SanitizeFilename(channel)
	title = SanitizeFilename(title)

	if kind == KindPlaylist {
		return OutputTemplate{
			Kind: kind,
			Dir:  fmt.Sprintf("%s - %s", channel, title),
			File: entryFilePlaceholder,
		}
	}

	return OutputTemplate{
		Kind: kind,
		File: fmt.Sprintf("%s - %s.%s", channel, title, extPlaceholder),
	}
}

// Pattern returns the template in yt-dlp output-template syntax.
func (t OutputTemplate) Pattern() string {
	if t.Dir == "" {
		return t.File
	}
	return t.Dir + "/" + t.File
}

// EntryPath expands the template for a concrete entry. For playlists,
// index is the 1-based position in the engine's enumeration order and
// title the entry title; for single videos both are ignored apart from
// the extension.
func (t OutputTemplate) EntryPath(index int, title, ext string) string {
	if t.Kind == KindPlaylist {
		return fmt.Sprintf("%s/%03d - %s.%s", t.Dir, index, SanitizeFilename(title), ext)
	}
	return strings.ReplaceAll(t.File, extPlaceholder, ext)
}
