package domain

import (
	"net/url"
	"strings"
)

// URLKind classifies a YouTube URL as a single video or a playlist.
type URLKind string

const (
	KindSingleVideo URLKind = "video"
	KindPlaylist    URLKind = "playlist"
)

// ValidateKind checks if a URL kind is valid.
func ValidateKind(kind URLKind) bool {
	return kind == KindSingleVideo || kind == KindPlaylist
}

// subdomain prefixes normalized away before host matching
var hostPrefixes = []string{"www.", "m.", "music."}

// Classify determines whether a YouTube URL points to a single video or
// a playlist. It is a pure function of the URL string.
//
// Rules:
//   - youtu.be links are always single videos
//   - youtube.com /watch, /shorts/<id>, /live/<id> are single videos
//   - youtube.com /playlist with a `list` query parameter is a playlist
//
// Anything else fails with *UnsupportedHostError or *UnrecognizedPathError.
func Classify(raw string) (URLKind, error) {
	if strings.TrimSpace(raw) == "" {
		return "", &UnsupportedHostError{URL: raw, Host: ""}
	}

	parsed, err := url.Parse(ensureScheme(raw))
	if err != nil {
		return "", &UnsupportedHostError{URL: raw, Host: ""}
	}

	host := normalizeHost(parsed.Hostname())

	switch host {
	case "youtu.be":
		return KindSingleVideo, nil
	case "youtube.com":
		// fall through to path inspection below
	default:
		return "", &UnsupportedHostError{URL: raw, Host: parsed.Hostname()}
	}

	path := parsed.EscapedPath()
	switch {
	case strings.HasPrefix(path, "/watch"):
		return KindSingleVideo, nil
	case strings.HasPrefix(path, "/shorts/"):
		return KindSingleVideo, nil
	case strings.HasPrefix(path, "/live/"):
		return KindSingleVideo, nil
	case strings.HasPrefix(path, "/playlist"):
		// presence of the list parameter is what matters, not its value
		if !parsed.Query().Has("list") {
			return "", &UnrecognizedPathError{URL: raw, Path: path}
		}
		return KindPlaylist, nil
	}

	return "", &UnrecognizedPathError{URL: raw, Path: path}
}

// ensureScheme prepends https:// when the URL has no http(s) scheme,
// so host parsing works on bare "youtube.com/..." input.
func ensureScheme(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}

// normalizeHost lowercases the host and strips recognized subdomain prefixes.
func normalizeHost(host string) string {
	host = strings.ToLower(host)
	for _, prefix := range hostPrefixes {
		if strings.HasPrefix(host, prefix) {
			host = strings.TrimPrefix(host, prefix)
			break
		}
	}
	return host
}
