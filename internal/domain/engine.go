package domain

import "context"

// DownloadRequest carries everything the engine needs for one transfer.
type DownloadRequest struct {
	URL        string
	Kind       URLKind
	Template   OutputTemplate
	CookieFile string
}

// Engine is the external download engine. It owns stream selection,
// transport, retry and post-processing; this tool only configures it.
type Engine interface {
	// Probe extracts metadata for a URL without downloading anything.
	Probe(ctx context.Context, rawURL string, kind URLKind) (*MediaInfo, error)

	// Download performs the actual transfer and post-processing.
	Download(ctx context.Context, req DownloadRequest) error

	// Name identifies the engine binary for logging.
	Name() string
}
