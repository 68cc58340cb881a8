package domain

// HistoryRepository defines the interface for download history storage
type HistoryRepository interface {
	// Create creates a new download record
	Create(download *Download) error

	// Update updates an existing download record
	Update(download *Download) error

	// FindByID finds a download record by ID
	FindByID(id string) (*Download, error)

	// FindAll returns records newest first, optionally filtered by status
	FindAll(status DownloadStatus) ([]*Download, error)

	// CountByStatus returns the number of records with a given status
	CountByStatus(status DownloadStatus) (int64, error)

	// Close closes the underlying store
	Close() error
}
