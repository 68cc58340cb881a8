package domain

import (
	"time"

	"github.com/google/uuid"
)

// DownloadStatus represents the current status of a download run
type DownloadStatus string

const (
	StatusProcessing DownloadStatus = "processing"
	StatusCompleted  DownloadStatus = "completed"
	StatusFailed     DownloadStatus = "failed"
)

// ValidateStatus checks if a download status is valid
func ValidateStatus(status DownloadStatus) bool {
	return status == StatusProcessing || status == StatusCompleted || status == StatusFailed
}

// Download represents one recorded invocation in the history store
type Download struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	URL          string         `json:"url" gorm:"not null"`
	Kind         URLKind        `json:"kind" gorm:"not null"`
	Status       DownloadStatus `json:"status" gorm:"not null;index"`
	Template     string         `json:"template,omitempty"`
	Channel      string         `json:"channel,omitempty"`
	Title        string         `json:"title,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
}

// NewDownload creates a new download record for a classified URL
func NewDownload(url string, kind URLKind) *Download {
	now := time.Now()
	return &Download{
		ID:        uuid.New().String(),
		URL:       url,
		Kind:      kind,
		Status:    StatusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetTemplate records the selected output template and its inputs
func (d *Download) SetTemplate(tmpl OutputTemplate, channel, title string) {
	d.Template = tmpl.Pattern()
	d.Channel = channel
	d.Title = title
	d.UpdatedAt = time.Now()
}

// MarkCompleted marks the run as completed
func (d *Download) MarkCompleted() {
	d.Status = StatusCompleted
	now := time.Now()
	d.CompletedAt = &now
	d.UpdatedAt = now
}

// MarkFailed marks the run as failed
func (d *Download) MarkFailed(err error) {
	d.Status = StatusFailed
	d.ErrorMessage = err.Error()
	d.UpdatedAt = time.Now()
}

// IsTerminal checks if the run reached a terminal state
func (d *Download) IsTerminal() bool {
	return d.Status == StatusCompleted || d.Status == StatusFailed
}
