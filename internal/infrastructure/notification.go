package infrastructure

import (
	"fmt"
	"os/exec"

	"github.com/yourusername/ytd-go/internal/domain"
	"go.uber.org/zap"
)

// NotificationService sends desktop notifications when a download finishes
type NotificationService struct {
	config *domain.NotificationConfig
	logger *zap.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(config *domain.NotificationConfig, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		config: config,
		logger: logger,
	}
}

// Send sends a notification
func (n *NotificationService) Send(title, message string) error {
	if !n.config.Enabled {
		return nil
	}

	var cmd *exec.Cmd
	switch n.config.Method {
	case "osascript":
		script := fmt.Sprintf(`display notification %q with title %q`, message, title)
		cmd = exec.Command("osascript", "-e", script)
	case "notify-send":
		cmd = exec.Command("notify-send", title, message)
	default:
		n.logger.Warn("unknown notification method", zap.String("method", n.config.Method))
		return nil
	}

	if err := cmd.Run(); err != nil {
		n.logger.Error("failed to send notification",
			zap.String("method", n.config.Method),
			zap.Error(err))
		return err
	}

	return nil
}

// NotifyDownloadCompleted sends a notification when a download completes
func (n *NotificationService) NotifyDownloadCompleted(url string, kind domain.URLKind) {
	n.Send("Download Completed", fmt.Sprintf("Success: %s (%s)", truncateString(url, 40), kind))
}

// NotifyDownloadFailed sends a notification when a download fails
func (n *NotificationService) NotifyDownloadFailed(url string, kind domain.URLKind) {
	n.Send("Download Failed", fmt.Sprintf("Failed: %s (%s)", truncateString(url, 40), kind))
}

// truncateString truncates a string to the specified length
func truncateString(s string, maxLen int) string {
	// slice on runes so multibyte URLs are not cut mid-character
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
