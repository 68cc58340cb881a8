package app

import (
	"context"

	"github.com/yourusername/ytd-go/internal/domain"
	"github.com/yourusername/ytd-go/internal/infrastructure"
	"go.uber.org/zap"
)

// Runner executes one download invocation: classify the URL, probe
// metadata, select the output template, hand the request to the engine
// and record the run in the history store.
type Runner struct {
	engine   domain.Engine
	history  domain.HistoryRepository // nil when history is disabled
	notifier *infrastructure.NotificationService
	logger   *zap.Logger
}

// NewRunner creates a new runner
func NewRunner(
	engine domain.Engine,
	history domain.HistoryRepository,
	notifier *infrastructure.NotificationService,
	logger *zap.Logger,
) *Runner {
	return &Runner{
		engine:   engine,
		history:  history,
		notifier: notifier,
		logger:   logger,
	}
}

// Inspection is the result of classifying a URL without downloading
type Inspection struct {
	Kind     domain.URLKind
	Info     *domain.MediaInfo
	Template domain.OutputTemplate
}

// Inspect classifies a URL and resolves its output template without
// starting a download.
func (r *Runner) Inspect(ctx context.Context, rawURL string) (*Inspection, error) {
	kind, err := domain.Classify(rawURL)
	if err != nil {
		r.logger.Error("invalid_url", zap.String("url", rawURL), zap.Error(err))
		return nil, err
	}

	info, err := r.engine.Probe(ctx, rawURL, kind)
	if err != nil {
		return nil, err
	}

	tmpl := domain.SelectTemplate(kind, info.Author(), info.TemplateTitle(kind))

	// one structured record per classification decision
	r.logger.Info("url_classified",
		zap.String("url", rawURL),
		zap.String("kind", string(kind)),
		zap.String("template", tmpl.Pattern()))

	return &Inspection{Kind: kind, Info: info, Template: tmpl}, nil
}

// Run performs a full download invocation. Validation errors are
// terminal; engine errors propagate without local retry, the retry
// policy belongs to the engine.
func (r *Runner) Run(ctx context.Context, rawURL, cookieFile string) error {
	inspection, err := r.Inspect(ctx, rawURL)
	if err != nil {
		return err
	}

	record := domain.NewDownload(rawURL, inspection.Kind)
	record.SetTemplate(inspection.Template, inspection.Info.Author(), inspection.Info.TemplateTitle(inspection.Kind))
	r.recordCreate(record)

	r.logger.Info("download_started",
		zap.String("id", record.ID),
		zap.String("url", rawURL),
		zap.String("kind", string(inspection.Kind)),
		zap.String("engine", r.engine.Name()))

	req := domain.DownloadRequest{
		URL:        rawURL,
		Kind:       inspection.Kind,
		Template:   inspection.Template,
		CookieFile: cookieFile,
	}

	if err := r.engine.Download(ctx, req); err != nil {
		record.MarkFailed(err)
		r.recordUpdate(record)
		r.logger.Error("download_failed",
			zap.String("id", record.ID),
			zap.String("url", rawURL),
			zap.Error(err))
		if r.notifier != nil {
			r.notifier.NotifyDownloadFailed(rawURL, inspection.Kind)
		}
		return err
	}

	record.MarkCompleted()
	r.recordUpdate(record)
	r.logger.Info("download_completed",
		zap.String("id", record.ID),
		zap.String("url", rawURL),
		zap.String("template", inspection.Template.Pattern()))
	if r.notifier != nil {
		r.notifier.NotifyDownloadCompleted(rawURL, inspection.Kind)
	}

	return nil
}

// recordCreate writes the history row; history failures are logged,
// never fatal for the download itself
func (r *Runner) recordCreate(record *domain.Download) {
	if r.history == nil {
		return
	}
	if err := r.history.Create(record); err != nil {
		r.logger.Warn("failed to record history", zap.Error(err))
	}
}

func (r *Runner) recordUpdate(record *domain.Download) {
	if r.history == nil {
		return
	}
	if err := r.history.Update(record); err != nil {
		r.logger.Warn("failed to update history", zap.Error(err))
	}
}
