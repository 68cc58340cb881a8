package infrastructure

import (
	"bytes"
	"io"
	"strings"

	"go.uber.org/zap"
)

// EngineOutputRouter routes yt-dlp process output to two sinks: the raw
// stream is copied verbatim to a log file, and each complete line is
// dispatched into the structured logger at the level yt-dlp tagged it
// with ("[debug]", "WARNING:", "ERROR:" prefixes; everything else is info).
type EngineOutputRouter struct {
	logger *zap.Logger
	raw    io.Writer
	buf    bytes.Buffer
}

// NewEngineOutputRouter creates a router. raw may be nil when no file
// sink is wanted.
func NewEngineOutputRouter(logger *zap.Logger, raw io.Writer) *EngineOutputRouter {
	return &EngineOutputRouter{
		logger: logger,
		raw:    raw,
	}
}

// Write implements io.Writer. Partial lines are buffered until the
// newline arrives.
func (r *EngineOutputRouter) Write(p []byte) (int, error) {
	if r.raw != nil {
		r.raw.Write(p)
	}

	r.buf.Write(p)
	for {
		line, err := r.buf.ReadString('\n')
		if err != nil {
			// incomplete line, keep it buffered
			r.buf.WriteString(line)
			break
		}
		r.dispatch(strings.TrimRight(line, "\r\n"))
	}

	return len(p), nil
}

// Flush dispatches any trailing output that did not end in a newline.
func (r *EngineOutputRouter) Flush() {
	if r.buf.Len() > 0 {
		r.dispatch(r.buf.String())
		r.buf.Reset()
	}
}

func (r *EngineOutputRouter) dispatch(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	switch {
	case strings.HasPrefix(line, "[debug]"):
		detail := strings.TrimSpace(strings.TrimPrefix(line, "[debug]"))
		r.logger.Debug("engine_debug", zap.String("detail", detail))
	case strings.HasPrefix(line, "WARNING:"):
		detail := strings.TrimSpace(strings.TrimPrefix(line, "WARNING:"))
		r.logger.Warn("engine_warning", zap.String("detail", detail))
	case strings.HasPrefix(line, "ERROR:"):
		detail := strings.TrimSpace(strings.TrimPrefix(line, "ERROR:"))
		r.logger.Error("engine_error", zap.String("detail", detail))
	default:
		r.logger.Info("engine_info", zap.String("detail", line))
	}
}
