package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/yourusername/ytd-go/internal/domain"
	"go.uber.org/zap"
)

// format selector: prefer ru+en audio tracks alongside the best video,
// degrading to whatever combination is available
const formatSelector = "bestvideo+bestaudio[language^=ru]+bestaudio[language^=en]/" +
	"bestvideo+bestaudio[language^=ru]/" +
	"bestvideo+bestaudio[language^=en]/" +
	"bestvideo+bestaudio/best"

// EngineError wraps a failure reported by the external download engine.
type EngineError struct {
	Engine   string
	ExitCode int
	Err      error
}

func (e *EngineError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s exited with code %d: %v", e.Engine, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Engine, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

// YTDLPEngine implements domain.Engine by shelling out to the yt-dlp binary.
// Stream selection, retry and post-processing all happen inside yt-dlp;
// this type only assembles its command line.
type YTDLPEngine struct {
	config  *domain.DownloadConfig
	logsDir string
	logger  *zap.Logger
}

// NewYTDLPEngine creates a new yt-dlp engine
func NewYTDLPEngine(config *domain.DownloadConfig, logsDir string, logger *zap.Logger) *YTDLPEngine {
	return &YTDLPEngine{
		config:  config,
		logsDir: logsDir,
		logger:  logger,
	}
}

// Name returns the engine binary name
func (e *YTDLPEngine) Name() string {
	return e.config.YTDLPBinary
}

// Probe extracts metadata for a URL without downloading anything.
// Playlists are probed flat so the engine does not resolve every entry.
func (e *YTDLPEngine) Probe(ctx context.Context, rawURL string, kind domain.URLKind) (*domain.MediaInfo, error) {
	args := []string{"-J", "--skip-download", "--no-warnings"}
	if kind == domain.KindPlaylist {
		args = append(args, "--flat-playlist")
	}
	args = e.appendCookies(args)
	args = append(args, rawURL)

	cmd := exec.CommandContext(ctx, e.config.YTDLPBinary, args...)
	out, err := cmd.Output()
	if err != nil {
		return nil, &EngineError{Engine: e.Name(), ExitCode: exitCode(err), Err: fmt.Errorf("metadata probe failed: %w", err)}
	}

	return parseProbeOutput(out, kind), nil
}

// parseProbeOutput maps yt-dlp's -J info JSON onto MediaInfo
func parseProbeOutput(data []byte, kind domain.URLKind) *domain.MediaInfo {
	root := gjson.ParseBytes(data)

	info := &domain.MediaInfo{
		ID:         root.Get("id").String(),
		Title:      root.Get("title").String(),
		Channel:    root.Get("channel").String(),
		Uploader:   root.Get("uploader").String(),
		Creator:    root.Get("creator").String(),
		UploaderID: root.Get("uploader_id").String(),
	}

	if kind == domain.KindPlaylist {
		// for playlist dumps the top-level title is the playlist title
		info.PlaylistTitle = root.Get("title").String()
		info.EntryCount = int(root.Get("playlist_count").Int())
		if info.EntryCount == 0 {
			info.EntryCount = int(root.Get("entries.#").Int())
		}
		// channel metadata may only be present on the entries
		if info.Channel == "" && info.Uploader == "" {
			info.Channel = root.Get("entries.0.channel").String()
			info.Uploader = root.Get("entries.0.uploader").String()
		}
	}

	return info
}

// Download invokes yt-dlp for the actual transfer and post-processing.
// Raw engine output goes to a dated log file and, line by line, into
// the structured logger.
func (e *YTDLPEngine) Download(ctx context.Context, req domain.DownloadRequest) error {
	if err := os.MkdirAll(e.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	args := e.buildDownloadArgs(req)

	engineLog, err := e.openLogFile()
	if err != nil {
		return fmt.Errorf("failed to open engine log file: %w", err)
	}
	defer engineLog.Close()

	cmdLine := ShellEscapeCommand(e.config.YTDLPBinary, args...)
	e.writeLogHeader(engineLog, req.URL, cmdLine)
	e.logger.Debug("invoking engine", zap.String("command", cmdLine))

	// tee engine output: raw lines to the dated log file, parsed lines
	// into zap at the level yt-dlp tagged them with
	router := NewEngineOutputRouter(e.logger, engineLog)
	defer router.Flush()

	cmd := exec.CommandContext(ctx, e.config.YTDLPBinary, args...)
	cmd.Stdout = router
	cmd.Stderr = router

	if err := cmd.Run(); err != nil {
		e.writeLogFooter(engineLog, false, err.Error())
		return &EngineError{Engine: e.Name(), ExitCode: exitCode(err), Err: err}
	}

	e.writeLogFooter(engineLog, true, "download complete")
	return nil
}

// buildDownloadArgs assembles the full yt-dlp command line for a request
func (e *YTDLPEngine) buildDownloadArgs(req domain.DownloadRequest) []string {
	args := []string{
		"-f", formatSelector,
		"--audio-multistreams",
		"-o", req.Template.Pattern(),
		"-P", e.config.OutputDir,
		"--merge-output-format", e.config.MergeFormat,

		// subtitle, thumbnail, chapter and metadata embedding
		"--write-subs",
		"--sub-langs", strings.Join(e.config.SubtitleLangs, ","),
		"--embed-subs",
		"--write-thumbnail",
		"--embed-thumbnail",
		"--embed-metadata",
		"--embed-chapters",
		"--embed-info-json",

		// transfer behaviour; retry policy lives in the engine, not here
		"--continue",
		"--retries", strconv.Itoa(e.config.Retries),
		"--fragment-retries", strconv.Itoa(e.config.FragmentRetries),
		"--retry-sleep", strconv.Itoa(e.config.RetrySleep),
		"--abort-on-unavailable-fragments",

		"--no-progress",
		"--compat-options", "no-certifi",
	}

	if e.config.WindowsFilenames {
		args = append(args, "--windows-filenames")
	}

	if e.config.UserAgent != "" {
		args = append(args, "--user-agent", e.config.UserAgent)
	}

	// an explicit per-request cookie file overrides the configured one
	if req.CookieFile != "" {
		args = append(args, "--cookies", req.CookieFile)
	} else {
		args = e.appendCookies(args)
	}

	return append(args, req.URL)
}

// appendCookies adds the configured cookie file when it exists
func (e *YTDLPEngine) appendCookies(args []string) []string {
	if e.config.CookieFile != "" && fileExists(e.config.CookieFile) {
		args = append(args, "--cookies", e.config.CookieFile)
	}
	return args
}

// openLogFile opens the engine output log file for today
func (e *YTDLPEngine) openLogFile() (*os.File, error) {
	if err := os.MkdirAll(e.logsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	dateStr := time.Now().Format("20060102")
	logPath := filepath.Join(e.logsDir, "engine-"+dateStr+".log")
	return os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}

// writeLogHeader writes the download start marker
func (e *YTDLPEngine) writeLogHeader(file *os.File, url, cmdLine string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	file.WriteString(fmt.Sprintf("\n=== [%s] Download: %s ===\n", timestamp, url))
	file.WriteString(fmt.Sprintf("$ %s\n", cmdLine))
}

// writeLogFooter writes the download end marker
func (e *YTDLPEngine) writeLogFooter(file *os.File, success bool, message string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	status := "SUCCESS"
	if !success {
		status = "FAILED"
	}
	file.WriteString(fmt.Sprintf("[%s] %s: %s\n", timestamp, status, message))
	file.WriteString("=== END ===\n\n")
}

// exitCode extracts the process exit code from an exec error, -1 if unknown
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
