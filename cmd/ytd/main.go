package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yourusername/ytd-go/internal/app"
	"github.com/yourusername/ytd-go/internal/domain"
	"github.com/yourusername/ytd-go/internal/infrastructure"
	"github.com/yourusername/ytd-go/pkg/logger"
	"go.uber.org/zap"
)

// exit codes, part of the CLI contract
const (
	exitOK         = 0
	exitInternal   = 1 // unhandled internal error
	exitEngine     = 2 // error surfaced by the download engine
	exitValidation = 3 // unsupported host or unrecognized path shape
)

var (
	configPath string
	cookieFile string
	outputDir  string

	rootCmd = &cobra.Command{
		Use:   "ytd [url]",
		Short: "Download YouTube videos and playlists via yt-dlp",
		Long: `ytd classifies a YouTube URL as a single video or a playlist,
selects an output template and hands the download to yt-dlp with
subtitle, thumbnail, chapter and metadata embedding enabled.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := bootstrap()
			if err != nil {
				return err
			}
			defer env.close()

			return env.runner.Run(cmd.Context(), args[0], cookieFile)
		},
	}
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [url]",
	Short: "Classify a URL and show its output template without downloading",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := bootstrap()
		if err != nil {
			return err
		}
		defer env.close()

		inspection, err := env.runner.Inspect(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("URL:      %s\n", args[0])
		fmt.Printf("Kind:     %s\n", inspection.Kind)
		fmt.Printf("Author:   %s\n", inspection.Info.Author())
		fmt.Printf("Title:    %s\n", inspection.Info.TemplateTitle(inspection.Kind))
		fmt.Printf("Template: %s\n", inspection.Template.Pattern())
		if inspection.Kind == domain.KindPlaylist && inspection.Info.EntryCount > 0 {
			fmt.Printf("Entries:  %d\n", inspection.Info.EntryCount)
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded download runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := bootstrap()
		if err != nil {
			return err
		}
		defer env.close()

		if env.history == nil {
			return errors.New("history is disabled in the configuration")
		}

		status, _ := cmd.Flags().GetString("status")
		if status != "" && !domain.ValidateStatus(domain.DownloadStatus(status)) {
			return fmt.Errorf("unknown status %q", status)
		}

		downloads, err := env.history.FindAll(domain.DownloadStatus(status))
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tURL\tKIND\tSTATUS\tCREATED")
		for _, d := range downloads {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				truncate(d.ID, 8),
				truncate(d.URL, 50),
				d.Kind,
				d.Status,
				d.CreatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.Flags().StringVar(&cookieFile, "cookies", "", "Path to a Netscape-formatted cookies file")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory to place downloads in")

	historyCmd.Flags().StringP("status", "s", "", "Filter by status (processing, completed, failed)")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(historyCmd)
}

// environment holds everything a command invocation needs
type environment struct {
	log     *zap.Logger
	runner  *app.Runner
	history domain.HistoryRepository
}

func (e *environment) close() {
	if e.history != nil {
		e.history.Close()
	}
	e.log.Sync()
}

// bootstrap loads configuration and wires the logger, engine, history
// store and runner for one invocation
func bootstrap() (*environment, error) {
	config, err := app.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if outputDir != "" {
		config.Download.OutputDir = outputDir
	}

	log, err := logger.New(logger.Config{
		Level:      config.Logging.Level,
		FilePath:   config.Logging.FilePath,
		MaxSizeMB:  config.Logging.MaxSizeMB,
		MaxBackups: config.Logging.MaxBackups,
		Console:    config.Logging.Console,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	var history domain.HistoryRepository
	if config.History.Enabled {
		if err := os.MkdirAll(filepath.Dir(config.History.DatabasePath), 0755); err != nil {
			log.Warn("failed to create history directory", zap.Error(err))
		}
		repo, err := infrastructure.NewSQLiteHistoryRepository(config.History.DatabasePath)
		if err != nil {
			// a broken history store must not block downloads
			log.Warn("failed to open history store", zap.Error(err))
		} else {
			history = repo
		}
	}

	engine := infrastructure.NewYTDLPEngine(&config.Download, config.Download.LogsDir, log)
	notifier := infrastructure.NewNotificationService(&config.Notification, log)
	runner := app.NewRunner(engine, history, notifier, log)

	return &environment{
		log:     log,
		runner:  runner,
		history: history,
	}, nil
}

func truncate(s string, maxLen int) string {
	// slice on runes so multibyte titles are not cut mid-character
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// exitCodeFor maps an error onto the CLI exit-code contract
func exitCodeFor(err error) int {
	if err == nil {
		return exitOK
	}
	if domain.IsValidationError(err) {
		return exitValidation
	}
	var engineErr *infrastructure.EngineError
	if errors.As(err, &engineErr) {
		return exitEngine
	}
	return exitInternal
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCodeFor(err))
}
