package domain

// Config represents the application configuration
type Config struct {
	Download     DownloadConfig     `mapstructure:"download"`
	History      HistoryConfig      `mapstructure:"history"`
	Notification NotificationConfig `mapstructure:"notification"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// DownloadConfig contains download-related configuration
type DownloadConfig struct {
	OutputDir       string   `mapstructure:"output_dir"`
	CookieFile      string   `mapstructure:"cookie_file"`
	YTDLPBinary     string   `mapstructure:"ytdlp_binary"`
	LogsDir         string   `mapstructure:"logs_dir"`
	Retries         int      `mapstructure:"retries"`
	FragmentRetries int      `mapstructure:"fragment_retries"`
	RetrySleep      int      `mapstructure:"retry_sleep"` // seconds between retry attempts
	SubtitleLangs   []string `mapstructure:"subtitle_langs"`
	MergeFormat     string   `mapstructure:"merge_format"`
	UserAgent       string   `mapstructure:"user_agent"`
	// WindowsFilenames restricts output names to characters valid on
	// Windows filesystems, so archives stay portable across OSes
	WindowsFilenames bool `mapstructure:"windows_filenames"`
}

// HistoryConfig contains history store configuration
type HistoryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	DatabasePath string `mapstructure:"database_path"`
}

// NotificationConfig contains desktop notification configuration
type NotificationConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Method  string `mapstructure:"method"` // osascript, notify-send
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	FilePath   string `mapstructure:"file_path"`   // rotating JSON log file
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // rotate after this size
	MaxBackups int    `mapstructure:"max_backups"` // rotated files to keep
	Console    bool   `mapstructure:"console"`     // human-readable stdout/stderr output
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Download: DownloadConfig{
			OutputDir:       ".",
			CookieFile:      "",
			YTDLPBinary:     "yt-dlp",
			LogsDir:         "$HOME/.ytd/logs",
			Retries:         15,
			FragmentRetries: 15,
			RetrySleep:      5,
			SubtitleLangs:   []string{"ru", "en"},
			MergeFormat:     "mkv/mp4",
			UserAgent: "Mozilla/5.0 (iPhone17,5; CPU iPhone OS 18_3_2 like Mac OS X) " +
				"AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148 FireKeepers/1.7.0",
			WindowsFilenames: true,
		},
		History: HistoryConfig{
			Enabled:      true,
			DatabasePath: "$HOME/.ytd/history.db",
		},
		Notification: NotificationConfig{
			Enabled: false,
			Method:  "notify-send",
		},
		Logging: LoggingConfig{
			Level:      "info",
			FilePath:   "ytd.log",
			MaxSizeMB:  10,
			MaxBackups: 7,
			Console:    true,
		},
	}
}
