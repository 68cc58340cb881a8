package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/yourusername/ytd-go/internal/domain"
)

// LoadConfig loads configuration from file and environment
func LoadConfig(configPath string) (*domain.Config, error) {
	config := domain.DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	// viper only resolves env vars for keys it already knows, so the
	// defaults must be registered with viper itself or YTD_* overrides
	// would be ignored for keys absent from the config file
	setDefaults(v, config)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.ytd")
		v.AddConfigPath("/etc/ytd")
	}

	v.SetEnvPrefix("YTD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// config file not found, use defaults
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config = expandPaths(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func setDefaults(v *viper.Viper, config *domain.Config) {
	v.SetDefault("download.output_dir", config.Download.OutputDir)
	v.SetDefault("download.cookie_file", config.Download.CookieFile)
	v.SetDefault("download.ytdlp_binary", config.Download.YTDLPBinary)
	v.SetDefault("download.logs_dir", config.Download.LogsDir)
	v.SetDefault("download.retries", config.Download.Retries)
	v.SetDefault("download.fragment_retries", config.Download.FragmentRetries)
	v.SetDefault("download.retry_sleep", config.Download.RetrySleep)
	v.SetDefault("download.subtitle_langs", config.Download.SubtitleLangs)
	v.SetDefault("download.merge_format", config.Download.MergeFormat)
	v.SetDefault("download.user_agent", config.Download.UserAgent)
	v.SetDefault("download.windows_filenames", config.Download.WindowsFilenames)
	v.SetDefault("history.enabled", config.History.Enabled)
	v.SetDefault("history.database_path", config.History.DatabasePath)
	v.SetDefault("notification.enabled", config.Notification.Enabled)
	v.SetDefault("notification.method", config.Notification.Method)
	v.SetDefault("logging.level", config.Logging.Level)
	v.SetDefault("logging.file_path", config.Logging.FilePath)
	v.SetDefault("logging.max_size_mb", config.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", config.Logging.MaxBackups)
	v.SetDefault("logging.console", config.Logging.Console)
}

// expandPaths expands environment variables in path configurations
func expandPaths(config *domain.Config) *domain.Config {
	config.Download.OutputDir = expandPath(config.Download.OutputDir)
	config.Download.CookieFile = expandPath(config.Download.CookieFile)
	config.Download.LogsDir = expandPath(config.Download.LogsDir)
	config.History.DatabasePath = expandPath(config.History.DatabasePath)
	config.Logging.FilePath = expandPath(config.Logging.FilePath)
	return config
}

// expandPath expands environment variables and ~ in paths
func expandPath(path string) string {
	path = os.ExpandEnv(path)

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return path
}

// validateConfig validates the configuration
func validateConfig(config *domain.Config) error {
	if config.Download.OutputDir == "" {
		return fmt.Errorf("download output directory not configured")
	}

	if config.Download.YTDLPBinary == "" {
		return fmt.Errorf("yt-dlp binary not configured")
	}

	if config.Download.Retries < 0 || config.Download.FragmentRetries < 0 {
		return fmt.Errorf("retry counts cannot be negative")
	}

	if config.History.Enabled && config.History.DatabasePath == "" {
		return fmt.Errorf("history database path not configured")
	}

	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	return nil
}
