package cli

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configBaseName = ".gitchurn"
	envPrefix      = "GITCHURN"

	baselineKey    = "baseline"
	devPrefixKey   = "branch.dev_prefix"
	sourceRootKey  = "paths.source"
	controlPathKey = "paths.control"
	maxDepthKey    = "mutate.max_depth"
	seedKey        = "seed"
	quietKey       = "quiet"
	colorKey       = "color"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultBaseline      = "main"
	defaultDevPrefix     = "dev/"
	defaultSourceRoot    = "."
	defaultMaxDepth      = 2
	defaultColor         = "auto"
	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// initConfig reads the optional config file and environment. Explicit flags
// override file values through viper's flag binding. A missing config file
// is not an error.
func initConfig(configFile string) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(configBaseName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(baselineKey, defaultBaseline)
	viper.SetDefault(devPrefixKey, defaultDevPrefix)
	viper.SetDefault(sourceRootKey, defaultSourceRoot)
	viper.SetDefault(controlPathKey, "")
	viper.SetDefault(maxDepthKey, defaultMaxDepth)
	viper.SetDefault(seedKey, 0)
	viper.SetDefault(quietKey, false)
	viper.SetDefault(colorKey, defaultColor)

	viper.SetDefault(logFilenameKey, "")
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		// Only a search miss is tolerated; an explicit --config path that
		// cannot be read, or a malformed file, is a real error.
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return err
		}
	}

	configureLogger()
	return nil
}

func parseSlogLevel(level string, defaultLevel slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// defaultLogPath places the log under the user cache directory, outside any
// repository, so the log file never shows up in the histories being churned.
func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "gitchurn", "gitchurn.log")
}

// configureLogger configures the global slog logger to write to a rotating
// log file.
func configureLogger() {
	filename := viper.GetString(logFilenameKey)
	if filename == "" {
		filename = defaultLogPath()
	}

	logWriter := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo),
	})

	slog.SetDefault(slog.New(handler))
}
