package store

import (
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DriverDiskv stores one file per key under the base path.
	DriverDiskv = "diskv"
	// DriverSQLite stores keys in a single SQLite database file.
	DriverSQLite = "sqlite"
	// DriverMemory keeps everything in process; used by tests and --ephemeral.
	DriverMemory = "memory"

	defaultPath         = "~/.kondate.db"
	defaultSuggestDelay = 300 * time.Millisecond
)

// Config describes where and how planner state is persisted.
type Config interface {
	BasePath() string
	Driver() string
}

// FileConfig is the viper-backed configuration of the kondate binary.
type FileConfig struct {
	Path         string        `json:"path"`
	Backend      string        `json:"driver"`
	SuggestDelay time.Duration `json:"suggest_delay"`
	LogLevel     string        `json:"log_level"`
}

// LoadConfig reads .kondate.yaml from KONDATE_CONFIG_PATH or the working
// directory, then applies KONDATE_* environment overrides.
func LoadConfig() (*FileConfig, error) {
	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("driver", DriverDiskv)
	v.SetDefault("suggest_delay", defaultSuggestDelay)
	v.SetDefault("log_level", "warn")
	v.SetConfigName(".kondate") // .yaml is implicit
	v.SetEnvPrefix("KONDATE")
	v.AutomaticEnv()

	if override := os.Getenv("KONDATE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	driver := strings.ToLower(strings.TrimSpace(v.GetString("driver")))
	switch driver {
	case DriverDiskv, DriverSQLite, DriverMemory:
	default:
		return nil, fmt.Errorf("store: unknown driver %q", driver)
	}

	delay := v.GetDuration("suggest_delay")
	if delay <= 0 {
		delay = defaultSuggestDelay
	}

	return &FileConfig{
		Path:         path,
		Backend:      driver,
		SuggestDelay: delay,
		LogLevel:     v.GetString("log_level"),
	}, nil
}

func (f *FileConfig) BasePath() string {
	return f.Path
}

func (f *FileConfig) Driver() string {
	if f.Backend == "" {
		return DriverDiskv
	}
	return f.Backend
}
