package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Keys double as environment variable names and are read verbatim.
const (
	Port           = "SUBNETREG_PORT"
	DataDir        = "SUBNETREG_DATA_DIR"
	SubnetFile     = "SUBNETREG_SUBNET_FILE"
	SiteFile       = "SUBNETREG_SITE_FILE"
	RejectOverlaps = "SUBNETREG_REJECT_OVERLAPS"
	LogLevel       = "SUBNETREG_LOG_LEVEL"
	ReadTimeout    = "SUBNETREG_READ_TIMEOUT"
	WriteTimeout   = "SUBNETREG_WRITE_TIMEOUT"
	AuthEnabled    = "SUBNETREG_AUTH_ENABLED"
	AuthIssuer     = "SUBNETREG_AUTH_ISSUER"
	AuthAudience   = "SUBNETREG_AUTH_AUDIENCE"
	AuthJWKSURL    = "SUBNETREG_AUTH_JWKS_URL"
)

type Settings struct {
	Port           string
	DataDir        string
	SubnetFile     string
	SiteFile       string
	RejectOverlaps bool
	LogLevel       slog.Level
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AuthEnabled    bool
	AuthIssuer     string
	AuthAudience   string
	AuthJWKSURL    string
}

// SubnetStorePath is the subnet registry document inside the data dir.
func (s Settings) SubnetStorePath() string {
	return filepath.Join(s.DataDir, s.SubnetFile)
}

// SiteStorePath is the site registry document inside the data dir.
func (s Settings) SiteStorePath() string {
	return filepath.Join(s.DataDir, s.SiteFile)
}

// Load builds Settings from defaults, an optional subnet-registry.yaml
// in the working directory, and the environment, in ascending
// precedence.
func Load() (Settings, error) {
	v := viper.New()

	v.SetDefault(Port, "8080")
	v.SetDefault(DataDir, "data")
	v.SetDefault(SubnetFile, "subnets.json")
	v.SetDefault(SiteFile, "sites.json")
	v.SetDefault(RejectOverlaps, false)
	v.SetDefault(LogLevel, "info")
	v.SetDefault(ReadTimeout, "3s")
	v.SetDefault(WriteTimeout, "3s")
	v.SetDefault(AuthEnabled, false)
	v.SetDefault(AuthIssuer, "")
	v.SetDefault(AuthAudience, "")
	v.SetDefault(AuthJWKSURL, "")

	v.SetConfigName("subnet-registry")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(LogLevel))); err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", LogLevel, err)
	}

	s := Settings{
		Port:           v.GetString(Port),
		DataDir:        v.GetString(DataDir),
		SubnetFile:     v.GetString(SubnetFile),
		SiteFile:       v.GetString(SiteFile),
		RejectOverlaps: v.GetBool(RejectOverlaps),
		LogLevel:       level,
		ReadTimeout:    v.GetDuration(ReadTimeout),
		WriteTimeout:   v.GetDuration(WriteTimeout),
		AuthEnabled:    v.GetBool(AuthEnabled),
		AuthIssuer:     v.GetString(AuthIssuer),
		AuthAudience:   v.GetString(AuthAudience),
		AuthJWKSURL:    v.GetString(AuthJWKSURL),
	}

	if s.AuthEnabled && s.AuthIssuer == "" && s.AuthJWKSURL == "" {
		return Settings{}, fmt.Errorf("%s requires %s or %s", AuthEnabled, AuthIssuer, AuthJWKSURL)
	}
	return s, nil
}
