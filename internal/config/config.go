// Package config resolves NoKnock settings.
//
// Layers, lowest to highest precedence: built-in defaults, the user's
// config-dir .env, the working-dir .env, noknock.yaml, NOKNOCK_* environment
// variables and finally command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys understood by Load. Flags with the same names are bound automatically.
const (
	KeyDataFile  = "data-file"
	KeyAutosave  = "autosave"
	KeyLogLevel  = "log-level"
	KeyLogFile   = "log-file"
	KeyTestMode  = "test-mode"
	KeyExportDir = "export-dir"
	KeyStyle     = "style"
	KeyTheme     = "theme"
)

// EnvPrefix prefixes every environment variable, e.g. NOKNOCK_DATA_FILE.
const EnvPrefix = "NOKNOCK"

// ErrInvalidConfig reports a setting outside its allowed values.
var ErrInvalidConfig = errors.New("invalid configuration")

var (
	validStyles = []string{"auto", "plain", "styled", "json"}
	validThemes = []string{"default", "dark", "light", "plain"}
)

// Config is the resolved application configuration.
type Config struct {
	DataFile  string
	Autosave  bool
	LogLevel  string
	LogFile   string
	TestMode  bool
	ExportDir string
	Style     string
	Theme     string
	// Source is the config file that was read, empty when none was found.
	Source string
}

// Options control where Load looks. Zero values mean the real environment.
type Options struct {
	Flags *pflag.FlagSet
	// ConfigFile names an explicit config file; it must exist.
	ConfigFile string
	// UserConfigDir overrides os.UserConfigDir()/noknock.
	UserConfigDir string
	// WorkDir overrides the current working directory.
	WorkDir string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataFile, filepath.Join("data", "noknock.json"))
	v.SetDefault(KeyAutosave, true)
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTestMode, false)
	v.SetDefault(KeyExportDir, "exports")
	v.SetDefault(KeyStyle, "auto")
	v.SetDefault(KeyTheme, "default")
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		if err := v.BindPFlags(opts.Flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	workDir, err := resolveWorkDir(opts.WorkDir)
	if err != nil {
		return nil, err
	}
	userDir := resolveUserConfigDir(opts.UserConfigDir)

	source, err := readConfigFile(v, opts.ConfigFile, workDir, userDir)
	if err != nil {
		return nil, err
	}

	// .env files never apply in test mode, wherever test mode was set.
	if !v.GetBool(KeyTestMode) {
		for _, dir := range []string{userDir, workDir} {
			if dir == "" {
				continue
			}
			if err := applyDotEnv(v, filepath.Join(dir, ".env")); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		DataFile:  strings.TrimSpace(v.GetString(KeyDataFile)),
		Autosave:  v.GetBool(KeyAutosave),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFile:   v.GetString(KeyLogFile),
		TestMode:  v.GetBool(KeyTestMode),
		ExportDir: strings.TrimSpace(v.GetString(KeyExportDir)),
		Style:     strings.ToLower(strings.TrimSpace(v.GetString(KeyStyle))),
		Theme:     strings.ToLower(strings.TrimSpace(v.GetString(KeyTheme))),
		Source:    source,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting against its allowed values.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, KeyDataFile)
	}
	if c.ExportDir == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, KeyExportDir)
	}
	if !slices.Contains(validStyles, c.Style) {
		return fmt.Errorf("%w: %s must be one of %s, got %q",
			ErrInvalidConfig, KeyStyle, strings.Join(validStyles, ", "), c.Style)
	}
	if !slices.Contains(validThemes, c.Theme) {
		return fmt.Errorf("%w: %s must be one of %s, got %q",
			ErrInvalidConfig, KeyTheme, strings.Join(validThemes, ", "), c.Theme)
	}
	return nil
}

// applyDotEnv layers NOKNOCK_* entries of a .env file over the defaults.
// A missing file is not an error.
func applyDotEnv(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	envMap, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("failed to parse .env file %s: %w", path, err)
	}

	prefix := EnvPrefix + "_"
	for key, value := range envMap {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		name := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(key, prefix), "_", "-"))
		v.SetDefault(name, value)
	}
	return nil
}

func readConfigFile(v *viper.Viper, explicit, workDir, userDir string) (string, error) {
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("failed to read config file %s: %w", explicit, err)
		}
		return v.ConfigFileUsed(), nil
	}

	v.SetConfigName("noknock")
	v.SetConfigType("yaml")
	if workDir != "" {
		v.AddConfigPath(workDir)
	}
	if userDir != "" {
		v.AddConfigPath(userDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

func resolveWorkDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// resolveUserConfigDir returns "" when the platform has no config dir.
func resolveUserConfigDir(dir string) string {
	if dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "noknock")
}
