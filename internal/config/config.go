package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ViewPicker = "picker"
	ViewChart  = "chart"
)

// Config holds the unified application configuration
type Config struct {
	DefaultKey  string
	HintDirs    []string
	ShowHints   bool
	DefaultView string
	Dir         string // directory holding config.yaml and debug.log
}

// Settings represents the config file structure
type Settings struct {
	DefaultKey  string   `yaml:"default_key,omitempty"`
	HintDirs    []string `yaml:"hint_dirs"`
	ShowHints   *bool    `yaml:"show_hints,omitempty"`
	DefaultView string   `yaml:"default_view,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	Key      string
	HintDirs []string
	NoHints  bool
}

var globalConfig *Config

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ShowHints:   true,
		DefaultView: ViewPicker,
		Dir:         dir,
	}

	// Config file provides base values
	if fileConfig, err := loadConfigFile(filepath.Join(dir, fileName)); err == nil {
		if fileConfig.DefaultKey != "" {
			cfg.DefaultKey = fileConfig.DefaultKey
		}
		if len(fileConfig.HintDirs) > 0 {
			cfg.HintDirs = expandPaths(fileConfig.HintDirs)
		}
		if fileConfig.ShowHints != nil {
			cfg.ShowHints = *fileConfig.ShowHints
		}
		if fileConfig.DefaultView != "" {
			cfg.DefaultView = fileConfig.DefaultView
		}
	}

	// Priority 2: Environment variables override config file
	if envKey := os.Getenv("ERHU_KEY"); envKey != "" {
		cfg.DefaultKey = envKey
	}
	if envDirs := os.Getenv("ERHU_HINT_DIRS"); envDirs != "" {
		cfg.HintDirs = expandPaths(parseColonSeparated(envDirs))
	}
	if envNoHints := os.Getenv("ERHU_NO_HINTS"); envNoHints != "" {
		if noHints, err := strconv.ParseBool(envNoHints); err == nil {
			cfg.ShowHints = !noHints
		}
	}

	// Priority 1: CLI flags override everything
	if flags.Key != "" {
		cfg.DefaultKey = flags.Key
	}
	if len(flags.HintDirs) > 0 {
		cfg.HintDirs = expandPaths(flags.HintDirs)
	}
	if flags.NoHints {
		cfg.ShowHints = false
	}

	// --key opens straight into its chart; the chart view needs a key
	if flags.Key != "" {
		cfg.DefaultView = ViewChart
	}
	if cfg.DefaultView != ViewChart || cfg.DefaultKey == "" {
		cfg.DefaultView = ViewPicker
	}

	globalConfig = cfg
	return cfg, nil
}

// Get returns the loaded config
func Get() *Config {
	return globalConfig
}

const fileName = "config.yaml"

// GetConfigDir returns the configuration directory. ERHU_CONFIG_DIR overrides
// the default of ~/.config/erhu.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("ERHU_CONFIG_DIR"); dir != "" {
		return expandPath(dir), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "erhu"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(dir, fileName)
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	showHints := true
	settings := Settings{
		HintDirs:    []string{},
		ShowHints:   &showHints,
		DefaultView: ViewPicker,
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// ParseCommaSeparated splits a comma-separated string into a slice
func ParseCommaSeparated(s string) []string {
	return splitNonEmpty(s, ",")
}

func parseColonSeparated(s string) []string {
	return splitNonEmpty(s, ":")
}

func splitNonEmpty(s, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

func expandPaths(paths []string) []string {
	result := make([]string, len(paths))
	for i, p := range paths {
		result[i] = expandPath(p)
	}
	return result
}
