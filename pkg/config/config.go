/*
Package config manages TOML configuration for hspell's CLI and server.
*/
package config

import (
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"

	"github.com/typocheck/hunspellgo/internal/logger"
	"github.com/typocheck/hunspellgo/internal/utils"
)

// logg is built fresh per call rather than cached in a package var so it
// picks up the debug level set by the CLI's --debug flag, which is parsed
// after package-level vars are already initialized.
func logg() *charmlog.Logger { return logger.New("config") }

// Config holds the entire configuration structure.
type Config struct {
	Dict    DictConfig    `toml:"dict"`
	Suggest SuggestConfig `toml:"suggest"`
	Server  ServerConfig  `toml:"server"`
}

// DictConfig locates the .aff/.dic pair to load.
type DictConfig struct {
	AffPath  string `toml:"aff_path"`
	DicPath  string `toml:"dic_path"`
	Language string `toml:"language"`
}

// SuggestConfig tunes how many/what kind of corrections are offered.
type SuggestConfig struct {
	MaxSuggestions int  `toml:"max_suggestions"`
	MaxNgramSugs   int  `toml:"max_ngram_suggestions"`
	MaxPhonetSugs  int  `toml:"max_phonet_suggestions"`
	Compounds      bool `toml:"compounds"`
}

// ServerConfig has msgpack IPC server options.
type ServerConfig struct {
	MaxSuggestions int `toml:"max_suggestions"`
}

// GetConfigDir returns the platform-appropriate config directory, resolved
// through a utils.PathResolver (XDG on Linux, Application Support on macOS,
// AppData on Windows), falling back to the executable's own directory if the
// resolver can't be built.
func GetConfigDir() (string, error) {
	pr, err := utils.NewPathResolver()
	if err != nil {
		logg().Errorf("Failed to initialize path resolver: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	return pr.GetConfigDir(), nil
}

// GetDefaultConfigPath returns the default path for config.toml, walking the
// resolver's fallback chain (config dir, ~/.hspell, /tmp/hspell, executable
// dir) until it finds a writable location.
func GetDefaultConfigPath() (string, error) {
	pr, err := utils.NewPathResolver()
	if err != nil {
		logg().Errorf("Failed to initialize path resolver: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return filepath.Join(execDir, "config.toml"), nil
	}
	return pr.GetConfigPath("config.toml")
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/hspell/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				logg().Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				logg().Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			logg().Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		logg().Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		logg().Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	logg().Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			AffPath:  "",
			DicPath:  "",
			Language: "en_US",
		},
		Suggest: SuggestConfig{
			MaxSuggestions: 15,
			MaxNgramSugs:   4,
			MaxPhonetSugs:  2,
			Compounds:      true,
		},
		Server: ServerConfig{
			MaxSuggestions: 15,
		},
	}
}

// InitConfig loads config from file or creates default if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		logg().Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			logg().Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		logg().Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		logg().Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to recover whatever sections of a TOML file
// parse cleanly, falling back to defaults for the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		logg().Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if suggestSection, ok := utils.ExtractSection(tempConfig, "suggest"); ok {
		extractSuggestConfig(suggestSection, &config.Suggest)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	return config, nil
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "aff_path"); ok {
		dict.AffPath = val
	}
	if val, ok := utils.ExtractString(data, "dic_path"); ok {
		dict.DicPath = val
	}
	if val, ok := utils.ExtractString(data, "language"); ok {
		dict.Language = val
	}
}

func extractSuggestConfig(data map[string]any, suggest *SuggestConfig) {
	if val, ok := utils.ExtractInt64(data, "max_suggestions"); ok {
		suggest.MaxSuggestions = val
	}
	if val, ok := utils.ExtractInt64(data, "max_ngram_suggestions"); ok {
		suggest.MaxNgramSugs = val
	}
	if val, ok := utils.ExtractInt64(data, "max_phonet_suggestions"); ok {
		suggest.MaxPhonetSugs = val
	}
	if val, ok := utils.ExtractBool(data, "compounds"); ok {
		suggest.Compounds = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_suggestions"); ok {
		server.MaxSuggestions = val
	}
}

// RebuildConfigFile force creates a new config.toml at the default path.
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(defaultPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return err
	}
	config := DefaultConfig()
	return utils.SaveTOMLFile(config, defaultPath)
}

// GetActiveConfigPath returns the absolute path of the loaded config file.
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves config into a TOML file.
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes dictionary-path and suggestion-limit values and saves to file.
func (c *Config) Update(configPath string, affPath, dicPath *string, maxSuggestions *int) error {
	if affPath != nil {
		c.Dict.AffPath = *affPath
	}
	if dicPath != nil {
		c.Dict.DicPath = *dicPath
	}
	if maxSuggestions != nil {
		c.Suggest.MaxSuggestions = *maxSuggestions
	}
	return SaveConfig(c, configPath)
}
