package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/bnema/takemehome/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g.
// TAKEMEHOME_HOMEPAGE_RECOVERY_DELAY_MS.
const EnvPrefix = "TAKEMEHOME"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a manager reading config.toml from the XDG config
// directory, falling back to the working directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	return newManager(v, "")
}

// NewManagerForFile creates a manager bound to an explicit config file.
// The file is created with defaults when missing.
func NewManagerForFile(path string) (*Manager, error) {
	if path == "" {
		return nil, errors.New("config file path is empty")
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	return newManager(v, path)
}

func newManager(v *viper.Viper, configFile string) (*Manager, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short forms shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", EnvPrefix+"_LOG_LEVEL", EnvPrefix+"_LOGGING_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	if err := v.BindEnv("logging.format", EnvPrefix+"_LOG_FORMAT", EnvPrefix+"_LOGGING_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", EnvPrefix, err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.configFile == "" {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.decode()
}

// decode unmarshals, completes and validates the config viper holds.
// Must be called with m.mu held for write.
func (m *Manager) decode() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	normalizeConfig(config)
	if err := ensurePaths(config); err != nil {
		return err
	}
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("browser.cdp_url", d.Browser.CDPURL)
	m.viper.SetDefault("browser.exec_path", d.Browser.ExecPath)
	m.viper.SetDefault("browser.headless", d.Browser.Headless)
	m.viper.SetDefault("browser.user_data_dir", d.Browser.UserDataDir)
	m.viper.SetDefault("browser.new_tab_urls", d.Browser.NewTabURLs)
	m.viper.SetDefault("browser.start_timeout_ms", d.Browser.StartTimeoutMs)
	m.viper.SetDefault("browser.action_timeout_ms", d.Browser.ActionTimeoutMs)

	m.viper.SetDefault("homepage.recovery_delay_ms", d.Homepage.RecoveryDelayMs)
	m.viper.SetDefault("homepage.hint_delay_ms", d.Homepage.HintDelayMs)

	m.viper.SetDefault("database.path", d.Database.Path)

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
	m.viper.SetDefault("logging.log_dir", d.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", d.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", d.Logging.MaxBackups)
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.configFile
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	path, err := m.defaultConfigPath()
	if err != nil {
		return err
	}
	if err := m.createDefaultConfig(path); err != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			path,
			err,
		)
	}
	m.viper.SetConfigFile(path)
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			err,
		)
	}
	return nil
}

func (m *Manager) defaultConfigPath() (string, error) {
	if m.configFile != "" {
		return m.configFile, nil
	}
	return GetConfigFile()
}

// createDefaultConfig writes the defaults and their JSON schema next to path.
func (m *Manager) createDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), path); err != nil {
		return err
	}

	log := logging.NewFromEnv()
	log.Info().Str("path", path).Msg("created default configuration file")

	schemaPath := filepath.Join(filepath.Dir(path), SchemaFileName)
	if err := WriteSchemaFile(schemaPath); err != nil {
		log.Warn().Err(err).Str("path", schemaPath).Msg("failed to write config schema")
	}
	return nil
}

func ensurePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	if config.Browser.UserDataDir == "" && config.Browser.CDPURL == "" {
		profileDir, err := GetProfileDir()
		if err != nil {
			return fmt.Errorf("failed to get profile directory: %w", err)
		}
		config.Browser.UserDataDir = profileDir
	}

	config.Database.Path = expandHome(config.Database.Path)
	config.Logging.LogDir = expandHome(config.Logging.LogDir)
	config.Browser.UserDataDir = expandHome(config.Browser.UserDataDir)
	config.Browser.ExecPath = expandHome(config.Browser.ExecPath)
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

func normalizeConfig(config *Config) {
	d := DefaultConfig()

	config.Browser.CDPURL = strings.TrimSpace(config.Browser.CDPURL)
	config.Browser.ExecPath = strings.TrimSpace(config.Browser.ExecPath)
	config.Browser.NewTabURLs = lo.Uniq(lo.FilterMap(config.Browser.NewTabURLs, func(u string, _ int) (string, bool) {
		u = strings.TrimSpace(u)
		return u, u != ""
	}))
	if len(config.Browser.NewTabURLs) == 0 {
		config.Browser.NewTabURLs = d.Browser.NewTabURLs
	}
	if config.Browser.StartTimeoutMs <= 0 {
		config.Browser.StartTimeoutMs = d.Browser.StartTimeoutMs
	}
	if config.Browser.ActionTimeoutMs <= 0 {
		config.Browser.ActionTimeoutMs = d.Browser.ActionTimeoutMs
	}

	if config.Homepage.RecoveryDelayMs <= 0 {
		config.Homepage.RecoveryDelayMs = d.Homepage.RecoveryDelayMs
	}
	if config.Homepage.HintDelayMs <= 0 {
		config.Homepage.HintDelayMs = d.Homepage.HintDelayMs
	}

	switch level := strings.ToLower(strings.TrimSpace(config.Logging.Level)); level {
	case "":
		config.Logging.Level = d.Logging.Level
	case "warning":
		config.Logging.Level = "warn"
	default:
		config.Logging.Level = level
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	case "text":
		config.Logging.Format = "console"
	default:
		config.Logging.Format = d.Logging.Format
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	cfg := *m.config
	cfg.Browser.NewTabURLs = append([]string(nil), m.config.Browser.NewTabURLs...)
	return &cfg
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}
