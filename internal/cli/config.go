package cli

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/paths"
	"github.com/sweengineeringlabs/eprocurement-sub002/pkg/types"
)

const (
	configName = "config"
	configType = "yaml"
	envPrefix  = "EPROC"

	keyBackend     = "backend"
	keyDataDir     = "data_dir"
	keyLogLevel    = "log_level"
	keyPageSize    = "page_size"
	keyLoadTimeout = "load_timeout"
	keyRoutePrefix = "route_prefix"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend     string `yaml:"backend"`
	DataDir     string `yaml:"data_dir,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
	PageSize    int    `yaml:"page_size,omitempty"`
	LoadTimeout string `yaml:"load_timeout"`
	RoutePrefix string `yaml:"route_prefix"`
}

// loadConfig reads config.yaml from configDir. A missing file is not an
// error; every key has a default and can be overridden by an EPROC_ variable
// (EPROC_LOG_LEVEL, EPROC_PAGE_SIZE and so on).
func loadConfig(configDir string) (types.Config, error) {
	v := viper.New()
	v.SetDefault(keyBackend, types.BackendSQLite)
	v.SetDefault(keyDataDir, "")
	v.SetDefault(keyLogLevel, "")
	v.SetDefault(keyPageSize, 0)
	v.SetDefault(keyLoadTimeout, types.DefaultLoadTimeout)
	v.SetDefault(keyRoutePrefix, types.DefaultRoutePrefix)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("config %s: %w", paths.ConfigFile(configDir), err)
	}
	return cfg, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil.
func writeConfigIfMissing(path, dataDir string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	cfg := configFile{
		Backend:     types.BackendSQLite,
		DataDir:     dataDir,
		LoadTimeout: types.DefaultLoadTimeout.String(),
		RoutePrefix: types.DefaultRoutePrefix,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
