// Package paths resolves where eproc keeps its configuration and data.
//
// Each location is chosen by the first source that is set: command-line
// flag, environment variable, config file (data dir only), platform
// default.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user directories.
const AppName = "eproc"

// ConfigFileName is the config file inside the config dir.
const ConfigFileName = "config.yaml"

// Environment overrides.
const (
	EnvConfigDir = "EPROC_CONFIG_DIR"
	EnvDataDir   = "EPROC_DATA_DIR"
)

// platform holds the OS lookups so tests can replace them.
var platform = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// xdgDir returns $env/eproc, or ~/fallback/eproc when env is unset.
func xdgDir(env string, fallback ...string) (string, error) {
	if dir := os.Getenv(env); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := platform.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append(append([]string{home}, fallback...), AppName)...), nil
}

// DefaultConfigDir is $XDG_CONFIG_HOME/eproc on Linux and the OS user config
// dir elsewhere.
func DefaultConfigDir() (string, error) {
	if platform.goos == "linux" {
		return xdgDir("XDG_CONFIG_HOME", ".config")
	}
	dir, err := platform.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// DefaultDataDir is $XDG_DATA_HOME/eproc on Linux and a data subdirectory of
// the config dir elsewhere.
func DefaultDataDir() (string, error) {
	if platform.goos == "linux" {
		return xdgDir("XDG_DATA_HOME", ".local", "share")
	}
	dir, err := platform.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, "data"), nil
}

// ResolveConfigDir picks flag, then EPROC_CONFIG_DIR, then the default.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir picks flag, then EPROC_DATA_DIR, then the config file's
// data_dir, then the default.
func ResolveDataDir(flag, configured string) (string, error) {
	for _, dir := range []string{flag, os.Getenv(EnvDataDir), configured} {
		if dir != "" {
			return filepath.Abs(dir)
		}
	}
	return DefaultDataDir()
}

// ConfigFile returns the config file path inside configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}
