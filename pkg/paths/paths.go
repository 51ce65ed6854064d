package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "missingjobs"

// ConfigDir returns the config directory for missingjobs.
// Order: XDG_CONFIG_HOME/missingjobs, platform-specific fallback.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("AppData"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// DefaultConfigFile is read when no --config flag is given. A missing file is ignored.
func DefaultConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
