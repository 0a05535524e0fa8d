package config

import (
	"os"
	"os/user"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/Natwar589/chatkit-implementation/internal/paths"
)

// AppConfig holds the optional per-user settings for the reporter.
// The settings file is read-only: the reporter never creates or rewrites it,
// because leaving the filesystem untouched is part of its contract.
type AppConfig struct {
	UI    UIConfig   `toml:"ui"`
	Paths PathConfig `toml:"paths"`

	// FrontendDir is the expanded runtime value of Paths.FrontendFolder,
	// not saved to TOML.
	FrontendDir string `toml:"-"`
}

// UIConfig holds user interface related settings.
type UIConfig struct {
	// Color controls ANSI output: "auto" (TTY detection), "always" or "never".
	Color string `toml:"color"`
}

// PathConfig holds directory path settings.
type PathConfig struct {
	// FrontendFolder overrides where the .env and .env.example files are
	// looked for. Empty means next to the executable.
	FrontendFolder string `toml:"frontend_folder"`
}

// ExpandVariables expands environment variables in the config values.
// It supports:
// - ${XDG_CONFIG_HOME} -> xdg.ConfigHome
// - ${XDG_DATA_HOME}   -> xdg.DataHome
// - ${XDG_STATE_HOME}  -> xdg.StateHome
// - ${XDG_CACHE_HOME}  -> xdg.CacheHome
// - ${HOME}            -> os.UserHomeDir()
// - ${USER}            -> Current username
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_DATA_HOME":
			return xdg.DataHome
		case "XDG_STATE_HOME":
			return xdg.StateHome
		case "XDG_CACHE_HOME":
			return xdg.CacheHome
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME") // Fallback for Windows
			}
			return u.Username
		}
		return ""
	}
	return os.Expand(val, mapper)
}

// LoadAppConfig reads the settings file and returns the configuration.
// A missing or invalid file yields the built-in defaults; no file is ever
// written back.
func LoadAppConfig() AppConfig {
	conf := AppConfig{
		UI: UIConfig{
			Color: "auto",
		},
	}

	path := paths.GetConfigFilePath()
	data, err := os.ReadFile(path)
	if err == nil {
		// Ignore a malformed file rather than failing the report over it
		_ = toml.Unmarshal(data, &conf)
	}

	conf.FrontendDir = ExpandVariables(conf.Paths.FrontendFolder)
	return conf
}
