package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"

	"github.com/Natwar589/chatkit-implementation/internal/constants"
	"github.com/Natwar589/chatkit-implementation/internal/version"
)

var (
	// FrontendDirOverride allows overriding the frontend directory for tests
	// and via the settings file.
	FrontendDirOverride string
	// ConfigHomeOverride allows overriding the config home for tests.
	ConfigHomeOverride string
)

// GetExecDirectory returns the directory of the currently running executable.
func GetExecDirectory() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// GetFrontendDir returns the directory the env files live in. By default the
// env files are expected as siblings of the executable.
func GetFrontendDir() string {
	if FrontendDirOverride != "" {
		return FrontendDirOverride
	}
	return GetExecDirectory()
}

// GetEnvFilePath returns the absolute path to the frontend .env file.
func GetEnvFilePath() string {
	return filepath.Join(GetFrontendDir(), constants.EnvFileName)
}

// GetEnvExampleFilePath returns the absolute path to the checked-in .env.example file.
func GetEnvExampleFilePath() string {
	return filepath.Join(GetFrontendDir(), constants.EnvExampleFileName)
}

// GetConfigFilePath returns the absolute path to the envcheck.toml settings file.
// It places it in a subdirectory named after the tool (e.g., ~/.config/envcheck/envcheck.toml).
// The directory name is fixed rather than derived from argv[0] so renamed
// binaries keep finding the same settings.
func GetConfigFilePath() string {
	appName := strings.ToLower(version.ToolDirName)
	if ConfigHomeOverride != "" {
		return filepath.Join(ConfigHomeOverride, appName, constants.AppConfigFileName)
	}
	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName, constants.AppConfigFileName)
	}
	return filepath.Join(xdg.ConfigHome, appName, constants.AppConfigFileName)
}
