package version

import (
	"os"
	"path/filepath"
	"strings"
)

// ApplicationName is the human-readable name of the application.
var ApplicationName = "ChatKit Frontend Env Check"

// CommandName is the name of the executable command (e.g., "envcheck").
// It is initialized dynamically from the executable filename.
var CommandName = "envcheck"

// ToolDirName is the fixed directory name used for per-user settings,
// independent of what the binary was renamed to.
const ToolDirName = "envcheck"

// Version is the current version of the application.
// This is intended to be overwritten at build time using:
// -ldflags "-X github.com/Natwar589/chatkit-implementation/internal/version.Version=vYYYY.MM.N"
var Version = "v0.0.0-dev"

// Commit is the git commit hash of the build.
var Commit = "none"

// BuildDate is the date the binary was built.
var BuildDate = "unknown"

func init() {
	// Dynamically determine the command name from the executable
	exePath := os.Args[0]
	baseName := filepath.Base(exePath)
	// Strip extension (e.g., .exe on Windows)
	ext := filepath.Ext(baseName)
	CommandName = strings.TrimSuffix(baseName, ext)

	// Fallback to "envcheck" for dev runs
	if strings.EqualFold(CommandName, "main") || CommandName == "" {
		CommandName = "envcheck"
	}
}
