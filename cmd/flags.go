package cmd

import (
	"sync"

	"github.com/spf13/pflag"
)

var initFlagsOnce sync.Once

// InitFlags defines the pflags used for argument validation and help.
func InitFlags() {
	initFlagsOnce.Do(func() {
		// Modifiers
		pflag.BoolP("verbose", "v", false, "Verbose output (include .env key listing)")
		pflag.BoolP("debug", "x", false, "Debug output")

		// Commands
		pflag.BoolP("help", "h", false, "Show help")
		pflag.BoolP("keys", "k", false, "List keys defined by the .env file")
		pflag.BoolP("version", "V", false, "Show version")
	})
}
