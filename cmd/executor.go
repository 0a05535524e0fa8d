package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Natwar589/chatkit-implementation/internal/config"
	"github.com/Natwar589/chatkit-implementation/internal/console"
	"github.com/Natwar589/chatkit-implementation/internal/logger"
	"github.com/Natwar589/chatkit-implementation/internal/paths"
	"github.com/Natwar589/chatkit-implementation/internal/report"
	"github.com/Natwar589/chatkit-implementation/internal/version"
)

// CmdState holds the state of flags for a single command group.
type CmdState struct {
	Verbose bool
}

// Execute runs the logic for a sequence of command groups.
// An empty group list runs the default report.
func Execute(ctx context.Context, groups []CommandGroup) int {
	defer logger.Recover(ctx)

	conf := config.LoadAppConfig()
	if conf.FrontendDir != "" {
		paths.FrontendDirOverride = conf.FrontendDir
	}

	ranCommand := false
	state := CmdState{}

	for _, group := range groups {
		// Apply Flags
		for _, flag := range group.Flags {
			switch flag {
			case "-v", "--verbose":
				logger.SetLevel(logger.LevelInfo)
				state.Verbose = true
			case "-x", "--debug":
				logger.SetLevel(logger.LevelDebug)
				state.Verbose = true
			}
		}

		if group.Command != "" {
			logger.Debug(ctx, "%s command: '{{_UserCommand_}}%s %s{{|-|}}'", version.ApplicationName, version.CommandName, group.Command)
		}

		switch group.Command {
		case "-h", "--help":
			handleHelp(&group)
			ranCommand = true
		case "-V", "--version":
			handleVersion(ctx)
			ranCommand = true
		case "-k", "--keys":
			newReporter(&conf, &state).RunKeys(ctx)
			ranCommand = true
		default:
			// Flag-only groups leave ranCommand false so the default
			// report still runs.
		}
	}

	if !ranCommand {
		newReporter(&conf, &state).Run(ctx)
	}

	return 0
}

// newReporter builds a Reporter from the loaded settings and accumulated
// flag state.
func newReporter(conf *config.AppConfig, state *CmdState) *report.Reporter {
	r := report.New()
	r.Verbose = state.Verbose

	switch conf.UI.Color {
	case "always":
		r.Color = true
	case "never":
		r.Color = false
	default:
		r.Color = console.IsTTY(os.Stdout)
	}

	return r
}

func handleHelp(group *CommandGroup) {
	target := ""
	if len(group.Args) > 0 {
		target = group.Args[0]
	}
	PrintHelp(target)
}

func handleVersion(ctx context.Context) {
	console.Println(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version))
	console.Println(fmt.Sprintf("Commit:     %s", version.Commit))
	console.Println(fmt.Sprintf("Build Date: %s", version.BuildDate))
}
