package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Natwar589/chatkit-implementation/internal/version"
)

// ParseError wraps argument parsing errors to provide rich output pointing at
// the failing argument.
type ParseError struct {
	Args           []string // The full argument list passed to Parse
	Index          int      // The index where the error occurred
	Message        string   // The specific error message
	FailingCommand string   // The command being processed (e.g. "--keys")
}

func (e *ParseError) Error() string {
	indent := "   "

	// Build command line string
	var cmdLineParts []string

	cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", version.CommandName))

	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		str := e.Args[i]
		if i == e.Index {
			// Highlight failing option
			str = fmt.Sprintf("{{_UserCommandError_}}%s{{|-|}}", str)
		} else {
			str = fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", str)
		}
		cmdLineParts = append(cmdLineParts, str)
	}

	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"
	// Indent + ' + command + space + previous args + spaces
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + "{{_UserCommandErrorMarker_}}^{{|-|}}"

	// Message might contain %o (failing option)
	failingOpt := ""
	if e.Index < len(e.Args) {
		failingOpt = e.Args[e.Index]
	}
	formattedOpt := fmt.Sprintf("'{{_UserCommand_}}%s{{|-|}}'", failingOpt)
	formattedMsg := strings.ReplaceAll(e.Message, "%o", formattedOpt)

	out := fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n", indent, cmdLineStr, pointerLine, indent, formattedMsg)

	if e.FailingCommand != "" {
		out += fmt.Sprintf("\n%sUsage is:\n", indent)
		for _, line := range strings.Split(GetUsage(e.FailingCommand), "\n") {
			out += fmt.Sprintf("%s%s\n", indent, line)
		}
	} else {
		out += fmt.Sprintf("\n%sRun '{{_UserCommand_}}%s --help{{|-|}}' for usage.\n", indent, version.CommandName)
	}

	return out
}

// CommandGroup represents a parsed group of modifier flags and a command.
type CommandGroup struct {
	Flags   []string
	Command string
	Args    []string
}

// Parse parses the raw command line arguments into groups of command
// operations. A zero-argument invocation parses to zero groups, which the
// executor turns into the default report.
func Parse(args []string) ([]CommandGroup, error) {
	// Initialize flags to make sure help text is available
	InitFlags()

	modifiers := map[string]bool{
		"-v": true, "--verbose": true,
		"-x": true, "--debug": true,
	}

	// Pre-process args to expand combined short flags (e.g. -vk -> -v -k)
	var expandedArgs []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && len(arg) > 2 {
			for _, c := range arg[1:] {
				expandedArgs = append(expandedArgs, fmt.Sprintf("-%c", c))
			}
		} else {
			expandedArgs = append(expandedArgs, arg)
		}
	}

	var groups []CommandGroup
	var currentGroup CommandGroup
	var lastCommand string

	i := 0
	for i < len(expandedArgs) {
		arg := expandedArgs[i]

		if !strings.HasPrefix(arg, "-") {
			// The reporter takes no positional arguments
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: fmt.Sprintf("invalid option '%s'", arg), FailingCommand: lastCommand}
		}

		if modifiers[arg] {
			currentGroup.Flags = append(currentGroup.Flags, arg)
			lastCommand = arg
			i++
			continue
		}

		// Validate that the command is a known flag
		cmdName := strings.TrimLeft(arg, "-")
		var validFlag *pflag.Flag
		if strings.HasPrefix(arg, "--") {
			validFlag = pflag.Lookup(cmdName)
		} else if len(cmdName) == 1 {
			validFlag = pflag.CommandLine.ShorthandLookup(cmdName)
		}

		if validFlag == nil {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o"}
		}

		currentGroup.Command = arg
		lastCommand = arg
		cmd := arg
		i++

		switch cmd {
		case "-h", "--help":
			// Help allows an optional flag argument to show targeted usage
			if i < len(expandedArgs) && strings.HasPrefix(expandedArgs[i], "-") {
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}

		// Commands that take NO arguments
		case "-k", "--keys", "-V", "--version":
			// Do nothing
		}

		groups = append(groups, currentGroup)
		currentGroup = CommandGroup{}
	}

	if len(currentGroup.Flags) > 0 {
		// Modifier-only invocation; the executor applies the flags to the
		// default report.
		groups = append(groups, currentGroup)
	}

	return groups, nil
}
