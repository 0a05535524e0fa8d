package cmd

import (
	"fmt"
	"strings"

	"github.com/Natwar589/chatkit-implementation/internal/console"
	"github.com/Natwar589/chatkit-implementation/internal/version"
)

// PrintHelp prints usage information.
// If target is empty, prints global usage.
// If target is specified, prints usage for that specific flag/command.
func PrintHelp(target string) {
	fmt.Println(console.Parse(GetUsage(target)))
}

// GetUsage returns usage information as a string.
// If target is empty, returns global usage.
// If target is specified, returns usage for that specific flag/command.
func GetUsage(target string) string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	appName := version.ApplicationName
	appCmd := version.CommandName

	// If target is empty, print intro
	if target == "" {
		printStr(fmt.Sprintf("Usage: {{_UsageCommand_}}%s{{|-|}} [{{_UsageCommand_}}<Flags>{{|-|}}] [{{_UsageCommand_}}<Command>{{|-|}}]", appCmd))
		printStr("")
		printStr(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", appName, version.Version))
		printStr("Reports the state of the frontend's '{{_UsageFile_}}.env{{|-|}}' file and the")
		printStr("environment variables the frontend reads at build time.")
		printStr("For regular usage you can run without providing any options.")
		printStr("")
		printStr("The report only reads. It never creates, modifies, or deletes files, and it")
		printStr("never changes the process environment.")
		printStr("")
		printStr("Flags:")
		printStr("")
	}

	showAll := target == ""

	match := func(opts ...string) bool {
		if showAll {
			return true
		}
		for _, o := range opts {
			if o == target {
				return true
			}
		}
		return false
	}

	// Flags
	if match("-v", "--verbose") {
		printStr("{{_UsageCommand_}}-v --verbose{{|-|}}")
		printStr("	Verbose. Also lists the keys defined by the '{{_UsageFile_}}.env{{|-|}}' file.")
	}
	if match("-x", "--debug") {
		printStr("{{_UsageCommand_}}-x --debug{{|-|}}")
		printStr("	Debug")
	}

	if showAll {
		printStr("")
		printStr("Commands:")
		printStr("")
	}

	// Commands
	if match("-h", "--help") {
		printStr("{{_UsageCommand_}}-h --help{{|-|}}")
		printStr("	Show this usage information")
		printStr("{{_UsageCommand_}}-h --help{{|-|}} {{_UsageOption_}}<option>{{|-|}}")
		printStr("	Show the usage of the specified option")
	}
	if match("-k", "--keys") {
		printStr("{{_UsageCommand_}}-k --keys{{|-|}}")
		printStr("	List the keys defined by the '{{_UsageFile_}}.env{{|-|}}' file, one per line")
	}
	if match("-V", "--version") {
		printStr("{{_UsageCommand_}}-V --version{{|-|}}")
		printStr("	Display version information")
	}

	if showAll {
		printStr("")
		printStr(fmt.Sprintf("Running '{{_UsageCommand_}}%s{{|-|}}' with no arguments prints the full report:", appCmd))
		printStr("the '{{_UsageFile_}}.env{{|-|}}' file status, the build-time variables, and setup guidance.")
	}

	return strings.TrimRight(sb.String(), "\n")
}
