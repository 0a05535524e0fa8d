// Package report implements the environment reporter: a single linear pass
// that prints the local configuration state of the frontend and static
// guidance, mutating nothing.
package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/Natwar589/chatkit-implementation/internal/console"
	"github.com/Natwar589/chatkit-implementation/internal/envfile"
	"github.com/Natwar589/chatkit-implementation/internal/logger"
	"github.com/Natwar589/chatkit-implementation/internal/paths"
	"github.com/Natwar589/chatkit-implementation/internal/version"
)

// Reporter prints the environment configuration report.
//
// The environment is an injected read-only lookup so tests can run against a
// fixed mapping instead of the live process environment.
type Reporter struct {
	Out         io.Writer
	LookupEnv   func(string) (string, bool)
	EnvFile     string
	ExampleFile string
	Vars        []Variable

	// Color enables semantic tag rendering; off, tags are stripped.
	Color bool
	// Verbose adds the list of keys the .env file actually defines.
	Verbose bool
}

// New returns a Reporter wired to the live process: stdout, os.LookupEnv and
// the env files next to the executable.
func New() *Reporter {
	return &Reporter{
		Out:         os.Stdout,
		LookupEnv:   os.LookupEnv,
		EnvFile:     paths.GetEnvFilePath(),
		ExampleFile: paths.GetEnvExampleFilePath(),
		Vars:        Known(),
		Color:       console.IsTTY(os.Stdout),
	}
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// Run performs the one-pass report. It never fails: the only fallible step is
// the env file read, which is reported as a warning line and recovered.
func (r *Reporter) Run(ctx context.Context) {
	logger.Debug(ctx, "Inspecting env file at %s", r.EnvFile)

	r.header()
	r.fileStatus(ctx)
	r.variableStatus()
	if r.Verbose {
		r.definedKeys(ctx)
	}
	r.guidance()
}

// RunKeys prints only the key listing of the .env file.
func (r *Reporter) RunKeys(ctx context.Context) {
	r.definedKeys(ctx)
}

func (r *Reporter) header() {
	title := version.ApplicationName
	if r.Color {
		title = headerStyle.Render(title)
	}
	ruleWidth := runewidth.StringWidth(version.ApplicationName)
	if termWidth, _ := console.GetTerminalSize(); termWidth > 0 && termWidth < ruleWidth {
		ruleWidth = termWidth
	}
	fmt.Fprintln(r.Out, title)
	fmt.Fprintln(r.Out, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(r.Out)
}

func (r *Reporter) fileStatus(ctx context.Context) {
	r.println("Environment file:")

	insp := envfile.Inspect(r.EnvFile)
	switch insp.State {
	case envfile.StateHasContent:
		r.println(fmt.Sprintf("  {{_Yes_}}[OK]{{|-|}} {{_File_}}%s{{|-|}} found and has content", r.EnvFile))
	case envfile.StateEmpty:
		r.println(fmt.Sprintf("  {{_Warn_}}[!!]{{|-|}} {{_File_}}%s{{|-|}} exists but is empty", r.EnvFile))
	case envfile.StateMissing:
		r.println(fmt.Sprintf("  {{_No_}}[--]{{|-|}} No {{_File_}}%s{{|-|}} file found", r.EnvFile))
		if envfile.Exists(r.ExampleFile) {
			r.println("       To create one, copy the example file:")
			r.println(fmt.Sprintf("         {{_UserCommand_}}cp %s %s{{|-|}}", r.ExampleFile, r.EnvFile))
		}
	case envfile.StateUnreadable:
		logger.Warn(ctx, "Could not read %s: %v", r.EnvFile, insp.Err)
		r.println(fmt.Sprintf("  {{_Warn_}}[!!]{{|-|}} Could not read {{_File_}}%s{{|-|}}: %v", r.EnvFile, insp.Err))
	}
	r.println("")
}

func (r *Reporter) variableStatus() {
	r.println("Configuration variables:")

	nameWidth := 0
	for _, v := range r.Vars {
		if w := runewidth.StringWidth(v.Name); w > nameWidth {
			nameWidth = w
		}
	}

	for _, v := range r.Vars {
		padded := runewidth.FillRight(v.Name, nameWidth)
		if value, ok := r.LookupEnv(v.Name); ok && value != "" {
			r.println(fmt.Sprintf("  {{_Var_}}%s{{|-|}} = {{_Value_}}%s{{|-|}}", padded, value))
		} else if v.DefaultApplies {
			r.println(fmt.Sprintf("  {{_Var_}}%s{{|-|}} {{_Default_}}(not set, default applies){{|-|}}", padded))
		} else {
			r.println(fmt.Sprintf("  {{_Var_}}%s{{|-|}} {{_Default_}}(not set){{|-|}}", padded))
		}
		if r.Verbose && v.Description != "" {
			if v.Default != "" {
				r.println(fmt.Sprintf("    %s (default {{_Default_}}%s{{|-|}})", v.Description, v.Default))
			} else {
				r.println(fmt.Sprintf("    %s", v.Description))
			}
		}
	}
}

// definedKeys lists the keys the .env file defines, and flags known
// variables the file does not mention. Read-only, like everything else here.
func (r *Reporter) definedKeys(ctx context.Context) {
	r.println("")
	r.println(fmt.Sprintf("Keys defined in {{_File_}}%s{{|-|}}:", r.EnvFile))

	keys, err := envfile.Keys(r.EnvFile)
	if err != nil {
		logger.Debug(ctx, "Could not parse %s: %v", r.EnvFile, err)
		r.println(fmt.Sprintf("  {{_Warn_}}[!!]{{|-|}} Could not parse {{_File_}}%s{{|-|}}: %v", r.EnvFile, err))
		return
	}
	if len(keys) == 0 {
		r.println("  (none)")
		return
	}

	defined := make(map[string]bool, len(keys))
	for _, k := range keys {
		defined[k] = true
		r.println(fmt.Sprintf("  {{_Var_}}%s{{|-|}}", k))
	}
	for _, v := range r.Vars {
		if !defined[v.Name] {
			r.println(fmt.Sprintf("  {{_Default_}}%s not defined in file{{|-|}}", v.Name))
		}
	}
}

func (r *Reporter) guidance() {
	for _, line := range localGuidance {
		r.println(line)
	}
	for _, line := range productionGuidance {
		r.println(line)
	}
	for _, line := range startGuidance {
		r.println(line)
	}
}

// println renders a tagged line to the report writer. Color on means tags
// are rendered even when output is piped, so "always" really forces color.
func (r *Reporter) println(line string) {
	if r.Color {
		fmt.Fprintln(r.Out, console.ToANSIForced(line))
	} else {
		fmt.Fprintln(r.Out, console.Strip(line))
	}
}
