package console

import (
	"os"
)

// Raw ANSI Color Codes
const (
	// Reset
	CodeReset = "\033[0m"

	// Modifiers
	CodeBold             = "\033[1m"
	CodeDim              = "\033[2m"
	CodeItalic           = "\033[3m"
	CodeUnderline        = "\033[4m"
	CodeBlink            = "\033[5m"
	CodeReverse          = "\033[7m"
	CodeStrikethrough    = "\033[9m"
	CodeBoldOff          = "\033[22m"
	CodeDimOff           = "\033[22m"
	CodeItalicOff        = "\033[23m"
	CodeUnderlineOff     = "\033[24m"
	CodeBlinkOff         = "\033[25m"
	CodeReverseOff       = "\033[27m"
	CodeStrikethroughOff = "\033[29m"

	// Foreground
	CodeBlack   = "\033[30m"
	CodeRed     = "\033[31m"
	CodeGreen   = "\033[32m"
	CodeYellow  = "\033[33m"
	CodeBlue    = "\033[34m"
	CodeMagenta = "\033[35m"
	CodeCyan    = "\033[36m"
	CodeWhite   = "\033[37m"

	// Background
	CodeBlackBg   = "\033[40m"
	CodeRedBg     = "\033[41m"
	CodeGreenBg   = "\033[42m"
	CodeYellowBg  = "\033[43m"
	CodeBlueBg    = "\033[44m"
	CodeMagentaBg = "\033[45m"
	CodeCyanBg    = "\033[46m"
	CodeWhiteBg   = "\033[47m"
)

// AppColors defines the struct for program-wide colors/styles
type AppColors struct {
	// Base Codes
	Reset     string
	Bold      string
	Dim       string
	Underline string
	Blink     string
	Reverse   string

	// Base Colors (Foreground)
	Black   string
	Red     string
	Green   string
	Yellow  string
	Blue    string
	Magenta string
	Cyan    string
	White   string

	// Base Colors (Background)
	BlackBg   string
	RedBg     string
	GreenBg   string
	YellowBg  string
	BlueBg    string
	MagentaBg string
	CyanBg    string
	WhiteBg   string

	// Semantic Colors
	Timestamp              string
	Trace                  string
	Debug                  string
	Info                   string
	Notice                 string
	Warn                   string
	Error                  string
	Fatal                  string
	FatalFooter            string
	ApplicationName        string
	File                   string
	Folder                 string
	Var                    string
	Value                  string
	Default                string
	Version                string
	URL                    string
	Yes                    string
	No                     string
	UserCommand            string
	UserCommandError       string
	UserCommandErrorMarker string

	// Usage Colors
	UsageCommand string
	UsageOption  string
	UsageFile    string
	UsageVar     string
}

// Colors is the global instance for application output (stdout)
var Colors AppColors

func init() {
	Colors = AppColors{
		// Base Codes
		Reset:     CodeReset,
		Bold:      CodeBold,
		Dim:       CodeDim,
		Underline: CodeUnderline,
		Blink:     CodeBlink,
		Reverse:   CodeReverse,

		// Base Colors (Foreground)
		Black:   CodeBlack,
		Red:     CodeRed,
		Green:   CodeGreen,
		Yellow:  CodeYellow,
		Blue:    CodeBlue,
		Magenta: CodeMagenta,
		Cyan:    CodeCyan,
		White:   CodeWhite,

		// Base Colors (Background)
		BlackBg:   CodeBlackBg,
		RedBg:     CodeRedBg,
		GreenBg:   CodeGreenBg,
		YellowBg:  CodeYellowBg,
		BlueBg:    CodeBlueBg,
		MagentaBg: CodeMagentaBg,
		CyanBg:    CodeCyanBg,
		WhiteBg:   CodeWhiteBg,

		// Semantic Colors
		Timestamp:              "[reset]",
		Trace:                  "[blue]",
		Debug:                  "[blue]",
		Info:                   "[blue]",
		Notice:                 "[green]",
		Warn:                   "[yellow]",
		Error:                  "[red]",
		Fatal:                  "[white:red]", // Red BG, White Text
		FatalFooter:            "[reset]",
		ApplicationName:        "[cyan::b]",
		File:                   "[cyan::b]",
		Folder:                 "[cyan::b]",
		Var:                    "[magenta]",
		Value:                  "[green]",
		Default:                "[yellow]",
		Version:                "[cyan]",
		URL:                    "[cyan::u]",
		Yes:                    "[green]",
		No:                     "[red]",
		UserCommand:            "[yellow::b]",
		UserCommandError:       "[red::u]",
		UserCommandErrorMarker: "[red]",

		// Usage Colors
		UsageCommand: "[yellow::b]",
		UsageOption:  "[yellow]",
		UsageFile:    "[cyan::b]",
		UsageVar:     "[magenta]",
	}
	RegisterBaseTags()
}

// RegisterBaseTags registers the semantic shorthands and aliases
// that are used throughout the application.
func RegisterBaseTags() {
	RegisterColor("_NC_", "[-]")
	RegisterColor("_BD_", "[::b]")
	RegisterColor("_UL_", "[::u]")
	RegisterColor("_DM_", "[::d]")

	RegisterColor("_ApplicationName_", Colors.ApplicationName)
	RegisterColor("_Version_", Colors.Version)
	RegisterColor("_File_", Colors.File)
	RegisterColor("_Folder_", Colors.Folder)
	RegisterColor("_Var_", Colors.Var)
	RegisterColor("_Value_", Colors.Value)
	RegisterColor("_Default_", Colors.Default)
	RegisterColor("_URL_", Colors.URL)
	RegisterColor("_Yes_", Colors.Yes)
	RegisterColor("_No_", Colors.No)
	RegisterColor("_UserCommand_", Colors.UserCommand)
	RegisterColor("_UserCommandError_", Colors.UserCommandError)
	RegisterColor("_UserCommandErrorMarker_", Colors.UserCommandErrorMarker)

	// Usage Colors
	RegisterColor("_UsageCommand_", Colors.UsageCommand)
	RegisterColor("_UsageOption_", Colors.UsageOption)
	RegisterColor("_UsageFile_", Colors.UsageFile)
	RegisterColor("_UsageVar_", Colors.UsageVar)

	// Log Level Tags (Shorthands for logger consistency)
	RegisterColor("_Timestamp_", Colors.Timestamp)
	RegisterColor("_Notice_", Colors.Notice)
	RegisterColor("_Warn_", Colors.Warn)
	RegisterColor("_Error_", Colors.Error)
	RegisterColor("_Fatal_", Colors.Fatal)
	RegisterColor("_FatalFooter_", Colors.FatalFooter)
	RegisterColor("_Debug_", Colors.Debug)
	RegisterColor("_Info_", Colors.Info)
	RegisterColor("_Trace_", Colors.Trace)
}

// IsTTY reports whether the given file is attached to a terminal.
func IsTTY(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
