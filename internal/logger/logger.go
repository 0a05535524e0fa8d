package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/Natwar589/chatkit-implementation/internal/console"
	"github.com/Natwar589/chatkit-implementation/internal/version"
)

// Helper to resolve message from any type to string
func resolveMsg(msg any) string {
	switch v := msg.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []any:
		var parts []string
		for _, item := range v {
			parts = append(parts, resolveMsg(item))
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(v)
	}
}

// Internal helper to log with the current timestamp
func log(ctx context.Context, level slog.Level, msg any, args ...any) {
	logAt(ctx, time.Now(), level, msg, args...)
}

// Internal helper to log with a specific timestamp
func logAt(ctx context.Context, t time.Time, level slog.Level, msg any, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(ctx, level) {
		return
	}

	msgStr := resolveMsg(msg)
	// Format with args if the message carries format specifiers.
	if len(args) > 0 && strings.Contains(msgStr, "%") {
		msgStr = fmt.Sprintf(msgStr, args...)
		args = nil
	}
	msgStr = console.Parse(msgStr)

	// Single line: reset colors at the end to avoid bleed into the next record.
	if !strings.Contains(msgStr, "\n") {
		r := slog.NewRecord(t, level, msgStr+console.CodeReset, 0)
		r.Add(args...)
		_ = h.Handle(ctx, r)
		return
	}

	lines := strings.Split(msgStr, "\n")
	for i, line := range lines {
		r := slog.NewRecord(t, level, line+console.CodeReset, 0)
		if i == 0 {
			r.Add(args...)
		}
		_ = h.Handle(ctx, r)
	}
}

// Custom log levels
const (
	LevelTrace  = slog.Level(-8)
	LevelDebug  = slog.LevelDebug
	LevelInfo   = slog.Level(-2)
	LevelNotice = slog.LevelInfo
	LevelWarn   = slog.LevelWarn
	LevelError  = slog.LevelError
	LevelFatal  = slog.Level(12)
)

// LevelVar allows dynamic changing of the log level
var LevelVar = new(slog.LevelVar)

func init() {
	LevelVar.Set(LevelNotice)
}

func SetLevel(level slog.Level) {
	LevelVar.Set(level)
}

// NewLogger builds the stderr logger. The reporter must leave the filesystem
// untouched, so there is deliberately no file handler.
func NewLogger() *slog.Logger {
	wStderr := os.Stderr
	isTTY := console.IsTTY(wStderr)

	var (
		ansiReset  string
		ansiBlue   string
		ansiGreen  string
		ansiYellow string
		ansiRed    string
		ansiRedBg  string
	)

	if isTTY {
		ansiReset = console.CodeReset
		ansiBlue = console.CodeBlue
		ansiGreen = console.CodeGreen
		ansiYellow = console.CodeYellow
		ansiRed = console.CodeRed
		ansiRedBg = console.CodeRedBg + console.CodeWhite
	}

	replaceAttr := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			level := a.Value.Any().(slog.Level)
			switch level {
			case LevelTrace:
				a.Value = slog.StringValue(ansiBlue + "[TRACE ]" + ansiReset + "  ")
			case LevelDebug:
				a.Value = slog.StringValue(ansiBlue + "[DEBUG ]" + ansiReset + "  ")
			case LevelInfo:
				a.Value = slog.StringValue(ansiBlue + "[INFO  ]" + ansiReset + "  ")
			case LevelNotice:
				a.Value = slog.StringValue(ansiGreen + "[NOTICE]" + ansiReset + "  ")
			case LevelWarn:
				a.Value = slog.StringValue(ansiYellow + "[WARN  ]" + ansiReset + "  ")
			case LevelError:
				a.Value = slog.StringValue(ansiRed + "[ERROR ]" + ansiReset + "  ")
			case LevelFatal:
				a.Value = slog.StringValue(ansiRedBg + "[FATAL ]" + ansiReset + "  ")
			default:
				a.Value = slog.StringValue("[" + level.String() + "]")
			}
		}
		return a
	}

	opts := &tint.Options{
		Level:       LevelVar,
		TimeFormat:  "2006-01-02 15:04:05",
		NoColor:     !isTTY,
		ReplaceAttr: replaceAttr,
	}
	return slog.New(tint.NewHandler(wStderr, opts))
}

// Global helpers for custom levels that don't satisfy standard slog methods
func Trace(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelTrace, msg, args...)
}

func Debug(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelInfo, msg, args...)
}

func Notice(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelNotice, msg, args...)
}

func Warn(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelWarn, msg, args...)
}

func Error(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelError, msg, args...)
}

func getSystemInfo() []string {
	var info []string

	info = append(info, fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version))
	info = append(info, "")

	executable, _ := os.Executable()
	info = append(info, fmt.Sprintf("Currently running as: %s (PID %d)", executable, os.Getpid()))
	info = append(info, "")

	info = append(info, fmt.Sprintf("ARCH:       %s", runtime.GOARCH))
	info = append(info, fmt.Sprintf("OS:         %s", runtime.GOOS))
	info = append(info, fmt.Sprintf("SCRIPTPATH: %s", filepath.Dir(executable)))
	info = append(info, fmt.Sprintf("SCRIPTNAME: %s", filepath.Base(executable)))
	info = append(info, "")

	currentUser, err := user.Current()
	if err == nil {
		info = append(info, fmt.Sprintf("DETECTED_UNAME:   %s", currentUser.Username))
		info = append(info, fmt.Sprintf("DETECTED_HOMEDIR: %s", currentUser.HomeDir))
	} else {
		info = append(info, fmt.Sprintf("User Info Error: %v", err))
	}

	return info
}

// Fatal logs a message at FatalLevel and panics with FatalError so the main
// run loop can recover, clean up and exit non-zero.
func Fatal(ctx context.Context, msg any, args ...any) {
	FatalWithStackSkip(ctx, 1, msg, args...)
}

// FatalWithStackSkip logs a fatal message with system information and a stack
// trace, skipping the given number of frames above the caller.
func FatalWithStackSkip(ctx context.Context, skip int, msg any, args ...any) {
	now := time.Now()

	pc := make([]uintptr, 32)
	n := runtime.Callers(skip+1, pc)
	frames := runtime.CallersFrames(pc[:n])

	var infoLines []string
	for _, i := range getSystemInfo() {
		if i != "" {
			infoLines = append(infoLines, "  "+i)
		} else {
			infoLines = append(infoLines, "")
		}
	}

	var allFrames []runtime.Frame
	for {
		frame, more := frames.Next()
		allFrames = append(allFrames, frame)
		if !more {
			break
		}
	}

	var traceLines []string
	wd, _ := os.Getwd()

	indent := ""
	for i := len(allFrames) - 1; i >= 0; i-- {
		frame := allFrames[i]

		if wd != "" {
			if rel, err := filepath.Rel(wd, frame.File); err == nil {
				if !strings.HasPrefix(rel, "..") && !strings.HasPrefix(rel, string(filepath.Separator)) {
					frame.File = "./" + filepath.ToSlash(rel)
				}
			}
		}

		suffix := ""
		arrowIndent := indent
		if i < len(allFrames)-1 {
			suffix = "└>"
			if len(indent) >= 2 {
				arrowIndent = indent[:len(indent)-2]
			}
		}

		line := fmt.Sprintf("%d: %s%s{{_File_}}%s{{|-|}}:{{|yellow|}}%d{{|-|}} (%s)",
			i, arrowIndent, suffix, frame.File, frame.Line, filepath.Base(frame.Function))

		traceLines = append(traceLines, "  "+line)
		indent += "  "
	}

	output := []any{
		"{{_Error_}}### BEGIN SYSTEM INFORMATION AND STACK TRACE ###{{|-|}}",
		infoLines,
		"",
		traceLines,
		"{{_Error_}}### END SYSTEM INFORMATION AND STACK TRACE ###{{|-|}}",
		"",
		msg,
	}

	logAt(ctx, now, LevelFatal, output, args...)

	panic(FatalError{})
}

// FatalNoTrace logs a message at FatalLevel without a stack trace and exits
func FatalNoTrace(ctx context.Context, msg any, args ...any) {
	logAt(ctx, time.Now(), LevelFatal, msg, args...)
	panic(FatalError{})
}

// FatalError is a special error used to panic from Fatal logger calls.
// This allows the main run loop to recover and perform cleanup before exiting.
type FatalError struct{}
