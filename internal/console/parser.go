package console

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

var (
	// semanticMap stores semantic tag -> tag value mappings (e.g., "version" -> "[cyan]")
	semanticMap map[string]string

	// ansiMap stores color/modifier names -> ANSI code mappings
	ansiMap map[string]string

	// semanticRegex matches {{_content_}} format for semantic tags
	semanticRegex = regexp.MustCompile(`\{\{_([A-Za-z0-9_]+)_\}\}`)

	// directRegex matches {{|content|}} format for direct fg:bg:flags codes
	directRegex = regexp.MustCompile(`\{\{\|([A-Za-z0-9_:\-#]+)\|\}\}`)
)

// ensureMaps ensures color maps are built if they were missed by init
func ensureMaps() {
	if len(ansiMap) == 0 {
		BuildColorMap()
	}
}

// BuildColorMap initializes the ANSI code mappings and semantic tag definitions.
// NOTE: This preserves existing semantic tags registered before this call.
func BuildColorMap() {
	ansiMap = make(map[string]string)
	if semanticMap == nil {
		semanticMap = make(map[string]string)
	}

	// Standard ANSI color/modifier mappings.
	// Flag characters follow the tview convention: the character turns the
	// attribute on, a leading '-' in the flags part resets attributes first.
	ansiMap["-"] = CodeReset
	ansiMap["reset"] = CodeReset
	ansiMap["b"] = CodeBold
	ansiMap["B"] = CodeBold
	ansiMap["d"] = CodeDim
	ansiMap["D"] = CodeDim
	ansiMap["u"] = CodeUnderline
	ansiMap["U"] = CodeUnderline
	ansiMap["l"] = CodeBlink
	ansiMap["L"] = CodeBlink
	ansiMap["r"] = CodeReverse
	ansiMap["R"] = CodeReverse
	ansiMap["i"] = CodeItalic
	ansiMap["I"] = CodeItalic
	ansiMap["s"] = CodeStrikethrough
	ansiMap["S"] = CodeStrikethrough

	// Modifier names (for use in the fg position, e.g. [bold])
	ansiMap["bold"] = CodeBold
	ansiMap["dim"] = CodeDim
	ansiMap["underline"] = CodeUnderline
	ansiMap["blink"] = CodeBlink
	ansiMap["reverse"] = CodeReverse

	// Foreground colors
	ansiMap["black"] = CodeBlack
	ansiMap["red"] = CodeRed
	ansiMap["green"] = CodeGreen
	ansiMap["yellow"] = CodeYellow
	ansiMap["blue"] = CodeBlue
	ansiMap["magenta"] = CodeMagenta
	ansiMap["cyan"] = CodeCyan
	ansiMap["white"] = CodeWhite

	// Background colors (with "bg" suffix for fg:bg parsing)
	ansiMap["blackbg"] = CodeBlackBg
	ansiMap["redbg"] = CodeRedBg
	ansiMap["greenbg"] = CodeGreenBg
	ansiMap["yellowbg"] = CodeYellowBg
	ansiMap["bluebg"] = CodeBlueBg
	ansiMap["magentabg"] = CodeMagentaBg
	ansiMap["cyanbg"] = CodeCyanBg
	ansiMap["whitebg"] = CodeWhiteBg

	// Build semantic map from Colors struct
	val := reflect.ValueOf(Colors)
	typ := val.Type()

	// Whitelist of base codes that are NOT semantic
	baseKeys := map[string]bool{
		"reset": true, "bold": true, "dim": true, "underline": true, "blink": true, "reverse": true,
		"black": true, "red": true, "green": true, "yellow": true, "blue": true, "magenta": true, "cyan": true, "white": true,
		"blackbg": true, "redbg": true, "greenbg": true, "yellowbg": true, "bluebg": true, "magentabg": true, "cyanbg": true, "whitebg": true,
	}

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		key := strings.ToLower(field.Name)
		if !baseKeys[key] {
			// Store the tag-format value (e.g., "[cyan::b]")
			semanticMap[key] = val.Field(i).String()
		}
	}
}

// RegisterSemanticTag registers a semantic tag with its tag-format value
func RegisterSemanticTag(name, tagValue string) {
	ensureMaps()
	semanticMap[strings.ToLower(name)] = tagValue
}

// RegisterColor registers a semantic tag, stripping a legacy underscore wrapper if present
func RegisterColor(name, value string) {
	name = strings.TrimPrefix(name, "_")
	name = strings.TrimSuffix(name, "_")
	RegisterSemanticTag(name, value)
}

// ResetCustomColors clears all semantic tags and rebuilds from the Colors struct
func ResetCustomColors() {
	semanticMap = make(map[string]string)
	BuildColorMap()
	RegisterBaseTags()
}

// ToANSI converts semantic and direct tags to ANSI escape sequences
//   - {{_Tag_}}  : Semantic lookup -> ANSI
//   - {{|code|}} : Direct fg:bg:flags -> ANSI
func ToANSI(text string) string {
	if !isTTYGlobal {
		// Not a TTY, strip all codes
		return Strip(text)
	}
	return ToANSIForced(text)
}

// ToANSIForced converts tags to ANSI escape sequences regardless of the
// detected TTY state. Callers use it when the user forces color on for
// piped output.
func ToANSIForced(text string) string {
	ensureMaps()

	// 1. Process semantic tags {{_Tag_}}
	text = semanticRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := match[3 : len(match)-3] // Strip "{{_" and "_}}"
		content = strings.ToLower(content)

		// Check semantic map, then resolve tag value to ANSI
		if tagValue, ok := semanticMap[content]; ok {
			return tagToANSI(tagValue)
		}

		// Unknown semantic tag - strip it
		return ""
	})

	// 2. Process direct tags {{|code|}} -> ANSI
	text = directRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := match[3 : len(match)-3] // Strip "{{|" and "|}}"
		return parseStyleCodeToANSI(content)
	})

	return text
}

// Strip removes all semantic and direct tags from text, leaving plain text
func Strip(text string) string {
	text = semanticRegex.ReplaceAllString(text, "")
	text = directRegex.ReplaceAllString(text, "")
	return text
}

// tagToANSI converts a tag-format value like "[cyan::b]" to ANSI codes
func tagToANSI(tagValue string) string {
	if len(tagValue) < 2 || tagValue[0] != '[' || tagValue[len(tagValue)-1] != ']' {
		return ""
	}
	return parseStyleCodeToANSI(tagValue[1 : len(tagValue)-1])
}

// parseStyleCodeToANSI parses fg:bg:flags format and returns ANSI codes
func parseStyleCodeToANSI(content string) string {
	if content == "-" {
		return CodeReset
	}

	// Split by colons: fg:bg:flags
	parts := strings.Split(content, ":")
	var codes strings.Builder

	// Part 0: Foreground color
	if len(parts) > 0 && parts[0] != "" && parts[0] != "-" {
		name := strings.ToLower(parts[0])
		if strings.HasPrefix(name, "#") {
			// Hex color, downsampled to the preferred profile
			codes.WriteString(wrapSequence(preferredProfile.Color(name).Sequence(false)))
		} else if code, ok := ansiMap[name]; ok {
			codes.WriteString(code)
		}
	}

	// Part 1: Background color
	if len(parts) > 1 && parts[1] != "" && parts[1] != "-" {
		name := strings.ToLower(parts[1])
		if strings.HasPrefix(name, "#") {
			codes.WriteString(wrapSequence(preferredProfile.Color(name).Sequence(true)))
		} else if code, ok := ansiMap[name+"bg"]; ok {
			codes.WriteString(code)
		}
	}

	// Part 2: Flags (each character is a flag: b=bold, u=underline, etc.)
	if len(parts) > 2 && parts[2] != "" {
		flags := parts[2]
		if strings.HasPrefix(flags, "-") {
			// Reset attributes before applying the remaining flags
			codes.WriteString(CodeBoldOff + CodeItalicOff + CodeUnderlineOff + CodeBlinkOff + CodeReverseOff + CodeStrikethroughOff)
			flags = strings.TrimPrefix(flags, "-")
		}
		for _, flag := range flags {
			if code, ok := ansiMap[string(flag)]; ok {
				codes.WriteString(code)
			}
		}
	}

	return codes.String()
}

// wrapSequence ensures a color sequence part is wrapped in CSI delimiters
func wrapSequence(seq string) string {
	if seq == "" {
		return ""
	}
	if strings.HasPrefix(seq, "\x1b[") {
		return seq
	}
	return "\033[" + seq + "m"
}

// Sprintf formats according to a format specifier and returns the string with ANSI codes
func Sprintf(format string, a ...interface{}) string {
	msg := fmt.Sprintf(format, a...)
	return ToANSI(msg)
}

// Println prints a line with ANSI color codes parsed
func Println(a ...interface{}) {
	msg := fmt.Sprint(a...)
	fmt.Println(ToANSI(msg))
}

// Parse is a convenience alias for ToANSI
func Parse(text string) string {
	return ToANSI(text)
}
