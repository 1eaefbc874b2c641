// Package console is the presentation layer: colored text rendering, prompts
// and the paced game session that drives the arena model.
package console

import (
	"fmt"
	"strings"
)

// ANSI escape code constants for terminal styling.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Black   = "\033[30m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
	BrightCyan   = "\033[96m"

	BgBlack = "\033[40m"
)

var namedColors = map[string]string{
	"black":         Black,
	"red":           Red,
	"green":         Green,
	"yellow":        Yellow,
	"blue":          Blue,
	"magenta":       Magenta,
	"cyan":          Cyan,
	"white":         White,
	"bright_red":    BrightRed,
	"bright_green":  BrightGreen,
	"bright_yellow": BrightYellow,
	"bright_blue":   BrightBlue,
	"bright_cyan":   BrightCyan,
}

// NamedColor resolves a content color name such as "bright_red".
//
// Postcondition: Returns ("", false) for unknown names.
func NamedColor(name string) (string, bool) {
	c, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Colorize wraps text with the given ANSI color code and a reset suffix.
func Colorize(color, text string) string {
	return color + text + Reset
}

// StripANSI removes all ANSI escape sequences from a string.
//
// Postcondition: Returns text with all \033[...m sequences removed.
func StripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			if end := strings.IndexByte(s[i+2:], 'm'); end >= 0 {
				i += end + 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Palette applies colors when enabled and passes text through untouched otherwise.
type Palette struct {
	Enabled bool
}

// Paint colors text. A disabled palette strips any escapes already embedded
// in text, so colorless output never carries ANSI codes; an empty color
// returns text unchanged.
func (p Palette) Paint(color, text string) string {
	if !p.Enabled {
		return StripANSI(text)
	}
	if color == "" {
		return text
	}
	return Colorize(color, text)
}

// Paintf formats and colors text.
func (p Palette) Paintf(color, format string, args ...any) string {
	return p.Paint(color, fmt.Sprintf(format, args...))
}
