package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects one of the output renderers
type Format int

const (
	FormatAuto Format = iota
	FormatTerminal
	FormatText
	FormatJSON
)

// FormatNames lists the accepted --format values, indexed by Format
var FormatNames = []string{"auto", "term", "text", "json"}

// aliases are extra spellings accepted by ParseFormat
var aliases = map[string]Format{
	"":         FormatAuto,
	"terminal": FormatTerminal,
	"plain":    FormatText,
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(FormatNames) {
		return "unknown"
	}
	return FormatNames[f]
}

// ParseFormat reads a --format value, case-insensitively
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range FormatNames {
		if s == name {
			return Format(i), nil
		}
	}
	if f, ok := aliases[s]; ok {
		return f, nil
	}
	return FormatAuto, fmt.Errorf("unknown format: %s (expected one of %s)", s, strings.Join(FormatNames, ", "))
}

// DetectFormat resolves FormatAuto for output. Anything that is not a color
// capable terminal, or runs with NO_COLOR set, gets plain text.
func DetectFormat(output *os.File) Format {
	fd := output.Fd()
	switch {
	case termenv.EnvNoColor():
		return FormatText
	case !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd):
		return FormatText
	case termenv.NewOutput(output).ColorProfile() == termenv.Ascii:
		return FormatText
	}
	return FormatTerminal
}
