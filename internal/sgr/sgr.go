// Package sgr composes ANSI Select Graphic Rendition escape sequences.
//
// Every styled segment is terminated with a reset sequence so the style
// cannot bleed into subsequent terminal output.
package sgr

import (
	"fmt"
	"strings"
)

// Attribute identifies one SGR rendering parameter.
type Attribute int

const (
	// Reset restores the terminal's default rendering
	Reset Attribute = iota
	// Bold enables bold/bright rendering
	Bold
	// Underline enables underlined rendering
	Underline
	// FgRed through FgDefault select the foreground color
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgDefault
	// BgRed through BgDefault select the background color
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgDefault
)

// codes maps each attribute to its SGR numeric parameter string.
var codes = map[Attribute]string{
	Reset:     "0",
	Bold:      "1",
	Underline: "4",
	FgRed:     "31",
	FgGreen:   "32",
	FgYellow:  "33",
	FgBlue:    "34",
	FgDefault: "39",
	BgRed:     "41",
	BgGreen:   "42",
	BgYellow:  "43",
	BgBlue:    "44",
	BgDefault: "49",
}

// names maps the textual form of each attribute, as used in palette files
// and CLI flags, back to the attribute.
var names = map[string]Attribute{
	"reset":      Reset,
	"bold":       Bold,
	"underline":  Underline,
	"fg-red":     FgRed,
	"fg-green":   FgGreen,
	"fg-yellow":  FgYellow,
	"fg-blue":    FgBlue,
	"fg-default": FgDefault,
	"bg-red":     BgRed,
	"bg-green":   BgGreen,
	"bg-yellow":  BgYellow,
	"bg-blue":    BgBlue,
	"bg-default": BgDefault,
}

// String returns the textual name of the attribute
func (a Attribute) String() string {
	for name, attr := range names {
		if attr == a {
			return name
		}
	}
	return fmt.Sprintf("attribute(%d)", int(a))
}

// ParseAttribute resolves a textual attribute name to its Attribute value.
// It returns an error for names outside the supported set.
func ParseAttribute(name string) (Attribute, error) {
	attr, ok := names[name]
	if !ok {
		return Reset, fmt.Errorf("unknown style attribute %q", name)
	}
	return attr, nil
}

// Escape returns the escape sequence selecting a single attribute,
// e.g. "\x1b[1m" for Bold.
func Escape(a Attribute) string {
	return "\x1b[" + codes[a] + "m"
}

// Styled wraps payload in the escape sequences for attrs, in order,
// followed by the reset sequence. It is a pure function: it writes
// nothing and always returns the same bytes for the same inputs.
func Styled(attrs []Attribute, payload string) string {
	var b strings.Builder
	for _, a := range attrs {
		b.WriteString(Escape(a))
	}
	b.WriteString(payload)
	b.WriteString(Escape(Reset))
	return b.String()
}

// BoldRed renders s bold in red
func BoldRed(s string) string { return Styled([]Attribute{Bold, FgRed}, s) }

// BoldGreen renders s bold in green
func BoldGreen(s string) string { return Styled([]Attribute{Bold, FgGreen}, s) }

// BoldYellow renders s bold in yellow
func BoldYellow(s string) string { return Styled([]Attribute{Bold, FgYellow}, s) }

// BoldBlue renders s bold in blue
func BoldBlue(s string) string { return Styled([]Attribute{Bold, FgBlue}, s) }

// Red renders s in red
func Red(s string) string { return Styled([]Attribute{FgRed}, s) }

// Green renders s in green
func Green(s string) string { return Styled([]Attribute{FgGreen}, s) }

// Yellow renders s in yellow
func Yellow(s string) string { return Styled([]Attribute{FgYellow}, s) }

// Blue renders s in blue
func Blue(s string) string { return Styled([]Attribute{FgBlue}, s) }
