package output

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mossrock/tint/internal/sgr"
)

// Printer writes styled lines to a single destination. A mutex serializes
// writes so concurrent callers cannot interleave escape sequences
// mid-line.
type Printer struct {
	w  io.Writer
	mu sync.Mutex
}

// NewPrinter creates a printer writing to standard output
func NewPrinter() *Printer {
	return &Printer{w: os.Stdout}
}

// NewPrinterWithWriter creates a printer with a custom writer (for testing)
func NewPrinterWithWriter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WriteLine writes text followed by a newline. It is the printer's only
// I/O point; write errors are propagated, never swallowed.
func (p *Printer) WriteLine(text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := io.WriteString(p.w, text+"\n")
	return err
}

// Styled joins fragments, wraps the result in the escape sequences for
// attrs, and writes it as one line.
func (p *Printer) Styled(attrs []sgr.Attribute, fragments ...string) error {
	return p.WriteLine(sgr.Styled(attrs, strings.Join(fragments, "")))
}

// Plain writes the joined fragments with no styling
func (p *Printer) Plain(fragments ...string) error {
	return p.WriteLine(strings.Join(fragments, ""))
}

// BoldRed prints the joined fragments bold in red
func (p *Printer) BoldRed(fragments ...string) error {
	return p.Styled([]sgr.Attribute{sgr.Bold, sgr.FgRed}, fragments...)
}

// BoldGreen prints the joined fragments bold in green
func (p *Printer) BoldGreen(fragments ...string) error {
	return p.Styled([]sgr.Attribute{sgr.Bold, sgr.FgGreen}, fragments...)
}

// BoldYellow prints the joined fragments bold in yellow
func (p *Printer) BoldYellow(fragments ...string) error {
	return p.Styled([]sgr.Attribute{sgr.Bold, sgr.FgYellow}, fragments...)
}

// BoldBlue prints the joined fragments bold in blue
func (p *Printer) BoldBlue(fragments ...string) error {
	return p.Styled([]sgr.Attribute{sgr.Bold, sgr.FgBlue}, fragments...)
}

// Red prints the joined fragments in red
func (p *Printer) Red(fragments ...string) error {
	return p.Styled([]sgr.Attribute{sgr.FgRed}, fragments...)
}

// Green prints the joined fragments in green
func (p *Printer) Green(fragments ...string) error {
	return p.Styled([]sgr.Attribute{sgr.FgGreen}, fragments...)
}

// Yellow prints the joined fragments in yellow
func (p *Printer) Yellow(fragments ...string) error {
	return p.Styled([]sgr.Attribute{sgr.FgYellow}, fragments...)
}

// Blue prints the joined fragments in blue
func (p *Printer) Blue(fragments ...string) error {
	return p.Styled([]sgr.Attribute{sgr.FgBlue}, fragments...)
}
