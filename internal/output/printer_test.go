package output

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/mossrock/tint/internal/sgr"
)

func TestPrinter(t *testing.T) {
	tests := []struct {
		name   string
		method func(p *Printer) error
		want   string
	}{
		{
			name: "bold red",
			method: func(p *Printer) error {
				return p.BoldRed("123")
			},
			want: "\x1b[1m\x1b[31m123\x1b[0m\n",
		},
		{
			name: "bold green",
			method: func(p *Printer) error {
				return p.BoldGreen("done")
			},
			want: "\x1b[1m\x1b[32mdone\x1b[0m\n",
		},
		{
			name: "bold yellow",
			method: func(p *Printer) error {
				return p.BoldYellow("careful")
			},
			want: "\x1b[1m\x1b[33mcareful\x1b[0m\n",
		},
		{
			name: "bold blue",
			method: func(p *Printer) error {
				return p.BoldBlue("note")
			},
			want: "\x1b[1m\x1b[34mnote\x1b[0m\n",
		},
		{
			name: "red",
			method: func(p *Printer) error {
				return p.Red("123")
			},
			want: "\x1b[31m123\x1b[0m\n",
		},
		{
			name: "green",
			method: func(p *Printer) error {
				return p.Green("ok")
			},
			want: "\x1b[32mok\x1b[0m\n",
		},
		{
			name: "yellow",
			method: func(p *Printer) error {
				return p.Yellow("warn")
			},
			want: "\x1b[33mwarn\x1b[0m\n",
		},
		{
			name: "blue",
			method: func(p *Printer) error {
				return p.Blue("info")
			},
			want: "\x1b[34minfo\x1b[0m\n",
		},
		{
			name: "plain",
			method: func(p *Printer) error {
				return p.Plain("abc")
			},
			want: "abc\n",
		},
		{
			name: "styled with explicit attributes",
			method: func(p *Printer) error {
				return p.Styled([]sgr.Attribute{sgr.Underline, sgr.BgYellow}, "marked")
			},
			want: "\x1b[4m\x1b[43mmarked\x1b[0m\n",
		},
		{
			name: "styled with no attributes still resets",
			method: func(p *Printer) error {
				return p.Styled(nil, "x")
			},
			want: "x\x1b[0m\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := NewPrinterWithWriter(&buf)

			if err := tt.method(p); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestPrinterFragments verifies fragments are joined before styling, so a
// multi-fragment call is indistinguishable from one pre-concatenated call.
func TestPrinterFragments(t *testing.T) {
	var split, joined bytes.Buffer

	if err := NewPrinterWithWriter(&split).Green("789", "258"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := NewPrinterWithWriter(&joined).Green("789258"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if split.String() != joined.String() {
		t.Errorf("fragment output %q != concatenated output %q", split.String(), joined.String())
	}

	var boldBlue bytes.Buffer
	if err := NewPrinterWithWriter(&boldBlue).BoldBlue("789", "258", "fgh"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "\x1b[1m\x1b[34m789258fgh\x1b[0m\n"
	if got := boldBlue.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("pipe closed")
}

func TestPrinterPropagatesWriteError(t *testing.T) {
	p := NewPrinterWithWriter(failingWriter{})
	if err := p.BoldRed("123"); err == nil {
		t.Error("expected write error, got nil")
	}
	if err := p.Plain("abc"); err == nil {
		t.Error("expected write error, got nil")
	}
}

// TestPrinterConcurrent checks that concurrent writers never interleave
// escape sequences within a line.
func TestPrinterConcurrent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinterWithWriter(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = p.BoldRed("even")
			} else {
				_ = p.Blue("odd")
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d lines, want 20", len(lines))
	}
	for _, line := range lines {
		if line != "\x1b[1m\x1b[31meven\x1b[0m" && line != "\x1b[34modd\x1b[0m" {
			t.Errorf("garbled line %q", line)
		}
	}
}
