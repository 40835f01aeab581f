package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPanelPadsToWidestLine(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"ab", "\033[32mlonger\033[0m", "☐ x"})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "+--------+" {
		t.Fatalf("unexpected top border %q", lines[0])
	}
	if lines[1] != "| ab     |" {
		t.Fatalf("unexpected padded line %q", lines[1])
	}
}

func TestProgressBar(t *testing.T) {
	if got := ProgressBar(1, 2, 10); got != "█████░░░░░  50%" {
		t.Fatalf("unexpected bar %q", got)
	}
	if got := ProgressBar(0, 0, 5); got != "░░░░░   0%" {
		t.Fatalf("unexpected empty bar %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("unexpected %q", got)
	}
	if got := Truncate("a very long task name", 10); got != "a very ..." {
		t.Fatalf("unexpected %q", got)
	}
}

func TestColorDisabled(t *testing.T) {
	SetColorForcing(true, true)
	defer SetColorForcing(false, false)
	if got := C(fgRed, "x"); got != "x" {
		t.Fatalf("expected plain text, got %q", got)
	}
}
