package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}
	r.Start(2)
	r.Update(1, "index.html")
	r.Update(2, "assets/style.css")
	r.Finish()

	out := buf.String()
	for _, want := range []string{"Writing 2 build files", "[1/2] index.html", "[2/2] assets/style.css", "Wrote 2 build files"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalReporterWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{Out: &buf}
	r.Start(3)
	r.Update(1, "assets/panel.js")
	r.Finish()

	if buf.Len() == 0 {
		t.Error("terminal reporter wrote nothing to its writer")
	}
}

func TestTerminalReporterUpdateBeforeStart(t *testing.T) {
	r := &TerminalReporter{}
	// Must not panic without a bar.
	r.Update(1, "index.html")
	r.Finish()
}

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestNewReporterTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter().(*TerminalReporter); !ok {
		t.Error("expected TerminalReporter outside CI")
	}
}
