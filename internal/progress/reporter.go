// Package progress reports the files a static build writes. Interactive
// terminals get a single bar that names the file being written; CI logs get
// one numbered line per file so a failed build shows how far it got.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives one Update per output file, numbered from 1 to the
// total announced in Start.
type Reporter interface {
	Start(total int)
	Update(current int, file string)
	Finish()
}

// NewReporter picks line output when running under CI and a bar otherwise.
// Both write to stderr so build summaries on stdout stay clean.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: os.Stderr}
	}
	return &TerminalReporter{Out: os.Stderr}
}

// TerminalReporter draws a bar that is cleared once the build finishes.
type TerminalReporter struct {
	Out io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	out := r.Out
	if out == nil {
		out = os.Stderr
	}
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("writing build"),
		progressbar.OptionSetItsString("files"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, file string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(file)
	_ = r.bar.Set(current)
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints "[n/total] path" for each written file.
type CIReporter struct {
	Out   io.Writer
	total int
}

func (r *CIReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.Out, "Writing %d build files\n", total)
}

func (r *CIReporter) Update(current int, file string) {
	fmt.Fprintf(r.Out, "[%d/%d] %s\n", current, r.total, file)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.Out, "Wrote %d build files\n", r.total)
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int) {}

func (Nop) Update(int, string) {}

func (Nop) Finish() {}
