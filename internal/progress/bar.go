// Package progress draws a single-line text progress bar.
package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const defaultWidth = 40

// Bar redraws itself in place with a carriage return on every Advance.
type Bar struct {
	mu    sync.Mutex
	out   io.Writer
	label string
	total int
	done  int
	width int
	start time.Time
	now   func() time.Time
}

// New returns a bar for total units of work and draws it once.
func New(out io.Writer, label string, total int) *Bar {
	b := &Bar{out: out, label: label, total: total, width: defaultWidth, now: time.Now}
	b.start = b.now()
	b.draw()
	return b
}

// Advance moves the bar forward by n units.
func (b *Bar) Advance(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.done += n
	if b.done > b.total {
		b.done = b.total
	}
	b.draw()
}

// Done returns the number of completed units.
func (b *Bar) Done() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.done
}

// Finish terminates the bar line.
func (b *Bar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintln(b.out)
}

func (b *Bar) draw() {
	fmt.Fprint(b.out, "\r"+b.line())
}

func (b *Bar) line() string {
	frac := 1.0
	if b.total > 0 {
		frac = float64(b.done) / float64(b.total)
	}
	filled := int(frac * float64(b.width))
	bar := strings.Repeat("=", filled)
	if filled < b.width {
		bar += ">" + strings.Repeat(" ", b.width-filled-1)
	}
	elapsed := b.now().Sub(b.start).Round(time.Second)
	return fmt.Sprintf("%s [%s] %d/%d %5.1f%% %s", b.label, bar, b.done, b.total, frac*100, elapsed)
}
