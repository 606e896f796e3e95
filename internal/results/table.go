// Package results reads and writes the whitespace-separated results table:
// a header line "l t m s" followed by one row per simulated grid point.
package results

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"ising/internal/sims/ising"
)

// Header is the first line of every results table.
const Header = "l t m s"

// FormatRow renders r as "<l> <t:.2f> <m:.5f> <s:.5f>".
func FormatRow(r ising.Result) string {
	return fmt.Sprintf("%d %.2f %.5f %.5f", r.Size, r.Temperature, r.Magnetization, r.Susceptibility)
}

// Writer appends result rows to an underlying writer. It is not safe for
// concurrent use; the sweep driver serializes calls to Record.
type Writer struct {
	w    *bufio.Writer
	file *os.File
	rows int
}

// NewWriter writes the header to w and returns a Writer appending to it.
func NewWriter(w io.Writer) (*Writer, error) {
	rw := &Writer{w: bufio.NewWriter(w)}
	if _, err := rw.w.WriteString(Header + "\n"); err != nil {
		return nil, errors.Wrap(err, "write header")
	}
	return rw, nil
}

// Create truncates or creates path and returns a Writer for it.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", path)
	}
	rw, err := NewWriter(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	rw.file = f
	return rw, nil
}

// Record appends one row and flushes it, so completed points survive a
// later crash.
func (w *Writer) Record(r ising.Result) error {
	if _, err := w.w.WriteString(FormatRow(r) + "\n"); err != nil {
		return errors.Wrap(err, "write row")
	}
	if err := w.w.Flush(); err != nil {
		return errors.Wrap(err, "flush row")
	}
	w.rows++
	return nil
}

// Rows returns the number of rows written so far.
func (w *Writer) Rows() int { return w.rows }

// Close flushes buffered data and closes the file opened by Create.
func (w *Writer) Close() error {
	if err := w.w.Flush(); err != nil {
		if w.file != nil {
			w.file.Close()
		}
		return errors.Wrap(err, "flush")
	}
	if w.file != nil {
		return errors.Wrap(w.file.Close(), "close")
	}
	return nil
}

// ReadTable parses a results table. Blank lines are skipped.
func ReadTable(r io.Reader) ([]ising.Result, error) {
	sc := bufio.NewScanner(r)
	line := 0
	var out []ising.Result
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if line == 1 {
			if strings.Join(strings.Fields(text), " ") != Header {
				return nil, errors.Errorf("line 1: header %q, want %q", text, Header)
			}
			continue
		}
		if text == "" {
			continue
		}
		res, err := parseRow(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		out = append(out, res)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scan")
	}
	if line == 0 {
		return nil, errors.New("empty table")
	}
	return out, nil
}

// ReadFile parses the results table stored at path.
func ReadFile(path string) ([]ising.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return ReadTable(f)
}

var floatColumns = [3]string{"t", "m", "s"}

func parseRow(text string) (ising.Result, error) {
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return ising.Result{}, errors.Errorf("want 4 fields, got %d", len(fields))
	}
	size, err := strconv.Atoi(fields[0])
	if err != nil {
		return ising.Result{}, errors.Wrap(err, "l")
	}
	var vals [3]float64
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return ising.Result{}, errors.Wrap(err, floatColumns[i])
		}
		vals[i] = v
	}
	return ising.Result{Size: size, Temperature: vals[0], Magnetization: vals[1], Susceptibility: vals[2]}, nil
}
