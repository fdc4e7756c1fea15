// Package cwriter is a buffered terminal writer which rewrites previously
// flushed lines in place.
package cwriter

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"
)

// https://github.com/dylanaraps/pure-sh-bible#cursor-movement
const (
	escOpen  = "\x1b["
	cuuAndEd = "A\x1b[J"
)

// ErrNotTTY not a TeleTYpewriter error.
var ErrNotTTY = errors.New("not a terminal")

// Writer is a buffered writer that updates the terminal. The contents of
// the buffer are written out on Flush, after the lines of the previous
// flush have been erased.
type Writer struct {
	out      io.Writer
	buf      bytes.Buffer
	lines    int
	fd       int
	terminal bool
}

// New returns a new Writer with defaults.
func New(out io.Writer) *Writer {
	w := &Writer{out: out}
	if f, ok := out.(*os.File); ok {
		w.fd = int(f.Fd())
		w.terminal = isTerminal(w.fd)
	}
	return w
}

// IsTerminal reports whether the underlying output is a terminal.
func (w *Writer) IsTerminal() bool {
	return w.terminal
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *Writer) WriteString(s string) (int, error) {
	return w.buf.WriteString(s)
}

// Flush erases the lines of the previous flush and writes the buffered
// frame out. The lines argument is the number of lines the frame occupies,
// to be erased on the next flush.
func (w *Writer) Flush(lines int) error {
	if w.lines > 0 {
		if err := w.ansiCuuAndEd(w.lines); err != nil {
			return err
		}
	}
	w.lines = lines
	_, err := w.buf.WriteTo(w.out)
	return err
}

// if n > 99 it will allocate
func (w *Writer) ansiCuuAndEd(n int) error {
	buf := make([]byte, 8)
	buf = strconv.AppendInt(buf[:copy(buf, escOpen)], int64(n), 10)
	_, err := w.out.Write(append(buf, cuuAndEd...))
	return err
}
