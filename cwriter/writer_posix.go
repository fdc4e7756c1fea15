//go:build !windows && !wasm

package cwriter

import "golang.org/x/sys/unix"

func isTerminal(fd int) bool {
	_, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	return err == nil
}

// GetTermSize returns WxH of the underlying terminal.
func (w *Writer) GetTermSize() (width, height int, err error) {
	if !w.terminal {
		return -1, -1, ErrNotTTY
	}
	ws, err := unix.IoctlGetWinsize(w.fd, unix.TIOCGWINSZ)
	if err != nil {
		return -1, -1, err
	}
	return int(ws.Col), int(ws.Row), nil
}
