//go:build windows

package cwriter

import "golang.org/x/sys/windows"

func isTerminal(fd int) bool {
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(fd), &mode) == nil
}

// GetTermSize returns WxH of the underlying terminal.
func (w *Writer) GetTermSize() (width, height int, err error) {
	if !w.terminal {
		return -1, -1, ErrNotTTY
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(w.fd), &info); err != nil {
		return -1, -1, err
	}
	width = int(info.Window.Right - info.Window.Left + 1)
	height = int(info.Window.Bottom - info.Window.Top + 1)
	return width, height, nil
}
