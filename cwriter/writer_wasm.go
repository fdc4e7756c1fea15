//go:build wasm

package cwriter

func isTerminal(int) bool {
	return false
}

// GetTermSize returns WxH of the underlying terminal.
func (w *Writer) GetTermSize() (width, height int, err error) {
	return -1, -1, ErrNotTTY
}
