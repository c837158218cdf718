//go:build !linux

package framebuffer

// Open is not supported on this platform.
func Open(_ string, _, _ int) (*Sink, error) {
	return nil, ErrNotSupported
}
