package crypto

import "runtime"

// Wipe zeroes every given buffer. This is best-effort: copies made
// elsewhere (for example by math/big) are not reached.
//
//go:noinline
func Wipe(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
	}
	// Keep the buffers live until the writes are done.
	runtime.KeepAlive(bufs)
}
