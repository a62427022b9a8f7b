package layeredmap

import (
	"runtime"
	"strconv"
)

// goroutineID parses the calling goroutine's id out of its own stack
// trace header ("goroutine 123 [running]: ..."). Go deliberately exposes
// no public, stable goroutine identity and no exit hook — this is the
// closest portable equivalent to the thread-id a TLS-backed counter array
// would be keyed by, used to find or create this goroutine's slot in the
// per-instance counter registry on every counterFor call.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]
	const prefix = "goroutine "
	if len(b) > len(prefix) && string(b[:len(prefix)]) == prefix {
		b = b[len(prefix):]
	}
	end := 0
	for end < len(b) && b[end] >= '0' && b[end] <= '9' {
		end++
	}
	id, _ := strconv.ParseUint(string(b[:end]), 10, 64)
	return id
}
