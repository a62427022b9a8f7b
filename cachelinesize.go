package layeredmap

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// cacheLineSize is used to pad the per-goroutine counter so that two
// goroutines' counters, allocated back to back by the Go runtime, never
// false-share a cache line with each other.
const cacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})
