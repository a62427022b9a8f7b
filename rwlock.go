package layeredmap

import (
	"runtime"
	"sync/atomic"
)

// slot occupancy, carried in the lock word's top bit.
const (
	slotEmpty     uint32 = 0x00000000
	slotPopulated uint32 = 0x80000000
)

const (
	valueBitMask   uint32 = 0x80000000
	writerBitMask  uint32 = 0x40000000
	readerCountMask uint32 = 0x3FFFFFFF
)

// slotLock is a spinning read/write lock whose single atomic word also
// carries the slot's occupancy flag in its top bit, so readers and the
// lock state share one cache line and one CAS.
//
//	bit 31   VALUE   (0 = empty, 1 = populated)
//	bit 30   WRITER  (a writer holds or is acquiring the slot)
//	bits 29..0 READERS (count of concurrent readers)
//
// The zero value is a correctly initialized, empty, unlocked slotLock.
type slotLock struct {
	word atomic.Uint32
}

// readLock spins until no writer holds the slot, then registers as a
// reader and returns the slot's VALUE bit as it was at acquisition.
func (l *slotLock) readLock() uint32 {
	for {
		cur := l.word.Load()
		if cur&writerBitMask == 0 {
			if l.word.CompareAndSwap(cur, cur+1) {
				return cur & valueBitMask
			}
		}
		runtime.Gosched()
	}
}

// readUnlock releases one reader registration.
func (l *slotLock) readUnlock() {
	l.word.Add(^uint32(0))
}

// writeLock spins until no writer holds the slot, claims the WRITER bit,
// then spins until all readers have drained, returning the slot's VALUE
// bit as it was at acquisition.
func (l *slotLock) writeLock() uint32 {
	for {
		cur := l.word.Load()
		if cur&writerBitMask == 0 {
			if l.word.CompareAndSwap(cur, cur|writerBitMask) {
				for l.word.Load()&readerCountMask != 0 {
					runtime.Gosched()
				}
				return cur & valueBitMask
			}
		}
		runtime.Gosched()
	}
}

// writeUnlock releases the writer lock, publishing newValue (slotEmpty or
// slotPopulated) as the slot's new occupancy bit and clearing WRITER and
// READERS in the same store.
func (l *slotLock) writeUnlock(newValue uint32) {
	l.word.Store(newValue)
}
