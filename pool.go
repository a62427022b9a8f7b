package layeredmap

import (
	"sync"
	"sync/atomic"
)

// maxInstances is the maximum number of concurrently live map instances
// sharing one process.
const maxInstances = 1024

// instancePool is the process-wide registry of managers and the free-list
// of instance indices map constructors draw from.
type instancePool struct {
	managers [maxInstances]*manager

	mu   sync.Mutex
	free []int
}

func newInstancePool() *instancePool {
	p := &instancePool{free: make([]int, maxInstances)}
	for i := range p.managers {
		p.managers[i] = newManager()
		p.free[i] = maxInstances - 1 - i
	}
	return p
}

func (p *instancePool) acquire() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) == 0 {
		return 0, ErrInstancePoolExhausted
	}
	idx := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	return idx, nil
}

// release deregisters every goroutine's counter bound to idx, resets the
// manager at idx, and returns idx to the free-list. Per the data model,
// recycling an instance index is what finally destroys any per-thread
// counters a thread never got the chance to tear down itself (Go has no
// hook for "the thread that owned idx exited").
func (p *instancePool) release(idx int) {
	mgr := p.managers[idx]
	clearGoroutineSlot(idx, mgr)
	mgr.reset()

	p.mu.Lock()
	p.free = append(p.free, idx)
	p.mu.Unlock()
}

var pool = newInstancePool()

// goroutineCounters is the per-goroutine array of lazily-created
// counters, one slot per live instance index — the Go-shaped substitute
// for a thread_local InitalizedVector<ThreadValue> described in the
// data model's Open Question resolution.
type goroutineCounters struct {
	slots [maxInstances]atomic.Pointer[perThreadCounter]
}

// goroutineRegistry maps a goroutine id to its goroutineCounters. A plain
// sync.Map is the right-sized tool here: every entry is written once (on
// a goroutine's first counter access) and read many times afterward,
// which is exactly sync.Map's documented sweet spot. It is read on every
// counterFor call, i.e. on every inserting Write and every Delete.
var goroutineRegistry sync.Map // uint64 goroutine id -> *goroutineCounters

// counterFor returns (creating if necessary) the calling goroutine's
// counter for instance idx, registering it with mgr on first touch.
// Registration only happens once per (goroutine, instance) pair; every
// subsequent call is a goroutine-id lookup plus a lock-free load.
func counterFor(idx int, mgr *manager) *perThreadCounter {
	gid := goroutineID()
	v, _ := goroutineRegistry.LoadOrStore(gid, &goroutineCounters{})
	gc := v.(*goroutineCounters)

	if c := gc.slots[idx].Load(); c != nil {
		return c
	}
	c := newPerThreadCounter(mgr)
	if gc.slots[idx].CompareAndSwap(nil, c) {
		return c
	}
	// Lost a race against another registration for the same (goroutine,
	// instance) pair — impossible under normal use since a single
	// goroutine runs sequentially, but cheap to handle defensively.
	mgr.deregister(c)
	return gc.slots[idx].Load()
}

// clearGoroutineSlot nils every goroutine's slot for idx, deregistering
// whatever counter (if any) was sitting there so the registry's DTOR_Sum
// bookkeeping is exercised exactly as it would be for a thread that
// exited normally.
func clearGoroutineSlot(idx int, mgr *manager) {
	goroutineRegistry.Range(func(_, v any) bool {
		gc := v.(*goroutineCounters)
		if c := gc.slots[idx].Swap(nil); c != nil {
			mgr.deregister(c)
		}
		return true
	})
}
