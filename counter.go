package layeredmap

import (
	"sync/atomic"
	"unsafe"
)

// perThreadCounter is a goroutine-affine signed counter participating in
// its manager's global-sum estimate. Once Increment's running value
// reaches Threshold, the manager is asked to rebalance every registered
// counter's threshold from the current global sum.
//
// A perThreadCounter is bound to exactly one manager for its life.
type perThreadCounter struct {
	value     atomic.Int64
	threshold atomic.Int64
	manager   *manager

	// pad rounds the struct up to a full cache line so that two
	// goroutines' counters, allocated back to back by the Go runtime,
	// never false-share.
	pad [(cacheLineSize - unsafe.Sizeof(struct {
		value     atomic.Int64
		threshold atomic.Int64
		manager   *manager
	}{})%cacheLineSize) % cacheLineSize]byte
}

func newPerThreadCounter(m *manager) *perThreadCounter {
	c := &perThreadCounter{manager: m}
	m.register(c)
	return c
}

// increment posts the counter up by one, asks the manager to rebalance
// if the threshold was crossed, then waits out any in-flight quiesced
// read of the global value.
func (c *perThreadCounter) increment() {
	if c.value.Add(1) >= c.threshold.Load() {
		c.manager.updateManager()
	}
	c.manager.waitForGlobalValue()
}

func (c *perThreadCounter) decrement() {
	c.value.Add(-1)
	c.manager.waitForGlobalValue()
}

// adjustThreshold sets Threshold to the counter's current value plus
// delta, called by the manager under its registry lock during a
// rebalance.
func (c *perThreadCounter) adjustThreshold(delta int64) {
	c.threshold.Store(c.value.Load() + delta)
}

func (c *perThreadCounter) load() int64 {
	return c.value.Load()
}
