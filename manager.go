package layeredmap

import (
	"math"
	"runtime"
	"sync"
)

// maxError bounds the relative error the manager tolerates between a
// growth target and the global value actually observed when that target
// is reached.
const maxError = 1e-5

// callbackFunc computes a new target global value from the current one.
// It is free to have side effects (the hash map's growth callback appends
// a layer), but must always return a target >= the layer that side
// effect settled on.
type callbackFunc func(global int64) int64

func defaultCallback(int64) int64 {
	return int64(primes[0])
}

// manager aggregates a set of perThreadCounters into an exact global sum
// and decides, via a user-settable callback, when that sum's growth
// should shrink every counter's threshold.
//
// registryMu is a real mutex rather than a spinlock deliberately: updates
// are infrequent and TryLock gives UpdateManager its try-lock-then-wait
// (never retry) discipline for free, which is what avoids livelock when
// many counters cross their threshold at once.
type manager struct {
	registryMu sync.Mutex
	counters   []*perThreadCounter
	dtorSum    int64

	quiesceMu sync.Mutex

	callbackMu sync.Mutex
	callback   callbackFunc
}

func newManager() *manager {
	return &manager{callback: defaultCallback}
}

// reset returns the manager to its just-constructed state. Per spec, any
// perThreadCounters still registered from a prior life of this instance
// index are the caller's responsibility to deregister first — reset does
// not walk the registry itself, mirroring the original's rationale that
// re-initializing ThreadValues from here would race their own
// destruction.
func (m *manager) reset() {
	m.registryMu.Lock()
	m.counters = nil
	m.dtorSum = 0
	m.registryMu.Unlock()

	m.callbackMu.Lock()
	m.callback = defaultCallback
	m.callbackMu.Unlock()
}

func (m *manager) setCallback(fn callbackFunc) {
	m.callbackMu.Lock()
	m.callback = fn
	m.callbackMu.Unlock()
}

func (m *manager) register(c *perThreadCounter) {
	m.registryMu.Lock()
	m.counters = append(m.counters, c)
	m.updateLocked()
	m.registryMu.Unlock()
}

// deregister removes c from the registry, folding its last value into
// dtorSum so GetGlobalValue keeps counting it even though it is no
// longer iterated.
func (m *manager) deregister(c *perThreadCounter) {
	m.registryMu.Lock()
	for i, v := range m.counters {
		if v == c {
			m.dtorSum += v.load()
			last := len(m.counters) - 1
			m.counters[i] = m.counters[last]
			m.counters = m.counters[:last]
			break
		}
	}
	m.registryMu.Unlock()
}

// updateLocked recomputes the global value, asks the callback for a new
// target, and spreads the margin to every registered counter's
// threshold. Must be called with registryMu held.
func (m *manager) updateLocked() {
	if len(m.counters) == 0 {
		return
	}
	var sum int64
	for _, c := range m.counters {
		sum += c.load()
	}
	global := sum + m.dtorSum

	m.callbackMu.Lock()
	cb := m.callback
	m.callbackMu.Unlock()
	target := cb(global)

	margin := target - global
	if minMargin := int64(math.Ceil(float64(target) * maxError)); minMargin > margin {
		margin = minMargin
	}
	margin /= int64(len(m.counters))

	for _, c := range m.counters {
		c.adjustThreshold(margin)
	}
}

// updateManager rebalances thresholds, unless another goroutine is
// already doing so — in which case it waits for that update to finish
// rather than retrying its own, since the thresholds it would have
// computed are already stale by the time it could acquire the lock.
func (m *manager) updateManager() {
	if !m.registryMu.TryLock() {
		m.registryMu.Lock()
		m.registryMu.Unlock()
		return
	}
	m.updateLocked()
	m.registryMu.Unlock()
}

// getGlobalValue returns the exact sum of every live and destroyed
// counter, as of the instant both the quiesce lock and the registry lock
// are simultaneously held. Holding quiesceMu blocks every counter's
// Increment/Decrement from completing (see waitForGlobalValue), so no
// mutator can observe a stale read mid-flight.
func (m *manager) getGlobalValue() int64 {
	m.quiesceMu.Lock()
	m.registryMu.Lock()
	var sum int64
	for _, c := range m.counters {
		sum += c.load()
	}
	dtor := m.dtorSum
	m.registryMu.Unlock()
	m.quiesceMu.Unlock()
	return sum + dtor
}

// waitForGlobalValue spins until the quiesce lock is not held by anyone.
func (m *manager) waitForGlobalValue() {
	for {
		if m.quiesceMu.TryLock() {
			m.quiesceMu.Unlock()
			return
		}
		runtime.Gosched()
	}
}
