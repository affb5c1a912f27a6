package concurrent

import (
	"sync"
	"sync/atomic"
)

// Counter is a synchronous counter tracking completed units of work
// and acting as the join barrier for a worker pool.
type Counter struct {
	waitGroup *sync.WaitGroup
	count     uint64
}

// NewCounter creates a new counter over the given wait group.
func NewCounter(waitGroup *sync.WaitGroup) *Counter {
	return &Counter{
		waitGroup: waitGroup,
	}
}

// Track marks one unit of work as done.
func (c *Counter) Track() {
	atomic.AddUint64(&c.count, 1)
	if c.waitGroup != nil {
		c.waitGroup.Done()
	}
}

// Get returns the current count.
func (c *Counter) Get() int {
	return int(atomic.LoadUint64(&c.count))
}
