package core

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

// Clock supplies entry timestamps. The builder captures one value per
// emission, so a Clock only needs to be accurate to the resolution the
// embedding application cares about.
type Clock func() time.Time

var (
	coarseOnce sync.Once
	coarseNow  unsafe.Pointer // *time.Time
)

// CoarseClock returns a Clock backed by a cached time.Time refreshed every
// 500µs by a background goroutine. Timestamps read from it are
// monotonically non-decreasing but entries emitted within one refresh
// interval share a value. The goroutine is started on first use and runs
// for the lifetime of the process; this is intentional because logging
// typically spans the entire application lifecycle.
func CoarseClock() Clock {
	coarseOnce.Do(func() {
		t := time.Now()
		atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
			}
		}()
	})
	return func() time.Time {
		return *(*time.Time)(atomic.LoadPointer(&coarseNow))
	}
}
