package render

import (
	"sync"
	"sync/atomic"
)

// distribute runs work over the group range [0, groups) on threads goroutines
// and returns once all of them are done. The ranges passed to work tile
// [0, groups) without gaps or overlaps.
func distribute(strategy Strategy, threads, blockSize, groups int, work func(start, end int)) {
	var wg sync.WaitGroup

	switch strategy {
	case StrategyStatic:
		chunk := groups / threads
		for t := range threads {
			start, end := t*chunk, (t+1)*chunk
			if t == threads-1 {
				end = groups
			}
			if start == end {
				continue
			}
			wg.Go(func() { work(start, end) })
		}

	default:
		// Blocks are disjoint and independent, so the cursor only needs the
		// atomicity of Add, not any ordering with the pixel writes.
		var cursor atomic.Uint64
		block := uint64(blockSize)
		for range threads {
			wg.Go(func() {
				for {
					end := cursor.Add(block)
					start := end - block
					if start >= uint64(groups) {
						return
					}
					work(int(start), int(min(end, uint64(groups))))
				}
			})
		}
	}

	wg.Wait()
}
