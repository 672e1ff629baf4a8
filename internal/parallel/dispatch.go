// Package parallel implements row-band work-stealing dispatch over a
// render target, as described by the rasterizer's concurrency model: the
// framebuffer is partitioned into disjoint horizontal bands and each
// worker goroutine atomically claims the next unclaimed band until none
// remain. Because bands are disjoint by construction, workers never
// contend on the same (x, y) texel and no per-pixel locking is needed.
//
// Adapted from the worker-pool/atomic-queue pattern in gogpu/gg's
// internal/parallel package, simplified from a general task queue with
// work stealing between per-worker channels to a single shared atomic
// row cursor — the right fit here because bands are a static partition
// computed once per render rather than an open-ended task stream.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// fragmentsPerGroup is the approximate fragment budget per dispatched
// band, used to size bands so that no single worker is saturated with
// disproportionate work.
const fragmentsPerGroup = 20000

// BandHeight computes the row-band height for a render target of the
// given width and height, an MSAA supersampling level (0 for no AA),
// and the number of available workers.
//
// The band height is derived from a fixed fragments-per-group budget,
// scaled down as the per-row fragment cost grows with width and with
// the MSAA subsample grid (2^level per axis), then clamped so that the
// number of resulting bands never exceeds workers (there is no benefit
// to more bands than worker goroutines that can run them).
func BandHeight(width, height, msaaLevel, workers int) int {
	if workers < 1 {
		workers = 1
	}
	perRowCost := width << uint(msaaLevel)
	if perRowCost < 1 {
		perRowCost = 1
	}
	rows := fragmentsPerGroup / perRowCost
	if rows < 1 {
		rows = 1
	}

	bands := ceilDiv(height, rows)
	if bands > workers {
		rows = ceilDiv(height, workers)
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

// Workers returns a sensible default worker count: GOMAXPROCS, unless
// overridden by requested > 0.
func Workers(requested int) int {
	if requested > 0 {
		return requested
	}
	return runtime.GOMAXPROCS(0)
}

// Dispatch partitions [0, height) into contiguous bands of bandHeight
// rows and runs fn once per band across up to workers goroutines. Each
// goroutine atomically claims the next unclaimed band via a shared
// cursor; there is no cross-band synchronization beyond the final join,
// matching the render contract that a render call is synchronous and
// not interruptible.
//
// fn must only touch rows in [rowStart, rowEnd); Dispatch's disjointness
// guarantee depends on callers honoring that contract when writing to a
// shared Target via WriteExclusiveUnchecked.
func Dispatch(height, bandHeight, workers int, fn func(rowStart, rowEnd int)) {
	if height <= 0 {
		return
	}
	if bandHeight < 1 {
		bandHeight = 1
	}
	if workers < 1 {
		workers = 1
	}
	if workers == 1 {
		for start := 0; start < height; start += bandHeight {
			fn(start, min(start+bandHeight, height))
		}
		return
	}

	var cursor atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for {
				start := int(cursor.Add(int64(bandHeight))) - bandHeight
				if start >= height {
					return
				}
				end := start + bandHeight
				if end > height {
					end = height
				}
				fn(start, end)
			}
		}()
	}
	wg.Wait()
}
