package metrics

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Bus is a single-slot SPSC mailbox: a collector worker publishes
// snapshots into it, and the UI thread drains the latest one once per
// tick without blocking. Intermediate snapshots between two UI ticks are
// overwritten and dropped — only the latest matters.
type Bus struct {
	mu      sync.Mutex
	pending *Snapshot
	has     atomic.Bool
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Publish overwrites the pending slot with snapshot. Safe to call from any
// goroutine; only one collector is expected to call it, but it tolerates
// concurrent callers.
func (b *Bus) Publish(snapshot Snapshot) {
	b.mu.Lock()
	b.pending = &snapshot
	b.mu.Unlock()
	b.has.Store(true)
}

// TryReceive returns the latest published snapshot and clears the slot,
// or returns ok=false if nothing new has been published since the last
// receive. It never blocks.
func (b *Bus) TryReceive() (snapshot Snapshot, ok bool) {
	if !b.has.Load() {
		return Snapshot{}, false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pending == nil {
		return Snapshot{}, false
	}
	snapshot = *b.pending
	b.pending = nil
	b.has.Store(false)
	return snapshot, true
}

// Collector produces one snapshot per invocation; RunCollectors supervises
// one goroutine per collector, publishing each result and stopping the
// whole group if any collector or the context reports an error.
type Collector func(ctx context.Context) (Snapshot, error)

// RunCollectors launches one goroutine per collector function, each
// looping until ctx is cancelled: call the collector, publish its
// snapshot, repeat. It returns the first error returned by any tick or
// collector call, per errgroup semantics, after cancelling the rest; once
// ctx is cancelled that is the context's error.
func RunCollectors(ctx context.Context, bus *Bus, tick func(ctx context.Context) error, collectors ...Collector) error {
	eg, gctx := errgroup.WithContext(ctx)
	for _, collect := range collectors {
		collect := collect
		eg.Go(func() error {
			for {
				if err := tick(gctx); err != nil {
					return err
				}
				snapshot, err := collect(gctx)
				if err != nil {
					return err
				}
				bus.Publish(snapshot)
			}
		})
	}
	return eg.Wait()
}
