package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTryReceiveEmptyBusReturnsFalse(t *testing.T) {
	b := NewBus()
	_, ok := b.TryReceive()
	require.False(t, ok, "expected no snapshot on empty bus")
}

func TestPublishThenReceiveRoundTrips(t *testing.T) {
	b := NewBus()
	want := Snapshot{Memory: MemoryReading{TotalBytes: 1024}}
	b.Publish(want)

	got, ok := b.TryReceive()
	require.True(t, ok)
	require.Equal(t, want.Memory.TotalBytes, got.Memory.TotalBytes)

	_, ok = b.TryReceive()
	require.False(t, ok, "expected slot drained after first receive")
}

func TestPublishOverwritesPendingSnapshot(t *testing.T) {
	b := NewBus()
	b.Publish(Snapshot{Memory: MemoryReading{TotalBytes: 1}})
	b.Publish(Snapshot{Memory: MemoryReading{TotalBytes: 2}})

	got, ok := b.TryReceive()
	require.True(t, ok)
	require.Equal(t, uint64(2), got.Memory.TotalBytes, "expected latest snapshot only")
}

func TestSnapshotClampTruncatesProcessTable(t *testing.T) {
	s := Snapshot{Processes: make([]ProcessReading, MaxProcesses+50)}
	s.Clamp()
	require.Len(t, s.Processes, MaxProcesses)
}

func TestRunCollectorsPropagatesError(t *testing.T) {
	b := NewBus()
	wantErr := errors.New("collector failed")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := RunCollectors(ctx, b,
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) (Snapshot, error) { return Snapshot{}, wantErr },
	)
	require.ErrorIs(t, err, wantErr)
}

func TestRunCollectorsStopsOnContextCancel(t *testing.T) {
	b := NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunCollectors(ctx, b,
		func(ctx context.Context) error { return ctx.Err() },
		func(ctx context.Context) (Snapshot, error) { return Snapshot{}, nil },
	)
	require.Error(t, err)
}
