package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakePruner struct {
	mu      sync.Mutex
	cutoffs []time.Time
	err     error
}

func (p *fakePruner) PruneRevalidations(_ context.Context, before time.Time) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cutoffs = append(p.cutoffs, before)
	if p.err != nil {
		return 0, p.err
	}
	return 3, nil
}

func (p *fakePruner) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cutoffs)
}

func TestCleanupUsesRetentionCutoff(t *testing.T) {
	pruner := &fakePruner{}
	c := NewCleaner(pruner, time.Hour, 24*time.Hour)
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if removed := c.cleanup(context.Background()); removed != 3 {
		t.Errorf("expected 3 removed, got %d", removed)
	}
	if want := now.Add(-24 * time.Hour); !pruner.cutoffs[0].Equal(want) {
		t.Errorf("expected cutoff %s, got %s", want, pruner.cutoffs[0])
	}
}

func TestCleanupSurvivesErrors(t *testing.T) {
	pruner := &fakePruner{err: errors.New("database down")}
	c := NewCleaner(pruner, time.Hour, time.Hour)

	if removed := c.cleanup(context.Background()); removed != 0 {
		t.Errorf("expected nothing removed, got %d", removed)
	}
}

func TestStartRunsImmediatelyAndStops(t *testing.T) {
	pruner := &fakePruner{}
	c := NewCleaner(pruner, time.Hour, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	c.Start(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for pruner.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	cancel()

	if pruner.count() != 1 {
		t.Errorf("expected one immediate cycle, got %d", pruner.count())
	}
}
