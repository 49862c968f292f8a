package controller

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/DCal661/league-of-misfits/model"
)

// Refresh rebuilds the whole snapshot from the configured source. The
// standings, current-week matchups, trend and awards fetches run
// concurrently and are joined: if any of them fails the refresh fails
// and nothing is published.
//
// Every refresh takes a sequence number when it starts. If a newer
// refresh starts while this one is still in flight, this one's result
// is returned to its caller but not published, so a slow stale refresh
// can never overwrite fresher data.
func (c *controller) Refresh(ctx context.Context) (*model.Snapshot, error) {
	seq := c.refreshSeq.Add(1)
	start := c.clock.Now()

	adapter := getSourceAdapter(c.source, c)

	state, err := adapter.getState(ctx)
	if err != nil {
		return nil, err
	}

	snap := &model.Snapshot{
		State:     *state,
		FetchedAt: start,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Teams, err = adapter.getStandings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Matchups, err = adapter.getMatchups(gctx, state.Week)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Trend, err = adapter.getTrend(gctx, state.Week)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Awards, err = adapter.getAwards(gctx, state.Week)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.refreshSeq.Load() {
		log.Info("discarding stale refresh", "seq", seq, "latest", c.refreshSeq.Load())
		return snap, nil
	}
	c.snapshot = snap

	log.Info("league snapshot refreshed", "week", state.Week, "teams", len(snap.Teams), "took", time.Since(start))
	return snap, nil
}

func (c *controller) Snapshot() *model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

func (c *controller) MatchupsForWeek(ctx context.Context, week int) ([]model.Matchup, error) {
	return getSourceAdapter(c.source, c).getMatchups(ctx, week)
}

func (c *controller) RunPeriodicRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if _, err := c.Refresh(ctx); err != nil {
				log.Error("periodic refresh failed", "error", err)
			}
		}
	}
}
