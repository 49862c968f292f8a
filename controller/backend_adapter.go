package controller

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/DCal661/league-of-misfits/model"
)

// backendAdapter maps the companion backend's pre-aggregated feeds onto
// the model types. The backend already pairs matchups and computes
// awards, so this adapter mostly validates and re-tags.
type backendAdapter struct {
	c *controller
}

func (a *backendAdapter) getState(ctx context.Context) (*model.SportState, error) {
	state, err := a.c.backend.GetState(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching backend state: %w", err)
	}
	return state, nil
}

func (a *backendAdapter) getStandings(ctx context.Context) ([]model.Team, error) {
	teams, err := a.c.backend.GetStandings(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching backend standings: %w", err)
	}
	// The feed claims to be ranked already, but re-ranking through the
	// local ranker costs nothing and repairs sparse or stale ranks.
	return rankTeams(teams), nil
}

func (a *backendAdapter) getMatchups(ctx context.Context, week int) ([]model.Matchup, error) {
	matchups, err := a.c.backend.GetMatchups(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("error fetching backend matchups for week %d: %w", week, err)
	}
	return matchups, nil
}

func (a *backendAdapter) getTrend(ctx context.Context, currentWeek int) ([]model.TrendPoint, error) {
	weeks := trendWeekCount(currentWeek)

	var mu sync.Mutex
	trend := make([]model.TrendPoint, 0, weeks)

	g, gctx := errgroup.WithContext(ctx)
	for week := 1; week <= weeks; week++ {
		week := week
		g.Go(func() error {
			matchups, err := a.c.backend.GetMatchups(gctx, week)
			if err != nil {
				return fmt.Errorf("error fetching backend matchups for week %d: %w", week, err)
			}

			points := make([]float64, 0, len(matchups)*2)
			for _, m := range matchups {
				points = append(points, m.Score1, m.Score2)
			}
			if p := trendPoint(week, points); p != nil {
				mu.Lock()
				trend = append(trend, *p)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(trend, func(a, b model.TrendPoint) int {
		return a.Week - b.Week
	})
	return trend, nil
}

func (a *backendAdapter) getAwards(ctx context.Context, currentWeek int) ([]model.WeeklyAwards, error) {
	first, last := awardWindow(currentWeek)

	var mu sync.Mutex
	awards := make([]model.WeeklyAwards, 0, last-first+1)

	g, gctx := errgroup.WithContext(ctx)
	for week := first; week <= last; week++ {
		week := week
		g.Go(func() error {
			w, err := a.c.backend.GetAwards(gctx, week)
			if err != nil {
				return fmt.Errorf("error fetching backend awards for week %d: %w", week, err)
			}
			if w != nil {
				mu.Lock()
				awards = append(awards, *w)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(awards, func(a, b model.WeeklyAwards) int {
		return b.Week - a.Week
	})
	return awards, nil
}
