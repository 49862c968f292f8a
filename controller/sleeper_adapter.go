package controller

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/DCal661/league-of-misfits/model"
)

// sleeperAdapter maps the raw Sleeper shape (flat per-roster settings
// and score rows) onto the model types. All derivation happens locally.
type sleeperAdapter struct {
	c *controller
}

func (a *sleeperAdapter) getState(ctx context.Context) (*model.SportState, error) {
	state, err := a.c.sleeper.GetSportState(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching sport state: %w", err)
	}
	return state, nil
}

// fetchLeague grabs the users and rosters for the league concurrently.
// Both are required, so either failing fails the pair.
func (a *sleeperAdapter) fetchLeague(ctx context.Context) ([]model.User, []model.Roster, error) {
	var users []model.User
	var rosters []model.Roster

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = a.c.sleeper.GetLeagueUsers(gctx, a.c.leagueID)
		if err != nil {
			return fmt.Errorf("error fetching league users: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rosters, err = a.c.sleeper.GetLeagueRosters(gctx, a.c.leagueID)
		if err != nil {
			return fmt.Errorf("error fetching league rosters: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return users, rosters, nil
}

func (a *sleeperAdapter) getStandings(ctx context.Context) ([]model.Team, error) {
	users, rosters, err := a.fetchLeague(ctx)
	if err != nil {
		return nil, err
	}
	return rankTeams(buildTeams(rosters, resolveManagers(users))), nil
}

func (a *sleeperAdapter) getMatchups(ctx context.Context, week int) ([]model.Matchup, error) {
	users, rosters, err := a.fetchLeague(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := a.c.sleeper.GetMatchups(ctx, a.c.leagueID, week)
	if err != nil {
		return nil, fmt.Errorf("error fetching matchups for week %d: %w", week, err)
	}

	return pairMatchups(rows, resolveTeamNames(rosters, resolveManagers(users))), nil
}

func (a *sleeperAdapter) getTrend(ctx context.Context, currentWeek int) ([]model.TrendPoint, error) {
	weeks := trendWeekCount(currentWeek)

	var mu sync.Mutex
	trend := make([]model.TrendPoint, 0, weeks)

	g, gctx := errgroup.WithContext(ctx)
	for week := 1; week <= weeks; week++ {
		week := week
		g.Go(func() error {
			rows, err := a.c.sleeper.GetMatchups(gctx, a.c.leagueID, week)
			if err != nil {
				return fmt.Errorf("error fetching scores for week %d: %w", week, err)
			}

			points := make([]float64, 0, len(rows))
			for _, row := range rows {
				points = append(points, row.Points)
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

	// Fetches complete in arbitrary order, the contract is week order.
	slices.SortFunc(trend, func(a, b model.TrendPoint) int {
		return a.Week - b.Week
	})
	return trend, nil
}

func (a *sleeperAdapter) getAwards(ctx context.Context, currentWeek int) ([]model.WeeklyAwards, error) {
	users, rosters, err := a.fetchLeague(ctx)
	if err != nil {
		return nil, err
	}
	names := resolveTeamNames(rosters, resolveManagers(users))

	first, last := awardWindow(currentWeek)

	var mu sync.Mutex
	awards := make([]model.WeeklyAwards, 0, last-first+1)

	g, gctx := errgroup.WithContext(ctx)
	for week := first; week <= last; week++ {
		week := week
		g.Go(func() error {
			rows, err := a.c.sleeper.GetMatchups(gctx, a.c.leagueID, week)
			if err != nil {
				return fmt.Errorf("error fetching scores for week %d: %w", week, err)
			}
			if w := weeklyAwards(week, rows, names); w != nil {
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

	// Most recent week first.
	slices.SortFunc(awards, func(a, b model.WeeklyAwards) int {
		return b.Week - a.Week
	})
	return awards, nil
}
