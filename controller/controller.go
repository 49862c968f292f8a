package controller

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DCal661/league-of-misfits/backend"
	"github.com/DCal661/league-of-misfits/chat"
	"github.com/DCal661/league-of-misfits/model"
	"github.com/itbasis/go-clock"
)

// C encapsulates the dashboard's business logic without worrying about
// any web layers.
type C interface {
	// Refresh rebuilds the entire league snapshot from the upstream
	// source. Any required fetch failing fails the whole refresh and no
	// partial data is published.
	Refresh(ctx context.Context) (*model.Snapshot, error)
	// Snapshot returns the most recently published snapshot, or nil if
	// no refresh has completed yet.
	Snapshot() *model.Snapshot
	// MatchupsForWeek fetches and pairs a single week's matchups on
	// demand, for the week selector on the matchups tab.
	MatchupsForWeek(ctx context.Context, week int) ([]model.Matchup, error)
	ChatReply(ctx context.Context, messages []model.ChatMessage) (string, error)
	RunPeriodicRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

// Config carries the explicit settings the controller needs. They are
// passed in at construction, never read from ambient state, so tests
// can point the controller at fixtures directly.
type Config struct {
	LeagueID string
	Source   string // model.SourceSleeper or model.SourceBackend
}

type controller struct {
	clock    clock.Clock
	sleeper  sleeperClient
	backend  *backend.Client
	chat     chat.Provider
	leagueID string
	source   string

	mu         sync.Mutex
	snapshot   *model.Snapshot
	refreshSeq atomic.Uint64
}

// sleeperClient matches sleeper.Client; declared locally so the
// controller package doesn't import the sleeper package just for the
// interface.
type sleeperClient interface {
	GetSportState(ctx context.Context) (*model.SportState, error)
	GetLeagueUsers(ctx context.Context, leagueID string) ([]model.User, error)
	GetLeagueRosters(ctx context.Context, leagueID string) ([]model.Roster, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]model.ScoreRow, error)
}

func New(clock clock.Clock, sleeper sleeperClient, backend *backend.Client, chat chat.Provider, cfg Config) (C, error) {
	if cfg.LeagueID == "" && cfg.Source == model.SourceSleeper {
		return nil, fmt.Errorf("a league id must be provided for the sleeper source")
	}

	c := &controller{
		clock:    clock,
		sleeper:  sleeper,
		backend:  backend,
		chat:     chat,
		leagueID: cfg.LeagueID,
		source:   cfg.Source,
	}
	return c, nil
}

func (c *controller) ChatReply(ctx context.Context, messages []model.ChatMessage) (string, error) {
	return c.chat.Reply(ctx, messages)
}

// When we need data from the upstream, grab a source adapter and it
// will map that source's shape onto the model types. This is internal
// to the controller package.
type sourceAdapter interface {
	getState(ctx context.Context) (*model.SportState, error)
	getStandings(ctx context.Context) ([]model.Team, error)
	getMatchups(ctx context.Context, week int) ([]model.Matchup, error)
	getTrend(ctx context.Context, currentWeek int) ([]model.TrendPoint, error)
	getAwards(ctx context.Context, currentWeek int) ([]model.WeeklyAwards, error)
}

func getSourceAdapter(source string, c *controller) sourceAdapter {
	switch source {
	case model.SourceSleeper:
		return &sleeperAdapter{c}
	case model.SourceBackend:
		return &backendAdapter{c}
	default:
		return &nilSourceAdapter{err: fmt.Errorf("%s is not a supported data source", source)}
	}
}

// nilSourceAdapter exists so that we can always return an adapter and
// simplify the usage. It eliminates the need for an extra error check.
type nilSourceAdapter struct {
	err error
}

func (a *nilSourceAdapter) getState(ctx context.Context) (*model.SportState, error) {
	return nil, a.err
}

func (a *nilSourceAdapter) getStandings(ctx context.Context) ([]model.Team, error) {
	return nil, a.err
}

func (a *nilSourceAdapter) getMatchups(ctx context.Context, week int) ([]model.Matchup, error) {
	return nil, a.err
}

func (a *nilSourceAdapter) getTrend(ctx context.Context, currentWeek int) ([]model.TrendPoint, error) {
	return nil, a.err
}

func (a *nilSourceAdapter) getAwards(ctx context.Context, currentWeek int) ([]model.WeeklyAwards, error) {
	return nil, a.err
}
