package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/DCal661/league-of-misfits/model"
)

type C struct {
	mock.Mock
}

func (c *C) Refresh(ctx context.Context) (*model.Snapshot, error) {
	args := c.Called(ctx)

	var s *model.Snapshot
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Snapshot)
	}

	return s, args.Error(1)
}

func (c *C) Snapshot() *model.Snapshot {
	args := c.Called()

	var s *model.Snapshot
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Snapshot)
	}

	return s
}

func (c *C) MatchupsForWeek(ctx context.Context, week int) ([]model.Matchup, error) {
	args := c.Called(ctx, week)

	var m []model.Matchup
	if args.Get(0) != nil {
		m = args.Get(0).([]model.Matchup)
	}

	return m, args.Error(1)
}

func (c *C) ChatReply(ctx context.Context, messages []model.ChatMessage) (string, error) {
	args := c.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

func (c *C) RunPeriodicRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
