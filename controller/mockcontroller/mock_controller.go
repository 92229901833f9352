package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/dmallory42/super-fpl-sub001/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetPlayer(ctx context.Context, id int) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}

	return p, args.Error(1)
}

func (c *C) ListPlayers(ctx context.Context, filter *model.PlayerFilter) ([]model.Player, error) {
	args := c.Called(ctx, filter)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *C) Search(ctx context.Context, query string) ([]model.Player, error) {
	args := c.Called(ctx, query)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *C) GetPlayerForm(ctx context.Context, id int) ([]int, error) {
	args := c.Called(ctx, id)

	var form []int
	if args.Get(0) != nil {
		form = args.Get(0).([]int)
	}

	return form, args.Error(1)
}

func (c *C) PriceRange(ctx context.Context) ([]float64, error) {
	args := c.Called(ctx)

	var prices []float64
	if args.Get(0) != nil {
		prices = args.Get(0).([]float64)
	}

	return prices, args.Error(1)
}

func (c *C) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := c.Called(ctx)

	var teams []model.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]model.Team)
	}

	return teams, args.Error(1)
}

func (c *C) GetFixtures(ctx context.Context, gameweek int) ([]model.Fixture, error) {
	args := c.Called(ctx, gameweek)

	var fixtures []model.Fixture
	if args.Get(0) != nil {
		fixtures = args.Get(0).([]model.Fixture)
	}

	return fixtures, args.Error(1)
}

func (c *C) CurrentGameweek(ctx context.Context) (int, error) {
	args := c.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (c *C) GetLiveSquad(ctx context.Context, entryID, gameweek int) (*model.LiveSquad, error) {
	args := c.Called(ctx, entryID, gameweek)

	var squad *model.LiveSquad
	if args.Get(0) != nil {
		squad = args.Get(0).(*model.LiveSquad)
	}

	return squad, args.Error(1)
}

func (c *C) PlanFormation(ctx context.Context, entryID, gameweek int) ([]model.PlannedSlot, error) {
	args := c.Called(ctx, entryID, gameweek)

	var plan []model.PlannedSlot
	if args.Get(0) != nil {
		plan = args.Get(0).([]model.PlannedSlot)
	}

	return plan, args.Error(1)
}

func (c *C) SetTierSample(t *model.TierSample) {
	c.Called(t)
}

func (c *C) UpdateData(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicDataUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
