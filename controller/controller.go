package controller

import (
	"context"
	"sync"
	"time"

	"github.com/dmallory42/super-fpl-sub001/model"
	"github.com/dmallory42/super-fpl-sub001/platforms/fpl"
	"github.com/dmallory42/super-fpl-sub001/store"
	"github.com/itbasis/go-clock"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	GetPlayer(ctx context.Context, id int) (*model.Player, error)
	// ListPlayers returns every player, narrowed by the filter when one is
	// given.
	ListPlayers(ctx context.Context, filter *model.PlayerFilter) ([]model.Player, error)
	Search(ctx context.Context, query string) ([]model.Player, error)
	// GetPlayerForm returns the player's points per gameweek in round order.
	GetPlayerForm(ctx context.Context, id int) ([]int, error)
	// PriceRange returns every 0.1m price step between the cheapest and the
	// most expensive player, inclusive.
	PriceRange(ctx context.Context) ([]float64, error)
	ListTeams(ctx context.Context) ([]model.Team, error)
	GetFixtures(ctx context.Context, gameweek int) ([]model.Fixture, error)
	CurrentGameweek(ctx context.Context) (int, error)

	// GetLiveSquad resolves a manager's squad for a gameweek: live points,
	// auto-substitutions, and per-fixture rank impacts when a tier sample
	// has been set.
	GetLiveSquad(ctx context.Context, entryID, gameweek int) (*model.LiveSquad, error)
	// PlanFormation builds the best legal starting eleven from a manager's
	// squad ordered by predicted points.
	PlanFormation(ctx context.Context, entryID, gameweek int) ([]model.PlannedSlot, error)

	// SetTierSample installs the reference tier used for rank impacts.
	// A nil sample disables them.
	SetTierSample(t *model.TierSample)

	UpdateData(ctx context.Context) error
	RunPeriodicDataUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock clock.Clock
	fpl   fpl.Client
	store store.Store

	mu   sync.RWMutex
	tier *model.TierSample
}

func New(clock clock.Clock, fpl fpl.Client, store store.Store) (C, error) {
	c := &controller{
		clock: clock,
		fpl:   fpl,
		store: store,
	}
	return c, nil
}

func (c *controller) SetTierSample(t *model.TierSample) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tier = t
}

func (c *controller) tierSample() *model.TierSample {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tier
}
