package store

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/dmallory42/super-fpl-sub001/model"
	"github.com/itbasis/go-clock"
)

var ErrPlayerNotFound = errors.New("player not found")

// Store caches the most recent bootstrap snapshot in memory. There is no
// durable persistence: the dashboard works on fresh per-poll snapshots and
// the store only exists to avoid refetching the bootstrap on every request.
type Store interface {
	SaveBootstrap(b *model.Bootstrap)
	GetPlayer(id int) (*model.Player, error)
	ListPlayers() []model.Player
	ListTeams() []model.Team
	ListGameweeks() []model.Gameweek
	// LastUpdated is the zero time until a bootstrap has been saved.
	LastUpdated() time.Time
}

type store struct {
	mu    sync.RWMutex
	clock clock.Clock

	players   []model.Player
	playerIdx map[int]int
	teams     []model.Team
	gameweeks []model.Gameweek
	updated   time.Time
}

func New(clock clock.Clock) Store {
	return &store{clock: clock}
}

func (s *store) SaveBootstrap(b *model.Bootstrap) {
	players := make([]model.Player, len(b.Players))
	copy(players, b.Players)
	slices.SortFunc(players, func(a, b model.Player) int {
		return a.ID - b.ID
	})

	idx := make(map[int]int, len(players))
	for i := range players {
		idx[players[i].ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = players
	s.playerIdx = idx
	s.teams = slices.Clone(b.Teams)
	s.gameweeks = slices.Clone(b.Gameweeks)
	s.updated = s.clock.Now()
}

func (s *store) GetPlayer(id int) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, found := s.playerIdx[id]
	if !found {
		return nil, ErrPlayerNotFound
	}
	p := s.players[i]
	return &p, nil
}

func (s *store) ListPlayers() []model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.players)
}

func (s *store) ListTeams() []model.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.teams)
}

func (s *store) ListGameweeks() []model.Gameweek {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.gameweeks)
}

func (s *store) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updated
}
