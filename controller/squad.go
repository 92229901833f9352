package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/dmallory42/super-fpl-sub001/model"
)

func (c *controller) GetLiveSquad(ctx context.Context, entryID, gameweek int) (*model.LiveSquad, error) {
	if err := c.ensureData(ctx); err != nil {
		return nil, err
	}

	picks, err := c.fpl.GetPicks(entryID, gameweek)
	if err != nil {
		return nil, fmt.Errorf("error getting picks for entry %d: %w", entryID, err)
	}

	live, err := c.fpl.GetLive(gameweek)
	if err != nil {
		return nil, fmt.Errorf("error getting live stats for gameweek %d: %w", gameweek, err)
	}

	explain := make(map[int]map[int]bool)
	for i := range picks {
		le, found := live[picks[i].PlayerID]
		if !found {
			continue
		}
		picks[i].Points = le.TotalPoints
		picks[i].EffectivePoints = le.TotalPoints * picks[i].Multiplier
		picks[i].Stats = le.Stats

		if len(le.ExplainFixtures) > 0 {
			ids := make(map[int]bool, len(le.ExplainFixtures))
			for _, id := range le.ExplainFixtures {
				ids[id] = true
			}
			explain[picks[i].PlayerID] = ids
		}
	}

	info := model.PlayerInfoMap(c.store.ListPlayers())
	snapshot := c.fixtureSnapshot(gameweek)

	result := applyAutoSubs(picks, info, snapshot)
	result.Gameweek = gameweek
	result.FixtureImpacts = fixtureImpacts(result.Picks, info, snapshot, c.tierSample(), explain)
	return &result, nil
}

// fixtureSnapshot loads the gameweek's fixtures. A failed fetch degrades to
// no snapshot, which leaves the squad unmodified, rather than failing the
// whole request.
func (c *controller) fixtureSnapshot(gameweek int) *model.FixtureSnapshot {
	fixtures, err := c.fpl.GetFixtures()
	if err != nil {
		log.Printf("error getting fixtures for gameweek %d: %v", gameweek, err)
		return nil
	}

	var gwFixtures []model.Fixture
	for _, f := range fixtures {
		if f.Gameweek == gameweek {
			gwFixtures = append(gwFixtures, f)
		}
	}
	return &model.FixtureSnapshot{Gameweek: gameweek, Fixtures: gwFixtures}
}

func (c *controller) PlanFormation(ctx context.Context, entryID, gameweek int) ([]model.PlannedSlot, error) {
	if err := c.ensureData(ctx); err != nil {
		return nil, err
	}

	picks, err := c.fpl.GetPicks(entryID, gameweek)
	if err != nil {
		return nil, fmt.Errorf("error getting picks for entry %d: %w", entryID, err)
	}

	squad := make([]model.Player, 0, len(picks))
	for _, pick := range picks {
		player, err := c.store.GetPlayer(pick.PlayerID)
		if err != nil {
			log.Printf("skipping unknown player %d in entry %d", pick.PlayerID, entryID)
			continue
		}
		if player.IfFitMinutes > 0 && player.ExpectedMinutes > 0 {
			player.PredictedPoints = scalePoints(player.IfFitPoints, player.IfFitMinutes, player.ExpectedMinutes)
		}
		squad = append(squad, *player)
	}

	return buildFormation(squad), nil
}
