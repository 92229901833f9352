package controller

import (
	"github.com/dmallory42/super-fpl-sub001/model"
)

// scalePoints rescales an if-fully-fit points prediction by the share of
// minutes the player is actually expected to play. Non-positive minutes on
// either side yield 0 rather than an error.
func scalePoints(ifFitPoints, ifFitMinutes, effectiveMinutes float64) float64 {
	if ifFitMinutes <= 0 || effectiveMinutes <= 0 {
		return 0
	}
	return ifFitPoints * (effectiveMinutes / ifFitMinutes)
}

// ownedImpact is the marginal rank effect of an owned player: points earned
// beyond what the reference tier's fractional exposure would have produced.
// eo is the tier's effective-ownership percentage and multiplier the
// manager's own scoring multiplier for the pick.
func ownedImpact(effectivePoints, eo float64, multiplier int) float64 {
	if multiplier < 1 {
		return 0
	}
	return effectivePoints * (1 - eo/(100*float64(multiplier)))
}

// unownedImpact is the rank effect of a player the manager does not own: the
// manager scores nothing while the tier receives its weighted share.
func unownedImpact(points, eo float64) float64 {
	return -(points * eo / 100)
}

// fixtureImpacts sums the rank impact of the squad's owned starters per
// resolved fixture. explainByPlayer carries each player's explain fixture
// IDs from the live feed, used to attribute double-gameweek players.
// Players missing from the info lookup are skipped, never fatal.
func fixtureImpacts(picks []model.Pick, info map[int]model.PlayerInfo, snapshot *model.FixtureSnapshot, tier *model.TierSample, explainByPlayer map[int]map[int]bool) []model.FixtureImpact {
	if snapshot == nil || tier == nil {
		return nil
	}

	totals := make(map[int]float64)
	var order []int
	for i := range picks {
		p := &picks[i]
		if !p.IsStarting() || p.Multiplier < 1 {
			continue
		}
		pi, ok := info[p.PlayerID]
		if !ok {
			continue
		}
		f, ok := resolveFixtureForTeam(snapshot.Fixtures, pi.TeamID, explainByPlayer[p.PlayerID])
		if !ok {
			continue
		}
		if _, seen := totals[f.ID]; !seen {
			order = append(order, f.ID)
		}
		totals[f.ID] += ownedImpact(float64(p.EffectivePoints), tier.OwnershipFor(p.PlayerID), p.Multiplier)
	}

	result := make([]model.FixtureImpact, 0, len(order))
	for _, id := range order {
		result = append(result, model.FixtureImpact{FixtureID: id, Impact: totals[id]})
	}
	return result
}
