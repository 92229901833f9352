package controller

import (
	"slices"

	"github.com/dmallory42/super-fpl-sub001/model"
)

var (
	// Position group order used when laying out slots 1-11.
	formationOrder = []model.Position{model.POS_GKP, model.POS_DEF, model.POS_MID, model.POS_FWD}

	// Maximum starters per position used to seed the candidate XI.
	formationMaxima = map[model.Position]int{
		model.POS_GKP: 1,
		model.POS_DEF: 5,
		model.POS_MID: 5,
		model.POS_FWD: 3,
	}

	// Minimum starters per position a drop may not go below. The midfield
	// floor is 0 here because the seed over-fills to 14 players, so at most
	// three drops happen and midfield can never fall under two.
	formationMinima = map[model.Position]int{
		model.POS_GKP: 1,
		model.POS_DEF: 3,
		model.POS_MID: 0,
		model.POS_FWD: 1,
	}
)

// buildFormation places an unordered squad into a legal starting XI with a
// captain and an ordered bench, using each player's predicted points. It is
// used for forward planning, when no live picks exist for the gameweek.
func buildFormation(squad []model.Player) []model.PlannedSlot {
	if len(squad) == 0 {
		return nil
	}

	groups := make(map[model.Position][]model.Player)
	for _, p := range squad {
		groups[p.Position] = append(groups[p.Position], p)
	}
	for pos := range groups {
		slices.SortStableFunc(groups[pos], func(a, b model.Player) int {
			if a.PredictedPoints > b.PredictedPoints {
				return -1
			}
			if a.PredictedPoints < b.PredictedPoints {
				return 1
			}
			return 0
		})
	}

	// Seed with the maximum legal count per position, then drop the globally
	// lowest-predicted player whose position is still above its minimum
	// until exactly 11 remain.
	var starters []model.Player
	counts := make(map[model.Position]int)
	for _, pos := range formationOrder {
		n := min(formationMaxima[pos], len(groups[pos]))
		starters = append(starters, groups[pos][:n]...)
		counts[pos] = n
	}

	for len(starters) > 11 {
		lowest := -1
		for i, p := range starters {
			if counts[p.Position] <= formationMinima[p.Position] {
				continue
			}
			if lowest == -1 || p.PredictedPoints < starters[lowest].PredictedPoints {
				lowest = i
			}
		}
		if lowest == -1 {
			break
		}
		counts[starters[lowest].Position]--
		starters = slices.Delete(starters, lowest, lowest+1)
	}

	// The captain is the highest-predicted starter, first found on ties.
	captain := 0
	for i, p := range starters {
		if p.PredictedPoints > starters[captain].PredictedPoints {
			captain = i
		}
	}

	chosen := make(map[int]bool, len(starters))
	for _, p := range starters {
		chosen[p.ID] = true
	}

	// The goalkeeper always takes the first bench slot; the rest of the
	// bench is ordered by descending predicted points.
	var bench []model.Player
	for _, p := range squad {
		if !chosen[p.ID] {
			bench = append(bench, p)
		}
	}
	slices.SortStableFunc(bench, func(a, b model.Player) int {
		aGK := a.Position == model.POS_GKP
		bGK := b.Position == model.POS_GKP
		if aGK != bGK {
			if aGK {
				return -1
			}
			return 1
		}
		if a.PredictedPoints > b.PredictedPoints {
			return -1
		}
		if a.PredictedPoints < b.PredictedPoints {
			return 1
		}
		return 0
	})

	result := make([]model.PlannedSlot, 0, len(starters)+len(bench))
	for i, p := range starters {
		slot := model.PlannedSlot{Player: p, Slot: i + 1, Multiplier: 1}
		if i == captain {
			slot.Multiplier = 2
			slot.IsCaptain = true
		}
		result = append(result, slot)
	}
	for i, p := range bench {
		result = append(result, model.PlannedSlot{Player: p, Slot: len(starters) + i + 1})
	}

	return result
}
