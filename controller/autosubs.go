package controller

import (
	"github.com/dmallory42/super-fpl-sub001/model"
)

// applyAutoSubs applies the automatic substitution rules to a 15-slot squad
// once live match data is in. A starter is only replaced when its match has
// finished with the player on zero minutes; a player whose match is still in
// progress keeps its slot even at zero minutes, because the outcome is not
// yet certain.
//
// When snapshot is nil no substitution is possible and the input slice is
// returned by reference with totals computed from the current multipliers.
// This is a defined degraded mode, not an error.
func applyAutoSubs(picks []model.Pick, info map[int]model.PlayerInfo, snapshot *model.FixtureSnapshot) model.LiveSquad {
	if snapshot == nil {
		return model.LiveSquad{
			Picks:       picks,
			TotalPoints: startingPoints(picks),
			BenchPoints: benchPoints(picks),
		}
	}

	result := make([]model.Pick, len(picks))
	copy(result, picks)

	swappedIn := make(map[int]bool)
	var subs []model.Substitution

	for slot := 1; slot <= 11; slot++ {
		si := indexOfSlot(result, slot)
		if si == -1 {
			continue
		}
		if !needsReplacing(&result[si], info, snapshot) {
			continue
		}

		// Scan the bench in its fixed order for the first legal replacement.
		for benchSlot := 12; benchSlot <= 15; benchSlot++ {
			bi := indexOfSlot(result, benchSlot)
			if bi == -1 {
				continue
			}
			bench := &result[bi]
			if swappedIn[bench.PlayerID] {
				continue
			}
			if needsReplacing(bench, info, snapshot) {
				// The bench player also scored zero minutes in a finished match.
				continue
			}
			if !matchFinished(bench, info, snapshot) {
				// An unfinished bench match is not a legal replacement even
				// at zero minutes so far.
				continue
			}
			if !positionCompatible(&result[si], bench, info) {
				continue
			}
			if info[bench.PlayerID].Position != model.POS_GKP && !formationLegal(result, si, bi, info) {
				continue
			}

			// Swap slot positions so downstream position-based grouping stays
			// correct, zero out the outgoing player, and promote the bench
			// player at multiplier 1. Captaincy is never transferred.
			result[si].Position, result[bi].Position = result[bi].Position, result[si].Position
			out := &result[si]
			in := &result[bi]
			out.Multiplier = 0
			out.EffectivePoints = 0
			in.Multiplier = 1
			in.EffectivePoints = in.Points
			swappedIn[in.PlayerID] = true
			subs = append(subs, model.Substitution{Out: out.PlayerID, In: in.PlayerID})
			break
		}
		// If no bench player qualified the starter simply stays in the XI
		// with zero effective points. That is a normal terminal state.
	}

	return model.LiveSquad{
		Picks:         result,
		TotalPoints:   startingPoints(result),
		BenchPoints:   benchPoints(result),
		Substitutions: subs,
	}
}

func indexOfSlot(picks []model.Pick, slot int) int {
	for i := range picks {
		if picks[i].Position == slot {
			return i
		}
	}
	return -1
}

// needsReplacing reports whether a pick scored zero minutes in a match that
// is certain not to give it any more.
func needsReplacing(p *model.Pick, info map[int]model.PlayerInfo, snapshot *model.FixtureSnapshot) bool {
	return matchFinished(p, info, snapshot) && p.Stats.Minutes == 0
}

func matchFinished(p *model.Pick, info map[int]model.PlayerInfo, snapshot *model.FixtureSnapshot) bool {
	pi, ok := info[p.PlayerID]
	if !ok {
		return false
	}
	return statusForTeam(snapshot.Fixtures, pi.TeamID) == model.StatusFinished
}

// positionCompatible enforces goalkeeper purity: a goalkeeper slot can only
// be filled by another goalkeeper, and a benched goalkeeper can only come on
// for the starting goalkeeper.
func positionCompatible(out, in *model.Pick, info map[int]model.PlayerInfo) bool {
	outGK := info[out.PlayerID].Position == model.POS_GKP
	inGK := info[in.PlayerID].Position == model.POS_GKP
	return outGK == inGK
}

// formationLegal checks the outfield formation after hypothetically removing
// the candidate at outIdx and adding the substitute at inIdx: the counts of
// non-zero-minute starters must stay within 3-5 defenders, 2-5 midfielders,
// and 1-3 forwards.
func formationLegal(picks []model.Pick, outIdx, inIdx int, info map[int]model.PlayerInfo) bool {
	counts := make(map[model.Position]int)
	for i := range picks {
		if i == outIdx || !picks[i].IsStarting() || picks[i].Stats.Minutes == 0 {
			continue
		}
		counts[info[picks[i].PlayerID].Position]++
	}
	counts[info[picks[inIdx].PlayerID].Position]++

	return counts[model.POS_DEF] >= 3 && counts[model.POS_DEF] <= 5 &&
		counts[model.POS_MID] >= 2 && counts[model.POS_MID] <= 5 &&
		counts[model.POS_FWD] >= 1 && counts[model.POS_FWD] <= 3
}

func startingPoints(picks []model.Pick) int {
	total := 0
	for i := range picks {
		if picks[i].IsStarting() {
			total += picks[i].EffectivePoints
		}
	}
	return total
}

func benchPoints(picks []model.Pick) int {
	total := 0
	for i := range picks {
		if !picks[i].IsStarting() {
			total += picks[i].Points
		}
	}
	return total
}
