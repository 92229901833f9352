package controller

import (
	"slices"

	"github.com/dmallory42/super-fpl-sub001/model"
)

// fixturesForTeam returns a team's fixtures for the gameweek ordered by
// kickoff time, with the fixture ID as a tiebreak. A team can have zero,
// one, or two fixtures in a gameweek.
func fixturesForTeam(fixtures []model.Fixture, teamID int) []model.Fixture {
	var result []model.Fixture
	for _, f := range fixtures {
		if f.Involves(teamID) {
			result = append(result, f)
		}
	}

	slices.SortFunc(result, func(a, b model.Fixture) int {
		if !a.KickoffTime.Equal(b.KickoffTime) {
			if a.KickoffTime.Before(b.KickoffTime) {
				return -1
			}
			return 1
		}
		return a.ID - b.ID
	})
	return result
}

// statusForTeam classifies a team's gameweek. The team is playing if any of
// its fixtures has a live clock, and finished only when all of its fixtures
// are finished.
func statusForTeam(fixtures []model.Fixture, teamID int) model.FixtureStatus {
	teamFixtures := fixturesForTeam(fixtures, teamID)
	if len(teamFixtures) == 0 {
		return model.StatusUnknown
	}

	allFinished := true
	for _, f := range teamFixtures {
		if f.Live() {
			return model.StatusPlaying
		}
		if !f.Finished {
			allFinished = false
		}
	}

	if allFinished {
		return model.StatusFinished
	}
	return model.StatusUpcoming
}

// resolveFixtureForTeam selects the single fixture a team's live stats should
// be attributed to. When explainIDs is non-empty the candidates are limited
// to the fixtures it names; otherwise candidates are limited to fixtures with
// actual events (finished or live) when any exist. Ties are broken by live
// over not-live, then highest elapsed minutes, then lowest fixture ID, which
// makes the selection a total order.
func resolveFixtureForTeam(fixtures []model.Fixture, teamID int, explainIDs map[int]bool) (model.Fixture, bool) {
	teamFixtures := fixturesForTeam(fixtures, teamID)
	if len(teamFixtures) == 0 {
		return model.Fixture{}, false
	}

	candidates := teamFixtures
	if len(explainIDs) > 0 {
		var explained []model.Fixture
		for _, f := range teamFixtures {
			if explainIDs[f.ID] {
				explained = append(explained, f)
			}
		}
		if len(explained) > 0 {
			candidates = explained
		}
	} else {
		var active []model.Fixture
		for _, f := range teamFixtures {
			if f.Finished || f.Live() {
				active = append(active, f)
			}
		}
		if len(active) > 0 {
			candidates = active
		}
	}

	best := candidates[0]
	for _, f := range candidates[1:] {
		if fixturePreferred(&f, &best) {
			best = f
		}
	}
	return best, true
}

// fixturePreferred reports whether a should be selected over b.
func fixturePreferred(a, b *model.Fixture) bool {
	if a.Live() != b.Live() {
		return a.Live()
	}
	if a.Minutes != b.Minutes {
		return a.Minutes > b.Minutes
	}
	return a.ID < b.ID
}
