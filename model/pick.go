package model

// GameweekStats is the live stat block for a single player in one gameweek.
type GameweekStats struct {
	Minutes         int
	GoalsScored     int
	Assists         int
	CleanSheets     int
	GoalsConceded   int
	OwnGoals        int
	PenaltiesSaved  int
	PenaltiesMissed int
	YellowCards     int
	RedCards        int
	Saves           int
	Bonus           int
	BPS             int
}

// Pick is one of the 15 squad slots a manager selects for a gameweek.
// Slots 1-11 are the starting XI, 12-15 the bench in substitution order.
type Pick struct {
	PlayerID int
	// Position is the squad slot (1-15), not the player's field position.
	Position   int
	Multiplier int
	IsCaptain  bool
	// Points are the player's raw points for the gameweek.
	Points int
	// EffectivePoints is always Points * Multiplier.
	EffectivePoints int
	Stats           GameweekStats
}

func (p *Pick) IsStarting() bool {
	return p.Position <= 11
}

// LiveElement is one player's entry in a gameweek's live data feed.
type LiveElement struct {
	PlayerID    int
	TotalPoints int
	Stats       GameweekStats
	// ExplainFixtures are the fixture IDs the player's points are
	// attributed to, used to disambiguate double gameweeks.
	ExplainFixtures []int
}

// Substitution records one automatic substitution, by player ID.
type Substitution struct {
	Out int
	In  int
}

// LiveSquad is the result of resolving a manager's squad against live
// gameweek data: the effective XI after auto-substitutions plus totals.
type LiveSquad struct {
	Gameweek      int
	Picks         []Pick
	TotalPoints   int
	BenchPoints   int
	Substitutions []Substitution
	// FixtureImpacts is only populated when a tier sample is configured.
	FixtureImpacts []FixtureImpact
}

// PlannedSlot is one placed player in a squad built by the formation
// planner, used when no live picks exist yet.
type PlannedSlot struct {
	Player     Player
	Slot       int
	Multiplier int
	IsCaptain  bool
}
