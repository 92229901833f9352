package model

import (
	"time"
)

type FixtureStatus string

const (
	StatusUnknown  FixtureStatus = "unknown"
	StatusUpcoming FixtureStatus = "upcoming"
	StatusPlaying  FixtureStatus = "playing"
	StatusFinished FixtureStatus = "finished"
)

type Fixture struct {
	ID int
	// Gameweek is 0 when the fixture has not been scheduled into one yet.
	Gameweek    int
	HomeTeam    int
	AwayTeam    int
	KickoffTime time.Time
	Started     bool
	Finished    bool
	// Minutes is the elapsed match clock.
	Minutes   int
	HomeScore int
	AwayScore int
}

func (f *Fixture) Involves(teamID int) bool {
	return f.HomeTeam == teamID || f.AwayTeam == teamID
}

// Live reports whether the fixture is currently in play. A fixture marked
// started with a zero clock is not live: kickoff data can propagate before
// the match actually begins.
func (f *Fixture) Live() bool {
	return f.Started && !f.Finished && f.Minutes > 0
}

// FixtureSnapshot is the set of fixtures for one gameweek, refreshed per
// poll. A nil snapshot is a valid degraded state for the squad engine.
type FixtureSnapshot struct {
	Gameweek int
	Fixtures []Fixture
}
