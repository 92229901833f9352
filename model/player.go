package model

import (
	"fmt"
	"math"
)

type Player struct {
	ID         int
	FirstName  string
	SecondName string
	WebName    string
	Position   Position
	TeamID     int
	// Cost is the player's current price in millions, e.g. 12.5.
	Cost float64

	// Season-to-date stats from the bootstrap data.
	TotalPoints   int
	Minutes       int
	GoalsScored   int
	Assists       int
	CleanSheets   int
	GoalsConceded int
	Saves         int
	Bonus         int
	BPS           int
	Creativity    float64
	Threat        float64
	Influence     float64
	// Ownership is the percentage of managers who own the player.
	Ownership float64

	// PredictedPoints is the points prediction for the upcoming gameweek.
	PredictedPoints float64
	// IfFitPoints and IfFitMinutes describe the prediction assuming the
	// player is fully fit. ExpectedMinutes is the actual expectation after
	// any manual overrides.
	IfFitPoints     float64
	IfFitMinutes    float64
	ExpectedMinutes float64
}

func (p *Player) Name() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.SecondName)
}

func (p *Player) GoalInvolvements() int {
	return p.GoalsScored + p.Assists
}

func (p *Player) PointsPerMinute() float64 {
	return perMinute(float64(p.TotalPoints), p.Minutes)
}

func (p *Player) PointsPer90() float64 {
	return per90(float64(p.TotalPoints), p.Minutes)
}

func (p *Player) PointsPerMillion() float64 {
	return perMillion(float64(p.TotalPoints), p.Cost)
}

func (p *Player) GoalsPer90() float64 {
	return per90(float64(p.GoalsScored), p.Minutes)
}

func (p *Player) AssistsPer90() float64 {
	return per90(float64(p.Assists), p.Minutes)
}

func (p *Player) CleanSheetsPer90() float64 {
	return per90(float64(p.CleanSheets), p.Minutes)
}

func (p *Player) GoalsConcededPer90() float64 {
	return per90(float64(p.GoalsConceded), p.Minutes)
}

func (p *Player) SavesPer90() float64 {
	return per90(float64(p.Saves), p.Minutes)
}

func (p *Player) BPSPerMinute() float64 {
	return perMinute(float64(p.BPS), p.Minutes)
}

func (p *Player) CreativityPerMinute() float64 {
	return perMinute(p.Creativity, p.Minutes)
}

func (p *Player) ThreatPerMinute() float64 {
	return perMinute(p.Threat, p.Minutes)
}

func (p *Player) InfluencePerMinute() float64 {
	return perMinute(p.Influence, p.Minutes)
}

func perMinute(metric float64, minutes int) float64 {
	if minutes <= 0 {
		return 0
	}
	return round2(metric / float64(minutes))
}

func per90(metric float64, minutes int) float64 {
	if minutes <= 0 {
		return 0
	}
	return round2((metric / float64(minutes)) * 90)
}

func perMillion(metric float64, cost float64) float64 {
	if cost <= 0 {
		return 0
	}
	return round2(metric / cost)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PlayerInfo is the minimal lookup the live squad engine needs for a player.
type PlayerInfo struct {
	TeamID   int
	Position Position
}

func PlayerInfoMap(players []Player) map[int]PlayerInfo {
	info := make(map[int]PlayerInfo, len(players))
	for _, p := range players {
		info[p.ID] = PlayerInfo{TeamID: p.TeamID, Position: p.Position}
	}
	return info
}

// PlayerFilter narrows a player list. Nil fields are ignored.
type PlayerFilter struct {
	MinPrice     *float64
	MaxPrice     *float64
	MinMinutes   *int
	Positions    []Position
	MaxOwnership *float64
}

func (f *PlayerFilter) Match(p *Player) bool {
	if f.MinPrice != nil && p.Cost < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Cost > *f.MaxPrice {
		return false
	}
	if f.MinMinutes != nil && p.Minutes < *f.MinMinutes {
		return false
	}
	if f.MaxOwnership != nil && p.Ownership > *f.MaxOwnership {
		return false
	}
	if len(f.Positions) > 0 {
		found := false
		for _, pos := range f.Positions {
			if p.Position == pos {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

type Team struct {
	ID        int
	Name      string
	ShortName string
}

type Gameweek struct {
	ID           int
	Name         string
	IsCurrent    bool
	Finished     bool
	AverageScore int
}

// HistoryEntry is one gameweek of a player's season history.
type HistoryEntry struct {
	Round       int
	TotalPoints int
	Minutes     int
}

// Bootstrap is the normalized form of the FPL bootstrap-static payload.
type Bootstrap struct {
	Players   []Player
	Teams     []Team
	Gameweeks []Gameweek
}
