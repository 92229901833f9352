package internal

import (
	"log"
	"strconv"
	"time"

	"github.com/dmallory42/super-fpl-sub001/model"
)

type BootstrapResponse struct {
	Events   []event   `json:"events"`
	Teams    []team    `json:"teams"`
	Elements []element `json:"elements"`
}

type event struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	IsCurrent         bool   `json:"is_current"`
	Finished          bool   `json:"finished"`
	AverageEntryScore int    `json:"average_entry_score"`
}

type team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type element struct {
	ID                int    `json:"id"`
	FirstName         string `json:"first_name"`
	SecondName        string `json:"second_name"`
	WebName           string `json:"web_name"`
	ElementType       int    `json:"element_type"`
	Team              int    `json:"team"`
	NowCost           int    `json:"now_cost"`
	TotalPoints       int    `json:"total_points"`
	Minutes           int    `json:"minutes"`
	GoalsScored       int    `json:"goals_scored"`
	Assists           int    `json:"assists"`
	CleanSheets       int    `json:"clean_sheets"`
	GoalsConceded     int    `json:"goals_conceded"`
	Saves             int    `json:"saves"`
	Bonus             int    `json:"bonus"`
	BPS               int    `json:"bps"`
	Creativity        string `json:"creativity"`
	Threat            string `json:"threat"`
	Influence         string `json:"influence"`
	SelectedByPercent string `json:"selected_by_percent"`
	EPNext            string `json:"ep_next"`
}

func (b *BootstrapResponse) ToBootstrap() *model.Bootstrap {
	result := &model.Bootstrap{
		Players:   make([]model.Player, 0, len(b.Elements)),
		Teams:     make([]model.Team, 0, len(b.Teams)),
		Gameweeks: make([]model.Gameweek, 0, len(b.Events)),
	}
	for _, e := range b.Elements {
		result.Players = append(result.Players, *e.toPlayer())
	}
	for _, t := range b.Teams {
		result.Teams = append(result.Teams, model.Team{ID: t.ID, Name: t.Name, ShortName: t.ShortName})
	}
	for _, e := range b.Events {
		result.Gameweeks = append(result.Gameweeks, model.Gameweek{
			ID:           e.ID,
			Name:         e.Name,
			IsCurrent:    e.IsCurrent,
			Finished:     e.Finished,
			AverageScore: e.AverageEntryScore,
		})
	}
	return result
}

func (e *element) toPlayer() *model.Player {
	predicted := parseFloat(e.EPNext, e.ID)
	return &model.Player{
		ID:              e.ID,
		FirstName:       e.FirstName,
		SecondName:      e.SecondName,
		WebName:         e.WebName,
		Position:        model.PositionForElementType(e.ElementType),
		TeamID:          e.Team,
		Cost:            float64(e.NowCost) / 10,
		TotalPoints:     e.TotalPoints,
		Minutes:         e.Minutes,
		GoalsScored:     e.GoalsScored,
		Assists:         e.Assists,
		CleanSheets:     e.CleanSheets,
		GoalsConceded:   e.GoalsConceded,
		Saves:           e.Saves,
		Bonus:           e.Bonus,
		BPS:             e.BPS,
		Creativity:      parseFloat(e.Creativity, e.ID),
		Threat:          parseFloat(e.Threat, e.ID),
		Influence:       parseFloat(e.Influence, e.ID),
		Ownership:       parseFloat(e.SelectedByPercent, e.ID),
		PredictedPoints: predicted,
		IfFitPoints:     predicted,
	}
}

// The FPL API serializes several numeric fields as strings.
func parseFloat(v string, playerID int) float64 {
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("error parsing '%s' as a float for player %d", v, playerID)
		return 0
	}
	return f
}

type Fixture struct {
	ID          int        `json:"id"`
	Event       *int       `json:"event"`
	TeamH       int        `json:"team_h"`
	TeamA       int        `json:"team_a"`
	KickoffTime *time.Time `json:"kickoff_time"`
	Started     bool       `json:"started"`
	Finished    bool       `json:"finished"`
	Minutes     int        `json:"minutes"`
	TeamHScore  *int       `json:"team_h_score"`
	TeamAScore  *int       `json:"team_a_score"`
}

func (f *Fixture) ToFixture() *model.Fixture {
	result := &model.Fixture{
		ID:       f.ID,
		HomeTeam: f.TeamH,
		AwayTeam: f.TeamA,
		Started:  f.Started,
		Finished: f.Finished,
		Minutes:  f.Minutes,
	}
	if f.Event != nil {
		result.Gameweek = *f.Event
	}
	if f.KickoffTime != nil {
		result.KickoffTime = *f.KickoffTime
	}
	if f.TeamHScore != nil {
		result.HomeScore = *f.TeamHScore
	}
	if f.TeamAScore != nil {
		result.AwayScore = *f.TeamAScore
	}
	return result
}

type LiveResponse struct {
	Elements []liveElement `json:"elements"`
}

type liveElement struct {
	ID      int            `json:"id"`
	Stats   liveStats      `json:"stats"`
	Explain []explainBlock `json:"explain"`
}

type liveStats struct {
	Minutes         int `json:"minutes"`
	GoalsScored     int `json:"goals_scored"`
	Assists         int `json:"assists"`
	CleanSheets     int `json:"clean_sheets"`
	GoalsConceded   int `json:"goals_conceded"`
	OwnGoals        int `json:"own_goals"`
	PenaltiesSaved  int `json:"penalties_saved"`
	PenaltiesMissed int `json:"penalties_missed"`
	YellowCards     int `json:"yellow_cards"`
	RedCards        int `json:"red_cards"`
	Saves           int `json:"saves"`
	Bonus           int `json:"bonus"`
	BPS             int `json:"bps"`
	TotalPoints     int `json:"total_points"`
}

type explainBlock struct {
	Fixture int `json:"fixture"`
}

func (e *liveElement) ToLiveElement() model.LiveElement {
	result := model.LiveElement{
		PlayerID:    e.ID,
		TotalPoints: e.Stats.TotalPoints,
		Stats: model.GameweekStats{
			Minutes:         e.Stats.Minutes,
			GoalsScored:     e.Stats.GoalsScored,
			Assists:         e.Stats.Assists,
			CleanSheets:     e.Stats.CleanSheets,
			GoalsConceded:   e.Stats.GoalsConceded,
			OwnGoals:        e.Stats.OwnGoals,
			PenaltiesSaved:  e.Stats.PenaltiesSaved,
			PenaltiesMissed: e.Stats.PenaltiesMissed,
			YellowCards:     e.Stats.YellowCards,
			RedCards:        e.Stats.RedCards,
			Saves:           e.Stats.Saves,
			Bonus:           e.Stats.Bonus,
			BPS:             e.Stats.BPS,
		},
	}
	for _, ex := range e.Explain {
		result.ExplainFixtures = append(result.ExplainFixtures, ex.Fixture)
	}
	return result
}

type PicksResponse struct {
	Picks []pick `json:"picks"`
}

type pick struct {
	Element    int  `json:"element"`
	Position   int  `json:"position"`
	Multiplier int  `json:"multiplier"`
	IsCaptain  bool `json:"is_captain"`
}

func (p *pick) ToPick() model.Pick {
	return model.Pick{
		PlayerID:   p.Element,
		Position:   p.Position,
		Multiplier: p.Multiplier,
		IsCaptain:  p.IsCaptain,
	}
}

type SummaryResponse struct {
	History []historyEntry `json:"history"`
}

type historyEntry struct {
	Round       int `json:"round"`
	TotalPoints int `json:"total_points"`
	Minutes     int `json:"minutes"`
}

func (h *historyEntry) ToHistoryEntry() model.HistoryEntry {
	return model.HistoryEntry{Round: h.Round, TotalPoints: h.TotalPoints, Minutes: h.Minutes}
}
