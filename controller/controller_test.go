package controller

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/dmallory42/super-fpl-sub001/model"
	"github.com/dmallory42/super-fpl-sub001/platforms/fpl"
	"github.com/dmallory42/super-fpl-sub001/platforms/fpl/mockfpl"
	"github.com/dmallory42/super-fpl-sub001/store"
	"github.com/dmallory42/super-fpl-sub001/testutils"
	"github.com/itbasis/go-clock"
)

func newTestController(t *testing.T) C {
	t.Helper()

	tc := testutils.NewTestController()
	t.Cleanup(tc.Close)

	ctrl, err := New(tc.Clock, fpl.NewForTest(tc.FPLURL()), store.New(tc.Clock))
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}
	return ctrl
}

func TestGetPlayer(t *testing.T) {
	ctrl := newTestController(t)
	ctx := context.Background()

	p, err := ctrl.GetPlayer(ctx, 108)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "Bukayo Saka" {
		t.Errorf("expected Bukayo Saka, got '%s'", p.Name())
	}
	if p.Cost != 10.0 {
		t.Errorf("expected cost 10.0, got %v", p.Cost)
	}
	if p.Position != model.POS_MID {
		t.Errorf("expected position MID, got %v", p.Position)
	}

	if _, err := ctrl.GetPlayer(ctx, 999); !errors.Is(err, store.ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestListPlayersFilter(t *testing.T) {
	ctrl := newTestController(t)
	ctx := context.Background()

	all, err := ctrl.ListPlayers(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 20 {
		t.Fatalf("expected 20 players, got %d", len(all))
	}

	maxPrice := 4.5
	cheap, err := ctrl.ListPlayers(ctx, &model.PlayerFilter{MaxPrice: &maxPrice})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cheap) != 3 {
		t.Errorf("expected 3 players at 4.5 or under, got %d", len(cheap))
	}

	keepers, err := ctrl.ListPlayers(ctx, &model.PlayerFilter{Positions: []model.Position{model.POS_GKP}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantKeepers := []int{101, 102, 119}
	ids := make([]int, 0, len(keepers))
	for _, p := range keepers {
		ids = append(ids, p.ID)
	}
	if !slices.Equal(ids, wantKeepers) {
		t.Errorf("expected goalkeepers %v, got %v", wantKeepers, ids)
	}
}

func TestSearch(t *testing.T) {
	ctrl := newTestController(t)
	ctx := context.Background()

	results, err := ctrl.Search(ctx, "Saka")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 || results[0].ID != 108 {
		t.Errorf("expected Saka first, got %v", results)
	}

	forwards, err := ctrl.Search(ctx, "pos:FWD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forwards) != 4 {
		t.Errorf("expected 4 forwards, got %d", len(forwards))
	}

	if _, err := ctrl.Search(ctx, ""); err == nil {
		t.Error("expected an error for an empty query")
	}
}

func TestGetPlayerForm(t *testing.T) {
	ctrl := newTestController(t)

	form, err := ctrl.GetPlayerForm(context.Background(), 101)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The canned history arrives out of round order and must be sorted.
	want := []int{6, 5, 2, 1, 9, 9}
	if !slices.Equal(form, want) {
		t.Errorf("expected form %v, got %v", want, form)
	}
}

func TestPriceRange(t *testing.T) {
	ctrl := newTestController(t)

	prices, err := ctrl.PriceRange(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prices) != 65 {
		t.Fatalf("expected 65 price steps, got %d", len(prices))
	}
	if prices[0] != 4.4 {
		t.Errorf("expected cheapest price 4.4, got %v", prices[0])
	}
	if prices[len(prices)-1] != 10.8 {
		t.Errorf("expected most expensive price 10.8, got %v", prices[len(prices)-1])
	}
}

func TestCurrentGameweek(t *testing.T) {
	ctrl := newTestController(t)

	gw, err := ctrl.CurrentGameweek(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw != 7 {
		t.Errorf("expected gameweek 7, got %d", gw)
	}
}

func TestGetFixtures(t *testing.T) {
	ctrl := newTestController(t)

	fixtures, err := ctrl.GetFixtures(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fixtures) != 2 {
		t.Fatalf("expected 2 gameweek 7 fixtures, got %d", len(fixtures))
	}
	if fixtures[0].ID != 701 || fixtures[1].ID != 702 {
		t.Errorf("expected fixtures 701 and 702, got %d and %d", fixtures[0].ID, fixtures[1].ID)
	}
}

func TestListTeams(t *testing.T) {
	ctrl := newTestController(t)

	teams, err := ctrl.ListTeams(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams) != 4 {
		t.Fatalf("expected 4 teams, got %d", len(teams))
	}
	if teams[0].Name != "Arsenal" || teams[0].ShortName != "ARS" {
		t.Errorf("unexpected first team: %+v", teams[0])
	}
}

func TestGetLiveSquad(t *testing.T) {
	ctrl := newTestController(t)
	ctrl.SetTierSample(&model.TierSample{
		Name: "top10k",
		EffectiveOwnership: map[int]float64{
			108: 100, // captained by half the tier
			110: 75,
			115: 50,
		},
	})

	squad, err := ctrl.GetLiveSquad(context.Background(), 555, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Timber (105) blanked in the finished Arsenal match and Collins (106)
	// comes on; Aaronson (111) is on zero minutes but his match is still
	// live, so he keeps his slot.
	wantSubs := []model.Substitution{{Out: 105, In: 106}}
	if !slices.Equal(squad.Substitutions, wantSubs) {
		t.Errorf("expected substitutions %v, got %v", wantSubs, squad.Substitutions)
	}
	if squad.TotalPoints != 65 {
		t.Errorf("expected 65 total points, got %d", squad.TotalPoints)
	}
	if squad.BenchPoints != 7 {
		t.Errorf("expected 7 bench points, got %d", squad.BenchPoints)
	}

	in := pickInSquad(t, squad, 106)
	if in.Position != 4 || in.Multiplier != 1 || in.EffectivePoints != 2 {
		t.Errorf("unexpected state for substitute: %+v", in)
	}
	out := pickInSquad(t, squad, 105)
	if out.Position != 13 || out.Multiplier != 0 || out.EffectivePoints != 0 {
		t.Errorf("unexpected state for replaced starter: %+v", out)
	}
	captain := pickInSquad(t, squad, 108)
	if !captain.IsCaptain || captain.Multiplier != 2 || captain.EffectivePoints != 24 {
		t.Errorf("unexpected state for captain: %+v", captain)
	}

	want := []model.FixtureImpact{
		{FixtureID: 701, Impact: 44},
		{FixtureID: 702, Impact: 4},
	}
	if !slices.Equal(squad.FixtureImpacts, want) {
		t.Errorf("expected impacts %v, got %v", want, squad.FixtureImpacts)
	}
}

func TestGetLiveSquadWithoutTierSample(t *testing.T) {
	ctrl := newTestController(t)

	squad, err := ctrl.GetLiveSquad(context.Background(), 555, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if squad.FixtureImpacts != nil {
		t.Errorf("expected no fixture impacts, got %v", squad.FixtureImpacts)
	}
}

// When the fixture feed is down the squad is still rendered, just with no
// substitutions or fixture impacts applied.
func TestGetLiveSquadFixturesUnavailable(t *testing.T) {
	m := &mockfpl.Client{}
	m.On("GetBootstrap").Return(&model.Bootstrap{
		Players: []model.Player{
			{ID: 1, Position: model.POS_GKP, TeamID: 1},
			{ID: 2, Position: model.POS_DEF, TeamID: 2},
		},
		Gameweeks: []model.Gameweek{{ID: 7, IsCurrent: true}},
	}, nil)
	m.On("GetPicks", 555, 7).Return([]model.Pick{
		{PlayerID: 1, Position: 1, Multiplier: 1},
		{PlayerID: 2, Position: 2, Multiplier: 1},
	}, nil)
	m.On("GetLive", 7).Return(map[int]model.LiveElement{
		1: {PlayerID: 1, TotalPoints: 5, Stats: model.GameweekStats{Minutes: 90}},
		2: {PlayerID: 2, TotalPoints: 0},
	}, nil)
	m.On("GetFixtures").Return(nil, errors.New("fpl is down"))

	c := clock.New()
	ctrl, err := New(c, m, store.New(c))
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}

	squad, err := ctrl.GetLiveSquad(context.Background(), 555, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(squad.Substitutions) != 0 {
		t.Errorf("expected no substitutions, got %v", squad.Substitutions)
	}
	if squad.FixtureImpacts != nil {
		t.Errorf("expected no fixture impacts, got %v", squad.FixtureImpacts)
	}
	if squad.TotalPoints != 5 {
		t.Errorf("expected 5 total points, got %d", squad.TotalPoints)
	}
	m.AssertExpectations(t)
}

func TestGetLiveSquadUnknownEntry(t *testing.T) {
	ctrl := newTestController(t)

	if _, err := ctrl.GetLiveSquad(context.Background(), 1, 7); err == nil {
		t.Error("expected an error for an entry with no picks")
	}
}

func TestPlanFormation(t *testing.T) {
	ctrl := newTestController(t)

	plan, err := ctrl.PlanFormation(context.Background(), 555, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan) != 15 {
		t.Fatalf("expected 15 planned slots, got %d", len(plan))
	}

	// A 3-4-3 by predicted points, Raya in goal, bench keeper first.
	wantOrder := []int{101, 103, 104, 105, 108, 109, 110, 111, 113, 114, 115, 102, 106, 112, 107}
	for i, want := range wantOrder {
		if plan[i].Player.ID != want {
			t.Errorf("slot %d: expected player %d, got %d", i+1, want, plan[i].Player.ID)
		}
	}

	for _, slot := range plan {
		if slot.Player.ID == 108 {
			if !slot.IsCaptain || slot.Multiplier != 2 {
				t.Errorf("expected Saka as captain on double points, got %+v", slot)
			}
		} else if slot.IsCaptain {
			t.Errorf("unexpected captain: %+v", slot)
		}
	}
}

func pickInSquad(t *testing.T, squad *model.LiveSquad, playerID int) *model.Pick {
	t.Helper()
	for i := range squad.Picks {
		if squad.Picks[i].PlayerID == playerID {
			return &squad.Picks[i]
		}
	}
	t.Fatalf("player %d not found in squad", playerID)
	return nil
}
