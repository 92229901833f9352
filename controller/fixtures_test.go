package controller

import (
	"testing"
	"time"

	"github.com/dmallory42/super-fpl-sub001/model"
)

func kickoff(hour int) time.Time {
	return time.Date(2024, 11, 2, hour, 0, 0, 0, time.UTC)
}

func TestFixturesForTeam_ordering(t *testing.T) {
	fixtures := []model.Fixture{
		{ID: 30, HomeTeam: 1, AwayTeam: 4, KickoffTime: kickoff(17)},
		{ID: 12, HomeTeam: 2, AwayTeam: 1, KickoffTime: kickoff(12)},
		{ID: 11, HomeTeam: 3, AwayTeam: 5, KickoffTime: kickoff(12)},
		{ID: 14, HomeTeam: 1, AwayTeam: 3, KickoffTime: kickoff(12)},
	}

	got := fixturesForTeam(fixtures, 1)
	want := []int{12, 14, 30}
	if len(got) != len(want) {
		t.Fatalf("expected %d fixtures, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("fixture %d: expected id %d, got %d", i, want[i], got[i].ID)
		}
	}
}

func TestStatusForTeam(t *testing.T) {
	tests := []struct {
		name     string
		fixtures []model.Fixture
		want     model.FixtureStatus
	}{
		{
			name:     "no fixtures",
			fixtures: []model.Fixture{{ID: 1, HomeTeam: 8, AwayTeam: 9}},
			want:     model.StatusUnknown,
		},
		{
			name:     "not started",
			fixtures: []model.Fixture{{ID: 1, HomeTeam: 1, AwayTeam: 2}},
			want:     model.StatusUpcoming,
		},
		{
			name: "started with zero clock is not live",
			fixtures: []model.Fixture{
				{ID: 1, HomeTeam: 1, AwayTeam: 2, Started: true, Minutes: 0},
			},
			want: model.StatusUpcoming,
		},
		{
			name: "live clock",
			fixtures: []model.Fixture{
				{ID: 1, HomeTeam: 1, AwayTeam: 2, Started: true, Minutes: 37},
			},
			want: model.StatusPlaying,
		},
		{
			name: "finished",
			fixtures: []model.Fixture{
				{ID: 1, HomeTeam: 2, AwayTeam: 1, Started: true, Finished: true, Minutes: 90},
			},
			want: model.StatusFinished,
		},
		{
			name: "double gameweek with one live takes precedence",
			fixtures: []model.Fixture{
				{ID: 1, HomeTeam: 1, AwayTeam: 2, Started: true, Finished: true, Minutes: 90},
				{ID: 2, HomeTeam: 3, AwayTeam: 1, Started: true, Minutes: 55},
			},
			want: model.StatusPlaying,
		},
		{
			name: "double gameweek only one finished",
			fixtures: []model.Fixture{
				{ID: 1, HomeTeam: 1, AwayTeam: 2, Started: true, Finished: true, Minutes: 90},
				{ID: 2, HomeTeam: 3, AwayTeam: 1},
			},
			want: model.StatusUpcoming,
		},
		{
			name: "double gameweek both finished",
			fixtures: []model.Fixture{
				{ID: 1, HomeTeam: 1, AwayTeam: 2, Started: true, Finished: true, Minutes: 90},
				{ID: 2, HomeTeam: 3, AwayTeam: 1, Started: true, Finished: true, Minutes: 90},
			},
			want: model.StatusFinished,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := statusForTeam(tc.fixtures, 1)
			if got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestResolveFixtureForTeam(t *testing.T) {
	dgw := []model.Fixture{
		{ID: 5, HomeTeam: 1, AwayTeam: 2, KickoffTime: kickoff(12), Started: true, Finished: true, Minutes: 90},
		{ID: 9, HomeTeam: 3, AwayTeam: 1, KickoffTime: kickoff(15), Started: true, Minutes: 55},
	}

	tests := []struct {
		name       string
		fixtures   []model.Fixture
		explainIDs map[int]bool
		wantID     int
		wantFound  bool
	}{
		{
			name:      "no fixtures",
			fixtures:  []model.Fixture{{ID: 1, HomeTeam: 8, AwayTeam: 9}},
			wantFound: false,
		},
		{
			name:      "single fixture",
			fixtures:  dgw[:1],
			wantID:    5,
			wantFound: true,
		},
		{
			name:      "dgw without explain prefers the live fixture",
			fixtures:  dgw,
			wantID:    9,
			wantFound: true,
		},
		{
			name:       "explain id overrides the tiebreak",
			fixtures:   dgw,
			explainIDs: map[int]bool{5: true},
			wantID:     5,
			wantFound:  true,
		},
		{
			name: "explain ids fall through the usual tiebreak",
			fixtures: []model.Fixture{
				{ID: 5, HomeTeam: 1, AwayTeam: 2, Started: true, Finished: true, Minutes: 90},
				{ID: 9, HomeTeam: 3, AwayTeam: 1, Started: true, Finished: true, Minutes: 90},
			},
			explainIDs: map[int]bool{5: true, 9: true},
			wantID:     5,
			wantFound:  true,
		},
		{
			name: "without explain restricts to fixtures with events",
			fixtures: []model.Fixture{
				{ID: 2, HomeTeam: 1, AwayTeam: 2, KickoffTime: kickoff(12)},
				{ID: 8, HomeTeam: 3, AwayTeam: 1, KickoffTime: kickoff(15), Started: true, Finished: true, Minutes: 90},
			},
			wantID:    8,
			wantFound: true,
		},
		{
			name: "higher clock wins between live fixtures",
			fixtures: []model.Fixture{
				{ID: 4, HomeTeam: 1, AwayTeam: 2, Started: true, Minutes: 20},
				{ID: 3, HomeTeam: 3, AwayTeam: 1, Started: true, Minutes: 70},
			},
			wantID:    3,
			wantFound: true,
		},
		{
			name: "lowest id wins when all else ties",
			fixtures: []model.Fixture{
				{ID: 7, HomeTeam: 1, AwayTeam: 2, Started: true, Finished: true, Minutes: 90},
				{ID: 6, HomeTeam: 3, AwayTeam: 1, Started: true, Finished: true, Minutes: 90},
			},
			wantID:    6,
			wantFound: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, found := resolveFixtureForTeam(tc.fixtures, 1, tc.explainIDs)
			if found != tc.wantFound {
				t.Fatalf("expected found=%v, got %v", tc.wantFound, found)
			}
			if found && got.ID != tc.wantID {
				t.Errorf("expected fixture %d, got %d", tc.wantID, got.ID)
			}
		})
	}
}
