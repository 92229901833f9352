package controller

import (
	"context"
	"fmt"
	"log"
	"math"
	"regexp"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmallory42/super-fpl-sub001/model"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// dataMaxAge is how stale the cached bootstrap data may get before a read
// triggers a refresh.
const dataMaxAge = 6 * time.Hour

func (c *controller) GetPlayer(ctx context.Context, id int) (*model.Player, error) {
	if err := c.ensureData(ctx); err != nil {
		return nil, err
	}
	return c.store.GetPlayer(id)
}

func (c *controller) ListPlayers(ctx context.Context, filter *model.PlayerFilter) ([]model.Player, error) {
	if err := c.ensureData(ctx); err != nil {
		return nil, err
	}

	players := c.store.ListPlayers()
	if filter == nil {
		return players, nil
	}

	result := make([]model.Player, 0, len(players))
	for i := range players {
		if filter.Match(&players[i]) {
			result = append(result, players[i])
		}
	}
	return result, nil
}

func (c *controller) Search(ctx context.Context, query string) ([]model.Player, error) {
	q, pos := getPositionFromQuery(query)
	if pos == model.POS_UNKNOWN && q == "" {
		return nil, fmt.Errorf("error not a valid query: '%s'", query)
	}

	if err := c.ensureData(ctx); err != nil {
		return nil, err
	}

	players := c.store.ListPlayers()
	if pos != model.POS_UNKNOWN {
		players = slices.DeleteFunc(players, func(p model.Player) bool {
			return p.Position != pos
		})
	}
	if q == "" {
		return players, nil
	}
	return fuzzyMatches(q, players), nil
}

// fuzzyMatches ranks players against the query by full name first and web
// name second, best match first. A player is only listed once.
func fuzzyMatches(q string, players []model.Player) []model.Player {
	names := make([]string, len(players))
	webNames := make([]string, len(players))
	for i := range players {
		names[i] = players[i].Name()
		webNames[i] = players[i].WebName
	}

	seen := make(map[int]bool)
	var result []model.Player
	for _, targets := range [][]string{names, webNames} {
		ranks := fuzzy.RankFindNormalizedFold(q, targets)
		sort.Sort(ranks)
		for _, r := range ranks {
			p := players[r.OriginalIndex]
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			result = append(result, p)
		}
	}
	return result
}

func (c *controller) GetPlayerForm(ctx context.Context, id int) ([]int, error) {
	history, err := c.fpl.GetPlayerSummary(id)
	if err != nil {
		return nil, fmt.Errorf("error getting history for player %d: %w", id, err)
	}

	// The API does not guarantee round order for players who moved clubs
	// mid-season.
	slices.SortFunc(history, func(a, b model.HistoryEntry) int {
		return a.Round - b.Round
	})

	form := make([]int, 0, len(history))
	for _, h := range history {
		form = append(form, h.TotalPoints)
	}
	return form, nil
}

func (c *controller) PriceRange(ctx context.Context) ([]float64, error) {
	if err := c.ensureData(ctx); err != nil {
		return nil, err
	}

	players := c.store.ListPlayers()
	if len(players) == 0 {
		return nil, nil
	}

	// Work in tenths of a million so the steps stay exact.
	min := math.MaxInt
	max := 0
	for i := range players {
		tenths := int(math.Round(players[i].Cost * 10))
		if tenths < min {
			min = tenths
		}
		if tenths > max {
			max = tenths
		}
	}

	prices := make([]float64, 0, max-min+1)
	for v := min; v <= max; v++ {
		prices = append(prices, float64(v)/10)
	}
	return prices, nil
}

func (c *controller) ListTeams(ctx context.Context) ([]model.Team, error) {
	if err := c.ensureData(ctx); err != nil {
		return nil, err
	}
	return c.store.ListTeams(), nil
}

func (c *controller) GetFixtures(ctx context.Context, gameweek int) ([]model.Fixture, error) {
	fixtures, err := c.fpl.GetFixtures()
	if err != nil {
		return nil, fmt.Errorf("error getting fixtures: %w", err)
	}
	if gameweek == 0 {
		return fixtures, nil
	}

	result := make([]model.Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		if f.Gameweek == gameweek {
			result = append(result, f)
		}
	}
	return result, nil
}

func (c *controller) CurrentGameweek(ctx context.Context) (int, error) {
	if err := c.ensureData(ctx); err != nil {
		return 0, err
	}

	for _, gw := range c.store.ListGameweeks() {
		if gw.IsCurrent {
			return gw.ID, nil
		}
	}
	return 0, fmt.Errorf("no current gameweek found")
}

func (c *controller) UpdateData(ctx context.Context) error {
	start := time.Now()
	log.Printf("update bootstrap data starting at %v", start.Format(time.DateTime))

	b, err := c.fpl.GetBootstrap()
	if err != nil {
		return fmt.Errorf("error loading bootstrap data: %w", err)
	}
	c.store.SaveBootstrap(b)

	log.Printf("update bootstrap data finished, took %v", time.Since(start))
	return nil
}

func (c *controller) RunPeriodicDataUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := c.UpdateData(ctx); err != nil {
				log.Printf("%v", err)
			}
		}
	}
}

// ensureData refreshes the cached bootstrap data when it is missing or older
// than dataMaxAge.
func (c *controller) ensureData(ctx context.Context) error {
	updated := c.store.LastUpdated()
	if updated.IsZero() || c.clock.Now().Sub(updated) > dataMaxAge {
		return c.UpdateData(ctx)
	}
	return nil
}

var positionRegex = regexp.MustCompile(`(?i)(pos|position)\s*:\s*(?P<pos>\w+)`)

// Parse out the position from the query, returning the same query without the
// position. So if the query is "Saka pos:MID" this will return "Saka" and
// model.POS_MID. If the input query does not have a `pos:` argument then the
// function will return the input string and model.POS_UNKNOWN.
// Allowed tags for the position are `pos` and `position` case insensitive.
func getPositionFromQuery(q string) (string, model.Position) {
	pos := model.POS_UNKNOWN
	m := positionRegex.FindStringSubmatch(q)
	if m != nil {
		p := m[positionRegex.SubexpIndex("pos")]
		pos = model.ParsePosition(p)
		q = strings.Replace(q, m[0], "", 1) // Remove the position match from the query
		q = strings.TrimSpace(q)            // Remove any remaining whitespace
	}

	return q, pos
}
