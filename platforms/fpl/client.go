package fpl

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmallory42/super-fpl-sub001/model"
	"github.com/dmallory42/super-fpl-sub001/platforms/fpl/internal"
)

const FPLURL = "https://fantasy.premierleague.com/api"

type Client interface {
	// GetBootstrap loads the players, teams, and gameweeks from the
	// bootstrap-static data.
	GetBootstrap() (*model.Bootstrap, error)
	// GetFixtures loads every fixture of the season.
	GetFixtures() ([]model.Fixture, error)
	// GetLive loads the live per-player stats for a gameweek, keyed by
	// player ID.
	GetLive(gameweek int) (map[int]model.LiveElement, error)
	// GetPicks loads a manager's squad picks for a gameweek.
	GetPicks(entryID, gameweek int) ([]model.Pick, error)
	// GetPlayerSummary loads a player's per-gameweek season history.
	GetPlayerSummary(playerID int) ([]model.HistoryEntry, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		url: FPLURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

func (c *client) GetBootstrap() (*model.Bootstrap, error) {
	var resp internal.BootstrapResponse
	if err := c.get(&resp, "/bootstrap-static/"); err != nil {
		return nil, err
	}
	return resp.ToBootstrap(), nil
}

func (c *client) GetFixtures() ([]model.Fixture, error) {
	var resp []internal.Fixture
	if err := c.get(&resp, "/fixtures/"); err != nil {
		return nil, err
	}

	result := make([]model.Fixture, 0, len(resp))
	for _, f := range resp {
		result = append(result, *f.ToFixture())
	}
	return result, nil
}

func (c *client) GetLive(gameweek int) (map[int]model.LiveElement, error) {
	var resp internal.LiveResponse
	if err := c.get(&resp, "/event/%d/live/", gameweek); err != nil {
		return nil, err
	}

	result := make(map[int]model.LiveElement, len(resp.Elements))
	for _, e := range resp.Elements {
		le := e.ToLiveElement()
		result[le.PlayerID] = le
	}
	return result, nil
}

func (c *client) GetPicks(entryID, gameweek int) ([]model.Pick, error) {
	var resp internal.PicksResponse
	if err := c.get(&resp, "/entry/%d/event/%d/picks/", entryID, gameweek); err != nil {
		return nil, err
	}

	result := make([]model.Pick, 0, len(resp.Picks))
	for _, p := range resp.Picks {
		result = append(result, p.ToPick())
	}
	return result, nil
}

func (c *client) GetPlayerSummary(playerID int) ([]model.HistoryEntry, error) {
	var resp internal.SummaryResponse
	if err := c.get(&resp, "/element-summary/%d/", playerID); err != nil {
		return nil, err
	}

	result := make([]model.HistoryEntry, 0, len(resp.History))
	for _, h := range resp.History {
		result = append(result, h.ToHistoryEntry())
	}
	return result, nil
}

func (c *client) get(res any, path string, args ...any) error {
	p := fmt.Sprintf(path, args...)
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s", c.url, p), nil)
	if err != nil {
		return fmt.Errorf("error creating fpl http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending fpl http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code from fpl: %d", resp.StatusCode)
	}

	err = json.NewDecoder(resp.Body).Decode(res)
	if err != nil {
		return fmt.Errorf("error parsing response from fpl: %w", err)
	}

	return nil
}
