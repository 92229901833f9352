package mockfpl

import (
	"github.com/dmallory42/super-fpl-sub001/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetBootstrap() (*model.Bootstrap, error) {
	args := c.Called()

	var b *model.Bootstrap
	if args.Get(0) != nil {
		b = args.Get(0).(*model.Bootstrap)
	}

	return b, args.Error(1)
}

func (c *Client) GetFixtures() ([]model.Fixture, error) {
	args := c.Called()

	var fixtures []model.Fixture
	if args.Get(0) != nil {
		fixtures = args.Get(0).([]model.Fixture)
	}

	return fixtures, args.Error(1)
}

func (c *Client) GetLive(gameweek int) (map[int]model.LiveElement, error) {
	args := c.Called(gameweek)

	var live map[int]model.LiveElement
	if args.Get(0) != nil {
		live = args.Get(0).(map[int]model.LiveElement)
	}

	return live, args.Error(1)
}

func (c *Client) GetPicks(entryID, gameweek int) ([]model.Pick, error) {
	args := c.Called(entryID, gameweek)

	var picks []model.Pick
	if args.Get(0) != nil {
		picks = args.Get(0).([]model.Pick)
	}

	return picks, args.Error(1)
}

func (c *Client) GetPlayerSummary(playerID int) ([]model.HistoryEntry, error) {
	args := c.Called(playerID)

	var history []model.HistoryEntry
	if args.Get(0) != nil {
		history = args.Get(0).([]model.HistoryEntry)
	}

	return history, args.Error(1)
}
