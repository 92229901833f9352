package testutils

import (
	"time"

	"github.com/itbasis/go-clock"
)

type TestController struct {
	Clock   *clock.Mock
	fakeFPL *FakeFPLServer
}

func (c *TestController) Close() {
	c.fakeFPL.Close()
}

func (c *TestController) FPLURL() string {
	return c.fakeFPL.URL()
}

func NewTestController() *TestController {
	mock := clock.NewMock()
	// A little after the gameweek 7 early kickoff in the canned data.
	mock.Set(time.Date(2024, 11, 2, 15, 30, 0, 0, time.UTC))

	return &TestController{
		Clock:   mock,
		fakeFPL: NewFakeFPLServer(),
	}
}
