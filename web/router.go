package web

import (
	"time"

	"github.com/dmallory42/super-fpl-sub001/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Route("/api", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			// List all players, search with the q parameter, or narrow with
			// the filter parameters.
			r.Get("/", listPlayersHandler(ctrl, render))
			r.Get("/prices", pricesHandler(ctrl, render))
			r.Get("/{playerID:\\d+}", getPlayerHandler(ctrl, render))
			r.Get("/{playerID:\\d+}/form", playerFormHandler(ctrl, render))
		})

		r.Get("/teams", teamsHandler(ctrl, render))
		r.Get("/fixtures", fixturesHandler(ctrl, render))
		r.Get("/gameweek", currentGameweekHandler(ctrl, render))

		r.Route("/squad/{entryID:\\d+}/{gw:\\d+}", func(r chi.Router) {
			r.Get("/", liveSquadHandler(ctrl, render))
			r.Get("/plan", planFormationHandler(ctrl, render))
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("fpl", map[string]string{"admin": "pa55word"})) // TODO: read from config instead
		r.Use(middleware.Timeout(30 * time.Second))                                // Set a longer timeout for /admin actions

		r.Post("/update", forceUpdateDataHandler(ctrl, render))
	})

	return r
}
