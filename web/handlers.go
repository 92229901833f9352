package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmallory42/super-fpl-sub001/controller"
	"github.com/dmallory42/super-fpl-sub001/model"
	"github.com/dmallory42/super-fpl-sub001/store"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "super-fpl")
	}
}

func listPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query != "" {
			results, err := ctrl.Search(r.Context(), query)
			if err != nil {
				render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
				return
			}
			render.JSON(w, http.StatusOK, results)
			return
		}

		filter, err := filterFromQuery(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		players, err := ctrl.ListPlayers(r.Context(), filter)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

// filterFromQuery builds a player filter from the min_price, max_price,
// min_minutes, max_ownership, and pos parameters. It returns nil when none
// are present.
func filterFromQuery(r *http.Request) (*model.PlayerFilter, error) {
	q := r.URL.Query()

	var filter model.PlayerFilter
	found := false

	for name, target := range map[string]**float64{
		"min_price":     &filter.MinPrice,
		"max_price":     &filter.MaxPrice,
		"max_ownership": &filter.MaxOwnership,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", name, err)
		}
		*target = &f
		found = true
	}

	if v := q.Get("min_minutes"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("error parsing min_minutes: %w", err)
		}
		filter.MinMinutes = &m
		found = true
	}

	if v := q.Get("pos"); v != "" {
		for _, p := range strings.Split(v, ",") {
			pos := model.ParsePosition(p)
			if pos == model.POS_UNKNOWN {
				return nil, fmt.Errorf("unknown position: %s", p)
			}
			filter.Positions = append(filter.Positions, pos)
		}
		found = true
	}

	if !found {
		return nil, nil
	}
	return &filter, nil
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := intParam(r, "playerID")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		p, err := ctrl.GetPlayer(r.Context(), playerID)
		if err != nil {
			if errors.Is(err, store.ErrPlayerNotFound) {
				render.JSON(w, http.StatusNotFound, errorResponse{Error: "player not found"})
			} else {
				render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			}
			return
		}
		render.JSON(w, http.StatusOK, p)
	}
}

func playerFormHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := intParam(r, "playerID")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		form, err := ctrl.GetPlayerForm(r.Context(), playerID)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, form)
	}
}

func pricesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prices, err := ctrl.PriceRange(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, prices)
	}
}

func teamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.ListTeams(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func fixturesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameweek := 0
		if v := r.URL.Query().Get("gw"); v != "" {
			gw, err := strconv.Atoi(v)
			if err != nil {
				render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing gw: %v", err)})
				return
			}
			gameweek = gw
		}

		fixtures, err := ctrl.GetFixtures(r.Context(), gameweek)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, fixtures)
	}
}

func currentGameweekHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gw, err := ctrl.CurrentGameweek(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, map[string]int{"gameweek": gw})
	}
}

func liveSquadHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, gameweek, err := squadParams(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		squad, err := ctrl.GetLiveSquad(r.Context(), entryID, gameweek)
		if err != nil {
			render.JSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, squad)
	}
}

func planFormationHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, gameweek, err := squadParams(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		plan, err := ctrl.PlanFormation(r.Context(), entryID, gameweek)
		if err != nil {
			render.JSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, plan)
	}
}

func forceUpdateDataHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.UpdateData(r.Context()); err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func squadParams(r *http.Request) (int, int, error) {
	entryID, err := intParam(r, "entryID")
	if err != nil {
		return 0, 0, err
	}
	gameweek, err := intParam(r, "gw")
	if err != nil {
		return 0, 0, err
	}
	return entryID, gameweek, nil
}

func intParam(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", name, err)
	}
	return v, nil
}
