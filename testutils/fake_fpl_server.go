package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed fpldata
var fpldata embed.FS

// FakeFPLServer serves a canned gameweek 7: fixture 701 (Arsenal v
// Brentford) is finished, fixture 702 (Chelsea v Leeds) is live on 63
// minutes, and entry 555 has picks with one pending auto-substitution.
type FakeFPLServer struct {
	s *httptest.Server
}

func NewFakeFPLServer() *FakeFPLServer {
	r := chi.NewRouter()
	r.Get("/bootstrap-static/", bootstrapHandler)
	r.Get("/fixtures/", fixturesHandler)
	r.Get("/event/{gw}/live/", liveHandler)
	r.Get("/entry/{entryID}/event/{gw}/picks/", picksHandler)
	r.Get("/element-summary/{playerID}/", summaryHandler)

	return &FakeFPLServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeFPLServer) Close() {
	f.s.Close()
}

func (f *FakeFPLServer) URL() string {
	return f.s.URL
}

func bootstrapHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "bootstrap.json")
}

func fixturesHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "fixtures.json")
}

func liveHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "gw") == "7" {
		serveFile(w, "live.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"elements":[]}`))
	}
}

func picksHandler(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")
	gw := chi.URLParam(r, "gw")

	if entryID == "555" && gw == "7" {
		serveFile(w, "picks.json")
	} else {
		// The real API returns a 404 with a plain text body for an entry
		// with no picks in the gameweek.
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("The game is being updated."))
	}
}

func summaryHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "playerID") == "101" {
		serveFile(w, "summary.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"history":[]}`))
	}
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := fpldata.ReadFile(fmt.Sprintf("fpldata/%s", name))
	if err != nil {
		log.Printf("error reading fpldata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
