package testutils

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

//go:embed espndata
var espndata embed.FS

// Leagues known to the fake server. The private league serves the same data
// as the public one but demands auth cookies.
const (
	PublicLeagueID  = "111368805"
	PrivateLeagueID = "4242"
	Season          = "2023"
)

// FakeEspnServer mimics the ESPN fantasy API's single league resource. The
// sections of the response are assembled from the views in the query string,
// the same way the real API behaves.
type FakeEspnServer struct {
	s        *httptest.Server
	requests atomic.Int64
}

func NewFakeEspnServer() *FakeEspnServer {
	f := &FakeEspnServer{}

	r := chi.NewRouter()
	r.Get("/seasons/{season}/segments/0/leagues/{leagueID}", f.leagueHandler)

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeEspnServer) Close() {
	f.s.Close()
}

func (f *FakeEspnServer) URL() string {
	return f.s.URL
}

// RequestCount reports how many league requests have been served, for
// asserting on cache behavior.
func (f *FakeEspnServer) RequestCount() int {
	return int(f.requests.Load())
}

func (f *FakeEspnServer) leagueHandler(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)

	leagueID := chi.URLParam(r, "leagueID")
	season := chi.URLParam(r, "season")

	if season != Season || (leagueID != PublicLeagueID && leagueID != PrivateLeagueID) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if leagueID == PrivateLeagueID && !strings.Contains(r.Header.Get("Cookie"), "SWID=") {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	views := query["view"]
	scoringPeriod := query.Get("scoringPeriodId")
	if scoringPeriod == "" {
		scoringPeriod = "5"
	}

	resp := map[string]json.RawMessage{
		"gameId":          json.RawMessage("1"),
		"id":              json.RawMessage(leagueID),
		"segmentId":       json.RawMessage("0"),
		"scoringPeriodId": json.RawMessage(scoringPeriod),
	}

	hasView := func(name string) bool {
		for _, v := range views {
			if v == name {
				return true
			}
		}
		return false
	}

	if hasView("mTeam") {
		if hasView("mRoster") {
			resp["teams"] = fileContents("teams_roster.json")
		} else {
			resp["teams"] = fileContents("teams.json")
		}
		resp["members"] = fileContents("members.json")
	}
	if hasView("mMatchup") {
		if hasView("mMatchupScore") && query.Get("scoringPeriodId") != "" {
			resp["schedule"] = fileContents("schedule_scored.json")
		} else {
			resp["schedule"] = fileContents("schedule.json")
		}
	}
	if hasView("mSettings") {
		resp["settings"] = fileContents("settings.json")
	}
	if hasView("mStatus") {
		resp["status"] = fileContents("status.json")
	}
	if hasView("kona_player_info") {
		resp["players"] = fileContents("free_agents.json")
		resp["positionAgainstOpponent"] = fileContents("position_ratings.json")
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("error encoding fake espn response: %v", err)
	}
}

func fileContents(name string) json.RawMessage {
	b, err := espndata.ReadFile(fmt.Sprintf("espndata/%s", name))
	if err != nil {
		log.Printf("error reading espndata/%s: %v", name, err)
		return json.RawMessage("null")
	}
	return json.RawMessage(b)
}
