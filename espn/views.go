package espn

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Views select which optional sections the league resource includes. The API
// does not document which combinations are legal; the ones composed below
// were determined by observation. In particular, scoringPeriodId must be sent
// for roster data to be populated at all, even though schedule data arrives
// without it.
const (
	viewTeam         = "mTeam"
	viewRoster       = "mRoster"
	viewMatchup      = "mMatchup"
	viewMatchupScore = "mMatchupScore"
	viewSettings     = "mSettings"
	viewStatus       = "mStatus"
	viewPlayerInfo   = "kona_player_info"
)

const filterHeaderName = "x-fantasy-filter"

func leaguePath(season, leagueID int) string {
	return fmt.Sprintf("/seasons/%d/segments/0/leagues/%d", season, leagueID)
}

func viewQuery(views ...string) url.Values {
	q := url.Values{}
	for _, v := range views {
		q.Add("view", v)
	}
	return q
}

func withScoringPeriod(q url.Values, scoringPeriodID int) url.Values {
	q.Set("scoringPeriodId", strconv.Itoa(scoringPeriodID))
	return q
}

// playerFilter is the x-fantasy-filter header shape for the free-agent
// fetch: free agents and waiver players only, highest ownership first.
type playerFilter struct {
	Players struct {
		FilterStatus struct {
			Value []string `json:"value"`
		} `json:"filterStatus"`
		Limit         int `json:"limit"`
		SortPercOwned struct {
			SortAsc      bool `json:"sortAsc"`
			SortPriority int  `json:"sortPriority"`
		} `json:"sortPercOwned"`
	} `json:"players"`
}

func freeAgentFilter(limit int) (string, error) {
	var f playerFilter
	f.Players.FilterStatus.Value = []string{"FREEAGENT", "WAIVERS"}
	f.Players.Limit = limit
	f.Players.SortPercOwned.SortAsc = false
	f.Players.SortPercOwned.SortPriority = 1

	b, err := json.Marshal(&f)
	if err != nil {
		return "", fmt.Errorf("error encoding free agent filter: %w", err)
	}
	return string(b), nil
}
