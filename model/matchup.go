package model

// Winner values observed in schedule entries. Matchups that have not been
// played (or are in progress) report UNDECIDED.
const (
	WinnerHome      = "HOME"
	WinnerAway      = "AWAY"
	WinnerUndecided = "UNDECIDED"
)

// Matchup is one entry in the league schedule, populated by the mMatchup
// view. Bye weeks have only a home side, so both sides are pointers.
type Matchup struct {
	ID              int                     `json:"id"`
	MatchupPeriodID int                     `json:"matchupPeriodId"`
	Home            *TeamMatchupPerformance `json:"home,omitempty"`
	Away            *TeamMatchupPerformance `json:"away,omitempty"`
	Winner          string                  `json:"winner,omitempty"`
	PlayoffTierType string                  `json:"playoffTierType,omitempty"`
}

// TeamMatchupPerformance is one team's side of a matchup.
// RosterForCurrentScoringPeriod is only present when the request included the
// mMatchupScore view with a scoringPeriodId parameter.
type TeamMatchupPerformance struct {
	TeamID                        TeamID              `json:"teamId"`
	TotalPoints                   float64             `json:"totalPoints"`
	GamesPlayed                   int                 `json:"gamesPlayed,omitempty"`
	Adjustment                    float64             `json:"adjustment,omitempty"`
	CumulativeScore               *CumulativeScore    `json:"cumulativeScore,omitempty"`
	PointsByScoringPeriod         map[int]float64     `json:"pointsByScoringPeriod,omitempty"`
	RosterForCurrentScoringPeriod *Roster             `json:"rosterForCurrentScoringPeriod,omitempty"`
}

// CumulativeScore is the team's season record as of this matchup. Within a
// season wins+losses+ties never decreases week over week.
type CumulativeScore struct {
	Wins        int          `json:"wins"`
	Losses      int          `json:"losses"`
	Ties        int          `json:"ties"`
	ScoreByStat *ScoreByStat `json:"scoreByStat,omitempty"`
}

type ScoreByStat struct {
	Ineligible *bool    `json:"ineligible,omitempty"`
	Rank       *int     `json:"rank,omitempty"`
	Result     *float64 `json:"result,omitempty"`
	Score      *float64 `json:"score,omitempty"`
}
