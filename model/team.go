package model

import "fmt"

// TeamID identifies a fantasy team. IDs are unique within a league response
// and stable across requests for the same league and season.
type TeamID int

func (t TeamID) String() string {
	return fmt.Sprintf("%d", int(t))
}

func (t *TeamID) UnmarshalJSON(data []byte) error {
	n, err := parseCode(data)
	if err != nil {
		return err
	}
	*t = TeamID(n)
	return nil
}

// Team is a fantasy team in the league, populated by the mTeam view. The
// Roster field is only present when the mRoster view was also requested.
type Team struct {
	ID                    TeamID              `json:"id"`
	Abbrev                string              `json:"abbrev"`
	Location              string              `json:"location"`
	Nickname              string              `json:"nickname"`
	Name                  string              `json:"name,omitempty"`
	Logo                  string              `json:"logo,omitempty"`
	LogoType              string              `json:"logoType,omitempty"`
	DivisionID            int                 `json:"divisionId"`
	IsActive              bool                `json:"isActive,omitempty"`
	PrimaryOwner          MemberID            `json:"primaryOwner,omitempty"`
	Owners                []MemberID          `json:"owners,omitempty"`
	PlayoffSeed           int                 `json:"playoffSeed,omitempty"`
	Points                float64             `json:"points,omitempty"`
	PointsAdjusted        float64             `json:"pointsAdjusted,omitempty"`
	PointsDelta           float64             `json:"pointsDelta,omitempty"`
	CurrentProjectedRank  int                 `json:"currentProjectedRank,omitempty"`
	DraftDayProjectedRank int                 `json:"draftDayProjectedRank,omitempty"`
	RankCalculatedFinal   int                 `json:"rankCalculatedFinal,omitempty"`
	RankFinal             int                 `json:"rankFinal,omitempty"`
	Record                *Record             `json:"record,omitempty"`
	ValuesByStat          map[StatID]float64  `json:"valuesByStat,omitempty"`
	TransactionCounter    *TransactionCounter `json:"transactionCounter,omitempty"`
	Roster                *Roster             `json:"roster,omitempty"`
}

// DisplayName joins the location and nickname, e.g. "Possum Kingdom Regurgitators".
func (t *Team) DisplayName() string {
	if t.Location == "" {
		return t.Nickname
	}
	return fmt.Sprintf("%s %s", t.Location, t.Nickname)
}

// Record holds a team's standings split by venue and division.
type Record struct {
	Overall  RecordEntry `json:"overall"`
	Home     RecordEntry `json:"home"`
	Away     RecordEntry `json:"away"`
	Division RecordEntry `json:"division"`
}

type RecordEntry struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	Percentage    float64 `json:"percentage"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
	GamesBack     float64 `json:"gamesBack"`
	StreakLength  int     `json:"streakLength"`
	StreakType    string  `json:"streakType,omitempty"`
}

type TransactionCounter struct {
	AcquisitionBudgetSpent   float64         `json:"acquisitionBudgetSpent"`
	Acquisitions             int             `json:"acquisitions"`
	Drops                    int             `json:"drops"`
	MatchupAcquisitionTotals map[int]int     `json:"matchupAcquisitionTotals,omitempty"`
	Misc                     int             `json:"misc"`
	MoveToActive             int             `json:"moveToActive"`
	MoveToIR                 int             `json:"moveToIR"`
	Paid                     float64         `json:"paid"`
	TeamCharges              float64         `json:"teamCharges"`
	Trades                   int             `json:"trades"`
}
