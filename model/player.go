package model

// PlayerID identifies an NFL player. Negative IDs are used for team defenses.
type PlayerID int64

func (p *PlayerID) UnmarshalJSON(data []byte) error {
	n, err := parseCode(data)
	if err != nil {
		return err
	}
	*p = PlayerID(n)
	return nil
}

// Player is an NFL player as ESPN models them for fantasy purposes.
type Player struct {
	ID                   PlayerID             `json:"id"`
	FirstName            string               `json:"firstName"`
	LastName             string               `json:"lastName"`
	FullName             string               `json:"fullName,omitempty"`
	Active               bool                 `json:"active,omitempty"`
	Droppable            bool                 `json:"droppable,omitempty"`
	Injured              bool                 `json:"injured,omitempty"`
	InjuryStatus         *string              `json:"injuryStatus,omitempty"`
	Jersey               *string              `json:"jersey,omitempty"`
	DefaultPositionID    PositionID           `json:"defaultPositionId"`
	EligibleSlots        []PositionID         `json:"eligibleSlots,omitempty"`
	ProTeamID            ProTeamID            `json:"proTeamId"`
	LastNewsDate         *int64               `json:"lastNewsDate,omitempty"`
	LastVideoDate        *int64               `json:"lastVideoDate,omitempty"`
	SeasonOutlook        *string              `json:"seasonOutlook,omitempty"`
	Ownership            *Ownership           `json:"ownership,omitempty"`
	Rankings             map[int][]Ranking    `json:"rankings,omitempty"`
	DraftRanksByRankType map[string]Ranking   `json:"draftRanksByRankType,omitempty"`
	Stats                []PlayerStats        `json:"stats,omitempty"`
	UniverseID           *int                 `json:"universeId,omitempty"`
}

// PlayerStats is one stat snapshot for a player, keyed by scoring period,
// stat source (actual vs projected), and split type.
type PlayerStats struct {
	ID              string             `json:"id"`
	ExternalID      string             `json:"externalId,omitempty"`
	SeasonID        int                `json:"seasonId"`
	ScoringPeriodID int                `json:"scoringPeriodId"`
	StatSourceID    int                `json:"statSourceId"`
	StatSplitTypeID int                `json:"statSplitTypeId"`
	ProTeamID       ProTeamID          `json:"proTeamId"`
	AppliedStats    map[StatID]float64 `json:"appliedStats,omitempty"`
	AppliedTotal    float64            `json:"appliedTotal"`
	AppliedAverage  *float64           `json:"appliedAverage,omitempty"`
	Stats           map[StatID]float64 `json:"stats,omitempty"`
	Variance        map[StatID]float64 `json:"variance,omitempty"`
}

type Ranking struct {
	AuctionValue float64    `json:"auctionValue"`
	Rank         int        `json:"rank"`
	RankSourceID int        `json:"rankSourceId"`
	RankType     string     `json:"rankType,omitempty"`
	SlotID       PositionID `json:"slotId"`
}

// Ownership describes how widely a player is rostered and drafted across all
// ESPN leagues. The free-agent fetch sorts on PercentOwned.
type Ownership struct {
	ActivityLevel                     *float64 `json:"activityLevel,omitempty"`
	AuctionValueAverage               float64  `json:"auctionValueAverage"`
	AuctionValueAverageChange         float64  `json:"auctionValueAverageChange,omitempty"`
	AverageDraftPosition              float64  `json:"averageDraftPosition"`
	AverageDraftPositionPercentChange float64  `json:"averageDraftPositionPercentChange,omitempty"`
	Date                              int64    `json:"date,omitempty"`
	LeagueType                        int      `json:"leagueType,omitempty"`
	PercentChange                     float64  `json:"percentChange,omitempty"`
	PercentOwned                      float64  `json:"percentOwned"`
	PercentStarted                    float64  `json:"percentStarted"`
}
