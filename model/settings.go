package model

// LeagueSettings is populated by the mSettings view.
type LeagueSettings struct {
	Name                string               `json:"name"`
	Size                int                  `json:"size"`
	IsPublic            bool                 `json:"isPublic"`
	IsCustomizable      bool                 `json:"isCustomizable"`
	RestrictionType     string               `json:"restrictionType,omitempty"`
	AcquisitionSettings *AcquisitionSettings `json:"acquisitionSettings,omitempty"`
	DraftSettings       *DraftSettings       `json:"draftSettings,omitempty"`
	FinanceSettings     *FinanceSettings     `json:"financeSettings,omitempty"`
	RosterSettings      *RosterSettings      `json:"rosterSettings,omitempty"`
	ScheduleSettings    *ScheduleSettings    `json:"scheduleSettings,omitempty"`
	ScoringSettings     *ScoringSettings     `json:"scoringSettings,omitempty"`
	TradeSettings       *TradeSettings       `json:"tradeSettings,omitempty"`
}

type AcquisitionSettings struct {
	AcquisitionBudget            float64  `json:"acquisitionBudget"`
	AcquisitionLimit             float64  `json:"acquisitionLimit"`
	AcquisitionType              string   `json:"acquisitionType"`
	IsUsingAcquisitionBudget     bool     `json:"isUsingAcquisitionBudget"`
	MatchupAcquisitionLimit      float64  `json:"matchupAcquisitionLimit"`
	MatchupLimitPerScoringPeriod bool     `json:"matchupLimitPerScoringPeriod"`
	MinimumBid                   float64  `json:"minimumBid"`
	WaiverHours                  int      `json:"waiverHours"`
	WaiverOrderReset             bool     `json:"waiverOrderReset"`
	WaiverProcessDays            []string `json:"waiverProcessDays,omitempty"`
	WaiverProcessHour            int      `json:"waiverProcessHour"`
}

type DraftSettings struct {
	AuctionBudget    float64 `json:"auctionBudget"`
	AvailableDate    int64   `json:"availableDate"`
	Date             int64   `json:"date"`
	IsTradingEnabled bool    `json:"isTradingEnabled"`
	KeeperCount      int     `json:"keeperCount"`
	KeeperCountFuture int    `json:"keeperCountFuture"`
	KeeperOrderType  string  `json:"keeperOrderType"`
	LeagueSubType    string  `json:"leagueSubType,omitempty"`
	OrderType        string  `json:"orderType"`
	PickOrder        []int   `json:"pickOrder,omitempty"`
	TimePerSelection int     `json:"timePerSelection"`
	Type             string  `json:"type"`
}

type FinanceSettings struct {
	EntryFee           float64 `json:"entryFee"`
	MiscFee            float64 `json:"miscFee"`
	PerLoss            float64 `json:"perLoss"`
	PerTrade           float64 `json:"perTrade"`
	PlayerAcquisition  float64 `json:"playerAcquisition"`
	PlayerDrop         float64 `json:"playerDrop"`
	PlayerMoveToActive float64 `json:"playerMoveToActive"`
	PlayerMoveToIR     float64 `json:"playerMoveToIR"`
}

type RosterSettings struct {
	IsBenchUnlimited       bool               `json:"isBenchUnlimited"`
	IsUsingUndroppableList bool               `json:"isUsingUndroppableList"`
	LineupLocktimeType     string             `json:"lineupLocktimeType,omitempty"`
	// How many players can occupy each lineup slot when scoring.
	LineupSlotCounts     map[PositionID]int `json:"lineupSlotCounts,omitempty"`
	LineupSlotStatLimits map[int]int        `json:"lineupSlotStatLimits,omitempty"`
	MoveLimit            int                `json:"moveLimit"`
	// How many players of each position a team can roster at once.
	PositionLimits     map[PositionID]int `json:"positionLimits,omitempty"`
	RosterLocktimeType string             `json:"rosterLocktimeType,omitempty"`
	UniverseIDs        []int              `json:"universeIds,omitempty"`
}

type ScheduleSettings struct {
	Divisions                  []Division    `json:"divisions,omitempty"`
	MatchupPeriodCount         int           `json:"matchupPeriodCount"`
	MatchupPeriodLength        int           `json:"matchupPeriodLength"`
	MatchupPeriods             map[int][]int `json:"matchupPeriods,omitempty"`
	PeriodTypeID               int           `json:"periodTypeId"`
	PlayoffMatchupPeriodLength int           `json:"playoffMatchupPeriodLength"`
	PlayoffSeedingRule         string        `json:"playoffSeedingRule,omitempty"`
	PlayoffSeedingRuleBy       int           `json:"playoffSeedingRuleBy"`
	PlayoffTeamCount           int           `json:"playoffTeamCount"`
}

type Division struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Size int    `json:"size"`
}

type ScoringSettings struct {
	AllowOutOfPositionScoring bool          `json:"allowOutOfPositionScoring"`
	HomeTeamBonus             float64       `json:"homeTeamBonus"`
	MatchupTieRule            string        `json:"matchupTieRule,omitempty"`
	MatchupTieRuleBy          int           `json:"matchupTieRuleBy"`
	PlayerRankType            string        `json:"playerRankType,omitempty"`
	PlayoffHomeTeamBonus      float64       `json:"playoffHomeTeamBonus"`
	PlayoffMatchupTieRule     string        `json:"playoffMatchupTieRule,omitempty"`
	PlayoffMatchupTieRuleBy   int           `json:"playoffMatchupTieRuleBy"`
	ScoringEnhancementType    string        `json:"scoringEnhancementType,omitempty"`
	ScoringItems              []ScoringItem `json:"scoringItems,omitempty"`
	ScoringType               string        `json:"scoringType,omitempty"`
}

type ScoringItem struct {
	StatID          StatID              `json:"statId"`
	Points          float64             `json:"points"`
	IsReverseItem   bool                `json:"isReverseItem"`
	LeagueRanking   float64             `json:"leagueRanking"`
	LeagueTotal     float64             `json:"leagueTotal"`
	PointsOverrides map[int]float64     `json:"pointsOverrides,omitempty"`
}

type TradeSettings struct {
	AllowOutOfUniverse bool    `json:"allowOutOfUniverse"`
	DeadlineDate       int64   `json:"deadlineDate"`
	Max                int     `json:"max"`
	RevisionHours      int     `json:"revisionHours"`
	VetoVotesRequired  int     `json:"vetoVotesRequired"`
}
