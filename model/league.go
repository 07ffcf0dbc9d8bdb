package model

// League is the single resource the ESPN fantasy API exposes. Which of the
// optional sections are populated depends entirely on the views requested;
// a nil section means "not requested" (or withheld), never "empty".
type League struct {
	GameID          int          `json:"gameId"`
	ID              int64        `json:"id"`
	SegmentID       int          `json:"segmentId"`
	ScoringPeriodID int          `json:"scoringPeriodId"`
	DraftDetail     *DraftDetail `json:"draftDetail,omitempty"`

	// View-conditional sections.
	Members                 []Member           `json:"members,omitempty"`
	Settings                *LeagueSettings    `json:"settings,omitempty"`
	Status                  *LeagueStatus      `json:"status,omitempty"`
	Teams                   []Team             `json:"teams,omitempty"`
	Schedule                []Matchup          `json:"schedule,omitempty"`
	Players                 []FreeAgent        `json:"players,omitempty"`
	PositionAgainstOpponent *PositionalRatings `json:"positionAgainstOpponent,omitempty"`
}

// MemberID is the opaque GUID-style string ESPN uses for league members.
type MemberID string

// Member is a person in the league, distinct from the fantasy team they own.
type Member struct {
	ID                   MemberID              `json:"id"`
	DisplayName          string                `json:"displayName"`
	FirstName            string                `json:"firstName,omitempty"`
	LastName             string                `json:"lastName,omitempty"`
	IsLeagueManager      bool                  `json:"isLeagueManager,omitempty"`
	NotificationSettings []NotificationSetting `json:"notificationSettings,omitempty"`
}

type NotificationSetting struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Enabled bool   `json:"enabled"`
}

type DraftDetail struct {
	Drafted    bool `json:"drafted"`
	InProgress bool `json:"inProgress"`
}

// LeagueStatus is populated by the mStatus view. Only the current matchup
// period, latest scoring period, and active flag are reliably present; the
// rest come and go with the season phase.
type LeagueStatus struct {
	CurrentMatchupPeriod     int            `json:"currentMatchupPeriod"`
	LatestScoringPeriod      int            `json:"latestScoringPeriod"`
	IsActive                 bool           `json:"isActive"`
	ActivatedDate            *int64         `json:"activatedDate,omitempty"`
	CreatedAsLeagueType      *int           `json:"createdAsLeagueType,omitempty"`
	CurrentLeagueType        *int           `json:"currentLeagueType,omitempty"`
	CreationInfo             *UpdateInfo    `json:"creationInfo,omitempty"`
	LastUpdateInfo           *UpdateInfo    `json:"lastUpdateInfo,omitempty"`
	FirstScoringPeriod       *int           `json:"firstScoringPeriod,omitempty"`
	FinalScoringPeriod       *int           `json:"finalScoringPeriod,omitempty"`
	IsExpired                *bool          `json:"isExpired,omitempty"`
	IsFull                   *bool          `json:"isFull,omitempty"`
	IsPlayoffMatchupEdited   *bool          `json:"isPlayoffMatchupEdited,omitempty"`
	IsToBeDeleted            *bool          `json:"isToBeDeleted,omitempty"`
	IsViewable               *bool          `json:"isViewable,omitempty"`
	IsWaiverOrderEdited      *bool          `json:"isWaiverOrderEdited,omitempty"`
	PreviousSeasons          []int          `json:"previousSeasons,omitempty"`
	StandingsUpdateDate      *int64         `json:"standingsUpdateDate,omitempty"`
	TeamsJoined              *int           `json:"teamsJoined,omitempty"`
	TransactionScoringPeriod *int           `json:"transactionScoringPeriod,omitempty"`
	WaiverLastExecutionDate  *int64         `json:"waiverLastExecutionDate,omitempty"`
	WaiverProcessStatus      map[string]int `json:"waiverProcessStatus,omitempty"`
}

type UpdateInfo struct {
	ClientAddress *string `json:"clientAddress,omitempty"`
	Platform      string  `json:"platform"`
	Source        string  `json:"source"`
}
