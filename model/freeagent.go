package model

// FreeAgent is a player available on waivers or as a free agent, populated
// by the kona_player_info view. It is not tied to any roster.
type FreeAgent struct {
	ID                PlayerID                    `json:"id"`
	Player            Player                      `json:"player"`
	OnTeamID          TeamID                      `json:"onTeamId"`
	Status            string                      `json:"status,omitempty"`
	DraftAuctionValue float64                     `json:"draftAuctionValue,omitempty"`
	KeeperValue       float64                     `json:"keeperValue,omitempty"`
	KeeperValueFuture float64                     `json:"keeperValueFuture,omitempty"`
	LineupLocked      bool                        `json:"lineupLocked,omitempty"`
	TradeLocked       bool                        `json:"tradeLocked,omitempty"`
	Ratings           map[int]FreeAgentRating     `json:"ratings,omitempty"`
}

type FreeAgentRating struct {
	PositionalRanking int     `json:"positionalRanking"`
	TotalRanking      int     `json:"totalRanking"`
	TotalRating       float64 `json:"totalRating"`
}

// PositionalRatings ranks each position's expected output against every
// opponent. It rides along with the free-agent response.
type PositionalRatings struct {
	Ratings map[PositionID]PositionRating `json:"positionalRatings,omitempty"`
}

type PositionRating struct {
	Average           float64                      `json:"average"`
	RatingsByOpponent map[ProTeamID]OpponentRating `json:"ratingsByOpponent,omitempty"`
}

type OpponentRating struct {
	Average float64 `json:"average"`
	Rank    int     `json:"rank"`
}
