package model

// Roster is a snapshot of a team's lineup for one scoring period. Entries
// keep the order the API returns them in.
type Roster struct {
	AppliedStatTotal float64       `json:"appliedStatTotal,omitempty"`
	Entries          []RosterEntry `json:"entries"`
}

// RosterEntry binds a player to a lineup slot.
type RosterEntry struct {
	PlayerID              PlayerID         `json:"playerId"`
	LineupSlotID          PositionID       `json:"lineupSlotId"`
	AcquisitionDate       *int64           `json:"acquisitionDate,omitempty"`
	AcquisitionType       *string          `json:"acquisitionType,omitempty"`
	InjuryStatus          *string          `json:"injuryStatus,omitempty"`
	PendingTransactionIDs []int64          `json:"pendingTransactionIds,omitempty"`
	Status                string           `json:"status,omitempty"`
	PlayerPoolEntry       *PlayerPoolEntry `json:"playerPoolEntry,omitempty"`
}

// PlayerPoolEntry carries the full player plus their team-of-record at the
// time of the snapshot.
type PlayerPoolEntry struct {
	ID                PlayerID `json:"id"`
	AppliedStatTotal  float64  `json:"appliedStatTotal,omitempty"`
	KeeperValue       int      `json:"keeperValue,omitempty"`
	KeeperValueFuture int      `json:"keeperValueFuture,omitempty"`
	LineupLocked      bool     `json:"lineupLocked,omitempty"`
	RosterLocked      bool     `json:"rosterLocked,omitempty"`
	TradeLocked       bool     `json:"tradeLocked,omitempty"`
	OnTeamID          TeamID   `json:"onTeamId"`
	Status            string   `json:"status,omitempty"`
	Player            Player   `json:"player"`
}
