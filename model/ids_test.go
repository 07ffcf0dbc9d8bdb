package model

import (
	"encoding/json"
	"testing"
)

func TestPositionIDString(t *testing.T) {
	tests := []struct {
		id       PositionID
		expected string
	}{
		{id: 0, expected: "QB"},
		{id: 2, expected: "RB"},
		{id: 16, expected: "D/ST"},
		{id: 17, expected: "K"},
		{id: 20, expected: "Bench"},
		{id: 21, expected: "IR"},
		{id: 22, expected: "Unknown"},
		{id: 23, expected: "RB/WR/TE"},
		{id: 24, expected: "Unknown"},
		{id: 99, expected: "Unknown"},
		{id: -5, expected: "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.id.String(); got != tc.expected {
			t.Errorf("position %d: expected '%s', got '%s'", tc.id, tc.expected, got)
		}
	}
}

func TestProTeamIDIdentifiers(t *testing.T) {
	tests := []struct {
		id     ProTeamID
		name   string
		abbrev string
	}{
		{id: -1, name: "Bye", abbrev: "Bye"},
		{id: 9, name: "Green Bay Packers", abbrev: "GB"},
		{id: 16, name: "Minnesota Vikings", abbrev: "MIN"},
		{id: 28, name: "Washington Commanders", abbrev: "WSH"},
		{id: 34, name: "Houston Texans", abbrev: "HOU"},
		{id: 0, name: "Unknown", abbrev: "UNK"},
		{id: 31, name: "Unknown", abbrev: "UNK"},
		{id: 999, name: "Unknown", abbrev: "UNK"},
	}

	for _, tc := range tests {
		if got := tc.id.Name(); got != tc.name {
			t.Errorf("proTeam %d: expected name '%s', got '%s'", tc.id, tc.name, got)
		}
		if got := tc.id.Abbrev(); got != tc.abbrev {
			t.Errorf("proTeam %d: expected abbrev '%s', got '%s'", tc.id, tc.abbrev, got)
		}
	}
}

func TestStatIDIdentifiers(t *testing.T) {
	tests := []struct {
		id        StatID
		name      string
		fieldName string
	}{
		{id: 0, name: "Pass Attempts", fieldName: "pass_attempts"},
		{id: 1, name: "Unknown", fieldName: "unknown"},
		{id: 24, name: "Rushing Yards", fieldName: "rushing_yards"},
		{id: 53, name: "Receptions", fieldName: "receptions"},
		{id: 72, name: "Fumbles Lost", fieldName: "fumbles_lost"},
		{id: 221, name: "Every 50 FG Made Yards", fieldName: "field_goal_made_yards_each_50"},
		{id: 22, name: "Unknown", fieldName: "unknown"},
		{id: 5000, name: "Unknown", fieldName: "unknown"},
	}

	for _, tc := range tests {
		if got := tc.id.Name(); got != tc.name {
			t.Errorf("stat %d: expected name '%s', got '%s'", tc.id, tc.name, got)
		}
		if got := tc.id.FieldName(); got != tc.fieldName {
			t.Errorf("stat %d: expected field name '%s', got '%s'", tc.id, tc.fieldName, got)
		}
	}
}

// Codes arrive as JSON numbers in some documents and as numeral strings in
// others. Both forms have to decode to the same value.
func TestCodeDecodingNumberOrString(t *testing.T) {
	type doc struct {
		Position PositionID `json:"position"`
		ProTeam  ProTeamID  `json:"proTeam"`
		Stat     StatID     `json:"stat"`
		Team     TeamID     `json:"team"`
		Player   PlayerID   `json:"player"`
	}

	tests := []struct {
		name  string
		input string
	}{
		{name: "numbers", input: `{"position": 16, "proTeam": -1, "stat": 72, "team": 3, "player": 4262921}`},
		{name: "strings", input: `{"position": "16", "proTeam": "-1", "stat": "72", "team": "3", "player": "4262921"}`},
	}

	expected := doc{Position: 16, ProTeam: -1, Stat: 72, Team: 3, Player: 4262921}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got doc
			if err := json.Unmarshal([]byte(tc.input), &got); err != nil {
				t.Fatalf("error was not nil, was %v", err)
			}
			if got != expected {
				t.Errorf("expected %+v, got %+v", expected, got)
			}
		})
	}
}

func TestCodeDecodingBadValue(t *testing.T) {
	var p PositionID
	if err := json.Unmarshal([]byte(`"QB"`), &p); err == nil {
		t.Fatal("error should not have been nil")
	}
}

// valuesByStat and appliedStats are JSON objects keyed by the string form of
// the stat code.
func TestStatIDAsMapKey(t *testing.T) {
	input := `{"3": 2110, "72": 4}`

	var got map[StatID]float64
	if err := json.Unmarshal([]byte(input), &got); err != nil {
		t.Fatalf("error was not nil, was %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[3] != 2110 {
		t.Errorf("expected stat 3 to be 2110, got %f", got[3])
	}
	if got[72] != 4 {
		t.Errorf("expected stat 72 to be 4, got %f", got[72])
	}
}
