package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

// A section that was not requested must decode to nil, not to a zero value,
// so callers can tell "not requested" apart from "requested but empty".
func TestLeagueOptionalSectionsStayNil(t *testing.T) {
	input := `{
		"gameId": 1,
		"id": 111368805,
		"segmentId": 0,
		"scoringPeriodId": 5,
		"teams": [
			{"id": 1, "abbrev": "PKR", "location": "Possum Kingdom", "nickname": "Regurgitators", "divisionId": 0}
		]
	}`

	var league League
	if err := json.Unmarshal([]byte(input), &league); err != nil {
		t.Fatalf("error was not nil, was %v", err)
	}

	if league.Teams == nil {
		t.Error("teams should not have been nil")
	}
	if league.Settings != nil {
		t.Errorf("settings should have been nil, was %+v", league.Settings)
	}
	if league.Status != nil {
		t.Errorf("status should have been nil, was %+v", league.Status)
	}
	if league.Members != nil {
		t.Errorf("members should have been nil, was %+v", league.Members)
	}
	if league.Schedule != nil {
		t.Errorf("schedule should have been nil, was %+v", league.Schedule)
	}
}

// Unknown fields are upstream schema additions and must be ignored.
func TestLeagueIgnoresUnknownFields(t *testing.T) {
	input := `{
		"gameId": 1,
		"id": 111368805,
		"segmentId": 0,
		"scoringPeriodId": 5,
		"somethingNewFromEspn": {"nested": true}
	}`

	var league League
	if err := json.Unmarshal([]byte(input), &league); err != nil {
		t.Fatalf("error was not nil, was %v", err)
	}
	if league.ID != 111368805 {
		t.Errorf("expected league id 111368805, got %d", league.ID)
	}
}

func TestTeamRoundTrip(t *testing.T) {
	input := `{
		"id": 1,
		"abbrev": "PKR",
		"location": "Possum Kingdom",
		"nickname": "Regurgitators",
		"divisionId": 0,
		"isActive": true,
		"primaryOwner": "{70943F38-0E1B-4AA9-AF86-5EDD4BF7DD36}",
		"owners": ["{70943F38-0E1B-4AA9-AF86-5EDD4BF7DD36}"],
		"playoffSeed": 1,
		"points": 1013.52,
		"record": {
			"overall": {"wins": 7, "losses": 2, "ties": 0, "percentage": 0.7777, "pointsFor": 1013.52, "pointsAgainst": 905.2, "gamesBack": 0, "streakLength": 3, "streakType": "WIN"},
			"home": {"wins": 4, "losses": 1, "ties": 0, "percentage": 0.8, "pointsFor": 560.1, "pointsAgainst": 471.8, "gamesBack": 0, "streakLength": 2, "streakType": "WIN"},
			"away": {"wins": 3, "losses": 1, "ties": 0, "percentage": 0.75, "pointsFor": 453.42, "pointsAgainst": 433.4, "gamesBack": 0, "streakLength": 1, "streakType": "WIN"},
			"division": {"wins": 4, "losses": 1, "ties": 0, "percentage": 0.8, "pointsFor": 565.9, "pointsAgainst": 502.11, "gamesBack": 0, "streakLength": 3, "streakType": "WIN"}
		},
		"valuesByStat": {"3": 2110, "4": 17, "72": 4}
	}`

	assertRoundTrip[Team](t, input)
}

func TestMatchupRoundTrip(t *testing.T) {
	input := `{
		"id": 3,
		"matchupPeriodId": 2,
		"winner": "HOME",
		"home": {"teamId": 3, "totalPoints": 112.4, "gamesPlayed": 1, "cumulativeScore": {"wins": 2, "losses": 0, "ties": 0}, "pointsByScoringPeriod": {"2": 112.4}},
		"away": {"teamId": 1, "totalPoints": 105.9, "gamesPlayed": 1, "cumulativeScore": {"wins": 1, "losses": 1, "ties": 0}}
	}`

	assertRoundTrip[Matchup](t, input)
}

func TestRosterRoundTrip(t *testing.T) {
	input := `{
		"appliedStatTotal": 24.8,
		"entries": [
			{
				"playerId": 4262921,
				"lineupSlotId": 4,
				"acquisitionType": "DRAFT",
				"status": "NORMAL",
				"playerPoolEntry": {
					"id": 4262921,
					"appliedStatTotal": 24.8,
					"onTeamId": 3,
					"lineupLocked": true,
					"rosterLocked": true,
					"status": "ONTEAM",
					"player": {
						"id": 4262921,
						"firstName": "Justin",
						"lastName": "Jefferson",
						"fullName": "Justin Jefferson",
						"active": true,
						"defaultPositionId": 4,
						"eligibleSlots": [4, 5, 23, 7, 20, 21],
						"proTeamId": 16,
						"stats": [
							{
								"id": "01202302",
								"seasonId": 2023,
								"scoringPeriodId": 2,
								"statSourceId": 0,
								"statSplitTypeId": 1,
								"proTeamId": 16,
								"appliedStats": {"42": 14.9, "53": 9.9},
								"appliedTotal": 24.8,
								"stats": {"42": 149, "53": 9, "58": 11}
							}
						]
					}
				}
			}
		]
	}`

	assertRoundTrip[Roster](t, input)
}

// assertRoundTrip checks that decode -> encode -> decode is lossless for the
// fields the model covers.
func assertRoundTrip[T any](t *testing.T, input string) {
	t.Helper()

	var first T
	if err := json.Unmarshal([]byte(input), &first); err != nil {
		t.Fatalf("error decoding input: %v", err)
	}

	encoded, err := json.Marshal(&first)
	if err != nil {
		t.Fatalf("error re-encoding: %v", err)
	}

	var second T
	if err := json.Unmarshal(encoded, &second); err != nil {
		t.Fatalf("error decoding re-encoded value: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip was not stable.\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
