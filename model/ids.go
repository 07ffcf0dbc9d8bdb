package model

import (
	"bytes"
	"fmt"
	"strconv"
)

// ESPN identifies lineup slots, NFL teams, and stat categories by small
// numeric codes. Depending on the endpoint the same code shows up as a JSON
// number or as a numeral string, so every code type accepts both forms. The
// lookup tables are keyed by the canonical string form of the code.
//
// New codes appear in API responses before anyone has catalogued them.
// Lookups never fail: a code without a table entry resolves to an "Unknown"
// identifier, which is a normal return value and not an error.

type codeTable[T any] struct {
	entries  map[string]T
	fallback T
}

func (t *codeTable[T]) lookup(code int64) T {
	if v, ok := t.entries[strconv.FormatInt(code, 10)]; ok {
		return v
	}
	return t.fallback
}

// parseCode handles the number-or-numeral-string encoding of code fields.
func parseCode(data []byte) (int64, error) {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing numeric code %q: %w", data, err)
	}
	return n, nil
}

// PositionID is a lineup slot code, e.g. 0 for QB or 20 for the bench.
type PositionID int

func (p PositionID) String() string {
	return positionTable.lookup(int64(p))
}

func (p *PositionID) UnmarshalJSON(data []byte) error {
	n, err := parseCode(data)
	if err != nil {
		return err
	}
	*p = PositionID(n)
	return nil
}

// ProTeamID is an NFL team code, e.g. 16 for the Minnesota Vikings.
// -1 marks a bye week.
type ProTeamID int

// ProTeam is the human-readable identity behind a ProTeamID.
type ProTeam struct {
	Name   string
	Abbrev string
}

func (t ProTeamID) Identifiers() ProTeam {
	return proTeamTable.lookup(int64(t))
}

func (t ProTeamID) Name() string {
	return t.Identifiers().Name
}

func (t ProTeamID) Abbrev() string {
	return t.Identifiers().Abbrev
}

func (t *ProTeamID) UnmarshalJSON(data []byte) error {
	n, err := parseCode(data)
	if err != nil {
		return err
	}
	*t = ProTeamID(n)
	return nil
}

// StatID is a stat category code, e.g. 72 for fumbles lost. The table is
// sparse and non-contiguous; large ranges of codes have never been observed
// with a meaning.
type StatID int

// Stat is the human-readable identity behind a StatID. FieldName is a
// machine-friendly snake_case name suitable for column or key naming.
type Stat struct {
	Name      string
	FieldName string
}

func (s StatID) Identifiers() Stat {
	return statTable.lookup(int64(s))
}

func (s StatID) Name() string {
	return s.Identifiers().Name
}

func (s StatID) FieldName() string {
	return s.Identifiers().FieldName
}

func (s *StatID) UnmarshalJSON(data []byte) error {
	n, err := parseCode(data)
	if err != nil {
		return err
	}
	*s = StatID(n)
	return nil
}

var positionTable = codeTable[string]{
	fallback: "Unknown",
	entries: map[string]string{
		"0":  "QB",
		"1":  "TQB",
		"2":  "RB",
		"3":  "RB/WR",
		"4":  "WR",
		"5":  "WR/TE",
		"6":  "TE",
		"7":  "OP",
		"8":  "DT",
		"9":  "DE",
		"10": "LB",
		"11": "DL",
		"12": "CB",
		"13": "S",
		"14": "DB",
		"15": "DP",
		"16": "D/ST",
		"17": "K",
		"18": "P",
		"19": "HC",
		"20": "Bench",
		"21": "IR",
		// 22 and 24 appear in eligibleSlots but their meaning has never
		// been identified.
		"23": "RB/WR/TE",
	},
}

var proTeamTable = codeTable[ProTeam]{
	fallback: ProTeam{Name: "Unknown", Abbrev: "UNK"},
	entries: map[string]ProTeam{
		"-1": {Name: "Bye", Abbrev: "Bye"},
		"1":  {Name: "Atlanta Falcons", Abbrev: "ATL"},
		"2":  {Name: "Buffalo Bills", Abbrev: "BUF"},
		"3":  {Name: "Chicago Bears", Abbrev: "CHI"},
		"4":  {Name: "Cincinnati Bengals", Abbrev: "CIN"},
		"5":  {Name: "Cleveland Browns", Abbrev: "CLE"},
		"6":  {Name: "Dallas Cowboys", Abbrev: "DAL"},
		"7":  {Name: "Denver Broncos", Abbrev: "DEN"},
		"8":  {Name: "Detroit Lions", Abbrev: "DET"},
		"9":  {Name: "Green Bay Packers", Abbrev: "GB"},
		"10": {Name: "Tennessee Titans", Abbrev: "TEN"},
		"11": {Name: "Indianapolis Colts", Abbrev: "IND"},
		"12": {Name: "Kansas City Chiefs", Abbrev: "KC"},
		"13": {Name: "Las Vegas Raiders", Abbrev: "LV"},
		"14": {Name: "Los Angeles Rams", Abbrev: "LAR"},
		"15": {Name: "Miami Dolphins", Abbrev: "MIA"},
		"16": {Name: "Minnesota Vikings", Abbrev: "MIN"},
		"17": {Name: "New England Patriots", Abbrev: "NE"},
		"18": {Name: "New Orleans Saints", Abbrev: "NO"},
		"19": {Name: "New York Giants", Abbrev: "NYG"},
		"20": {Name: "New York Jets", Abbrev: "NYJ"},
		"21": {Name: "Philadelphia Eagles", Abbrev: "PHI"},
		"22": {Name: "Arizona Cardinals", Abbrev: "ARI"},
		"23": {Name: "Pittsburgh Steelers", Abbrev: "PIT"},
		"24": {Name: "Los Angeles Chargers", Abbrev: "LAC"},
		"25": {Name: "San Francisco 49ers", Abbrev: "SF"},
		"26": {Name: "Seattle Seahawks", Abbrev: "SEA"},
		"27": {Name: "Tampa Bay Buccaneers", Abbrev: "TB"},
		"28": {Name: "Washington Commanders", Abbrev: "WSH"},
		"29": {Name: "Carolina Panthers", Abbrev: "CAR"},
		"30": {Name: "Jacksonville Jaguars", Abbrev: "JAX"},
		"33": {Name: "Baltimore Ravens", Abbrev: "BAL"},
		"34": {Name: "Houston Texans", Abbrev: "HOU"},
	},
}

var statTable = codeTable[Stat]{
	fallback: Stat{Name: "Unknown", FieldName: "unknown"},
	entries: map[string]Stat{
		"0":  {Name: "Pass Attempts", FieldName: "pass_attempts"},
		"2":  {Name: "Incomplete Passes", FieldName: "passing_incompletions"},
		"3":  {Name: "Passing Yards", FieldName: "passing_yards"},
		"4":  {Name: "Passing Touchdowns", FieldName: "passing_touchdowns"},
		"5":  {Name: "Every 5 Passing Yards", FieldName: "passing_yards_each_5"},
		"6":  {Name: "Every 10 Passing Yards", FieldName: "passing_yards_each_10"},
		"7":  {Name: "Every 20 Passing Yards", FieldName: "passing_yards_each_20"},
		"8":  {Name: "Every 25 Passing Yards", FieldName: "passing_yards_each_25"},
		"9":  {Name: "Every 50 Passing Yards", FieldName: "passing_yards_each_50"},
		"10": {Name: "Every 100 Passing Yards", FieldName: "passing_yards_each_100"},
		"11": {Name: "Every 5 Passing Completions", FieldName: "passing_completions_each_5"},
		"12": {Name: "Every 10 Passing Completions", FieldName: "passing_completions_each_10"},
		"13": {Name: "Every 5 Passing Incompletions", FieldName: "passing_incompletions_each_5"},
		"14": {Name: "Every 10 Passing Incompletions", FieldName: "passing_incompletions_each_10"},
		"15": {Name: "40+ Yard TD Pass Bonus", FieldName: "passing_touchdown_40_plus_bonus"},
		"16": {Name: "50+ Yard TD Pass Bonus", FieldName: "passing_touchdown_50_plus_bonus"},
		"17": {Name: "300-399 yard passing game", FieldName: "passing_300_to_399_yard_game"},
		"18": {Name: "400+ yard passing game", FieldName: "passing_over_400_yards"},
		"19": {Name: "Passing 2 Point Conversions", FieldName: "passing_two_point_conversions"},
		"20": {Name: "Passing Interceptions", FieldName: "passing_interceptions"},
		"23": {Name: "Rushing Attempts", FieldName: "rushing_attempts"},
		"24": {Name: "Rushing Yards", FieldName: "rushing_yards"},
		"25": {Name: "Rushing Touchdowns", FieldName: "rushing_touchdowns"},
		"26": {Name: "Rushing 2 Point Conversions", FieldName: "rushing_two_point_conversions"},
		"27": {Name: "Every 5 Rushing Yards", FieldName: "rushing_yards_each_5"},
		"28": {Name: "Every 10 Rushing Yards", FieldName: "rushing_yards_each_10"},
		"29": {Name: "Every 20 Rushing Yards", FieldName: "rushing_yards_each_20"},
		"30": {Name: "Every 25 Rushing Yards", FieldName: "rushing_yards_each_25"},
		"31": {Name: "Every 50 Rushing Yards", FieldName: "rushing_yards_each_50"},
		"32": {Name: "Every 100 Rushing Yards", FieldName: "rushing_yards_each_100"},
		"33": {Name: "Every 5 Rush Attempts", FieldName: "rushing_attempts_each_5"},
		"34": {Name: "Every 10 Rush Attempts", FieldName: "rushing_attempts_each_10"},
		"35": {Name: "40+ Yard TD Rush Bonus", FieldName: "rushing_touchdown_40_plus_bonus"},
		"36": {Name: "50+ Yard TD Rush Bonus", FieldName: "rushing_touchdown_50_plus_bonus"},
		"37": {Name: "100-199 Yard Rushing Game", FieldName: "rushing_100_to_199_yards"},
		"38": {Name: "200+ Yard Rushing Game", FieldName: "rushing_over_200_yards"},
		"42": {Name: "Receiving Yards", FieldName: "receiving_yards"},
		"43": {Name: "Receiving Touchdowns", FieldName: "receiving_touchdowns"},
		"44": {Name: "Receiving 2 Point Conversions", FieldName: "receiving_two_point_conversions"},
		"45": {Name: "40+ Yard TD Receiving Bonus", FieldName: "receiving_touchdown_40_plus_bonus"},
		"46": {Name: "50+ Yard TD Receiving Bonus", FieldName: "receiving_touchdown_50_plus_bonus"},
		"47": {Name: "Every 5 Receiving Yards", FieldName: "receiving_yards_each_5"},
		"48": {Name: "Every 10 Receiving Yards", FieldName: "receiving_yards_each_10"},
		"49": {Name: "Every 20 Receiving Yards", FieldName: "receiving_yards_each_20"},
		"50": {Name: "Every 25 Receiving Yards", FieldName: "receiving_yards_each_25"},
		"51": {Name: "Every 50 Receiving Yards", FieldName: "receiving_yards_each_50"},
		"52": {Name: "Every 100 Receiving Yards", FieldName: "receiving_yards_each_100"},
		"53": {Name: "Receptions", FieldName: "receptions"},
		"54": {Name: "Every 5 Receptions", FieldName: "receptions_each_5"},
		"55": {Name: "Every 10 Receptions", FieldName: "receptions_each_10"},
		"56": {Name: "100-199 Yard Receiving Game", FieldName: "receiving_100_to_199_yards"},
		"57": {Name: "200+ Yard Receiving Game", FieldName: "receiving_over_200_yards"},
		"58": {Name: "Receiving Targets", FieldName: "receiving_targets"},
		"63": {Name: "Fumble Recovered for Touchdown", FieldName: "offensive_fumble_recovered_for_touchdown"},
		"64": {Name: "Sacked", FieldName: "sacked"},
		"68": {Name: "Total Fumbles", FieldName: "total_fumbles"},
		"72": {Name: "Fumbles Lost", FieldName: "fumbles_lost"},
		"74": {Name: "Field Goals Made From 50+ Yards", FieldName: "field_goals_made_50_plus"},
		"77": {Name: "Field Goals Made From Between 40 and 49 Yards", FieldName: "field_goals_made_40_to_49"},
		"78": {Name: "Field Goals Attempted From 40 to 49 Yards", FieldName: "field_goals_attempted_40_to_49"},
		"79": {Name: "Field Goals Missed From 40 to 49 Yards", FieldName: "field_goals_missed_40_to_49"},
		"80": {Name: "Field Goals Made From <40+ Yards", FieldName: "field_goals_made_under_40"},
		"81": {Name: "Field Goals Attempted From <40+ Yards", FieldName: "field_goals_attempted_under_40"},
		"82": {Name: "Field Goals Missed From <40+ Yards", FieldName: "field_goals_missed_under_40"},
		"83": {Name: "Field Goals Made", FieldName: "field_goals_made"},
		"84": {Name: "Field Goals Attempted", FieldName: "field_goals_attempted"},
		"85": {Name: "Field Goals Missed", FieldName: "field_goals_missed"},
		"86": {Name: "Extra Points Made", FieldName: "extra_points_made"},
		"87": {Name: "Extra Points Attempted", FieldName: "extra_points_attempted"},
		"88": {Name: "Extra Points Missed", FieldName: "extra_points_missed"},
		"89": {Name: "Defense Allowed 0 Points", FieldName: "defense_0_points_allowed"},
		"90": {Name: "Defense Allowed 1 to 6 Points", FieldName: "defense_1_to_6_points_allowed"},
		"91": {Name: "Defense Allowed 7 to 13 Points", FieldName: "defense_7_to_13_points_allowed"},
		"92": {Name: "Defense Allowed 14 to 17 Points", FieldName: "defense_14_to_17_points_allowed"},
		"93": {Name: "Defense Blocked Kicks for Touchdowns", FieldName: "defense_blocked_kick_for_touchdowns"},
		"94": {Name: "Fumble or INT Return for Touchdown", FieldName: "defensive_fumble_or_int_return_for_touchdown"},
		"95": {Name: "Defensive Interceptions", FieldName: "defensive_interceptions"},
		"96": {Name: "Defensive Fumbles Recovered", FieldName: "defensive_fumbles_recovered"},
		"97": {Name: "Defensive Blocked Kicks", FieldName: "defensive_blocked_kicks"},
		"98": {Name: "Defensive Safeties", FieldName: "defensive_safeties"},
		"99": {Name: "Defensive Sacks", FieldName: "defensive_sacks"},
		"100": {Name: "Defensive Half Sacks", FieldName: "defensive_half_sacks"},
		"101": {Name: "Kickoffs Returned for Touchdown", FieldName: "kickoff_return_touchdown"},
		"102": {Name: "Punts Returned for Touchdown", FieldName: "punt_return_touchdown"},
		"103": {Name: "Fumbles Returned for Touchdown", FieldName: "fumble_return_touchdown"},
		"104": {Name: "Interceptions Returned for Touchdown", FieldName: "interception_return_touchdown"},
		"106": {Name: "Forced Fumbles", FieldName: "forced_fumbles"},
		"107": {Name: "Assisted Tackles", FieldName: "assisted_tackles"},
		"108": {Name: "Solo Tackles", FieldName: "solo_tackles"},
		"109": {Name: "Total Tackles", FieldName: "total_tackles"},
		"110": {Name: "Every 3 Tackles", FieldName: "tackles_each_3"},
		"111": {Name: "Every 5 Tackles", FieldName: "tackles_each_5"},
		"112": {Name: "Stuffs", FieldName: "stuffs"},
		"113": {Name: "Passes Defended", FieldName: "passes_defended"},
		"114": {Name: "Kickoff Return Yards", FieldName: "kickoff_return_yards"},
		"115": {Name: "Punt Return Yards", FieldName: "punt_return_yards"},
		"116": {Name: "Every 10 Kickoff Return Yards", FieldName: "kickoff_return_yards_each_10"},
		"117": {Name: "Every 25 Kickoff Return Yards", FieldName: "kickoff_return_yards_each_25"},
		"118": {Name: "Every 10 Punt Return Yards", FieldName: "punt_return_yards_each_10"},
		"119": {Name: "Every 25 Punt Return Yards", FieldName: "punt_return_yards_each_25"},
		"120": {Name: "Points Allowed", FieldName: "points_allowed"},
		"121": {Name: "Defense Allowed 18 to 21 Points", FieldName: "defense_18_to_21_points_allowed"},
		"122": {Name: "Defense Allowed 22 to 27 Points", FieldName: "defense_22_to_27_points_allowed"},
		"123": {Name: "Defense Allowed 28 to 34 Points", FieldName: "defense_28_to_34_points_allowed"},
		"124": {Name: "Defense Allowed 35 to 45 Points", FieldName: "defense_35_to_45_points_allowed"},
		"125": {Name: "Defense Allowed 46+ Points", FieldName: "defense_46_plus_points_allowed"},
		"128": {Name: "Defensive Sacks", FieldName: "defensive_sacks"},
		"129": {Name: "Defense Allowed 100 to 199 Yards", FieldName: "defense_100_to_199_yards_allowed"},
		"130": {Name: "Defense Allowed 200 to 299 Yards", FieldName: "defense_200_to_299_yards_allowed"},
		"131": {Name: "Defense Allowed 300 to 349 Yards", FieldName: "defense_300_to_349_yards_allowed"},
		"132": {Name: "Defense Allowed 350 to 399 Yards", FieldName: "defense_350_to_399_yards_allowed"},
		"133": {Name: "Defense Allowed 400 to 449 Yards", FieldName: "defense_400_to_449_yards_allowed"},
		"134": {Name: "Defense Allowed 450 to 499 Yards", FieldName: "defense_450_to_499_yards_allowed"},
		"135": {Name: "Defense Allowed 500 to 549 Yards", FieldName: "defense_500_to_549_yards_allowed"},
		"136": {Name: "Defense Allowed More than 550 Yards", FieldName: "defense_over_550_yards_allowed"},
		"138": {Name: "Net Punts", FieldName: "punts_net"},
		"139": {Name: "Punt Yards", FieldName: "punt_yards"},
		"140": {Name: "Punts Inside the 10", FieldName: "punts_inside_10"},
		"141": {Name: "Punts Inside the 20", FieldName: "punts_inside_20"},
		"142": {Name: "Punts Blocked", FieldName: "punts_blocked"},
		"143": {Name: "Punts Returned", FieldName: "punts_returned"},
		"144": {Name: "Punt Return Yards", FieldName: "punt_return_yards"},
		"145": {Name: "Punt Touchbacks", FieldName: "punts_touchback"},
		"146": {Name: "Punts Fair Caught", FieldName: "punts_fair_caught"},
		"148": {Name: "Punt Average 44+", FieldName: "punt_average_over_44"},
		"149": {Name: "Punt Average 42.0-43.9", FieldName: "punt_average_42_to_44"},
		"150": {Name: "Punt Average 40.0-41.9", FieldName: "punt_average_40_to_42"},
		"151": {Name: "Punt Average 38.0-39.9", FieldName: "punt_average_38_to_40"},
		"152": {Name: "Punt Average 36.0-37.9", FieldName: "punt_average_36_to_38"},
		"153": {Name: "Punt Average 34.0-35.9", FieldName: "punt_average_34_to_36"},
		"154": {Name: "Punt Average 33.9 or less", FieldName: "punt_average_below_34"},
		"155": {Name: "Team Win", FieldName: "team_win"},
		"156": {Name: "Team Loss", FieldName: "team_loss"},
		"158": {Name: "Team Points Scored", FieldName: "team_points_scored"},
		"161": {Name: "Win Margin 25+", FieldName: "win_margin_25_plus"},
		"162": {Name: "Win Margin 20-24", FieldName: "win_margin_20_to_24"},
		"163": {Name: "Win Margin 15-19", FieldName: "win_margin_15_to_19"},
		"164": {Name: "Win Margin 10-14", FieldName: "win_margin_10_to_14"},
		"165": {Name: "Win Margin 5-9", FieldName: "win_margin_5_to_9"},
		"166": {Name: "Win Margin 1-4", FieldName: "win_margin_1_to_4"},
		"167": {Name: "Loss Margin 1-4", FieldName: "loss_margin_1_to_4"},
		"168": {Name: "Loss Margin 5-9", FieldName: "loss_margin_5_to_9"},
		"169": {Name: "Loss Margin 10-14", FieldName: "loss_margin_10_to_14"},
		"170": {Name: "Loss Margin 15-19", FieldName: "loss_margin_15_to_19"},
		"171": {Name: "Loss Margin 20-24", FieldName: "loss_margin_20_to_24"},
		"172": {Name: "Loss Margin 25+", FieldName: "loss_margin_25_plus"},
		"198": {Name: "Field Goals Made From 50 to 59 Yards", FieldName: "field_goals_made_50_to_59"},
		"199": {Name: "Field Goals Attempted From 50 to 59 Yards", FieldName: "field_goals_attempted_50_to_59"},
		"200": {Name: "Field Goals Missed From 50 to 59 Yards", FieldName: "field_goals_missed_50_to_59"},
		"201": {Name: "Field Goals Made From 60+ Yards", FieldName: "field_goals_made_60_plus"},
		"202": {Name: "Field Goals Attempted From 60+ Yards", FieldName: "field_goals_attempted_60_plus"},
		"203": {Name: "Field Goals Missed From 60+ Yards", FieldName: "field_goals_missed_60_plus"},
		"211": {Name: "Passing First Downs", FieldName: "passing_first_downs"},
		"212": {Name: "Rushing First Downs", FieldName: "rushing_first_downs"},
		"213": {Name: "Receiving First Downs", FieldName: "receiving_first_downs"},
		"214": {Name: "FG Made Yards", FieldName: "field_goal_made_yards"},
		"218": {Name: "Every 10 FG Made Yards", FieldName: "field_goal_made_yards_each_10"},
		"219": {Name: "Every 20 FG Made Yards", FieldName: "field_goal_made_yards_each_20"},
		"221": {Name: "Every 50 FG Made Yards", FieldName: "field_goal_made_yards_each_50"},
	},
}
