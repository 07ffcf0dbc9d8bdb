package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mww/espn_client/model"
)

const EspnURL = "https://fantasy.espn.com/apis/v3/games/ffl"

// Client is a read-only view of one ESPN fantasy football league. All
// methods are safe for concurrent use; none of them retry on failure.
type Client interface {
	// TeamData returns the league's teams with records and stat totals.
	TeamData(ctx context.Context, season int) ([]model.Team, error)
	// TeamsAtWeek returns the teams with their rosters as of the given
	// scoring period.
	TeamsAtWeek(ctx context.Context, season, scoringPeriodID int) ([]model.Team, error)
	// Matchups returns the full season schedule, without roster data.
	Matchups(ctx context.Context, season int) ([]model.Matchup, error)
	// MatchupsForWeek returns only the matchups for the given matchup
	// period, with rosters for the given scoring period attached. The API
	// always returns the whole schedule, so the filtering happens here.
	MatchupsForWeek(ctx context.Context, season, matchupPeriodID, scoringPeriodID int) ([]model.Matchup, error)
	// FreeAgentsForWeek returns up to limit free agents and waiver players
	// for the scoring period, highest ownership percentage first.
	FreeAgentsForWeek(ctx context.Context, season, scoringPeriodID, limit int) ([]model.FreeAgent, error)
	// LeagueMembers returns the people in the league. For private leagues
	// this requires auth cookies.
	LeagueMembers(ctx context.Context, season int) ([]model.Member, error)
	LeagueStatus(ctx context.Context, season int) (*model.LeagueStatus, error)
	LeagueSettings(ctx context.Context, season int) (*model.LeagueSettings, error)

	// TeamsForSeason is TeamData memoized per season: at most one fetch per
	// season for the lifetime of this client.
	TeamsForSeason(ctx context.Context, season int) (map[model.TeamID]model.Team, error)
	// TeamForSeason looks up one team in the memoized season data.
	TeamForSeason(ctx context.Context, season int, id model.TeamID) (*model.Team, error)
	// MembersForSeason is LeagueMembers memoized per season.
	MembersForSeason(ctx context.Context, season int) (map[model.MemberID]model.Member, error)
}

type client struct {
	leagueID  int
	transport Transport
	cache     *seasonCache
}

// New builds a Client for a league. swid and espnS2 are the auth cookie
// values from an espn.com session; leave them empty for public leagues.
func New(leagueID int, swid, espnS2 string) (Client, error) {
	return &client{
		leagueID:  leagueID,
		transport: newHTTPTransport(EspnURL, swid, espnS2),
		cache:     newSeasonCache(),
	}, nil
}

func NewForTest(url string, leagueID int) Client {
	return &client{
		leagueID:  leagueID,
		transport: newHTTPTransport(url, "", ""),
		cache:     newSeasonCache(),
	}
}

// NewWithTransport builds a Client over a caller-supplied Transport, e.g.
// one that layers on response caching.
func NewWithTransport(leagueID int, t Transport) (Client, error) {
	return &client{
		leagueID:  leagueID,
		transport: t,
		cache:     newSeasonCache(),
	}, nil
}

// fetchLeague performs one request against the league resource and decodes
// the envelope. Every public operation goes through here exactly once.
func (c *client) fetchLeague(ctx context.Context, season int, query url.Values, header http.Header) (*model.League, error) {
	path := leaguePath(season, c.leagueID)

	status, body, err := c.transport.Do(ctx, path, query, header)
	if err != nil {
		return nil, &TransportError{Path: path, Err: err}
	}

	switch status {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrAuth
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("unexpected status code from espn: %d", status)
	}

	var league model.League
	if err := json.Unmarshal(body, &league); err != nil {
		return nil, decodeError("league", err)
	}
	return &league, nil
}

func (c *client) TeamData(ctx context.Context, season int) ([]model.Team, error) {
	league, err := c.fetchLeague(ctx, season, viewQuery(viewTeam), nil)
	if err != nil {
		return nil, err
	}
	if league.Teams == nil {
		return nil, &MissingError{View: viewTeam, Field: "teams"}
	}
	return league.Teams, nil
}

func (c *client) TeamsAtWeek(ctx context.Context, season, scoringPeriodID int) ([]model.Team, error) {
	q := withScoringPeriod(viewQuery(viewTeam, viewRoster), scoringPeriodID)
	league, err := c.fetchLeague(ctx, season, q, nil)
	if err != nil {
		return nil, err
	}
	if league.Teams == nil {
		return nil, &MissingError{View: viewRoster, Field: "teams"}
	}
	return league.Teams, nil
}

func (c *client) Matchups(ctx context.Context, season int) ([]model.Matchup, error) {
	league, err := c.fetchLeague(ctx, season, viewQuery(viewMatchup), nil)
	if err != nil {
		return nil, err
	}
	if league.Schedule == nil {
		return nil, &MissingError{View: viewMatchup, Field: "schedule"}
	}
	return league.Schedule, nil
}

func (c *client) MatchupsForWeek(ctx context.Context, season, matchupPeriodID, scoringPeriodID int) ([]model.Matchup, error) {
	// scoringPeriodId is required for the rosters to be populated, even
	// though the server does not filter the schedule by it.
	q := withScoringPeriod(viewQuery(viewMatchup, viewMatchupScore), scoringPeriodID)
	league, err := c.fetchLeague(ctx, season, q, nil)
	if err != nil {
		return nil, err
	}
	if league.Schedule == nil {
		return nil, &MissingError{View: viewMatchupScore, Field: "schedule"}
	}

	matchups := make([]model.Matchup, 0, len(league.Schedule))
	for _, m := range league.Schedule {
		if m.MatchupPeriodID == matchupPeriodID {
			matchups = append(matchups, m)
		}
	}
	return matchups, nil
}

func (c *client) FreeAgentsForWeek(ctx context.Context, season, scoringPeriodID, limit int) ([]model.FreeAgent, error) {
	filter, err := freeAgentFilter(limit)
	if err != nil {
		return nil, err
	}
	header := http.Header{}
	header.Set(filterHeaderName, filter)

	q := withScoringPeriod(viewQuery(viewPlayerInfo), scoringPeriodID)
	league, err := c.fetchLeague(ctx, season, q, header)
	if err != nil {
		return nil, err
	}
	if league.Players == nil {
		return nil, &MissingError{View: viewPlayerInfo, Field: "players"}
	}
	return league.Players, nil
}

func (c *client) LeagueMembers(ctx context.Context, season int) ([]model.Member, error) {
	league, err := c.fetchLeague(ctx, season, viewQuery(viewTeam), nil)
	if err != nil {
		return nil, err
	}
	if league.Members == nil {
		return nil, &MissingError{View: viewTeam, Field: "members"}
	}
	return league.Members, nil
}

func (c *client) LeagueStatus(ctx context.Context, season int) (*model.LeagueStatus, error) {
	league, err := c.fetchLeague(ctx, season, viewQuery(viewStatus), nil)
	if err != nil {
		return nil, err
	}
	if league.Status == nil {
		return nil, &MissingError{View: viewStatus, Field: "status"}
	}
	return league.Status, nil
}

func (c *client) LeagueSettings(ctx context.Context, season int) (*model.LeagueSettings, error) {
	league, err := c.fetchLeague(ctx, season, viewQuery(viewSettings), nil)
	if err != nil {
		return nil, err
	}
	if league.Settings == nil {
		return nil, &MissingError{View: viewSettings, Field: "settings"}
	}
	return league.Settings, nil
}

func (c *client) TeamsForSeason(ctx context.Context, season int) (map[model.TeamID]model.Team, error) {
	if teams, ok := c.cache.getTeams(season); ok {
		return teams, nil
	}

	teams, err := c.TeamData(ctx, season)
	if err != nil {
		return nil, err
	}
	byID := make(map[model.TeamID]model.Team, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
	}
	return c.cache.putTeams(season, byID), nil
}

func (c *client) TeamForSeason(ctx context.Context, season int, id model.TeamID) (*model.Team, error) {
	teams, err := c.TeamsForSeason(ctx, season)
	if err != nil {
		return nil, err
	}
	t, ok := teams[id]
	if !ok {
		return nil, fmt.Errorf("no team with id %s in season %d", id, season)
	}
	return &t, nil
}

func (c *client) MembersForSeason(ctx context.Context, season int) (map[model.MemberID]model.Member, error) {
	if members, ok := c.cache.getMembers(season); ok {
		return members, nil
	}

	members, err := c.LeagueMembers(ctx, season)
	if err != nil {
		return nil, err
	}
	byID := make(map[model.MemberID]model.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}
	return c.cache.putMembers(season, byID), nil
}
