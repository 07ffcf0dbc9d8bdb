package espn

import (
	"sync"

	"github.com/mww/espn_client/model"
)

// seasonCache memoizes team and member lookups per season. Entries are
// written at most once per season and never evicted; construct a new Client
// to force a re-fetch. Two concurrent cold lookups may both hit the network,
// which is fine: the fetch is idempotent and the first completed result wins.
type seasonCache struct {
	mu      sync.Mutex
	teams   map[int]map[model.TeamID]model.Team
	members map[int]map[model.MemberID]model.Member
}

func newSeasonCache() *seasonCache {
	return &seasonCache{
		teams:   make(map[int]map[model.TeamID]model.Team),
		members: make(map[int]map[model.MemberID]model.Member),
	}
}

func (c *seasonCache) getTeams(season int) (map[model.TeamID]model.Team, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.teams[season]
	return m, ok
}

// putTeams stores the mapping for a season unless one is already there, and
// returns whichever mapping is cached afterwards.
func (c *seasonCache) putTeams(season int, m map[model.TeamID]model.Team) map[model.TeamID]model.Team {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.teams[season]; ok {
		return existing
	}
	c.teams[season] = m
	return m
}

func (c *seasonCache) getMembers(season int) (map[model.MemberID]model.Member, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.members[season]
	return m, ok
}

func (c *seasonCache) putMembers(season int, m map[model.MemberID]model.Member) map[model.MemberID]model.Member {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.members[season]; ok {
		return existing
	}
	c.members[season] = m
	return m
}
