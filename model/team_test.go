package model

import "testing"

func TestTeamDisplayName(t *testing.T) {
	tests := []struct {
		team     Team
		expected string
	}{
		{team: Team{Location: "Possum Kingdom", Nickname: "Regurgitators"}, expected: "Possum Kingdom Regurgitators"},
		{team: Team{Nickname: "Regurgitators"}, expected: "Regurgitators"},
	}

	for _, tc := range tests {
		if got := tc.team.DisplayName(); got != tc.expected {
			t.Errorf("expected '%s', got '%s'", tc.expected, got)
		}
	}
}
