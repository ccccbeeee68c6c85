package stats

import league "github.com/nvbf/league-desk/repos/league"

// RankedScorer is a top scorer row with its displayed position.
type RankedScorer struct {
	Rank int `json:"rank"`
	league.TopScorer
}

type RankedAssists struct {
	Rank int `json:"rank"`
	league.TopAssists
}

// Leaderboard is what the top lists screens show. Title switches to the
// team heading when the list is filtered to one team.
type Leaderboard[T any] struct {
	Title string `json:"title"`
	Rows  []T    `json:"rows"`
}

type StandingsView struct {
	// DivisionID is zero when all divisions are shown.
	DivisionID int64                    `json:"divisionId,omitempty"`
	Rows       []league.LeagueStandings `json:"rows"`
}
