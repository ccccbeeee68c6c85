package stats

import (
	"context"

	"github.com/rs/zerolog/log"

	auth "github.com/nvbf/league-desk/pkg/auth"
	respond "github.com/nvbf/league-desk/pkg/respond"
	league "github.com/nvbf/league-desk/repos/league"
)

const (
	// DisplayLimit is the number of rows a top list shows.
	DisplayLimit = 10
	// teamFetchLimit is requested when the list is filtered client side.
	teamFetchLimit = 100
)

// API is the statistics part of the league client.
type API interface {
	TopScorers(ctx context.Context, limit int) ([]league.TopScorer, error)
	TopAssists(ctx context.Context, limit int) ([]league.TopAssists, error)
	AllStandings(ctx context.Context) ([]league.LeagueStandings, error)
	DivisionStandings(ctx context.Context, divisionID int64) ([]league.LeagueStandings, error)
	StadiumStatistics(ctx context.Context) ([]league.StadiumStats, error)
	TeamPerformance(ctx context.Context, teamID int64) ([]league.TeamPerformance, error)
}

type Viewer interface {
	IsAdmin() bool
	Team() (*league.Team, bool)
}

type StatsService struct {
	api    API
	viewer Viewer
}

func NewStatsService(api API, viewer Viewer) *StatsService {
	return &StatsService{api: api, viewer: viewer}
}

// filterTeam is the team id top lists are narrowed to, or zero.
func (s *StatsService) filterTeam() int64 {
	if s.viewer.IsAdmin() {
		return 0
	}
	if team, ok := s.viewer.Team(); ok {
		return team.ID
	}
	return 0
}

// topN keeps the rows of teamID in server order, capped at the display
// limit. A zero teamID keeps every row.
func topN[T any](rows []T, teamID int64, teamOf func(T) int64) []T {
	out := make([]T, 0, DisplayLimit)
	for _, row := range rows {
		if len(out) == DisplayLimit {
			break
		}
		if teamID != 0 && teamOf(row) != teamID {
			continue
		}
		out = append(out, row)
	}
	return out
}

func (s *StatsService) fetchLimit(teamID int64) int {
	if teamID != 0 {
		return teamFetchLimit
	}
	return DisplayLimit
}

func title(teamID int64, all, team string) string {
	if teamID != 0 {
		return team
	}
	return all
}

// TopScorers ranks scorers by position in the displayed list. A team
// session sees only its own players.
func (s *StatsService) TopScorers(ctx context.Context) (*Leaderboard[RankedScorer], error) {
	teamID := s.filterTeam()
	scorers, err := s.api.TopScorers(ctx, s.fetchLimit(teamID))
	if err != nil {
		return nil, respond.Failed(err, "Failed to load top scorers")
	}
	scorers = topN(scorers, teamID, func(r league.TopScorer) int64 { return r.TeamID })

	board := &Leaderboard[RankedScorer]{
		Title: title(teamID, "Top Scorers", "Team Top Scorers"),
		Rows:  make([]RankedScorer, len(scorers)),
	}
	for i, row := range scorers {
		board.Rows[i] = RankedScorer{Rank: i + 1, TopScorer: row}
	}
	return board, nil
}

func (s *StatsService) TopAssists(ctx context.Context) (*Leaderboard[RankedAssists], error) {
	teamID := s.filterTeam()
	assists, err := s.api.TopAssists(ctx, s.fetchLimit(teamID))
	if err != nil {
		return nil, respond.Failed(err, "Failed to load top assists")
	}
	assists = topN(assists, teamID, func(r league.TopAssists) int64 { return r.TeamID })

	board := &Leaderboard[RankedAssists]{
		Title: title(teamID, "Top Assists", "Team Top Assists"),
		Rows:  make([]RankedAssists, len(assists)),
	}
	for i, row := range assists {
		board.Rows[i] = RankedAssists{Rank: i + 1, TopAssists: row}
	}
	return board, nil
}

// Standings shows a team its own division when the division is known.
// Admins see every division unless they pick one.
func (s *StatsService) Standings(ctx context.Context, divisionID int64) (*StandingsView, error) {
	if !s.viewer.IsAdmin() {
		divisionID = 0
		if team, ok := s.viewer.Team(); ok && team.Division != nil {
			divisionID = team.Division.ID
		}
	}

	var (
		rows []league.LeagueStandings
		err  error
	)
	if divisionID != 0 {
		rows, err = s.api.DivisionStandings(ctx, divisionID)
	} else {
		rows, err = s.api.AllStandings(ctx)
	}
	if err != nil {
		return nil, respond.Failed(err, "Failed to load standings")
	}
	if rows == nil {
		rows = []league.LeagueStandings{}
	}
	log.Debug().Int64("division", divisionID).Int("rows", len(rows)).Msg("standings loaded")
	return &StandingsView{DivisionID: divisionID, Rows: rows}, nil
}

func (s *StatsService) Stadiums(ctx context.Context) ([]league.StadiumStats, error) {
	stats, err := s.api.StadiumStatistics(ctx)
	if err != nil {
		return nil, respond.Failed(err, "Failed to load stadium statistics")
	}
	if stats == nil {
		stats = []league.StadiumStats{}
	}
	return stats, nil
}

// TeamPerformance is open to administrators and to the team itself.
func (s *StatsService) TeamPerformance(ctx context.Context, teamID int64) ([]league.TeamPerformance, error) {
	if !s.viewer.IsAdmin() {
		if team, ok := s.viewer.Team(); !ok || team.ID != teamID {
			return nil, auth.ErrNotOwnTeam
		}
	}
	perf, err := s.api.TeamPerformance(ctx, teamID)
	if err != nil {
		return nil, respond.Failed(err, "Failed to load team performance")
	}
	if perf == nil {
		perf = []league.TeamPerformance{}
	}
	return perf, nil
}
