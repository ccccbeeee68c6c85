package search

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/xorcare/pointer"

	auth "github.com/nvbf/league-desk/pkg/auth"
	respond "github.com/nvbf/league-desk/pkg/respond"
	timehelper "github.com/nvbf/league-desk/pkg/timeHelper"
	validation "github.com/nvbf/league-desk/pkg/validation"
	league "github.com/nvbf/league-desk/repos/league"
)

// API is the search part of the league client.
type API interface {
	SearchTeams(ctx context.Context, q string) ([]league.Team, error)
	SearchPlayers(ctx context.Context, q string) ([]league.Player, error)
	FilterPlayers(ctx context.Context, filter league.PlayerFilter) ([]league.Player, error)
	FilterMatches(ctx context.Context, filter league.MatchFilter) ([]league.Match, error)
}

type Viewer interface {
	IsAdmin() bool
	TeamID() int64
}

type SearchService struct {
	api    API
	viewer Viewer
	loc    *time.Location
}

func NewSearchService(api API, viewer Viewer, loc *time.Location) *SearchService {
	if loc == nil {
		loc = time.Local
	}
	return &SearchService{api: api, viewer: viewer, loc: loc}
}

func (s *SearchService) Teams(ctx context.Context, q string) ([]league.Team, error) {
	teams, err := s.api.SearchTeams(ctx, strings.TrimSpace(q))
	if err != nil {
		return nil, respond.Failed(err, "Failed to search teams")
	}
	for i := range teams {
		teams[i].Password = ""
	}
	if teams == nil {
		teams = []league.Team{}
	}
	return teams, nil
}

func (s *SearchService) Players(ctx context.Context, q string) ([]league.Player, error) {
	players, err := s.api.SearchPlayers(ctx, strings.TrimSpace(q))
	if err != nil {
		return nil, respond.Failed(err, "Failed to search players")
	}
	if players == nil {
		players = []league.Player{}
	}
	return players, nil
}

func (s *SearchService) FilterPlayers(ctx context.Context, q PlayerQuery) ([]league.Player, error) {
	position := strings.TrimSpace(q.Position)
	if position != "" && !slices.Contains(league.Positions, position) {
		return nil, validation.New("Invalid player position")
	}
	if q.MinJersey != nil && q.MaxJersey != nil && *q.MinJersey > *q.MaxJersey {
		return nil, validation.New("Minimum jersey number cannot exceed maximum")
	}

	players, err := s.api.FilterPlayers(ctx, league.PlayerFilter{
		TeamID:    q.TeamID,
		Position:  position,
		MinJersey: q.MinJersey,
		MaxJersey: q.MaxJersey,
	})
	if err != nil {
		return nil, respond.Failed(err, "Failed to filter players")
	}
	if players == nil {
		players = []league.Player{}
	}
	return players, nil
}

// FilterMatches narrows the match list. A team session only ever sees its
// own matches.
func (s *SearchService) FilterMatches(ctx context.Context, q MatchQuery) ([]league.Match, error) {
	filter := league.MatchFilter{
		DivisionID: q.DivisionID,
		StadiumID:  q.StadiumID,
		TeamID:     q.TeamID,
		StartDate:  strings.TrimSpace(q.StartDate),
		EndDate:    strings.TrimSpace(q.EndDate),
	}

	var start, end time.Time
	for _, d := range []struct {
		raw string
		out *time.Time
	}{{filter.StartDate, &start}, {filter.EndDate, &end}} {
		if d.raw == "" {
			continue
		}
		parsed, ok := timehelper.ParseDate(d.raw, s.loc)
		if !ok {
			return nil, validation.New("Dates must use the YYYY-MM-DD format")
		}
		*d.out = parsed
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return nil, validation.New("Start date must not be after end date")
	}

	if !s.viewer.IsAdmin() {
		own := s.viewer.TeamID()
		if own == 0 {
			return nil, auth.ErrTeamRequired
		}
		if filter.TeamID != nil && *filter.TeamID != own {
			return nil, auth.ErrNotOwnTeam
		}
		filter.TeamID = pointer.Int64(own)
	}

	matches, err := s.api.FilterMatches(ctx, filter)
	if err != nil {
		return nil, respond.Failed(err, "Failed to filter matches")
	}
	if matches == nil {
		matches = []league.Match{}
	}
	return matches, nil
}
