package league

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

func queryParam(q string) url.Values {
	if q == "" {
		return nil
	}
	return url.Values{"q": []string{q}}
}

func (s *Service) SearchTeams(ctx context.Context, q string) ([]Team, error) {
	var teams []Team
	if err := s.get(ctx, "/search/teams", queryParam(q), &teams); err != nil {
		return nil, fmt.Errorf("failed to search teams: %w", err)
	}
	return teams, nil
}

func (s *Service) SearchPlayers(ctx context.Context, q string) ([]Player, error) {
	var players []Player
	if err := s.get(ctx, "/search/players", queryParam(q), &players); err != nil {
		return nil, fmt.Errorf("failed to search players: %w", err)
	}
	return players, nil
}

func (f PlayerFilter) values() url.Values {
	v := url.Values{}
	if f.TeamID != nil {
		v.Set("teamId", strconv.FormatInt(*f.TeamID, 10))
	}
	if f.Position != "" {
		v.Set("position", f.Position)
	}
	if f.MinJersey != nil {
		v.Set("minJersey", strconv.Itoa(*f.MinJersey))
	}
	if f.MaxJersey != nil {
		v.Set("maxJersey", strconv.Itoa(*f.MaxJersey))
	}
	return v
}

func (s *Service) FilterPlayers(ctx context.Context, filter PlayerFilter) ([]Player, error) {
	var players []Player
	if err := s.get(ctx, "/search/players/filter", filter.values(), &players); err != nil {
		return nil, fmt.Errorf("failed to filter players: %w", err)
	}
	return players, nil
}

func (f MatchFilter) values() url.Values {
	v := url.Values{}
	if f.DivisionID != nil {
		v.Set("divisionId", strconv.FormatInt(*f.DivisionID, 10))
	}
	if f.StadiumID != nil {
		v.Set("stadiumId", strconv.FormatInt(*f.StadiumID, 10))
	}
	if f.TeamID != nil {
		v.Set("teamId", strconv.FormatInt(*f.TeamID, 10))
	}
	if f.StartDate != "" {
		v.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		v.Set("endDate", f.EndDate)
	}
	return v
}

func (s *Service) FilterMatches(ctx context.Context, filter MatchFilter) ([]Match, error) {
	var matches []Match
	if err := s.get(ctx, "/search/matches/filter", filter.values(), &matches); err != nil {
		return nil, fmt.Errorf("failed to filter matches: %w", err)
	}
	return matches, nil
}
