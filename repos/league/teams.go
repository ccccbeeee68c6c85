package league

import (
	"context"
	"fmt"
	"net/http"
)

func teamPath(id int64) string {
	return fmt.Sprintf("/team/%d", id)
}

// ListTeams returns every team. The admin header is announced so the API
// can apply administrator visibility.
func (s *Service) ListTeams(ctx context.Context) ([]Team, error) {
	var teams []Team
	err := s.do(ctx, call{method: http.MethodGet, endpoint: "/team", out: &teams, asAdmin: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *Service) GetTeam(ctx context.Context, id int64) (*Team, error) {
	var team Team
	if err := s.get(ctx, teamPath(id), nil, &team); err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return &team, nil
}

func (s *Service) CreateTeam(ctx context.Context, team Team) (*Team, error) {
	var created Team
	if err := s.post(ctx, "/team", team, &created); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return &created, nil
}

func (s *Service) UpdateTeam(ctx context.Context, id int64, team Team) (*Team, error) {
	var updated Team
	if err := s.put(ctx, teamPath(id), team, &updated); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return &updated, nil
}

func (s *Service) DeleteTeam(ctx context.Context, id int64) error {
	if err := s.delete(ctx, teamPath(id)); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func (s *Service) RegisterTeam(ctx context.Context, request TeamRegisterRequest) (*Team, error) {
	var team Team
	if err := s.post(ctx, "/team/register", request, &team); err != nil {
		return nil, fmt.Errorf("failed to register team: %w", err)
	}
	return &team, nil
}

func (s *Service) LoginTeam(ctx context.Context, credentials LoginRequest) (*Team, error) {
	var team Team
	if err := s.post(ctx, "/team/login", credentials, &team); err != nil {
		return nil, fmt.Errorf("failed to login team: %w", err)
	}
	return &team, nil
}

func (s *Service) TeamHistory(ctx context.Context, id int64) ([]TeamMatchHistory, error) {
	var history []TeamMatchHistory
	if err := s.get(ctx, teamPath(id)+"/history", nil, &history); err != nil {
		return nil, fmt.Errorf("failed to get team history: %w", err)
	}
	return history, nil
}

func (s *Service) TeamDashboard(ctx context.Context, id int64) (*TeamDashboard, error) {
	var dashboard TeamDashboard
	if err := s.get(ctx, teamPath(id)+"/dashboard", nil, &dashboard); err != nil {
		return nil, fmt.Errorf("failed to get team dashboard: %w", err)
	}
	return &dashboard, nil
}

func (s *Service) TeamPlayers(ctx context.Context, id int64) ([]Player, error) {
	var players []Player
	if err := s.get(ctx, teamPath(id)+"/players", nil, &players); err != nil {
		return nil, fmt.Errorf("failed to list team players: %w", err)
	}
	return players, nil
}
