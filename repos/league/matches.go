package league

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

func matchPath(token string) (string, error) {
	if _, err := uuid.Parse(token); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidMatchToken, token)
	}
	return "/match/" + token, nil
}

func (s *Service) ListMatches(ctx context.Context) ([]Match, error) {
	var matches []Match
	if err := s.get(ctx, "/match", nil, &matches); err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (s *Service) GetMatch(ctx context.Context, token string) (*Match, error) {
	path, err := matchPath(token)
	if err != nil {
		return nil, err
	}
	var match Match
	if err := s.get(ctx, path, nil, &match); err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return &match, nil
}

func (s *Service) CreateMatch(ctx context.Context, request MatchRequest) (*Match, error) {
	var match Match
	err := s.do(ctx, call{method: http.MethodPost, endpoint: "/match", body: request, out: &match, asAdmin: true})
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return &match, nil
}

func (s *Service) UpdateMatch(ctx context.Context, token string, request MatchRequest) (*Match, error) {
	path, err := matchPath(token)
	if err != nil {
		return nil, err
	}
	var match Match
	err = s.do(ctx, call{method: http.MethodPut, endpoint: path, body: request, out: &match, asAdmin: true})
	if err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}
	return &match, nil
}

func (s *Service) DeleteMatch(ctx context.Context, token string) error {
	path, err := matchPath(token)
	if err != nil {
		return err
	}
	if err := s.do(ctx, call{method: http.MethodDelete, endpoint: path, asAdmin: true}); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}

func (s *Service) ListMatchStats(ctx context.Context, token string) ([]MatchPlayerStats, error) {
	path, err := matchPath(token)
	if err != nil {
		return nil, err
	}
	var stats []MatchPlayerStats
	if err := s.get(ctx, path+"/stats", nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to list match stats: %w", err)
	}
	return stats, nil
}

func playerStatsPath(token string, playerID int64) (string, error) {
	path, err := matchPath(token)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/player/%d/stats", path, playerID), nil
}

func (s *Service) GetPlayerMatchStats(ctx context.Context, token string, playerID int64) (*MatchPlayerStats, error) {
	path, err := playerStatsPath(token, playerID)
	if err != nil {
		return nil, err
	}
	var stats MatchPlayerStats
	if err := s.get(ctx, path, nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to get player match stats: %w", err)
	}
	return &stats, nil
}

func (s *Service) AddPlayerMatchStats(ctx context.Context, token string, playerID int64, stats MatchPlayerStats) (*MatchPlayerStats, error) {
	path, err := playerStatsPath(token, playerID)
	if err != nil {
		return nil, err
	}
	var created MatchPlayerStats
	err = s.do(ctx, call{method: http.MethodPost, endpoint: path, body: stats, out: &created, asAdmin: true})
	if err != nil {
		return nil, fmt.Errorf("failed to add player match stats: %w", err)
	}
	return &created, nil
}

func (s *Service) UpdatePlayerMatchStats(ctx context.Context, token string, playerID int64, stats MatchPlayerStats) (*MatchPlayerStats, error) {
	path, err := playerStatsPath(token, playerID)
	if err != nil {
		return nil, err
	}
	var updated MatchPlayerStats
	err = s.do(ctx, call{method: http.MethodPut, endpoint: path, body: stats, out: &updated, asAdmin: true})
	if err != nil {
		return nil, fmt.Errorf("failed to update player match stats: %w", err)
	}
	return &updated, nil
}

func (s *Service) DeletePlayerMatchStats(ctx context.Context, token string, playerID int64) error {
	path, err := playerStatsPath(token, playerID)
	if err != nil {
		return err
	}
	if err := s.do(ctx, call{method: http.MethodDelete, endpoint: path, asAdmin: true}); err != nil {
		return fmt.Errorf("failed to delete player match stats: %w", err)
	}
	return nil
}
