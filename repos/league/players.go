package league

import (
	"context"
	"fmt"
	"net/http"
)

func playerPath(id int64) string {
	return fmt.Sprintf("/player/%d", id)
}

func (s *Service) GetPlayer(ctx context.Context, id int64) (*Player, error) {
	var player Player
	if err := s.get(ctx, playerPath(id), nil, &player); err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return &player, nil
}

func (s *Service) CreatePlayer(ctx context.Context, player Player) (*Player, error) {
	var created Player
	err := s.do(ctx, call{method: http.MethodPost, endpoint: "/player", body: player, out: &created, asAdmin: true})
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return &created, nil
}

func (s *Service) UpdatePlayer(ctx context.Context, id int64, player Player) (*Player, error) {
	var updated Player
	err := s.do(ctx, call{method: http.MethodPut, endpoint: playerPath(id), body: player, out: &updated, asAdmin: true})
	if err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return &updated, nil
}

func (s *Service) DeletePlayer(ctx context.Context, id int64) error {
	if err := s.do(ctx, call{method: http.MethodDelete, endpoint: playerPath(id), asAdmin: true}); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}

func (s *Service) PlayerHistory(ctx context.Context, id int64) ([]PlayerHistory, error) {
	var history []PlayerHistory
	if err := s.get(ctx, playerPath(id)+"/history", nil, &history); err != nil {
		return nil, fmt.Errorf("failed to get player history: %w", err)
	}
	return history, nil
}
