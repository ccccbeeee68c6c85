package league

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

func (s *Service) AllStandings(ctx context.Context) ([]LeagueStandings, error) {
	var standings []LeagueStandings
	if err := s.get(ctx, "/statistics/standings/all", nil, &standings); err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}
	return standings, nil
}

func (s *Service) DivisionStandings(ctx context.Context, divisionID int64) ([]LeagueStandings, error) {
	var standings []LeagueStandings
	endpoint := fmt.Sprintf("/statistics/standings/division/%d", divisionID)
	if err := s.get(ctx, endpoint, nil, &standings); err != nil {
		return nil, fmt.Errorf("failed to get division standings: %w", err)
	}
	return standings, nil
}

func limitQuery(limit int) url.Values {
	return url.Values{"limit": []string{strconv.Itoa(limit)}}
}

// TopScorers returns the server ranked scorers, at most limit rows.
func (s *Service) TopScorers(ctx context.Context, limit int) ([]TopScorer, error) {
	var scorers []TopScorer
	if err := s.get(ctx, "/statistics/top-scorers", limitQuery(limit), &scorers); err != nil {
		return nil, fmt.Errorf("failed to get top scorers: %w", err)
	}
	return scorers, nil
}

// TopAssists returns the server ranked assist makers, at most limit rows.
func (s *Service) TopAssists(ctx context.Context, limit int) ([]TopAssists, error) {
	var assists []TopAssists
	if err := s.get(ctx, "/statistics/top-assists", limitQuery(limit), &assists); err != nil {
		return nil, fmt.Errorf("failed to get top assists: %w", err)
	}
	return assists, nil
}

func (s *Service) TeamPerformance(ctx context.Context, teamID int64) ([]TeamPerformance, error) {
	var performance []TeamPerformance
	endpoint := fmt.Sprintf("/statistics/team/%d/performance", teamID)
	if err := s.get(ctx, endpoint, nil, &performance); err != nil {
		return nil, fmt.Errorf("failed to get team performance: %w", err)
	}
	return performance, nil
}

func (s *Service) StadiumStatistics(ctx context.Context) ([]StadiumStats, error) {
	var stats []StadiumStats
	if err := s.get(ctx, "/statistics/stadiums", nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to get stadium statistics: %w", err)
	}
	return stats, nil
}
