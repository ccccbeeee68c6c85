package league

import (
	"context"
	"fmt"
)

// Cities

func (s *Service) ListCities(ctx context.Context) ([]City, error) {
	var cities []City
	if err := s.get(ctx, "/city", nil, &cities); err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}

func (s *Service) GetCity(ctx context.Context, id int64) (*City, error) {
	var city City
	if err := s.get(ctx, fmt.Sprintf("/city/%d", id), nil, &city); err != nil {
		return nil, fmt.Errorf("failed to get city: %w", err)
	}
	return &city, nil
}

func (s *Service) CreateCity(ctx context.Context, city City) (*City, error) {
	var created City
	if err := s.post(ctx, "/city", city, &created); err != nil {
		return nil, fmt.Errorf("failed to create city: %w", err)
	}
	return &created, nil
}

func (s *Service) UpdateCity(ctx context.Context, id int64, city City) (*City, error) {
	var updated City
	if err := s.put(ctx, fmt.Sprintf("/city/%d", id), city, &updated); err != nil {
		return nil, fmt.Errorf("failed to update city: %w", err)
	}
	return &updated, nil
}

func (s *Service) DeleteCity(ctx context.Context, id int64) error {
	if err := s.delete(ctx, fmt.Sprintf("/city/%d", id)); err != nil {
		return fmt.Errorf("failed to delete city: %w", err)
	}
	return nil
}

// Stadiums

func (s *Service) ListStadiums(ctx context.Context) ([]Stadium, error) {
	var stadiums []Stadium
	if err := s.get(ctx, "/stadium", nil, &stadiums); err != nil {
		return nil, fmt.Errorf("failed to list stadiums: %w", err)
	}
	return stadiums, nil
}

func (s *Service) GetStadium(ctx context.Context, id int64) (*Stadium, error) {
	var stadium Stadium
	if err := s.get(ctx, fmt.Sprintf("/stadium/%d", id), nil, &stadium); err != nil {
		return nil, fmt.Errorf("failed to get stadium: %w", err)
	}
	return &stadium, nil
}

func (s *Service) CreateStadium(ctx context.Context, stadium Stadium) (*Stadium, error) {
	var created Stadium
	if err := s.post(ctx, "/stadium", stadium, &created); err != nil {
		return nil, fmt.Errorf("failed to create stadium: %w", err)
	}
	return &created, nil
}

func (s *Service) UpdateStadium(ctx context.Context, id int64, stadium Stadium) (*Stadium, error) {
	var updated Stadium
	if err := s.put(ctx, fmt.Sprintf("/stadium/%d", id), stadium, &updated); err != nil {
		return nil, fmt.Errorf("failed to update stadium: %w", err)
	}
	return &updated, nil
}

func (s *Service) DeleteStadium(ctx context.Context, id int64) error {
	if err := s.delete(ctx, fmt.Sprintf("/stadium/%d", id)); err != nil {
		return fmt.Errorf("failed to delete stadium: %w", err)
	}
	return nil
}

// Divisions

func (s *Service) ListDivisions(ctx context.Context) ([]Division, error) {
	var divisions []Division
	if err := s.get(ctx, "/division", nil, &divisions); err != nil {
		return nil, fmt.Errorf("failed to list divisions: %w", err)
	}
	return divisions, nil
}

func (s *Service) GetDivision(ctx context.Context, id int64) (*Division, error) {
	var division Division
	if err := s.get(ctx, fmt.Sprintf("/division/%d", id), nil, &division); err != nil {
		return nil, fmt.Errorf("failed to get division: %w", err)
	}
	return &division, nil
}

func (s *Service) CreateDivision(ctx context.Context, division Division) (*Division, error) {
	var created Division
	if err := s.post(ctx, "/division", division, &created); err != nil {
		return nil, fmt.Errorf("failed to create division: %w", err)
	}
	return &created, nil
}

func (s *Service) UpdateDivision(ctx context.Context, id int64, division Division) (*Division, error) {
	var updated Division
	if err := s.put(ctx, fmt.Sprintf("/division/%d", id), division, &updated); err != nil {
		return nil, fmt.Errorf("failed to update division: %w", err)
	}
	return &updated, nil
}

func (s *Service) DeleteDivision(ctx context.Context, id int64) error {
	if err := s.delete(ctx, fmt.Sprintf("/division/%d", id)); err != nil {
		return fmt.Errorf("failed to delete division: %w", err)
	}
	return nil
}
