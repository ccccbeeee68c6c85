package league

import (
	"context"
	"fmt"
)

func (s *Service) RegisterAdmin(ctx context.Context, request RegisterRequest) (*User, error) {
	var user User
	if err := s.post(ctx, "/admin/register", request, &user); err != nil {
		return nil, fmt.Errorf("failed to register admin: %w", err)
	}
	return &user, nil
}

func (s *Service) LoginAdmin(ctx context.Context, credentials LoginRequest) (*User, error) {
	var user User
	if err := s.post(ctx, "/admin/login", credentials, &user); err != nil {
		return nil, fmt.Errorf("failed to login admin: %w", err)
	}
	return &user, nil
}

func (s *Service) ListAdmins(ctx context.Context) ([]User, error) {
	var users []User
	if err := s.get(ctx, "/admin/admins", nil, &users); err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return users, nil
}

// AdminDeleteTeam removes a team through the administrator endpoint.
func (s *Service) AdminDeleteTeam(ctx context.Context, teamID int64) error {
	if err := s.delete(ctx, fmt.Sprintf("/admin/team/%d", teamID)); err != nil {
		return fmt.Errorf("failed to delete team as admin: %w", err)
	}
	return nil
}
