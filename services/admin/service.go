package admin

import (
	"context"

	"github.com/rs/zerolog/log"

	auth "github.com/nvbf/league-desk/pkg/auth"
	respond "github.com/nvbf/league-desk/pkg/respond"
	league "github.com/nvbf/league-desk/repos/league"
)

// API is the administrator part of the league client.
type API interface {
	ListAdmins(ctx context.Context) ([]league.User, error)
	AdminDeleteTeam(ctx context.Context, teamID int64) error
}

type Viewer interface {
	IsAdmin() bool
	AdminUsername() string
}

type AdminService struct {
	api    API
	viewer Viewer
}

func NewAdminService(api API, viewer Viewer) *AdminService {
	return &AdminService{api: api, viewer: viewer}
}

func (s *AdminService) Admins(ctx context.Context) ([]league.User, error) {
	if !s.viewer.IsAdmin() {
		return nil, auth.ErrForbidden
	}
	admins, err := s.api.ListAdmins(ctx)
	if err != nil {
		return nil, respond.Failed(err, "Failed to load administrators")
	}
	if admins == nil {
		admins = []league.User{}
	}
	return admins, nil
}

// RemoveTeam deletes a team with everything the server keeps for it.
func (s *AdminService) RemoveTeam(ctx context.Context, teamID int64) error {
	if !s.viewer.IsAdmin() {
		return auth.ErrForbidden
	}
	if err := s.api.AdminDeleteTeam(ctx, teamID); err != nil {
		return respond.Failed(err, "Failed to delete team")
	}
	log.Info().Int64("team_id", teamID).Str("username", s.viewer.AdminUsername()).Msg("team removed by administrator")
	return nil
}
