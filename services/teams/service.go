package teams

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	auth "github.com/nvbf/league-desk/pkg/auth"
	respond "github.com/nvbf/league-desk/pkg/respond"
	league "github.com/nvbf/league-desk/repos/league"
)

// API is the part of the league client the team screens use.
type API interface {
	ListTeams(ctx context.Context) ([]league.Team, error)
	GetTeam(ctx context.Context, id int64) (*league.Team, error)
	RegisterTeam(ctx context.Context, request league.TeamRegisterRequest) (*league.Team, error)
	UpdateTeam(ctx context.Context, id int64, team league.Team) (*league.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
	TeamHistory(ctx context.Context, id int64) ([]league.TeamMatchHistory, error)
	TeamDashboard(ctx context.Context, id int64) (*league.TeamDashboard, error)
	ListCities(ctx context.Context) ([]league.City, error)
	ListStadiums(ctx context.Context) ([]league.Stadium, error)
	ListDivisions(ctx context.Context) ([]league.Division, error)
}

type Viewer interface {
	IsAdmin() bool
	Team() (*league.Team, bool)
}

// Mailer greets newly created teams. Optional.
type Mailer interface {
	SendWelcome(ctx context.Context, team league.Team) error
}

type TeamsService struct {
	api    API
	viewer Viewer
	mailer Mailer
}

func NewTeamsService(api API, viewer Viewer, mailer Mailer) *TeamsService {
	return &TeamsService{api: api, viewer: viewer, mailer: mailer}
}

// own lets administrators through and teams only to their own record.
func (s *TeamsService) own(id int64) error {
	if s.viewer.IsAdmin() {
		return nil
	}
	if team, ok := s.viewer.Team(); ok && team.ID == id {
		return nil
	}
	return auth.ErrNotOwnTeam
}

func (s *TeamsService) List(ctx context.Context) ([]league.Team, error) {
	if !s.viewer.IsAdmin() {
		return nil, auth.ErrForbidden
	}
	teams, err := s.api.ListTeams(ctx)
	if err != nil {
		return nil, respond.Failed(err, "Failed to load teams")
	}
	for i := range teams {
		teams[i].Password = ""
	}
	if teams == nil {
		teams = []league.Team{}
	}
	return teams, nil
}

func (s *TeamsService) Get(ctx context.Context, id int64) (*Profile, error) {
	if err := s.own(id); err != nil {
		return nil, err
	}
	team, err := s.api.GetTeam(ctx, id)
	if err != nil {
		return nil, respond.Failed(err, "Failed to load team profile")
	}
	return newProfile(*team), nil
}

// Create registers a team account on behalf of the administrator and
// sends the welcome mail. A failed mail does not fail the creation.
func (s *TeamsService) Create(ctx context.Context, form CreateForm) (*Profile, error) {
	if !s.viewer.IsAdmin() {
		return nil, auth.ErrForbidden
	}
	form = form.trimmed()
	if err := form.Validate(); err != nil {
		return nil, err
	}

	request := league.TeamRegisterRequest{
		Name:     form.Name,
		Username: form.Username,
		Email:    form.Email,
		Password: form.Username,
	}
	if form.DivisionID != 0 {
		request.Division = &league.Division{ID: form.DivisionID}
	}
	if form.CityID != 0 {
		request.City = &league.City{ID: form.CityID}
	}
	if form.StadiumID != 0 {
		request.Stadium = &league.Stadium{ID: form.StadiumID}
	}

	team, err := s.api.RegisterTeam(ctx, request)
	if err != nil {
		return nil, respond.Failed(err, "Failed to create team")
	}
	log.Info().Int64("team_id", team.ID).Str("username", team.Username).Msg("team created")

	if s.mailer != nil {
		if err := s.mailer.SendWelcome(ctx, *team); err != nil {
			log.Warn().Err(err).Int64("team_id", team.ID).Msg("welcome mail not sent")
		}
	}
	return newProfile(*team), nil
}

// Update edits the profile. Selected references are resolved against the
// current reference lists; unknown ids clear the reference.
func (s *TeamsService) Update(ctx context.Context, id int64, form ProfileForm) (*Profile, error) {
	if err := s.own(id); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	form.Name = strings.TrimSpace(form.Name)
	current, err := s.api.GetTeam(ctx, id)
	if err != nil {
		return nil, respond.Failed(err, "Failed to update team information.")
	}
	options, err := s.referenceData(ctx, false)
	if err != nil {
		return nil, err
	}

	team := *current
	team.Name = form.Name
	team.Division = options.division(form.DivisionID)
	team.City = options.city(form.CityID)
	team.Stadium = options.stadium(form.StadiumID)

	updated, err := s.api.UpdateTeam(ctx, id, team)
	if err != nil {
		return nil, respond.Failed(err, "Failed to update team information.")
	}
	return newProfile(*updated), nil
}

func (s *TeamsService) Delete(ctx context.Context, id int64) error {
	if !s.viewer.IsAdmin() {
		return auth.ErrForbidden
	}
	if err := s.api.DeleteTeam(ctx, id); err != nil {
		return respond.Failed(err, "Failed to delete team")
	}
	log.Info().Int64("team_id", id).Msg("team deleted")
	return nil
}

func (s *TeamsService) History(ctx context.Context, id int64) ([]league.TeamMatchHistory, error) {
	if err := s.own(id); err != nil {
		return nil, err
	}
	history, err := s.api.TeamHistory(ctx, id)
	if err != nil {
		return nil, respond.Failed(err, "Failed to load team history")
	}
	if history == nil {
		history = []league.TeamMatchHistory{}
	}
	return history, nil
}

// Dashboard is the logged in team's overview.
func (s *TeamsService) Dashboard(ctx context.Context) (*league.TeamDashboard, error) {
	team, ok := s.viewer.Team()
	if !ok {
		return nil, auth.ErrTeamRequired
	}
	dashboard, err := s.api.TeamDashboard(ctx, team.ID)
	if err != nil {
		return nil, respond.Failed(err, "Failed to load dashboard")
	}
	return dashboard, nil
}

// FormOptions loads teams, stadiums, divisions and cities in parallel and
// returns once all four are in.
func (s *TeamsService) FormOptions(ctx context.Context) (*FormOptions, error) {
	return s.referenceData(ctx, true)
}

func (s *TeamsService) referenceData(ctx context.Context, withTeams bool) (*FormOptions, error) {
	var (
		wg      sync.WaitGroup
		options FormOptions
		errs    [4]error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		options.Stadiums, errs[0] = s.api.ListStadiums(ctx)
	}()
	go func() {
		defer wg.Done()
		options.Divisions, errs[1] = s.api.ListDivisions(ctx)
	}()
	go func() {
		defer wg.Done()
		options.Cities, errs[2] = s.api.ListCities(ctx)
	}()
	if withTeams {
		wg.Add(1)
		go func() {
			defer wg.Done()
			options.Teams, errs[3] = s.api.ListTeams(ctx)
		}()
	}
	wg.Wait()

	if err := errors.Join(errs[:]...); err != nil {
		return nil, respond.Failed(err, "Failed to load form options")
	}
	if options.Teams == nil {
		options.Teams = []league.Team{}
	}
	if options.Stadiums == nil {
		options.Stadiums = []league.Stadium{}
	}
	if options.Divisions == nil {
		options.Divisions = []league.Division{}
	}
	if options.Cities == nil {
		options.Cities = []league.City{}
	}
	for i := range options.Teams {
		options.Teams[i].Password = ""
	}
	return &options, nil
}
