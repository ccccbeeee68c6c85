package players

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	auth "github.com/nvbf/league-desk/pkg/auth"
	respond "github.com/nvbf/league-desk/pkg/respond"
	validation "github.com/nvbf/league-desk/pkg/validation"
	league "github.com/nvbf/league-desk/repos/league"
)

// API is the part of the league client the roster screens use.
type API interface {
	ListTeams(ctx context.Context) ([]league.Team, error)
	TeamPlayers(ctx context.Context, teamID int64) ([]league.Player, error)
	GetPlayer(ctx context.Context, id int64) (*league.Player, error)
	CreatePlayer(ctx context.Context, player league.Player) (*league.Player, error)
	UpdatePlayer(ctx context.Context, id int64, player league.Player) (*league.Player, error)
	DeletePlayer(ctx context.Context, id int64) error
	PlayerHistory(ctx context.Context, id int64) ([]league.PlayerHistory, error)
}

type Viewer interface {
	IsAdmin() bool
	Team() (*league.Team, bool)
}

type PlayersService struct {
	api    API
	viewer Viewer
}

func NewPlayersService(api API, viewer Viewer) *PlayersService {
	return &PlayersService{api: api, viewer: viewer}
}

// List returns a team's own roster. Administrators get the roster of
// teamID, or every roster when teamID is zero.
func (s *PlayersService) List(ctx context.Context, teamID int64) ([]league.Player, error) {
	if !s.viewer.IsAdmin() {
		team, ok := s.viewer.Team()
		if !ok {
			return nil, auth.ErrTeamRequired
		}
		if teamID != 0 && teamID != team.ID {
			return nil, auth.ErrNotOwnTeam
		}
		teamID = team.ID
	}
	if teamID == 0 {
		return s.all(ctx)
	}

	players, err := s.api.TeamPlayers(ctx, teamID)
	if err != nil {
		return nil, respond.Failed(err, "Failed to load players")
	}
	if players == nil {
		players = []league.Player{}
	}
	return players, nil
}

type roster struct {
	index   int
	teamID  int64
	players []league.Player
	err     error
}

// all fetches every team's roster in parallel. A roster that fails to
// load is logged and left out. Rosters keep the team list order.
func (s *PlayersService) all(ctx context.Context) ([]league.Player, error) {
	teams, err := s.api.ListTeams(ctx)
	if err != nil {
		return nil, respond.Failed(err, "Failed to load players")
	}

	results := make(chan roster, len(teams))
	var wg sync.WaitGroup
	for i, team := range teams {
		wg.Add(1)
		go func(i int, teamID int64) {
			defer wg.Done()
			players, err := s.api.TeamPlayers(ctx, teamID)
			results <- roster{index: i, teamID: teamID, players: players, err: err}
		}(i, team.ID)
	}
	wg.Wait()
	close(results)

	ordered := make([][]league.Player, len(teams))
	for r := range results {
		if r.err != nil {
			log.Warn().Err(r.err).Int64("team_id", r.teamID).Msg("skipping roster")
			continue
		}
		ordered[r.index] = r.players
	}

	players := []league.Player{}
	for _, list := range ordered {
		players = append(players, list...)
	}
	return players, nil
}

// visible keeps other teams' players away from a team session.
func (s *PlayersService) visible(p *league.Player) error {
	if s.viewer.IsAdmin() {
		return nil
	}
	if team, ok := s.viewer.Team(); ok && p.TeamID() == team.ID {
		return nil
	}
	return auth.ErrNotOwnTeam
}

func (s *PlayersService) Get(ctx context.Context, id int64) (*league.Player, error) {
	player, err := s.api.GetPlayer(ctx, id)
	if err != nil {
		return nil, respond.Failed(err, "Failed to load player")
	}
	if err := s.visible(player); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *PlayersService) History(ctx context.Context, id int64) (*HistoryView, error) {
	if !s.viewer.IsAdmin() {
		if _, err := s.Get(ctx, id); err != nil {
			return nil, err
		}
	}
	rows, err := s.api.PlayerHistory(ctx, id)
	if err != nil {
		return nil, respond.Failed(err, "Failed to load player history")
	}
	if rows == nil {
		rows = []league.PlayerHistory{}
	}
	totals := sumHistory(rows)
	return &HistoryView{PlayerID: id, Rows: rows, Totals: totals, Goalkeeper: totals.Saves > 0}, nil
}

// player validates the form and resolves its team against the league.
func (s *PlayersService) player(ctx context.Context, form PlayerForm) (league.Player, error) {
	if err := form.Validate(); err != nil {
		return league.Player{}, err
	}
	teams, err := s.api.ListTeams(ctx)
	if err != nil {
		return league.Player{}, respond.Failed(err, "Failed to load teams")
	}
	for _, t := range teams {
		if t.ID != 0 && t.ID == form.TeamID {
			return league.Player{
				Name:         strings.TrimSpace(form.Name),
				Position:     form.Position,
				JerseyNumber: *form.JerseyNumber,
				Team:         &league.Team{ID: t.ID},
			}, nil
		}
	}
	return league.Player{}, validation.New("Invalid team selection")
}

func (s *PlayersService) Create(ctx context.Context, form PlayerForm) (*league.Player, error) {
	if !s.viewer.IsAdmin() {
		return nil, auth.ErrForbidden
	}
	player, err := s.player(ctx, form)
	if err != nil {
		return nil, err
	}
	created, err := s.api.CreatePlayer(ctx, player)
	if err != nil {
		return nil, respond.Failed(err, "Failed to save player")
	}
	log.Info().Int64("player_id", created.ID).Int64("team_id", form.TeamID).Msg("player created")
	return created, nil
}

func (s *PlayersService) Update(ctx context.Context, id int64, form PlayerForm) (*league.Player, error) {
	if !s.viewer.IsAdmin() {
		return nil, auth.ErrForbidden
	}
	player, err := s.player(ctx, form)
	if err != nil {
		return nil, err
	}
	updated, err := s.api.UpdatePlayer(ctx, id, player)
	if err != nil {
		return nil, respond.Failed(err, "Failed to save player")
	}
	return updated, nil
}

func (s *PlayersService) Delete(ctx context.Context, id int64) error {
	if !s.viewer.IsAdmin() {
		return auth.ErrForbidden
	}
	if err := s.api.DeletePlayer(ctx, id); err != nil {
		return respond.Failed(err, "Failed to delete player")
	}
	log.Info().Int64("player_id", id).Msg("player deleted")
	return nil
}
