package matches

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	auth "github.com/nvbf/league-desk/pkg/auth"
	respond "github.com/nvbf/league-desk/pkg/respond"
	timehelper "github.com/nvbf/league-desk/pkg/timeHelper"
	validation "github.com/nvbf/league-desk/pkg/validation"
	league "github.com/nvbf/league-desk/repos/league"
)

// API is the part of the league client the matches screens use.
type API interface {
	ListMatches(ctx context.Context) ([]league.Match, error)
	GetMatch(ctx context.Context, token string) (*league.Match, error)
	CreateMatch(ctx context.Context, request league.MatchRequest) (*league.Match, error)
	UpdateMatch(ctx context.Context, token string, request league.MatchRequest) (*league.Match, error)
	DeleteMatch(ctx context.Context, token string) error
	ListMatchStats(ctx context.Context, token string) ([]league.MatchPlayerStats, error)
	AddPlayerMatchStats(ctx context.Context, token string, playerID int64, stats league.MatchPlayerStats) (*league.MatchPlayerStats, error)
	UpdatePlayerMatchStats(ctx context.Context, token string, playerID int64, stats league.MatchPlayerStats) (*league.MatchPlayerStats, error)
	DeletePlayerMatchStats(ctx context.Context, token string, playerID int64) error
	ListTeams(ctx context.Context) ([]league.Team, error)
	TeamPlayers(ctx context.Context, teamID int64) ([]league.Player, error)
}

// Viewer is the session as seen by the matches screens.
type Viewer interface {
	IsAdmin() bool
	TeamID() int64
}

type MatchesService struct {
	api    API
	viewer Viewer
	clock  clockwork.Clock
	loc    *time.Location
}

func NewMatchesService(api API, viewer Viewer, clock clockwork.Clock, loc *time.Location) *MatchesService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.Local
	}
	return &MatchesService{api: api, viewer: viewer, clock: clock, loc: loc}
}

func (s *MatchesService) today() time.Time {
	return timehelper.Today(s.clock, s.loc)
}

func (s *MatchesService) rows(matches []league.Match) []MatchRow {
	rows := make([]MatchRow, 0, len(matches))
	today := s.today()
	for _, m := range matches {
		rows = append(rows, MatchRow{Match: m, Phase: Classify(m, today, s.loc)})
	}
	return rows
}

// List builds the match list screen for the current identity.
func (s *MatchesService) List(ctx context.Context, order Order) (*MatchView, error) {
	all, err := s.api.ListMatches(ctx)
	if err != nil {
		return nil, respond.Failed(err, "Failed to load matches")
	}

	if s.viewer.IsAdmin() {
		upcoming, past := Split(all, s.today(), s.loc)
		return &MatchView{
			Tabs:          true,
			Upcoming:      s.rows(upcoming),
			Past:          s.rows(past),
			UpcomingCount: len(upcoming),
			PastCount:     len(past),
		}, nil
	}

	if teamID := s.viewer.TeamID(); teamID != 0 {
		all = ForTeam(all, teamID)
	}
	if order == OrderAsc {
		SortAscending(all, s.loc)
	} else {
		order = OrderDesc
		SortDescending(all, s.loc)
	}

	view := &MatchView{Matches: s.rows(all), Order: order}
	for _, row := range view.Matches {
		if row.Phase == PhaseUpcoming {
			view.UpcomingCount++
		} else {
			view.PastCount++
		}
	}
	return view, nil
}

// visible hides other teams' matches from a team session.
func (s *MatchesService) visible(m *league.Match) error {
	if s.viewer.IsAdmin() {
		return nil
	}
	if teamID := s.viewer.TeamID(); teamID != 0 && !m.Involves(teamID) {
		return auth.ErrNotOwnTeam
	}
	return nil
}

func (s *MatchesService) Get(ctx context.Context, token string) (*MatchRow, error) {
	match, err := s.api.GetMatch(ctx, token)
	if err != nil {
		return nil, respond.Failed(err, "Failed to load match")
	}
	if err := s.visible(match); err != nil {
		return nil, err
	}
	return &MatchRow{Match: *match, Phase: Classify(*match, s.today(), s.loc)}, nil
}

// resolveTeams checks both selected teams exist in the league.
func (s *MatchesService) resolveTeams(ctx context.Context, form MatchForm) (home, away league.TeamRef, err error) {
	teams, err := s.api.ListTeams(ctx)
	if err != nil {
		return home, away, respond.Failed(err, "Failed to load teams")
	}
	for _, t := range teams {
		switch t.ID {
		case form.HomeTeamID:
			home = league.TeamRef{ID: t.ID}
		case form.AwayTeamID:
			away = league.TeamRef{ID: t.ID}
		}
	}
	if home.ID == 0 || away.ID == 0 {
		return home, away, validation.New("Invalid team selection")
	}
	return home, away, nil
}

// Create schedules an upcoming match. It is always created 0-0 with no
// spectators and no ticket price.
func (s *MatchesService) Create(ctx context.Context, form MatchForm) (*MatchRow, error) {
	form = form.trimmed()
	if err := form.ValidateCreate(s.today(), s.loc); err != nil {
		return nil, err
	}
	home, away, err := s.resolveTeams(ctx, form)
	if err != nil {
		return nil, err
	}

	match, err := s.api.CreateMatch(ctx, league.MatchRequest{
		HomeTeam: home,
		AwayTeam: away,
		Date:     form.Date,
		Time:     form.Time,
	})
	if err != nil {
		return nil, respond.Failed(err, "Failed to create match")
	}
	log.Info().Str("match", match.UUID).Int64("home", home.ID).Int64("away", away.ID).Msg("match created")
	return &MatchRow{Match: *match, Phase: Classify(*match, s.today(), s.loc)}, nil
}

// Update edits teams, kickoff and score. Spectators and ticket price keep
// their stored values unless the form sets them.
func (s *MatchesService) Update(ctx context.Context, token string, form MatchForm) (*MatchRow, error) {
	form = form.trimmed()
	if err := form.ValidateUpdate(s.loc); err != nil {
		return nil, err
	}
	current, err := s.api.GetMatch(ctx, token)
	if err != nil {
		return nil, respond.Failed(err, "Failed to update match")
	}
	home, away, err := s.resolveTeams(ctx, form)
	if err != nil {
		return nil, err
	}

	request := league.MatchRequest{
		HomeTeam:    home,
		AwayTeam:    away,
		Date:        form.Date,
		Time:        form.Time,
		HomeGoals:   form.HomeGoals,
		AwayGoals:   form.AwayGoals,
		Spectators:  current.Spectators,
		TicketPrice: current.TicketPrice,
	}
	if form.Spectators != nil {
		request.Spectators = *form.Spectators
	}
	if form.TicketPrice != nil {
		request.TicketPrice = *form.TicketPrice
	}

	match, err := s.api.UpdateMatch(ctx, token, request)
	if err != nil {
		return nil, respond.Failed(err, "Failed to update match")
	}
	return &MatchRow{Match: *match, Phase: Classify(*match, s.today(), s.loc)}, nil
}

func (s *MatchesService) Delete(ctx context.Context, token string) error {
	if err := s.api.DeleteMatch(ctx, token); err != nil {
		return respond.Failed(err, "Failed to delete match")
	}
	log.Info().Str("match", token).Msg("match deleted")
	return nil
}

// Sheet lists both rosters of the match with the statistics recorded so
// far. The rosters and the stats are fetched in parallel.
func (s *MatchesService) Sheet(ctx context.Context, token string) (*StatsSheet, error) {
	row, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	var (
		wg               sync.WaitGroup
		home, away       []league.Player
		stats            []league.MatchPlayerStats
		homeErr, awayErr error
		statsErr         error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		home, homeErr = s.api.TeamPlayers(ctx, row.HomeTeam.ID)
	}()
	go func() {
		defer wg.Done()
		away, awayErr = s.api.TeamPlayers(ctx, row.AwayTeam.ID)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = s.api.ListMatchStats(ctx, token)
	}()
	wg.Wait()

	if err := errors.Join(homeErr, awayErr); err != nil {
		return nil, respond.Failed(err, "Failed to load players")
	}
	if statsErr != nil {
		return nil, respond.Failed(statsErr, "Failed to load statistics")
	}

	byPlayer := map[int64]league.MatchPlayerStats{}
	for _, st := range stats {
		if st.Player != nil {
			byPlayer[st.Player.ID] = st
		}
	}

	sheet := &StatsSheet{Match: *row, Rows: []StatsRow{}}
	add := func(players []league.Player, side string) {
		for _, p := range players {
			r := StatsRow{Player: p, Side: side}
			if st, ok := byPlayer[p.ID]; ok {
				r.Stats = &st
			}
			sheet.Rows = append(sheet.Rows, r)
		}
	}
	add(home, "home")
	add(away, "away")
	return sheet, nil
}

func (f StatsForm) stats() league.MatchPlayerStats {
	return league.MatchPlayerStats{Goals: f.Goals, Assists: f.Assists, Passes: f.Passes, Saves: f.Saves}
}

// SaveStats records a player's statistics, updating the existing line
// when there is one.
func (s *MatchesService) SaveStats(ctx context.Context, token string, playerID int64, form StatsForm) (*league.MatchPlayerStats, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	existing, err := s.api.ListMatchStats(ctx, token)
	if err != nil {
		return nil, respond.Failed(err, "Failed to save statistics")
	}

	var saved *league.MatchPlayerStats
	recorded := false
	for _, st := range existing {
		if st.Player != nil && st.Player.ID == playerID {
			recorded = true
			break
		}
	}
	if recorded {
		saved, err = s.api.UpdatePlayerMatchStats(ctx, token, playerID, form.stats())
	} else {
		saved, err = s.api.AddPlayerMatchStats(ctx, token, playerID, form.stats())
	}
	if err != nil {
		return nil, respond.Failed(err, "Failed to save statistics")
	}
	return saved, nil
}

// UpdateStats overwrites an existing statistics line.
func (s *MatchesService) UpdateStats(ctx context.Context, token string, playerID int64, form StatsForm) (*league.MatchPlayerStats, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	saved, err := s.api.UpdatePlayerMatchStats(ctx, token, playerID, form.stats())
	if err != nil {
		return nil, respond.Failed(err, "Failed to update statistics")
	}
	return saved, nil
}

func (s *MatchesService) DeleteStats(ctx context.Context, token string, playerID int64) error {
	if err := s.api.DeletePlayerMatchStats(ctx, token, playerID); err != nil {
		return respond.Failed(err, "Failed to delete statistics")
	}
	return nil
}
