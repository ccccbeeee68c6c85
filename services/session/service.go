package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	respond "github.com/nvbf/league-desk/pkg/respond"
	league "github.com/nvbf/league-desk/repos/league"
	sessionstore "github.com/nvbf/league-desk/repos/sessionstore"
)

type State string

const (
	StateAnonymous State = "anonymous"
	StateAdmin     State = "admin"
	StateTeam      State = "team"
)

// API is the part of the league client the session talks to.
type API interface {
	LoginAdmin(ctx context.Context, credentials league.LoginRequest) (*league.User, error)
	RegisterAdmin(ctx context.Context, request league.RegisterRequest) (*league.User, error)
	LoginTeam(ctx context.Context, credentials league.LoginRequest) (*league.Team, error)
	RegisterTeam(ctx context.Context, request league.TeamRegisterRequest) (*league.Team, error)
}

// Identity is a copy of the active identity. At most one of User and Team
// is set.
type Identity struct {
	State   State        `json:"state"`
	IsAdmin bool         `json:"isAdmin"`
	User    *league.User `json:"currentUser"`
	Team    *league.Team `json:"currentTeam"`
}

// Session holds the single active identity of the console. It is the
// only shared mutable state of the process.
type Session struct {
	api   API
	store sessionstore.Store

	mu   sync.RWMutex
	user *league.User
	team *league.Team
}

func NewSession(api API, store sessionstore.Store) *Session {
	return &Session{api: api, store: store}
}

// Init restores the persisted identity. Blobs that do not decode are
// dropped. When both identities are stored the administrator is kept.
func (s *Session) Init(ctx context.Context) error {
	snapshot, err := s.store.Load(ctx)
	if errors.Is(err, sessionstore.ErrCorrupt) {
		log.Warn().Err(err).Msg("discarding corrupt session store")
		return s.store.Save(ctx, sessionstore.Snapshot{})
	}
	if err != nil {
		return err
	}

	var user *league.User
	var team *league.Team
	dirty := false

	if snapshot.CurrentUser != "" {
		if err := json.Unmarshal([]byte(snapshot.CurrentUser), &user); err != nil || user == nil {
			log.Warn().Err(err).Str("key", sessionstore.KeyUser).Msg("removing unreadable stored identity")
			user = nil
			dirty = true
		}
	}
	if snapshot.CurrentTeam != "" {
		if err := json.Unmarshal([]byte(snapshot.CurrentTeam), &team); err != nil || team == nil {
			log.Warn().Err(err).Str("key", sessionstore.KeyTeam).Msg("removing unreadable stored identity")
			team = nil
			dirty = true
		}
	}
	if user != nil && team != nil {
		log.Warn().Str("username", user.Username).Msg("both identities stored, keeping the administrator")
		team = nil
		dirty = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user, s.team = user, team
	if dirty {
		return s.persistLocked(ctx)
	}
	return nil
}

// Close writes the current identity one last time.
func (s *Session) Close(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistLocked(ctx)
}

func (s *Session) persistLocked(ctx context.Context) error {
	var snapshot sessionstore.Snapshot
	if s.user != nil {
		data, err := json.Marshal(s.user)
		if err != nil {
			return err
		}
		snapshot.CurrentUser = string(data)
	}
	if s.team != nil {
		data, err := json.Marshal(s.team)
		if err != nil {
			return err
		}
		snapshot.CurrentTeam = string(data)
	}
	return s.store.Save(ctx, snapshot)
}

// set replaces the identity and persists it. The in-memory state is
// authoritative even when persisting fails.
func (s *Session) set(ctx context.Context, user *league.User, team *league.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user, s.team = user, team
	if err := s.persistLocked(ctx); err != nil {
		log.Error().Err(err).Msg("failed to persist session")
	}
}

func loginFailure(err error) error {
	if league.Message(err, "") == "" {
		switch league.StatusOf(err) {
		case http.StatusUnauthorized:
			return &respond.Failure{Message: "Invalid username or password.", Err: err}
		case http.StatusNotFound:
			return &respond.Failure{Message: "User not found. Please check your credentials.", Err: err}
		}
	}
	return respond.Failed(err, "Login failed")
}

func registrationFailure(err error) error {
	if league.Message(err, "") == "" && league.StatusOf(err) == http.StatusConflict {
		return &respond.Failure{Message: "Username or email already exists. Please choose different credentials.", Err: err}
	}
	return respond.Failed(err, "Registration failed")
}

// LoginAdmin authenticates an administrator and drops any team identity.
// On failure the previous identity is kept.
func (s *Session) LoginAdmin(ctx context.Context, form LoginForm) (*league.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	user, err := s.api.LoginAdmin(ctx, league.LoginRequest{Username: strings.TrimSpace(form.Username), Password: form.Password})
	if err != nil {
		return nil, loginFailure(err)
	}
	s.set(ctx, user, nil)
	log.Info().Str("username", user.Username).Msg("administrator logged in")
	return user, nil
}

// RegisterAdmin creates an administrator account without logging in.
func (s *Session) RegisterAdmin(ctx context.Context, form RegisterForm) (*league.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	user, err := s.api.RegisterAdmin(ctx, league.RegisterRequest{
		Username: strings.TrimSpace(form.Username),
		Email:    strings.TrimSpace(form.Email),
		Password: form.Password,
	})
	if err != nil {
		return nil, registrationFailure(err)
	}
	return user, nil
}

// LoginTeam authenticates a team and drops any administrator identity.
func (s *Session) LoginTeam(ctx context.Context, form LoginForm) (*league.Team, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	team, err := s.api.LoginTeam(ctx, league.LoginRequest{Username: strings.TrimSpace(form.Username), Password: form.Password})
	if err != nil {
		return nil, loginFailure(err)
	}
	s.set(ctx, nil, team)
	log.Info().Int64("team_id", team.ID).Msg("team logged in")
	return team, nil
}

// RegisterTeam self-registers a team account and logs it in. The account
// password is the trimmed username; the typed password only passes the
// form checks.
func (s *Session) RegisterTeam(ctx context.Context, form RegisterForm) (*league.Team, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	username := strings.TrimSpace(form.Username)
	team, err := s.api.RegisterTeam(ctx, league.TeamRegisterRequest{
		Username: username,
		Email:    strings.TrimSpace(form.Email),
		Password: username,
	})
	if err != nil {
		return nil, registrationFailure(err)
	}
	s.set(ctx, nil, team)
	log.Info().Int64("team_id", team.ID).Msg("team registered")
	return team, nil
}

func (s *Session) Logout(ctx context.Context) {
	s.set(ctx, nil, nil)
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.user != nil:
		return StateAdmin
	case s.team != nil:
		return StateTeam
	}
	return StateAnonymous
}

func (s *Session) Current() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id := Identity{State: StateAnonymous}
	if s.user != nil {
		user := *s.user
		id.State, id.User, id.IsAdmin = StateAdmin, &user, user.IsAdmin()
	}
	if s.team != nil {
		team := *s.team
		id.State, id.Team = StateTeam, &team
	}
	return id
}

func (s *Session) Authenticated() bool {
	return s.State() != StateAnonymous
}

// IsAdmin reports whether the stored user carries the ADMIN role.
func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsAdmin()
}

// AdminUsername is the value of the X-Admin-Username header, or "".
func (s *Session) AdminUsername() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil || !s.user.IsAdmin() {
		return ""
	}
	return s.user.Username
}

// Team returns a copy of the logged in team.
func (s *Session) Team() (*league.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.team == nil {
		return nil, false
	}
	team := *s.team
	return &team, true
}

// TeamID is the logged in team id, or zero.
func (s *Session) TeamID() int64 {
	if team, ok := s.Team(); ok {
		return team.ID
	}
	return 0
}
