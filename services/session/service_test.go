package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validation "github.com/nvbf/league-desk/pkg/validation"
	league "github.com/nvbf/league-desk/repos/league"
	"github.com/nvbf/league-desk/repos/league/leaguetest"
	sessionstore "github.com/nvbf/league-desk/repos/sessionstore"
)

func newSession(t *testing.T, initial sessionstore.Snapshot) (*Session, *leaguetest.Server, *sessionstore.MemoryStore) {
	api := leaguetest.New(t)
	client := league.NewService(api.URL(), 5*time.Second)
	store := sessionstore.NewMemoryStore(initial)
	s := NewSession(client, store)
	client.UseAdminSource(s)
	require.NoError(t, s.Init(context.Background()))
	return s, api, store
}

func TestLoginAdminThenTeamIsExclusive(t *testing.T) {
	ctx := context.Background()
	s, api, store := newSession(t, sessionstore.Snapshot{})
	api.AddAdmin("root", "secret1")
	api.Teams = []league.Team{{ID: 5, Name: "Lions", Username: "lions", Password: "lions"}}

	_, err := s.LoginAdmin(ctx, LoginForm{Username: "root", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, StateAdmin, s.State())
	assert.True(t, s.IsAdmin())
	assert.Equal(t, "root", s.AdminUsername())

	_, err = s.LoginTeam(ctx, LoginForm{Username: "lions", Password: "lions"})
	require.NoError(t, err)
	current := s.Current()
	assert.Equal(t, StateTeam, current.State)
	assert.Nil(t, current.User)
	assert.Equal(t, int64(5), current.Team.ID)
	assert.Empty(t, s.AdminUsername())

	snapshot, _ := store.Load(ctx)
	assert.Empty(t, snapshot.CurrentUser)
	assert.Contains(t, snapshot.CurrentTeam, `"id":5`)

	_, err = s.LoginAdmin(ctx, LoginForm{Username: "root", Password: "secret1"})
	require.NoError(t, err)
	snapshot, _ = store.Load(ctx)
	assert.Empty(t, snapshot.CurrentTeam)
	assert.Contains(t, snapshot.CurrentUser, `"username":"root"`)
}

func TestRegisterPasswordMismatchMakesNoCall(t *testing.T) {
	s, api, _ := newSession(t, sessionstore.Snapshot{})

	_, err := s.RegisterTeam(context.Background(), RegisterForm{
		Username:        "lions",
		Email:           "lions@league.test",
		Password:        "abcdef",
		ConfirmPassword: "abcdeg",
	})
	assert.EqualError(t, err, "Passwords do not match")
	assert.True(t, validation.IsValidation(err))
	assert.Empty(t, api.Requests())
	assert.Equal(t, StateAnonymous, s.State())
}

func TestRegisterValidationOrder(t *testing.T) {
	s, api, _ := newSession(t, sessionstore.Snapshot{})
	ctx := context.Background()

	cases := []struct {
		form RegisterForm
		want string
	}{
		{RegisterForm{Username: " ab ", Password: "abcdef", ConfirmPassword: "abcdef", Email: "x"}, "Username must be at least 3 characters"},
		{RegisterForm{Username: "abc", Password: "abc", ConfirmPassword: "abc", Email: "x"}, "Password must be at least 6 characters"},
		{RegisterForm{Username: "abc", Password: "abcdef", ConfirmPassword: "abcdef", Email: "nope"}, "Please enter a valid email address"},
		{RegisterForm{Username: "abc", Password: "abcdef", ConfirmPassword: "abcdef"}, "Please enter a valid email address"},
	}
	for _, c := range cases {
		_, err := s.RegisterAdmin(ctx, c.form)
		assert.EqualError(t, err, c.want)
	}
	assert.Empty(t, api.Requests())
}

func TestRegisterTeamUsesUsernameAsPassword(t *testing.T) {
	s, api, _ := newSession(t, sessionstore.Snapshot{})

	team, err := s.RegisterTeam(context.Background(), RegisterForm{
		Username:        "  lions ",
		Email:           " lions@league.test ",
		Password:        "whatever1",
		ConfirmPassword: "whatever1",
	})
	require.NoError(t, err)
	assert.Equal(t, "lions", team.Username)
	assert.Equal(t, StateTeam, s.State())

	calls := api.RequestsTo(http.MethodPost, "/team/register")
	require.Len(t, calls, 1)
	var sent league.TeamRegisterRequest
	require.NoError(t, json.Unmarshal(calls[0].Body, &sent))
	assert.Equal(t, "lions", sent.Password)
	assert.Equal(t, "lions@league.test", sent.Email)
}

func TestRegisterAdminDoesNotLogIn(t *testing.T) {
	s, _, _ := newSession(t, sessionstore.Snapshot{})

	user, err := s.RegisterAdmin(context.Background(), RegisterForm{
		Username:        "root",
		Email:           "root@league.test",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, league.RoleAdmin, user.Role)
	assert.Equal(t, StateAnonymous, s.State())
}

func TestFailedLoginKeepsState(t *testing.T) {
	ctx := context.Background()
	s, api, _ := newSession(t, sessionstore.Snapshot{})
	api.Teams = []league.Team{{ID: 5, Username: "lions", Password: "lions"}}

	_, err := s.LoginTeam(ctx, LoginForm{Username: "lions", Password: "lions"})
	require.NoError(t, err)

	_, err = s.LoginAdmin(ctx, LoginForm{Username: "root", Password: "wrong!"})
	assert.EqualError(t, err, "Invalid username or password")
	assert.Equal(t, StateTeam, s.State())

	api.Fail(http.MethodPost, "/admin/login", http.StatusUnauthorized, nil)
	_, err = s.LoginAdmin(ctx, LoginForm{Username: "root", Password: "wrong!"})
	assert.EqualError(t, err, "Invalid username or password.")

	api.Fail(http.MethodPost, "/admin/login", http.StatusNotFound, nil)
	_, err = s.LoginAdmin(ctx, LoginForm{Username: "root", Password: "wrong!"})
	assert.EqualError(t, err, "User not found. Please check your credentials.")

	api.Fail(http.MethodPost, "/admin/login", http.StatusInternalServerError, nil)
	_, err = s.LoginAdmin(ctx, LoginForm{Username: "root", Password: "wrong!"})
	assert.EqualError(t, err, "Login failed")
	assert.Equal(t, StateTeam, s.State())
}

func TestRegistrationConflictFallback(t *testing.T) {
	s, api, _ := newSession(t, sessionstore.Snapshot{})
	api.Fail(http.MethodPost, "/admin/register", http.StatusConflict, nil)

	_, err := s.RegisterAdmin(context.Background(), RegisterForm{
		Username: "root", Email: "root@league.test", Password: "secret1", ConfirmPassword: "secret1",
	})
	assert.EqualError(t, err, "Username or email already exists. Please choose different credentials.")
}

func TestInitDropsCorruptBlob(t *testing.T) {
	s, _, store := newSession(t, sessionstore.Snapshot{
		CurrentUser: "{broken",
		CurrentTeam: `{"id":9,"name":"Wolves"}`,
	})

	assert.Equal(t, StateTeam, s.State())
	snapshot, _ := store.Load(context.Background())
	assert.Empty(t, snapshot.CurrentUser)
	assert.NotEmpty(t, snapshot.CurrentTeam)
}

func TestInitBothIdentitiesKeepsAdmin(t *testing.T) {
	s, _, store := newSession(t, sessionstore.Snapshot{
		CurrentUser: `{"id":1,"username":"root","role":"ADMIN"}`,
		CurrentTeam: `{"id":9,"name":"Wolves"}`,
	})

	assert.Equal(t, StateAdmin, s.State())
	_, hasTeam := s.Team()
	assert.False(t, hasTeam)
	snapshot, _ := store.Load(context.Background())
	assert.Empty(t, snapshot.CurrentTeam)
}

func TestNonAdminUserIsNotAdmin(t *testing.T) {
	s, _, _ := newSession(t, sessionstore.Snapshot{CurrentUser: `{"id":2,"username":"viewer","role":"USER"}`})

	assert.True(t, s.Authenticated())
	assert.False(t, s.IsAdmin())
	assert.Empty(t, s.AdminUsername())
}

func TestLogout(t *testing.T) {
	s, _, store := newSession(t, sessionstore.Snapshot{CurrentTeam: `{"id":9}`})

	s.Logout(context.Background())
	assert.Equal(t, StateAnonymous, s.State())
	snapshot, _ := store.Load(context.Background())
	assert.True(t, snapshot.Empty())
}

func TestHTTPHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, api, _ := newSession(t, sessionstore.Snapshot{})
	api.AddAdmin("root", "secret1")

	router := gin.New()
	NewHTTPHandler(HTTPOptions{Session: s, Router: router.Group("/session/v1")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/session/v1/admin/login", strings.NewReader(`{"username":"root","password":"secret1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var identity Identity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &identity))
	assert.Equal(t, StateAdmin, identity.State)
	assert.True(t, identity.IsAdmin)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/session/v1/team/register", strings.NewReader(`{"username":"ab","password":"abcdef","confirmPassword":"abcdef","email":"a@b"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Username must be at least 3 characters"}`, rec.Body.String())
}
