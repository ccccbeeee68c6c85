package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xorcare/pointer"

	auth "github.com/nvbf/league-desk/pkg/auth"
	validation "github.com/nvbf/league-desk/pkg/validation"
	league "github.com/nvbf/league-desk/repos/league"
	"github.com/nvbf/league-desk/repos/league/leaguetest"
)

type viewer struct {
	admin  bool
	teamID int64
}

func (v viewer) IsAdmin() bool { return v.admin }
func (v viewer) TeamID() int64 { return v.teamID }

func newService(t *testing.T, v viewer) (*SearchService, *leaguetest.Server) {
	api := leaguetest.New(t)
	api.Teams = []league.Team{{ID: 1, Name: "Lions", Username: "lions", Password: "secret"}, {ID: 2, Name: "Tigers", Username: "tigers"}}
	api.Players = []league.Player{
		{ID: 10, Name: "Ada", Position: league.PositionForward, JerseyNumber: 9, Team: &league.Team{ID: 1}},
		{ID: 11, Name: "Bo", Position: league.PositionGoalkeeper, JerseyNumber: 1, Team: &league.Team{ID: 2}},
		{ID: 12, Name: "Adam", Position: league.PositionForward, JerseyNumber: 11, Team: &league.Team{ID: 2}},
	}
	api.Matches = []league.Match{
		{UUID: "m1", Date: "2024-05-01", HomeTeam: league.TeamRef{ID: 1}, AwayTeam: league.TeamRef{ID: 2}},
		{UUID: "m2", Date: "2024-05-20", HomeTeam: league.TeamRef{ID: 2}, AwayTeam: league.TeamRef{ID: 3}},
		{UUID: "m3", Date: "2024-06-10", HomeTeam: league.TeamRef{ID: 3}, AwayTeam: league.TeamRef{ID: 1}},
	}
	return NewSearchService(league.NewService(api.URL(), 5*time.Second), v, time.UTC), api
}

func uuids(matches []league.Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.UUID
	}
	return out
}

func TestSearchTeams(t *testing.T) {
	service, api := newService(t, viewer{admin: true})

	teams, err := service.Teams(context.Background(), "  lio ")
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Empty(t, teams[0].Password)
	assert.Equal(t, "q=lio", api.RequestsTo(http.MethodGet, "/search/teams")[0].Query)

	_, err = service.Teams(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, api.RequestsTo(http.MethodGet, "/search/teams")[1].Query)
}

func TestSearchPlayers(t *testing.T) {
	service, _ := newService(t, viewer{teamID: 1})

	players, err := service.Players(context.Background(), "ada")
	require.NoError(t, err)
	assert.Len(t, players, 2)
}

func TestFilterPlayers(t *testing.T) {
	service, api := newService(t, viewer{admin: true})

	players, err := service.FilterPlayers(context.Background(), PlayerQuery{
		TeamID:    pointer.Int64(2),
		Position:  league.PositionForward,
		MinJersey: pointer.Int(5),
	})
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Adam", players[0].Name)
	assert.Equal(t, "minJersey=5&position=Forward&teamId=2", api.RequestsTo(http.MethodGet, "/search/players/filter")[0].Query)
}

func TestFilterPlayersValidation(t *testing.T) {
	service, api := newService(t, viewer{admin: true})

	_, err := service.FilterPlayers(context.Background(), PlayerQuery{Position: "Striker"})
	assert.True(t, validation.IsValidation(err))
	assert.EqualError(t, err, "Invalid player position")

	_, err = service.FilterPlayers(context.Background(), PlayerQuery{MinJersey: pointer.Int(10), MaxJersey: pointer.Int(2)})
	assert.EqualError(t, err, "Minimum jersey number cannot exceed maximum")
	assert.Empty(t, api.Requests())
}

func TestFilterMatchesAdmin(t *testing.T) {
	service, _ := newService(t, viewer{admin: true})

	matches, err := service.FilterMatches(context.Background(), MatchQuery{StartDate: "2024-05-10", EndDate: "2024-06-30"})
	require.NoError(t, err)
	assert.Equal(t, []string{"m2", "m3"}, uuids(matches))
}

func TestFilterMatchesTeamSeesOwn(t *testing.T) {
	service, api := newService(t, viewer{teamID: 1})

	matches, err := service.FilterMatches(context.Background(), MatchQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m3"}, uuids(matches))
	assert.Equal(t, "teamId=1", api.RequestsTo(http.MethodGet, "/search/matches/filter")[0].Query)

	_, err = service.FilterMatches(context.Background(), MatchQuery{TeamID: pointer.Int64(2)})
	assert.ErrorIs(t, err, auth.ErrNotOwnTeam)
}

func TestFilterMatchesDates(t *testing.T) {
	service, api := newService(t, viewer{admin: true})

	_, err := service.FilterMatches(context.Background(), MatchQuery{StartDate: "01/05/2024"})
	assert.EqualError(t, err, "Dates must use the YYYY-MM-DD format")

	_, err = service.FilterMatches(context.Background(), MatchQuery{StartDate: "2024-06-01", EndDate: "2024-05-01"})
	assert.EqualError(t, err, "Start date must not be after end date")
	assert.Empty(t, api.Requests())
}

func TestHTTPFilterBinding(t *testing.T) {
	service, _ := newService(t, viewer{admin: true})

	router := gin.New()
	NewHTTPHandler(HTTPOptions{Service: service, Router: router})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/players/filter?team_id=2&max_jersey=5", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Players []league.Player `json:"players"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Players, 1)
	assert.Equal(t, "Bo", body.Players[0].Name)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/players/filter?team_id=two", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
