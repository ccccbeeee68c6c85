package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auth "github.com/nvbf/league-desk/pkg/auth"
	league "github.com/nvbf/league-desk/repos/league"
	"github.com/nvbf/league-desk/repos/league/leaguetest"
)

type viewer struct {
	admin bool
	team  *league.Team
}

func (v viewer) IsAdmin() bool { return v.admin }

func (v viewer) Team() (*league.Team, bool) { return v.team, v.team != nil }

func newService(t *testing.T, v viewer) (*StatsService, *leaguetest.Server) {
	api := leaguetest.New(t)
	return NewStatsService(league.NewService(api.URL(), 5*time.Second), v), api
}

// seedScorers puts team 7 on every fifth row of a 100 row list.
func seedScorers(api *leaguetest.Server) {
	for i := 0; i < 100; i++ {
		teamID := int64(1)
		if i%5 == 4 {
			teamID = 7
		}
		api.Scorers = append(api.Scorers, league.TopScorer{
			PlayerID:   int64(i + 1),
			PlayerName: fmt.Sprintf("Player %d", i+1),
			TeamID:     teamID,
			Goals:      100 - i,
		})
	}
}

func TestTopScorersTeamView(t *testing.T) {
	service, api := newService(t, viewer{team: &league.Team{ID: 7}})
	seedScorers(api)

	board, err := service.TopScorers(context.Background())
	require.NoError(t, err)

	calls := api.RequestsTo(http.MethodGet, "/statistics/top-scorers")
	require.Len(t, calls, 1)
	assert.Equal(t, "limit=100", calls[0].Query)

	assert.Equal(t, "Team Top Scorers", board.Title)
	require.Len(t, board.Rows, 10)
	for i, row := range board.Rows {
		assert.Equal(t, i+1, row.Rank)
		assert.Equal(t, int64(7), row.TeamID)
		assert.Equal(t, int64(5*(i+1)), row.PlayerID, "server order is kept")
	}
}

func TestTopScorersTeamViewFewerThanTen(t *testing.T) {
	service, api := newService(t, viewer{team: &league.Team{ID: 7}})
	api.Scorers = []league.TopScorer{{PlayerID: 1, TeamID: 2}, {PlayerID: 2, TeamID: 7}, {PlayerID: 3, TeamID: 7}}

	board, err := service.TopScorers(context.Background())
	require.NoError(t, err)
	require.Len(t, board.Rows, 2)
	assert.Equal(t, 1, board.Rows[0].Rank)
	assert.Equal(t, int64(2), board.Rows[0].PlayerID)
}

func TestTopScorersAdminView(t *testing.T) {
	service, api := newService(t, viewer{admin: true, team: nil})
	seedScorers(api)

	board, err := service.TopScorers(context.Background())
	require.NoError(t, err)

	calls := api.RequestsTo(http.MethodGet, "/statistics/top-scorers")
	require.Len(t, calls, 1)
	assert.Equal(t, "limit=10", calls[0].Query)
	assert.Equal(t, "Top Scorers", board.Title)
	require.Len(t, board.Rows, 10)
	assert.Equal(t, int64(1), board.Rows[0].PlayerID)
	assert.Equal(t, 10, board.Rows[9].Rank)
}

func TestTopAssistsTeamView(t *testing.T) {
	service, api := newService(t, viewer{team: &league.Team{ID: 3}})
	api.Assists = []league.TopAssists{
		{PlayerID: 1, TeamID: 1, Assists: 9},
		{PlayerID: 2, TeamID: 3, Assists: 8},
		{PlayerID: 3, TeamID: 3, Assists: 4},
	}

	board, err := service.TopAssists(context.Background())
	require.NoError(t, err)
	require.Len(t, board.Rows, 2)
	assert.Equal(t, RankedAssists{Rank: 1, TopAssists: api.Assists[1]}, board.Rows[0])
	assert.Equal(t, "Team Top Assists", board.Title)
}

func TestTopScorersFailure(t *testing.T) {
	service, api := newService(t, viewer{admin: true})
	api.Fail(http.MethodGet, "/statistics/top-scorers", http.StatusInternalServerError, nil)

	_, err := service.TopScorers(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to load top scorers", err.Error())
}

func seedStandings(api *leaguetest.Server) {
	api.Divisions = []league.Division{{ID: 1, Name: "Premier"}, {ID: 2, Name: "First"}}
	api.Standings = []league.LeagueStandings{
		{TeamID: 1, TeamName: "Lions", DivisionName: "Premier", Points: 9},
		{TeamID: 2, TeamName: "Tigers", DivisionName: "First", Points: 6},
	}
}

func TestStandingsTeamWithDivision(t *testing.T) {
	service, api := newService(t, viewer{team: &league.Team{ID: 2, Division: &league.Division{ID: 2}}})
	seedStandings(api)

	// a team cannot pick another division
	view, err := service.Standings(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), view.DivisionID)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "Tigers", view.Rows[0].TeamName)
	assert.Len(t, api.RequestsTo(http.MethodGet, "/statistics/standings/division/2"), 1)
}

func TestStandingsTeamWithoutDivision(t *testing.T) {
	service, api := newService(t, viewer{team: &league.Team{ID: 2}})
	seedStandings(api)

	view, err := service.Standings(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, view.DivisionID)
	assert.Len(t, view.Rows, 2)
	assert.Len(t, api.RequestsTo(http.MethodGet, "/statistics/standings/all"), 1)
}

func TestStandingsAdminPicksDivision(t *testing.T) {
	service, api := newService(t, viewer{admin: true})
	seedStandings(api)

	view, err := service.Standings(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "Lions", view.Rows[0].TeamName)

	view, err = service.Standings(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, view.Rows, 2)
}

func TestPassthrough(t *testing.T) {
	service, api := newService(t, viewer{admin: true})
	api.StadiumStats = []league.StadiumStats{{StadiumID: 1, StadiumName: "Arena", Capacity: 1000, OccupancyRate: 55.5}}
	api.Performance[4] = []league.TeamPerformance{{Date: "2024-05-01", OpponentName: "Lions", Result: "W"}}

	stadiums, err := service.Stadiums(context.Background())
	require.NoError(t, err)
	assert.Equal(t, api.StadiumStats, stadiums)

	perf, err := service.TeamPerformance(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, api.Performance[4], perf)

	perf, err = service.TeamPerformance(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, perf)
}

func TestTeamPerformanceOwnTeamOnly(t *testing.T) {
	service, api := newService(t, viewer{team: &league.Team{ID: 4}})
	api.Performance[4] = []league.TeamPerformance{{Date: "2024-05-01", OpponentName: "Lions", Result: "W"}}
	api.Performance[5] = []league.TeamPerformance{{Date: "2024-05-01", OpponentName: "Bears", Result: "L"}}

	perf, err := service.TeamPerformance(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, api.Performance[4], perf)

	_, err = service.TeamPerformance(context.Background(), 5)
	assert.ErrorIs(t, err, auth.ErrNotOwnTeam)
	assert.Empty(t, api.RequestsTo(http.MethodGet, "/statistics/team/5/performance"))

	router := gin.New()
	NewHTTPHandler(HTTPOptions{Service: service, Router: router})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/team/5/performance", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"not available to this team"}`, w.Body.String())
}

func TestHTTPHandler(t *testing.T) {
	service, api := newService(t, viewer{admin: true})
	seedStandings(api)

	router := gin.New()
	NewHTTPHandler(HTTPOptions{Service: service, Router: router})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/standings?division_id=2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var view StandingsView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "First", view.Rows[0].DivisionName)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/standings?division_id=x", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/team/0/performance", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
