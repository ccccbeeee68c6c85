package matches

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auth "github.com/nvbf/league-desk/pkg/auth"
	validation "github.com/nvbf/league-desk/pkg/validation"
	league "github.com/nvbf/league-desk/repos/league"
	"github.com/nvbf/league-desk/repos/league/leaguetest"
)

var today = time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)

type viewer struct {
	admin  bool
	teamID int64
}

func (v viewer) IsAdmin() bool { return v.admin }
func (v viewer) TeamID() int64 { return v.teamID }

func match(date string, home, away int) league.Match {
	return league.Match{Date: date, Time: "18:00", HomeGoals: home, AwayGoals: away}
}

func dates(matches []league.Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Date
	}
	return out
}

func TestClassify(t *testing.T) {
	cases := []struct {
		match league.Match
		want  Phase
	}{
		{match("2024-06-01", 0, 0), PhaseUpcoming},
		{match("2024-06-01", 1, 0), PhasePast},
		{match("2024-05-31", 0, 0), PhasePast},
		{match("2024-06-02", 0, 0), PhaseUpcoming},
		{match("2024-06-02", 0, 2), PhasePast},
		{match("not a date", 0, 0), PhasePast},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.match, today, time.UTC), "%s %d-%d", c.match.Date, c.match.HomeGoals, c.match.AwayGoals)
	}
}

func TestSplitSorting(t *testing.T) {
	all := []league.Match{
		match("2024-06-03", 0, 0),
		match("2024-05-01", 2, 1),
		match("2024-06-01", 0, 0),
		match("2024-05-03", 0, 0),
		match("2024-06-02", 0, 0),
		match("2024-05-02", 1, 1),
	}

	upcoming, past := Split(all, today, time.UTC)
	assert.Equal(t, []string{"2024-06-01", "2024-06-02", "2024-06-03"}, dates(upcoming))
	assert.Equal(t, []string{"2024-05-03", "2024-05-02", "2024-05-01"}, dates(past))
}

func TestSortUsesTimeAndMissingTimeIsMidnight(t *testing.T) {
	matches := []league.Match{
		{Date: "2024-06-05", Time: "20:00", UUID: "late"},
		{Date: "2024-06-05", Time: "", UUID: "midnight"},
		{Date: "2024-06-05", Time: "09:30:00", UUID: "morning"},
	}
	SortAscending(matches, time.UTC)
	assert.Equal(t, "midnight", matches[0].UUID)
	assert.Equal(t, "morning", matches[1].UUID)
	assert.Equal(t, "late", matches[2].UUID)
}

func newService(t *testing.T, v viewer) (*MatchesService, *leaguetest.Server) {
	api := leaguetest.New(t)
	client := league.NewService(api.URL(), 5*time.Second)
	return NewMatchesService(client, v, clockwork.NewFakeClockAt(today), time.UTC), api
}

func seed(api *leaguetest.Server) {
	api.Teams = []league.Team{{ID: 1, Name: "Lions"}, {ID: 2, Name: "Tigers"}, {ID: 3, Name: "Wolves"}}
	api.Matches = []league.Match{
		{UUID: "6f1c2a3e-0000-4000-8000-000000000001", Date: "2024-05-20", Time: "18:00", HomeTeam: league.TeamRef{ID: 1}, AwayTeam: league.TeamRef{ID: 2}, HomeGoals: 2, AwayGoals: 1},
		{UUID: "6f1c2a3e-0000-4000-8000-000000000002", Date: "2024-06-10", Time: "18:00", HomeTeam: league.TeamRef{ID: 2}, AwayTeam: league.TeamRef{ID: 3}},
		{UUID: "6f1c2a3e-0000-4000-8000-000000000003", Date: "2024-06-04", Time: "18:00", HomeTeam: league.TeamRef{ID: 3}, AwayTeam: league.TeamRef{ID: 1}},
		{UUID: "6f1c2a3e-0000-4000-8000-000000000004", Date: "2024-05-25", Time: "18:00", HomeTeam: league.TeamRef{ID: 3}, AwayTeam: league.TeamRef{ID: 2}},
	}
}

func TestListAdminTabs(t *testing.T) {
	s, api := newService(t, viewer{admin: true})
	seed(api)

	view, err := s.List(context.Background(), OrderDesc)
	require.NoError(t, err)
	assert.True(t, view.Tabs)
	assert.Equal(t, 2, view.UpcomingCount)
	assert.Equal(t, 2, view.PastCount)
	assert.Equal(t, "2024-06-04", view.Upcoming[0].Date)
	assert.Equal(t, "2024-05-25", view.Past[0].Date)
	assert.Empty(t, view.Matches)
}

func TestListTeamFilteredAndToggled(t *testing.T) {
	s, api := newService(t, viewer{teamID: 1})
	seed(api)

	view, err := s.List(context.Background(), ParseOrder(""))
	require.NoError(t, err)
	assert.False(t, view.Tabs)
	assert.Equal(t, OrderDesc, view.Order)
	require.Len(t, view.Matches, 2)
	assert.Equal(t, "2024-06-04", view.Matches[0].Date)
	assert.Equal(t, PhaseUpcoming, view.Matches[0].Phase)
	assert.Equal(t, "2024-05-20", view.Matches[1].Date)

	view, err = s.List(context.Background(), OrderAsc)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-20", view.Matches[0].Date)
}

func TestGetHidesOtherTeamsMatches(t *testing.T) {
	s, api := newService(t, viewer{teamID: 1})
	seed(api)

	_, err := s.Get(context.Background(), "6f1c2a3e-0000-4000-8000-000000000002")
	assert.ErrorIs(t, err, auth.ErrNotOwnTeam)

	row, err := s.Get(context.Background(), "6f1c2a3e-0000-4000-8000-000000000003")
	require.NoError(t, err)
	assert.Equal(t, PhaseUpcoming, row.Phase)
}

func TestCreateValidationNeverCallsAPI(t *testing.T) {
	s, api := newService(t, viewer{admin: true})

	cases := []struct {
		form MatchForm
		want string
	}{
		{MatchForm{AwayTeamID: 2, Date: "2024-06-05", Time: "18:00"}, "Please select both home and away teams"},
		{MatchForm{HomeTeamID: 1, Date: "2024-06-05", Time: "18:00"}, "Please select both home and away teams"},
		{MatchForm{HomeTeamID: 1, AwayTeamID: 1, Date: "2024-06-05", Time: "18:00"}, "Home team and away team must be different"},
		{MatchForm{HomeTeamID: 1, AwayTeamID: 2, Date: "2024-06-05"}, "Please provide both date and time"},
		{MatchForm{HomeTeamID: 1, AwayTeamID: 2, Date: "2024-06-01", Time: "18:00"}, "Match date must be in the future. Only upcoming matches can be created."},
		{MatchForm{HomeTeamID: 1, AwayTeamID: 2, Date: "2024-06-05", Time: "18:00", HomeGoals: 1}, "Upcoming matches must have 0-0 scores. Scores will be updated after the match is played."},
	}
	for _, c := range cases {
		_, err := s.Create(context.Background(), c.form)
		assert.EqualError(t, err, c.want)
		assert.True(t, validation.IsValidation(err))
	}
	assert.Empty(t, api.Requests())
}

func TestCreateRejectsUnknownTeam(t *testing.T) {
	s, api := newService(t, viewer{admin: true})
	seed(api)

	_, err := s.Create(context.Background(), MatchForm{HomeTeamID: 1, AwayTeamID: 42, Date: "2024-06-05", Time: "18:00"})
	assert.EqualError(t, err, "Invalid team selection")
	assert.Empty(t, api.RequestsTo(http.MethodPost, "/match"))
}

func TestCreate(t *testing.T) {
	s, api := newService(t, viewer{admin: true})
	seed(api)

	row, err := s.Create(context.Background(), MatchForm{HomeTeamID: 1, AwayTeamID: 2, Date: "2024-06-05", Time: "18:00"})
	require.NoError(t, err)
	assert.Equal(t, PhaseUpcoming, row.Phase)
	assert.Equal(t, "Lions", row.HomeTeam.Name)
	assert.Zero(t, row.Spectators)
}

func TestFailedCreateLeavesListUntouched(t *testing.T) {
	s, api := newService(t, viewer{admin: true})
	seed(api)
	api.Fail(http.MethodPost, "/match", http.StatusConflict, map[string]string{"message": "Match already scheduled"})

	before, err := s.List(context.Background(), OrderDesc)
	require.NoError(t, err)

	form := MatchForm{HomeTeamID: 1, AwayTeamID: 2, Date: "2024-06-05", Time: "18:00"}
	for i := 0; i < 2; i++ {
		_, err = s.Create(context.Background(), form)
		assert.EqualError(t, err, "Match already scheduled")
	}

	after, err := s.List(context.Background(), OrderDesc)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCreateNetworkFailureFallback(t *testing.T) {
	s, api := newService(t, viewer{admin: true})
	seed(api)
	api.Fail(http.MethodPost, "/match", http.StatusInternalServerError, nil)

	_, err := s.Create(context.Background(), MatchForm{HomeTeamID: 1, AwayTeamID: 2, Date: "2024-06-05", Time: "18:00"})
	assert.EqualError(t, err, "Failed to create match")
}

func TestUpdateKeepsAttendance(t *testing.T) {
	s, api := newService(t, viewer{admin: true})
	seed(api)
	api.Matches[0].Spectators = 1200
	api.Matches[0].TicketPrice = 15

	row, err := s.Update(context.Background(), api.Matches[0].UUID, MatchForm{
		HomeTeamID: 1, AwayTeamID: 2, Date: "2024-05-20", Time: "19:00", HomeGoals: 3, AwayGoals: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, row.HomeGoals)
	assert.Equal(t, 1200, row.Spectators)
	assert.Equal(t, 18000.0, row.Revenue)
}

func TestStatsSheetAndSave(t *testing.T) {
	s, api := newService(t, viewer{admin: true})
	seed(api)
	token := api.Matches[0].UUID
	api.Players = []league.Player{
		{ID: 10, Name: "Ada", Position: league.PositionForward, JerseyNumber: 9, Team: &league.Team{ID: 1}},
		{ID: 20, Name: "Bo", Position: league.PositionGoalkeeper, JerseyNumber: 1, Team: &league.Team{ID: 2}},
	}

	_, err := s.SaveStats(context.Background(), token, 10, StatsForm{Goals: 2})
	require.NoError(t, err)
	_, err = s.SaveStats(context.Background(), token, 10, StatsForm{Goals: 3, Assists: 1})
	require.NoError(t, err)
	assert.Len(t, api.RequestsTo(http.MethodPost, "/match/"+token+"/player/10/stats"), 1)
	assert.Len(t, api.RequestsTo(http.MethodPut, "/match/"+token+"/player/10/stats"), 1)

	sheet, err := s.Sheet(context.Background(), token)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "home", sheet.Rows[0].Side)
	require.NotNil(t, sheet.Rows[0].Stats)
	assert.Equal(t, 3, sheet.Rows[0].Stats.Goals)
	assert.Nil(t, sheet.Rows[1].Stats)

	_, err = s.SaveStats(context.Background(), token, 10, StatsForm{Goals: -1})
	assert.EqualError(t, err, "Statistics cannot be negative")

	api.Fail(http.MethodDelete, "/match/"+token+"/player/10/stats", http.StatusInternalServerError, nil)
	assert.EqualError(t, s.DeleteStats(context.Background(), token, 10), "Failed to delete statistics")
}

func TestInvalidTokenIsBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, api := newService(t, viewer{admin: true})
	router := gin.New()
	NewHTTPHandler(HTTPOptions{Service: s, Router: router.Group("/matches/v1")})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/matches/v1/nope", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/matches/v1/6f1c2a3e-0000-4000-8000-000000000001", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code, "Deletion needs confirmation")
	assert.Empty(t, api.Requests())
}
