// Package leaguetest runs an in-memory fake of the league REST API for
// tests. It records every request and lets tests inject failures.
package leaguetest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	league "github.com/nvbf/league-desk/repos/league"
)

// Request is a recorded inbound call.
type Request struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

type failure struct {
	status int
	body   interface{}
}

type account struct {
	user     league.User
	password string
}

// Server is the fake API. Seed its exported slices before the code under
// test runs; they are guarded by the server lock afterwards.
type Server struct {
	srv *httptest.Server

	mu       sync.Mutex
	requests []Request
	failures map[string]failure
	nextID   int64

	Admins        []account
	Teams         []league.Team
	Players       []league.Player
	Matches       []league.Match
	MatchStats    []league.MatchPlayerStats
	Cities        []league.City
	Stadiums      []league.Stadium
	Divisions     []league.Division
	Standings     []league.LeagueStandings
	Scorers       []league.TopScorer
	Assists       []league.TopAssists
	StadiumStats  []league.StadiumStats
	Performance   map[int64][]league.TeamPerformance
	PlayerHistory map[int64][]league.PlayerHistory
	TeamHistory   map[int64][]league.TeamMatchHistory
	Dashboards    map[int64]league.TeamDashboard
}

// New starts a fake API that is closed when the test ends.
func New(t testing.TB) *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		failures:      map[string]failure{},
		nextID:        1000,
		Performance:   map[int64][]league.TeamPerformance{},
		PlayerHistory: map[int64][]league.PlayerHistory{},
		TeamHistory:   map[int64][]league.TeamMatchHistory{},
		Dashboards:    map[int64]league.TeamDashboard{},
	}

	router := gin.New()
	router.Use(s.record)
	api := router.Group("/api/v1")
	s.routes(api)

	s.srv = httptest.NewServer(router)
	t.Cleanup(s.srv.Close)
	return s
}

// URL is the API root to hand to league.NewService.
func (s *Server) URL() string {
	return s.srv.URL + "/api/v1"
}

// Close stops the server early, for network failure tests.
func (s *Server) Close() {
	s.srv.Close()
}

// AddAdmin seeds an administrator account.
func (s *Server) AddAdmin(username, password string) league.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := league.User{ID: s.id(), Username: username, Email: username + "@league.test", Role: league.RoleAdmin}
	s.Admins = append(s.Admins, account{user: user, password: password})
	return user
}

// Fail makes every later METHOD path call answer status with body.
// path is relative to the API root, e.g. "/team/login".
func (s *Server) Fail(method, path string, status int, body interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = failure{status: status, body: body}
}

// Requests returns a copy of the recorded calls.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestsTo returns the recorded calls for METHOD path.
func (s *Server) RequestsTo(method, path string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (s *Server) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Server) record(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(strings.NewReader(string(body)))
	path := strings.TrimPrefix(c.Request.URL.Path, "/api/v1")

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: c.Request.Method,
		Path:   path,
		Query:  c.Request.URL.RawQuery,
		Header: c.Request.Header.Clone(),
		Body:   body,
	})
	f, failing := s.failures[c.Request.Method+" "+path]
	s.mu.Unlock()

	if failing {
		if text, ok := f.body.(string); ok {
			c.String(f.status, text)
		} else if f.body == nil {
			c.Status(f.status)
		} else {
			c.JSON(f.status, f.body)
		}
		c.Abort()
		return
	}
	c.Next()
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("%s not found", what), "status": http.StatusNotFound, "error": "Not Found"})
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return id, true
}

func (s *Server) routes(r *gin.RouterGroup) {
	r.POST("/admin/register", s.registerAdmin)
	r.POST("/admin/login", s.loginAdmin)
	r.GET("/admin/admins", s.listAdmins)
	r.DELETE("/admin/team/:id", s.deleteTeam)

	r.GET("/team", s.listTeams)
	r.POST("/team", s.createTeam)
	r.POST("/team/register", s.registerTeam)
	r.POST("/team/login", s.loginTeam)
	r.GET("/team/:id", s.getTeam)
	r.PUT("/team/:id", s.updateTeam)
	r.DELETE("/team/:id", s.deleteTeam)
	r.GET("/team/:id/players", s.teamPlayers)
	r.GET("/team/:id/history", s.teamHistory)
	r.GET("/team/:id/dashboard", s.teamDashboard)

	r.POST("/player", s.createPlayer)
	r.GET("/player/:id", s.getPlayer)
	r.PUT("/player/:id", s.updatePlayer)
	r.DELETE("/player/:id", s.deletePlayer)
	r.GET("/player/:id/history", s.playerHistory)

	r.GET("/match", s.listMatches)
	r.POST("/match", s.createMatch)
	r.GET("/match/:uuid", s.getMatch)
	r.PUT("/match/:uuid", s.updateMatch)
	r.DELETE("/match/:uuid", s.deleteMatch)
	r.GET("/match/:uuid/stats", s.listMatchStats)
	r.GET("/match/:uuid/player/:player_id/stats", s.getPlayerStats)
	r.POST("/match/:uuid/player/:player_id/stats", s.savePlayerStats)
	r.PUT("/match/:uuid/player/:player_id/stats", s.savePlayerStats)
	r.DELETE("/match/:uuid/player/:player_id/stats", s.deletePlayerStats)

	venueRoutes(r, "/city", &s.mu, &s.Cities, s.id,
		func(v *league.City) *int64 { return &v.ID })
	venueRoutes(r, "/stadium", &s.mu, &s.Stadiums, s.id,
		func(v *league.Stadium) *int64 { return &v.ID })
	venueRoutes(r, "/division", &s.mu, &s.Divisions, s.id,
		func(v *league.Division) *int64 { return &v.ID })

	r.GET("/statistics/standings/all", s.allStandings)
	r.GET("/statistics/standings/division/:id", s.divisionStandings)
	r.GET("/statistics/top-scorers", s.topScorers)
	r.GET("/statistics/top-assists", s.topAssists)
	r.GET("/statistics/team/:id/performance", s.teamPerformance)
	r.GET("/statistics/stadiums", s.stadiumStatistics)

	r.GET("/search/teams", s.searchTeams)
	r.GET("/search/players", s.searchPlayers)
	r.GET("/search/players/filter", s.filterPlayers)
	r.GET("/search/matches/filter", s.filterMatches)
}

// venueRoutes serves list/get/create/update/delete for a simple entity.
func venueRoutes[T any](r *gin.RouterGroup, path string, mu *sync.Mutex, items *[]T, nextID func() int64, idOf func(*T) *int64) {
	find := func(id int64) int {
		for i := range *items {
			if *idOf(&(*items)[i]) == id {
				return i
			}
		}
		return -1
	}

	r.GET(path, func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		out := make([]T, len(*items))
		copy(out, *items)
		c.JSON(http.StatusOK, out)
	})
	r.GET(path+"/:id", func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if i := find(id); i >= 0 {
			c.JSON(http.StatusOK, (*items)[i])
			return
		}
		notFound(c, strings.TrimPrefix(path, "/"))
	})
	r.POST(path, func(c *gin.Context) {
		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		mu.Lock()
		defer mu.Unlock()
		*idOf(&item) = nextID()
		*items = append(*items, item)
		c.JSON(http.StatusCreated, item)
	})
	r.PUT(path+"/:id", func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		mu.Lock()
		defer mu.Unlock()
		i := find(id)
		if i < 0 {
			notFound(c, strings.TrimPrefix(path, "/"))
			return
		}
		*idOf(&item) = id
		(*items)[i] = item
		c.JSON(http.StatusOK, item)
	})
	r.DELETE(path+"/:id", func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		i := find(id)
		if i < 0 {
			notFound(c, strings.TrimPrefix(path, "/"))
			return
		}
		*items = append((*items)[:i], (*items)[i+1:]...)
		c.Status(http.StatusOK)
	})
}

// Admin accounts

func (s *Server) registerAdmin(c *gin.Context) {
	var req league.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.Admins {
		if a.user.Username == req.Username {
			c.JSON(http.StatusConflict, gin.H{"message": "User with username " + req.Username + " already exists"})
			return
		}
	}
	user := league.User{ID: s.id(), Username: req.Username, Email: req.Email, Role: league.RoleAdmin}
	s.Admins = append(s.Admins, account{user: user, password: req.Password})
	c.JSON(http.StatusCreated, user)
}

func (s *Server) loginAdmin(c *gin.Context) {
	var req league.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.Admins {
		if a.user.Username == req.Username && a.password == req.Password {
			c.JSON(http.StatusOK, a.user)
			return
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
}

func (s *Server) listAdmins(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]league.User, 0, len(s.Admins))
	for _, a := range s.Admins {
		users = append(users, a.user)
	}
	c.JSON(http.StatusOK, users)
}

// Teams

func (s *Server) findTeam(id int64) int {
	for i, t := range s.Teams {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Server) listTeams(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]league.Team, len(s.Teams))
	copy(out, s.Teams)
	c.JSON(http.StatusOK, out)
}

func (s *Server) getTeam(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.findTeam(id); i >= 0 {
		c.JSON(http.StatusOK, s.Teams[i])
		return
	}
	notFound(c, "team")
}

func (s *Server) createTeam(c *gin.Context) {
	var team league.Team
	if err := c.ShouldBindJSON(&team); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	team.ID = s.id()
	team.Password = ""
	s.Teams = append(s.Teams, team)
	c.JSON(http.StatusCreated, team)
}

func (s *Server) registerTeam(c *gin.Context) {
	var req league.TeamRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.Teams {
		if t.Username == req.Username {
			c.JSON(http.StatusConflict, gin.H{"message": "Team with username " + req.Username + " already exists"})
			return
		}
	}
	team := league.Team{
		ID:       s.id(),
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Division: req.Division,
		City:     req.City,
		Stadium:  req.Stadium,
	}
	s.Teams = append(s.Teams, team)
	team.Password = ""
	c.JSON(http.StatusCreated, team)
}

func (s *Server) loginTeam(c *gin.Context) {
	var req league.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.Teams {
		if t.Username == req.Username && t.Password == req.Password {
			t.Password = ""
			c.JSON(http.StatusOK, t)
			return
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid team credentials"})
}

func (s *Server) updateTeam(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var team league.Team
	if err := c.ShouldBindJSON(&team); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findTeam(id)
	if i < 0 {
		notFound(c, "team")
		return
	}
	team.ID = id
	if team.Password == "" {
		team.Password = s.Teams[i].Password
	}
	s.Teams[i] = team
	team.Password = ""
	c.JSON(http.StatusOK, team)
}

func (s *Server) deleteTeam(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findTeam(id)
	if i < 0 {
		notFound(c, "team")
		return
	}
	s.Teams = append(s.Teams[:i], s.Teams[i+1:]...)
	c.Status(http.StatusOK)
}

func (s *Server) teamPlayers(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	players := []league.Player{}
	for _, p := range s.Players {
		if p.TeamID() == id {
			players = append(players, p)
		}
	}
	c.JSON(http.StatusOK, players)
}

func (s *Server) teamHistory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	history := s.TeamHistory[id]
	if history == nil {
		history = []league.TeamMatchHistory{}
	}
	c.JSON(http.StatusOK, history)
}

func (s *Server) teamDashboard(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	dashboard, found := s.Dashboards[id]
	if !found {
		notFound(c, "team")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// Players

func (s *Server) findPlayer(id int64) int {
	for i, p := range s.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Server) getPlayer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.findPlayer(id); i >= 0 {
		c.JSON(http.StatusOK, s.Players[i])
		return
	}
	notFound(c, "player")
}

func (s *Server) createPlayer(c *gin.Context) {
	var player league.Player
	if err := c.ShouldBindJSON(&player); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.Players {
		if p.TeamID() == player.TeamID() && p.JerseyNumber == player.JerseyNumber {
			c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Jersey number %d is already taken", player.JerseyNumber)})
			return
		}
	}
	player.ID = s.id()
	s.Players = append(s.Players, player)
	c.JSON(http.StatusCreated, player)
}

func (s *Server) updatePlayer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var player league.Player
	if err := c.ShouldBindJSON(&player); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findPlayer(id)
	if i < 0 {
		notFound(c, "player")
		return
	}
	player.ID = id
	s.Players[i] = player
	c.JSON(http.StatusOK, player)
}

func (s *Server) deletePlayer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findPlayer(id)
	if i < 0 {
		notFound(c, "player")
		return
	}
	s.Players = append(s.Players[:i], s.Players[i+1:]...)
	c.Status(http.StatusOK)
}

func (s *Server) playerHistory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	history := s.PlayerHistory[id]
	if history == nil {
		history = []league.PlayerHistory{}
	}
	c.JSON(http.StatusOK, history)
}

// Matches

func (s *Server) findMatch(token string) int {
	for i, m := range s.Matches {
		if m.UUID == token {
			return i
		}
	}
	return -1
}

func (s *Server) teamRef(ref league.TeamRef) league.TeamRef {
	if i := s.findTeam(ref.ID); i >= 0 {
		return league.TeamRef{ID: ref.ID, Name: s.Teams[i].Name}
	}
	return ref
}

func (s *Server) listMatches(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]league.Match, len(s.Matches))
	copy(out, s.Matches)
	c.JSON(http.StatusOK, out)
}

func (s *Server) getMatch(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.findMatch(c.Param("uuid")); i >= 0 {
		c.JSON(http.StatusOK, s.Matches[i])
		return
	}
	notFound(c, "match")
}

func (s *Server) matchFromRequest(req league.MatchRequest) league.Match {
	return league.Match{
		Date:        req.Date,
		Time:        req.Time,
		HomeTeam:    s.teamRef(req.HomeTeam),
		AwayTeam:    s.teamRef(req.AwayTeam),
		HomeGoals:   req.HomeGoals,
		AwayGoals:   req.AwayGoals,
		Spectators:  req.Spectators,
		TicketPrice: req.TicketPrice,
		Revenue:     float64(req.Spectators) * req.TicketPrice,
	}
}

func (s *Server) createMatch(c *gin.Context) {
	var req league.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	match := s.matchFromRequest(req)
	match.UUID = uuid.NewString()
	s.Matches = append(s.Matches, match)
	c.JSON(http.StatusCreated, match)
}

func (s *Server) updateMatch(c *gin.Context) {
	var req league.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findMatch(c.Param("uuid"))
	if i < 0 {
		notFound(c, "match")
		return
	}
	match := s.matchFromRequest(req)
	match.UUID = s.Matches[i].UUID
	match.Stadium = s.Matches[i].Stadium
	s.Matches[i] = match
	c.JSON(http.StatusOK, match)
}

func (s *Server) deleteMatch(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findMatch(c.Param("uuid"))
	if i < 0 {
		notFound(c, "match")
		return
	}
	s.Matches = append(s.Matches[:i], s.Matches[i+1:]...)
	c.Status(http.StatusOK)
}

func (s *Server) listMatchStats(c *gin.Context) {
	token := c.Param("uuid")
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := []league.MatchPlayerStats{}
	for _, st := range s.MatchStats {
		if st.MatchUUID == token {
			stats = append(stats, st)
		}
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) findStats(token string, playerID int64) int {
	for i, st := range s.MatchStats {
		if st.MatchUUID == token && st.Player != nil && st.Player.ID == playerID {
			return i
		}
	}
	return -1
}

func (s *Server) getPlayerStats(c *gin.Context) {
	playerID, ok := paramID(c, "player_id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.findStats(c.Param("uuid"), playerID); i >= 0 {
		c.JSON(http.StatusOK, s.MatchStats[i])
		return
	}
	notFound(c, "player stats")
}

func (s *Server) savePlayerStats(c *gin.Context) {
	playerID, ok := paramID(c, "player_id")
	if !ok {
		return
	}
	var stats league.MatchPlayerStats
	if err := c.ShouldBindJSON(&stats); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	token := c.Param("uuid")

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findMatch(token) < 0 {
		notFound(c, "match")
		return
	}
	pi := s.findPlayer(playerID)
	if pi < 0 {
		notFound(c, "player")
		return
	}
	player := s.Players[pi]
	stats.MatchUUID = token
	stats.Player = &player

	i := s.findStats(token, playerID)
	switch {
	case c.Request.Method == http.MethodPost && i >= 0:
		c.JSON(http.StatusConflict, gin.H{"message": "Stats for this player and match already exist"})
	case c.Request.Method == http.MethodPost:
		stats.ID = s.id()
		s.MatchStats = append(s.MatchStats, stats)
		c.JSON(http.StatusCreated, stats)
	case i < 0:
		notFound(c, "player stats")
	default:
		stats.ID = s.MatchStats[i].ID
		s.MatchStats[i] = stats
		c.JSON(http.StatusOK, stats)
	}
}

func (s *Server) deletePlayerStats(c *gin.Context) {
	playerID, ok := paramID(c, "player_id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findStats(c.Param("uuid"), playerID)
	if i < 0 {
		notFound(c, "player stats")
		return
	}
	s.MatchStats = append(s.MatchStats[:i], s.MatchStats[i+1:]...)
	c.Status(http.StatusOK)
}

// Statistics

func (s *Server) allStandings(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]league.LeagueStandings, len(s.Standings))
	copy(out, s.Standings)
	c.JSON(http.StatusOK, out)
}

func (s *Server) divisionStandings(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	name := ""
	for _, d := range s.Divisions {
		if d.ID == id {
			name = d.Name
		}
	}
	out := []league.LeagueStandings{}
	for _, row := range s.Standings {
		if row.DivisionName == name {
			out = append(out, row)
		}
	}
	c.JSON(http.StatusOK, out)
}

func limit(c *gin.Context, n int) int {
	l, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || l < 0 {
		l = 10
	}
	if l > n {
		l = n
	}
	return l
}

func (s *Server) topScorers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]league.TopScorer, limit(c, len(s.Scorers)))
	copy(out, s.Scorers)
	c.JSON(http.StatusOK, out)
}

func (s *Server) topAssists(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]league.TopAssists, limit(c, len(s.Assists)))
	copy(out, s.Assists)
	c.JSON(http.StatusOK, out)
}

func (s *Server) teamPerformance(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	perf := s.Performance[id]
	if perf == nil {
		perf = []league.TeamPerformance{}
	}
	c.JSON(http.StatusOK, perf)
}

func (s *Server) stadiumStatistics(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]league.StadiumStats, len(s.StadiumStats))
	copy(out, s.StadiumStats)
	c.JSON(http.StatusOK, out)
}

// Search

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (s *Server) searchTeams(c *gin.Context) {
	q := c.Query("q")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []league.Team{}
	for _, t := range s.Teams {
		if q == "" || contains(t.Name, q) || contains(t.Username, q) {
			out = append(out, t)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) searchPlayers(c *gin.Context) {
	q := c.Query("q")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []league.Player{}
	for _, p := range s.Players {
		if q == "" || contains(p.Name, q) {
			out = append(out, p)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) filterPlayers(c *gin.Context) {
	teamID, _ := strconv.ParseInt(c.Query("teamId"), 10, 64)
	minJersey, minErr := strconv.Atoi(c.Query("minJersey"))
	maxJersey, maxErr := strconv.Atoi(c.Query("maxJersey"))
	position := c.Query("position")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []league.Player{}
	for _, p := range s.Players {
		if teamID != 0 && p.TeamID() != teamID {
			continue
		}
		if position != "" && !strings.EqualFold(p.Position, position) {
			continue
		}
		if minErr == nil && p.JerseyNumber < minJersey {
			continue
		}
		if maxErr == nil && p.JerseyNumber > maxJersey {
			continue
		}
		out = append(out, p)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) filterMatches(c *gin.Context) {
	teamID, _ := strconv.ParseInt(c.Query("teamId"), 10, 64)
	stadiumID, _ := strconv.ParseInt(c.Query("stadiumId"), 10, 64)
	start := c.Query("startDate")
	end := c.Query("endDate")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []league.Match{}
	for _, m := range s.Matches {
		if teamID != 0 && !m.Involves(teamID) {
			continue
		}
		if stadiumID != 0 && (m.Stadium == nil || m.Stadium.ID != stadiumID) {
			continue
		}
		if start != "" && m.Date < start {
			continue
		}
		if end != "" && m.Date > end {
			continue
		}
		out = append(out, m)
	}
	c.JSON(http.StatusOK, out)
}
