package league

// RoleAdmin is the role the API assigns to administrator accounts.
const RoleAdmin = "ADMIN"

// Player positions accepted by the API.
const (
	PositionGoalkeeper = "Goalkeeper"
	PositionDefender   = "Defender"
	PositionMidfielder = "Midfielder"
	PositionForward    = "Forward"
)

// Positions lists the player positions in display order.
var Positions = []string{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward}

type User struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// IsAdmin reports whether the account carries the administrator role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type City struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

type Stadium struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity,omitempty"`
	City     *City  `json:"city,omitempty"`
}

type Division struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type Team struct {
	ID          int64     `json:"id,omitempty"`
	Name        string    `json:"name,omitempty"`
	Username    string    `json:"username,omitempty"`
	Email       string    `json:"email,omitempty"`
	Password    string    `json:"password,omitempty"`
	Division    *Division `json:"division,omitempty"`
	City        *City     `json:"city,omitempty"`
	Stadium     *Stadium  `json:"stadium,omitempty"`
	HomeMatches []Match   `json:"homeMatches,omitempty"`
	AwayMatches []Match   `json:"awayMatches,omitempty"`
}

type TeamRegisterRequest struct {
	Name     string    `json:"name,omitempty"`
	Username string    `json:"username"`
	Password string    `json:"password"`
	Email    string    `json:"email"`
	Division *Division `json:"division,omitempty"`
	City     *City     `json:"city,omitempty"`
	Stadium  *Stadium  `json:"stadium,omitempty"`
}

// TeamRef is the short team form embedded in matches.
type TeamRef struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type Match struct {
	UUID        string   `json:"uuid,omitempty"`
	Stadium     *Stadium `json:"stadium,omitempty"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	HomeTeam    TeamRef  `json:"homeTeam"`
	AwayTeam    TeamRef  `json:"awayTeam"`
	HomeGoals   int      `json:"homeGoals"`
	AwayGoals   int      `json:"awayGoals"`
	Spectators  int      `json:"spectators"`
	TicketPrice float64  `json:"ticketPrice,omitempty"`
	Revenue     float64  `json:"revenue,omitempty"`
}

// Involves reports whether the team plays in the match.
func (m Match) Involves(teamID int64) bool {
	return m.HomeTeam.ID == teamID || m.AwayTeam.ID == teamID
}

type MatchRequest struct {
	HomeTeam    TeamRef `json:"homeTeam"`
	AwayTeam    TeamRef `json:"awayTeam"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	HomeGoals   int     `json:"homeGoals"`
	AwayGoals   int     `json:"awayGoals"`
	Spectators  int     `json:"spectators"`
	TicketPrice float64 `json:"ticketPrice"`
}

type Player struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jerseyNumber"`
	Team         *Team  `json:"team,omitempty"`
}

// TeamID returns the owning team id, or zero when unknown.
func (p Player) TeamID() int64 {
	if p.Team == nil {
		return 0
	}
	return p.Team.ID
}

type PlayerHistory struct {
	MatchUUID    string `json:"matchUuid"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	OpponentName string `json:"opponentName"`
	IsHomeMatch  bool   `json:"isHomeMatch"`
	Goals        int    `json:"goals"`
	Assists      int    `json:"assists"`
	Passes       int    `json:"passes"`
	Saves        int    `json:"saves"`
}

type MatchPlayerStats struct {
	ID        int64   `json:"id,omitempty"`
	MatchUUID string  `json:"matchUuid,omitempty"`
	Player    *Player `json:"player,omitempty"`
	Goals     int     `json:"goals"`
	Assists   int     `json:"assists"`
	Passes    int     `json:"passes"`
	Saves     int     `json:"saves"`
}

type LeagueStandings struct {
	TeamID         int64  `json:"teamId"`
	TeamName       string `json:"teamName"`
	DivisionName   string `json:"divisionName"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

type TopScorer struct {
	PlayerID      int64  `json:"playerId"`
	PlayerName    string `json:"playerName"`
	TeamID        int64  `json:"teamId"`
	TeamName      string `json:"teamName"`
	Goals         int    `json:"goals"`
	MatchesPlayed int    `json:"matchesPlayed"`
}

type TopAssists struct {
	PlayerID      int64  `json:"playerId"`
	PlayerName    string `json:"playerName"`
	TeamID        int64  `json:"teamId"`
	TeamName      string `json:"teamName"`
	Assists       int    `json:"assists"`
	MatchesPlayed int    `json:"matchesPlayed"`
}

type TeamPerformance struct {
	Date          string `json:"date"`
	OpponentName  string `json:"opponentName"`
	IsHomeMatch   bool   `json:"isHomeMatch"`
	TeamGoals     int    `json:"teamGoals"`
	OpponentGoals int    `json:"opponentGoals"`
	Result        string `json:"result"`
}

type StadiumStats struct {
	StadiumID         int64   `json:"stadiumId"`
	StadiumName       string  `json:"stadiumName"`
	Capacity          int     `json:"capacity"`
	TotalMatches      int     `json:"totalMatches"`
	TotalSpectators   int64   `json:"totalSpectators"`
	AverageAttendance float64 `json:"averageAttendance"`
	OccupancyRate     float64 `json:"occupancyRate"`
}

type TeamMatchHistory struct {
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	OpponentName string   `json:"opponentName"`
	IsHomeMatch  bool     `json:"isHomeMatch"`
	HomeGoals    int      `json:"homeGoals"`
	AwayGoals    int      `json:"awayGoals"`
	Spectators   int      `json:"spectators"`
	Stadium      *Stadium `json:"stadium,omitempty"`
}

type TeamDashboard struct {
	TeamID               int64              `json:"teamId"`
	TeamName             string             `json:"teamName"`
	TotalMatches         int                `json:"totalMatches"`
	Wins                 int                `json:"wins"`
	Losses               int                `json:"losses"`
	Draws                int                `json:"draws"`
	GoalsScored          int                `json:"goalsScored"`
	GoalsConceded        int                `json:"goalsConceded"`
	Points               int                `json:"points"`
	WinPercentage        float64            `json:"winPercentage"`
	AverageGoalsScored   float64            `json:"averageGoalsScored"`
	AverageGoalsConceded float64            `json:"averageGoalsConceded"`
	CurrentStreak        string             `json:"currentStreak"`
	TotalPlayers         int                `json:"totalPlayers"`
	UpcomingMatches      []TeamMatchHistory `json:"upcomingMatches"`
	PastMatches          []TeamMatchHistory `json:"pastMatches"`
	Announcements        []string           `json:"announcements"`
}

// PlayerFilter holds the optional criteria of the player filter endpoint.
// Nil fields are left out of the query.
type PlayerFilter struct {
	TeamID    *int64
	Position  string
	MinJersey *int
	MaxJersey *int
}

// MatchFilter holds the optional criteria of the match filter endpoint.
// Dates use the YYYY-MM-DD layout.
type MatchFilter struct {
	DivisionID *int64
	StadiumID  *int64
	TeamID     *int64
	StartDate  string
	EndDate    string
}
