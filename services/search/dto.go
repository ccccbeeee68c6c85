package search

// PlayerQuery is bound from /players/filter. Nil fields are not sent.
type PlayerQuery struct {
	TeamID    *int64 `form:"team_id"`
	Position  string `form:"position"`
	MinJersey *int   `form:"min_jersey"`
	MaxJersey *int   `form:"max_jersey"`
}

// MatchQuery is bound from /matches/filter. Dates use YYYY-MM-DD.
type MatchQuery struct {
	DivisionID *int64 `form:"division_id"`
	StadiumID  *int64 `form:"stadium_id"`
	TeamID     *int64 `form:"team_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
}
