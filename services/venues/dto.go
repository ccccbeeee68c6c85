package venues

import league "github.com/nvbf/league-desk/repos/league"

// DivisionRow is a division with the teams playing in it.
type DivisionRow struct {
	league.Division
	Teams     []league.TeamRef `json:"teams"`
	TeamCount int              `json:"teamCount"`
}
