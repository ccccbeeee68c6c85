package matches

import (
	league "github.com/nvbf/league-desk/repos/league"
)

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ParseOrder maps the toggle query value; anything unknown is most recent
// first.
func ParseOrder(value string) Order {
	if value == string(OrderAsc) {
		return OrderAsc
	}
	return OrderDesc
}

type MatchRow struct {
	league.Match
	Phase Phase `json:"phase"`
}

// MatchView is the match list screen. Administrators get the two tabs;
// everybody else gets Matches in the requested order.
type MatchView struct {
	Tabs          bool       `json:"tabs"`
	Upcoming      []MatchRow `json:"upcoming,omitempty"`
	Past          []MatchRow `json:"past,omitempty"`
	UpcomingCount int        `json:"upcomingCount"`
	PastCount     int        `json:"pastCount"`
	Matches       []MatchRow `json:"matches,omitempty"`
	Order         Order      `json:"order,omitempty"`
}

// StatsRow is one player line of the match statistics sheet. Stats is nil
// until statistics were recorded for the player.
type StatsRow struct {
	Player league.Player            `json:"player"`
	Side   string                   `json:"side"`
	Stats  *league.MatchPlayerStats `json:"stats"`
}

type StatsSheet struct {
	Match MatchRow   `json:"match"`
	Rows  []StatsRow `json:"rows"`
}
