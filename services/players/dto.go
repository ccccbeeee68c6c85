package players

import league "github.com/nvbf/league-desk/repos/league"

// Totals are the career counters summed from the history rows.
type Totals struct {
	Goals   int `json:"goals"`
	Assists int `json:"assists"`
	Passes  int `json:"passes"`
	Saves   int `json:"saves"`
	Matches int `json:"matchesPlayed"`
}

type HistoryView struct {
	PlayerID int64                  `json:"playerId"`
	Rows     []league.PlayerHistory `json:"rows"`
	Totals   Totals                 `json:"totals"`
	// Goalkeeper is set once the player has a save on record.
	Goalkeeper bool `json:"goalkeeper"`
}

func sumHistory(rows []league.PlayerHistory) Totals {
	t := Totals{Matches: len(rows)}
	for _, row := range rows {
		t.Goals += row.Goals
		t.Assists += row.Assists
		t.Passes += row.Passes
		t.Saves += row.Saves
	}
	return t
}
