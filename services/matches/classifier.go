package matches

import (
	"sort"
	"time"

	timehelper "github.com/nvbf/league-desk/pkg/timeHelper"
	league "github.com/nvbf/league-desk/repos/league"
)

type Phase string

const (
	PhaseUpcoming Phase = "upcoming"
	PhasePast     Phase = "past"
)

// Classify puts a match on the Upcoming side when it is dated today or
// later and still shows 0-0. Anything else, including a 0-0 match dated
// before today or a date that does not parse, is Past.
func Classify(m league.Match, today time.Time, loc *time.Location) Phase {
	date, ok := timehelper.ParseDate(m.Date, loc)
	if !ok {
		return PhasePast
	}
	today = timehelper.Midnight(today, loc)
	if !date.Before(today) && m.HomeGoals == 0 && m.AwayGoals == 0 {
		return PhaseUpcoming
	}
	return PhasePast
}

// Split partitions matches into Upcoming (earliest first) and Past (most
// recent first).
func Split(matches []league.Match, today time.Time, loc *time.Location) (upcoming, past []league.Match) {
	upcoming = []league.Match{}
	past = []league.Match{}
	for _, m := range matches {
		if Classify(m, today, loc) == PhaseUpcoming {
			upcoming = append(upcoming, m)
		} else {
			past = append(past, m)
		}
	}
	SortAscending(upcoming, loc)
	SortDescending(past, loc)
	return upcoming, past
}

// kickoff orders matches by date and time. A missing time counts as
// midnight; an unparseable date sorts as the zero time.
func kickoff(m league.Match, loc *time.Location) time.Time {
	at, _ := timehelper.Combine(m.Date, m.Time, loc)
	return at
}

func SortAscending(matches []league.Match, loc *time.Location) {
	sort.SliceStable(matches, func(i, j int) bool {
		return kickoff(matches[i], loc).Before(kickoff(matches[j], loc))
	})
}

func SortDescending(matches []league.Match, loc *time.Location) {
	sort.SliceStable(matches, func(i, j int) bool {
		return kickoff(matches[i], loc).After(kickoff(matches[j], loc))
	})
}

// ForTeam keeps the matches the team plays in, home or away.
func ForTeam(matches []league.Match, teamID int64) []league.Match {
	out := []league.Match{}
	for _, m := range matches {
		if m.Involves(teamID) {
			out = append(out, m)
		}
	}
	return out
}
