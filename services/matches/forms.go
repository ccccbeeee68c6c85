package matches

import (
	"strings"
	"time"

	timehelper "github.com/nvbf/league-desk/pkg/timeHelper"
	validation "github.com/nvbf/league-desk/pkg/validation"
)

// MatchForm is the create and edit form. Spectators and TicketPrice are
// only honoured on edit; nil keeps the stored value.
type MatchForm struct {
	HomeTeamID  int64    `json:"homeTeamId" validate:"required"`
	AwayTeamID  int64    `json:"awayTeamId" validate:"required,nefield=HomeTeamID"`
	Date        string   `json:"date" validate:"required"`
	Time        string   `json:"time" validate:"required"`
	HomeGoals   int      `json:"homeGoals"`
	AwayGoals   int      `json:"awayGoals"`
	Spectators  *int     `json:"spectators"`
	TicketPrice *float64 `json:"ticketPrice"`
}

var matchMessages = map[string]string{
	"HomeTeamID":          "Please select both home and away teams",
	"AwayTeamID.required": "Please select both home and away teams",
	"AwayTeamID.nefield":  "Home team and away team must be different",
	"Date":                "Please provide both date and time",
	"Time":                "Please provide both date and time",
}

func (f MatchForm) trimmed() MatchForm {
	f.Date = strings.TrimSpace(f.Date)
	f.Time = strings.TrimSpace(f.Time)
	return f
}

func (f MatchForm) validateCommon(loc *time.Location) error {
	if err := validation.Struct(f, matchMessages); err != nil {
		return err
	}
	if _, ok := timehelper.ParseDate(f.Date, loc); !ok {
		return validation.New("Please provide both date and time")
	}
	return nil
}

// ValidateCreate runs the create checks in order. Only upcoming matches,
// dated after today with a 0-0 score, can be created.
func (f MatchForm) ValidateCreate(today time.Time, loc *time.Location) error {
	if err := f.validateCommon(loc); err != nil {
		return err
	}
	date, _ := timehelper.ParseDate(f.Date, loc)
	if !date.After(timehelper.Midnight(today, loc)) {
		return validation.New("Match date must be in the future. Only upcoming matches can be created.")
	}
	if f.HomeGoals != 0 || f.AwayGoals != 0 {
		return validation.New("Upcoming matches must have 0-0 scores. Scores will be updated after the match is played.")
	}
	return nil
}

func (f MatchForm) ValidateUpdate(loc *time.Location) error {
	if err := f.validateCommon(loc); err != nil {
		return err
	}
	if f.HomeGoals < 0 || f.AwayGoals < 0 {
		return validation.New("Scores cannot be negative")
	}
	return nil
}

type StatsForm struct {
	Goals   int `json:"goals" validate:"min=0"`
	Assists int `json:"assists" validate:"min=0"`
	Passes  int `json:"passes" validate:"min=0"`
	Saves   int `json:"saves" validate:"min=0"`
}

var statsMessages = map[string]string{
	"Goals":   "Statistics cannot be negative",
	"Assists": "Statistics cannot be negative",
	"Passes":  "Statistics cannot be negative",
	"Saves":   "Statistics cannot be negative",
}

func (f StatsForm) Validate() error {
	return validation.Struct(f, statsMessages)
}
