package players

import (
	"strings"

	validation "github.com/nvbf/league-desk/pkg/validation"
)

// PlayerForm is the add/edit player form of the roster dialog.
type PlayerForm struct {
	Name         string `json:"name" validate:"required"`
	Position     string `json:"position" validate:"required,oneof=Goalkeeper Defender Midfielder Forward"`
	JerseyNumber *int   `json:"jerseyNumber" validate:"required,min=0"`
	TeamID       int64  `json:"teamId"`
}

var playerMessages = map[string]string{
	"Name":                  "Please fill in all required fields",
	"Position.required":     "Please fill in all required fields",
	"Position.oneof":        "Invalid player position",
	"JerseyNumber.required": "Please fill in all required fields",
	"JerseyNumber.min":      "Jersey number cannot be negative",
}

func (f PlayerForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	return validation.Struct(f, playerMessages)
}
