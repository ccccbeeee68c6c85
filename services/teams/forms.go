package teams

import (
	"strings"

	validation "github.com/nvbf/league-desk/pkg/validation"
)

// CreateForm is the administrator's "create team" form. The account
// password is set to the username.
type CreateForm struct {
	Name       string `json:"name" validate:"required"`
	Username   string `json:"username" validate:"required"`
	Email      string `json:"email" validate:"required,contains=@"`
	DivisionID int64  `json:"divisionId"`
	CityID     int64  `json:"cityId"`
	StadiumID  int64  `json:"stadiumId"`
}

var createMessages = map[string]string{
	"Name":           "Please fill in all required fields",
	"Username":       "Please fill in all required fields",
	"Email.required": "Please fill in all required fields",
	"Email.contains": "Please enter a valid email address",
}

func (f CreateForm) trimmed() CreateForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
	return f
}

func (f CreateForm) Validate() error {
	return validation.Struct(f, createMessages)
}

// ProfileForm edits a team's profile. Zero ids clear the reference.
type ProfileForm struct {
	Name       string `json:"name" validate:"required"`
	DivisionID int64  `json:"divisionId"`
	CityID     int64  `json:"cityId"`
	StadiumID  int64  `json:"stadiumId"`
}

var profileMessages = map[string]string{
	"Name": "Please fill in all required fields",
}

func (f ProfileForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	return validation.Struct(f, profileMessages)
}
