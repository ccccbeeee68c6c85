package session

import (
	"strings"

	validation "github.com/nvbf/league-desk/pkg/validation"
)

type LoginForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var loginMessages = map[string]string{
	"Username": "Please fill in all required fields",
	"Password": "Please fill in all required fields",
}

func (f LoginForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)
	return validation.Struct(f, loginMessages)
}

// RegisterForm is shared by administrator and team registration. Field
// order is the order the checks run in.
type RegisterForm struct {
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
	Username        string `json:"username" validate:"min=3"`
	Password        string `json:"password" validate:"min=6"`
	Email           string `json:"email" validate:"required,contains=@"`
}

var registerMessages = map[string]string{
	"ConfirmPassword": "Passwords do not match",
	"Username":        "Username must be at least 3 characters",
	"Password":        "Password must be at least 6 characters",
	"Email":           "Please enter a valid email address",
}

func (f RegisterForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)
	return validation.Struct(f, registerMessages)
}
