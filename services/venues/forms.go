package venues

import (
	"strings"

	validation "github.com/nvbf/league-desk/pkg/validation"
)

// NameForm creates or renames a city or a division.
type NameForm struct {
	Name string `json:"name" validate:"required"`
}

var nameMessages = map[string]string{
	"Name": "Please fill in all required fields",
}

func (f NameForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	return validation.Struct(f, nameMessages)
}

type StadiumForm struct {
	Name     string `json:"name" validate:"required"`
	Capacity int    `json:"capacity" validate:"min=0"`
	CityID   int64  `json:"cityId"`
}

var stadiumMessages = map[string]string{
	"Name":     "Please fill in all required fields",
	"Capacity": "Capacity cannot be negative",
}

func (f StadiumForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	return validation.Struct(f, stadiumMessages)
}
