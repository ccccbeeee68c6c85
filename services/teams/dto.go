package teams

import league "github.com/nvbf/league-desk/repos/league"

// Profile is a team with a flag telling whether the profile still needs
// its name, division, city or stadium.
type Profile struct {
	league.Team
	Incomplete bool `json:"incomplete"`
}

func newProfile(team league.Team) *Profile {
	team.Password = ""
	return &Profile{
		Team:       team,
		Incomplete: team.Name == "" || team.Division == nil || team.City == nil || team.Stadium == nil,
	}
}

// FormOptions is the reference data behind the team, match and player
// forms.
type FormOptions struct {
	Teams     []league.Team     `json:"teams"`
	Stadiums  []league.Stadium  `json:"stadiums"`
	Divisions []league.Division `json:"divisions"`
	Cities    []league.City     `json:"cities"`
}

func (o *FormOptions) division(id int64) *league.Division {
	for i := range o.Divisions {
		if o.Divisions[i].ID == id {
			d := o.Divisions[i]
			return &d
		}
	}
	return nil
}

func (o *FormOptions) city(id int64) *league.City {
	for i := range o.Cities {
		if o.Cities[i].ID == id {
			c := o.Cities[i]
			return &c
		}
	}
	return nil
}

func (o *FormOptions) stadium(id int64) *league.Stadium {
	for i := range o.Stadiums {
		if o.Stadiums[i].ID == id {
			s := o.Stadiums[i]
			return &s
		}
	}
	return nil
}
