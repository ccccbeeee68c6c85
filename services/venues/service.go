package venues

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	auth "github.com/nvbf/league-desk/pkg/auth"
	respond "github.com/nvbf/league-desk/pkg/respond"
	league "github.com/nvbf/league-desk/repos/league"
)

// API is the reference data part of the league client.
type API interface {
	ListCities(ctx context.Context) ([]league.City, error)
	GetCity(ctx context.Context, id int64) (*league.City, error)
	CreateCity(ctx context.Context, city league.City) (*league.City, error)
	UpdateCity(ctx context.Context, id int64, city league.City) (*league.City, error)
	DeleteCity(ctx context.Context, id int64) error

	ListStadiums(ctx context.Context) ([]league.Stadium, error)
	GetStadium(ctx context.Context, id int64) (*league.Stadium, error)
	CreateStadium(ctx context.Context, stadium league.Stadium) (*league.Stadium, error)
	UpdateStadium(ctx context.Context, id int64, stadium league.Stadium) (*league.Stadium, error)
	DeleteStadium(ctx context.Context, id int64) error

	ListDivisions(ctx context.Context) ([]league.Division, error)
	GetDivision(ctx context.Context, id int64) (*league.Division, error)
	CreateDivision(ctx context.Context, division league.Division) (*league.Division, error)
	UpdateDivision(ctx context.Context, id int64, division league.Division) (*league.Division, error)
	DeleteDivision(ctx context.Context, id int64) error

	ListTeams(ctx context.Context) ([]league.Team, error)
}

type Viewer interface {
	IsAdmin() bool
}

// entity binds one kind of reference data to its client calls and user
// messages.
type entity[T any] struct {
	singular, plural string
	list             func(context.Context) ([]T, error)
	get              func(context.Context, int64) (*T, error)
	create           func(context.Context, T) (*T, error)
	update           func(context.Context, int64, T) (*T, error)
	remove           func(context.Context, int64) error
}

func (e entity[T]) List(ctx context.Context) ([]T, error) {
	items, err := e.list(ctx)
	if err != nil {
		return nil, respond.Failed(err, "Failed to load "+e.plural)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (e entity[T]) Get(ctx context.Context, id int64) (*T, error) {
	item, err := e.get(ctx, id)
	if err != nil {
		return nil, respond.Failed(err, "Failed to load "+e.singular)
	}
	return item, nil
}

func (e entity[T]) Save(ctx context.Context, id int64, item T) (*T, error) {
	var (
		saved *T
		err   error
	)
	if id == 0 {
		saved, err = e.create(ctx, item)
	} else {
		saved, err = e.update(ctx, id, item)
	}
	if err != nil {
		return nil, respond.Failed(err, "Failed to save "+e.singular)
	}
	return saved, nil
}

func (e entity[T]) Delete(ctx context.Context, id int64) error {
	if err := e.remove(ctx, id); err != nil {
		return respond.Failed(err, "Failed to delete "+e.singular)
	}
	log.Info().Str("kind", e.singular).Int64("id", id).Msg("reference data deleted")
	return nil
}

type VenuesService struct {
	api    API
	viewer Viewer

	cities    entity[league.City]
	stadiums  entity[league.Stadium]
	divisions entity[league.Division]
}

func NewVenuesService(api API, viewer Viewer) *VenuesService {
	return &VenuesService{
		api:    api,
		viewer: viewer,
		cities: entity[league.City]{
			singular: "city", plural: "cities",
			list: api.ListCities, get: api.GetCity,
			create: api.CreateCity, update: api.UpdateCity, remove: api.DeleteCity,
		},
		stadiums: entity[league.Stadium]{
			singular: "stadium", plural: "stadiums",
			list: api.ListStadiums, get: api.GetStadium,
			create: api.CreateStadium, update: api.UpdateStadium, remove: api.DeleteStadium,
		},
		divisions: entity[league.Division]{
			singular: "division", plural: "divisions",
			list: api.ListDivisions, get: api.GetDivision,
			create: api.CreateDivision, update: api.UpdateDivision, remove: api.DeleteDivision,
		},
	}
}

func (s *VenuesService) admin() error {
	if !s.viewer.IsAdmin() {
		return auth.ErrForbidden
	}
	return nil
}

// Cities

func (s *VenuesService) Cities(ctx context.Context) ([]league.City, error) {
	return s.cities.List(ctx)
}

func (s *VenuesService) City(ctx context.Context, id int64) (*league.City, error) {
	return s.cities.Get(ctx, id)
}

// SaveCity creates the city when id is zero and renames it otherwise.
func (s *VenuesService) SaveCity(ctx context.Context, id int64, form NameForm) (*league.City, error) {
	if err := s.admin(); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return s.cities.Save(ctx, id, league.City{Name: strings.TrimSpace(form.Name)})
}

func (s *VenuesService) DeleteCity(ctx context.Context, id int64) error {
	if err := s.admin(); err != nil {
		return err
	}
	return s.cities.Delete(ctx, id)
}

// Stadiums

func (s *VenuesService) Stadiums(ctx context.Context) ([]league.Stadium, error) {
	return s.stadiums.List(ctx)
}

func (s *VenuesService) Stadium(ctx context.Context, id int64) (*league.Stadium, error) {
	return s.stadiums.Get(ctx, id)
}

func (s *VenuesService) SaveStadium(ctx context.Context, id int64, form StadiumForm) (*league.Stadium, error) {
	if err := s.admin(); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	stadium := league.Stadium{Name: strings.TrimSpace(form.Name), Capacity: form.Capacity}
	if form.CityID != 0 {
		stadium.City = &league.City{ID: form.CityID}
	}
	return s.stadiums.Save(ctx, id, stadium)
}

func (s *VenuesService) DeleteStadium(ctx context.Context, id int64) error {
	if err := s.admin(); err != nil {
		return err
	}
	return s.stadiums.Delete(ctx, id)
}

// Divisions

// Divisions lists the divisions with their teams. When the teams cannot
// be loaded the divisions are still returned, without teams.
func (s *VenuesService) Divisions(ctx context.Context) ([]DivisionRow, error) {
	divisions, err := s.divisions.List(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.api.ListTeams(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("division teams unavailable")
	}

	rows := make([]DivisionRow, len(divisions))
	for i, d := range divisions {
		rows[i] = DivisionRow{Division: d, Teams: []league.TeamRef{}}
		for _, t := range teams {
			if t.Division != nil && t.Division.ID == d.ID {
				rows[i].Teams = append(rows[i].Teams, league.TeamRef{ID: t.ID, Name: t.Name})
			}
		}
		rows[i].TeamCount = len(rows[i].Teams)
	}
	return rows, nil
}

func (s *VenuesService) Division(ctx context.Context, id int64) (*league.Division, error) {
	return s.divisions.Get(ctx, id)
}

func (s *VenuesService) SaveDivision(ctx context.Context, id int64, form NameForm) (*league.Division, error) {
	if err := s.admin(); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return s.divisions.Save(ctx, id, league.Division{Name: strings.TrimSpace(form.Name)})
}

func (s *VenuesService) DeleteDivision(ctx context.Context, id int64) error {
	if err := s.admin(); err != nil {
		return err
	}
	return s.divisions.Delete(ctx, id)
}
