// Package explorer expone los records de Vetmanager en modo solo lectura
// (HTTP y vetctl comparten este servicio).
package explorer

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"vetmanager-api-gateway/internal/domain/entities"
	"vetmanager-api-gateway/internal/domain/fetch"
	"vetmanager-api-gateway/internal/ports/gateway"
)

var (
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrNoRelation: el foreign key viene nulo, no hay nada que resolver.
	ErrNoRelation = errors.New("relation not set")
)

type Service struct {
	gw gateway.Gateway
}

func NewService(gw gateway.Gateway) *Service {
	return &Service{gw: gw}
}

func (s *Service) client(ctx context.Context, id int) (entities.Client, error) {
	return fetch.GetByID(ctx, s.gw, entities.ClientKind, id)
}

func (s *Service) Client(ctx context.Context, id int) (ClientView, error) {
	c, err := s.client(ctx, id)
	if err != nil {
		return ClientView{}, err
	}
	return NewClientView(c), nil
}

// ClientSummary trae el cliente y después mascotas vivas y consultas en paralelo.
func (s *Service) ClientSummary(ctx context.Context, id int) (ClientSummaryView, error) {
	c, err := s.client(ctx, id)
	if err != nil {
		return ClientSummaryView{}, err
	}

	var (
		pets  []entities.Pet
		cards []entities.MedicalCardsByClient
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pets, err = c.PetsAlive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cards, err = c.MedicalCards(gctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return ClientSummaryView{}, err
	}

	return ClientSummaryView{
		Client:   NewClientView(c),
		Pets:     mapAll(pets, NewPetView),
		Medcards: mapAll(cards, NewMedcardView),
	}, nil
}

func (s *Service) ClientPets(ctx context.Context, id int) ([]PetView, error) {
	c, err := s.client(ctx, id)
	if err != nil {
		return nil, err
	}
	pets, err := c.PetsAlive(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(pets, NewPetView), nil
}

// ClientMedcards no pide el cliente: va directo al endpoint agregado.
func (s *Service) ClientMedcards(ctx context.Context, id int, extra string) ([]MedcardView, error) {
	cards, err := entities.GetMedicalCardsByClientID(ctx, s.gw, id, extra)
	if err != nil {
		return nil, err
	}
	return mapAll(cards, NewMedcardView), nil
}

func (s *Service) Pet(ctx context.Context, id int) (PetView, error) {
	p, err := fetch.GetByID(ctx, s.gw, entities.PetKind, id)
	if err != nil {
		return PetView{}, err
	}
	return NewPetView(p), nil
}

func (s *Service) PetOwner(ctx context.Context, id int) (ClientView, error) {
	p, err := fetch.GetByID(ctx, s.gw, entities.PetKind, id)
	if err != nil {
		return ClientView{}, err
	}
	owner, err := p.Owner(ctx)
	if err != nil {
		return ClientView{}, err
	}
	if owner == nil {
		return ClientView{}, fmt.Errorf("%w: pet %d has no owner", ErrNoRelation, id)
	}
	return NewClientView(*owner), nil
}

func (s *Service) Users(ctx context.Context) ([]UserView, error) {
	users, err := fetch.GetAll(ctx, s.gw, entities.UserKind)
	if err != nil {
		return nil, err
	}
	return mapAll(users, NewUserView), nil
}

func (s *Service) User(ctx context.Context, id int) (UserView, error) {
	u, err := fetch.GetByID(ctx, s.gw, entities.UserKind, id)
	if err != nil {
		return UserView{}, err
	}
	return NewUserView(u), nil
}

func (s *Service) UserPosition(ctx context.Context, id int) (PositionView, error) {
	u, err := fetch.GetByID(ctx, s.gw, entities.UserKind, id)
	if err != nil {
		return PositionView{}, err
	}
	pos, err := u.Position(ctx)
	if err != nil {
		return PositionView{}, err
	}
	if pos == nil {
		return PositionView{}, fmt.Errorf("%w: user %d has no position", ErrNoRelation, id)
	}
	return NewPositionView(*pos), nil
}

func (s *Service) Positions(ctx context.Context) ([]PositionView, error) {
	ps, err := fetch.GetAll(ctx, s.gw, entities.UserPositionKind)
	if err != nil {
		return nil, err
	}
	return mapAll(ps, NewPositionView), nil
}

func (s *Service) Position(ctx context.Context, id int) (PositionView, error) {
	p, err := fetch.GetByID(ctx, s.gw, entities.UserPositionKind, id)
	if err != nil {
		return PositionView{}, err
	}
	return NewPositionView(p), nil
}

// Entities lista los nombres que aceptan Get y List.
func Entities() []string {
	out := make([]string, 0, len(getters))
	for k := range getters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type accessor struct {
	get  func(ctx context.Context, s *Service, id int) (any, error)
	list func(ctx context.Context, s *Service) (any, error)
}

var getters = map[string]accessor{
	"client": {
		get: func(ctx context.Context, s *Service, id int) (any, error) { return s.Client(ctx, id) },
		list: func(ctx context.Context, s *Service) (any, error) {
			return listAll(ctx, s, entities.ClientKind, NewClientView)
		},
	},
	"pet": {
		get: func(ctx context.Context, s *Service, id int) (any, error) { return s.Pet(ctx, id) },
		list: func(ctx context.Context, s *Service) (any, error) {
			return listAll(ctx, s, entities.PetKind, NewPetView)
		},
	},
	"user": {
		get:  func(ctx context.Context, s *Service, id int) (any, error) { return s.User(ctx, id) },
		list: func(ctx context.Context, s *Service) (any, error) { return s.Users(ctx) },
	},
	"position": {
		get:  func(ctx context.Context, s *Service, id int) (any, error) { return s.Position(ctx, id) },
		list: func(ctx context.Context, s *Service) (any, error) { return s.Positions(ctx) },
	},
	"city": {
		get: func(ctx context.Context, s *Service, id int) (any, error) {
			return getOne(ctx, s, entities.CityKind, id, newCityView)
		},
		list: func(ctx context.Context, s *Service) (any, error) {
			return listAll(ctx, s, entities.CityKind, newCityView)
		},
	},
	"street": {
		get: func(ctx context.Context, s *Service, id int) (any, error) {
			return getOne(ctx, s, entities.StreetKind, id, newStreetView)
		},
		list: func(ctx context.Context, s *Service) (any, error) {
			return listAll(ctx, s, entities.StreetKind, newStreetView)
		},
	},
	"role": {
		get: func(ctx context.Context, s *Service, id int) (any, error) {
			return getOne(ctx, s, entities.RoleKind, id, newRoleView)
		},
		list: func(ctx context.Context, s *Service) (any, error) {
			return listAll(ctx, s, entities.RoleKind, newRoleView)
		},
	},
	"breed": {
		get: func(ctx context.Context, s *Service, id int) (any, error) {
			return getOne(ctx, s, entities.BreedKind, id, newBreedView)
		},
		list: func(ctx context.Context, s *Service) (any, error) {
			return listAll(ctx, s, entities.BreedKind, newBreedView)
		},
	},
}

// Get devuelve la vista de entity por id.
func (s *Service) Get(ctx context.Context, entity string, id int) (any, error) {
	a, ok := getters[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}
	return a.get(ctx, s, id)
}

func (s *Service) List(ctx context.Context, entity string) (any, error) {
	a, ok := getters[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}
	return a.list(ctx, s)
}

func getOne[T, V any](ctx context.Context, s *Service, kind fetch.Kind[T], id int, view func(T) V) (V, error) {
	v, err := fetch.GetByID(ctx, s.gw, kind, id)
	if err != nil {
		var zero V
		return zero, err
	}
	return view(v), nil
}

func listAll[T, V any](ctx context.Context, s *Service, kind fetch.Kind[T], view func(T) V) ([]V, error) {
	items, err := fetch.GetAll(ctx, s.gw, kind)
	if err != nil {
		return nil, err
	}
	return mapAll(items, view), nil
}

func newCityView(c entities.City) CityView {
	return CityView{ID: c.ID, Title: c.Title, TypeID: c.TypeID}
}

func newStreetView(st entities.Street) StreetView {
	return StreetView{ID: st.ID, Title: st.Title, Type: st.Type, CityID: st.CityID}
}

func newRoleView(r entities.Role) RoleView {
	return RoleView{ID: r.ID, Name: r.Name, IsSuper: r.IsSuper}
}

func newBreedView(b entities.Breed) BreedView {
	return BreedView{ID: b.ID, Title: b.Title, PetTypeID: b.PetTypeID}
}
