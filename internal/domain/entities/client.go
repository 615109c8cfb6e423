package entities

import (
	"context"
	"time"

	"vetmanager-api-gateway/internal/domain/fetch"
	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/ports/gateway"
)

// Client es el dueño de las mascotas.
type Client struct {
	rec record

	ID                int
	Address           string
	HomePhone         string
	WorkPhone         string
	Note              string
	TypeID            *int
	HowFind           *int
	Balance           float64
	Email             string
	CityTitle         string
	CityID            *int
	DateRegister      *time.Time
	CellPhone         string
	Zip               string
	RegistrationIndex *string
	IsVIP             bool
	Name              FullName
	Status            ClientStatus
	Discount          int
	PassportSeries    string
	LabNumber         string
	StreetID          *int
	Apartment         string
	IsUnsubscribed    bool
	InBlacklist       bool
	LastVisitDate     *time.Time
	NumberOfJournal   string
	PhonePrefix       string
}

var ClientKind = fetch.Kind[Client]{Route: gateway.RouteClient, Construct: NewClient}

func NewClient(gw gateway.Gateway, raw payload.Raw) (Client, error) {
	r := payload.NewReader("Client", raw)
	c := Client{
		ID:                r.Int("id"),
		Address:           r.String("address"),
		HomePhone:         r.String("home_phone"),
		WorkPhone:         r.String("work_phone"),
		Note:              r.String("note"),
		TypeID:            r.OptionalID("type_id"),
		HowFind:           r.OptionalID("how_find"),
		Balance:           r.Float("balance"),
		Email:             r.String("email"),
		CityTitle:         r.String("city"),
		CityID:            r.OptionalID("city_id"),
		DateRegister:      r.OptionalDateTime("date_register"),
		CellPhone:         r.String("cell_phone"),
		Zip:               r.String("zip"),
		RegistrationIndex: r.OptionalString("registration_index"),
		IsVIP:             r.Bool("vip"),
		Name: FullName{
			First:  r.String("first_name"),
			Middle: r.String("middle_name"),
			Last:   r.String("last_name"),
		},
		Status:          payload.Enum(r, "status", "ClientStatus", clientStatuses...),
		Discount:        r.Int("discount"),
		PassportSeries:  r.String("passport_series"),
		LabNumber:       r.String("lab_number"),
		StreetID:        r.OptionalID("street_id"),
		Apartment:       r.String("apartment"),
		IsUnsubscribed:  r.Bool("unsubscribe"),
		InBlacklist:     r.Bool("in_blacklist"),
		LastVisitDate:   r.OptionalDateTime("last_visit_date"),
		NumberOfJournal: r.String("number_of_journal"),
		PhonePrefix:     r.String("phone_prefix"),
	}
	if err := r.Err(); err != nil {
		return Client{}, err
	}
	c.rec = newRecord(gw, "Client", raw)
	return c, nil
}

func NewClients(gw gateway.Gateway, raws []payload.Raw) ([]Client, error) {
	return fetch.FromRawSequence(gw, ClientKind, raws)
}

func (c Client) Self(ctx context.Context) (Client, error) {
	return resolveKey(ctx, c.rec, "id", ClientKind)
}

// MedicalCards usa el endpoint agregado por cliente; extra se agrega crudo a la query.
func (c Client) MedicalCards(ctx context.Context, extra string) ([]MedicalCardsByClient, error) {
	id, err := c.rec.key("id")
	if err != nil {
		return nil, err
	}
	gw, err := c.rec.attached()
	if err != nil {
		return nil, err
	}
	return GetMedicalCardsByClientID(ctx, gw, id, extra)
}

func (c Client) PetsAlive(ctx context.Context) ([]Pet, error) {
	return resolveChildren(ctx, c.rec, "id", PetKind, "owner_id",
		gateway.Filter{}.Where("status", string(PetStatusAlive)))
}

func (c Client) City(ctx context.Context) (*City, error) {
	return resolveRef(ctx, c.rec, "city_id", CityKind)
}

func (c Client) Street(ctx context.Context) (*Street, error) {
	return resolveRef(ctx, c.rec, "street_id", StreetKind)
}
