package entities

import (
	"context"

	"vetmanager-api-gateway/internal/domain/fetch"
	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/ports/gateway"
)

type CityType struct {
	rec record

	ID    int
	Title string // "Город", "Поселок", ...
}

var CityTypeKind = fetch.Kind[CityType]{Route: gateway.RouteCityType, Construct: NewCityType}

func NewCityType(gw gateway.Gateway, raw payload.Raw) (CityType, error) {
	r := payload.NewReader("CityType", raw)
	ct := CityType{
		ID:    r.Int("id"),
		Title: r.String("title"),
	}
	if err := r.Err(); err != nil {
		return CityType{}, err
	}
	ct.rec = newRecord(gw, "CityType", raw)
	return ct, nil
}

func NewCityTypes(gw gateway.Gateway, raws []payload.Raw) ([]CityType, error) {
	return fetch.FromRawSequence(gw, CityTypeKind, raws)
}

func (ct CityType) Self(ctx context.Context) (CityType, error) {
	return resolveKey(ctx, ct.rec, "id", CityTypeKind)
}

type City struct {
	rec record

	ID     int
	Title  string
	TypeID *int
}

var CityKind = fetch.Kind[City]{Route: gateway.RouteCity, Construct: NewCity}

func NewCity(gw gateway.Gateway, raw payload.Raw) (City, error) {
	r := payload.NewReader("City", raw)
	c := City{
		ID:     r.Int("id"),
		Title:  r.String("title"),
		TypeID: r.OptionalID("type_id"),
	}
	if err := r.Err(); err != nil {
		return City{}, err
	}
	c.rec = newRecord(gw, "City", raw)
	return c, nil
}

func NewCities(gw gateway.Gateway, raws []payload.Raw) ([]City, error) {
	return fetch.FromRawSequence(gw, CityKind, raws)
}

func (c City) Self(ctx context.Context) (City, error) {
	return resolveKey(ctx, c.rec, "id", CityKind)
}

func (c City) Type(ctx context.Context) (*CityType, error) {
	return resolveRef(ctx, c.rec, "type_id", CityTypeKind)
}

type Street struct {
	rec record

	ID     int
	Title  string
	CityID *int
	Type   string // street, avenue, ... (la API no garantiza un conjunto cerrado)
}

var StreetKind = fetch.Kind[Street]{Route: gateway.RouteStreet, Construct: NewStreet}

func NewStreet(gw gateway.Gateway, raw payload.Raw) (Street, error) {
	r := payload.NewReader("Street", raw)
	s := Street{
		ID:     r.Int("id"),
		Title:  r.String("title"),
		CityID: r.OptionalID("city_id"),
		Type:   payload.ToString(r.OptionalString("type")),
	}
	if err := r.Err(); err != nil {
		return Street{}, err
	}
	s.rec = newRecord(gw, "Street", raw)
	return s, nil
}

func NewStreets(gw gateway.Gateway, raws []payload.Raw) ([]Street, error) {
	return fetch.FromRawSequence(gw, StreetKind, raws)
}

func (s Street) Self(ctx context.Context) (Street, error) {
	return resolveKey(ctx, s.rec, "id", StreetKind)
}

func (s Street) City(ctx context.Context) (*City, error) {
	return resolveRef(ctx, s.rec, "city_id", CityKind)
}
