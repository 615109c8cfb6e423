// Package entities tiene los records tipados que se hidratan desde la API de Vetmanager
// y sus relaciones lazy (cada acceso es un request nuevo, sin cache).
package entities

import (
	"context"
	"errors"

	"vetmanager-api-gateway/internal/domain/fetch"
	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/ports/gateway"
)

// ErrDetached: el record se construyó sin gateway y no puede resolver relaciones.
var ErrDetached = errors.New("record has no gateway")

// record guarda lo que necesitan las relaciones: el gateway y un snapshot del payload.
// Los foreign keys se releen del snapshot, no de los campos exportados (que el caller puede pisar).
type record struct {
	gw     gateway.Gateway
	entity string
	raw    payload.Raw
}

func newRecord(gw gateway.Gateway, entity string, raw payload.Raw) record {
	return record{gw: gw, entity: entity, raw: raw.Clone()}
}

// ref lee un foreign key opcional; nil si viene null, vacío o "0".
func (r record) ref(field string) (*int, error) {
	rd := payload.NewReader(r.entity, r.raw)
	id := rd.OptionalID(field)
	return id, rd.Err()
}

// key lee un id requerido.
func (r record) key(field string) (int, error) {
	rd := payload.NewReader(r.entity, r.raw)
	id := rd.Int(field)
	return id, rd.Err()
}

func (r record) attached() (gateway.Gateway, error) {
	if r.gw == nil {
		return nil, ErrDetached
	}
	return r.gw, nil
}

// resolveRef: relación single-by-id opcional. FK nulo => nil sin tocar la red.
func resolveRef[T any](ctx context.Context, r record, field string, kind fetch.Kind[T]) (*T, error) {
	id, err := r.ref(field)
	if err != nil || id == nil {
		return nil, err
	}
	gw, err := r.attached()
	if err != nil {
		return nil, err
	}
	v, err := fetch.GetByID(ctx, gw, kind, *id)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// resolveKey: relación single-by-id con FK requerido (o self-refresh con "id").
func resolveKey[T any](ctx context.Context, r record, field string, kind fetch.Kind[T]) (T, error) {
	var zero T
	id, err := r.key(field)
	if err != nil {
		return zero, err
	}
	gw, err := r.attached()
	if err != nil {
		return zero, err
	}
	return fetch.GetByID(ctx, gw, kind, id)
}

// resolveChildren: colección por parent id usando el filtro de la API.
func resolveChildren[T any](ctx context.Context, r record, idField string, kind fetch.Kind[T], parentKey string, extra gateway.Filter) ([]T, error) {
	id, err := r.key(idField)
	if err != nil {
		return nil, err
	}
	gw, err := r.attached()
	if err != nil {
		return nil, err
	}
	filter := gateway.Filter{}.WhereInt(parentKey, id)
	filter = append(filter, extra...)
	return fetch.GetByFilter(ctx, gw, kind, filter)
}

// Embedded es un sub-objeto que la API puede mandar precargado.
// Present=false: la key no vino. Present=true con Value=nil: vino null/vacío.
type Embedded[T any] struct {
	Value   *T
	Present bool
}

func embedded[T any](r *payload.Reader, field string, construct func(payload.Raw) (T, error)) Embedded[T] {
	v, present := payload.Nested(r, field, construct)
	return Embedded[T]{Value: v, Present: present}
}
