// Package fetch tiene las operaciones "get by id" / "get all" / "get by parent id"
// compartidas por todas las entidades. Cada entidad aporta su Kind (ruta + constructor).
package fetch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/ports/gateway"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAmbiguousResult = errors.New("ambiguous result")
)

// Kind describe una entidad que se puede pedir a la API.
type Kind[T any] struct {
	Route     gateway.Route
	Construct func(gw gateway.Gateway, raw payload.Raw) (T, error)
}

// FromRawSequence construye todos los items o ninguno.
func FromRawSequence[T any](gw gateway.Gateway, kind Kind[T], raws []payload.Raw) ([]T, error) {
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := kind.Construct(gw, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// GetByID pide la lista filtrada por id; exige exactamente una fila.
func GetByID[T any](ctx context.Context, gw gateway.Gateway, kind Kind[T], id int) (T, error) {
	return GetOne(ctx, gw, kind, gateway.Filter{}.WhereInt("id", id))
}

// GetOne es GetByID con un filtro arbitrario que se supone único.
func GetOne[T any](ctx context.Context, gw gateway.Gateway, kind Kind[T], filter gateway.Filter) (T, error) {
	var zero T

	raws, err := gw.GetWithFilter(ctx, kind.Route, filter)
	if err != nil {
		return zero, err
	}
	switch len(raws) {
	case 0:
		return zero, fmt.Errorf("%w: %s %s", ErrNotFound, kind.Route, describe(filter))
	case 1:
		return kind.Construct(gw, raws[0])
	default:
		return zero, fmt.Errorf("%w: %s %s returned %d rows", ErrAmbiguousResult, kind.Route, describe(filter), len(raws))
	}
}

// GetAll pide la lista sin filtro.
func GetAll[T any](ctx context.Context, gw gateway.Gateway, kind Kind[T]) ([]T, error) {
	raws, err := gw.Get(ctx, kind.Route, "")
	if err != nil {
		return nil, err
	}
	return FromRawSequence(gw, kind, raws)
}

// GetByFilter pide la lista con un filtro y devuelve todas las filas.
func GetByFilter[T any](ctx context.Context, gw gateway.Gateway, kind Kind[T], filter gateway.Filter) ([]T, error) {
	raws, err := gw.GetWithFilter(ctx, kind.Route, filter)
	if err != nil {
		return nil, err
	}
	return FromRawSequence(gw, kind, raws)
}

// GetByParentID arma "parentKey=ID" y le agrega extra tal cual (sin "?" ni "&" inicial).
// extra no se valida: es un fragmento crudo de query string que decide el caller.
func GetByParentID[T any](ctx context.Context, gw gateway.Gateway, kind Kind[T], parentKey string, parentID int, extra string) ([]T, error) {
	query := fmt.Sprintf("%s=%d", parentKey, parentID)
	if extra = strings.TrimLeft(extra, "?&"); extra != "" {
		query += "&" + extra
	}
	raws, err := gw.Get(ctx, kind.Route, query)
	if err != nil {
		return nil, err
	}
	return FromRawSequence(gw, kind, raws)
}

func describe(f gateway.Filter) string {
	parts := make([]string, 0, len(f))
	for _, c := range f {
		parts = append(parts, c.Property+"="+c.Value)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
