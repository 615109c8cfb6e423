// Package gatewaytest trae un Gateway en memoria que cuenta llamadas, para tests.
package gatewaytest

import (
	"context"
	"net/url"
	"sync"

	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/ports/gateway"
)

type Call struct {
	Route  gateway.Route
	Query  string
	Filter gateway.Filter
}

// Fake responde con las filas cargadas por ruta, filtrando por igualdad de campos.
// Get interpreta query como key=value; las keys que las filas no tienen se ignoran (limit, sort...).
type Fake struct {
	mu    sync.Mutex
	rows  map[gateway.Route][]payload.Raw
	errs  map[gateway.Route]error
	calls []Call
}

func New() *Fake {
	return &Fake{
		rows: map[gateway.Route][]payload.Raw{},
		errs: map[gateway.Route]error{},
	}
}

// With agrega filas a una ruta.
func (f *Fake) With(route gateway.Route, rows ...payload.Raw) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[route] = append(f.rows[route], rows...)
	return f
}

// Fail hace que toda llamada a route devuelva err.
func (f *Fake) Fail(route gateway.Route, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[route] = err
	return f
}

func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *Fake) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *Fake) Get(_ context.Context, route gateway.Route, query string) ([]payload.Raw, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Route: route, Query: query})
	if err := f.errs[route]; err != nil {
		return nil, err
	}

	values, _ := url.ParseQuery(query)
	conds := gateway.Filter{}
	for k, vs := range values {
		if k == "filter" || len(vs) == 0 {
			continue
		}
		conds = conds.Where(k, vs[0])
	}
	return f.match(route, conds, true), nil
}

func (f *Fake) GetWithFilter(_ context.Context, route gateway.Route, filter gateway.Filter) ([]payload.Raw, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Route: route, Filter: filter})
	if err := f.errs[route]; err != nil {
		return nil, err
	}
	return f.match(route, filter, false), nil
}

func (f *Fake) match(route gateway.Route, conds gateway.Filter, skipUnknown bool) []payload.Raw {
	out := make([]payload.Raw, 0)
	for _, row := range f.rows[route] {
		ok := true
		for _, c := range conds {
			v, present, err := row.Scalar(c.Property)
			if !present && skipUnknown {
				continue
			}
			if err != nil || v == nil || *v != c.Value {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, row.Clone())
		}
	}
	return out
}
