package gateway

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// Condition es una entrada del parámetro filter de la API.
type Condition struct {
	Property string `json:"property"`
	Value    string `json:"value"`
	Operator string `json:"operator,omitempty"`
}

// Filter es lo mínimo del query builder que necesita el core: condiciones AND.
// El builder completo (sort, limit, operadores) vive fuera de este módulo.
type Filter []Condition

// Where devuelve un filtro nuevo con la condición agregada (no muta el receptor).
func (f Filter) Where(property, value string) Filter {
	out := make(Filter, 0, len(f)+1)
	out = append(out, f...)
	return append(out, Condition{Property: property, Value: value, Operator: "="})
}

func (f Filter) WhereInt(property string, value int) Filter {
	return f.Where(property, strconv.Itoa(value))
}

// Encode arma "filter=[...]" url-encoded; vacío si no hay condiciones.
func (f Filter) Encode() string {
	if len(f) == 0 {
		return ""
	}
	b, _ := json.Marshal([]Condition(f))
	return "filter=" + url.QueryEscape(string(b))
}
