package payload

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Raw es un item tal como lo entrega la API: field (snake_case) -> string | nil | objeto/lista anidados.
// Los adapters decodifican con json.Decoder.UseNumber, así que también puede llegar json.Number.
type Raw map[string]any

// Clone hace una copia profunda; los records guardan su snapshot así.
func (r Raw) Clone() Raw {
	if r == nil {
		return nil
	}
	out := make(Raw, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return map[string]any(Raw(t).Clone())
	case Raw:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}

// Scalar devuelve el valor de key como string crudo.
// present=false si la key no existe; value=nil si viene null.
func (r Raw) Scalar(key string) (value *string, present bool, err error) {
	v, ok := r[key]
	if !ok {
		return nil, false, nil
	}
	s, err := scalarString(v)
	if err != nil {
		return nil, true, err
	}
	return s, true, nil
}

// Object devuelve el sub-objeto embebido en key.
// present=false si la key no existe; (nil, true) si viene null o vacío.
func (r Raw) Object(key string) (Raw, bool, error) {
	v, ok := r[key]
	if !ok {
		return nil, false, nil
	}
	switch t := v.(type) {
	case nil:
		return nil, true, nil
	case map[string]any:
		if len(t) == 0 {
			return nil, true, nil
		}
		return Raw(t), true, nil
	case Raw:
		if len(t) == 0 {
			return nil, true, nil
		}
		return t, true, nil
	case []any:
		// la API manda [] para un objeto vacío
		if len(t) == 0 {
			return nil, true, nil
		}
	}
	return nil, true, &MalformedFieldError{Kind: "object", Value: fmt.Sprintf("%v", v)}
}

func scalarString(v any) (*string, error) {
	var s string
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		s = t
	case json.Number:
		s = t.String()
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	case bool:
		if t {
			s = "1"
		} else {
			s = "0"
		}
	default:
		return nil, &MalformedFieldError{Kind: "scalar", Value: fmt.Sprintf("%v", v)}
	}
	return &s, nil
}
