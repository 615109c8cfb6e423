package vetmanager

import (
	"fmt"

	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/ports/gateway"
)

// envelope es la respuesta estándar:
//
//	{"success": true, "message": "...", "data": {"totalCount": 2, "client": [...]}}
type envelope struct {
	Success *bool          `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func (e envelope) items(route gateway.Route) ([]payload.Raw, error) {
	if e.Success != nil && !*e.Success {
		return nil, fmt.Errorf("%w: %s: %s", gateway.ErrRequest, route, e.Message)
	}
	if e.Data == nil {
		return nil, fmt.Errorf("%w: %s: no data", gateway.ErrResponseEmpty, route)
	}

	v, ok := e.Data[route.DataKey()]
	if !ok {
		return nil, fmt.Errorf("%w: %s: no %q in data", gateway.ErrResponseEmpty, route, route.DataKey())
	}

	list, ok := v.([]any)
	if !ok {
		// null con totalCount 0
		if v == nil {
			return []payload.Raw{}, nil
		}
		return nil, fmt.Errorf("%w: %s: %q is %T, want list", gateway.ErrResponseFormat, route, route.DataKey(), v)
	}

	out := make([]payload.Raw, 0, len(list))
	for i, it := range list {
		m, ok := it.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s: item %d is %T", gateway.ErrResponseFormat, route, i, it)
		}
		out = append(out, payload.Raw(m))
	}
	return out, nil
}
