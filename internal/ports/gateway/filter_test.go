package gateway

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Encode(t *testing.T) {
	assert.Equal(t, "", Filter{}.Encode())

	f := Filter{}.WhereInt("owner_id", 5).Where("status", "alive")
	enc := f.Encode()

	q, err := url.ParseQuery(enc)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"property":"owner_id","value":"5","operator":"="},{"property":"status","value":"alive","operator":"="}]`,
		q.Get("filter"),
	)
}

func TestFilter_WhereDoesNotMutate(t *testing.T) {
	base := Filter{}.Where("a", "1")
	_ = base.Where("b", "2")
	assert.Len(t, base, 1)
}

func TestRoute_DataKey(t *testing.T) {
	assert.Equal(t, "client", RouteClient.DataKey())
	assert.Equal(t, "medicalcards", RouteMedicalCardsByClient.DataKey())
}
