package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/ports/gateway"
	"vetmanager-api-gateway/internal/ports/gateway/gatewaytest"
)

func breedRow(id, title, petType string) payload.Raw {
	return payload.Raw{"id": id, "title": title, "pet_type_id": petType}
}

func run(t *testing.T, gw gateway.Gateway, args ...string) (string, error) {
	t.Helper()
	closed := false
	cmd := NewRootCommand(func(context.Context) (gateway.Gateway, func(), error) {
		return gw, func() { closed = true }, nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	if err == nil && len(args) > 0 && args[0] != "entities" {
		assert.True(t, closed, "el gateway se cierra al terminar")
	}
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(nil)
	for _, name := range []string{"get", "list", "medcards", "summary", "entities"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "json", formatFlag.DefValue)
}

func TestMedcards_Help(t *testing.T) {
	cmd := NewRootCommand(nil)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"medcards", "--help"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "--query is appended verbatim to the Vetmanager query string.")
	assert.Contains(t, out.String(), "vetctl medcards 10 --query 'limit=5&offset=10'")
}

func TestGet_JSON(t *testing.T) {
	gw := gatewaytest.New().With(gateway.RouteBreed, breedRow("1", "Мейн-кун", "2"))

	out, err := run(t, gw, "get", "breed", "1")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Мейн-кун", got["title"])
	assert.Equal(t, float64(2), got["pet_type_id"])
}

func TestList_YAML(t *testing.T) {
	gw := gatewaytest.New().With(gateway.RouteBreed, breedRow("1", "Мейн-кун", "2"), breedRow("2", "Сфинкс", "2"))

	out, err := run(t, gw, "list", "breed", "--format", "yaml")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Сфинкс", got[1]["title"])
}

func TestMedcards_ForwardsQuery(t *testing.T) {
	gw := gatewaytest.New()

	out, err := run(t, gw, "medcards", "10", "--query", "limit=5")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)

	calls := gw.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, gateway.RouteMedicalCardsByClient, calls[0].Route)
	assert.Equal(t, "client_id=10&limit=5", calls[0].Query)
}

func TestExitCodes(t *testing.T) {
	gw := gatewaytest.New().Fail(gateway.RouteUser, gateway.ErrResponseEmpty)

	_, err := run(t, gw, "get", "breed", "7")
	assert.Equal(t, ExitNotFound, GetExitCode(err))

	_, err = run(t, gw, "get", "invoice", "1")
	assert.Equal(t, ExitUsage, GetExitCode(err))

	_, err = run(t, gw, "get", "breed", "abc")
	assert.Equal(t, ExitUsage, GetExitCode(err))

	_, err = run(t, gw, "list", "user")
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.ErrorIs(t, err, gateway.ErrResponseEmpty)

	_, err = run(t, gw, "entities", "--format", "xml")
	assert.Equal(t, ExitUsage, GetExitCode(err))
}

func TestOpenGatewayFailure(t *testing.T) {
	boom := errors.New("VETMANAGER_BASE_URL is required")
	cmd := NewRootCommand(func(context.Context) (gateway.Gateway, func(), error) {
		return nil, nil, boom
	})
	cmd.SetArgs([]string{"list", "user"})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	assert.Equal(t, ExitUsage, GetExitCode(err))
	assert.ErrorIs(t, err, boom)
}

func TestEntities(t *testing.T) {
	out, err := run(t, nil, "entities")
	require.NoError(t, err)

	var got []string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Contains(t, got, "client")
	assert.Contains(t, got, "street")
}
