package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"vetmanager-api-gateway/internal/adapters/decorators"
	mem "vetmanager-api-gateway/internal/adapters/storage/memory"
	"vetmanager-api-gateway/internal/domain/journal"
	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/middleware"
	"vetmanager-api-gateway/internal/platform/logger"
	"vetmanager-api-gateway/internal/platform/metrics"
	"vetmanager-api-gateway/internal/ports/gateway"
	"vetmanager-api-gateway/internal/ports/gateway/gatewaytest"
	"vetmanager-api-gateway/internal/router"
)

func TestHTTP_EndToEnd_PetOwnerIsJournaled(t *testing.T) {
	fake := gatewaytest.New().
		With(gateway.RoutePet, payload.Raw{
			"id": "20", "owner_id": "10", "type_id": nil, "alias": "Мурка", "sex": "female",
			"date_register": nil, "birthday": nil, "note": nil, "breed_id": nil, "old_id": nil,
			"color_id": nil, "deathnote": nil, "deathdate": nil, "chip_number": nil,
			"lab_number": nil, "status": "alive", "picture": nil, "weight": nil, "edit_date": nil,
		}).
		With(gateway.RouteClient, payload.Raw{
			"id": "10", "address": "", "home_phone": "", "work_phone": "", "note": "",
			"type_id": nil, "how_find": nil, "balance": "0", "email": "", "city": "",
			"city_id": nil, "date_register": nil, "cell_phone": "", "zip": "",
			"registration_index": nil, "vip": "0", "last_name": "Сидорова", "first_name": "Анна",
			"middle_name": "", "status": "ACTIVE", "discount": "0", "passport_series": "",
			"lab_number": "", "street_id": nil, "apartment": "", "unsubscribe": "0",
			"in_blacklist": "0", "last_visit_date": nil, "number_of_journal": "", "phone_prefix": "",
		})

	reg := prometheus.NewRegistry()
	journalSvc := journal.NewService(mem.NewJournalRepo(0))
	gw := decorators.NewObserved(fake, logger.Nop(),
		decorators.WithJournal(journalSvc),
		decorators.WithMetrics(metrics.New(reg)),
	)

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Gateway:  gw,
		Journal:  journalSvc,
		Gatherer: reg,
	}))
	defer ts.Close()

	// 1) health
	{
		st, _ := doGet(t, ts.URL+"/health", "")
		if st != http.StatusOK {
			t.Fatalf("expected 200 on /health, got %d", st)
		}
	}

	// 2) dueño de la mascota: 2 requests a Vetmanager con el mismo request id
	{
		st, body := doGet(t, ts.URL+"/pets/20/owner", "req-e2e")
		if st != http.StatusOK {
			t.Fatalf("expected 200 on owner, got %d body=%s", st, string(body))
		}
		var owner map[string]any
		if err := json.Unmarshal(body, &owner); err != nil {
			t.Fatalf("decode owner: %v", err)
		}
		if owner["id"] != float64(10) {
			t.Fatalf("expected owner id 10, got %v", owner["id"])
		}
	}

	// 3) journal
	{
		st, body := doGet(t, ts.URL+"/journal?limit=10", "")
		if st != http.StatusOK {
			t.Fatalf("expected 200 on journal, got %d body=%s", st, string(body))
		}
		var entries []map[string]any
		if err := json.Unmarshal(body, &entries); err != nil {
			t.Fatalf("decode journal: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 journal entries, got %d", len(entries))
		}
		for _, e := range entries {
			if e["correlation_id"] != "req-e2e" {
				t.Fatalf("expected correlation id req-e2e, got %v", e["correlation_id"])
			}
		}
		if entries[0]["route"] != "client" {
			t.Fatalf("expected newest entry to be the client lookup, got %v", entries[0]["route"])
		}
	}

	// 4) métricas
	{
		st, body := doGet(t, ts.URL+"/metrics", "")
		if st != http.StatusOK {
			t.Fatalf("expected 200 on /metrics, got %d", st)
		}
		if !strings.Contains(string(body), "vetmanager_gateway_requests_total") {
			t.Fatalf("expected gateway request counter in /metrics")
		}
	}
}

func TestHTTP_NoJournalNoMetrics(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Gateway: gatewaytest.New()}))
	defer ts.Close()

	if st, _ := doGet(t, ts.URL+"/journal", ""); st != http.StatusNotFound {
		t.Fatalf("expected 404 without journal, got %d", st)
	}
	if st, _ := doGet(t, ts.URL+"/metrics", ""); st != http.StatusNotFound {
		t.Fatalf("expected 404 without gatherer, got %d", st)
	}
}

func TestHTTP_HealthReportsDependencies(t *testing.T) {
	var down error
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Gateway: gatewaytest.New(),
		Health:  func(context.Context) error { return down },
	}))
	defer ts.Close()

	if st, body := doGet(t, ts.URL+"/health", ""); st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", st, string(body))
	}

	down = errors.New("redis: connection refused")
	if st, _ := doGet(t, ts.URL+"/health", ""); st != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when a dependency is down, got %d", st)
	}
}

func TestHTTP_RequestIDIsEchoed(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Gateway: gatewaytest.New()}))
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set(middleware.HeaderRequestID, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get(middleware.HeaderRequestID); got != "abc-123" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}

func doGet(t *testing.T, url, requestID string) (int, []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if requestID != "" {
		req.Header.Set(middleware.HeaderRequestID, requestID)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}
