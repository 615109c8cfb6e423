package journal

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/journal", listJournalHandler(svc))
}

// entryResponse es un request a Vetmanager registrado en el journal.
type entryResponse struct {
	ID            string    `json:"id"`
	CorrelationID string    `json:"correlation_id"`
	Route         string    `json:"route"`
	Query         string    `json:"query"`
	Rows          int       `json:"rows"`
	Error         string    `json:"error,omitempty"`
	DurationMS    int64     `json:"duration_ms"`
	RequestedAt   time.Time `json:"requested_at"`
}

// listJournalHandler godoc
// @Summary Listar requests recientes a Vetmanager
// @Description Devuelve los últimos requests que el gateway hizo a la API de Vetmanager, el más nuevo primero. Sirve para ver cuántos requests dispara cada relación lazy.
// @Tags journal
// @Produce json
// @Param limit query int false "Máximo de entradas a devolver (1-500). Por defecto 50"
// @Success 200 {array} entryResponse
// @Failure 400 {string} string "limit inválido"
// @Failure 500 {string} string "internal error"
// @Router /journal [get]
func listJournalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = n
		}

		items, err := svc.ListRecent(r.Context(), limit)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]entryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEntryResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toEntryResponse(e Entry) entryResponse {
	return entryResponse{
		ID:            e.ID,
		CorrelationID: e.CorrelationID,
		Route:         e.Route,
		Query:         e.Query,
		Rows:          e.Rows,
		Error:         e.Error,
		DurationMS:    e.Duration.Milliseconds(),
		RequestedAt:   e.RequestedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
