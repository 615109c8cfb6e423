package explorer

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vetmanager-api-gateway/internal/domain/fetch"
	"vetmanager-api-gateway/internal/middleware"
	"vetmanager-api-gateway/internal/platform/logger"
	"vetmanager-api-gateway/internal/ports/gateway"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	h := handlers{svc: svc, log: log}

	r.Route("/clients/{id}", func(cr chi.Router) {
		cr.Get("/", h.getClient)
		cr.Get("/summary", h.getClientSummary)
		cr.Get("/pets", h.listClientPets)
		cr.Get("/medcards", h.listClientMedcards)
	})
	r.Route("/pets/{id}", func(pr chi.Router) {
		pr.Get("/", h.getPet)
		pr.Get("/owner", h.getPetOwner)
	})
	r.Get("/users", h.listUsers)
	r.Route("/users/{id}", func(ur chi.Router) {
		ur.Get("/", h.getUser)
		ur.Get("/position", h.getUserPosition)
	})
	r.Get("/positions", h.listPositions)
	r.Get("/positions/{id}", h.getPosition)
}

type handlers struct {
	svc *Service
	log logger.Logger
}

// getClient godoc
// @Summary Obtener cliente
// @Description Devuelve un cliente de Vetmanager por id. Cada llamada va a la API (sin cache salvo que GATEWAY_CACHE_TTL esté configurado).
// @Tags clients
// @Produce json
// @Param id path int true "ID del cliente"
// @Success 200 {object} ClientView
// @Failure 400 {string} string "id inválido"
// @Failure 404 {string} string "not found"
// @Failure 502 {string} string "error de la API de Vetmanager"
// @Failure 500 {string} string "respuesta con campos inválidos"
// @Router /clients/{id} [get]
func (h handlers) getClient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	v, err := h.svc.Client(r.Context(), id)
	h.respond(w, r, v, err)
}

// getClientSummary godoc
// @Summary Resumen del cliente
// @Description Cliente con sus mascotas vivas y sus consultas. Mascotas y consultas se piden en paralelo.
// @Tags clients
// @Produce json
// @Param id path int true "ID del cliente"
// @Success 200 {object} ClientSummaryView
// @Failure 400 {string} string "id inválido"
// @Failure 404 {string} string "not found"
// @Failure 502 {string} string "error de la API de Vetmanager"
// @Failure 500 {string} string "respuesta con campos inválidos"
// @Router /clients/{id}/summary [get]
func (h handlers) getClientSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	v, err := h.svc.ClientSummary(r.Context(), id)
	h.respond(w, r, v, err)
}

// listClientPets godoc
// @Summary Mascotas vivas del cliente
// @Tags clients
// @Produce json
// @Param id path int true "ID del cliente"
// @Success 200 {array} PetView
// @Failure 400 {string} string "id inválido"
// @Failure 404 {string} string "not found"
// @Failure 502 {string} string "error de la API de Vetmanager"
// @Router /clients/{id}/pets [get]
func (h handlers) listClientPets(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	v, err := h.svc.ClientPets(r.Context(), id)
	h.respond(w, r, v, err)
}

// listClientMedcards godoc
// @Summary Consultas del cliente
// @Description Consultas de todas las mascotas del cliente. El resto de la query string (limit, offset, sort...) se reenvía tal cual a Vetmanager.
// @Tags clients
// @Produce json
// @Param id path int true "ID del cliente"
// @Param limit query int false "Se reenvía a Vetmanager"
// @Success 200 {array} MedcardView
// @Failure 400 {string} string "id inválido"
// @Failure 502 {string} string "error de la API de Vetmanager"
// @Failure 500 {string} string "respuesta con campos inválidos"
// @Router /clients/{id}/medcards [get]
func (h handlers) listClientMedcards(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	v, err := h.svc.ClientMedcards(r.Context(), id, r.URL.RawQuery)
	h.respond(w, r, v, err)
}

// getPet godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} PetView
// @Failure 400 {string} string "id inválido"
// @Failure 404 {string} string "not found"
// @Failure 502 {string} string "error de la API de Vetmanager"
// @Failure 500 {string} string "respuesta con campos inválidos"
// @Router /pets/{id} [get]
func (h handlers) getPet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	v, err := h.svc.Pet(r.Context(), id)
	h.respond(w, r, v, err)
}

// getPetOwner godoc
// @Summary Dueño de la mascota
// @Description Resuelve la relación owner. Si la mascota no tiene dueño devuelve 404 sin pedir el cliente.
// @Tags pets
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} ClientView
// @Failure 400 {string} string "id inválido"
// @Failure 404 {string} string "not found / sin dueño"
// @Failure 502 {string} string "error de la API de Vetmanager"
// @Router /pets/{id}/owner [get]
func (h handlers) getPetOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	v, err := h.svc.PetOwner(r.Context(), id)
	h.respond(w, r, v, err)
}

// listUsers godoc
// @Summary Listar usuarios
// @Tags users
// @Produce json
// @Success 200 {array} UserView
// @Failure 502 {string} string "error de la API de Vetmanager"
// @Failure 500 {string} string "respuesta con campos inválidos"
// @Router /users [get]
func (h handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Users(r.Context())
	h.respond(w, r, v, err)
}

// getUser godoc
// @Summary Obtener usuario
// @Tags users
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {object} UserView
// @Failure 400 {string} string "id inválido"
// @Failure 404 {string} string "not found"
// @Failure 502 {string} string "error de la API de Vetmanager"
// @Router /users/{id} [get]
func (h handlers) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	v, err := h.svc.User(r.Context(), id)
	h.respond(w, r, v, err)
}

// getUserPosition godoc
// @Summary Cargo del usuario
// @Description Usa el cargo embebido si la API lo mandó; si no, lo pide por position_id.
// @Tags users
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {object} PositionView
// @Failure 400 {string} string "id inválido"
// @Failure 404 {string} string "not found / sin cargo"
// @Failure 502 {string} string "error de la API de Vetmanager"
// @Router /users/{id}/position [get]
func (h handlers) getUserPosition(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	v, err := h.svc.UserPosition(r.Context(), id)
	h.respond(w, r, v, err)
}

// listPositions godoc
// @Summary Listar cargos
// @Tags positions
// @Produce json
// @Success 200 {array} PositionView
// @Failure 502 {string} string "error de la API de Vetmanager"
// @Router /positions [get]
func (h handlers) listPositions(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Positions(r.Context())
	h.respond(w, r, v, err)
}

// getPosition godoc
// @Summary Obtener cargo
// @Tags positions
// @Produce json
// @Param id path int true "ID del cargo"
// @Success 200 {object} PositionView
// @Failure 400 {string} string "id inválido"
// @Failure 404 {string} string "not found"
// @Failure 502 {string} string "error de la API de Vetmanager"
// @Router /positions/{id} [get]
func (h handlers) getPosition(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	v, err := h.svc.Position(r.Context(), id)
	h.respond(w, r, v, err)
}

func (h handlers) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "id must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h handlers) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, v)
		return
	}

	status := StatusFor(err)
	fields := map[string]any{
		"path":           r.URL.Path,
		"status":         status,
		"error":          err.Error(),
		"correlation_id": middleware.CorrelationID(r.Context()),
	}
	if status >= http.StatusInternalServerError {
		h.log.Error("explorer request failed", fields)
	} else {
		h.log.Info("explorer request rejected", fields)
	}

	switch status {
	case http.StatusNotFound:
		http.Error(w, err.Error(), status)
	case http.StatusBadGateway:
		http.Error(w, "vetmanager api error", status)
	default:
		http.Error(w, "internal error", status)
	}
}

// StatusFor traduce los errores del core a status HTTP.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, fetch.ErrNotFound), errors.Is(err, ErrNoRelation):
		return http.StatusNotFound
	case errors.Is(err, ErrUnknownEntity):
		return http.StatusBadRequest
	case errors.Is(err, gateway.ErrRequest),
		errors.Is(err, gateway.ErrResponseEmpty),
		errors.Is(err, gateway.ErrResponseFormat),
		errors.Is(err, fetch.ErrAmbiguousResult):
		return http.StatusBadGateway
	default:
		// construcción fallida o record sin gateway
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
