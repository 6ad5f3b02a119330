package schedule

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"maternity-journal/internal/middleware"
	"maternity-journal/internal/platform/civil"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, upcomingDays int) {
	if upcomingDays <= 0 {
		upcomingDays = DefaultUpcomingDays
	}

	r.Get("/me/schedule.ics", exportICSHandler(svc))
	r.Route("/me/schedule", func(sr chi.Router) {
		sr.Get("/", listEntriesHandler(svc))
		sr.Post("/", createEntriesHandler(svc))
		sr.Post("/preview", previewHandler(svc))
		sr.Get("/upcoming", upcomingHandler(svc, upcomingDays))
		sr.Post("/{entryID}/toggle", toggleEntryHandler(svc))
		sr.Delete("/{entryID}", deleteEntryHandler(svc))
	})
}

type createEntryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`                 // YYYY-MM-DD
	Time        string `json:"time,omitempty"`       // HH:MM, default 09:00
	Category    string `json:"category,omitempty"`   // mood|weight|photo|medical|appointment|general
	Recurrence  string `json:"recurrence,omitempty"` // none|daily|weekly|monthly
	Until       string `json:"until,omitempty"`      // YYYY-MM-DD, requerido si hay recurrencia
}

type entryResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Date           civil.Date `json:"date"`
	Time           TimeOfDay  `json:"time"`
	Category       Category   `json:"category"`
	Completed      bool       `json:"completed"`
	Recurring      bool       `json:"recurring"`
	RecurrenceUnit Unit       `json:"recurrence_unit,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type previewResponse struct {
	Count int          `json:"count"`
	Dates []civil.Date `json:"dates"`
}

// createEntriesHandler godoc
// @Summary Crear evento (único o recurrente)
// @Description Crea una entrada o expande la recurrencia (daily/weekly/monthly) hasta `until` inclusive y guarda una fila por ocurrencia. Mensual conserva el día del mes y cae en el último día en meses más cortos.
// @Tags schedule
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createEntryRequest true "Evento"
// @Success 201 {array} entryResponse
// @Failure 400 {string} string "invalid json / regla inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 503 {string} string "storage unavailable"
// @Router /me/schedule [post]
func createEntriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.OwnerID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		in, ok := decodeCreateInput(w, r)
		if !ok {
			return
		}
		if strings.TrimSpace(in.Title) == "" {
			http.Error(w, "title is required", http.StatusBadRequest)
			return
		}

		entries, err := svc.Create(r.Context(), claims.OwnerID, in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toEntryResponses(entries))
	}
}

// previewHandler godoc
// @Summary Previsualizar recurrencia
// @Description Expande la regla y devuelve las fechas que se crearían, sin guardar nada.
// @Tags schedule
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createEntryRequest true "Regla (title se ignora)"
// @Success 200 {object} previewResponse
// @Failure 400 {string} string "invalid json / regla inválida"
// @Failure 401 {string} string "unauthorized"
// @Router /me/schedule/preview [post]
func previewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		in, ok := decodeCreateInput(w, r)
		if !ok {
			return
		}

		dates, err := svc.Preview(in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, previewResponse{Count: len(dates), Dates: dates})
	}
}

// listEntriesHandler godoc
// @Summary Listar agenda
// @Description Entradas del dueño en [from, to] ordenadas por fecha y hora. Sin filtros: del 1° del mes actual al fin de dos meses después.
// @Tags schedule
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {array} entryResponse
// @Failure 400 {string} string "invalid from/to"
// @Failure 401 {string} string "unauthorized"
// @Failure 503 {string} string "storage unavailable"
// @Router /me/schedule [get]
func listEntriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.OwnerID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		from, to, ok := parseRange(w, r, svc)
		if !ok {
			return
		}

		entries, err := svc.List(r.Context(), claims.OwnerID, from, to)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEntryResponses(entries))
	}
}

// upcomingHandler godoc
// @Summary Próximos eventos
// @Description Entradas de hoy a hoy+days (inclusive).
// @Tags schedule
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param days query int false "Ventana en días (default según config)"
// @Success 200 {array} entryResponse
// @Failure 400 {string} string "invalid days"
// @Failure 401 {string} string "unauthorized"
// @Failure 503 {string} string "storage unavailable"
// @Router /me/schedule/upcoming [get]
func upcomingHandler(svc *Service, defaultDays int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.OwnerID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		days := defaultDays
		if v := strings.TrimSpace(r.URL.Query().Get("days")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				http.Error(w, "invalid days", http.StatusBadRequest)
				return
			}
			days = n
		}

		entries, err := svc.Upcoming(r.Context(), claims.OwnerID, days)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEntryResponses(entries))
	}
}

// toggleEntryHandler godoc
// @Summary Marcar/desmarcar como completado
// @Tags schedule
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param entryID path string true "Entry ID"
// @Success 200 {object} entryResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "not found"
// @Failure 503 {string} string "storage unavailable"
// @Router /me/schedule/{entryID}/toggle [post]
func toggleEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.OwnerID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		e, err := svc.Toggle(r.Context(), claims.OwnerID, chi.URLParam(r, "entryID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEntryResponse(e))
	}
}

// deleteEntryHandler godoc
// @Summary Borrar una ocurrencia
// @Description Borra solo esta entrada; el resto de la serie recurrente queda.
// @Tags schedule
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param entryID path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "not found"
// @Failure 503 {string} string "storage unavailable"
// @Router /me/schedule/{entryID} [delete]
func deleteEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.OwnerID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), claims.OwnerID, chi.URLParam(r, "entryID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// exportICSHandler godoc
// @Summary Exportar agenda (iCalendar)
// @Description Mismo rango que el listado, serializado como text/calendar para suscribirse desde otro calendario.
// @Tags schedule
// @Produce text/calendar
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {string} string "VCALENDAR"
// @Failure 400 {string} string "invalid from/to"
// @Failure 401 {string} string "unauthorized"
// @Failure 503 {string} string "storage unavailable"
// @Router /me/schedule.ics [get]
func exportICSHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.OwnerID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		from, to, ok := parseRange(w, r, svc)
		if !ok {
			return
		}

		// se arma en memoria para poder devolver 503 si falla el storage
		var buf bytes.Buffer
		if err := svc.ExportICS(r.Context(), &buf, claims.OwnerID, from, to); err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="schedule.ics"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

func decodeCreateInput(w http.ResponseWriter, r *http.Request) (CreateInput, bool) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return CreateInput{}, false
	}

	date, err := civil.Parse(req.Date)
	if err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return CreateInput{}, false
	}

	tod := DefaultTime
	if strings.TrimSpace(req.Time) != "" {
		tod, err = ParseTimeOfDay(req.Time)
		if err != nil {
			http.Error(w, "time must be HH:MM", http.StatusBadRequest)
			return CreateInput{}, false
		}
	}

	cat, err := ParseCategory(req.Category)
	if err != nil {
		http.Error(w, "invalid category", http.StatusBadRequest)
		return CreateInput{}, false
	}

	unit, err := ParseUnit(req.Recurrence)
	if err != nil {
		http.Error(w, "invalid recurrence", http.StatusBadRequest)
		return CreateInput{}, false
	}

	var until civil.Date
	if strings.TrimSpace(req.Until) != "" {
		until, err = civil.Parse(req.Until)
		if err != nil {
			http.Error(w, "until must be YYYY-MM-DD", http.StatusBadRequest)
			return CreateInput{}, false
		}
	}

	return CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Time:        tod,
		Category:    cat,
		Unit:        unit,
		Until:       until,
	}, true
}

func parseRange(w http.ResponseWriter, r *http.Request, svc *Service) (civil.Date, civil.Date, bool) {
	from, to := svc.DefaultRange()
	q := r.URL.Query()

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		d, err := civil.Parse(v)
		if err != nil {
			http.Error(w, "invalid from", http.StatusBadRequest)
			return civil.Date{}, civil.Date{}, false
		}
		from = d
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		d, err := civil.Parse(v)
		if err != nil {
			http.Error(w, "invalid to", http.StatusBadRequest)
			return civil.Date{}, civil.Date{}, false
		}
		to = d
	}
	if to.Before(from) {
		http.Error(w, "to must not be before from", http.StatusBadRequest)
		return civil.Date{}, civil.Date{}, false
	}
	return from, to, true
}

func toEntryResponse(e Entry) entryResponse {
	return entryResponse{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Date:           e.Date,
		Time:           e.Time,
		Category:       e.Category,
		Completed:      e.Completed,
		Recurring:      e.Recurring,
		RecurrenceUnit: e.Unit,
		CreatedAt:      e.CreatedAt,
	}
}

func toEntryResponses(entries []Entry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidRule):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrStoreUnavailable):
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (gestation/schedule) para no crear un paquete de helpers demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
