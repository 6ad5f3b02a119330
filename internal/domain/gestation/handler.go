package gestation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"maternity-journal/internal/middleware"
	"maternity-journal/internal/platform/civil"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/me/gestation", func(gr chi.Router) {
		gr.Get("/", getGestationHandler(svc))
		gr.Put("/anchor", saveAnchorHandler(svc))
	})
}

type saveAnchorRequest struct {
	LastPeriodDate string `json:"last_period_date"` // YYYY-MM-DD
}

type countdownResponse struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// gestationResponse es lo que consume cualquier pantalla que muestre progreso.
// Si configured=false el resto de los campos viene vacío y la UI muestra el setup.
type gestationResponse struct {
	Configured      bool               `json:"configured"`
	LastPeriodDate  *civil.Date        `json:"last_period_date,omitempty"`
	Week            int                `json:"week,omitempty"`
	DayOfWeek       int                `json:"day_of_week,omitempty"`
	Trimester       int                `json:"trimester,omitempty"`
	DueDate         *civil.Date        `json:"due_date,omitempty"`
	DaysElapsed     int                `json:"days_elapsed,omitempty"`
	DaysRemaining   int                `json:"days_remaining"`
	ProgressPercent int                `json:"progress_percent"`
	Overdue         bool               `json:"overdue"`
	DaysOverdue     int                `json:"days_overdue,omitempty"`
	Countdown       *countdownResponse `json:"countdown,omitempty"`
}

// getGestationHandler godoc
// @Summary Snapshot gestacional
// @Description Calcula semana, trimestre, DPP, días restantes y progreso a partir de la LMP guardada. Si el dueño todavía no cargó la LMP devuelve `configured=false` (no es error). Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags gestation
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} gestationResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 503 {string} string "storage unavailable"
// @Router /me/gestation [get]
func getGestationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.OwnerID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		snap, err := svc.Snapshot(r.Context(), claims.OwnerID)
		if err != nil {
			if errors.Is(err, ErrNotConfigured) {
				writeJSON(w, http.StatusOK, gestationResponse{Configured: false})
				return
			}
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toGestationResponse(snap, svc.Countdown(snap)))
	}
}

// saveAnchorHandler godoc
// @Summary Guardar fecha de última menstruación
// @Description Crea o sobrescribe la LMP del dueño. La fecha va como `YYYY-MM-DD` y no puede ser futura. Devuelve el snapshot recalculado.
// @Tags gestation
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body saveAnchorRequest true "LMP en formato YYYY-MM-DD"
// @Success 200 {object} gestationResponse
// @Failure 400 {string} string "invalid json / last_period_date inválida / fecha futura"
// @Failure 401 {string} string "unauthorized"
// @Failure 503 {string} string "storage unavailable"
// @Router /me/gestation/anchor [put]
func saveAnchorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.OwnerID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req saveAnchorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := civil.Parse(req.LastPeriodDate)
		if err != nil {
			http.Error(w, "last_period_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		// Regla de UI: el selector no permite fechas futuras.
		if d.After(civil.Today(svc.now())) {
			http.Error(w, "last_period_date cannot be in the future", http.StatusBadRequest)
			return
		}

		a, err := svc.Save(r.Context(), claims.OwnerID, d)
		if err != nil {
			writeError(w, err)
			return
		}

		snap := Calculate(a.LastPeriodDate, svc.now())
		writeJSON(w, http.StatusOK, toGestationResponse(snap, svc.Countdown(snap)))
	}
}

func toGestationResponse(s *Snapshot, c Countdown) gestationResponse {
	if s == nil {
		return gestationResponse{Configured: false}
	}
	lmp := s.LastPeriodDate
	due := s.DueDate
	return gestationResponse{
		Configured:      true,
		LastPeriodDate:  &lmp,
		Week:            s.Week,
		DayOfWeek:       s.DayOfWeek,
		Trimester:       s.Trimester,
		DueDate:         &due,
		DaysElapsed:     s.DaysElapsed,
		DaysRemaining:   s.DaysRemaining,
		ProgressPercent: s.ProgressPercent,
		Overdue:         s.Overdue,
		DaysOverdue:     s.DaysOverdue,
		Countdown: &countdownResponse{
			Days:    c.Days,
			Hours:   c.Hours,
			Minutes: c.Minutes,
		},
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
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
