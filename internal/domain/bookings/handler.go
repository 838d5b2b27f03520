package bookings

import (
	"encoding/json"
	"net/http"

	"dog-walking/internal/middleware"
	"dog-walking/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/booking", func(br chi.Router) {
		br.Post("/", createBookingHandler(svc, log))
		br.Get("/", listBookingsHandler(svc, log))
		br.Get("/{bookingID}", getBookingHandler(svc, log))

		// GET por compatibilidad con clientes existentes (no es POST).
		br.Get("/{bookingID}/cancel", cancelBookingHandler(svc, log))
	})
}

// createBookingHandler godoc
// @Summary Crear reserva de paseo
// @Description Crea una reserva para un dueño. `owner` debe ser un ObjectID de 24 hex y `start_time` RFC3339. La reserva nace con cancelled=false.
// @Tags bookings
// @Accept json
// @Produce json
// @Param payload body CreateBookingRequest true "Datos de la reserva"
// @Success 200 {object} storage.InsertAck
// @Failure 500 {string} string "owner/start_time inválido / error de base"
// @Router /booking [post]
func createBookingHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail(w, r, log, "decode booking", err)
			return
		}

		ack, err := svc.Create(r.Context(), req)
		if err != nil {
			fail(w, r, log, "create booking", err)
			return
		}

		writeJSON(w, http.StatusOK, ack)
	}
}

// listBookingsHandler godoc
// @Summary Listar reservas próximas
// @Description Devuelve las reservas no canceladas con start_time >= ahora, con el dueño embebido y sus perros. Sin orden garantizado.
// @Tags bookings
// @Produce json
// @Success 200 {array} FullBooking
// @Failure 500 {string} string "error de base"
// @Router /booking [get]
func listBookingsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListUpcoming(r.Context())
		if err != nil {
			fail(w, r, log, "list bookings", err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// getBookingHandler godoc
// @Summary Obtener reserva
// @Description Devuelve una reserva con dueño y perros, aunque esté cancelada o en el pasado. Un id inválido o inexistente también responde 500.
// @Tags bookings
// @Produce json
// @Param bookingID path string true "ObjectID de la reserva"
// @Success 200 {object} FullBooking
// @Failure 500 {string} string "Invalid ID / Booking not found / error de base"
// @Router /booking/{bookingID} [get]
func getBookingHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.Get(r.Context(), chi.URLParam(r, "bookingID"))
		if err != nil {
			fail(w, r, log, "get booking", err)
			return
		}
		writeJSON(w, http.StatusOK, b)
	}
}

// cancelBookingHandler godoc
// @Summary Cancelar reserva
// @Description Marca cancelled=true. Idempotente; un id bien formado que no existe devuelve matchedCount=0.
// @Tags bookings
// @Produce json
// @Param bookingID path string true "ObjectID de la reserva"
// @Success 200 {object} storage.UpdateAck
// @Failure 500 {string} string "Invalid ID / error de base"
// @Router /booking/{bookingID}/cancel [get]
func cancelBookingHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ack, err := svc.Cancel(r.Context(), chi.URLParam(r, "bookingID"))
		if err != nil {
			fail(w, r, log, "cancel booking", err)
			return
		}
		writeJSON(w, http.StatusOK, ack)
	}
}

func fail(w http.ResponseWriter, r *http.Request, log logger.Logger, op string, err error) {
	log.Error(op+" failed", map[string]any{
		"request_id": middleware.GetRequestID(r.Context()),
		"error":      err,
	})
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
