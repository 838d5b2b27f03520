package owners

import (
	"encoding/json"
	"net/http"

	"dog-walking/internal/middleware"
	"dog-walking/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/owner", createOwnerHandler(svc, log))
}

// createOwnerHandler godoc
// @Summary Crear dueño
// @Description Registra un dueño nuevo. Devuelve el acuse de inserción de la base, no el registro.
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body CreateOwnerRequest true "Datos del dueño"
// @Success 200 {object} storage.InsertAck
// @Failure 500 {string} string "texto del error"
// @Router /owner [post]
func createOwnerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail(w, r, log, "decode owner", err)
			return
		}

		ack, err := svc.Create(r.Context(), req)
		if err != nil {
			fail(w, r, log, "create owner", err)
			return
		}

		writeJSON(w, http.StatusOK, ack)
	}
}

// fail: toda falla es 500 con el texto del error.
func fail(w http.ResponseWriter, r *http.Request, log logger.Logger, op string, err error) {
	log.Error(op+" failed", map[string]any{
		"request_id": middleware.GetRequestID(r.Context()),
		"error":      err,
	})
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (owners/dogs/bookings).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
