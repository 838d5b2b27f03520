package dogs

import (
	"encoding/json"
	"net/http"

	"dog-walking/internal/middleware"
	"dog-walking/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/dog", createDogHandler(svc, log))
}

// createDogHandler godoc
// @Summary Crear perro
// @Description Registra un perro para un dueño. `owner` debe ser un ObjectID de 24 hex; no se verifica que el dueño exista. name, age y breed son opcionales.
// @Tags dogs
// @Accept json
// @Produce json
// @Param payload body CreateDogRequest true "Datos del perro"
// @Success 200 {object} storage.InsertAck
// @Failure 500 {string} string "owner inválido / error de base"
// @Router /dog [post]
func createDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail(w, r, log, "decode dog", err)
			return
		}

		ack, err := svc.Create(r.Context(), req)
		if err != nil {
			fail(w, r, log, "create dog", err)
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
