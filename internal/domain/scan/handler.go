package scan

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pet-profiler/internal/domain/pets"
	"pet-profiler/internal/middleware"
	"pet-profiler/internal/platform/httpclient"
	"pet-profiler/internal/platform/upload"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/scans", createScanHandler(svc))
}

type scanResponse struct {
	Pet   pets.Pet `json:"pet"`
	Saved bool     `json:"saved"`
}

// createScanHandler godoc
// @Summary Escanear mascota
// @Description Sube la foto al backend (presign, upload, process) y devuelve el perfil parseado. Con save=true además lo guarda.
// @Tags scans
// @Accept mpfd
// @Produce json
// @Param X-User-ID header string true "ID de usuario"
// @Param image formData file true "Foto JPEG"
// @Param pet_id formData string false "pet_id existente; si falta se genera"
// @Param name formData string false "Nombre de la mascota"
// @Param save formData bool false "Guardar el perfil"
// @Success 200 {object} scanResponse
// @Success 201 {object} scanResponse
// @Failure 400 {string} string "image file required / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 502 {string} string "upstream error"
// @Router /scans [post]
func createScanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		img, err := upload.ReadImage(r, "image")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		save := false
		if v := strings.TrimSpace(r.FormValue("save")); v != "" {
			save, err = strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "save must be a boolean", http.StatusBadRequest)
				return
			}
		}

		res, err := svc.Scan(r.Context(), Input{
			UserID: claims.UserID,
			PetID:  r.FormValue("pet_id"),
			Name:   r.FormValue("name"),
			Image:  img,
			Save:   save,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput), errors.Is(err, pets.ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, pets.ErrConflict):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrParse), httpclient.IsUpstream(err):
				http.Error(w, "upstream error: "+err.Error(), http.StatusBadGateway)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		status := http.StatusOK
		if res.Saved {
			status = http.StatusCreated
		}
		writeJSON(w, status, scanResponse{Pet: res.Pet, Saved: res.Saved})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
