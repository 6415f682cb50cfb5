package tips

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pet-profiler/internal/middleware"
	"pet-profiler/internal/platform/httpclient"

	"github.com/go-chi/chi/v5"
)

type PetLookup interface {
	Exists(ctx context.Context, userID, petID string) (bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, petsLookup PetLookup) {
	r.Get("/pets/{petID}/tips", getTipsHandler(svc, petsLookup))
}

// getTipsHandler godoc
// @Summary Recomendaciones para la mascota
// @Description Seis categorías ordenadas por importancia. Se cachean una semana; refresh=true fuerza pedirlas de nuevo.
// @Tags tips
// @Produce json
// @Param X-User-ID header string true "ID de usuario"
// @Param petID path string true "pet_id del backend"
// @Param refresh query bool false "Ignorar el cache"
// @Success 200 {object} Result
// @Failure 400 {string} string "refresh must be a boolean"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Failure 502 {string} string "upstream error"
// @Router /pets/{petID}/tips [get]
func getTipsHandler(svc *Service, petsLookup PetLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		exists, err := petsLookup.Exists(r.Context(), claims.UserID, petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !exists {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		force := false
		if v := strings.TrimSpace(r.URL.Query().Get("refresh")); v != "" {
			force, err = strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "refresh must be a boolean", http.StatusBadRequest)
				return
			}
		}

		res, err := svc.Get(r.Context(), claims.UserID, petID, force)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrParse), httpclient.IsUpstream(err):
				http.Error(w, "upstream error: "+err.Error(), http.StatusBadGateway)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(res)
	}
}
