package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pet-profiler/internal/middleware"
	"pet-profiler/internal/platform/upload"

	"github.com/go-chi/chi/v5"
)

type PetLookup interface {
	Exists(ctx context.Context, userID, petID string) (bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, petsLookup PetLookup) {
	r.Route("/pets/{petID}/gallery", func(gr chi.Router) {
		gr.Get("/", listGalleryHandler(svc, petsLookup))
		gr.Post("/", addGalleryHandler(svc, petsLookup))
		gr.Get("/{imageID}", getGalleryImageHandler(svc, petsLookup))
	})
}

func authorize(w http.ResponseWriter, r *http.Request, petsLookup PetLookup) (userID, petID string, ok bool) {
	claims, found := middleware.GetClaims(r.Context())
	if !found || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", "", false
	}

	petID = chi.URLParam(r, "petID")
	exists, err := petsLookup.Exists(r.Context(), claims.UserID, petID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return "", "", false
	}
	if !exists {
		http.Error(w, "pet not found", http.StatusNotFound)
		return "", "", false
	}
	return claims.UserID, petID, true
}

// listGalleryHandler godoc
// @Summary Listar galería
// @Tags gallery
// @Produce json
// @Param X-User-ID header string true "ID de usuario"
// @Param petID path string true "pet_id del backend"
// @Success 200 {array} Image
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/gallery [get]
func listGalleryHandler(svc *Service, petsLookup PetLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, petID, ok := authorize(w, r, petsLookup)
		if !ok {
			return
		}

		items, err := svc.List(r.Context(), uid, petID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// addGalleryHandler godoc
// @Summary Agregar fotos a la galería
// @Tags gallery
// @Accept mpfd
// @Produce json
// @Param X-User-ID header string true "ID de usuario"
// @Param petID path string true "pet_id del backend"
// @Param image formData file true "Una o más fotos JPEG"
// @Success 201 {array} Image
// @Failure 400 {string} string "image file required"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/gallery [post]
func addGalleryHandler(svc *Service, petsLookup PetLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, petID, ok := authorize(w, r, petsLookup)
		if !ok {
			return
		}

		imgs, err := upload.ReadImages(r, "image", 0)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if len(imgs) == 0 {
			http.Error(w, upload.ErrNoImage.Error(), http.StatusBadRequest)
			return
		}

		saved, err := svc.AddAll(r.Context(), uid, petID, imgs)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, saved)
	}
}

// getGalleryImageHandler godoc
// @Summary Descargar foto de galería
// @Tags gallery
// @Produce jpeg
// @Param X-User-ID header string true "ID de usuario"
// @Param petID path string true "pet_id del backend"
// @Param imageID path string true "ID de la foto"
// @Success 200 {file} file
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found / image not found"
// @Router /pets/{petID}/gallery/{imageID} [get]
func getGalleryImageHandler(svc *Service, petsLookup PetLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, petID, ok := authorize(w, r, petsLookup)
		if !ok {
			return
		}

		path, err := svc.Path(r.Context(), uid, petID, chi.URLParam(r, "imageID"))
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		http.ServeFile(w, r, path)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
