package notes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pet-profiler/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// PetLookup evita el ciclo de imports con pets.
type PetLookup interface {
	Exists(ctx context.Context, userID, petID string) (bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, petsLookup PetLookup) {
	r.Route("/pets/{petID}/notes", func(nr chi.Router) {
		nr.Get("/", listNotesHandler(svc, petsLookup))
		nr.Post("/", createNoteHandler(svc, petsLookup))
		nr.Put("/{noteID}", updateNoteHandler(svc, petsLookup))
		nr.Delete("/{noteID}", deleteNoteHandler(svc, petsLookup))
	})
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// authorize resuelve el user y exige que el pet exista para ese user.
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

// listNotesHandler godoc
// @Summary Listar notas
// @Description Notas del pet, de la más nueva a la más vieja.
// @Tags notes
// @Produce json
// @Param X-User-ID header string true "ID de usuario"
// @Param petID path string true "pet_id del backend"
// @Success 200 {array} Note
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/notes [get]
func listNotesHandler(svc *Service, petsLookup PetLookup) http.HandlerFunc {
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

// createNoteHandler godoc
// @Summary Crear nota
// @Tags notes
// @Accept json
// @Produce json
// @Param X-User-ID header string true "ID de usuario"
// @Param petID path string true "pet_id del backend"
// @Param payload body noteRequest true "Título y/o contenido"
// @Success 201 {object} Note
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/notes [post]
func createNoteHandler(svc *Service, petsLookup PetLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, petID, ok := authorize(w, r, petsLookup)
		if !ok {
			return
		}

		var req noteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		n, err := svc.Create(r.Context(), uid, petID, Input(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, n)
	}
}

// updateNoteHandler godoc
// @Summary Editar nota
// @Tags notes
// @Accept json
// @Produce json
// @Param X-User-ID header string true "ID de usuario"
// @Param petID path string true "pet_id del backend"
// @Param noteID path string true "ID de la nota"
// @Param payload body noteRequest true "Título y/o contenido"
// @Success 200 {object} Note
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found / note not found"
// @Router /pets/{petID}/notes/{noteID} [put]
func updateNoteHandler(svc *Service, petsLookup PetLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, petID, ok := authorize(w, r, petsLookup)
		if !ok {
			return
		}

		var req noteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		n, err := svc.Update(r.Context(), uid, petID, chi.URLParam(r, "noteID"), Input(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, n)
	}
}

// deleteNoteHandler godoc
// @Summary Borrar nota
// @Tags notes
// @Param X-User-ID header string true "ID de usuario"
// @Param petID path string true "pet_id del backend"
// @Param noteID path string true "ID de la nota"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found / note not found"
// @Router /pets/{petID}/notes/{noteID} [delete]
func deleteNoteHandler(svc *Service, petsLookup PetLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, petID, ok := authorize(w, r, petsLookup)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), uid, petID, chi.URLParam(r, "noteID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
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
