package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-profiler/internal/middleware"
	"pet-profiler/internal/platform/httpclient"

	"github.com/go-chi/chi/v5"
)

// ImageFiles resuelve el nombre de archivo guardado en Pet.ImagePath a un path servible.
type ImageFiles interface {
	PetImagePath(name string) (string, error)
}

func RegisterRoutes(r chi.Router, svc *Service, images ImageFiles) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", savePetHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))

		pr.Post("/{petID}/confirm", confirmPetHandler(svc))
		pr.Get("/{petID}/image", petImageHandler(svc, images))
	})
}

type updatePetRequest struct {
	Name           *string  `json:"name"`
	PrimaryBreed   *string  `json:"primary_breed"`
	SecondaryBreed *string  `json:"secondary_breed"`
	Height         *float64 `json:"height"`
	Weight         *float64 `json:"weight"`
	Length         *float64 `json:"length"`
	Gender         *string  `json:"gender"`
	CoatLength     *string  `json:"coat_length"`
	CoatType       *string  `json:"coat_type"`
	CoatColor      *string  `json:"coat_color"`
	FitnessLevel   *string  `json:"fitness_level"`
	AnimalType     *string  `json:"animal_type"`
}

type confirmPetRequest struct {
	Birthday    string `json:"birthday"` // YYYY-MM-DD
	Personality string `json:"personality"`
}

type confirmPetResponse struct {
	Pet    Pet    `json:"pet"`
	Synced bool   `json:"synced"`
	Error  string `json:"error,omitempty"`
}

func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return claims.UserID, true
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Devuelve los perfiles guardados del usuario.
// @Tags pets
// @Produce json
// @Param X-User-ID header string true "ID de usuario"
// @Success 200 {array} Pet
// @Failure 401 {string} string "unauthorized"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		items, err := svc.ListByOwner(r.Context(), uid)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// savePetHandler godoc
// @Summary Guardar mascota
// @Description Upsert del perfil por id local. id y pet_id son obligatorios; user_id se toma del header.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-User-ID header string true "ID de usuario"
// @Param payload body Pet true "Perfil completo"
// @Success 200 {object} Pet
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Failure 409 {string} string "pet_id already saved under another id"
// @Router /pets [post]
func savePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var p Pet
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		p.UserID = uid
		// la foto la asigna el scan; un path del cliente podría apuntar a otra
		p.ImagePath = ""

		saved, err := svc.Save(r.Context(), p)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, saved)
	}
}

// getPetHandler godoc
// @Summary Perfil de mascota
// @Tags pets
// @Produce json
// @Param X-User-ID header string true "ID de usuario"
// @Param petID path string true "pet_id del backend"
// @Success 200 {object} Pet
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		p, err := svc.GetByPetID(r.Context(), uid, chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// updatePetHandler godoc
// @Summary Editar mascota
// @Description PATCH de los campos editables del scan; los campos ausentes no se tocan.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-User-ID header string true "ID de usuario"
// @Param petID path string true "pet_id del backend"
// @Param payload body updatePetRequest true "Campos a modificar"
// @Success 200 {object} Pet
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		var req updatePetRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), uid, chi.URLParam(r, "petID"), UpdateInput(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Tags pets
// @Param X-User-ID header string true "ID de usuario"
// @Param petID path string true "pet_id del backend"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), uid, chi.URLParam(r, "petID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// confirmPetHandler godoc
// @Summary Confirmar perfil
// @Description Calcula edad y signo desde birthday, guarda la personalidad y sincroniza con el backend. Si la sync falla responde 502 con el perfil ya guardado.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-User-ID header string true "ID de usuario"
// @Param petID path string true "pet_id del backend"
// @Param payload body confirmPetRequest true "birthday en YYYY-MM-DD"
// @Success 200 {object} confirmPetResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Failure 502 {object} confirmPetResponse
// @Router /pets/{petID}/confirm [post]
func confirmPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req confirmPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		bd, err := time.Parse("2006-01-02", strings.TrimSpace(req.Birthday))
		if err != nil {
			http.Error(w, "birthday must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		p, err := svc.Confirm(r.Context(), uid, chi.URLParam(r, "petID"), ConfirmInput{
			Birthday:    bd,
			Personality: req.Personality,
		})
		if errors.Is(err, ErrSyncFailed) {
			writeJSON(w, http.StatusBadGateway, confirmPetResponse{Pet: p, Synced: false, Error: err.Error()})
			return
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, confirmPetResponse{Pet: p, Synced: true})
	}
}

// petImageHandler godoc
// @Summary Foto de la mascota
// @Tags pets
// @Produce jpeg
// @Param X-User-ID header string true "ID de usuario"
// @Param petID path string true "pet_id del backend"
// @Success 200 {file} file
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found / image not found"
// @Router /pets/{petID}/image [get]
func petImageHandler(svc *Service, images ImageFiles) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		name, err := svc.ImageOf(r.Context(), uid, chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, err)
			return
		}
		if name == "" || images == nil {
			http.Error(w, "image not found", http.StatusNotFound)
			return
		}
		path, err := images.PetImagePath(name)
		if err != nil {
			http.Error(w, "image not found", http.StatusNotFound)
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
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case httpclient.IsUpstream(err):
		http.Error(w, "upstream error", http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para no crear un paquete de helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
