package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pet-profiler/internal/middleware"
	"pet-profiler/internal/platform/httpclient"
	"pet-profiler/internal/platform/upload"

	"github.com/go-chi/chi/v5"
)

type PetLookup interface {
	Exists(ctx context.Context, userID, petID string) (bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, petsLookup PetLookup) {
	r.Route("/pets/{petID}/chat/messages", func(cr chi.Router) {
		cr.Get("/", listMessagesHandler(svc, petsLookup))
		cr.Post("/", sendMessageHandler(svc, petsLookup))
		cr.Delete("/", clearMessagesHandler(svc, petsLookup))
	})
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

type failureResponse struct {
	Index int    `json:"index"`
	Stage string `json:"stage"`
	Error string `json:"error"`
}

type sendMessageResponse struct {
	User     Message           `json:"user"`
	Expert   *Message          `json:"expert,omitempty"`
	Failures []failureResponse `json:"failures,omitempty"`
	Error    string            `json:"error,omitempty"`
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

// listMessagesHandler godoc
// @Summary Historial del chat
// @Description Mensajes de la sesión actual (en memoria).
// @Tags chat
// @Produce json
// @Param X-User-ID header string true "ID de usuario"
// @Param petID path string true "pet_id del backend"
// @Success 200 {array} Message
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/chat/messages [get]
func listMessagesHandler(svc *Service, petsLookup PetLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, petID, ok := authorize(w, r, petsLookup)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, svc.History(uid, petID))
	}
}

// clearMessagesHandler godoc
// @Summary Borrar historial del chat
// @Tags chat
// @Param X-User-ID header string true "ID de usuario"
// @Param petID path string true "pet_id del backend"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/chat/messages [delete]
func clearMessagesHandler(svc *Service, petsLookup PetLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, petID, ok := authorize(w, r, petsLookup)
		if !ok {
			return
		}
		svc.ClearHistory(uid, petID)
		w.WriteHeader(http.StatusNoContent)
	}
}

// sendMessageHandler godoc
// @Summary Enviar mensaje al experto
// @Description JSON {"message"} o multipart con campo message y hasta CHAT_MAX_IMAGES fotos en image. Las imágenes se procesan en paralelo antes de enviar el texto; las que fallan se reportan en failures.
// @Tags chat
// @Accept json,mpfd
// @Produce json
// @Param X-User-ID header string true "ID de usuario"
// @Param petID path string true "pet_id del backend"
// @Param payload body sendMessageRequest false "Mensaje de texto (JSON)"
// @Success 200 {object} sendMessageResponse
// @Failure 400 {string} string "invalid json / invalid input / too many images"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Failure 502 {object} sendMessageResponse
// @Router /pets/{petID}/chat/messages [post]
func sendMessageHandler(svc *Service, petsLookup PetLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, petID, ok := authorize(w, r, petsLookup)
		if !ok {
			return
		}

		in := SendInput{UserID: uid, PetID: petID}
		if upload.IsMultipart(r) {
			imgs, err := upload.ReadImages(r, "image", svc.opts.MaxImages)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			in.Text = r.FormValue("message")
			in.Images = imgs
		} else {
			var req sendMessageRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			in.Text = req.Message
		}

		res, err := svc.Send(r.Context(), in)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, toResponse(res, nil))
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrTooManyImages):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrBatchIncomplete), httpclient.IsUpstream(err):
			writeJSON(w, http.StatusBadGateway, toResponse(res, err))
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

func toResponse(res SendResult, err error) sendMessageResponse {
	out := sendMessageResponse{User: res.User}
	if res.Expert.ID != "" {
		expert := res.Expert
		out.Expert = &expert
	}
	for _, f := range res.Failures {
		out.Failures = append(out.Failures, failureResponse{Index: f.Index, Stage: f.Stage, Error: f.Err.Error()})
	}
	if err != nil {
		out.Error = err.Error()
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
