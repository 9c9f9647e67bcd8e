package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"sahayak-backend/internal/chat"
	"sahayak-backend/internal/models"
	"sahayak-backend/internal/services"
)

type chatService interface {
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

type ChatHandler struct {
	service chatService
}

func NewChatHandler(service chatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Health always reports the same fixed payload.
func (h *ChatHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Links exposes the static link catalog for the portal frontend.
func (h *ChatHandler) Links(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, chat.Catalog)
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, validationResp([]models.FieldError{
			{Field: "body", Message: "Invalid request body"},
		}))
		return
	}

	resp, err := h.service.Chat(r.Context(), req)
	if err != nil {
		switch e := err.(type) {
		case *services.ValidationError:
			writeJSON(w, http.StatusBadRequest, validationResp(fieldErrors(e.Fields)))
		case *services.ModelError:
			writeJSON(w, http.StatusInternalServerError, apologyResp(e.Language))
		default:
			writeJSON(w, http.StatusInternalServerError, apologyResp("en"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func apologyResp(language string) models.ChatResponse {
	return models.ChatResponse{
		Message: services.Apology(language),
		Links:   []models.Link{},
		Yojanas: []models.Scheme{},
	}
}

func validationResp(errs []models.FieldError) models.ChatResponse {
	return models.ChatResponse{
		Message: "Invalid request",
		Errors:  errs,
		Links:   []models.Link{},
		Yojanas: []models.Scheme{},
	}
}

func fieldErrors(fields map[string]string) []models.FieldError {
	out := make([]models.FieldError, 0, len(fields))
	for field, msg := range fields {
		out = append(out, models.FieldError{Field: field, Message: msg})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
