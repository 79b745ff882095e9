package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/api"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/domain"
)

type IdeaEnhancer interface {
	EnhanceIdea(ctx context.Context, gameIdea, genre string) ([]domain.GameEnhancement, error)
}

type EnhanceHandler struct {
	svc IdeaEnhancer
}

func NewEnhanceHandler(svc IdeaEnhancer) *EnhanceHandler {
	return &EnhanceHandler{svc: svc}
}

type EnhanceIdeaRequest struct {
	GameIdea string `json:"game_idea"`
	Genre    string `json:"genre"`
}

type EnhancementPayload struct {
	Category    string   `json:"category"`
	Suggestions []string `json:"suggestions"`
	Description string   `json:"description"`
}

type EnhanceIdeaResponse struct {
	GameIdea     string               `json:"game_idea"`
	Genre        string               `json:"genre"`
	Enhancements []EnhancementPayload `json:"enhancements"`
}

func (h *EnhanceHandler) EnhanceIdea(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil {
		api.Error(w, http.StatusServiceUnavailable, "idea enhancement is not configured")
		return
	}

	var req EnhanceIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.GameIdea == "" {
		api.Error(w, http.StatusBadRequest, "game_idea is required")
		return
	}

	enhancements, err := h.svc.EnhanceIdea(r.Context(), req.GameIdea, req.Genre)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	payload := make([]EnhancementPayload, len(enhancements))
	for i, e := range enhancements {
		payload[i] = EnhancementPayload{
			Category:    string(e.Category),
			Suggestions: e.Suggestions,
			Description: e.Description,
		}
	}

	genre := req.Genre
	if genre == "" {
		genre = "general"
	}

	api.Success(w, http.StatusOK, EnhanceIdeaResponse{
		GameIdea:     req.GameIdea,
		Genre:        genre,
		Enhancements: payload,
	})
}
