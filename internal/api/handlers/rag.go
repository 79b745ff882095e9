package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/api"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/domain"
)

const defaultSearchTopK = 5

type RetrievalAPI interface {
	AddKnowledge(ctx context.Context, category domain.Category, subcategory domain.Subcategory, items []string) (*domain.KnowledgeStats, error)
	Search(ctx context.Context, query string, topK int) ([]domain.RetrievalResult, error)
	Stats(ctx context.Context) *domain.KnowledgeStats
	AugmentPrompt(ctx context.Context, originalPrompt, subject, categoryHint string) string
}

type RAGHandler struct {
	svc RetrievalAPI
}

func NewRAGHandler(svc RetrievalAPI) *RAGHandler {
	return &RAGHandler{svc: svc}
}

type AddKnowledgeRequest struct {
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Items       []string `json:"items"`
}

type AddKnowledgeResponse struct {
	Added int                    `json:"added"`
	Stats *KnowledgeStatsPayload `json:"stats"`
}

type KnowledgeStatsPayload struct {
	TotalItems    int            `json:"total_items"`
	DocumentCount int            `json:"document_count"`
	PerCategory   map[string]int `json:"per_category"`
}

type SearchResultPayload struct {
	Content     string  `json:"content"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Score       float64 `json:"score"`
}

type SearchResponse struct {
	Query   string                `json:"query"`
	Results []SearchResultPayload `json:"results"`
}

type AugmentRequest struct {
	Prompt       string `json:"prompt"`
	Subject      string `json:"subject"`
	CategoryHint string `json:"category_hint"`
}

type AugmentResponse struct {
	AugmentedPrompt string `json:"augmented_prompt"`
}

func statsToPayload(stats *domain.KnowledgeStats) *KnowledgeStatsPayload {
	perCategory := make(map[string]int, len(stats.PerCategory))
	for cat, n := range stats.PerCategory {
		perCategory[string(cat)] = n
	}
	return &KnowledgeStatsPayload{
		TotalItems:    stats.TotalItems,
		DocumentCount: stats.DocumentCount,
		PerCategory:   perCategory,
	}
}

func (h *RAGHandler) AddKnowledge(w http.ResponseWriter, r *http.Request) {
	var req AddKnowledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Category == "" {
		api.Error(w, http.StatusBadRequest, "category is required")
		return
	}
	if req.Subcategory == "" {
		api.Error(w, http.StatusBadRequest, "subcategory is required")
		return
	}

	stats, err := h.svc.AddKnowledge(r.Context(), domain.Category(req.Category), domain.Subcategory(req.Subcategory), req.Items)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, AddKnowledgeResponse{
		Added: len(req.Items),
		Stats: statsToPayload(stats),
	})
}

func (h *RAGHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		api.Error(w, http.StatusBadRequest, "query is required")
		return
	}

	topK := defaultSearchTopK
	if topKStr := r.URL.Query().Get("top_k"); topKStr != "" {
		parsed, err := strconv.Atoi(topKStr)
		if err != nil {
			api.Error(w, http.StatusBadRequest, "top_k must be an integer")
			return
		}
		topK = parsed
	}

	results, err := h.svc.Search(r.Context(), query, topK)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	payload := make([]SearchResultPayload, len(results))
	for i, res := range results {
		payload[i] = SearchResultPayload{
			Content:     res.Content,
			Category:    string(res.Category),
			Subcategory: string(res.Subcategory),
			Score:       res.Score,
		}
	}

	api.Success(w, http.StatusOK, SearchResponse{Query: query, Results: payload})
}

func (h *RAGHandler) Augment(w http.ResponseWriter, r *http.Request) {
	var req AugmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Prompt == "" {
		api.Error(w, http.StatusBadRequest, "prompt is required")
		return
	}

	augmented := h.svc.AugmentPrompt(r.Context(), req.Prompt, req.Subject, req.CategoryHint)
	api.Success(w, http.StatusOK, AugmentResponse{AugmentedPrompt: augmented})
}

func (h *RAGHandler) Stats(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, statsToPayload(h.svc.Stats(r.Context())))
}
