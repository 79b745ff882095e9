package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/api/handlers"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/generator"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/knowledge"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/service"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	store, err := knowledge.NewStore(t.TempDir())
	require.NoError(t, err)
	retrieval, err := service.NewRetrievalService(store)
	require.NoError(t, err)
	gen, err := generator.New(t.TempDir(), nil)
	require.NoError(t, err)

	return NewRouter(RouterConfig{
		RAGHandler:      handlers.NewRAGHandler(retrieval),
		EnhanceHandler:  handlers.NewEnhanceHandler(nil),
		GenerateHandler: handlers.NewGenerateHandler(gen),
	})
}

func TestRouter_HealthEndpoint(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "ok", data["status"])
}

func TestRouter_RequestIDHeader(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_SearchDefaultCorpus(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/rag/search?query=double+jump&top_k=3", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data handlers.SearchResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Results)
	assert.Contains(t, resp.Data.Results[0].Content, "Double jump")
}

func TestRouter_AddKnowledgeThenSearch(t *testing.T) {
	router := setupRouter(t)

	body, _ := json.Marshal(handlers.AddKnowledgeRequest{
		Category:    "game_design",
		Subcategory: "racing_mechanics",
		Items:       []string{"Slipstream drafting rewards close pursuit of rivals"},
	})
	req := httptest.NewRequest(http.MethodPost, "/rag/add-knowledge", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/rag/search?query=slipstream+drafting", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data handlers.SearchResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Results)
	assert.Contains(t, resp.Data.Results[0].Content, "Slipstream")
}

func TestRouter_Stats(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/rag/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data handlers.KnowledgeStatsPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Greater(t, resp.Data.TotalItems, 0)
	assert.Equal(t, resp.Data.TotalItems, resp.Data.DocumentCount)
}

func TestRouter_Augment(t *testing.T) {
	router := setupRouter(t)

	body, _ := json.Marshal(handlers.AugmentRequest{
		Prompt:       "Suggest mechanics",
		Subject:      "fantasy RPG",
		CategoryHint: "rpg",
	})
	req := httptest.NewRequest(http.MethodPost, "/rag/augment", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data handlers.AugmentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Data.AugmentedPrompt, "Suggest mechanics")
}

func TestRouter_EnhanceIdeaUnconfigured(t *testing.T) {
	router := setupRouter(t)

	body, _ := json.Marshal(handlers.EnhanceIdeaRequest{GameIdea: "A cozy farming game"})
	req := httptest.NewRequest(http.MethodPost, "/enhance-idea", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_GenerateThenDownload(t *testing.T) {
	router := setupRouter(t)

	body, _ := json.Marshal(handlers.GenerateProjectRequest{GameIdea: "A fantasy platformer"})
	req := httptest.NewRequest(http.MethodPost, "/generate-project", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data handlers.GenerateProjectResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	req = httptest.NewRequest(http.MethodGet, resp.Data.DownloadURL, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
