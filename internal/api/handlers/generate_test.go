package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/generator"
)

func newGenerateHandler(t *testing.T) *GenerateHandler {
	t.Helper()
	gen, err := generator.New(t.TempDir(), nil)
	require.NoError(t, err)
	return NewGenerateHandler(gen)
}

func TestGenerateHandler_GenerateProject(t *testing.T) {
	handler := newGenerateHandler(t)

	body, _ := json.Marshal(GenerateProjectRequest{
		GameIdea: "A fantasy platformer",
		Genre:    "platformer",
		SelectedEnhancements: map[string][]string{
			"mechanics": {"Double jump ability"},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/generate-project", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.GenerateProject(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data GenerateProjectResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A fantasy platformer", resp.Data.ProjectName)
	assert.Contains(t, resp.Data.DownloadURL, "/download/unity_project_")
	assert.Greater(t, resp.Data.FileCount, 0)
	assert.Contains(t, resp.Data.MainScripts, "PlayerController.cs")
}

func TestGenerateHandler_MissingIdea(t *testing.T) {
	handler := newGenerateHandler(t)

	body, _ := json.Marshal(GenerateProjectRequest{Genre: "rpg"})
	req := httptest.NewRequest(http.MethodPost, "/generate-project", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.GenerateProject(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateHandler_Download(t *testing.T) {
	dir := t.TempDir()
	gen, err := generator.New(dir, nil)
	require.NoError(t, err)
	handler := NewGenerateHandler(gen)

	res, err := gen.Generate(httptest.NewRequest(http.MethodGet, "/", nil).Context(), generator.Input{GameIdea: "Space shooter"})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Get("/download/{filename}", handler.Download)

	req := httptest.NewRequest(http.MethodGet, "/download/"+res.ArchiveName, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), res.ArchiveName)
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestGenerateHandler_DownloadNotFound(t *testing.T) {
	handler := newGenerateHandler(t)

	r := chi.NewRouter()
	r.Get("/download/{filename}", handler.Download)

	req := httptest.NewRequest(http.MethodGet, "/download/missing.zip", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
