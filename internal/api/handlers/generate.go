package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/api"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/generator"
)

type ProjectGenerator interface {
	Generate(ctx context.Context, in generator.Input) (*generator.Result, error)
	OpenArchive(name string) (*os.File, int64, error)
}

type GenerateHandler struct {
	svc ProjectGenerator
}

func NewGenerateHandler(svc ProjectGenerator) *GenerateHandler {
	return &GenerateHandler{svc: svc}
}

type GenerateProjectRequest struct {
	GameIdea             string              `json:"game_idea"`
	Genre                string              `json:"genre"`
	SelectedEnhancements map[string][]string `json:"selected_enhancements"`
}

type GenerateProjectResponse struct {
	ProjectName string   `json:"project_name"`
	DownloadURL string   `json:"download_url"`
	FileCount   int      `json:"file_count"`
	MainScripts []string `json:"main_scripts"`
}

func (h *GenerateHandler) GenerateProject(w http.ResponseWriter, r *http.Request) {
	var req GenerateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.GameIdea == "" {
		api.Error(w, http.StatusBadRequest, "game_idea is required")
		return
	}

	result, err := h.svc.Generate(r.Context(), generator.Input{
		GameIdea:     req.GameIdea,
		Genre:        req.Genre,
		Enhancements: req.SelectedEnhancements,
	})
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, GenerateProjectResponse{
		ProjectName: result.ProjectName,
		DownloadURL: result.DownloadURL,
		FileCount:   result.FileCount,
		MainScripts: result.MainScripts,
	})
}

func (h *GenerateHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	f, size, err := h.svc.OpenArchive(name)
	if err != nil {
		api.HandleError(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	io.Copy(w, f)
}
