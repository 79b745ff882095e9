package generator

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/domain"
)

// ArchiveStore persists a generated project archive and hands out a URL
// clients can fetch it from. The S3 client satisfies this; when no object
// storage is configured the generator falls back to the local projects
// directory and the daemon's /download route.
type ArchiveStore interface {
	PutArchive(ctx context.Context, key string, data []byte) error
	GenerateDownloadURL(ctx context.Context, key string) (string, error)
}

type Input struct {
	GameIdea     string
	Genre        string
	Enhancements map[string][]string
}

type Result struct {
	ProjectName string
	ArchiveName string
	DownloadURL string
	FileCount   int
	MainScripts []string
}

type Generator struct {
	projectsDir string
	archives    ArchiveStore
}

// New returns a generator writing archives to projectsDir. If archives is
// non-nil it is used instead of the local directory.
func New(projectsDir string, archives ArchiveStore) (*Generator, error) {
	if archives == nil {
		if err := os.MkdirAll(projectsDir, 0o755); err != nil {
			return nil, &domain.DomainError{
				Code:    domain.ErrCodeConfiguration,
				Message: "failed to create projects directory",
				Err:     err,
			}
		}
	}
	return &Generator{projectsDir: projectsDir, archives: archives}, nil
}

var projectDirs = []string{
	"Assets/Scripts/Player",
	"Assets/Scripts/Enemies",
	"Assets/Scripts/Managers",
	"Assets/Scripts/UI",
	"Assets/Scripts/Collectibles",
	"Assets/Prefabs",
	"Assets/Scenes",
	"Assets/Materials",
	"Assets/Textures",
	"ProjectSettings",
}

// Generate renders the project files, zips them and stores the archive.
func (g *Generator) Generate(ctx context.Context, in Input) (*Result, error) {
	if strings.TrimSpace(in.GameIdea) == "" {
		return nil, &domain.DomainError{
			Code:    domain.ErrCodeValidation,
			Message: "game idea cannot be empty",
		}
	}

	files, scripts, err := renderProjectFiles(in)
	if err != nil {
		return nil, &domain.DomainError{
			Code:    domain.ErrCodeInternalError,
			Message: "failed to render project files",
			Err:     err,
		}
	}

	data, err := zipProject(files)
	if err != nil {
		return nil, &domain.DomainError{
			Code:    domain.ErrCodeInternalError,
			Message: "failed to build project archive",
			Err:     err,
		}
	}

	name := archiveName(in.GameIdea)
	url, err := g.storeArchive(ctx, name, data)
	if err != nil {
		return nil, err
	}

	return &Result{
		ProjectName: projectName(in.GameIdea),
		ArchiveName: name,
		DownloadURL: url,
		FileCount:   len(files),
		MainScripts: scripts,
	}, nil
}

// OpenArchive opens a previously generated local archive for download.
// Only base names are accepted so callers cannot escape the projects
// directory.
func (g *Generator) OpenArchive(name string) (*os.File, int64, error) {
	if name == "" || name != filepath.Base(name) || !strings.HasSuffix(name, ".zip") {
		return nil, 0, domain.ErrArchiveNotFound
	}
	path := filepath.Join(g.projectsDir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, domain.ErrArchiveNotFound
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, domain.ErrArchiveNotFound
	}
	return f, info.Size(), nil
}

func (g *Generator) storeArchive(ctx context.Context, name string, data []byte) (string, error) {
	if g.archives != nil {
		if err := g.archives.PutArchive(ctx, name, data); err != nil {
			return "", &domain.DomainError{
				Code:    domain.ErrCodeInternalError,
				Message: "failed to upload project archive",
				Err:     err,
			}
		}
		url, err := g.archives.GenerateDownloadURL(ctx, name)
		if err != nil {
			return "", &domain.DomainError{
				Code:    domain.ErrCodeInternalError,
				Message: "failed to generate download URL",
				Err:     err,
			}
		}
		return url, nil
	}

	path := filepath.Join(g.projectsDir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", &domain.DomainError{
			Code:    domain.ErrCodeInternalError,
			Message: "failed to write project archive",
			Err:     err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", &domain.DomainError{
			Code:    domain.ErrCodeInternalError,
			Message: "failed to write project archive",
			Err:     err,
		}
	}
	return "/download/" + name, nil
}

func renderProjectFiles(in Input) (map[string][]byte, []string, error) {
	vars := scriptVars{
		GameIdea:          in.GameIdea,
		HasDoubleJump:     hasEnhancement(in.Enhancements, "mechanics", "double jump"),
		HasCollectibles:   hasEnhancement(in.Enhancements, "mechanics", "collectible"),
		HasEnemies:        hasEnhancement(in.Enhancements, "mechanics", "enemy"),
		HasMultipleLevels: hasEnhancement(in.Enhancements, "levels", "multiple levels"),
	}

	type script struct {
		tmpl string
		path string
		when bool
	}
	plan := []script{
		{"PlayerController", "Assets/Scripts/Player/PlayerController.cs", true},
		{"GameManager", "Assets/Scripts/Managers/GameManager.cs", true},
		{"UIManager", "Assets/Scripts/UI/UIManager.cs", true},
		{"Collectible", "Assets/Scripts/Collectibles/Collectible.cs", vars.HasCollectibles},
		{"EnemyAI", "Assets/Scripts/Enemies/EnemyAI.cs", vars.HasEnemies},
		{"LevelManager", "Assets/Scripts/Managers/LevelManager.cs", vars.HasMultipleLevels},
	}

	files := make(map[string][]byte)
	var scripts []string
	for _, s := range plan {
		if !s.when {
			continue
		}
		var buf bytes.Buffer
		if err := scriptTemplates.ExecuteTemplate(&buf, s.tmpl, vars); err != nil {
			return nil, nil, err
		}
		files[s.path] = bytes.TrimLeft(buf.Bytes(), "\n")
		scripts = append(scripts, filepath.Base(s.path))
	}

	files["README.md"] = []byte(fmt.Sprintf(readmeTemplate, projectName(in.GameIdea)))
	files["Assets/Scenes/Main.unity"] = []byte(mainSceneContent)

	for _, dir := range projectDirs {
		files[dir+"/.gitkeep"] = []byte{}
	}
	return files, scripts, nil
}

func zipProject(files map[string][]byte) ([]byte, error) {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range paths {
		w, err := zw.Create(p)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(files[p]); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func hasEnhancement(enh map[string][]string, category, needle string) bool {
	for _, item := range enh[category] {
		if strings.Contains(strings.ToLower(item), needle) {
			return true
		}
	}
	return false
}

// projectName derives a title from the first words of the game idea.
func projectName(idea string) string {
	words := strings.Fields(strings.TrimSpace(idea))
	if len(words) > 4 {
		words = words[:4]
	}
	name := strings.Join(words, " ")
	if name == "" {
		return "Unity Game"
	}
	return name
}

func archiveName(idea string) string {
	safe := safeName(idea)
	id := uuid.New().String()[:8]
	return fmt.Sprintf("unity_project_%s_%s.zip", safe, id)
}

// safeName reduces the idea to a short filesystem-safe slug.
func safeName(idea string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(idea)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			b.WriteByte('_')
		}
		if b.Len() >= 20 {
			break
		}
	}
	s := strings.Trim(b.String(), "_")
	if s == "" {
		return "game"
	}
	return s
}
