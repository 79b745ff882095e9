package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/domain"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/knowledge"
)

func newEmptyCorpusService(t *testing.T) *RetrievalService {
	t.Helper()
	dir := t.TempDir()

	data, err := json.Marshal(domain.KnowledgeBase{})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "knowledge_base.json"), data, 0o644))

	store, err := knowledge.NewStore(dir)
	require.NoError(t, err)
	svc, err := NewRetrievalService(store)
	require.NoError(t, err)
	return svc
}

func TestAugmentPromptDefaultCorpus(t *testing.T) {
	svc := newTestService(t)

	original := "Suggest mechanics"
	augmented := svc.AugmentPrompt(context.Background(), original, "fantasy RPG", "rpg")

	assert.Greater(t, len(augmented), len(original))
	assert.True(t, strings.HasPrefix(augmented, original))
	assert.Contains(t, augmented, "Category: ")
	assert.Contains(t, augmented, contextHeader)
	assert.Contains(t, augmented, contextFooter)
}

func TestAugmentPromptNoDuplicateLines(t *testing.T) {
	svc := newTestService(t)

	// Subject and hint deliberately overlap so multiple derived queries
	// hit the same documents.
	augmented := svc.AugmentPrompt(context.Background(), "Design a game", "platformer jump mechanics", "platformer")

	seen := make(map[string]bool)
	for _, line := range strings.Split(augmented, "\n") {
		if !strings.HasPrefix(line, "- ") {
			continue
		}
		assert.False(t, seen[line], "duplicate context line: %s", line)
		seen[line] = true
	}
	assert.NotEmpty(t, seen)
}

func TestAugmentPromptContextCapped(t *testing.T) {
	svc := newTestService(t)

	augmented := svc.AugmentPrompt(context.Background(), "Suggest mechanics", "jump attack enemy player movement", "rpg")

	bullets := 0
	for _, line := range strings.Split(augmented, "\n") {
		if strings.HasPrefix(line, "- ") {
			bullets++
		}
	}
	assert.LessOrEqual(t, bullets, maxContextItems)
}

func TestAugmentPromptEmptyCorpusReturnsOriginal(t *testing.T) {
	svc := newEmptyCorpusService(t)

	original := "Suggest mechanics"
	assert.Equal(t, original, svc.AugmentPrompt(context.Background(), original, "fantasy RPG", "rpg"))
}

func TestAugmentPromptBlankInputsEmptyCorpus(t *testing.T) {
	svc := newEmptyCorpusService(t)

	original := "Suggest mechanics"
	assert.Equal(t, original, svc.AugmentPrompt(context.Background(), original, "", ""))
}

func TestDerivedQueries(t *testing.T) {
	queries := derivedQueries("fantasy RPG", "rpg")
	assert.Equal(t, []string{
		"fantasy RPG",
		"rpg",
		"rpg mechanics",
		"rpg game design",
		"Unity best practices",
	}, queries)

	// Without a hint only the subject and generic queries remain
	queries = derivedQueries("fantasy RPG", "  ")
	assert.Equal(t, []string{"fantasy RPG", "Unity best practices"}, queries)
}
