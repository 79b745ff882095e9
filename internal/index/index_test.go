package index

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/domain"
)

func doc(content string) domain.Document {
	return domain.Document{
		Content:     content,
		Category:    "game_design",
		Subcategory: "platformer_mechanics",
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lowercases and splits", "Double Jump allows Players", []string{"double", "jump", "allows", "players"}},
		{"drops stop words", "the player is on a platform", []string{"player", "platform"}},
		{"drops single chars", "a b c jumping", []string{"jumping"}},
		{"punctuation splits tokens", "wall-jumping, dashing!", []string{"wall", "jumping", "dashing"}},
		{"digits kept", "unity 2d physics", []string{"unity", "2d", "physics"}},
		{"empty", "", nil},
		{"only stop words", "the and of", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(tt.text))
		})
	}
}

func TestSearchEmptyCorpus(t *testing.T) {
	idx := New()

	results, err := idx.Search("combat", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchValidation(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Rebuild([]domain.Document{doc("some text")}))

	_, err := idx.Search("   ", 5)
	assert.ErrorIs(t, err, domain.ErrEmptyQuery)

	_, err = idx.Search("combat", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidTopK)

	_, err = idx.Search("combat", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidTopK)
}

func TestSearchSingleDocument(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Rebuild([]domain.Document{
		doc("Double jump allows players to reach higher platforms"),
	}))

	results, err := idx.Search("double jump", 3)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "Double jump allows players to reach higher platforms", results[0].Content)
	assert.Equal(t, domain.Category("game_design"), results[0].Category)
	assert.Greater(t, results[0].Score, MinScore)
}

func TestSearchIdenticalTextScoresOne(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Rebuild([]domain.Document{
		doc("Dash ability provides quick horizontal movement"),
		doc("Checkpoint system reduces frustration"),
	}))

	results, err := idx.Search("Dash ability provides quick horizontal movement", 2)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
}

func TestSearchScoresWithinBoundsAndSorted(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Rebuild([]domain.Document{
		doc("Enemy AI with different behavior patterns"),
		doc("Boss enemy AI uses attack phases"),
		doc("Inventory system for managing items"),
		doc("Enemy patrol waypoints with chase behavior"),
	}))

	results, err := idx.Search("enemy AI behavior", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for i, r := range results {
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 1.0)
		assert.Greater(t, r.Score, MinScore)
		if i > 0 {
			assert.LessOrEqual(t, r.Score, results[i-1].Score, "scores must be non-increasing")
		}
	}
}

func TestSearchRespectsTopK(t *testing.T) {
	docs := make([]domain.Document, 8)
	for i := range docs {
		docs[i] = doc(fmt.Sprintf("platform jumping mechanic variant %d", i))
	}

	idx := New()
	require.NoError(t, idx.Rebuild(docs))

	results, err := idx.Search("platform jumping", 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearchTiesBrokenByCorpusOrder(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Rebuild([]domain.Document{
		doc("quest system objectives"),
		doc("quest system objectives"),
		doc("quest system objectives"),
	}))

	results, err := idx.Search("quest system", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 0, results[0].CorpusIndex)
	assert.Equal(t, 1, results[1].CorpusIndex)
	assert.Equal(t, 2, results[2].CorpusIndex)
}

func TestSearchNoSharedVocabulary(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Rebuild([]domain.Document{
		doc("Checkpoint system reduces frustration"),
	}))

	// Terms unseen at build time are dropped from the query vector
	results, err := idx.Search("xylophone zeppelin", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRebuildSwapsSnapshot(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Rebuild([]domain.Document{doc("wall jumping enables exploration")}))

	before := idx.Current()
	require.NoError(t, idx.Rebuild([]domain.Document{
		doc("wall jumping enables exploration"),
		doc("dash ability movement"),
	}))
	after := idx.Current()

	assert.NotSame(t, before, after)
	assert.Equal(t, 1, before.DocumentCount())
	assert.Equal(t, 2, after.DocumentCount())
}

func TestVocabularyCap(t *testing.T) {
	docs := make([]domain.Document, 0, 300)
	for i := 0; i < 300; i++ {
		docs = append(docs, doc(fmt.Sprintf(
			"term%da term%db term%dc term%dd shared keyword", i, i, i, i)))
	}

	idx := New()
	require.NoError(t, idx.Rebuild(docs))

	snap := idx.Current()
	assert.LessOrEqual(t, snap.VocabularySize(), MaxVocabulary)

	// High-frequency terms survive the cap
	_, ok := snap.vocab["shared"]
	assert.True(t, ok)
	_, ok = snap.vocab["keyword"]
	assert.True(t, ok)
}
