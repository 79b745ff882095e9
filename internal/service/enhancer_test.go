package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/domain"
)

type MockChatCompleter struct {
	mock.Mock
}

func (m *MockChatCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.Error(1)
}

type passthroughAugmenter struct{}

func (passthroughAugmenter) AugmentPrompt(ctx context.Context, originalPrompt, subject, categoryHint string) string {
	return originalPrompt + "\n\naugmented context"
}

func TestEnhanceIdeaParsesModelResponse(t *testing.T) {
	llm := &MockChatCompleter{}
	llm.On("Complete", mock.Anything, enhancerSystemPrompt, mock.MatchedBy(func(prompt string) bool {
		return len(prompt) > 0
	})).Return(`{
		"mechanics": {"suggestions": ["Grappling hook", "Time rewind"], "description": "Movement systems"},
		"levels": {"suggestions": ["Floating islands"], "description": "Sky environments"},
		"story": {"suggestions": ["Lost kingdom"], "description": "Backstory"}
	}`, nil)

	svc := NewEnhancerService(llm, passthroughAugmenter{})
	enhancements, err := svc.EnhanceIdea(context.Background(), "a sky pirate adventure", "platformer")
	require.NoError(t, err)
	require.Len(t, enhancements, 3)

	assert.Equal(t, domain.EnhancementMechanics, enhancements[0].Category)
	assert.Equal(t, []string{"Grappling hook", "Time rewind"}, enhancements[0].Suggestions)
	assert.Equal(t, "Movement systems", enhancements[0].Description)
	llm.AssertExpectations(t)
}

func TestEnhanceIdeaParsesMarkdownFencedJSON(t *testing.T) {
	llm := &MockChatCompleter{}
	llm.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(
		"Here are my suggestions:\n```json\n{\"mechanics\": {\"suggestions\": [\"Dash\"], \"description\": \"d\"}}\n```\nHope this helps!",
		nil)

	svc := NewEnhancerService(llm, nil)
	enhancements, err := svc.EnhanceIdea(context.Background(), "idea", "")
	require.NoError(t, err)
	require.Len(t, enhancements, 1)
	assert.Equal(t, []string{"Dash"}, enhancements[0].Suggestions)
}

func TestEnhanceIdeaFallbackOnAPIError(t *testing.T) {
	llm := &MockChatCompleter{}
	llm.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("rate limited"))

	svc := NewEnhancerService(llm, nil)
	enhancements, err := svc.EnhanceIdea(context.Background(), "idea", "rpg")
	require.NoError(t, err)
	require.Len(t, enhancements, 3)
	assert.Equal(t, domain.EnhancementMechanics, enhancements[0].Category)
	assert.NotEmpty(t, enhancements[0].Suggestions)
}

func TestEnhanceIdeaFallbackOnUnparsableResponse(t *testing.T) {
	llm := &MockChatCompleter{}
	llm.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("I cannot help with that.", nil)

	svc := NewEnhancerService(llm, nil)
	enhancements, err := svc.EnhanceIdea(context.Background(), "idea", "")
	require.NoError(t, err)
	require.Len(t, enhancements, 3)
}

func TestParseEnhancementsIgnoresUnknownCategories(t *testing.T) {
	enhancements, err := parseEnhancements(`{
		"mechanics": {"suggestions": ["Dash"]},
		"marketing": {"suggestions": ["Ads"]}
	}`)
	require.NoError(t, err)
	require.Len(t, enhancements, 1)

	// Missing description falls back to the category default
	assert.Equal(t, domain.EnhancementCategories[domain.EnhancementMechanics], enhancements[0].Description)
}
