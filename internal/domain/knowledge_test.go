package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryValidate(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		wantErr  bool
	}{
		{"valid simple", "game_design", false},
		{"valid with digits", "unity_2d", false},
		{"valid single char", "x", false},
		{"empty", "", true},
		{"uppercase", "Game_Design", true},
		{"spaces", "game design", true},
		{"leading underscore", "_design", true},
		{"hyphen", "game-design", true},
		{"too long", Category("a123456789012345678901234567890123456789012345678901234567890123456789"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.category.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, ErrInvalidCategory, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubcategoryValidate(t *testing.T) {
	assert.NoError(t, Subcategory("platformer_mechanics").Validate())
	assert.Error(t, Subcategory("").Validate())
	assert.Error(t, Subcategory("Platformer Mechanics").Validate())
}

func TestKnowledgeBaseClone(t *testing.T) {
	kb := KnowledgeBase{
		"game_design": {
			"platformer_mechanics": {"a", "b"},
		},
	}

	clone := kb.Clone()
	require.Equal(t, kb, clone)

	// Mutating the clone must not leak into the original
	clone["game_design"]["platformer_mechanics"][0] = "changed"
	clone["game_design"]["rpg_elements"] = []string{"c"}

	assert.Equal(t, "a", kb["game_design"]["platformer_mechanics"][0])
	assert.NotContains(t, kb["game_design"], Subcategory("rpg_elements"))
}

func TestKnowledgeBaseItemCount(t *testing.T) {
	kb := KnowledgeBase{
		"game_design": {
			"platformer_mechanics": {"a", "b"},
			"rpg_elements":         {"c"},
		},
		"best_practices": {
			"performance": {"d", "d"},
		},
	}

	assert.Equal(t, 5, kb.ItemCount())
	assert.Equal(t, 0, KnowledgeBase{}.ItemCount())
}

func TestDomainError(t *testing.T) {
	err := NewDomainError(ErrCodeValidation, "bad input")
	assert.Equal(t, "[VALIDATION_ERROR] bad input", err.Error())
	assert.Nil(t, err.Unwrap())

	wrapped := NewDomainErrorWithCause(ErrCodeRetrieval, "rebuild failed", assert.AnError)
	assert.Contains(t, wrapped.Error(), "RETRIEVAL_ERROR")
	assert.Equal(t, assert.AnError, wrapped.Unwrap())
}
