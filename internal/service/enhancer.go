package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/domain"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/telemetry"
)

const enhancerSystemPrompt = "You are an expert game designer who helps enhance game ideas with creative suggestions."

// ChatCompleter defines the LLM interface needed by EnhancerService
type ChatCompleter interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// PromptAugmenter enriches a prompt with retrieved knowledge context
type PromptAugmenter interface {
	AugmentPrompt(ctx context.Context, originalPrompt, subject, categoryHint string) string
}

// EnhancerService suggests improvements to a game idea across the
// mechanics, levels, and story categories. The enhancement prompt is
// augmented with retrieved knowledge before the model call; when the
// model is unavailable or returns unparsable output, fixed fallback
// suggestions are used so the endpoint never fails outright.
type EnhancerService struct {
	llm       ChatCompleter
	augmenter PromptAugmenter
}

// NewEnhancerService creates a new EnhancerService instance
func NewEnhancerService(llm ChatCompleter, augmenter PromptAugmenter) *EnhancerService {
	return &EnhancerService{llm: llm, augmenter: augmenter}
}

// EnhanceIdea returns enhancement suggestions for the given idea and genre
func (s *EnhancerService) EnhanceIdea(ctx context.Context, gameIdea, genre string) ([]domain.GameEnhancement, error) {
	ctx, span := telemetry.StartSpan(ctx, "EnhancerService.EnhanceIdea", telemetry.SpanAttributes{
		Genre:     genre,
		Operation: "enhance",
	})
	defer span.End()

	if genre == "" {
		genre = "general"
	}

	prompt := enhancementPrompt(gameIdea, genre)
	if s.augmenter != nil {
		prompt = s.augmenter.AugmentPrompt(ctx, prompt, gameIdea, genre)
	}

	content, err := s.llm.Complete(ctx, enhancerSystemPrompt, prompt)
	if err != nil {
		log.Printf("enhancer: completion failed, using fallback suggestions: %v", err)
		telemetry.CaptureError(ctx, err)
		return fallbackEnhancements(), nil
	}

	enhancements, err := parseEnhancements(content)
	if err != nil {
		log.Printf("enhancer: failed to parse model response, using fallback suggestions: %v", err)
		return fallbackEnhancements(), nil
	}

	return enhancements, nil
}

func enhancementPrompt(gameIdea, genre string) string {
	return fmt.Sprintf(`I have a game idea: %q
Genre: %s

Please suggest enhancements in these categories:

1. MECHANICS: Suggest 3-5 gameplay mechanics, abilities, or systems that would make this game more engaging
2. LEVELS: Suggest 3-5 level design ideas, environments, or progression elements
3. STORY: Suggest 3-5 narrative elements, character motivations, or world-building ideas

Format your response as JSON:
{
    "mechanics": {"suggestions": ["..."], "description": "..."},
    "levels": {"suggestions": ["..."], "description": "..."},
    "story": {"suggestions": ["..."], "description": "..."}
}

Make suggestions that are:
- Specific and actionable
- Appropriate for the genre
- Creative but realistic for a prototype
- Easy to implement in Unity`, gameIdea, genre)
}

type enhancementDetails struct {
	Suggestions []string `json:"suggestions"`
	Description string   `json:"description"`
}

// parseEnhancements extracts the JSON object from the model response,
// tolerating markdown fences and surrounding prose.
func parseEnhancements(content string) ([]domain.GameEnhancement, error) {
	jsonStr := content
	if i := strings.Index(content, "```json"); i >= 0 {
		rest := content[i+len("```json"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			jsonStr = strings.TrimSpace(rest[:j])
		}
	} else if i := strings.Index(content, "{"); i >= 0 {
		if j := strings.LastIndex(content, "}"); j > i {
			jsonStr = content[i : j+1]
		}
	}

	var data map[string]enhancementDetails
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return nil, fmt.Errorf("no parsable JSON in model response: %w", err)
	}

	var enhancements []domain.GameEnhancement
	for _, category := range []domain.EnhancementCategory{
		domain.EnhancementMechanics, domain.EnhancementLevels, domain.EnhancementStory,
	} {
		details, ok := data[string(category)]
		if !ok {
			continue
		}
		description := details.Description
		if description == "" {
			description = domain.EnhancementCategories[category]
		}
		enhancements = append(enhancements, domain.GameEnhancement{
			Category:    category,
			Suggestions: details.Suggestions,
			Description: description,
		})
	}

	if len(enhancements) == 0 {
		return nil, fmt.Errorf("model response contained no known categories")
	}
	return enhancements, nil
}

func fallbackEnhancements() []domain.GameEnhancement {
	return []domain.GameEnhancement{
		{
			Category: domain.EnhancementMechanics,
			Suggestions: []string{
				"Double jump ability",
				"Collectible items",
				"Health system",
				"Power-ups",
				"Basic movement controls",
			},
			Description: "Core gameplay mechanics for player interaction",
		},
		{
			Category: domain.EnhancementLevels,
			Suggestions: []string{
				"Multiple levels with increasing difficulty",
				"Secret areas to discover",
				"Checkpoint system",
				"Different environments",
				"Boss battle areas",
			},
			Description: "Level design and progression elements",
		},
		{
			Category: domain.EnhancementStory,
			Suggestions: []string{
				"Main character with a goal",
				"Antagonist or obstacle to overcome",
				"World-building elements",
				"Character motivation",
				"Simple narrative arc",
			},
			Description: "Narrative and character development ideas",
		},
	}
}
