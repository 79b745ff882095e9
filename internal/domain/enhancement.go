package domain

// EnhancementCategory identifies one axis of idea enhancement
type EnhancementCategory string

const (
	EnhancementMechanics EnhancementCategory = "mechanics"
	EnhancementLevels    EnhancementCategory = "levels"
	EnhancementStory     EnhancementCategory = "story"
)

// EnhancementCategories maps each category to its description
var EnhancementCategories = map[EnhancementCategory]string{
	EnhancementMechanics: "Gameplay mechanics and player abilities",
	EnhancementLevels:    "Level design and environment ideas",
	EnhancementStory:     "Narrative elements and character development",
}

// GameEnhancement holds suggested improvements for one category
type GameEnhancement struct {
	Category    EnhancementCategory
	Suggestions []string
	Description string
}
