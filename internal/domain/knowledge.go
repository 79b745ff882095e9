package domain

import "regexp"

// Category is a validated top-level knowledge base grouping
// (e.g. "game_design", "unity_specific", "best_practices").
type Category string

// Subcategory is a validated second-level grouping inside a category
// (e.g. "platformer_mechanics", "player_controller").
type Subcategory string

// nameRE constrains category/subcategory names so typos like
// "Game Design" vs "game_design" cannot silently fragment the corpus.
var nameRE = regexp.MustCompile(`^[a-z0-9][a-z0-9_]{0,63}$`)

// Validate checks the category name against the naming rules
func (c Category) Validate() error {
	if !nameRE.MatchString(string(c)) {
		return ErrInvalidCategory
	}
	return nil
}

// Validate checks the subcategory name against the naming rules
func (s Subcategory) Validate() error {
	if !nameRE.MatchString(string(s)) {
		return ErrInvalidSubcategory
	}
	return nil
}

// KnowledgeBase maps category -> subcategory -> ordered snippets.
// Insertion order inside a subcategory is preserved; duplicate snippet
// text is stored, not merged.
type KnowledgeBase map[Category]map[Subcategory][]string

// Clone returns a deep copy of the knowledge base
func (kb KnowledgeBase) Clone() KnowledgeBase {
	out := make(KnowledgeBase, len(kb))
	for category, subcategories := range kb {
		out[category] = make(map[Subcategory][]string, len(subcategories))
		for subcategory, items := range subcategories {
			copied := make([]string, len(items))
			copy(copied, items)
			out[category][subcategory] = copied
		}
	}
	return out
}

// ItemCount returns the total number of snippets across all categories
func (kb KnowledgeBase) ItemCount() int {
	total := 0
	for _, subcategories := range kb {
		for _, items := range subcategories {
			total += len(items)
		}
	}
	return total
}

// Document is a read-only projection of one snippet plus its labels,
// used only inside the vector index. Documents are rebuilt whenever the
// knowledge base changes and hold no independent lifecycle.
type Document struct {
	Content     string
	Category    Category
	Subcategory Subcategory
}

// RetrievalResult is one scored search hit. Score is cosine similarity
// in [0,1]. CorpusIndex is the document's position in corpus order and
// is the tie-break key for equal scores.
type RetrievalResult struct {
	Content     string
	Category    Category
	Subcategory Subcategory
	Score       float64
	CorpusIndex int
}

// KnowledgeStats summarizes the knowledge base for diagnostics
type KnowledgeStats struct {
	TotalItems    int
	DocumentCount int
	PerCategory   map[Category]int
}
