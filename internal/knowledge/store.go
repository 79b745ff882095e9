// Package knowledge owns the durable knowledge base: a categorized
// collection of short text snippets persisted as a single JSON document.
package knowledge

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/domain"
)

const knowledgeBaseFile = "knowledge_base.json"

// Store owns the knowledge base and its durability. All mutations go
// through Add, which rewrites the whole backing file before returning.
// The corpus is small (hundreds of snippets), so whole-file rewrites
// are favored over incremental persistence.
type Store struct {
	mu   sync.Mutex
	path string
	kb   domain.KnowledgeBase
}

// NewStore loads the knowledge base from dir, seeding and persisting the
// default corpus when no readable file exists. It fails only when the
// storage directory itself cannot be created.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeConfiguration,
			"knowledge base directory cannot be created", err)
	}

	s := &Store{path: filepath.Join(dir, knowledgeBaseFile)}

	kb, err := s.load()
	if err != nil {
		// Unreadable or corrupt state is masked by the default seed;
		// the next persist overwrites whatever was there.
		log.Printf("knowledge: falling back to default seed corpus: %v", err)
		kb = nil
	}
	if kb == nil {
		kb = DefaultKnowledgeBase()
		if err := persist(s.path, kb); err != nil {
			return nil, err
		}
	}

	s.kb = kb
	return s, nil
}

func (s *Store) load() (domain.KnowledgeBase, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base: %w", err)
	}

	var kb domain.KnowledgeBase
	if err := json.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base: %w", err)
	}
	return kb, nil
}

// persist rewrites the whole knowledge base file. Write-then-rename keeps
// the previous file intact if the write is interrupted.
func persist(path string, kb domain.KnowledgeBase) error {
	data, err := json.MarshalIndent(kb, "", "  ")
	if err != nil {
		return domain.NewDomainErrorWithCause(domain.ErrCodeInternalError,
			"failed to encode knowledge base", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return domain.NewDomainErrorWithCause(domain.ErrCodeConfiguration,
			"failed to write knowledge base", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return domain.NewDomainErrorWithCause(domain.ErrCodeConfiguration,
			"failed to replace knowledge base", err)
	}
	return nil
}

// Add appends items to category/subcategory, creating either as needed,
// and persists the full knowledge base synchronously before returning.
// An empty item list is a no-op that still persists.
func (s *Store) Add(category domain.Category, subcategory domain.Subcategory, items []string) error {
	if err := category.Validate(); err != nil {
		return err
	}
	if err := subcategory.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(items) > 0 {
		if s.kb[category] == nil {
			s.kb[category] = make(map[domain.Subcategory][]string)
		}
		s.kb[category][subcategory] = append(s.kb[category][subcategory], items...)
	}

	return persist(s.path, s.kb)
}

// Snapshot returns a deep copy of the current knowledge base
func (s *Store) Snapshot() domain.KnowledgeBase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kb.Clone()
}

// Documents flattens the knowledge base into corpus order: sorted by
// category, then subcategory, then insertion order. This order is the
// tie-break order for equal similarity scores.
func (s *Store) Documents() []domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]domain.Category, 0, len(s.kb))
	for category := range s.kb {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	var docs []domain.Document
	for _, category := range categories {
		subcategories := make([]domain.Subcategory, 0, len(s.kb[category]))
		for subcategory := range s.kb[category] {
			subcategories = append(subcategories, subcategory)
		}
		sort.Slice(subcategories, func(i, j int) bool { return subcategories[i] < subcategories[j] })

		for _, subcategory := range subcategories {
			for _, item := range s.kb[category][subcategory] {
				docs = append(docs, domain.Document{
					Content:     item,
					Category:    category,
					Subcategory: subcategory,
				})
			}
		}
	}
	return docs
}

// Stats returns total and per-category item counts
func (s *Store) Stats() *domain.KnowledgeStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &domain.KnowledgeStats{
		PerCategory: make(map[domain.Category]int, len(s.kb)),
	}
	for category, subcategories := range s.kb {
		count := 0
		for _, items := range subcategories {
			count += len(items)
		}
		stats.PerCategory[category] = count
		stats.TotalItems += count
	}
	stats.DocumentCount = stats.TotalItems
	return stats
}
