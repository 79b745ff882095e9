package service

import (
	"context"
	"sync"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/domain"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/index"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/knowledge"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/telemetry"
)

// RetrievalService composes the knowledge store and the vector index.
// Mutation, persistence, and index rebuild form one logical unit of
// work serialized under mu; searches read the current index snapshot
// without locking.
type RetrievalService struct {
	mu    sync.Mutex
	store *knowledge.Store
	index *index.Index
}

// NewRetrievalService builds the initial index snapshot from the store.
// The index is rebuilt exactly once here and once per AddKnowledge call.
func NewRetrievalService(store *knowledge.Store) (*RetrievalService, error) {
	idx := index.New()
	if err := idx.Rebuild(store.Documents()); err != nil {
		return nil, err
	}
	return &RetrievalService{store: store, index: idx}, nil
}

// AddKnowledge appends items to category/subcategory, persists the
// knowledge base, and rebuilds the index. A rebuild failure is surfaced
// as a retrieval error while the previous snapshot stays servable.
func (s *RetrievalService) AddKnowledge(ctx context.Context, category domain.Category, subcategory domain.Subcategory, items []string) (*domain.KnowledgeStats, error) {
	ctx, span := telemetry.StartSpan(ctx, "RetrievalService.AddKnowledge", telemetry.SpanAttributes{
		Category:    string(category),
		Subcategory: string(subcategory),
		Operation:   "add",
	})
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Add(category, subcategory, items); err != nil {
		return nil, err
	}

	if err := s.index.Rebuild(s.store.Documents()); err != nil {
		span.SetError(err)
		return nil, err
	}

	return s.stats(), nil
}

// Search answers a similarity query against the current index snapshot
func (s *RetrievalService) Search(ctx context.Context, query string, topK int) ([]domain.RetrievalResult, error) {
	_, span := telemetry.StartSpan(ctx, "RetrievalService.Search", telemetry.SpanAttributes{
		Operation: "search",
	})
	defer span.End()

	return s.index.Search(query, topK)
}

// Stats returns knowledge base counts plus the indexed document count
func (s *RetrievalService) Stats(ctx context.Context) *domain.KnowledgeStats {
	_, span := telemetry.StartSpan(ctx, "RetrievalService.Stats", telemetry.SpanAttributes{
		Operation: "stats",
	})
	defer span.End()

	return s.stats()
}

func (s *RetrievalService) stats() *domain.KnowledgeStats {
	stats := s.store.Stats()
	stats.DocumentCount = s.index.Current().DocumentCount()
	return stats
}
