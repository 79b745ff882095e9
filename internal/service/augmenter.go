package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/domain"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/telemetry"
)

const (
	derivedQueryTopK     = 3
	maxContextItems      = 10
	contextHeader        = "RELEVANT GAME DESIGN AND UNITY KNOWLEDGE:"
	contextFooter        = "Please use this knowledge to provide more specific, actionable, and Unity-appropriate suggestions."
	genericBestPractices = "Unity best practices"
)

// AugmentPrompt appends a ranked, deduplicated knowledge context block
// to originalPrompt. It is a pure function of the current index
// snapshot and its inputs; any retrieval failure degrades to returning
// the original prompt unchanged.
func (s *RetrievalService) AugmentPrompt(ctx context.Context, originalPrompt, subject, categoryHint string) string {
	ctx, span := telemetry.StartSpan(ctx, "RetrievalService.AugmentPrompt", telemetry.SpanAttributes{
		Genre:     categoryHint,
		Operation: "augment",
	})
	defer span.End()

	results := s.collectRelevant(ctx, derivedQueries(subject, categoryHint))
	if len(results) == 0 {
		return originalPrompt
	}

	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("- %s (Category: %s/%s)", r.Content, r.Category, r.Subcategory))
	}

	var b strings.Builder
	b.WriteString(originalPrompt)
	b.WriteString("\n\n")
	b.WriteString(contextHeader)
	b.WriteString("\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	b.WriteString(contextFooter)
	return b.String()
}

// derivedQueries builds the fixed set of search queries from the
// subject phrase and the optional category hint (typically a genre).
func derivedQueries(subject, categoryHint string) []string {
	queries := []string{subject}
	if hint := strings.TrimSpace(categoryHint); hint != "" {
		queries = append(queries,
			hint,
			hint+" mechanics",
			hint+" game design",
		)
	}
	return append(queries, genericBestPractices)
}

// collectRelevant runs every derived query, merges the hits
// deduplicated by exact content (keeping the maximum score seen), and
// returns at most maxContextItems results sorted descending by score
// with ties in corpus order.
func (s *RetrievalService) collectRelevant(ctx context.Context, queries []string) []domain.RetrievalResult {
	best := make(map[string]domain.RetrievalResult)
	for _, query := range queries {
		results, err := s.Search(ctx, query, derivedQueryTopK)
		if err != nil {
			// Blank derived queries are expected when no hint is given;
			// anything retrievable from the remaining queries still counts.
			continue
		}
		for _, r := range results {
			if existing, ok := best[r.Content]; !ok || r.Score > existing.Score {
				best[r.Content] = r
			}
		}
	}

	merged := make([]domain.RetrievalResult, 0, len(best))
	for _, r := range best {
		merged = append(merged, r)
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Score != merged[j].Score {
			return merged[i].Score > merged[j].Score
		}
		return merged[i].CorpusIndex < merged[j].CorpusIndex
	})

	if len(merged) > maxContextItems {
		merged = merged[:maxContextItems]
	}
	return merged
}
