// Package index derives term-weighted vectors from the knowledge base
// and answers nearest-neighbor queries by cosine similarity.
package index

import (
	"math"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/domain"
)

const (
	// MaxVocabulary caps the number of term dimensions, keeping only the
	// most frequent terms across the corpus.
	MaxVocabulary = 1000

	// MinScore is the minimum relevance threshold; results scoring at or
	// below it are discarded.
	MinScore = 0.1
)

// Snapshot is one immutable, fully built version of the index: the
// corpus in corpus order, the build-time vocabulary, and one
// unit-normalized weight vector per document. Queries always read a
// single consistent snapshot.
type Snapshot struct {
	docs    []domain.Document
	vocab   map[string]int
	idf     []float64
	vectors []sparseVector
}

// sparseVector maps vocabulary dimension -> weight
type sparseVector map[int]float64

// DocumentCount returns the number of documents in the snapshot
func (s *Snapshot) DocumentCount() int {
	if s == nil {
		return 0
	}
	return len(s.docs)
}

// VocabularySize returns the number of term dimensions in the snapshot
func (s *Snapshot) VocabularySize() int {
	if s == nil {
		return 0
	}
	return len(s.vocab)
}

// Index answers similarity queries against its current snapshot.
// Rebuild constructs a new snapshot off to the side and swaps it in
// atomically, so concurrent readers observe either the pre-rebuild or
// the post-rebuild snapshot, never a half-built one.
type Index struct {
	snapshot atomic.Pointer[Snapshot]
}

// New returns an index with an empty snapshot
func New() *Index {
	idx := &Index{}
	idx.snapshot.Store(&Snapshot{vocab: map[string]int{}})
	return idx
}

// Rebuild replaces the current snapshot with one built from docs. On
// error the previous snapshot remains intact and servable.
func (idx *Index) Rebuild(docs []domain.Document) error {
	snap, err := build(docs)
	if err != nil {
		return domain.NewDomainErrorWithCause(domain.ErrCodeRetrieval,
			"vector index rebuild failed", err)
	}
	idx.snapshot.Store(snap)
	return nil
}

// Current returns the snapshot served to readers
func (idx *Index) Current() *Snapshot {
	return idx.snapshot.Load()
}

func build(docs []domain.Document) (*Snapshot, error) {
	termCounts := make([]map[string]int, len(docs))
	corpusFreq := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range docs {
		counts := make(map[string]int)
		for _, token := range tokenize(doc.Content) {
			counts[token]++
		}
		termCounts[i] = counts
		for term, n := range counts {
			corpusFreq[term] += n
			docFreq[term]++
		}
	}

	vocab := selectVocabulary(corpusFreq)

	n := len(docs)
	idf := make([]float64, len(vocab))
	for term, dim := range vocab {
		// Smoothed inverse document frequency: rare terms weigh more.
		idf[dim] = math.Log(float64(1+n)/float64(1+docFreq[term])) + 1
	}

	vectors := make([]sparseVector, len(docs))
	for i, counts := range termCounts {
		vec := make(sparseVector, len(counts))
		for term, tf := range counts {
			dim, ok := vocab[term]
			if !ok {
				continue
			}
			vec[dim] = float64(tf) * idf[dim]
		}
		normalize(vec)
		vectors[i] = vec
	}

	copied := make([]domain.Document, len(docs))
	copy(copied, docs)

	return &Snapshot{
		docs:    copied,
		vocab:   vocab,
		idf:     idf,
		vectors: vectors,
	}, nil
}

// selectVocabulary keeps the top MaxVocabulary terms by corpus-wide
// frequency, ties broken lexicographically for a deterministic build.
func selectVocabulary(corpusFreq map[string]int) map[string]int {
	terms := make([]string, 0, len(corpusFreq))
	for term := range corpusFreq {
		terms = append(terms, term)
	}

	if len(terms) > MaxVocabulary {
		sort.Slice(terms, func(i, j int) bool {
			if corpusFreq[terms[i]] != corpusFreq[terms[j]] {
				return corpusFreq[terms[i]] > corpusFreq[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:MaxVocabulary]
	}

	// Dimensions are assigned in sorted term order
	sort.Strings(terms)
	vocab := make(map[string]int, len(terms))
	for dim, term := range terms {
		vocab[term] = dim
	}
	return vocab
}

func normalize(vec sparseVector) {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for dim, w := range vec {
		vec[dim] = w / norm
	}
}

// Search returns the topK documents most similar to query, in
// non-increasing score order. Results scoring at or below MinScore are
// discarded; ties are broken by corpus order. An empty corpus yields an
// empty result without error.
func (idx *Index) Search(query string, topK int) ([]domain.RetrievalResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}
	if topK <= 0 {
		return nil, domain.ErrInvalidTopK
	}

	snap := idx.Current()
	if snap.DocumentCount() == 0 {
		return []domain.RetrievalResult{}, nil
	}

	// The query vector is projected onto the build-time vocabulary only;
	// terms unseen at build time are dropped rather than forcing a
	// rebuild.
	queryVec := make(sparseVector)
	for _, token := range tokenize(query) {
		if dim, ok := snap.vocab[token]; ok {
			queryVec[dim] += snap.idf[dim]
		}
	}
	normalize(queryVec)

	type scored struct {
		idx   int
		score float64
	}
	var hits []scored
	for i, docVec := range snap.vectors {
		score := dot(queryVec, docVec)
		if score > MinScore {
			hits = append(hits, scored{idx: i, score: score})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].idx < hits[j].idx
	})
	if len(hits) > topK {
		hits = hits[:topK]
	}

	results := make([]domain.RetrievalResult, len(hits))
	for i, h := range hits {
		doc := snap.docs[h.idx]
		results[i] = domain.RetrievalResult{
			Content:     doc.Content,
			Category:    doc.Category,
			Subcategory: doc.Subcategory,
			Score:       math.Min(h.score, 1),
			CorpusIndex: h.idx,
		}
	}
	return results, nil
}

func dot(a, b sparseVector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for dim, w := range a {
		sum += w * b[dim]
	}
	return sum
}
