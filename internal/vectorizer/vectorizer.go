// Package vectorizer fits a TF-IDF vector space over a document
// corpus and projects text into it. Fitting is deterministic: the
// same corpus always yields the same vocabulary and the same vectors.
package vectorizer

import (
	"fmt"
	"math"
	"sort"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// Fitting configuration. Frozen as part of the model contract:
// stored matrices are only comparable to queries projected with the
// same settings.
const (
	// MaxFeatures caps the vocabulary size.
	MaxFeatures = 5000
	// MinDocFreq is the minimum number of documents a term must appear in.
	MinDocFreq = 1
	// MaxDocRatio drops terms present in more than this fraction of documents.
	MaxDocRatio = 0.8
)

// Vocabulary is an immutable fitted term space: a term-to-column
// mapping plus per-column inverse document frequencies. It is safe
// for concurrent use once fitted.
type Vocabulary struct {
	index map[string]int
	terms []string
	idf   []float64
}

// Fit builds a Vocabulary over the corpus. Terms are unigrams and
// bigrams after stopword removal, pruned by document frequency and
// truncated to MaxFeatures by total corpus frequency (ties broken
// alphabetically). Column order is alphabetical.
func Fit(docs []string) (*Vocabulary, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("fit vocabulary: %w", domain.ErrEmptyCatalog)
	}

	docFreq := make(map[string]int)
	corpusFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range Terms(doc) {
			corpusFreq[term]++
			if !seen[term] {
				seen[term] = true
				docFreq[term]++
			}
		}
	}

	maxDocs := MaxDocRatio * float64(len(docs))
	candidates := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df < MinDocFreq || float64(df) > maxDocs {
			continue
		}
		candidates = append(candidates, term)
	}

	if len(candidates) > MaxFeatures {
		sort.Slice(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if corpusFreq[a] != corpusFreq[b] {
				return corpusFreq[a] > corpusFreq[b]
			}
			return a < b
		})
		candidates = candidates[:MaxFeatures]
	}
	sort.Strings(candidates)

	v := &Vocabulary{
		index: make(map[string]int, len(candidates)),
		terms: candidates,
		idf:   make([]float64, len(candidates)),
	}
	n := float64(len(docs))
	for i, term := range candidates {
		v.index[term] = i
		// Smoothed IDF keeps weights finite for terms in every document.
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
	return v, nil
}

// New reconstructs a Vocabulary from stored terms and IDF values,
// e.g. when loading persisted model artifacts.
func New(terms []string, idf []float64) (*Vocabulary, error) {
	if len(terms) != len(idf) {
		return nil, fmt.Errorf("vocabulary terms/idf length mismatch: %d != %d", len(terms), len(idf))
	}
	index := make(map[string]int, len(terms))
	for i, t := range terms {
		index[t] = i
	}
	return &Vocabulary{index: index, terms: terms, idf: idf}, nil
}

// Transform projects text into the fitted space: raw term counts
// weighted by IDF, L2-normalized. Terms unseen during fitting
// contribute nothing. The Vocabulary is never refit here.
func (v *Vocabulary) Transform(text string) []float64 {
	vec := make([]float64, len(v.terms))
	for _, term := range Terms(text) {
		if col, ok := v.index[term]; ok {
			vec[col] += v.idf[col]
		}
	}

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// TransformAll projects every document, producing the catalog matrix.
// Row order follows document order.
func (v *Vocabulary) TransformAll(docs []string) [][]float64 {
	rows := make([][]float64, len(docs))
	for i, doc := range docs {
		rows[i] = v.Transform(doc)
	}
	return rows
}

// Size returns the vocabulary dimensionality.
func (v *Vocabulary) Size() int { return len(v.terms) }

// Terms returns the vocabulary terms in column order.
func (v *Vocabulary) Terms() []string { return v.terms }

// IDF returns the inverse document frequencies in column order.
func (v *Vocabulary) IDF() []float64 { return v.idf }
