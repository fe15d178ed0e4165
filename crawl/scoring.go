package crawl

import "math"

// Blended score weights. The lexical term's denominator is the page token
// count, so the lexical contribution shrinks with page verbosity and the
// total is not bounded to [0,1].
const (
	semanticWeight = 0.5
	lexicalWeight  = 0.4
	recencyBonus   = 0.1
)

// CosineSimilarity returns the cosine of the angle between a and b,
// in [-1, 1]. When either vector has zero norm the result is exactly 0.0;
// that is a defined edge case, not an error. Vectors of different lengths
// are compared over their common prefix.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, v := range a {
		normA += float64(v) * float64(v)
	}
	for _, v := range b {
		normB += float64(v) * float64(v)
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// KeywordMatchRatio is the count of query tokens that also occur in the
// page's token set, divided by the page token count (never less than 1).
// The denominator is the page length, not the query length, so verbose
// pages that merely mention the terms score lower.
func KeywordMatchRatio(queryTokens, pageTokens []string) float64 {
	pageSet := make(map[string]struct{}, len(pageTokens))
	for _, t := range pageTokens {
		pageSet[t] = struct{}{}
	}

	matched := 0
	for _, q := range queryTokens {
		if _, ok := pageSet[q]; ok {
			matched++
		}
	}

	denom := len(pageTokens)
	if denom < 1 {
		denom = 1
	}
	return float64(matched) / float64(denom)
}

// BlendScore combines the semantic and lexical signals with the recency
// bonus into the final relevance score.
func BlendScore(cosine, keywordRatio float64, recent bool) float64 {
	score := semanticWeight*cosine + lexicalWeight*keywordRatio
	if recent {
		score += recencyBonus
	}
	return score
}
