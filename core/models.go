package core

// Domain is the coarse classification of a query's intent.
type Domain string

const (
	// DomainEmployment marks queries about jobs, internships, and hiring.
	DomainEmployment Domain = "employment"
	// DomainTech marks queries that mention technical roles but no
	// employment vocabulary.
	DomainTech Domain = "tech"
	// DomainOther is the fallback for everything else.
	DomainOther Domain = "other"
)

// Valid reports whether d is one of the known domains.
func (d Domain) Valid() bool {
	switch d {
	case DomainEmployment, DomainTech, DomainOther:
		return true
	}
	return false
}

// QueryIntent is the classified form of a raw search query.
// It is built once per query and never modified afterwards.
// Slice fields are always non-nil; an empty slice means no matches.
type QueryIntent struct {
	Raw             string
	Normalized      string
	Domain          Domain
	Locations       []string // location tokens in query order, duplicates kept
	TimeExpressions []string // time-expression tokens in query order
	Skills          []string // skill tokens in query order
}

// Result is a scored page produced by one crawl.
// Score blends semantic similarity, keyword overlap, and a recency bonus,
// so it is not bounded to [0,1]. Results are ordered by descending score;
// equal scores keep their discovery order.
type Result struct {
	Query    string
	URL      string
	Title    string
	Excerpt  string    // bounded-length extract of the page's readable text
	Vector   []float32 // embedding of the excerpt
	Score    float64
	Contract string   // contract-type label, empty when none detected
	Skills   []string // detected skill tokens, set semantics
}
