package keywords

import (
	"log/slog"
	"strings"

	"github.com/veilleur/jobscout/core"
	"github.com/veilleur/jobscout/textproc"
)

// recencyMarkers are matched as raw case-insensitive substrings against the
// full extracted page text, not against the token set.
var recencyMarkers = []string{
	"today",
	"yesterday",
	"recent",
	"new",
	"24h",
	"aujourd'hui",
	"hier",
	"récent",
	"nouveau",
}

// Classifier answers the lexical questions the crawler asks about queries
// and pages. It is stateless beyond its read-only keyword sets and is safe
// for concurrent use.
type Classifier struct {
	sets   *Sets
	logger *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewClassifier creates a classifier over the given keyword sets.
func NewClassifier(sets *Sets, opts ...Option) (*Classifier, error) {
	if sets == nil {
		return nil, ErrSetsRequired
	}

	c := &Classifier{
		sets:   sets,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// InferIntent classifies a raw query into a QueryIntent.
// Domain resolution is first-match-wins: employment vocabulary is checked
// before tech vocabulary, and everything else falls through to other.
func (c *Classifier) InferIntent(query string) core.QueryIntent {
	normalized := textproc.Normalize(query)
	tokens := textproc.Tokenize(normalized)

	domain := core.DomainOther
	if anyIn(tokens, c.sets.Employment) {
		domain = core.DomainEmployment
	} else if anyIn(tokens, c.sets.TechJob) {
		domain = core.DomainTech
	}

	intent := core.QueryIntent{
		Raw:             query,
		Normalized:      normalized,
		Domain:          domain,
		Locations:       ordered(tokens, c.sets.Location),
		TimeExpressions: ordered(tokens, c.sets.Time),
		Skills:          ordered(tokens, c.sets.Skill),
	}

	c.logger.Debug("inferred query intent",
		"query", query,
		"domain", domain,
		"locations", len(intent.Locations),
		"skills", len(intent.Skills))

	return intent
}

// Relevant is the pre-embedding gate: a page is worth scoring only when
// its token set intersects the employment or skill vocabulary.
func (c *Classifier) Relevant(tokens []string) bool {
	for _, t := range tokens {
		if _, ok := c.sets.Employment[t]; ok {
			return true
		}
		if _, ok := c.sets.Skill[t]; ok {
			return true
		}
	}
	return false
}

// DetectSkills returns the skill tokens present in the page tokens.
// Set semantics: each skill appears at most once, order not guaranteed.
func (c *Classifier) DetectSkills(tokens []string) []string {
	seen := make(map[string]struct{})
	skills := []string{}
	for _, t := range tokens {
		if _, ok := c.sets.Skill[t]; !ok {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		skills = append(skills, t)
	}
	return skills
}

// ContractType returns the first token found in the contract vocabulary,
// or the empty string when none matches.
func (c *Classifier) ContractType(tokens []string) string {
	for _, t := range tokens {
		if _, ok := c.sets.Contract[t]; ok {
			return t
		}
	}
	return ""
}

// HasRecencySignal reports whether any recency marker occurs in text.
func (c *Classifier) HasRecencySignal(text string) bool {
	lowered := strings.ToLower(text)
	for _, marker := range recencyMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// anyIn reports whether any token is a member of set.
func anyIn(tokens []string, set map[string]struct{}) bool {
	for _, t := range tokens {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

// ordered returns the tokens that belong to set, preserving query order
// and keeping duplicates when the input repeats them.
func ordered(tokens []string, set map[string]struct{}) []string {
	matched := []string{}
	for _, t := range tokens {
		if _, ok := set[t]; ok {
			matched = append(matched, t)
		}
	}
	return matched
}
