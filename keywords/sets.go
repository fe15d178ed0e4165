package keywords

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Sets holds the keyword vocabulary, one membership set per purpose.
// The sets are disjoint by purpose but may share tokens. All tokens are
// stored lowercased and trimmed; Sets is read-only after construction.
type Sets struct {
	Employment map[string]struct{}
	TechJob    map[string]struct{}
	Location   map[string]struct{}
	Time       map[string]struct{}
	Skill      map[string]struct{}
	Contract   map[string]struct{}
}

// setsFile is the on-disk JSON shape. Missing keys default to empty sets.
type setsFile struct {
	Employment []string `json:"employment_keywords"`
	TechJob    []string `json:"tech_job_keywords"`
	Location   []string `json:"location_keywords"`
	Time       []string `json:"time_keywords"`
	Skill      []string `json:"skill_keywords"`
	Contract   []string `json:"contract_keywords"`
}

// Load reads the keyword configuration from a JSON file.
// A missing or malformed file is an error; the caller treats it as fatal
// at startup since no classification can happen without a vocabulary.
func Load(path string) (*Sets, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keyword file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse builds Sets from raw JSON bytes.
func Parse(raw []byte) (*Sets, error) {
	var f setsFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing keyword file: %w", err)
	}
	return &Sets{
		Employment: toSet(f.Employment),
		TechJob:    toSet(f.TechJob),
		Location:   toSet(f.Location),
		Time:       toSet(f.Time),
		Skill:      toSet(f.Skill),
		Contract:   toSet(f.Contract),
	}, nil
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}
