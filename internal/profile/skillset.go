package profile

import (
	"encoding/json"
	"strings"
)

// defaultSynonyms collapses common skill aliases to a canonical token.
var defaultSynonyms = map[string]string{
	"golang":              "go",
	"js":                  "javascript",
	"ts":                  "typescript",
	"node":                "nodejs",
	"node.js":             "nodejs",
	"postgres":            "postgresql",
	"psql":                "postgresql",
	"k8s":                 "kubernetes",
	"ml":                  "machine learning",
	"tf":                  "terraform",
	"gcp":                 "google cloud",
	"amazon web services": "aws",
}

// SkillSet is an ordered collection of normalized skill tokens. Tokens are
// lower-cased, trimmed and synonym-collapsed at construction; duplicates are
// dropped while the first-seen order is preserved. The zero value is an empty
// set. A SkillSet is never mutated after construction.
type SkillSet struct {
	tokens []string
}

// NewSkillSet builds a SkillSet from raw skill strings using the default
// synonym table.
func NewSkillSet(skills []string) SkillSet {
	return NewSkillSetWithSynonyms(skills, defaultSynonyms)
}

// NewSkillSetWithSynonyms builds a SkillSet using a caller-supplied synonym
// table. A nil table disables synonym collapsing.
func NewSkillSetWithSynonyms(skills []string, synonyms map[string]string) SkillSet {
	tokens := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))

	for _, raw := range skills {
		token := NormalizeSkill(raw)
		if token == "" {
			continue
		}
		if canonical, ok := synonyms[token]; ok {
			token = canonical
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}

	return SkillSet{tokens: tokens}
}

// NormalizeSkill lower-cases a raw skill string and collapses inner whitespace.
func NormalizeSkill(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// Tokens returns a copy of the normalized tokens in insertion order.
func (s SkillSet) Tokens() []string {
	out := make([]string, len(s.tokens))
	copy(out, s.tokens)
	return out
}

func (s SkillSet) Len() int { return len(s.tokens) }

func (s SkillSet) Contains(token string) bool {
	token = NormalizeSkill(token)
	for _, t := range s.tokens {
		if t == token {
			return true
		}
	}
	return false
}

// Intersect returns the tokens present in both sets, in s's iteration order.
func (s SkillSet) Intersect(other SkillSet) []string {
	out := make([]string, 0, len(s.tokens))
	for _, t := range s.tokens {
		if other.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

// Subtract returns the tokens of s absent from other, in s's iteration order.
func (s SkillSet) Subtract(other SkillSet) []string {
	out := make([]string, 0, len(s.tokens))
	for _, t := range s.tokens {
		if !other.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

// MarshalJSON encodes the set as a plain JSON array of tokens.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	if s.tokens == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.tokens)
}

// UnmarshalJSON decodes a JSON array of skill strings, normalizing and
// deduplicating them.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NewSkillSet(raw)
	return nil
}
