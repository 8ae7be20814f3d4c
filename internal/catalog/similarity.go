package catalog

import (
	"strings"
	"unicode"

	"github.com/agext/levenshtein"

	"github.com/machinehub/discovery-pipeline/internal/entity"
)

// Scoring weights. Name similarity dominates; spec-token overlap separates
// models whose names differ only in trim level or capacity.
const (
	nameWeight  = 0.75
	tokenWeight = 0.25
)

// Score computes the similarity in [0,1] between a fingerprint and a catalog
// machine. When neither side carries spec tokens the name similarity stands
// alone rather than being diluted by an empty overlap.
func Score(fp entity.Fingerprint, m *entity.CatalogMachine) float64 {
	nameSim := levenshtein.Match(Normalize(fp.Name), Normalize(m.Name), nil)

	fpTokens := normalizeTokens(fp.SpecTokens)
	mTokens := normalizeTokens(m.SpecTokens)
	if len(fpTokens) == 0 && len(mTokens) == 0 {
		return nameSim
	}

	return nameWeight*nameSim + tokenWeight*tokenOverlap(fpTokens, mTokens)
}

// Normalize lowercases, strips punctuation and collapses whitespace so that
// "HAAS VF-2SS" and "haas vf 2ss" fingerprint identically.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case !lastSpace:
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// tokenOverlap is the Jaccard index of the two token sets.
func tokenOverlap(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func normalizeTokens(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		n := Normalize(t)
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}
