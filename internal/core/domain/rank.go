package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Rank is a military rank drawn from the fixed CBMERJ hierarchy.
type Rank string

// Ranks, most senior first. The string values match what the roster
// stores and displays.
const (
	RankColonel          Rank = "CEL BM"
	RankLtColonel        Rank = "TEN CEL BM"
	RankMajor            Rank = "MAJ BM"
	RankCaptain          Rank = "CAP BM"
	RankFirstLieutenant  Rank = "1º TEN BM"
	RankSecondLieutenant Rank = "2º TEN BM"
	RankAspirant         Rank = "ASPIRANTE BM"
	RankSubLieutenant    Rank = "SUBTEN BM"
	RankFirstSergeant    Rank = "1º SGT BM"
	RankSecondSergeant   Rank = "2º SGT BM"
	RankThirdSergeant    Rank = "3º SGT BM"
	RankCorporal         Rank = "CB BM"
	RankSoldier          Rank = "SD BM"
)

// UnknownRankWeight sorts any unrecognized rank after every known one.
const UnknownRankWeight = 99

var rankOrder = []Rank{
	RankColonel,
	RankLtColonel,
	RankMajor,
	RankCaptain,
	RankFirstLieutenant,
	RankSecondLieutenant,
	RankAspirant,
	RankSubLieutenant,
	RankFirstSergeant,
	RankSecondSergeant,
	RankThirdSergeant,
	RankCorporal,
	RankSoldier,
}

var rankWeights = func() map[Rank]int {
	weights := make(map[Rank]int, len(rankOrder))
	for i, rank := range rankOrder {
		weights[rank] = i + 1
	}
	return weights
}()

var whitespaceRun = regexp.MustCompile(`\s+`)

// Ranks returns the full hierarchy, most senior first.
func Ranks() []Rank {
	out := make([]Rank, len(rankOrder))
	copy(out, rankOrder)
	return out
}

// NormalizeRank upper-cases the value, strips non-breaking spaces, and
// collapses whitespace runs. Legacy records carry all three defects.
func NormalizeRank(value string) string {
	normalized := strings.ToUpper(value)
	normalized = strings.ReplaceAll(normalized, "\u00a0", " ")
	normalized = whitespaceRun.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// ParseRank normalizes the value and rejects anything outside the hierarchy.
func ParseRank(value string) (Rank, error) {
	normalized := Rank(NormalizeRank(value))
	if _, ok := rankWeights[normalized]; !ok {
		return "", fmt.Errorf("unknown rank %q", value)
	}
	return normalized, nil
}

// Weight returns the sort ordinal for the rank, 1 being the most senior.
// Unrecognized values get UnknownRankWeight so they sort after every
// known rank instead of failing the listing.
func (r Rank) Weight() int {
	if weight, ok := rankWeights[Rank(NormalizeRank(string(r)))]; ok {
		return weight
	}
	return UnknownRankWeight
}
