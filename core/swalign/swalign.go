// core/swalign/swalign.go
package swalign

import (
	"errors"

	"alnwin-core/locate"
)

// Scores parameterizes the local alignment. Mismatch and Gap are penalties
// and expected to be negative.
type Scores struct {
	Match    int
	Mismatch int
	Gap      int
}

// DefaultScores mirror common DNA settings: reward 2, mismatch -2, gap -3.
var DefaultScores = Scores{Match: 2, Mismatch: -2, Gap: -3}

// Aligner is a plain Smith-Waterman local aligner over byte strings,
// implementing locate.Aligner. Base comparison is case-insensitive and 'N'
// scores zero against everything, so ambiguous reference positions neither
// reward nor punish a match.
type Aligner struct {
	scores Scores
}

// New returns an Aligner with DefaultScores.
func New() *Aligner { return &Aligner{scores: DefaultScores} }

// NewWithScores returns an Aligner with custom scoring.
func NewWithScores(s Scores) *Aligner { return &Aligner{scores: s} }

// Align fills the full scoring matrix, then walks back from the single
// best-scoring cell. When several cells tie, the earliest (smallest query
// position, then reference position) wins, so results are deterministic.
func (a *Aligner) Align(query, reference string) (locate.Span, error) {
	if len(query) == 0 || len(reference) == 0 {
		return locate.Span{}, errors.New("swalign: empty sequence")
	}
	m, n := len(query), len(reference)
	h := make([][]int, m+1)
	for i := range h {
		h[i] = make([]int, n+1)
	}

	best, bi, bj := 0, 0, 0
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			s := h[i-1][j-1] + a.score(query[i-1], reference[j-1])
			if up := h[i-1][j] + a.scores.Gap; up > s {
				s = up
			}
			if left := h[i][j-1] + a.scores.Gap; left > s {
				s = left
			}
			if s < 0 {
				s = 0
			}
			h[i][j] = s
			if s > best {
				best, bi, bj = s, i, j
			}
		}
	}
	if best == 0 {
		return locate.Span{}, errors.New("swalign: no local match found")
	}

	// Walk back to the start of the best path; diagonal moves win ties.
	i, j := bi, bj
	for i > 0 && j > 0 && h[i][j] > 0 {
		switch h[i][j] {
		case h[i-1][j-1] + a.score(query[i-1], reference[j-1]):
			i, j = i-1, j-1
		case h[i-1][j] + a.scores.Gap:
			i--
		default:
			j--
		}
	}
	return locate.Span{QueryBegin: i, QueryEnd: bi, RefBegin: j, RefEnd: bj}, nil
}

func (a *Aligner) score(x, y byte) int {
	x, y = upper(x), upper(y)
	if x == 'N' || y == 'N' {
		return 0
	}
	if x == y {
		return a.scores.Match
	}
	return a.scores.Mismatch
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
