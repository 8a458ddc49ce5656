// core/msa/consensus.go
package msa

import (
	"strings"

	"alnwin-core/fasta"
)

// consensusAlphabet lists the symbols that take part in the per-column
// majority vote. Everything else is ignored while voting.
const consensusAlphabet = "AaCcTtGgNn-"

// standardAlphabet lists the symbols imputation leaves untouched. Unlike the
// voting set it excludes N/n: an N is missing data, not a call.
const standardAlphabet = "AaCcTtGg-"

// buildConsensus computes the majority symbol of every column. Ties resolve
// to the smallest byte value among the tied symbols; a column with no
// standard symbol at all becomes 'N'.
func buildConsensus(records []fasta.Record, length int) []byte {
	cons := make([]byte, length)
	for i := 0; i < length; i++ {
		var tally [256]int
		for _, r := range records {
			c := r.Seq[i]
			if strings.IndexByte(consensusAlphabet, c) >= 0 {
				tally[c]++
			}
		}
		best, bestCount := byte('N'), 0
		for c := 0; c < len(tally); c++ {
			if tally[c] > bestCount {
				best, bestCount = byte(c), tally[c]
			}
		}
		cons[i] = best
	}
	return cons
}

// ImputeMissing replaces, in place, every symbol outside the standard set
// with the consensus symbol of the same column. Standard symbols are never
// touched, which makes the operation idempotent. The consensus is not
// rebuilt afterwards: imputation treats the original consensus as ground
// truth.
func (a *Alignment) ImputeMissing() {
	for ri := range a.records {
		seq := a.records[ri].Seq
		for i, c := range seq {
			if strings.IndexByte(standardAlphabet, c) < 0 {
				seq[i] = a.consensus[i]
			}
		}
	}
}
