// core/msa/alignment.go
package msa

import (
	"fmt"

	"alnwin-core/fasta"
)

// Alignment holds a validated multiple-sequence alignment and the consensus
// derived from it. Records keep their input order. The only mutation the
// type supports is ImputeMissing; everything else reads.
type Alignment struct {
	records   []fasta.Record
	consensus []byte
}

// New validates the records (at least two, all the same length) and builds
// the consensus once. The records are owned by the Alignment afterwards.
func New(records []fasta.Record) (*Alignment, error) {
	if len(records) < 2 {
		return nil, &fasta.FormatError{Reason: fmt.Sprintf("alignment needs at least 2 records, got %d", len(records))}
	}
	length := len(records[0].Seq)
	for _, r := range records {
		if len(r.Seq) != length {
			return nil, &fasta.FormatError{
				Reason: fmt.Sprintf("record %q is %d bp, expected %d", r.Header, len(r.Seq), length),
			}
		}
	}
	a := &Alignment{records: records}
	a.consensus = buildConsensus(records, length)
	return a, nil
}

// SequenceNumber returns the number of sequences in the alignment.
func (a *Alignment) SequenceNumber() int { return len(a.records) }

// Length returns the alignment length L shared by every record.
func (a *Alignment) Length() int { return len(a.records[0].Seq) }

// Consensus returns the per-column consensus sequence. It is built at
// construction time and never rebuilt, so after ImputeMissing it still
// reflects the pre-imputation data.
func (a *Alignment) Consensus() string { return string(a.consensus) }
