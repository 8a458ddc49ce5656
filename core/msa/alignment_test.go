package msa

import (
	"errors"
	"fmt"
	"testing"

	"alnwin-core/fasta"
)

// mustAlign builds an alignment from bare sequences, numbering the headers.
func mustAlign(t *testing.T, seqs ...string) *Alignment {
	t.Helper()
	recs := make([]fasta.Record, len(seqs))
	for i, s := range seqs {
		recs[i] = fasta.Record{Header: fmt.Sprintf("seq%d", i+1), Seq: []byte(s)}
	}
	a, err := New(recs)
	if err != nil {
		t.Fatalf("build alignment: %v", err)
	}
	return a
}

func TestNewValidation(t *testing.T) {
	_, err := New([]fasta.Record{{Header: "only", Seq: []byte("ACGT")}})
	var fe *fasta.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError for single record, got %v", err)
	}

	_, err = New([]fasta.Record{
		{Header: "a", Seq: []byte("ACGT")},
		{Header: "b", Seq: []byte("ACG")},
	})
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError for unequal lengths, got %v", err)
	}
}

func TestAccessors(t *testing.T) {
	a := mustAlign(t, "AACCGGTTAA", "AACCGGTTAA", "AACCGGTTGG")
	if got := a.SequenceNumber(); got != 3 {
		t.Errorf("SequenceNumber() = %d, want 3", got)
	}
	if got := a.Length(); got != 10 {
		t.Errorf("Length() = %d, want 10", got)
	}
}

func TestConsensusLengthMatchesAlignment(t *testing.T) {
	a := mustAlign(t, "ACGTN-ryAC", "ACGT--ryAC", "AGGTNNryAC")
	if len(a.Consensus()) != a.Length() {
		t.Fatalf("consensus length %d != alignment length %d", len(a.Consensus()), a.Length())
	}
}
