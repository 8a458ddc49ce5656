// internal/output/unique.go
package output

import (
	"fmt"
	"io"

	"alnwin-core/locate"
	"alnwin-core/msa"
)

// Output format names accepted by the window command (matched
// case-insensitively at the CLI boundary).
const (
	FormatTAB   = "tab"
	FormatFASTA = "fasta"
)

// WriteUniqueTAB renders a window's unique variants as a tab table: the
// consensus window on the first line, then one dotted variant and its count
// per row.
func WriteUniqueTAB(w io.Writer, counts []msa.SeqCount, consensus string) error {
	if _, err := fmt.Fprintf(w, "%s\n", consensus); err != nil {
		return err
	}
	for _, sc := range counts {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", dotted(sc.Seq, consensus), sc.Count); err != nil {
			return err
		}
	}
	return nil
}

// WriteUniqueFASTA renders a window's unique variants as FASTA blocks: the
// consensus first, then one block per variant with the occurrence count in
// the header.
func WriteUniqueFASTA(w io.Writer, counts []msa.SeqCount, consensus string) error {
	if _, err := fmt.Fprintf(w, ">consensus\n%s\n", consensus); err != nil {
		return err
	}
	for i, sc := range counts {
		if _, err := fmt.Fprintf(w, ">variant_%d count=%d\n%s\n", i+1, sc.Count, dotted(sc.Seq, consensus)); err != nil {
			return err
		}
	}
	return nil
}

// WriteQueryTAB is WriteUniqueTAB with the matched query substring on top.
// The query row is marked Q; the consensus row is marked C and carries the
// 1-based window start and length, '|'-delimited.
func WriteQueryTAB(w io.Writer, counts []msa.SeqCount, consensus string, stats locate.Statistics, query string) error {
	if _, err := fmt.Fprintf(w, "%s\tQ\n", query); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\tC|%d|%d\n", consensus, stats.ReferenceStart+1, stats.ReferenceLength); err != nil {
		return err
	}
	for _, sc := range counts {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", dotted(sc.Seq, consensus), sc.Count); err != nil {
			return err
		}
	}
	return nil
}

// WriteQueryFASTA is WriteUniqueFASTA with the matched query substring as
// the first block; the consensus header spells out the 1-based window start
// and length.
func WriteQueryFASTA(w io.Writer, counts []msa.SeqCount, consensus string, stats locate.Statistics, query string) error {
	if _, err := fmt.Fprintf(w, ">query\n%s\n", query); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, ">consensus window_start=%d window_length=%d\n%s\n",
		stats.ReferenceStart+1, stats.ReferenceLength, consensus); err != nil {
		return err
	}
	for i, sc := range counts {
		if _, err := fmt.Fprintf(w, ">variant_%d count=%d\n%s\n", i+1, sc.Count, dotted(sc.Seq, consensus)); err != nil {
			return err
		}
	}
	return nil
}

// dotted shows seq with every consensus-matching position as '.'; differing
// residues stay visible. Positions past the consensus end stay verbatim.
func dotted(seq, consensus string) string {
	b := []byte(seq)
	for i := 0; i < len(b) && i < len(consensus); i++ {
		if b[i] == consensus[i] {
			b[i] = '.'
		}
	}
	return string(b)
}
