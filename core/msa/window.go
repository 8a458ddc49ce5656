// core/msa/window.go
package msa

import (
	"fmt"
	"sort"
)

// RangeError reports a window request addressing positions outside the
// alignment or consensus bounds.
type RangeError struct {
	Start, Size, Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("window [%d,%d) out of range for length %d", e.Start, e.Start+e.Size, e.Length)
}

// SeqCount pairs one window variant with its occurrence count.
type SeqCount struct {
	Seq   string
	Count int
}

// WindowDiversity is one sliding-window result: the 0-based window start and
// the occurrence count of every distinct variant, in first-seen record order.
type WindowDiversity struct {
	Start  int
	Counts []int
}

// ExtractWindow tallies the substring [start, start+size) of every record
// into a table of variant -> occurrence count; the counts always sum to
// SequenceNumber(). A start beyond the alignment end is a RangeError, but a
// window running past the end is truncated to the available remainder. The
// asymmetry with ExtractConsensusWindow is deliberate.
func (a *Alignment) ExtractWindow(start, size int) (map[string]int, error) {
	length := a.Length()
	if start < 0 || start > length || size < 0 {
		return nil, &RangeError{Start: start, Size: size, Length: length}
	}
	end := start + size
	if end > length {
		end = length
	}
	table := make(map[string]int)
	for _, r := range a.records {
		table[string(r.Seq[start:end])]++
	}
	return table, nil
}

// ExtractWindowSorted is ExtractWindow ordered by occurrence count,
// descending. See CountsByOccurrence for the tie rule.
func (a *Alignment) ExtractWindowSorted(start, size int) ([]SeqCount, error) {
	table, err := a.ExtractWindow(start, size)
	if err != nil {
		return nil, err
	}
	return CountsByOccurrence(table), nil
}

// ExtractConsensusWindow returns the consensus substring [start, start+size).
// Unlike ExtractWindow it is strict: any request past the consensus end is a
// RangeError, never a truncation.
func (a *Alignment) ExtractConsensusWindow(start, size int) (string, error) {
	if start < 0 || size < 0 || start+size > len(a.consensus) {
		return "", &RangeError{Start: start, Size: size, Length: len(a.consensus)}
	}
	return string(a.consensus[start : start+size]), nil
}

// DiversityInWindows slides a window of windowSize across the alignment in
// stepSize increments, starting at 0 and continuing while
// start+windowSize < Length() (strict). Every emitted window's counts sum to
// SequenceNumber(). The result is empty when windowSize >= Length();
// non-positive sizes yield nothing.
func (a *Alignment) DiversityInWindows(windowSize, stepSize int) []WindowDiversity {
	if windowSize <= 0 || stepSize <= 0 {
		return nil
	}
	var out []WindowDiversity
	length := a.Length()
	for start := 0; start+windowSize < length; start += stepSize {
		idx := make(map[string]int)
		var counts []int
		for _, r := range a.records {
			key := string(r.Seq[start : start+windowSize])
			if i, ok := idx[key]; ok {
				counts[i]++
			} else {
				idx[key] = len(counts)
				counts = append(counts, 1)
			}
		}
		out = append(out, WindowDiversity{Start: start, Counts: counts})
	}
	return out
}

// CountsByOccurrence orders a window table by count descending, breaking
// ties by sequence ascending, so the order is reproducible across calls.
func CountsByOccurrence(table map[string]int) []SeqCount {
	out := pairs(table)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Seq < out[j].Seq
	})
	return out
}

// CountsBySequence orders a window table by sequence ascending. It is the
// deterministic stand-in for "unsorted" iteration of the table.
func CountsBySequence(table map[string]int) []SeqCount {
	out := pairs(table)
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

func pairs(table map[string]int) []SeqCount {
	out := make([]SeqCount, 0, len(table))
	for s, c := range table {
		out = append(out, SeqCount{Seq: s, Count: c})
	}
	return out
}
