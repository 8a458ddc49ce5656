package msa

import (
	"errors"
	"reflect"
	"testing"
)

func TestExtractWindowCountsSumToRecords(t *testing.T) {
	a := mustAlign(t, "AACCGGTTAA", "AACCGGTTAA", "AACCGGTTGG")

	win, err := a.ExtractWindow(0, 4)
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	if !reflect.DeepEqual(win, map[string]int{"AACC": 3}) {
		t.Fatalf("ExtractWindow(0,4) = %v, want {AACC:3}", win)
	}

	win, err = a.ExtractWindow(6, 4)
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	if !reflect.DeepEqual(win, map[string]int{"TTAA": 2, "TTGG": 1}) {
		t.Fatalf("ExtractWindow(6,4) = %v, want {TTAA:2 TTGG:1}", win)
	}

	sum := 0
	for _, c := range win {
		sum += c
	}
	if sum != a.SequenceNumber() {
		t.Fatalf("counts sum %d, want %d", sum, a.SequenceNumber())
	}
}

func TestExtractWindowTruncatesPastEnd(t *testing.T) {
	a := mustAlign(t, "AACCGGTTAA", "AACCGGTTAA", "AACCGGTTGG")

	// start+size runs past the end: truncated, not an error.
	win, err := a.ExtractWindow(8, 10)
	if err != nil {
		t.Fatalf("expected truncation, got %v", err)
	}
	if !reflect.DeepEqual(win, map[string]int{"AA": 2, "GG": 1}) {
		t.Fatalf("truncated window = %v, want {AA:2 GG:1}", win)
	}
}

func TestExtractWindowStartPastEndFails(t *testing.T) {
	a := mustAlign(t, "AACCGGTTAA", "AACCGGTTAA")

	_, err := a.ExtractWindow(11, 1)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("expected RangeError for start past end, got %v", err)
	}

	// start == length is the boundary: an empty window, not an error.
	win, err := a.ExtractWindow(10, 4)
	if err != nil {
		t.Fatalf("start at end must not fail: %v", err)
	}
	if win[""] != 2 {
		t.Fatalf("empty-window table = %v", win)
	}
}

func TestExtractWindowSortedOrder(t *testing.T) {
	a := mustAlign(t, "TTGG", "TTAA", "TTAA", "TTCC")

	got, err := a.ExtractWindowSorted(0, 4)
	if err != nil {
		t.Fatalf("sorted window: %v", err)
	}
	want := []SeqCount{{"TTAA", 2}, {"TTCC", 1}, {"TTGG", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sorted = %v, want %v", got, want)
	}

	// Stable across repeated calls on identical input.
	again, _ := a.ExtractWindowSorted(0, 4)
	if !reflect.DeepEqual(got, again) {
		t.Fatalf("sorted order not stable: %v vs %v", got, again)
	}
}

func TestExtractConsensusWindowStrict(t *testing.T) {
	a := mustAlign(t, "AACCGGTTAA", "AACCGGTTAA", "AACCGGTTGG")

	win, err := a.ExtractConsensusWindow(6, 4)
	if err != nil {
		t.Fatalf("consensus window: %v", err)
	}
	if win != "TTAA" {
		t.Fatalf("consensus window = %q, want TTAA", win)
	}

	// The consensus path never truncates.
	_, err = a.ExtractConsensusWindow(8, 10)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("expected RangeError past consensus end, got %v", err)
	}
	if _, err := a.ExtractConsensusWindow(20, 1); !errors.As(err, &re) {
		t.Fatalf("expected RangeError for start past end, got %v", err)
	}
}

func TestDiversityInWindows(t *testing.T) {
	a := mustAlign(t, "AACCGGTTAA", "AACCGGTTAA", "AACCGGTTGG")

	got := a.DiversityInWindows(4, 2)
	if len(got) != 3 {
		t.Fatalf("expected windows at 0,2,4; got %+v", got)
	}
	for i, wantStart := range []int{0, 2, 4} {
		if got[i].Start != wantStart {
			t.Errorf("window %d start = %d, want %d", i, got[i].Start, wantStart)
		}
		sum := 0
		for _, c := range got[i].Counts {
			sum += c
		}
		if sum != a.SequenceNumber() {
			t.Errorf("window %d counts sum to %d, want %d", i, sum, a.SequenceNumber())
		}
	}
}

func TestDiversityInWindowsStopsStrictly(t *testing.T) {
	a := mustAlign(t, "AACCGGTTAA", "AACCGGTTGG")

	// start=6 would give 6+4 == 10, not < 10: excluded.
	got := a.DiversityInWindows(4, 2)
	last := got[len(got)-1]
	if last.Start != 4 {
		t.Fatalf("last window start = %d, want 4", last.Start)
	}
}

func TestDiversityInWindowsEmptyWhenWindowCoversAlignment(t *testing.T) {
	a := mustAlign(t, "ACGT", "ACGT")
	if got := a.DiversityInWindows(4, 1); got != nil {
		t.Fatalf("windowSize >= length must yield nothing, got %+v", got)
	}
	if got := a.DiversityInWindows(5, 1); got != nil {
		t.Fatalf("windowSize > length must yield nothing, got %+v", got)
	}
}

func TestDiversityCountsFirstSeenOrder(t *testing.T) {
	a := mustAlign(t, "TTGG", "TTAA", "TTAA")

	got := a.DiversityInWindows(3, 1)
	if len(got) != 1 {
		t.Fatalf("expected one window, got %+v", got)
	}
	// Record order: TTG first, then TTA twice.
	if !reflect.DeepEqual(got[0].Counts, []int{1, 2}) {
		t.Fatalf("counts = %v, want first-seen order [1 2]", got[0].Counts)
	}
}

func TestCountsBySequenceOrder(t *testing.T) {
	table := map[string]int{"TTGG": 1, "TTAA": 2, "TTCC": 1}
	got := CountsBySequence(table)
	want := []SeqCount{{"TTAA", 2}, {"TTCC", 1}, {"TTGG", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CountsBySequence = %v, want %v", got, want)
	}
}
