// core/locate/locate.go
package locate

import "fmt"

// Span is the raw output of a local-alignment collaborator: half-open
// coordinate ranges of the best-scoring match in the reference and in the
// query.
type Span struct {
	RefBegin   int
	RefEnd     int
	QueryBegin int
	QueryEnd   int
}

// Aligner finds the best-scoring local alignment of query inside reference.
// It is injected by the caller; nothing here depends on scoring details,
// gap penalties, or the algorithm behind it.
type Aligner interface {
	Align(query, reference string) (Span, error)
}

// Statistics describes a located window in both coordinate spaces. Starts
// are 0-based; lengths are end minus start.
type Statistics struct {
	ReferenceStart  int
	ReferenceLength int
	QueryStart      int
	QueryLength     int
}

// AlignmentError reports collaborator output that violates the coordinate
// invariants.
type AlignmentError struct {
	Reason string
}

func (e *AlignmentError) Error() string { return "local alignment: " + e.Reason }

// Locate runs the aligner and validates the returned coordinates: both
// begins non-negative, both ends at or after their begin. A failed call or
// an invalid result is fatal to the request; there is no retry.
func Locate(al Aligner, query, reference string) (Statistics, error) {
	span, err := al.Align(query, reference)
	if err != nil {
		return Statistics{}, fmt.Errorf("local alignment: %w", err)
	}
	switch {
	case span.RefBegin < 0:
		return Statistics{}, &AlignmentError{Reason: fmt.Sprintf("reference start %d is negative", span.RefBegin)}
	case span.RefEnd < span.RefBegin:
		return Statistics{}, &AlignmentError{Reason: fmt.Sprintf("reference end %d precedes start %d", span.RefEnd, span.RefBegin)}
	case span.QueryBegin < 0:
		return Statistics{}, &AlignmentError{Reason: fmt.Sprintf("query start %d is negative", span.QueryBegin)}
	case span.QueryEnd < span.QueryBegin:
		return Statistics{}, &AlignmentError{Reason: fmt.Sprintf("query end %d precedes start %d", span.QueryEnd, span.QueryBegin)}
	}
	return Statistics{
		ReferenceStart:  span.RefBegin,
		ReferenceLength: span.RefEnd - span.RefBegin,
		QueryStart:      span.QueryBegin,
		QueryLength:     span.QueryEnd - span.QueryBegin,
	}, nil
}
