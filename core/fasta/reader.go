// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Record is a single FASTA record: the header label and the sequence with
// line breaks removed.
type Record struct {
	Header string
	Seq    []byte
}

// FormatError reports malformed FASTA input.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string { return "fasta format: " + e.Reason }

// ReadAlignment parses an aligned FASTA stream into records.
// Blank lines are ignored wherever they appear. Each record starts at a '>'
// line; the label follows with leading spaces trimmed and must contain at
// least one non-space character. Continuation lines are concatenated without
// separators, so sequences carry no embedded breaks.
func ReadAlignment(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var recs []Record
	for sc.Scan() {
		line := sc.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if line[0] == '>' {
			hdr, err := parseHeader(line[1:])
			if err != nil {
				return nil, err
			}
			recs = append(recs, Record{Header: hdr})
			continue
		}
		if len(recs) == 0 {
			return nil, &FormatError{Reason: "first non-blank line is not a '>' header"}
		}
		cur := &recs[len(recs)-1]
		cur.Seq = append(cur.Seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	if len(recs) == 0 {
		return nil, &FormatError{Reason: "no records found"}
	}
	return recs, nil
}

// ReadQuery parses a single-record query FASTA stream and returns the
// concatenated sequence.
func ReadQuery(r io.Reader) (string, error) {
	recs, err := ReadAlignment(r)
	if err != nil {
		return "", err
	}
	if len(recs) != 1 {
		return "", &FormatError{Reason: fmt.Sprintf("query must hold exactly one record, got %d", len(recs))}
	}
	if len(recs[0].Seq) == 0 {
		return "", &FormatError{Reason: "query record has an empty sequence"}
	}
	return string(recs[0].Seq), nil
}

func parseHeader(label []byte) (string, error) {
	i := 0
	for i < len(label) && label[i] == ' ' {
		i++
	}
	if len(bytes.TrimSpace(label[i:])) == 0 {
		return "", &FormatError{Reason: "header needs at least one non-space character"}
	}
	return string(label[i:]), nil
}
