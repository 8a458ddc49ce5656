// internal/app/app.go
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"alnwin-core/fasta"
	"alnwin-core/locate"
	"alnwin-core/msa"
	"alnwin-core/swalign"
	"alnwin/internal/output"
)

// ConfigError reports invalid or missing command-line configuration. The
// process exits with a distinct status for it.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return e.Reason }

// WindowOptions collects everything the window command needs. StartPos is
// 1-based; StartPos and WindowSize are ignored when QueryFile is set.
type WindowOptions struct {
	InputFile  string
	StartPos   int
	WindowSize int
	QueryFile  string
	Impute     bool
	OutFormat  string
	OutFile    string
	Sort       bool

	// Aligner locates the query in the consensus; nil means the built-in
	// Smith-Waterman collaborator.
	Aligner locate.Aligner
}

// ScanOptions collects everything the scan command needs.
type ScanOptions struct {
	InputFile  string
	WindowSize int
	StepSize   int
	Impute     bool
	OutFile    string
}

// RunWindow extracts the unique variants of one alignment window, chosen
// either by explicit coordinates or by locating a query sequence, and
// renders them in the requested format.
func RunWindow(o WindowOptions) error {
	format := strings.ToLower(o.OutFormat)
	if format != output.FormatTAB && format != output.FormatFASTA {
		return &ConfigError{Reason: fmt.Sprintf("invalid --out-format %q (want tab or fasta)", o.OutFormat)}
	}
	if o.InputFile == "" {
		return &ConfigError{Reason: "--input-file is required"}
	}
	if o.QueryFile == "" {
		if o.WindowSize <= 0 {
			return &ConfigError{Reason: "--window-size must be greater than 0"}
		}
		if o.StartPos < 1 {
			return &ConfigError{Reason: "--start-position is 1-based and must be at least 1"}
		}
	}

	aln, err := loadAlignment(o.InputFile, o.Impute)
	if err != nil {
		return err
	}

	var (
		start, size int
		query       string
		stats       locate.Statistics
		haveQuery   bool
	)
	if o.QueryFile != "" {
		q, err := readQuery(o.QueryFile)
		if err != nil {
			return err
		}
		al := o.Aligner
		if al == nil {
			al = swalign.New()
		}
		stats, err = locate.Locate(al, q, aln.Consensus())
		if err != nil {
			return err
		}
		start, size = stats.ReferenceStart, stats.ReferenceLength
		query = q[stats.QueryStart : stats.QueryStart+stats.QueryLength]
		haveQuery = true
	} else {
		start, size = o.StartPos-1, o.WindowSize
	}

	consensusWindow, err := aln.ExtractConsensusWindow(start, size)
	if err != nil {
		return err
	}
	table, err := aln.ExtractWindow(start, size)
	if err != nil {
		return err
	}
	counts := msa.CountsBySequence(table)
	if o.Sort {
		counts = msa.CountsByOccurrence(table)
	}

	return withOutput(o.OutFile, func(w io.Writer) error {
		switch {
		case haveQuery && format == output.FormatFASTA:
			return output.WriteQueryFASTA(w, counts, consensusWindow, stats, query)
		case haveQuery:
			return output.WriteQueryTAB(w, counts, consensusWindow, stats, query)
		case format == output.FormatFASTA:
			return output.WriteUniqueFASTA(w, counts, consensusWindow)
		default:
			return output.WriteUniqueTAB(w, counts, consensusWindow)
		}
	})
}

// RunScan slides a window across the alignment and writes the diversity
// table.
func RunScan(o ScanOptions) error {
	if o.InputFile == "" {
		return &ConfigError{Reason: "--input-file is required"}
	}
	if o.WindowSize <= 0 {
		return &ConfigError{Reason: "--window-size must be greater than 0"}
	}
	if o.StepSize <= 0 {
		return &ConfigError{Reason: "--step-size must be greater than 0"}
	}

	aln, err := loadAlignment(o.InputFile, o.Impute)
	if err != nil {
		return err
	}
	windows := aln.DiversityInWindows(o.WindowSize, o.StepSize)

	return withOutput(o.OutFile, func(w io.Writer) error {
		return output.WriteDiversityTable(w, windows)
	})
}

func loadAlignment(path string, impute bool) (*msa.Alignment, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	recs, err := fasta.ReadAlignment(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	aln, err := msa.New(recs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if impute {
		aln.ImputeMissing()
	}
	return aln, nil
}

func readQuery(path string) (string, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = rc.Close() }()

	q, err := fasta.ReadQuery(rc)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return q, nil
}

// withOutput runs write against the chosen destination ("" or "-" means
// stdout) through a buffered writer. A broken pipe on the way out counts as
// success so that piping into `head` stays quiet.
func withOutput(path string, write func(io.Writer) error) error {
	var (
		dst     io.Writer = os.Stdout
		closeFn           = func() error { return nil }
	)
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		dst, closeFn = f, f.Close
	}

	bw := bufio.NewWriter(dst)
	err := write(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	if output.IsBrokenPipe(err) {
		return nil
	}
	return err
}
