// internal/output/diversity.go
package output

import (
	"fmt"
	"io"

	"alnwin-core/msa"
)

// WriteDiversityTable renders a sliding-window scan as two tab-separated
// columns: the 1-based window start, repeated once per unique variant in
// that window, and the variant's occurrence count.
func WriteDiversityTable(w io.Writer, windows []msa.WindowDiversity) error {
	for _, wd := range windows {
		for _, c := range wd.Counts {
			if _, err := fmt.Fprintf(w, "%d\t%d\n", wd.Start+1, c); err != nil {
				return err
			}
		}
	}
	return nil
}
