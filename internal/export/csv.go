package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/cmplx"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/rbeit/internal/sweep"
)

var csvColumns = []string{"chi3_real", "chi3_imag", "chi3_magnitude", "chi3_phase", "fwm_intensity"}

// WriteCSV writes a sweep result as CSV. When header is true the data
// is preceded by '#' comment lines carrying the export timestamp, the
// swept parameter names, the fixed parameters and the sweep metadata.
// Floats are written at full precision so they parse back exactly.
func WriteCSV(w io.Writer, r *sweep.Result, header bool) error {
	if r == nil {
		return ErrNoResult
	}
	if header {
		if _, err := io.WriteString(w, csvHeader(r)); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(w)

	cols := []string{r.ParamName}
	if r.Is2D() {
		cols = append(cols, r.SecondaryName)
	}
	cols = append(cols, csvColumns...)
	if err := cw.Write(cols); err != nil {
		return err
	}

	for i := 0; i < r.Shape[0]; i++ {
		for j := 0; j < r.Shape[1]; j++ {
			chi3, intensity := r.At(i, j)
			row := make([]string, 0, len(cols))
			row = append(row, formatFloat(r.ParamValues[i]))
			if r.Is2D() {
				row = append(row, formatFloat(r.SecondaryValues[j]))
			}
			row = append(row,
				formatFloat(real(chi3)),
				formatFloat(imag(chi3)),
				formatFloat(cmplx.Abs(chi3)),
				formatFloat(cmplx.Phase(chi3)),
				formatFloat(intensity),
			)
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the CSV export to path, creating parent
// directories as needed.
func WriteCSVFile(path string, r *sweep.Result, header bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, r, header)
}

func csvHeader(r *sweep.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Export Timestamp: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "# Parameter: %s\n", r.ParamName)
	if r.Is2D() {
		fmt.Fprintf(&b, "# Secondary Parameter: %s\n", r.SecondaryName)
	}

	b.WriteString("# Fixed Parameters:\n")
	for _, k := range sortedKeys(r.Fixed) {
		fmt.Fprintf(&b, "#   %s: %s\n", k, formatFloat(r.Fixed[k]))
	}

	b.WriteString("# Metadata:\n")
	metaKeys := make([]string, 0, len(r.Meta))
	for k := range r.Meta {
		metaKeys = append(metaKeys, k)
	}
	sort.Strings(metaKeys)
	for _, k := range metaKeys {
		fmt.Fprintf(&b, "#   %s: %s\n", k, r.Meta[k])
	}

	b.WriteString("#\n")
	return b.String()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
