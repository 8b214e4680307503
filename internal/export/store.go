package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/rbeit/internal/sweep"
)

const (
	metadataFile = "metadata.json"
	dataFile     = "data.csv"
)

// Store keeps completed sweeps on disk, one directory per run under a
// base directory.
type Store struct {
	base string
}

// NewStore returns a store rooted at base. Call Init before saving.
func NewStore(base string) *Store {
	return &Store{base: base}
}

// Init creates the base directory.
func (s *Store) Init() error {
	return os.MkdirAll(s.base, 0755)
}

// RunInfo is the stored description of one sweep run.
type RunInfo struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Timestamp time.Time          `json:"timestamp"`
	Parameter string             `json:"parameter"`
	Secondary string             `json:"secondary_parameter,omitempty"`
	Shape     [2]int             `json:"shape"`
	Points    int                `json:"points"`
	Fixed     map[string]float64 `json:"fixed_parameters"`
	Meta      map[string]string  `json:"metadata"`
}

// Save writes a run directory named "<name>_<unix>" holding the run
// metadata and the result data, and returns the run ID.
func (s *Store) Save(name string, r *sweep.Result) (string, error) {
	if r == nil {
		return "", ErrNoResult
	}

	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.base, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	info := RunInfo{
		ID:        runID,
		Name:      name,
		Timestamp: time.Now(),
		Parameter: r.ParamName,
		Secondary: r.SecondaryName,
		Shape:     r.Shape,
		Points:    r.Points(),
		Fixed:     r.Fixed,
		Meta:      r.Meta,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(info); err != nil {
		return "", err
	}

	if err := WriteCSVFile(filepath.Join(runDir, dataFile), r, true); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns the metadata of every run under the store, skipping
// entries whose metadata cannot be read. A missing base directory
// yields an empty list.
func (s *Store) List() ([]RunInfo, error) {
	entries, err := os.ReadDir(s.base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.base, entry.Name(), metadataFile))
		if err != nil {
			continue
		}
		var info RunInfo
		if err := json.Unmarshal(data, &info); err != nil {
			continue
		}
		runs = append(runs, info)
	}
	return runs, nil
}

// Load reads one run's metadata.
func (s *Store) Load(runID string) (*RunInfo, error) {
	data, err := os.ReadFile(filepath.Join(s.base, runID, metadataFile))
	if err != nil {
		return nil, err
	}
	var info RunInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// LoadResult reads a run's data file back into a sweep result.
func (s *Store) LoadResult(runID string) (*sweep.Result, error) {
	info, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.base, runID, dataFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comment = '#'
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: no data rows", ErrMalformed)
	}

	twoD := info.Secondary != ""
	wantCols := 6
	chi3Col := 1
	if twoD {
		wantCols = 7
		chi3Col = 2
	}
	if len(records[0]) != wantCols {
		return nil, fmt.Errorf("%w: %d columns, want %d", ErrMalformed, len(records[0]), wantCols)
	}

	rows := records[1:]
	if len(rows) != info.Points {
		return nil, fmt.Errorf("%w: %d data rows, want %d", ErrMalformed, len(rows), info.Points)
	}

	parsed := make([][]float64, len(rows))
	for i, rec := range rows {
		vals, err := parseFloats(rec)
		if err != nil {
			return nil, err
		}
		parsed[i] = vals
	}

	chi3 := make([]complex128, len(rows))
	intensity := make([]float64, len(rows))
	for i, vals := range parsed {
		chi3[i] = complex(vals[chi3Col], vals[chi3Col+1])
		intensity[i] = vals[wantCols-1]
	}

	if !twoD {
		values := make([]float64, len(rows))
		for i, vals := range parsed {
			values[i] = vals[0]
		}
		return sweep.NewResult(info.Parameter, values, chi3, intensity, info.Fixed)
	}

	n1, n2 := info.Shape[0], info.Shape[1]
	if n1*n2 != len(rows) {
		return nil, fmt.Errorf("%w: shape (%d, %d) for %d rows", ErrMalformed, n1, n2, len(rows))
	}
	primary := make([]float64, n1)
	for i := 0; i < n1; i++ {
		primary[i] = parsed[i*n2][0]
	}
	secondary := make([]float64, n2)
	for j := 0; j < n2; j++ {
		secondary[j] = parsed[j][1]
	}
	return sweep.NewResult2D(info.Parameter, primary, info.Secondary, secondary, chi3, intensity, info.Fixed)
}

func parseFloats(rec []string) ([]float64, error) {
	vals := make([]float64, len(rec))
	for i, field := range rec {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q", ErrMalformed, field)
		}
		vals[i] = v
	}
	return vals, nil
}
