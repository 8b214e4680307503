package export

import (
	"encoding/json"
	"io"
	"math/cmplx"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/rbeit/internal/sweep"
)

// Document is the JSON export layout. The chi^(3) components and the
// intensity are flat arrays; for 2D sweeps they are row-major with the
// primary axis outermost.
type Document struct {
	Metadata  Metadata           `json:"metadata"`
	Parameter Parameter          `json:"parameter"`
	Secondary *Parameter         `json:"secondary_parameter,omitempty"`
	Fixed     map[string]float64 `json:"fixed_parameters"`
	Results   Results            `json:"results"`
}

// Metadata describes the sweep a document was exported from.
type Metadata struct {
	Timestamp     string `json:"timestamp"`
	ParameterName string `json:"parameter_name"`
	NumPoints     int    `json:"num_points"`
	SecondaryName string `json:"secondary_parameter_name,omitempty"`
	NumSecondary  int    `json:"num_secondary_points,omitempty"`
	SweepType     string `json:"sweep_type"`
	Units         string `json:"units,omitempty"`
}

// Parameter is one swept axis.
type Parameter struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Units  string    `json:"units,omitempty"`
}

// Results carries the per-point observables.
type Results struct {
	Chi3      Chi3Columns `json:"chi3"`
	Intensity []float64   `json:"fwm_intensity"`
}

// Chi3Columns splits the complex chi^(3) samples into real columns.
type Chi3Columns struct {
	Real      []float64 `json:"real"`
	Imag      []float64 `json:"imag"`
	Magnitude []float64 `json:"magnitude"`
	Phase     []float64 `json:"phase"`
}

// NewDocument flattens a sweep result into the export layout.
func NewDocument(r *sweep.Result) (*Document, error) {
	if r == nil {
		return nil, ErrNoResult
	}

	sweepType := r.Meta["sweep_type"]
	if sweepType == "" {
		sweepType = "1D"
		if r.Is2D() {
			sweepType = "2D"
		}
	}
	units := r.Meta["units"]

	n := r.Points()
	chi3 := Chi3Columns{
		Real:      make([]float64, n),
		Imag:      make([]float64, n),
		Magnitude: make([]float64, n),
		Phase:     make([]float64, n),
	}
	for i, c := range r.Chi3 {
		chi3.Real[i] = real(c)
		chi3.Imag[i] = imag(c)
		chi3.Magnitude[i] = cmplx.Abs(c)
		chi3.Phase[i] = cmplx.Phase(c)
	}

	d := &Document{
		Metadata: Metadata{
			Timestamp:     time.Now().Format(time.RFC3339),
			ParameterName: r.ParamName,
			NumPoints:     r.Shape[0],
			SweepType:     sweepType,
			Units:         units,
		},
		Parameter: Parameter{Name: r.ParamName, Values: r.ParamValues, Units: units},
		Fixed:     r.Fixed,
		Results:   Results{Chi3: chi3, Intensity: r.Intensity},
	}
	if r.Is2D() {
		d.Metadata.SecondaryName = r.SecondaryName
		d.Metadata.NumSecondary = r.Shape[1]
		d.Secondary = &Parameter{Name: r.SecondaryName, Values: r.SecondaryValues, Units: units}
	}
	return d, nil
}

// Chi3Values reconstructs the complex samples from the real and
// imaginary columns.
func (d *Document) Chi3Values() []complex128 {
	out := make([]complex128, len(d.Results.Chi3.Real))
	for i := range out {
		out[i] = complex(d.Results.Chi3.Real[i], d.Results.Chi3.Imag[i])
	}
	return out
}

// Result rebuilds the sweep result carried by the document.
func (d *Document) Result() (*sweep.Result, error) {
	chi3 := d.Chi3Values()
	if d.Secondary != nil {
		return sweep.NewResult2D(d.Parameter.Name, d.Parameter.Values,
			d.Secondary.Name, d.Secondary.Values, chi3, d.Results.Intensity, d.Fixed)
	}
	return sweep.NewResult(d.Parameter.Name, d.Parameter.Values, chi3, d.Results.Intensity, d.Fixed)
}

// WriteJSON writes a sweep result as an indented JSON document.
func WriteJSON(w io.Writer, r *sweep.Result) error {
	d, err := NewDocument(r)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// WriteJSONFile writes the JSON export to path, creating parent
// directories as needed.
func WriteJSONFile(path string, r *sweep.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, r)
}

// ReadJSON decodes an exported document.
func ReadJSON(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ReadJSONFile reads an exported document from path.
func ReadJSONFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}
