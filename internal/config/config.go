package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rbeit/internal/atom"
	"github.com/san-kum/rbeit/internal/spectra"
	"github.com/san-kum/rbeit/internal/sweep"
)

const (
	DefaultIsotope      = "Rb87"
	DefaultPumpRabiMHz  = 10.0
	DefaultProbeRabiMHz = 1.0
	DefaultGroundMHz    = 0.001
	DefaultSweepMinMHz  = -50.0
	DefaultSweepMaxMHz  = 50.0
	DefaultSweepPoints  = 100
)

// Frequencies and rates in config files are linear MHz; RadPerSec
// converts them to angular rad/s at the boundary. Everything else is SI.
type Config struct {
	Isotope   string          `yaml:"isotope"`
	Levels    LevelsConfig    `yaml:"levels"`
	Pump      FieldConfig     `yaml:"pump"`
	Probe     FieldConfig     `yaml:"probe"`
	Dephasing DephasingConfig `yaml:"dephasing"`
	Medium    MediumConfig    `yaml:"medium"`
	Beams     BeamsConfig     `yaml:"beams"`
	Sweep     SweepConfig     `yaml:"sweep"`
	Solver    SolverConfig    `yaml:"solver"`
	Workers   int             `yaml:"workers"`
	LogLevel  string          `yaml:"log_level"`
}

type LevelsConfig struct {
	Ground1 string `yaml:"ground1"`
	Ground2 string `yaml:"ground2"`
	Excited string `yaml:"excited"`
}

type FieldConfig struct {
	RabiMHz     float64 `yaml:"rabi_mhz"`
	DetuningMHz float64 `yaml:"detuning_mhz"`
}

type DephasingConfig struct {
	GroundMHz  float64 `yaml:"ground_mhz"`
	OpticalMHz float64 `yaml:"optical_mhz"`
}

type MediumConfig struct {
	NumberDensity     float64 `yaml:"number_density"`
	InteractionLength float64 `yaml:"interaction_length"`
}

type BeamsConfig struct {
	PumpIntensity  float64 `yaml:"pump_intensity"`
	ProbeIntensity float64 `yaml:"probe_intensity"`
}

type SweepConfig struct {
	Parameter string  `yaml:"parameter"`
	MinMHz    float64 `yaml:"min_mhz"`
	MaxMHz    float64 `yaml:"max_mhz"`
	Points    int     `yaml:"points"`

	SecondaryParameter string  `yaml:"secondary_parameter,omitempty"`
	SecondaryMinMHz    float64 `yaml:"secondary_min_mhz,omitempty"`
	SecondaryMaxMHz    float64 `yaml:"secondary_max_mhz,omitempty"`
	SecondaryPoints    int     `yaml:"secondary_points,omitempty"`
}

type SolverConfig struct {
	MaxIterations int     `yaml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance"`
}

// RadPerSec converts linear MHz to angular rad/s.
func RadPerSec(mhz float64) float64 {
	return 2 * math.Pi * mhz * 1e6
}

func DefaultConfig() *Config {
	return &Config{
		Isotope: DefaultIsotope,
		Pump:    FieldConfig{RabiMHz: DefaultPumpRabiMHz},
		Probe:   FieldConfig{RabiMHz: DefaultProbeRabiMHz},
		Dephasing: DephasingConfig{
			GroundMHz: DefaultGroundMHz,
		},
		Medium: MediumConfig{
			NumberDensity:     spectra.DefaultNumberDensity,
			InteractionLength: spectra.DefaultInteractionLength,
		},
		Beams: BeamsConfig{
			PumpIntensity:  spectra.DefaultPumpIntensity,
			ProbeIntensity: spectra.DefaultProbeIntensity,
		},
		Sweep: SweepConfig{
			Parameter: sweep.ParamProbeDetuning,
			MinMHz:    DefaultSweepMinMHz,
			MaxMHz:    DefaultSweepMaxMHz,
			Points:    DefaultSweepPoints,
		},
		LogLevel: "info",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// System builds the double-lambda system the config describes.
func (c *Config) System() (*atom.DoubleLambda, error) {
	var (
		d   *atom.DoubleLambda
		err error
	)
	if c.Levels == (LevelsConfig{}) {
		d, err = atom.NewDoubleLambda(c.Isotope)
	} else {
		d, err = atom.NewDoubleLambdaLevels(c.Isotope, c.Levels.Ground1, c.Levels.Ground2, c.Levels.Excited)
	}
	if err != nil {
		return nil, err
	}
	if err := d.SetPump(RadPerSec(c.Pump.RabiMHz), RadPerSec(c.Pump.DetuningMHz)); err != nil {
		return nil, err
	}
	if err := d.SetProbe(RadPerSec(c.Probe.RabiMHz), RadPerSec(c.Probe.DetuningMHz)); err != nil {
		return nil, err
	}
	return d, nil
}

// Calculator builds a spectra calculator from the config; zero-valued
// medium, beam and solver entries keep the calculator defaults.
func (c *Config) Calculator() (*spectra.Calculator, error) {
	sys, err := c.System()
	if err != nil {
		return nil, err
	}
	calc, err := spectra.NewCalculator(sys)
	if err != nil {
		return nil, err
	}

	calc.GroundDephasing = RadPerSec(c.Dephasing.GroundMHz)
	calc.OpticalDephasing = RadPerSec(c.Dephasing.OpticalMHz)
	if c.Medium.NumberDensity > 0 {
		calc.Medium.NumberDensity = c.Medium.NumberDensity
	}
	if c.Medium.InteractionLength > 0 {
		calc.Medium.InteractionLength = c.Medium.InteractionLength
	}
	if c.Beams.PumpIntensity > 0 {
		calc.Beams.PumpIntensity = c.Beams.PumpIntensity
	}
	if c.Beams.ProbeIntensity > 0 {
		calc.Beams.ProbeIntensity = c.Beams.ProbeIntensity
	}
	if c.Solver.MaxIterations > 0 {
		calc.MaxIterations = c.Solver.MaxIterations
	}
	if c.Solver.Tolerance > 0 {
		calc.Tolerance = c.Solver.Tolerance
	}

	if err := calc.Validate(); err != nil {
		return nil, err
	}
	return calc, nil
}

// Axis builds the primary sweep axis.
func (c *Config) Axis() (sweep.Axis, error) {
	return axisFrom(c.Sweep.Parameter, c.Sweep.MinMHz, c.Sweep.MaxMHz, c.Sweep.Points)
}

// SecondaryAxis builds the secondary sweep axis; ok is false for a 1D
// sweep.
func (c *Config) SecondaryAxis() (axis sweep.Axis, ok bool, err error) {
	if c.Sweep.SecondaryParameter == "" {
		return sweep.Axis{}, false, nil
	}
	axis, err = axisFrom(c.Sweep.SecondaryParameter,
		c.Sweep.SecondaryMinMHz, c.Sweep.SecondaryMaxMHz, c.Sweep.SecondaryPoints)
	return axis, err == nil, err
}

func axisFrom(name string, minMHz, maxMHz float64, points int) (sweep.Axis, error) {
	canonical, err := sweep.Canonical(name)
	if err != nil {
		return sweep.Axis{}, err
	}
	if points <= 0 {
		points = DefaultSweepPoints
	}
	axis := sweep.Axis{
		Name:   canonical,
		Values: sweep.Linspace(RadPerSec(minMHz), RadPerSec(maxMHz), points),
	}
	if err := axis.Validate(); err != nil {
		return sweep.Axis{}, err
	}
	return axis, nil
}
