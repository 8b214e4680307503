package config

import "github.com/san-kum/rbeit/internal/sweep"

var Presets = map[string]map[string]*Config{
	"rb87": {
		"eit": {
			Isotope:   "Rb87",
			Pump:      FieldConfig{RabiMHz: 10.0},
			Probe:     FieldConfig{RabiMHz: 0.1},
			Dephasing: DephasingConfig{GroundMHz: 0.001},
			Sweep: SweepConfig{
				Parameter: sweep.ParamProbeDetuning,
				MinMHz:    -20.0, MaxMHz: 20.0, Points: 200,
			},
		},
		"fwm": {
			Isotope:   "Rb87",
			Pump:      FieldConfig{RabiMHz: 20.0},
			Probe:     FieldConfig{RabiMHz: 1.0},
			Dephasing: DephasingConfig{GroundMHz: 0.001},
			Medium:    MediumConfig{NumberDensity: 1e17, InteractionLength: 0.01},
			Beams:     BeamsConfig{PumpIntensity: 1e3, ProbeIntensity: 1e2},
			Sweep: SweepConfig{
				Parameter: sweep.ParamProbeDetuning,
				MinMHz:    -50.0, MaxMHz: 50.0, Points: 200,
			},
		},
		"pump-power": {
			Isotope:   "Rb87",
			Pump:      FieldConfig{RabiMHz: 10.0},
			Probe:     FieldConfig{RabiMHz: 0.5},
			Dephasing: DephasingConfig{GroundMHz: 0.001},
			Sweep: SweepConfig{
				Parameter: sweep.ParamPumpRabi,
				MinMHz:    1.0, MaxMHz: 30.0, Points: 60,
			},
		},
	},
	"rb85": {
		"eit": {
			Isotope:   "Rb85",
			Pump:      FieldConfig{RabiMHz: 10.0},
			Probe:     FieldConfig{RabiMHz: 0.1},
			Dephasing: DephasingConfig{GroundMHz: 0.001},
			Sweep: SweepConfig{
				Parameter: sweep.ParamProbeDetuning,
				MinMHz:    -20.0, MaxMHz: 20.0, Points: 200,
			},
		},
	},
}

func GetPreset(isotope, preset string) *Config {
	isotopePresets, ok := Presets[isotope]
	if !ok {
		return nil
	}
	cfg, ok := isotopePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(isotope string) []string {
	isotopePresets, ok := Presets[isotope]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(isotopePresets))
	for name := range isotopePresets {
		names = append(names, name)
	}
	return names
}
