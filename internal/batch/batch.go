// Package batch runs scripted sequences of sweeps described by a
// single YAML file, storing each completed job in the run store.
//
// A job starts from the defaults, optionally seeded by a named preset,
// and then overrides any config key inline:
//
//	name: nightly
//	jobs:
//	  - name: eit_narrow
//	    preset: eit
//	    sweep:
//	      min_mhz: -10
//	      max_mhz: 10
//	  - name: fwm_map
//	    preset: fwm
//	    sweep:
//	      secondary_parameter: pump_rabi
//	      secondary_min_mhz: 1
//	      secondary_max_mhz: 30
//	      secondary_points: 20
package batch

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rbeit/internal/config"
	"github.com/san-kum/rbeit/internal/export"
	"github.com/san-kum/rbeit/internal/sweep"
)

// Batch is a scripted sequence of sweep jobs.
type Batch struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Jobs        []Job  `yaml:"jobs"`
}

// Job is one sweep in a batch: a run name plus a full sweep
// configuration.
type Job struct {
	Name   string
	Preset string
	Config *config.Config
}

// UnmarshalYAML decodes the job mapping twice: once for the job fields
// and once, over the preset-seeded defaults, for the config keys. A job
// therefore starts from its preset and overrides only what it names.
func (j *Job) UnmarshalYAML(node *yaml.Node) error {
	var head struct {
		Name    string `yaml:"name"`
		Preset  string `yaml:"preset"`
		Isotope string `yaml:"isotope"`
	}
	if err := node.Decode(&head); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if head.Preset != "" {
		iso := head.Isotope
		if iso == "" {
			iso = config.DefaultIsotope
		}
		p := config.GetPreset(strings.ToLower(iso), head.Preset)
		if p == nil {
			return fmt.Errorf("%w: %q for %s", ErrUnknownPreset, head.Preset, iso)
		}
		*cfg = *p
	}
	if err := node.Decode(cfg); err != nil {
		return err
	}

	j.Name = head.Name
	j.Preset = head.Preset
	j.Config = cfg
	return nil
}

// Load reads and validates a batch file.
func Load(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	if len(b.Jobs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoJobs, path)
	}
	return &b, nil
}

// Runner executes batch jobs in order, saving each result before the
// next job starts.
type Runner struct {
	Store *export.Store
	Log   zerolog.Logger
}

// Run executes every job and returns the stored run IDs. A failing job
// aborts the batch; the IDs of the jobs already saved are returned
// alongside the error.
func (r *Runner) Run(ctx context.Context, b *Batch) ([]string, error) {
	if r.Store == nil {
		return nil, ErrNoStore
	}
	if err := r.Store.Init(); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(b.Jobs))
	for i, job := range b.Jobs {
		res, err := r.runJob(ctx, job)
		if err != nil {
			return ids, fmt.Errorf("job %d/%d (%s): %w", i+1, len(b.Jobs), job.Name, err)
		}

		name := job.Name
		if name == "" {
			name = res.ParamName
		}
		id, err := r.Store.Save(name, res)
		if err != nil {
			return ids, fmt.Errorf("job %d/%d (%s): %w", i+1, len(b.Jobs), job.Name, err)
		}
		ids = append(ids, id)

		r.Log.Info().
			Str("job", name).
			Str("run", id).
			Int("points", res.Points()).
			Msg("job complete")
	}
	return ids, nil
}

func (r *Runner) runJob(ctx context.Context, job Job) (*sweep.Result, error) {
	calc, err := job.Config.Calculator()
	if err != nil {
		return nil, err
	}
	axis, err := job.Config.Axis()
	if err != nil {
		return nil, err
	}
	secondary, ok, err := job.Config.SecondaryAxis()
	if err != nil {
		return nil, err
	}

	runner := sweep.NewRunner(calc)
	runner.Workers = job.Config.Workers
	runner.Log = r.Log

	if ok {
		return runner.Run2D(ctx, axis, secondary)
	}
	return runner.Run(ctx, axis, nil)
}
