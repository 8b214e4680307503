package viz

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/rbeit/internal/spectra"
)

const (
	chartWidth    = 70
	chartHeight   = 14
	pointsPerTick = 8
	twoPiMHz      = 2 * math.Pi * 1e6
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

const (
	viewAbsorption = iota
	viewDispersion
	viewChi3
	viewIntensity
)

var viewNames = []string{"absorption", "dispersion", "|chi3|", "fwm intensity"}

// param is one live-adjustable drive setting, displayed in linear MHz.
type param struct {
	name string
	get  func(c *spectra.Calculator) float64
	set  func(c *spectra.Calculator, mhz float64) error
}

func explorerParams() []param {
	return []param{
		{
			name: "pump rabi",
			get:  func(c *spectra.Calculator) float64 { return c.System.Pump.Rabi / twoPiMHz },
			set: func(c *spectra.Calculator, mhz float64) error {
				return c.System.SetPump(mhz*twoPiMHz, c.System.Pump.Detuning)
			},
		},
		{
			name: "pump detuning",
			get:  func(c *spectra.Calculator) float64 { return c.System.Pump.Detuning / twoPiMHz },
			set: func(c *spectra.Calculator, mhz float64) error {
				return c.System.SetPump(c.System.Pump.Rabi, mhz*twoPiMHz)
			},
		},
		{
			name: "probe rabi",
			get:  func(c *spectra.Calculator) float64 { return c.System.Probe.Rabi / twoPiMHz },
			set: func(c *spectra.Calculator, mhz float64) error {
				return c.System.SetProbe(mhz*twoPiMHz, c.System.Probe.Detuning)
			},
		},
		{
			name: "ground dephasing",
			get:  func(c *spectra.Calculator) float64 { return c.GroundDephasing / twoPiMHz },
			set: func(c *spectra.Calculator, mhz float64) error {
				if mhz < 0 {
					return fmt.Errorf("viz: ground dephasing must be non-negative")
				}
				c.GroundDephasing = mhz * twoPiMHz
				return nil
			},
		},
	}
}

// Explorer fills a probe scan a few points per tick and redraws the
// selected observable; changing a parameter restarts the scan.
type Explorer struct {
	calc      *spectra.Calculator
	detunings []float64

	chi3       []complex128
	absorption []float64
	dispersion []float64
	intensity  []float64
	next       int
	failures   int

	view     int
	running  bool
	params   []param
	selected int
	initial  []float64

	editing bool
	input   textinput.Model
	prog    progress.Model

	err error
}

// NewExplorer builds the explorer state for one probe detuning scan.
func NewExplorer(calc *spectra.Calculator, detunings []float64) Explorer {
	params := explorerParams()
	initial := make([]float64, len(params))
	for i, p := range params {
		initial[i] = p.get(calc)
	}

	ti := textinput.New()
	ti.Prompt = "value (MHz): "
	ti.CharLimit = 24
	ti.Width = 20

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	n := len(detunings)
	return Explorer{
		calc:       calc,
		detunings:  detunings,
		chi3:       make([]complex128, n),
		absorption: make([]float64, n),
		dispersion: make([]float64, n),
		intensity:  make([]float64, n),
		running:    true,
		params:     params,
		initial:    initial,
		input:      ti,
		prog:       prog,
	}
}

func (e Explorer) Init() tea.Cmd { return tick() }

// Update handles key events and advances the scan on ticks.
func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if e.editing {
			return e.updateEditing(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return e, tea.Quit
		case " ":
			e.running = !e.running
		case "r":
			e.resetParams()
		case "tab":
			e.selected = (e.selected + 1) % len(e.params)
		case "up", "k":
			e.adjustParam(1)
		case "down", "j":
			e.adjustParam(-1)
		case "e":
			e.editing = true
			e.input.SetValue(strconv.FormatFloat(e.params[e.selected].get(e.calc), 'g', 6, 64))
			e.input.Focus()
			e.input.CursorEnd()
			return e, textinput.Blink
		case "1", "2", "3", "4":
			e.view = int(msg.String()[0] - '1')
		}
	case TickMsg:
		if e.running && e.next < len(e.detunings) {
			e.step()
		}
		return e, tick()
	}
	return e, nil
}

func (e Explorer) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		e.editing = false
		e.input.Blur()
		return e, nil
	case tea.KeyEnter:
		v, err := strconv.ParseFloat(strings.TrimSpace(e.input.Value()), 64)
		if err != nil {
			e.err = fmt.Errorf("viz: %q is not a number", e.input.Value())
		} else if err := e.params[e.selected].set(e.calc, v); err != nil {
			e.err = err
		} else {
			e.err = nil
			e.restart()
		}
		e.editing = false
		e.input.Blur()
		return e, nil
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

func (e *Explorer) adjustParam(dir float64) {
	p := e.params[e.selected]
	v := p.get(e.calc)

	var nv float64
	switch {
	case v == 0:
		nv = dir * 0.1
	case dir > 0:
		nv = v * 1.05
	default:
		nv = v * 0.95
	}

	if err := p.set(e.calc, nv); err != nil {
		e.err = err
		return
	}
	e.err = nil
	e.restart()
}

// step computes the next chunk of scan points.
func (e *Explorer) step() {
	base, err := e.calc.BaseParams()
	if err != nil {
		e.err = err
		e.running = false
		return
	}

	for k := 0; k < pointsPerTick && e.next < len(e.detunings); k++ {
		i := e.next
		p := base
		p.ProbeDetuning = e.detunings[i]

		pt, err := e.calc.At(p)
		if err != nil {
			e.err = err
			e.running = false
			return
		}
		if !pt.Report.Converged {
			e.failures++
		}
		e.chi3[i] = pt.Chi3
		e.intensity[i] = pt.Intensity

		ab, di, err := e.calc.Susceptibility(e.detunings[i : i+1])
		if err != nil {
			e.err = err
			e.running = false
			return
		}
		e.absorption[i] = ab[0]
		e.dispersion[i] = di[0]
		e.next++
	}
}

func (e *Explorer) restart() {
	e.next = 0
	e.failures = 0
	e.running = true
}

func (e *Explorer) resetParams() {
	for i, p := range e.params {
		if err := p.set(e.calc, e.initial[i]); err != nil {
			e.err = err
			return
		}
	}
	e.err = nil
	e.restart()
}

// series returns the computed prefix of the selected observable.
func (e Explorer) series() []float64 {
	out := make([]float64, e.next)
	switch e.view {
	case viewAbsorption:
		copy(out, e.absorption[:e.next])
	case viewDispersion:
		copy(out, e.dispersion[:e.next])
	case viewChi3:
		for i := 0; i < e.next; i++ {
			out[i] = cmplx.Abs(e.chi3[i])
		}
	case viewIntensity:
		copy(out, e.intensity[:e.next])
	}
	return out
}

func (e Explorer) View() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render(fmt.Sprintf("%s double-lambda, %s",
		e.calc.System.Isotope, viewNames[e.view])))
	s.WriteString("\n")

	frac := 1.0
	if n := len(e.detunings); n > 0 {
		frac = float64(e.next) / float64(n)
	}
	s.WriteString(e.prog.ViewAs(frac))
	s.WriteString("\n")

	chart := Spectrum(e.series(), chartWidth, chartHeight,
		DetuningCaption(viewNames[e.view], e.detunings[0], e.detunings[len(e.detunings)-1]))
	if chart == "" {
		chart = "scanning..."
	}
	s.WriteString(graphStyle.Render(chart))
	s.WriteString("\n")

	for i, p := range e.params {
		line := labelStyle.Render(p.name) + valueStyle.Render(fmt.Sprintf("%.4g MHz", p.get(e.calc)))
		if i == e.selected {
			line = activeParamStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		s.WriteString(line + "\n")
	}

	if e.failures > 0 {
		s.WriteString(warnStyle.Render(fmt.Sprintf("%d points did not converge", e.failures)) + "\n")
	}
	if e.err != nil {
		s.WriteString(errStyle.Render(e.err.Error()) + "\n")
	}
	if e.editing {
		s.WriteString(e.input.View() + "\n")
	}

	s.WriteString(helpStyle.Render("tab select  up/down adjust  e edit  1-4 view  space pause  r reset  q quit"))
	s.WriteString("\n")
	return s.String()
}

// RunExplorer starts the interactive program over the given probe scan.
func RunExplorer(calc *spectra.Calculator, detunings []float64) error {
	if calc == nil {
		return fmt.Errorf("viz: no calculator")
	}
	if len(detunings) < 2 {
		return fmt.Errorf("viz: need at least two scan points")
	}
	_, err := tea.NewProgram(NewExplorer(calc, detunings)).Run()
	return err
}
