// Package objectives defines the objective schemas used by data fits and
// validations. An objective pairs experimental data with a model
// configuration and declares how the two are compared.
package objectives

import (
	"errors"

	"github.com/ionworks/ionworks-schema/schema"
)

var (
	// ErrMissingData is returned when a data-driven objective has no data.
	ErrMissingData = errors.New("objective data must be set")
	// ErrMissingElectrode is returned when a half-cell objective has no
	// electrode.
	ErrMissingElectrode = errors.New("electrode must be 'negative' or 'positive'")
	// ErrMissingActions is returned when a design objective has no actions.
	ErrMissingActions = errors.New("design objective actions must be set")
)

// Base holds the options shared by every objective.
type Base struct {
	Options   map[string]any
	Callbacks []any
	// CustomParameters are objective-local parameter overrides. They are not
	// propagated to the data fit's results.
	CustomParameters map[string]any
	Cost             any
	Constraints      []any
	Penalties        []any
	// Parameters are static objective-specific parameter values merged into
	// the global parameter values before fitting.
	Parameters map[string]any
}

func (b *Base) config(typ string) schema.Config {
	cfg := schema.Config{"type": typ}
	schema.Put(cfg, "options", b.Options)
	schema.Put(cfg, "callbacks", b.Callbacks)
	schema.Put(cfg, "custom_parameters", b.CustomParameters)
	schema.Put(cfg, "cost", b.Cost)
	schema.Put(cfg, "constraints", b.Constraints)
	schema.Put(cfg, "penalties", b.Penalties)
	schema.Put(cfg, "parameters", b.Parameters)
	return cfg
}

func (b *Base) Config() schema.Config { return b.config("BaseObjective") }

// Fitting is an objective that compares model output against experimental
// data. Data is a file path or a map with "data" and "metadata" keys; it is
// serialized under the "data" key the executor's parser expects.
type Fitting struct {
	Data any
	Base
}

// NewFitting returns a fitting objective over the given data.
func NewFitting(data any) *Fitting { return &Fitting{Data: data} }

func (f *Fitting) fittingConfig(typ string) schema.Config {
	cfg := f.Base.config(typ)
	schema.Put(cfg, "data", f.Data)
	return cfg
}

func (f *Fitting) Config() schema.Config { return f.fittingConfig("FittingObjective") }

// Validate checks that data is present.
func (f *Fitting) Validate() error {
	if f.Data == nil {
		return ErrMissingData
	}
	return nil
}

// Simulation runs the model over the experiment recorded in the data and
// compares the simulated output to the measured output.
type Simulation struct{ Fitting }

// NewSimulation returns a simulation objective over the given data.
func NewSimulation(data any) *Simulation { return &Simulation{Fitting{Data: data}} }

func (s *Simulation) Config() schema.Config { return s.fittingConfig("SimulationObjective") }

// CalendarAgeing fits degradation parameters against calendar ageing data.
type CalendarAgeing struct{ Fitting }

func NewCalendarAgeing(data any) *CalendarAgeing { return &CalendarAgeing{Fitting{Data: data}} }

func (o *CalendarAgeing) Config() schema.Config { return o.fittingConfig("CalendarAgeing") }

// CurrentDriven simulates the cell under the data's current profile and
// compares the voltage response.
type CurrentDriven struct{ Fitting }

func NewCurrentDriven(data any) *CurrentDriven { return &CurrentDriven{Fitting{Data: data}} }

func (o *CurrentDriven) Config() schema.Config { return o.fittingConfig("CurrentDriven") }

// CycleAgeing fits degradation parameters against cycling data.
type CycleAgeing struct{ Fitting }

func NewCycleAgeing(data any) *CycleAgeing { return &CycleAgeing{Fitting{Data: data}} }

func (o *CycleAgeing) Config() schema.Config { return o.fittingConfig("CycleAgeing") }

// EIS simulates the model impedance at the measured frequencies and compares
// it to electrochemical impedance spectroscopy data.
type EIS struct{ Fitting }

func NewEIS(data any) *EIS { return &EIS{Fitting{Data: data}} }

func (o *EIS) Config() schema.Config { return o.fittingConfig("EIS") }

// ElectrodeBalancing fits full-cell electrode balancing parameters from OCV
// data.
type ElectrodeBalancing struct{ Fitting }

func NewElectrodeBalancing(data any) *ElectrodeBalancing {
	return &ElectrodeBalancing{Fitting{Data: data}}
}

func (o *ElectrodeBalancing) Config() schema.Config { return o.fittingConfig("ElectrodeBalancing") }

// ElectrodeBalancingHalfCell fits electrode balancing parameters for a single
// electrode from half-cell OCP data.
type ElectrodeBalancingHalfCell struct {
	Electrode string
	Fitting
}

func NewElectrodeBalancingHalfCell(electrode string, data any) *ElectrodeBalancingHalfCell {
	return &ElectrodeBalancingHalfCell{Electrode: electrode, Fitting: Fitting{Data: data}}
}

func (o *ElectrodeBalancingHalfCell) Config() schema.Config {
	cfg := o.fittingConfig("ElectrodeBalancingHalfCell")
	cfg["electrode"] = o.Electrode
	return cfg
}

func (o *ElectrodeBalancingHalfCell) Validate() error {
	if o.Electrode == "" {
		return ErrMissingElectrode
	}
	return o.Fitting.Validate()
}

// MSMRFullCell fits MSMR parameters for both electrodes from full-cell OCV
// data.
type MSMRFullCell struct{ Fitting }

func NewMSMRFullCell(data any) *MSMRFullCell { return &MSMRFullCell{Fitting{Data: data}} }

func (o *MSMRFullCell) Config() schema.Config { return o.fittingConfig("MSMRFullCell") }

// MSMRHalfCell fits MSMR parameters for a single electrode from half-cell
// OCP data.
type MSMRHalfCell struct{ Fitting }

func NewMSMRHalfCell(data any) *MSMRHalfCell { return &MSMRHalfCell{Fitting{Data: data}} }

func (o *MSMRHalfCell) Config() schema.Config { return o.fittingConfig("MSMRHalfCell") }

// OCPHalfCell fits an open-circuit potential function for a single electrode
// from half-cell data.
type OCPHalfCell struct {
	Electrode string
	Fitting
}

func NewOCPHalfCell(electrode string, data any) *OCPHalfCell {
	return &OCPHalfCell{Electrode: electrode, Fitting: Fitting{Data: data}}
}

func (o *OCPHalfCell) Config() schema.Config {
	cfg := o.fittingConfig("OCPHalfCell")
	cfg["electrode"] = o.Electrode
	return cfg
}

func (o *OCPHalfCell) Validate() error {
	if o.Electrode == "" {
		return ErrMissingElectrode
	}
	return o.Fitting.Validate()
}

// Pulse fits resistance or diffusion parameters from pulse experiments such
// as GITT, HPPC and ICI.
type Pulse struct{ Simulation }

func NewPulse(data any) *Pulse { return &Pulse{Simulation{Fitting{Data: data}}} }

func (o *Pulse) Config() schema.Config { return o.fittingConfig("Pulse") }

// Resistance fits a resistance model to measured resistance data.
type Resistance struct{ Fitting }

func NewResistance(data any) *Resistance { return &Resistance{Fitting{Data: data}} }

func (o *Resistance) Config() schema.Config { return o.fittingConfig("Resistance") }

// Objective is the legacy name for Fitting.
//
// Deprecated: use Fitting.
type Objective = Fitting

// Design optimizes cell design parameters against a set of actions instead
// of experimental data. Simulation failures are penalized rather than
// propagated so population optimizers can continue.
type Design struct {
	// Actions maps action names to action-wrapped metrics.
	Actions any
	// ValidateAgainstExperimentSteps checks requested outputs against the
	// experiment's steps before running. On by default.
	ValidateAgainstExperimentSteps bool
	OutputVariablesFull            []string
	SaveAtCycles                   any
	Base
}

// NewDesign returns a design objective over the given actions.
func NewDesign(actions any) *Design {
	return &Design{Actions: actions, ValidateAgainstExperimentSteps: true}
}

func (o *Design) Config() schema.Config {
	cfg := o.Base.config("DesignObjective")
	schema.Put(cfg, "actions", o.Actions)
	cfg["validate_against_experiment_steps"] = o.ValidateAgainstExperimentSteps
	schema.Put(cfg, "output_variables_full", o.OutputVariablesFull)
	schema.Put(cfg, "save_at_cycles", o.SaveAtCycles)
	return cfg
}

func (o *Design) Validate() error {
	if o.Actions == nil {
		return ErrMissingActions
	}
	return nil
}
