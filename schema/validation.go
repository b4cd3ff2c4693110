package schema

import "errors"

// ErrMissingObjectives is returned when a validation has no objectives.
var ErrMissingObjectives = errors.New("objectives must be specified")

// Validation is a pipeline element that compares model predictions against
// experimental data using the given objectives and reports summary error
// statistics. The executor defaults summary stats to RMSE, MAE and Max when
// none are given.
type Validation struct {
	// Objectives maps objective names to objective schemas or raw configs.
	Objectives any
	// SummaryStats lists the error metrics to compute, as cost schemas.
	SummaryStats []any
}

// NewValidation returns a validation element over the given objectives.
func NewValidation(objectives any) *Validation {
	return &Validation{Objectives: objectives}
}

func (v *Validation) Config() Config {
	cfg := Config{"type": "Validation"}
	if obj := Value(v.Objectives); obj != nil {
		cfg["objectives"] = obj
	} else {
		cfg["objectives"] = map[string]any{}
	}
	Put(cfg, "summary_stats", v.SummaryStats)
	return cfg
}

// Validate checks that objectives are present, and any nested objective
// invariants.
func (v *Validation) Validate() error {
	if v.Objectives == nil {
		return ErrMissingObjectives
	}
	return ValidateEach("objective", v.Objectives)
}

func (*Validation) ElementKind() Kind { return KindValidation }
