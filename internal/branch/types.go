package branch

import (
	"encoding/json"

	"github.com/san-kum/biflab/internal/stability"
)

// Kind identifies what a branch traces: a one-parameter family of
// solutions, or a codimension-1 locus in a two-parameter plane.
type Kind string

const (
	Equilibrium Kind = "equilibrium"
	LimitCycle  Kind = "limit_cycle"
	FoldCurve   Kind = "fold_curve"
	HopfCurve   Kind = "hopf_curve"
	LPCCurve    Kind = "lpc_curve"
	PDCurve     Kind = "pd_curve"
	NSCurve     Kind = "ns_curve"
)

// Point is one sample along a branch. Points are produced by the
// external engine and never mutated here.
type Point struct {
	State       []float64       `json:"state"`
	ParamValue  float64         `json:"param_value"`
	Param2Value *float64        `json:"param2_value,omitempty"`
	Stability   stability.Kind  `json:"stability"`
	Eigenvalues json.RawMessage `json:"eigenvalues,omitempty"`
	CyclePoints [][]float64     `json:"cycle_points,omitempty"`
}

// Eigen returns the point's eigenvalues or Floquet multipliers in
// canonical form. Empty when the solver stored none.
func (p *Point) Eigen() []complex128 {
	return NormalizeEigen(p.Eigenvalues)
}

// Data is the solver-written payload of a branch.
type Data struct {
	Points []Point `json:"points"`
	// Bifurcations holds storage positions, not logical indices.
	Bifurcations []int `json:"bifurcations"`
	// Indices holds the signed logical index of each point, parallel to
	// Points. Older snapshots omit it; see EnsureIndices.
	Indices []int `json:"indices,omitempty"`
	Meta    Meta  `json:"-"`
}

// Branch is a continuation object: one traced family of solutions.
type Branch struct {
	Name      string   `json:"name,omitempty"`
	Type      Kind     `json:"branchType"`
	Parameter string   `json:"parameterName"`
	Data      Data     `json:"data"`
	Settings  Settings `json:"settings"`
}

// Len returns the number of stored points.
func (b *Branch) Len() int { return len(b.Data.Points) }

// Settings mirrors the continuation-step configuration the engine was
// asked to use. Opaque to the analysis layer beyond display and replay
// in new requests.
type Settings struct {
	StepSize           float64 `json:"step_size" yaml:"step_size"`
	MinStepSize        float64 `json:"min_step_size" yaml:"min_step_size"`
	MaxStepSize        float64 `json:"max_step_size" yaml:"max_step_size"`
	MaxSteps           int     `json:"max_steps" yaml:"max_steps"`
	CorrectorSteps     int     `json:"corrector_steps" yaml:"corrector_steps"`
	CorrectorTolerance float64 `json:"corrector_tolerance" yaml:"corrector_tolerance"`
	StepTolerance      float64 `json:"step_tolerance" yaml:"step_tolerance"`
}

// SystemKind distinguishes flows (ODEs) from discrete maps.
type SystemKind int

const (
	Flow SystemKind = iota
	Map
)

func (k SystemKind) String() string {
	if k == Map {
		return "map"
	}
	return "flow"
}

func (k SystemKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *SystemKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "map" {
		*k = Map
	} else {
		*k = Flow
	}
	return nil
}

// System carries the variable/parameter naming and the base parameter
// vector the branch's overrides apply to.
type System struct {
	Name       string     `json:"name"`
	Kind       SystemKind `json:"kind"`
	VarNames   []string   `json:"var_names"`
	ParamNames []string   `json:"param_names"`
	Params     []float64  `json:"params"`
}

// Dim returns the state dimension.
func (s *System) Dim() int { return len(s.VarNames) }
