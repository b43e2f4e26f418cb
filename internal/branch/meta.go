package branch

import "encoding/json"

// Meta is the branch-kind tagged union carried in data.branch_type.
// It is a closed sum: the compiler-checked type switches in the
// parameter reconstructor and the profile extractor enumerate every
// variant, so a new curve kind cannot be added silently.
type Meta interface{ isMeta() }

// EquilibriumMeta tags a plain one-parameter equilibrium branch.
type EquilibriumMeta struct{}

// CycleMeta tags a limit-cycle branch discretized on an ntst x ncol
// collocation mesh.
type CycleMeta struct {
	Ntst int `json:"ntst"`
	Ncol int `json:"ncol"`
}

// FoldCurveMeta tags a fold locus traced in the (Param1, Param2) plane.
type FoldCurveMeta struct {
	Param1 string `json:"param1_name"`
	Param2 string `json:"param2_name"`
}

// HopfCurveMeta tags a Hopf locus in the (Param1, Param2) plane.
type HopfCurveMeta struct {
	Param1 string `json:"param1_name"`
	Param2 string `json:"param2_name"`
}

// CycleFoldCurveMeta tags a fold-of-cycles (LPC) locus.
type CycleFoldCurveMeta struct {
	Param1 string `json:"param1_name"`
	Param2 string `json:"param2_name"`
}

// PeriodDoublingCurveMeta tags a period-doubling locus.
type PeriodDoublingCurveMeta struct {
	Param1 string `json:"param1_name"`
	Param2 string `json:"param2_name"`
}

// NeimarkSackerCurveMeta tags a Neimark-Sacker locus.
type NeimarkSackerCurveMeta struct {
	Param1 string `json:"param1_name"`
	Param2 string `json:"param2_name"`
}

func (EquilibriumMeta) isMeta()         {}
func (CycleMeta) isMeta()               {}
func (FoldCurveMeta) isMeta()           {}
func (HopfCurveMeta) isMeta()           {}
func (CycleFoldCurveMeta) isMeta()      {}
func (PeriodDoublingCurveMeta) isMeta() {}
func (NeimarkSackerCurveMeta) isMeta()  {}

// CurveParams returns the two parameter names of a codimension-1 curve
// variant. ok is false for equilibrium and limit-cycle branches.
func CurveParams(m Meta) (param1, param2 string, ok bool) {
	switch v := m.(type) {
	case FoldCurveMeta:
		return v.Param1, v.Param2, true
	case HopfCurveMeta:
		return v.Param1, v.Param2, true
	case CycleFoldCurveMeta:
		return v.Param1, v.Param2, true
	case PeriodDoublingCurveMeta:
		return v.Param1, v.Param2, true
	case NeimarkSackerCurveMeta:
		return v.Param1, v.Param2, true
	case EquilibriumMeta, CycleMeta, nil:
		return "", "", false
	}
	return "", "", false
}

// On-disk "type" tags, one per variant.
const (
	tagEquilibrium    = "Equilibrium"
	tagLimitCycle     = "LimitCycle"
	tagFoldCurve      = "FoldCurve"
	tagHopfCurve      = "HopfCurve"
	tagCycleFold      = "CycleFoldCurve"
	tagPeriodDoubling = "PeriodDoublingCurve"
	tagNeimarkSacker  = "NeimarkSackerCurve"
)

type metaEnvelope struct {
	Type   string `json:"type"`
	Ntst   int    `json:"ntst,omitempty"`
	Ncol   int    `json:"ncol,omitempty"`
	Param1 string `json:"param1_name,omitempty"`
	Param2 string `json:"param2_name,omitempty"`
}

func decodeMeta(raw json.RawMessage) Meta {
	if len(raw) == 0 {
		return EquilibriumMeta{}
	}
	var env metaEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return EquilibriumMeta{}
	}
	switch env.Type {
	case tagLimitCycle:
		return CycleMeta{Ntst: env.Ntst, Ncol: env.Ncol}
	case tagFoldCurve:
		return FoldCurveMeta{Param1: env.Param1, Param2: env.Param2}
	case tagHopfCurve:
		return HopfCurveMeta{Param1: env.Param1, Param2: env.Param2}
	case tagCycleFold:
		return CycleFoldCurveMeta{Param1: env.Param1, Param2: env.Param2}
	case tagPeriodDoubling:
		return PeriodDoublingCurveMeta{Param1: env.Param1, Param2: env.Param2}
	case tagNeimarkSacker:
		return NeimarkSackerCurveMeta{Param1: env.Param1, Param2: env.Param2}
	default:
		return EquilibriumMeta{}
	}
}

func encodeMeta(m Meta) metaEnvelope {
	switch v := m.(type) {
	case CycleMeta:
		return metaEnvelope{Type: tagLimitCycle, Ntst: v.Ntst, Ncol: v.Ncol}
	case FoldCurveMeta:
		return metaEnvelope{Type: tagFoldCurve, Param1: v.Param1, Param2: v.Param2}
	case HopfCurveMeta:
		return metaEnvelope{Type: tagHopfCurve, Param1: v.Param1, Param2: v.Param2}
	case CycleFoldCurveMeta:
		return metaEnvelope{Type: tagCycleFold, Param1: v.Param1, Param2: v.Param2}
	case PeriodDoublingCurveMeta:
		return metaEnvelope{Type: tagPeriodDoubling, Param1: v.Param1, Param2: v.Param2}
	case NeimarkSackerCurveMeta:
		return metaEnvelope{Type: tagNeimarkSacker, Param1: v.Param1, Param2: v.Param2}
	default:
		return metaEnvelope{Type: tagEquilibrium}
	}
}

func (d *Data) UnmarshalJSON(data []byte) error {
	type alias Data
	aux := struct {
		*alias
		Meta json.RawMessage `json:"branch_type"`
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	d.Meta = decodeMeta(aux.Meta)
	return nil
}

func (d Data) MarshalJSON() ([]byte, error) {
	type alias Data
	return json.Marshal(struct {
		alias
		Meta metaEnvelope `json:"branch_type"`
	}{alias: alias(d), Meta: encodeMeta(d.Meta)})
}
