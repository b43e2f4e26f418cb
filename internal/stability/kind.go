package stability

import "encoding/json"

// Kind classifies a continuation point: plain stability derived from
// eigen-data, or a bifurcation tag assigned by the solver.
type Kind int

const (
	None Kind = iota
	Stable
	Unstable
	Fold
	Hopf
	NeutralSaddle
	CycleFold
	PeriodDoubling
	NeimarkSacker
)

var kindNames = map[Kind]string{
	None:           "None",
	Stable:         "Stable",
	Unstable:       "Unstable",
	Fold:           "Fold",
	Hopf:           "Hopf",
	NeutralSaddle:  "NeutralSaddle",
	CycleFold:      "CycleFold",
	PeriodDoubling: "PeriodDoubling",
	NeimarkSacker:  "NeimarkSacker",
}

var kindLabels = map[Kind]string{
	None:           "unclassified",
	Stable:         "stable",
	Unstable:       "unstable",
	Fold:           "fold",
	Hopf:           "Hopf",
	NeutralSaddle:  "neutral saddle",
	CycleFold:      "cycle fold",
	PeriodDoubling: "period doubling",
	NeimarkSacker:  "Neimark-Sacker",
}

func (k Kind) String() string {
	if s, ok := kindLabels[k]; ok {
		return s
	}
	return "unclassified"
}

// IsBifurcation reports whether k is a solver-assigned bifurcation tag
// rather than a derived stability label.
func (k Kind) IsBifurcation() bool {
	switch k {
	case Fold, Hopf, NeutralSaddle, CycleFold, PeriodDoubling, NeimarkSacker:
		return true
	}
	return false
}

func (k Kind) MarshalJSON() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		name = "None"
	}
	return json.Marshal(name)
}

// UnmarshalJSON accepts the tag names written by the solver. Unknown or
// malformed tags decode to None rather than failing the whole snapshot.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		*k = None
		return nil
	}
	for kind, n := range kindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	*k = None
	return nil
}
