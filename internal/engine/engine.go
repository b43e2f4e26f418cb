// Package engine defines the request/response contract with the
// external continuation and integration engine. The analysis layer only
// consumes the snapshots these calls return; the predictor-corrector
// stepper, the integrator, and the equilibrium solver all live behind
// this boundary.
package engine

import (
	"context"

	"github.com/san-kum/biflab/internal/branch"
)

// Direction selects which end of a branch an extension grows from.
// Forward growth appends increasing logical indices; backward growth
// appends to storage with decreasing (possibly negative) ones.
type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// Request identifies a target object and point plus the continuation
// settings to run with.
type Request struct {
	Object     string          `json:"object"`
	PointIndex int             `json:"point_index"`
	Settings   branch.Settings `json:"settings"`
	Direction  Direction       `json:"direction"`
}

// Engine is implemented by the external solver process. Every call
// returns a fresh immutable snapshot; callers must not assume any
// completion order between successive calls.
type Engine interface {
	SolveEquilibrium(ctx context.Context, sys *branch.System, guess []float64) (*branch.Branch, error)
	ExtendBranch(ctx context.Context, req Request) (*branch.Branch, error)
	ContinueFromPoint(ctx context.Context, req Request) (*branch.Branch, error)
	// ContinueCycle starts a limit-cycle branch from a Hopf or
	// period-doubling point of an existing branch.
	ContinueCycle(ctx context.Context, req Request) (*branch.Branch, error)
}
