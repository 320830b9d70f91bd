// Package rules evaluates event requirements against the game state.
package rules

import (
	"sort"

	"github.com/nathoo/gangwar/engine/state"
	"github.com/nathoo/gangwar/types"
)

// Requirement operators.
const (
	OpMin = "min"
	OpMax = "max"
	OpEq  = "eq"
)

// EvalRequirement checks one requirement against a named stat or flag.
// Unknown stats and operators fail.
func EvalRequirement(stat string, req types.Requirement, s *types.GameState) bool {
	v, ok := state.Stat(s, stat)
	if !ok {
		return false
	}
	switch req.Op {
	case OpMin:
		return v >= req.Value
	case OpMax:
		return v <= req.Value
	case OpEq:
		return v == req.Value
	default:
		return false
	}
}

// MeetsRequirements returns true if every requirement passes (AND logic).
// An empty requirement set is vacuously true.
func MeetsRequirements(ev types.RandomEvent, s *types.GameState) bool {
	for stat, req := range ev.Requirements {
		if !EvalRequirement(stat, req, s) {
			return false
		}
	}
	return true
}

// Failing lists the stats whose requirements fail, sorted.
func Failing(ev types.RandomEvent, s *types.GameState) []string {
	var out []string
	for stat, req := range ev.Requirements {
		if !EvalRequirement(stat, req, s) {
			out = append(out, stat)
		}
	}
	sort.Strings(out)
	return out
}

// KnownOp reports whether op is a supported requirement operator.
func KnownOp(op string) bool {
	return op == OpMin || op == OpMax || op == OpEq
}
