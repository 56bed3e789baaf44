// SPDX-License-Identifier: MIT
// Package: dagloss/builder
//
// constants.go - method tags and domain bounds (no magic literals).

package builder

// Method tags used in error contexts.
const (
	MethodChain     = "Chain"
	MethodCycle     = "Cycle"
	MethodStar      = "Star"
	MethodComplete  = "Complete"
	MethodRandomDAG = "RandomDAG"
	MethodSEM       = "SampleLinearSEM"
	MethodBuild     = "BuildAdjacency"
)

// Minimum node counts per constructor.
const (
	MinChainNodes    = 2
	MinCycleNodes    = 2
	MinStarNodes     = 2
	MinCompleteNodes = 1
	MinRandomNodes   = 1
)

// Probability domain for RandomDAG.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
