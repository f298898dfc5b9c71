// Package builder defines shared constants used by the clique-gate builders,
// ensuring consistent validation and error context across all stages.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the stage name for context.
//-----------------------------------------------------------------------------

const (
	// MethodAllocate is the canonical name for the id allocator.
	MethodAllocate = "Allocate"
	// MethodClique is the canonical name for the clique builder.
	MethodClique = "Clique"
	// MethodMerge is the canonical name for the graph merger.
	MethodMerge = "Merge"
	// MethodWire is the canonical name for the gate wiring engine.
	MethodWire = "Wire"
	// MethodGenerate is the canonical name for the topology generator.
	MethodGenerate = "Generate"
	// MethodCliqueGate is the canonical name for the CliqueGate constructor.
	MethodCliqueGate = "CliqueGate"
	// MethodBuildGraph is the canonical name for the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
	// MethodValidate is the canonical name for the standalone parameter check.
	MethodValidate = "Validate"
)

//-----------------------------------------------------------------------------
// Parameter Minima
//-----------------------------------------------------------------------------

// MinComponents is the smallest accepted number of big components.
// Zero components yield an empty graph.
const MinComponents = 0

// MinComponentSize is the smallest accepted big-component size.
const MinComponentSize = 1

// MinGateSize is the smallest gate size accepted once gates are required
// (two or more components). With fewer components a gate size of zero is
// tolerated because no gate is ever built.
const MinGateSize = 1

// MinComponentsForGates is the component count from which pairings exist.
const MinComponentsForGates = 2
