// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodBuildInput        = "BuildInput"
	methodSpanningTreePlus  = "SpanningTreePlus"
	methodPath              = "Path"
	methodCycle             = "Cycle"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodRandomSparse      = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Vertex ID Defaults
//-----------------------------------------------------------------------------

// CenterVertexID is the identifier of the hub vertex in Star and Wheel.
const CenterVertexID = "Center"

// gridIDFmt renders a grid cell as "row,col".
const gridIDFmt = "%d,%d"

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

const (
	minSpanningTreeNodes = 1
	minPathNodes         = 2 // a path of fewer than 2 nodes has no edges
	minCycleNodes        = 3 // fewer than 3 needs a loop or a parallel edge
	minStarNodes         = 2 // one centre plus at least one leaf
	minWheelNodes        = 4 // a 3-cycle plus the hub
	minCompleteNodes     = 1
	minPartition         = 1
	minGridDim           = 1 // a 1×1 grid has no edges but is valid
	minRandomNodes       = 1
)

//-----------------------------------------------------------------------------
// Default Weights, Probability Bounds and Retry Budget
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the weight assigned to each edge when no WeightFn is set.
const DefaultEdgeWeight int64 = 1

const (
	probMin = 0.0
	probMax = 1.0
)

// attemptsPerSlot bounds rejection sampling in SpanningTreePlus: the draw loop gives up
// after attemptsPerSlot × (pairs available) draws.
const attemptsPerSlot = 64
