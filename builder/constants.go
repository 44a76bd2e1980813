// Package builder defines shared constants used by the adjacency generators,
// ensuring consistent names and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name of the BuildMatrix orchestrator.
	MethodBuild = "BuildMatrix"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteOriented is the canonical name for the CompleteOriented constructor.
	MethodCompleteOriented = "CompleteOriented"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodFromEdgeList is the canonical name for FromEdgeList.
	MethodFromEdgeList = "FromEdgeList"
	// MethodToEdgeList is the canonical name for ToEdgeList.
	MethodToEdgeList = "ToEdgeList"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodCompleteBipartite is the canonical name for CompleteBipartite.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodPlatonicSolid is the canonical name for PlatonicSolid.
	MethodPlatonicSolid = "PlatonicSolid"
	// MethodHypercube is the canonical name for the Hypercube constructor.
	MethodHypercube = "Hypercube"
)

//-----------------------------------------------------------------------------
// Graph kinds accepted by ByName
//-----------------------------------------------------------------------------

const (
	KindPath             = "path"
	KindCycle            = "cycle"
	KindStar             = "star"
	KindWheel            = "wheel"
	KindComplete         = "complete"
	KindCompleteOriented = "oriented"
	KindBipartite        = "bipartite"
	KindHypercube        = "hypercube"
)

// Kinds lists every name ByName accepts, in documentation order.
func Kinds() []string {
	return []string{KindPath, KindCycle, KindStar, KindWheel, KindComplete, KindCompleteOriented, KindBipartite, KindHypercube}
}

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinPathNodes is the smallest meaningful size for a simple path.
// A path of fewer than 2 nodes has no edges.
const MinPathNodes = 2

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a ring without multi-edges.
const MinCycleNodes = 3

// MinStarNodes is the smallest meaningful size for a star: a hub plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel: a 3-cycle plus a hub.
const MinWheelNodes = 4

// MinCompleteNodes is the smallest complete graph with at least one edge.
const MinCompleteNodes = 2

// MinOrientedNodes is the smallest oriented complete graph (a single arc).
const MinOrientedNodes = 2

// MinRandomSparseNodes allows a single isolated vertex.
const MinRandomSparseNodes = 1

// MinBipartiteNodes is the smallest balanced K_{a,b} from ByName (K_{1,1}).
const MinBipartiteNodes = 2

// MinHypercubeNodes is Q_1, a single edge.
const MinHypercubeNodes = 2

//-----------------------------------------------------------------------------
// Default Weights and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the adjacency value written for each edge when no
// WithWeight option is given.
const DefaultEdgeWeight = 1.0

// MinProbability and MaxProbability bound RandomSparse's edge probability.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// HubVertex is the index of the center in Star and Wheel.
const HubVertex = 0
