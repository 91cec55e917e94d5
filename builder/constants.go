// Package builder defines shared constants used by topology builders,
// keeping defaults and minima consistent across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder method names, used to prefix errors with constructor context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodCayleyTree is the canonical name for the CayleyTree builder.
	MethodCayleyTree = "CayleyTree"
	// MethodIdeology is the canonical name for the Ideology builder.
	MethodIdeology = "Ideology"
	// MethodLayered is the canonical name for the Layered view.
	MethodLayered = "Layered"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest ring without loops or multi-links.
const MinCycleNodes = 3

// MinPathNodes is the smallest path with at least one link.
const MinPathNodes = 2

// MinStarNodes is one hub plus one leaf.
const MinStarNodes = 2

// MinCompleteNodes is the smallest K_n.
const MinCompleteNodes = 1

// MinGridDim is the smallest grid dimension; a 1×1 grid has no links but is valid.
const MinGridDim = 1

// MinTreeLinks is the smallest branching factor of a Cayley tree.
const MinTreeLinks = 2

// MinTreeGenerations is the smallest depth (a lone root).
const MinTreeGenerations = 0

//-----------------------------------------------------------------------------
// Ideology network defaults
//-----------------------------------------------------------------------------

// DefaultScale is the coefficient scale k in 1/(k·(|η|+ε)) + 1.
const DefaultScale = 1.0

// DefaultEpsilon is the stabilizing ε added to the ideology distance.
const DefaultEpsilon = 0.01

// DefaultRadius is the ideology radius of the limited policy.
const DefaultRadius = 0.07

// RootID is the identifier of the tree root and of the hub of a star; the
// engine's center initial state fills this node.
const RootID = "0"
