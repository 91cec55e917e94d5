package montecarlo

// SetEvalOrder overrides the node evaluation order of e (indices into
// NodeIDs order).
func SetEvalOrder(e *Engine, order []int) { e.order = order }

// NodeDraw exposes the per-node uniform draw.
var NodeDraw = nodeDraw
