// Package layoutengine drives the two-phase measure/layout pass over a
// widget.Widget tree: measure bottom-up to discover each node's desired
// size under incoming constraints, then layout top-down to assign each
// node its final rect.
package layoutengine

import (
	"github.com/paiml/presentar-sub007/geometry"
	"github.com/paiml/presentar-sub007/widget"
)

// Engine computes layout for a widget tree against a viewport size,
// optionally caching the last computation to skip redundant work when
// neither the tree nor the viewport has changed.
type Engine struct {
	cache *cacheEntry
}

// New creates an Engine with an empty cache.
func New() *Engine {
	return &Engine{}
}

// Compute measures root under viewport-derived loose constraints, then
// lays the tree out into a rect spanning the full viewport. The measured
// size is diagnostic only — layout always targets Rect(0, 0, viewport),
// so the root fills the terminal even when its natural size is smaller.
// It always performs the passes and updates the cache; callers that want
// to skip unchanged recomputation should call Unchanged first.
func (e *Engine) Compute(root widget.Widget, viewport geometry.Size) geometry.Rect {
	root.Measure(geometry.Loose(viewport))
	rect := geometry.Rect{Pos: geometry.Position{}, Size: viewport}
	root.Layout(rect)
	e.cache = &cacheEntry{root: root, viewport: viewport, rect: rect}
	return rect
}

// ComputeReadonly measures root against viewport without mutating any
// widget state, returning the size the tree would occupy. Useful for
// probing whether a resize would change anything before committing to a
// full Layout pass.
func (e *Engine) ComputeReadonly(root widget.Widget, viewport geometry.Size) geometry.Size {
	return root.Measure(geometry.Loose(viewport))
}

// Unchanged reports whether the last Compute call used this exact root
// and viewport, letting callers skip a redundant measure/layout pass.
func (e *Engine) Unchanged(root widget.Widget, viewport geometry.Size) bool {
	return e.cache != nil && e.cache.root == root && e.cache.viewport == viewport
}

// Invalidate drops the cached computation, forcing the next Compute call
// to redo the full pass regardless of arguments.
func (e *Engine) Invalidate() {
	e.cache = nil
}

type cacheEntry struct {
	root     widget.Widget
	viewport geometry.Size
	rect     geometry.Rect
}
