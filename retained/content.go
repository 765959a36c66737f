// Package retained provides a retained-mode flex container: content is
// added once, property and size changes mark the container dirty, and a
// debounced layout pass measures everything and places it in one batch.
//
// The container never owns its content. Removing content detaches it from
// layout but leaves the value itself untouched, so callers can re-add it to
// another container.
package retained

import (
	"sync"

	"github.com/fluentkit/fluent/geom"
)

// Content is anything a container can lay out. Containers compare content
// by interface identity, so the same value must be passed to Add, Remove
// and UpdateItem.
type Content interface {
	// Measure reports the preferred size. It is called outside the
	// container lock during a layout pass.
	Measure() geom.Size

	// Place assigns the final rectangle for this pass.
	Place(geom.Rect)
}

// Fixed is content with a constant preferred size. It records every
// placement, which makes it useful as a leaf widget stand-in and in tests.
type Fixed struct {
	mu     sync.Mutex
	size   geom.Size
	rect   geom.Rect
	placed int
}

// NewFixed returns content that always measures w by h.
func NewFixed(w, h float32) *Fixed {
	return &Fixed{size: geom.Size{W: w, H: h}}
}

func (f *Fixed) Measure() geom.Size {
	return f.size
}

func (f *Fixed) Place(r geom.Rect) {
	f.mu.Lock()
	f.rect = r
	f.placed++
	f.mu.Unlock()
}

// Rect returns the rectangle assigned by the most recent layout pass.
func (f *Fixed) Rect() geom.Rect {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rect
}

// Placed returns how many times this content has been placed.
func (f *Fixed) Placed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.placed
}
