package driftui

import (
	"sync"

	"github.com/go-drift/scrollto/pkg/scroll"
)

// Anchors maps names to scroll offsets inside one scrollable, standing in
// for element ids. Register an anchor for every named position the button
// may target; unregistered names fall back to the configured coordinates.
//
// Safe for concurrent use.
type Anchors struct {
	mu      sync.Mutex
	offsets map[string]scroll.Point
}

// NewAnchors creates an empty registry.
func NewAnchors() *Anchors {
	return &Anchors{offsets: make(map[string]scroll.Point)}
}

// Set registers or moves a named anchor.
func (a *Anchors) Set(id string, at scroll.Point) {
	a.mu.Lock()
	a.offsets[id] = at
	a.mu.Unlock()
}

// Remove drops a named anchor.
func (a *Anchors) Remove(id string) {
	a.mu.Lock()
	delete(a.offsets, id)
	a.mu.Unlock()
}

// Lookup resolves a named anchor.
func (a *Anchors) Lookup(id string) (scroll.Point, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	at, ok := a.offsets[id]
	return at, ok
}
