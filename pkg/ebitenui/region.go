package ebitenui

import (
	"math"
	"sync"

	"github.com/go-drift/scrollto/pkg/scroll"
)

const (
	smoothDuration = 0.3
	maxFrameDelta  = 1.0 / 15.0
)

// Region is a scrollable content area. It tracks a vertical and horizontal
// offset within extents, exposes named anchors for scroll targets, and
// implements scroll.Host so a Controller can drive it.
//
// Call Update once per game tick with the frame delta in seconds to step
// smooth scrolls.
type Region struct {
	mu        sync.Mutex
	top       float64
	left      float64
	maxTop    float64
	maxLeft   float64
	anchors   map[string]scroll.Point
	listeners map[int]func(offset float64)
	nextID    int
	fragment  string
	anim      *smoothScroll
}

type smoothScroll struct {
	fromTop, fromLeft float64
	toTop, toLeft     float64
	elapsed           float64
}

// NewRegion creates a region with the given maximum scroll extents.
func NewRegion(maxTop, maxLeft float64) *Region {
	return &Region{
		maxTop:    math.Max(maxTop, 0),
		maxLeft:   math.Max(maxLeft, 0),
		anchors:   make(map[string]scroll.Point),
		listeners: make(map[int]func(offset float64)),
	}
}

// SetExtents updates the maximum scroll extents, re-clamping the current
// offset.
func (r *Region) SetExtents(maxTop, maxLeft float64) {
	r.mu.Lock()
	r.maxTop = math.Max(maxTop, 0)
	r.maxLeft = math.Max(maxLeft, 0)
	changed := r.clampLocked()
	fns := r.listenersLocked()
	top := r.top
	r.mu.Unlock()
	if changed {
		notify(fns, top)
	}
}

// SetAnchor registers a named position inside the region, making it a
// valid scroll target id.
func (r *Region) SetAnchor(id string, at scroll.Point) {
	r.mu.Lock()
	r.anchors[id] = at
	r.mu.Unlock()
}

// RemoveAnchor drops a named anchor. Activations naming it afterwards
// fall back to literal coordinates.
func (r *Region) RemoveAnchor(id string) {
	r.mu.Lock()
	delete(r.anchors, id)
	r.mu.Unlock()
}

// Offset returns the current scroll offset.
func (r *Region) Offset() scroll.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return scroll.Point{Top: r.top, Left: r.left}
}

// ApplyUserScroll shifts the offset by a user input delta, interrupting
// any smooth scroll in flight.
func (r *Region) ApplyUserScroll(deltaTop, deltaLeft float64) {
	r.mu.Lock()
	r.anim = nil
	r.top += deltaTop
	r.left += deltaLeft
	r.clampLocked()
	fns := r.listenersLocked()
	top := r.top
	r.mu.Unlock()
	notify(fns, top)
}

// Update advances an in-flight smooth scroll by dt seconds. Call it from
// the game's Update method. Large deltas are capped so a stalled frame
// does not teleport the offset.
func (r *Region) Update(dt float64) {
	if dt <= 0 {
		return
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	r.mu.Lock()
	anim := r.anim
	if anim == nil {
		r.mu.Unlock()
		return
	}
	anim.elapsed += dt
	t := anim.elapsed / smoothDuration
	if t >= 1 {
		r.top = anim.toTop
		r.left = anim.toLeft
		r.anim = nil
	} else {
		eased := easeOutCubic(t)
		r.top = anim.fromTop + (anim.toTop-anim.fromTop)*eased
		r.left = anim.fromLeft + (anim.toLeft-anim.fromLeft)*eased
	}
	r.clampLocked()
	fns := r.listenersLocked()
	top := r.top
	r.mu.Unlock()
	notify(fns, top)
}

// Fragment returns the last fragment recorded by SetFragment.
func (r *Region) Fragment() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fragment
}

// ScrollOffset implements scroll.Host. Only the empty id resolves; the
// region itself is the page.
func (r *Region) ScrollOffset(id string) (float64, bool) {
	if id != "" {
		return 0, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.top, true
}

// ElementPosition implements scroll.Host by looking up a named anchor.
func (r *Region) ElementPosition(id string) (scroll.Point, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	at, ok := r.anchors[id]
	return at, ok
}

// ScrollTo implements scroll.Host. Smooth targets animate over the next
// Update calls; instant and auto targets apply immediately.
func (r *Region) ScrollTo(target scroll.Target) {
	r.mu.Lock()
	if target.Behavior == scroll.BehaviorSmooth {
		r.anim = &smoothScroll{
			fromTop:  r.top,
			fromLeft: r.left,
			toTop:    clamp(target.Top, 0, r.maxTop),
			toLeft:   clamp(target.Left, 0, r.maxLeft),
		}
		r.mu.Unlock()
		return
	}
	r.anim = nil
	r.top = target.Top
	r.left = target.Left
	r.clampLocked()
	fns := r.listenersLocked()
	top := r.top
	r.mu.Unlock()
	notify(fns, top)
}

// SetFragment implements scroll.Host. Games have no address bar, so the
// fragment is only recorded for callers that want it.
func (r *Region) SetFragment(id string) {
	r.mu.Lock()
	r.fragment = id
	r.mu.Unlock()
}

// Listen implements scroll.Host. Named sources other than the region
// itself do not exist here, so any non-empty id reports the region too.
func (r *Region) Listen(id string, fn func(offset float64)) func() {
	r.mu.Lock()
	id2 := r.nextID
	r.nextID++
	r.listeners[id2] = fn
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.listeners, id2)
			r.mu.Unlock()
		})
	}
}

func (r *Region) clampLocked() bool {
	top := clamp(r.top, 0, r.maxTop)
	left := clamp(r.left, 0, r.maxLeft)
	changed := top != r.top || left != r.left
	r.top = top
	r.left = left
	return changed
}

func (r *Region) listenersLocked() []func(offset float64) {
	fns := make([]func(offset float64), 0, len(r.listeners))
	for _, fn := range r.listeners {
		fns = append(fns, fn)
	}
	return fns
}

func notify(fns []func(offset float64), top float64) {
	for _, fn := range fns {
		fn(top)
	}
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
