package scrolltest

import (
	"sync"

	"github.com/go-drift/scrollto/pkg/scroll"
)

// FakeHost implements scroll.Host against scriptable in-memory state. Tests
// set element positions and scroll offsets, emit scroll events by hand, and
// assert on the commands and fragment writes the core issued.
// All methods are safe for concurrent use.
type FakeHost struct {
	mu         sync.Mutex
	pageOffset float64
	offsets    map[string]float64
	elements   map[string]scroll.Point
	commands   []scroll.Target
	fragment   string
	fragments  []string
	listeners  map[int]*fakeListener
	nextID     int
}

type fakeListener struct {
	id string
	fn func(offset float64)
}

// NewFakeHost returns an empty FakeHost: no elements, page offset zero.
func NewFakeHost() *FakeHost {
	return &FakeHost{
		offsets:   make(map[string]float64),
		elements:  make(map[string]scroll.Point),
		listeners: make(map[int]*fakeListener),
	}
}

// SetElement registers a named element at the given document position. The
// element also becomes a resolvable scroll-offset source (initially 0).
func (h *FakeHost) SetElement(id string, pos scroll.Point) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.elements[id] = pos
	if _, ok := h.offsets[id]; !ok {
		h.offsets[id] = 0
	}
}

// RemoveElement makes id unresolvable again.
func (h *FakeHost) RemoveElement(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.elements, id)
	delete(h.offsets, id)
}

// ScrollOffset implements scroll.Host.
func (h *FakeHost) ScrollOffset(id string) (float64, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if id == "" {
		return h.pageOffset, true
	}
	offset, ok := h.offsets[id]
	return offset, ok
}

// ElementPosition implements scroll.Host.
func (h *FakeHost) ElementPosition(id string) (scroll.Point, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	pos, ok := h.elements[id]
	return pos, ok
}

// ScrollTo implements scroll.Host by recording the command. The page offset
// is updated to the command's top so follow-up reads see the new position.
func (h *FakeHost) ScrollTo(target scroll.Target) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.commands = append(h.commands, target)
	h.pageOffset = target.Top
}

// SetFragment implements scroll.Host by recording the fragment write.
func (h *FakeHost) SetFragment(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fragment = id
	h.fragments = append(h.fragments, id)
}

// Listen implements scroll.Host. An id that does not resolve falls back to
// the page, matching real hosts. The returned cancel is idempotent.
func (h *FakeHost) Listen(id string, fn func(offset float64)) func() {
	h.mu.Lock()
	if id != "" {
		if _, ok := h.offsets[id]; !ok {
			id = ""
		}
	}
	lid := h.nextID
	h.nextID++
	h.listeners[lid] = &fakeListener{id: id, fn: fn}
	h.mu.Unlock()
	return func() {
		h.mu.Lock()
		delete(h.listeners, lid)
		h.mu.Unlock()
	}
}

// EmitScroll moves the page (id == "") or a named source to offset and
// delivers a scroll event to its listeners.
func (h *FakeHost) EmitScroll(id string, offset float64) {
	h.mu.Lock()
	if id == "" {
		h.pageOffset = offset
	} else {
		h.offsets[id] = offset
	}
	notify := make([]func(float64), 0, len(h.listeners))
	for _, l := range h.listeners {
		if l.id == id {
			notify = append(notify, l.fn)
		}
	}
	h.mu.Unlock()

	for _, fn := range notify {
		fn(offset)
	}
}

// Commands returns every scroll command issued so far, oldest first.
func (h *FakeHost) Commands() []scroll.Target {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]scroll.Target, len(h.commands))
	copy(out, h.commands)
	return out
}

// LastCommand returns the most recent scroll command.
func (h *FakeHost) LastCommand() (scroll.Target, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.commands) == 0 {
		return scroll.Target{}, false
	}
	return h.commands[len(h.commands)-1], true
}

// Fragment returns the current URL fragment.
func (h *FakeHost) Fragment() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fragment
}

// Fragments returns every fragment write, oldest first.
func (h *FakeHost) Fragments() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.fragments))
	copy(out, h.fragments)
	return out
}

// ListenerCount returns the number of live scroll listeners. Tests use it
// to assert that disposal leaves nothing dangling.
func (h *FakeHost) ListenerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}
