package driftui

import (
	"time"

	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/scrollto/pkg/scroll"
)

const smoothScrollDuration = 300 * time.Millisecond

// NewHost adapts a Drift ScrollController and an anchor registry into a
// scroll.Host. Drift scrollables are vertical, so horizontal targets are
// ignored. anchors may be nil when the button only targets coordinates.
func NewHost(controller *widgets.ScrollController, anchors *Anchors) scroll.Host {
	return &driftHost{controller: controller, anchors: anchors}
}

type driftHost struct {
	controller *widgets.ScrollController
	anchors    *Anchors
}

// ScrollOffset resolves only the empty id; one host wraps one scrollable.
func (h *driftHost) ScrollOffset(id string) (float64, bool) {
	if id != "" {
		return 0, false
	}
	return h.controller.Offset(), true
}

func (h *driftHost) ElementPosition(id string) (scroll.Point, bool) {
	if h.anchors == nil {
		return scroll.Point{}, false
	}
	return h.anchors.Lookup(id)
}

func (h *driftHost) ScrollTo(target scroll.Target) {
	if target.Behavior == scroll.BehaviorInstant {
		h.controller.JumpTo(target.Top)
		return
	}
	h.controller.AnimateTo(target.Top, smoothScrollDuration)
}

// SetFragment is a no-op; Drift apps have no address bar.
func (h *driftHost) SetFragment(id string) {}

func (h *driftHost) Listen(id string, fn func(offset float64)) func() {
	return h.controller.AddListener(func() {
		fn(h.controller.Offset())
	})
}
