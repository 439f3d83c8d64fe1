package driftui

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/scrollto/pkg/scroll"
)

const defaultButtonSize = 48.0

// ScrollButton is a scroll-to-target button for a Drift scrollable.
//
// Place it above the scrollable (for example in a Stack) and point it at
// the scrollable's controller:
//
//	driftui.ScrollButton{
//	    Controller: listController,
//	    Anchors:    anchors,
//	    Config:     scroll.DefaultConfig().WithTarget("top"),
//	}
//
// With AutoHide set in the config the button disappears while the
// scrollable sits above the threshold.
type ScrollButton struct {
	// Controller is the scrollable's controller. Required.
	Controller *widgets.ScrollController
	// Anchors resolves named targets. Optional.
	Anchors *Anchors
	// Config selects target, behavior, delay, and visibility rules.
	Config scroll.Config
	// Child replaces the default arrow icon.
	Child core.Widget
	// Size is the button's side length. Defaults to 48.
	Size float64
	// Color is the button background. Defaults to blue.
	Color graphics.Color
}

func (b ScrollButton) CreateElement() core.Element {
	return core.NewStatefulElement(b, nil)
}

func (b ScrollButton) Key() any {
	return nil
}

func (b ScrollButton) CreateState() core.State {
	return &scrollButtonState{}
}

type scrollButtonState struct {
	core.StateBase
	ctrl *scroll.Controller
}

func (s *scrollButtonState) InitState() {
	w := s.Element().Widget().(ScrollButton)
	s.ctrl = scroll.NewController(w.Config, NewHost(w.Controller, w.Anchors))
	s.OnDispose(s.ctrl.AddListener(func() {
		s.SetState(func() {})
	}))
	s.OnDispose(s.ctrl.Dispose)
}

func (s *scrollButtonState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(ScrollButton)

	size := w.Size
	if size == 0 {
		size = defaultButtonSize
	}
	background := w.Color
	if background == graphics.ColorTransparent {
		background = graphics.ColorBlue
	}
	child := w.Child
	if child == nil {
		child = widgets.Icon{Glyph: "↑", Color: graphics.ColorWhite, Size: size / 2}
	}

	return widgets.Offstage{
		Offstage: !s.ctrl.Visible(),
		Child: widgets.GestureDetector{
			OnTap: s.ctrl.Activate,
			Child: widgets.Container{
				Width:       size,
				Height:      size,
				Color:       background,
				Alignment:   layout.AlignmentCenter,
				Child:       child,
			},
		},
	}
}
