package vango

import (
	"github.com/vango-go/vango/pkg/features/hooks"
	"github.com/vango-go/vango/pkg/vdom"

	"github.com/go-drift/scrollto/pkg/errors"
	"github.com/go-drift/scrollto/pkg/scroll"
)

// ScrollTarget creates a ScrollToTarget hook attribute from cfg. The hook
// owns the client-side lifecycle: watching the scroll source, toggling
// visibility against the threshold, and invoking the scroll on click.
func ScrollTarget(cfg scroll.Config) vdom.Attr {
	return hooks.Hook("ScrollToTarget", hookPayload(cfg))
}

func hookPayload(cfg scroll.Config) map[string]any {
	return map[string]any{
		"behavior":    cfg.Behavior.String(),
		"top":         cfg.Top,
		"left":        cfg.Left,
		"offset":      cfg.Offset,
		"offset_left": cfg.OffsetLeft,
		"delay_ms":    int(cfg.Delay.Milliseconds()),
		"threshold":   cfg.Threshold,
		"auto_hide":   cfg.AutoHide,
		"update_hash": cfg.UpdateHash,
		"show_id":     cfg.ShowID,
		"scroll_id":   cfg.ScrollID,
		"style":       cfg.Style,
	}
}

// Button builds the scroll button as a div carrying the ScrollToTarget
// hook. Children become the button content; callers typically pass an
// icon node or a text label.
func Button(cfg scroll.Config, children ...*vdom.VNode) *vdom.VNode {
	args := make([]any, 0, len(children)+3)
	args = append(args, ScrollTarget(cfg))
	if cfg.Class != "" {
		args = append(args, vdom.Class(cfg.Class))
	}
	if cfg.OnBegin != nil || cfg.OnEnd != nil {
		// The hook scrolls client-side; the click event only notifies the
		// server so configured callbacks still fire.
		args = append(args, vdom.OnClick(func(_ vdom.Event) {
			defer errors.Recover("vango.Button.OnClick")
			if cfg.OnBegin != nil {
				cfg.OnBegin()
			}
			if cfg.OnEnd != nil {
				cfg.OnEnd()
			}
		}))
	}
	for _, child := range children {
		args = append(args, child)
	}
	if len(children) == 0 {
		args = append(args, vdom.Text("↑"))
	}
	return vdom.Div(args...)
}
