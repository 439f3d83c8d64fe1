//go:build js && wasm

package web

import (
	"fmt"
	"syscall/js"

	"github.com/go-drift/scrollto/pkg/errors"
	"github.com/go-drift/scrollto/pkg/scroll"
)

// Button is a scroll-to-target button mounted into the DOM.
//
// The button element carries the configured style and class, renders the
// configured markup (or DefaultIcon), and hides itself by toggling the
// hidden attribute as the watched scroll source crosses the threshold.
type Button struct {
	ctrl    *scroll.Controller
	element js.Value
	onClick js.Func
	removed func()
}

// Mount creates the button element, attaches it to the parent named in
// opts (or document.body), and starts watching scroll position.
func Mount(opts Options) (*Button, error) {
	cfg, content := opts.resolve()

	parent := document().Get("body")
	if opts.Parent != "" {
		el, ok := elementByID(opts.Parent)
		if !ok {
			return nil, &errors.Error{
				Op:   "web.Mount",
				Kind: errors.KindBinding,
				Err:  fmt.Errorf("no element with id %q", opts.Parent),
			}
		}
		parent = el
	}

	element := document().Call("createElement", "div")
	if cfg.Style != "" {
		element.Call("setAttribute", "style", cfg.Style)
	}
	if cfg.Class != "" {
		element.Set("className", cfg.Class)
	}
	element.Set("innerHTML", content)

	ctrl := scroll.NewController(cfg, Host())

	b := &Button{ctrl: ctrl, element: element}
	b.onClick = js.FuncOf(func(this js.Value, args []js.Value) any {
		ctrl.Activate()
		return nil
	})
	element.Call("addEventListener", "click", b.onClick)

	b.applyVisibility(ctrl.Visible())
	b.removed = ctrl.AddListener(func() {
		b.applyVisibility(ctrl.Visible())
	})

	parent.Call("appendChild", element)
	return b, nil
}

// Activate triggers the scroll as if the button were clicked.
func (b *Button) Activate() {
	b.ctrl.Activate()
}

// Controller exposes the underlying controller, mainly for tests and
// programmatic visibility checks.
func (b *Button) Controller() *scroll.Controller {
	return b.ctrl
}

// Unmount removes the element from the DOM, releases the click handler,
// and disposes the controller, cancelling any pending delayed scroll.
func (b *Button) Unmount() {
	if b.removed != nil {
		b.removed()
		b.removed = nil
	}
	b.element.Call("remove")
	b.element.Call("removeEventListener", "click", b.onClick)
	b.onClick.Release()
	b.ctrl.Dispose()
}

func (b *Button) applyVisibility(visible bool) {
	if visible {
		b.element.Call("removeAttribute", "hidden")
	} else {
		b.element.Call("setAttribute", "hidden", "")
	}
}
