//go:build js && wasm

package web

import (
	"syscall/js"

	"github.com/go-drift/scrollto/pkg/scroll"
)

// Host returns a scroll.Host backed by the browser window and document.
func Host() scroll.Host {
	return jsHost{}
}

type jsHost struct{}

func window() js.Value {
	return js.Global().Get("window")
}

func document() js.Value {
	return js.Global().Get("document")
}

func elementByID(id string) (js.Value, bool) {
	if id == "" {
		return js.Value{}, false
	}
	el := document().Call("getElementById", id)
	if !el.Truthy() {
		return js.Value{}, false
	}
	return el, true
}

func (jsHost) ScrollOffset(id string) (float64, bool) {
	if id == "" {
		return window().Get("scrollY").Float(), true
	}
	el, ok := elementByID(id)
	if !ok {
		return 0, false
	}
	return el.Get("scrollTop").Float(), true
}

func (jsHost) ElementPosition(id string) (scroll.Point, bool) {
	el, ok := elementByID(id)
	if !ok {
		return scroll.Point{}, false
	}
	// getBoundingClientRect is viewport-relative; add the current scroll
	// position to get the document position.
	rect := el.Call("getBoundingClientRect")
	return scroll.Point{
		Top:  rect.Get("top").Float() + window().Get("scrollY").Float(),
		Left: rect.Get("left").Float() + window().Get("scrollX").Float(),
	}, true
}

func (jsHost) ScrollTo(target scroll.Target) {
	options := js.Global().Get("Object").New()
	options.Set("top", target.Top)
	options.Set("left", target.Left)
	options.Set("behavior", target.Behavior.String())
	window().Call("scrollTo", options)
}

func (jsHost) SetFragment(id string) {
	// pushState updates the fragment without a navigation or a scroll jump.
	window().Get("history").Call("pushState", js.Null(), "", "#"+id)
}

func (jsHost) Listen(id string, fn func(offset float64)) func() {
	source := window()
	read := func() float64 { return window().Get("scrollY").Float() }
	if el, ok := elementByID(id); ok {
		source = el
		read = func() float64 { return el.Get("scrollTop").Float() }
	}

	callback := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(read())
		return nil
	})
	source.Call("addEventListener", "scroll", callback)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		source.Call("removeEventListener", "scroll", callback)
		callback.Release()
	}
}
