// Package web binds the scroll core to a real browser document via
// syscall/js. It is functional only under GOOS=js GOARCH=wasm; the non-wasm
// build keeps identical signatures so packages importing it still compile
// natively (Mount then fails with an error).
//
//	cfg := scroll.DefaultConfig().WithTarget("top")
//	btn, err := web.Mount(web.Options{Config: &cfg})
//	if err != nil {
//	    // not running in a browser
//	}
//	defer btn.Unmount()
//
// The button is a positioned div appended to document.body (or a named
// parent), showing the default arrow icon unless Options.InnerHTML overrides
// it. Visibility toggles the element's hidden attribute; activation goes
// through the shared controller, so delays, offsets, and hash updates behave
// exactly as in every other binding.
package web
