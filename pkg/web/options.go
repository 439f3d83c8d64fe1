package web

import "github.com/go-drift/scrollto/pkg/scroll"

// DefaultIcon is the arrow glyph rendered when Options.InnerHTML is empty.
const DefaultIcon = `<svg xmlns="http://www.w3.org/2000/svg" fill="none"` +
	` viewBox="0 0 24 24" stroke="currentColor"` +
	` style="width: 16px; height: 16px;">` +
	`<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2"` +
	` d="M5 10l7-7m0 0l7 7m-7-7v18"/></svg>`

// Options configures a mounted button.
type Options struct {
	// Config drives the button's behavior. Nil means scroll.DefaultConfig,
	// so Options{} mounts a working scroll-to-top button.
	Config *scroll.Config
	// InnerHTML replaces the default arrow icon. Rendered verbatim.
	InnerHTML string
	// Parent is the id of the element to append the button to.
	// Empty means document.body.
	Parent string
}

// resolve fills defaults the same way regardless of build target.
func (o Options) resolve() (scroll.Config, string) {
	cfg := scroll.DefaultConfig()
	if o.Config != nil {
		cfg = *o.Config
	}
	content := o.InnerHTML
	if content == "" {
		content = DefaultIcon
	}
	return cfg, content
}
