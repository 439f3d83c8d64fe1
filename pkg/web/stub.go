//go:build !js

package web

import (
	"errors"

	"github.com/go-drift/scrollto/pkg/scroll"
)

// ErrUnsupported is returned by Mount on platforms without a DOM.
var ErrUnsupported = errors.New("web: scroll button requires a js/wasm build")

// Button is only functional under js/wasm. The stub keeps the package
// compiling on native targets so callers can share code across builds.
type Button struct {
	ctrl *scroll.Controller
}

// Host returns nil outside js/wasm builds.
func Host() scroll.Host {
	return nil
}

// Mount always fails outside js/wasm builds.
func Mount(opts Options) (*Button, error) {
	return nil, ErrUnsupported
}

// Activate is a no-op on the stub.
func (b *Button) Activate() {}

// Controller returns nil on the stub.
func (b *Button) Controller() *scroll.Controller {
	return nil
}

// Unmount is a no-op on the stub.
func (b *Button) Unmount() {}
