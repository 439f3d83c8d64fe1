// Package scroll implements the host-agnostic core of a scroll-to-target
// button: configuration resolution, visibility tracking, target computation,
// and the activation flow (optional delay, one scroll command, optional URL
// fragment update).
//
// The package never touches a real document, window, or viewport. Everything
// environment-specific is reached through the [Host] capability interface,
// so the same logic drives every binding and can be tested deterministically
// with the fakes in [github.com/go-drift/scrollto/pkg/scroll/scrolltest].
//
// # Core Types
//
//   - [Config]: the per-button configuration value object. Start from
//     [DefaultConfig] and override fields, or decode one from YAML with
//     [DecodeConfig].
//
//   - [Host]: the capability set a binding supplies (read a scroll offset,
//     look up a named element, issue a scroll command, update the URL
//     fragment, subscribe to scroll events).
//
//   - [Controller]: the live state of one mounted button. It owns the
//     visibility flag, the scroll subscription, and any pending delayed
//     activations, and releases all of them on [Controller.Dispose].
//
// # Basic Usage
//
//	cfg := scroll.DefaultConfig()
//	cfg.ScrollID = "top"
//	cfg.Offset = 64
//
//	ctrl := scroll.NewController(cfg, host)
//	defer ctrl.Dispose()
//
//	ctrl.AddListener(func() {
//	    rerender(ctrl.Visible())
//	})
//
//	// On click/tap:
//	ctrl.Activate()
//
// Smooth scrolling is always delegated to the host: the controller issues a
// single [Target] with the configured [Behavior] and never animates.
package scroll
