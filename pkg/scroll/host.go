package scroll

// Point is a document-relative position.
type Point struct {
	Top  float64
	Left float64
}

// Target is one scroll command: absolute coordinates plus the animation
// behavior the host should use.
type Target struct {
	Top      float64
	Left     float64
	Behavior Behavior
}

// Host is the capability set a binding supplies to the core. Implementations
// wrap a real environment (a browser window, a drift ScrollController, an
// ebitenui Region) or a test fake.
//
// Throughout, an empty id means the page/viewport itself, and an id that
// does not resolve is never an error: methods report ok=false or fall back
// to the page.
type Host interface {
	// ScrollOffset returns the current vertical scroll offset of the page
	// (id == "") or of the named element. ok is false when the id does not
	// resolve.
	ScrollOffset(id string) (offset float64, ok bool)

	// ElementPosition returns the document position of the named element.
	// ok is false when the id does not resolve.
	ElementPosition(id string) (pos Point, ok bool)

	// ScrollTo issues a single scroll command. Smooth animation, if any, is
	// owned entirely by the host.
	ScrollTo(target Target)

	// SetFragment updates the URL fragment to id without triggering a
	// navigation. Hosts without a URL no-op.
	SetFragment(id string)

	// Listen subscribes to scroll events of the page (id == "") or of the
	// named element, falling back to the page when the id does not resolve.
	// fn receives the current offset of the listened source. The returned
	// cancel is idempotent and must release the underlying listener.
	Listen(id string, fn func(offset float64)) (cancel func())
}

// ResolveTarget computes the scroll command for cfg against host: the named
// element's position when ScrollID resolves, the literal (Top, Left)
// otherwise, with the configured offsets subtracted.
func ResolveTarget(cfg Config, host Host) Target {
	base := Point{Top: cfg.Top, Left: cfg.Left}
	if cfg.ScrollID != "" {
		if pos, ok := host.ElementPosition(cfg.ScrollID); ok {
			base = pos
		}
	}
	return Target{
		Top:      base.Top - cfg.Offset,
		Left:     base.Left - cfg.OffsetLeft,
		Behavior: cfg.Behavior,
	}
}
