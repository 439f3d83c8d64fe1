package scroll_test

import (
	"testing"
	"time"

	"github.com/go-drift/scrollto/pkg/scroll"
	"github.com/go-drift/scrollto/pkg/scroll/scrolltest"
)

func useManualScheduler(t *testing.T) *scrolltest.ManualScheduler {
	t.Helper()
	sched := scrolltest.NewManualScheduler()
	prev := scroll.SetScheduler(sched)
	t.Cleanup(func() { scroll.SetScheduler(prev) })
	return sched
}

func TestVisibilityFollowsThreshold(t *testing.T) {
	host := scrolltest.NewFakeHost()
	ctrl := scroll.NewController(scroll.DefaultConfig(), host)
	defer ctrl.Dispose()

	// threshold=20, offsets [0, 15, 25, 10] -> [false, false, true, false]
	offsets := []float64{0, 15, 25, 10}
	want := []bool{false, false, true, false}
	for i, offset := range offsets {
		host.EmitScroll("", offset)
		if got := ctrl.Visible(); got != want[i] {
			t.Errorf("offset %v: Visible() = %v, want %v", offset, got, want[i])
		}
	}
}

func TestVisibilityBoundary(t *testing.T) {
	host := scrolltest.NewFakeHost()
	ctrl := scroll.NewController(scroll.DefaultConfig(), host)
	defer ctrl.Dispose()

	// Exactly at the threshold is still hidden; strictly past it is shown.
	host.EmitScroll("", 20)
	if ctrl.Visible() {
		t.Error("offset == threshold should be hidden")
	}
	host.EmitScroll("", 20.5)
	if !ctrl.Visible() {
		t.Error("offset > threshold should be visible")
	}
}

func TestInitialVisibilityFromCurrentOffset(t *testing.T) {
	host := scrolltest.NewFakeHost()
	host.EmitScroll("", 500)

	ctrl := scroll.NewController(scroll.DefaultConfig(), host)
	defer ctrl.Dispose()
	if !ctrl.Visible() {
		t.Error("a controller created mid-page should start visible")
	}
}

func TestAutoHideDisabled(t *testing.T) {
	host := scrolltest.NewFakeHost()
	cfg := scroll.DefaultConfig()
	cfg.AutoHide = false

	ctrl := scroll.NewController(cfg, host)
	defer ctrl.Dispose()

	if !ctrl.Visible() {
		t.Error("AutoHide=false should be visible at offset 0")
	}
	if host.ListenerCount() != 0 {
		t.Error("AutoHide=false should not register a scroll listener")
	}
	host.EmitScroll("", 0)
	if !ctrl.Visible() {
		t.Error("AutoHide=false should stay visible regardless of offset")
	}
}

func TestShowIDSource(t *testing.T) {
	host := scrolltest.NewFakeHost()
	host.SetElement("panel", scroll.Point{Top: 0})

	cfg := scroll.DefaultConfig()
	cfg.ShowID = "panel"
	ctrl := scroll.NewController(cfg, host)
	defer ctrl.Dispose()

	// Page scrolling does not affect a panel-driven button.
	host.EmitScroll("", 100)
	if ctrl.Visible() {
		t.Error("page scroll should not affect a ShowID-driven button")
	}
	host.EmitScroll("panel", 100)
	if !ctrl.Visible() {
		t.Error("panel scroll past the threshold should show the button")
	}
	host.EmitScroll("panel", 5)
	if ctrl.Visible() {
		t.Error("panel scroll back under the threshold should hide the button")
	}
}

func TestShowIDFallsBackToPage(t *testing.T) {
	host := scrolltest.NewFakeHost()
	cfg := scroll.DefaultConfig()
	cfg.ShowID = "missing"
	ctrl := scroll.NewController(cfg, host)
	defer ctrl.Dispose()

	host.EmitScroll("", 100)
	if !ctrl.Visible() {
		t.Error("an unresolvable ShowID should fall back to page scrolling")
	}
}

func TestActivateTargetsElement(t *testing.T) {
	host := scrolltest.NewFakeHost()
	host.SetElement("section1", scroll.Point{Top: 840, Left: 12})

	cfg := scroll.DefaultConfig()
	cfg.ScrollID = "section1"
	cfg.Offset = 64
	ctrl := scroll.NewController(cfg, host)
	defer ctrl.Dispose()

	ctrl.Activate()

	got, ok := host.LastCommand()
	if !ok {
		t.Fatal("expected a scroll command")
	}
	want := scroll.Target{Top: 840 - 64, Left: 12, Behavior: scroll.BehaviorSmooth}
	if got != want {
		t.Errorf("command = %+v, want %+v", got, want)
	}
}

func TestActivateTargetsLiteralCoordinates(t *testing.T) {
	host := scrolltest.NewFakeHost()
	cfg := scroll.DefaultConfig()
	cfg.Top = 300
	cfg.Left = 40
	cfg.Behavior = scroll.BehaviorInstant
	ctrl := scroll.NewController(cfg, host)
	defer ctrl.Dispose()

	ctrl.Activate()

	got, ok := host.LastCommand()
	if !ok {
		t.Fatal("expected a scroll command")
	}
	want := scroll.Target{Top: 300, Left: 40, Behavior: scroll.BehaviorInstant}
	if got != want {
		t.Errorf("command = %+v, want %+v", got, want)
	}
}

func TestActivateUnresolvedTargetFallsBack(t *testing.T) {
	host := scrolltest.NewFakeHost()
	cfg := scroll.DefaultConfig()
	cfg.ScrollID = "nowhere"
	cfg.Top = 120
	cfg.UpdateHash = false
	ctrl := scroll.NewController(cfg, host)
	defer ctrl.Dispose()

	ctrl.Activate()

	got, ok := host.LastCommand()
	if !ok {
		t.Fatal("expected a scroll command despite the unresolved id")
	}
	if got.Top != 120 || got.Left != 0 {
		t.Errorf("command = %+v, want literal (120, 0)", got)
	}
}

func TestOffsetAppliesPerAxis(t *testing.T) {
	host := scrolltest.NewFakeHost()
	host.SetElement("wide", scroll.Point{Top: 500, Left: 200})

	cfg := scroll.DefaultConfig()
	cfg.ScrollID = "wide"
	cfg.Offset = 50
	cfg.OffsetLeft = 20
	ctrl := scroll.NewController(cfg, host)
	defer ctrl.Dispose()

	ctrl.Activate()

	got, _ := host.LastCommand()
	if got.Top != 450 || got.Left != 180 {
		t.Errorf("command = %+v, want (450, 180)", got)
	}
}

func TestActivateUpdatesFragment(t *testing.T) {
	host := scrolltest.NewFakeHost()
	host.SetElement("bottom", scroll.Point{Top: 2000})

	cfg := scroll.DefaultConfig()
	cfg.ScrollID = "bottom"
	ctrl := scroll.NewController(cfg, host)
	defer ctrl.Dispose()

	ctrl.Activate()

	if got := host.Fragment(); got != "bottom" {
		t.Errorf("fragment = %q, want %q", got, "bottom")
	}
}

func TestFragmentSkippedWithoutScrollID(t *testing.T) {
	host := scrolltest.NewFakeHost()
	ctrl := scroll.NewController(scroll.DefaultConfig(), host)
	defer ctrl.Dispose()

	ctrl.Activate()

	if writes := host.Fragments(); len(writes) != 0 {
		t.Errorf("expected no fragment writes, got %v", writes)
	}
}

func TestFragmentSkippedWhenDisabled(t *testing.T) {
	host := scrolltest.NewFakeHost()
	host.SetElement("bottom", scroll.Point{Top: 2000})

	cfg := scroll.DefaultConfig()
	cfg.ScrollID = "bottom"
	cfg.UpdateHash = false
	ctrl := scroll.NewController(cfg, host)
	defer ctrl.Dispose()

	ctrl.Activate()

	if writes := host.Fragments(); len(writes) != 0 {
		t.Errorf("expected no fragment writes, got %v", writes)
	}
}

func TestDelayedActivation(t *testing.T) {
	sched := useManualScheduler(t)
	host := scrolltest.NewFakeHost()

	cfg := scroll.DefaultConfig()
	cfg.Delay = 250 * time.Millisecond
	ctrl := scroll.NewController(cfg, host)
	defer ctrl.Dispose()

	ctrl.Activate()
	if len(host.Commands()) != 0 {
		t.Fatal("the command must not be issued before the delay elapses")
	}

	sched.Advance(200 * time.Millisecond)
	if len(host.Commands()) != 0 {
		t.Fatal("the command must not be issued at 200ms of a 250ms delay")
	}

	sched.Advance(50 * time.Millisecond)
	if len(host.Commands()) != 1 {
		t.Fatalf("expected 1 command once the delay elapsed, got %d", len(host.Commands()))
	}
}

func TestDisposeCancelsPendingActivation(t *testing.T) {
	sched := useManualScheduler(t)
	host := scrolltest.NewFakeHost()

	cfg := scroll.DefaultConfig()
	cfg.Delay = 250 * time.Millisecond
	ctrl := scroll.NewController(cfg, host)

	ctrl.Activate()
	ctrl.Dispose()
	sched.Advance(time.Second)

	if len(host.Commands()) != 0 {
		t.Error("a pending activation must never fire after Dispose")
	}
	if sched.Pending() != 0 {
		t.Errorf("Dispose should cancel scheduled tasks, %d left", sched.Pending())
	}
}

func TestRepeatActivationsEachFire(t *testing.T) {
	sched := useManualScheduler(t)
	host := scrolltest.NewFakeHost()

	cfg := scroll.DefaultConfig()
	cfg.Delay = 100 * time.Millisecond
	ctrl := scroll.NewController(cfg, host)
	defer ctrl.Dispose()

	ctrl.Activate()
	sched.Advance(50 * time.Millisecond)
	ctrl.Activate()
	sched.Advance(50 * time.Millisecond)
	if len(host.Commands()) != 1 {
		t.Fatalf("expected the first activation only, got %d commands", len(host.Commands()))
	}
	sched.Advance(50 * time.Millisecond)
	if len(host.Commands()) != 2 {
		t.Fatalf("expected both activations, got %d commands", len(host.Commands()))
	}
}

func TestDisposeRemovesListener(t *testing.T) {
	host := scrolltest.NewFakeHost()
	ctrl := scroll.NewController(scroll.DefaultConfig(), host)

	if host.ListenerCount() != 1 {
		t.Fatalf("expected 1 listener while mounted, got %d", host.ListenerCount())
	}
	ctrl.Dispose()
	if host.ListenerCount() != 0 {
		t.Errorf("expected 0 listeners after Dispose, got %d", host.ListenerCount())
	}
	// Dispose is idempotent.
	ctrl.Dispose()
}

func TestActivateAfterDisposeIsNoOp(t *testing.T) {
	host := scrolltest.NewFakeHost()
	ctrl := scroll.NewController(scroll.DefaultConfig(), host)
	ctrl.Dispose()

	ctrl.Activate()
	if len(host.Commands()) != 0 {
		t.Error("a disposed controller must ignore Activate")
	}
}

func TestListenersNotifiedOnFlipsOnly(t *testing.T) {
	host := scrolltest.NewFakeHost()
	ctrl := scroll.NewController(scroll.DefaultConfig(), host)
	defer ctrl.Dispose()

	var calls int
	remove := ctrl.AddListener(func() { calls++ })

	host.EmitScroll("", 5)   // hidden -> hidden
	host.EmitScroll("", 25)  // hidden -> visible
	host.EmitScroll("", 30)  // visible -> visible
	host.EmitScroll("", 10)  // visible -> hidden
	if calls != 2 {
		t.Errorf("expected 2 notifications (one per flip), got %d", calls)
	}

	remove()
	host.EmitScroll("", 40)
	if calls != 2 {
		t.Errorf("a removed listener must not be notified, got %d calls", calls)
	}
}

func TestCallbacksAroundCommand(t *testing.T) {
	sched := useManualScheduler(t)
	host := scrolltest.NewFakeHost()

	var order []string
	cfg := scroll.DefaultConfig()
	cfg.Delay = 100 * time.Millisecond
	cfg.OnBegin = func() {
		if len(host.Commands()) != 0 {
			t.Error("OnBegin must run before the scroll command")
		}
		order = append(order, "begin")
	}
	cfg.OnEnd = func() {
		if len(host.Commands()) != 1 {
			t.Error("OnEnd must run after the scroll command")
		}
		order = append(order, "end")
	}
	ctrl := scroll.NewController(cfg, host)
	defer ctrl.Dispose()

	ctrl.Activate()
	if len(order) != 0 {
		t.Fatal("callbacks must wait for the delay")
	}
	sched.Advance(100 * time.Millisecond)
	if len(order) != 2 || order[0] != "begin" || order[1] != "end" {
		t.Errorf("callback order = %v, want [begin end]", order)
	}
}

func TestCallbackPanicIsIsolated(t *testing.T) {
	host := scrolltest.NewFakeHost()
	cfg := scroll.DefaultConfig()
	cfg.OnBegin = func() { panic("user callback") }
	ctrl := scroll.NewController(cfg, host)
	defer ctrl.Dispose()

	// Must not propagate into the caller (the host's event loop).
	ctrl.Activate()

	// The controller stays usable.
	cfg2 := scroll.DefaultConfig()
	ctrl2 := scroll.NewController(cfg2, host)
	defer ctrl2.Dispose()
	ctrl2.Activate()
	if len(host.Commands()) == 0 {
		t.Error("a panicking callback must not break later activations")
	}
}
