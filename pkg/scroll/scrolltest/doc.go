// Package scrolltest provides deterministic test doubles for the scroll
// core: a FakeHost standing in for a real document/viewport and a
// ManualScheduler that fires delayed activations only when the test advances
// its clock. No real host environment is required.
//
//	host := scrolltest.NewFakeHost()
//	host.SetElement("bottom", scroll.Point{Top: 1200})
//
//	sched := scrolltest.NewManualScheduler()
//	prev := scroll.SetScheduler(sched)
//	defer scroll.SetScheduler(prev)
//
//	ctrl := scroll.NewController(cfg, host)
//	ctrl.Activate()
//	sched.Advance(250 * time.Millisecond)
//
//	got := host.Commands()
package scrolltest
