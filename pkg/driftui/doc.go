// Package driftui embeds the scroll-to-target button in a Drift widget
// tree.
//
// Drift has no document ids, so targets and visibility sources come from
// an Anchors registry the application fills with scroll offsets. The
// button itself is a stateful widget wrapping a scroll.Controller around
// the scrollable's ScrollController.
package driftui
