// Package vango renders the scroll-to-target button as a Vango VNode.
//
// Scrolling itself runs client-side through the ScrollToTarget hook, so
// the server never round-trips on scroll events. Begin and end callbacks,
// when configured, are delivered through the element's click handler.
package vango
