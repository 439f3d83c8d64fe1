// Package ebitenui hosts the scroll-to-target button inside an Ebitengine
// game loop.
//
// A Region stands in for the browser page: it owns a scroll offset, named
// anchors, and listeners, and satisfies scroll.Host. Button polls input in
// Update and culls itself in Draw while hidden.
package ebitenui
