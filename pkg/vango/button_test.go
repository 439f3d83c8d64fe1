package vango

import (
	"testing"
	"time"

	"github.com/go-drift/scrollto/pkg/scroll"
)

func TestHookPayloadDefaults(t *testing.T) {
	p := hookPayload(scroll.DefaultConfig())

	if p["behavior"] != "smooth" {
		t.Errorf("behavior = %v, want smooth", p["behavior"])
	}
	if p["threshold"] != 20.0 {
		t.Errorf("threshold = %v, want 20", p["threshold"])
	}
	if p["auto_hide"] != true || p["update_hash"] != true {
		t.Errorf("auto_hide = %v, update_hash = %v, want both true", p["auto_hide"], p["update_hash"])
	}
	if p["scroll_id"] != "" || p["show_id"] != "" {
		t.Errorf("ids should default empty, got scroll_id=%v show_id=%v", p["scroll_id"], p["show_id"])
	}
}

func TestHookPayloadCustom(t *testing.T) {
	cfg := scroll.DefaultConfig().
		WithTarget("section-3").
		WithBehavior(scroll.BehaviorInstant).
		WithDelay(250 * time.Millisecond)
	cfg.Offset = 64
	cfg.ShowID = "main"

	p := hookPayload(cfg)

	if p["scroll_id"] != "section-3" {
		t.Errorf("scroll_id = %v", p["scroll_id"])
	}
	if p["behavior"] != "instant" {
		t.Errorf("behavior = %v", p["behavior"])
	}
	if p["delay_ms"] != 250 {
		t.Errorf("delay_ms = %v", p["delay_ms"])
	}
	if p["offset"] != 64.0 {
		t.Errorf("offset = %v", p["offset"])
	}
	if p["show_id"] != "main" {
		t.Errorf("show_id = %v", p["show_id"])
	}
}

func TestButtonBuildsNode(t *testing.T) {
	cfg := scroll.DefaultConfig().WithCallbacks(func() {}, func() {})
	cfg.Class = "scroll-up"

	if node := Button(cfg); node == nil {
		t.Fatal("Button returned nil node")
	}
}
