package scroll

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultStyle is the built-in style text for the button: a fixed round
// button in the bottom-right corner. It is opaque to this package; bindings
// without a style system ignore it.
const DefaultStyle = "position: fixed; bottom: 1rem; right: 1rem; " +
	"background-color: #3b82f6; color: #ffffff; padding: 0.75rem; " +
	"border-radius: 50%; cursor: pointer; " +
	"transition: background-color 300ms ease-in-out;"

// DefaultThreshold is the scroll offset past which an auto-hiding button
// becomes visible.
const DefaultThreshold = 20.0

// Config describes one scroll-to-target button.
//
// Config is an immutable value object: controllers copy it on creation and
// never write it back. Build one from [DefaultConfig] (struct literals start
// with AutoHide and UpdateHash false, which is not the default behavior) or
// decode one from YAML with [DecodeConfig].
type Config struct {
	// Style is raw style text for the button root. Opaque to the core.
	Style string
	// Class is raw class text for the button root. Opaque to the core.
	Class string
	// Behavior selects smooth, instant, or host-default scrolling.
	Behavior Behavior
	// Top and Left are the literal scroll target, used when ScrollID is
	// empty or does not resolve.
	Top  float64
	Left float64
	// Offset is subtracted from the resolved target's top, typically to
	// keep the target clear of a fixed header.
	Offset float64
	// OffsetLeft is subtracted from the resolved target's left.
	OffsetLeft float64
	// Delay postpones the scroll command after activation. The wait is
	// scheduled, never blocking, and is cancelled if the controller is
	// disposed first.
	Delay time.Duration
	// AutoHide shows the button only past Threshold. When false the button
	// is permanently visible and no scroll listener is registered.
	AutoHide bool
	// Threshold is the scroll offset past which an auto-hiding button
	// becomes visible.
	Threshold float64
	// UpdateHash sets the host's URL fragment to ScrollID after scrolling.
	// Ignored when ScrollID is empty or the host has no URL.
	UpdateHash bool
	// ShowID names the element whose scroll offset drives visibility.
	// Empty means the page. A name that does not resolve silently falls
	// back to the page.
	ShowID string
	// ScrollID names the element to scroll to. Empty, or a name that does
	// not resolve, falls back to the literal (Top, Left).
	ScrollID string
	// OnBegin is called just before the scroll command is issued, after
	// any delay. Optional.
	OnBegin func()
	// OnEnd is called after the scroll command (and fragment update, if
	// any) has been issued. Optional.
	OnEnd func()
}

// DefaultConfig returns the baseline configuration: smooth scrolling to the
// top-left of the page, auto-hiding past DefaultThreshold, updating the URL
// fragment when a scroll target is named.
func DefaultConfig() Config {
	return Config{
		Style:      DefaultStyle,
		Behavior:   BehaviorSmooth,
		AutoHide:   true,
		Threshold:  DefaultThreshold,
		UpdateHash: true,
	}
}

// WithTarget returns a copy of the config scrolling to a named element.
func (c Config) WithTarget(scrollID string) Config {
	c.ScrollID = scrollID
	return c
}

// WithPosition returns a copy of the config scrolling to literal
// coordinates instead of a named element.
func (c Config) WithPosition(top, left float64) Config {
	c.Top = top
	c.Left = left
	c.ScrollID = ""
	return c
}

// WithBehavior returns a copy of the config with the given behavior.
func (c Config) WithBehavior(behavior Behavior) Config {
	c.Behavior = behavior
	return c
}

// WithDelay returns a copy of the config with the given activation delay.
func (c Config) WithDelay(delay time.Duration) Config {
	c.Delay = delay
	return c
}

// WithCallbacks returns a copy of the config with begin/end callbacks.
func (c Config) WithCallbacks(onBegin, onEnd func()) Config {
	c.OnBegin = onBegin
	c.OnEnd = onEnd
	return c
}

// rawConfig is the YAML shape of a Config. Pointer fields distinguish
// "absent" from zero so absent fields keep their defaults; delay is in
// milliseconds on the wire.
type rawConfig struct {
	Style      *string   `yaml:"style"`
	Class      *string   `yaml:"class"`
	Behavior   *Behavior `yaml:"behavior"`
	Top        *float64  `yaml:"top"`
	Left       *float64  `yaml:"left"`
	Offset     *float64  `yaml:"offset"`
	OffsetLeft *float64  `yaml:"offset_left"`
	Delay      *int      `yaml:"delay"`
	AutoHide   *bool     `yaml:"auto_hide"`
	Threshold  *float64  `yaml:"threshold"`
	UpdateHash *bool     `yaml:"update_hash"`
	ShowID     *string   `yaml:"show_id"`
	ScrollID   *string   `yaml:"scroll_id"`
}

// DecodeConfig parses a Config from YAML. Absent fields keep the
// DefaultConfig values, so a button is fully usable from an empty document.
//
//	scroll_id: features
//	behavior: instant
//	offset: 64
//	delay: 250
//	update_hash: false
func DecodeConfig(data []byte) (Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse scroll config: %w", err)
	}

	cfg := DefaultConfig()
	if raw.Style != nil {
		cfg.Style = *raw.Style
	}
	if raw.Class != nil {
		cfg.Class = *raw.Class
	}
	if raw.Behavior != nil {
		cfg.Behavior = *raw.Behavior
	}
	if raw.Top != nil {
		cfg.Top = *raw.Top
	}
	if raw.Left != nil {
		cfg.Left = *raw.Left
	}
	if raw.Offset != nil {
		cfg.Offset = *raw.Offset
	}
	if raw.OffsetLeft != nil {
		cfg.OffsetLeft = *raw.OffsetLeft
	}
	if raw.Delay != nil {
		cfg.Delay = time.Duration(*raw.Delay) * time.Millisecond
	}
	if raw.AutoHide != nil {
		cfg.AutoHide = *raw.AutoHide
	}
	if raw.Threshold != nil {
		cfg.Threshold = *raw.Threshold
	}
	if raw.UpdateHash != nil {
		cfg.UpdateHash = *raw.UpdateHash
	}
	if raw.ShowID != nil {
		cfg.ShowID = *raw.ShowID
	}
	if raw.ScrollID != nil {
		cfg.ScrollID = *raw.ScrollID
	}
	return cfg, nil
}
