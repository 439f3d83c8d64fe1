package scroll

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Behavior selects how a host executes a scroll command.
type Behavior int

const (
	// BehaviorSmooth asks the host to animate the scroll.
	// This is the default (the zero value).
	BehaviorSmooth Behavior = iota
	// BehaviorInstant jumps to the target with no animation.
	BehaviorInstant
	// BehaviorAuto defers to the host's default. Hosts without a native
	// "auto" treat it like BehaviorInstant.
	BehaviorAuto
)

func (b Behavior) String() string {
	switch b {
	case BehaviorInstant:
		return "instant"
	case BehaviorAuto:
		return "auto"
	default:
		return "smooth"
	}
}

// ParseBehavior converts the string form back into a Behavior.
func ParseBehavior(s string) (Behavior, error) {
	switch s {
	case "smooth", "":
		return BehaviorSmooth, nil
	case "instant":
		return BehaviorInstant, nil
	case "auto":
		return BehaviorAuto, nil
	default:
		return BehaviorSmooth, fmt.Errorf("unknown scroll behavior %q", s)
	}
}

// MarshalYAML encodes the behavior as its string form.
func (b Behavior) MarshalYAML() (any, error) {
	return b.String(), nil
}

// UnmarshalYAML decodes a behavior from its string form.
func (b *Behavior) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseBehavior(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
