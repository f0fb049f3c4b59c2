package factory

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownComponent = errors.New("unknown component")
	ErrBadParams        = errors.New("bad component params")
)

// ComponentFactory attaches one component to an entry. params is the raw text
// between the braces of "Name{...}", empty when none were given.
type ComponentFactory func(e *donburi.Entry, params string) error

// ComponentRegistry maps the component names used in level files to their
// factories.
var ComponentRegistry = map[string]ComponentFactory{
	"Solid":          tagFactory(tags.Solid),
	"Push":           tagFactory(tags.Push),
	"Pushable":       tagFactory(tags.Pushable),
	"JumpRecharge":   tagFactory(tags.JumpRecharge),
	"CheckCollision": tagFactory(tags.CheckCollision),

	"Collision": func(e *donburi.Entry, params string) error {
		if err := noParams(params); err != nil {
			return err
		}
		setComponent(e, components.Collision, components.NewCollision())
		return nil
	},
	"Velocity": vec2Factory(components.Velocity),
	"Gravity":  vec2Factory(components.Gravity),
	"Size":     vec2Factory(components.Size),

	"MaxVelocity": func(e *donburi.Entry, params string) error {
		var limits cfg.AxisLimits
		if err := decodeParams(params, &limits); err != nil {
			return err
		}
		setComponent(e, components.MaxVelocity, components.NewMaxVelocity(limits))
		return nil
	},
	"DecreaseVelocity": func(e *donburi.Entry, params string) error {
		var amount math.Vec2
		if err := decodeParams(params, &amount); err != nil {
			return err
		}
		setComponent(e, components.DecreaseVelocity, components.NewDecreaseVelocity(amount))
		return nil
	},
}

// ComponentNames lists the registered names in order.
func ComponentNames() []string {
	names := make([]string, 0, len(ComponentRegistry))
	for name := range ComponentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseComponent splits "Name" or "Name{params}" into its parts. The params
// keep their braces so they decode as a YAML flow mapping.
func ParseComponent(entry string) (name, params string, err error) {
	entry = strings.TrimSpace(entry)
	open := strings.IndexByte(entry, '{')
	if open < 0 {
		return entry, "", nil
	}
	if !strings.HasSuffix(entry, "}") {
		return "", "", fmt.Errorf("%w: %q: unterminated params", ErrBadParams, entry)
	}
	return strings.TrimSpace(entry[:open]), entry[open:], nil
}

// ApplyComponent parses one registry entry and attaches it to e.
func ApplyComponent(e *donburi.Entry, entry string) error {
	name, params, err := ParseComponent(entry)
	if err != nil {
		return err
	}
	factory, ok := ComponentRegistry[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	if err := factory(e, params); err != nil {
		return fmt.Errorf("component %s: %w", name, err)
	}
	return nil
}

// ApplyComponents attaches every entry, stopping at the first error.
func ApplyComponents(e *donburi.Entry, entries []string) error {
	for _, entry := range entries {
		if err := ApplyComponent(e, entry); err != nil {
			return err
		}
	}
	return nil
}

func tagFactory(tag donburi.IComponentType) ComponentFactory {
	return func(e *donburi.Entry, params string) error {
		if err := noParams(params); err != nil {
			return err
		}
		if !e.HasComponent(tag) {
			e.AddComponent(tag)
		}
		return nil
	}
}

func vec2Factory(c *donburi.ComponentType[math.Vec2]) ComponentFactory {
	return func(e *donburi.Entry, params string) error {
		var v math.Vec2
		if err := decodeParams(params, &v); err != nil {
			return err
		}
		setComponent(e, c, v)
		return nil
	}
}

func noParams(params string) error {
	if params != "" {
		return fmt.Errorf("%w: takes no params, got %s", ErrBadParams, params)
	}
	return nil
}

// decodeParams decodes params into out, rejecting unknown fields.
func decodeParams(params string, out any) error {
	if params == "" {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader([]byte(params)))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %v", ErrBadParams, params, err)
	}
	return nil
}

// setComponent adds c to e when missing, then stores v.
func setComponent[T any](e *donburi.Entry, c *donburi.ComponentType[T], v T) {
	if !e.HasComponent(c) {
		donburi.Add(e, c, &v)
		return
	}
	c.SetValue(e, v)
}
