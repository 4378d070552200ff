// File: builder/builder.go
// Package builder constructs a configured facade.Manager from a declarative
// YAML document.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Handlers cannot be expressed in data, so the builder keeps a registry of
// named api.Listener values supplied by the host; the YAML wiring refers to
// them by name. Event codes may be written either as the symbolic names of
// the predefined catalogue ("key-press", "user0", ...) or as raw integers.

package builder

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/momentics/evq/api"
	"github.com/momentics/evq/facade"
)

// Config is the YAML-visible wiring document.
type Config struct {
	QueueDepth  int              `yaml:"queue_depth,omitempty"`
	ListenerCap int              `yaml:"listener_cap,omitempty"`
	Safety      string           `yaml:"safety,omitempty"` // "interrupt-safe" (default) or "not-interrupt-safe"
	Listeners   []ListenerConfig `yaml:"listeners"`
	Default     string           `yaml:"default,omitempty"` // handler name for the fallback listener
}

// ListenerConfig wires one registration.
type ListenerConfig struct {
	Event    string `yaml:"event"`   // symbolic code name or integer literal
	Handler  string `yaml:"handler"` // name registered on the Builder
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Validate checks the document for structural problems: unknown safety
// modes, negative capacities, unresolvable event codes, empty handler names.
func (c *Config) Validate() error {
	if c.QueueDepth < 0 {
		return fmt.Errorf("queue_depth must be non-negative, got %d", c.QueueDepth)
	}
	if c.ListenerCap < 0 {
		return fmt.Errorf("listener_cap must be non-negative, got %d", c.ListenerCap)
	}
	switch c.Safety {
	case "", "interrupt-safe", "not-interrupt-safe":
	default:
		return fmt.Errorf("unknown safety mode %q", c.Safety)
	}
	for i, lc := range c.Listeners {
		if lc.Handler == "" {
			return fmt.Errorf("listener %d: handler name is required", i)
		}
		if _, err := ResolveEventCode(lc.Event); err != nil {
			return fmt.Errorf("listener %d: %w", i, err)
		}
	}
	return nil
}

// Load parses and validates a wiring document.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read wiring document: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates a wiring document from bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse wiring document: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wiring document: %w", err)
	}
	return &cfg, nil
}

// Builder binds handler names to listeners and assembles managers.
type Builder struct {
	handlers map[string]api.Listener
}

// New creates an empty builder.
func New() *Builder {
	return &Builder{handlers: make(map[string]api.Listener)}
}

// Register binds name to l for use in wiring documents. Re-registering a
// name replaces the previous binding.
func (b *Builder) Register(name string, l api.Listener) error {
	if name == "" || l == nil {
		return api.ErrInvalidArgument
	}
	b.handlers[name] = l
	return nil
}

// Build assembles a Manager per cfg and registers every wired listener.
func (b *Builder) Build(cfg *Config) (*facade.Manager, error) {
	if cfg == nil {
		return nil, api.ErrInvalidArgument
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mc := facade.DefaultConfig()
	if cfg.QueueDepth > 0 {
		mc.QueueDepth = cfg.QueueDepth
	}
	if cfg.ListenerCap > 0 {
		mc.ListenerCap = cfg.ListenerCap
	}
	if cfg.Safety == "not-interrupt-safe" {
		mc.Safety = facade.NotInterruptSafe
	}

	mgr, err := facade.New(mc)
	if err != nil {
		return nil, err
	}

	for i, lc := range cfg.Listeners {
		l, ok := b.handlers[lc.Handler]
		if !ok {
			return nil, fmt.Errorf("listener %d: unknown handler %q", i, lc.Handler)
		}
		code, err := ResolveEventCode(lc.Event)
		if err != nil {
			return nil, fmt.Errorf("listener %d: %w", i, err)
		}
		if !mgr.AddListener(code, l) {
			return nil, fmt.Errorf("listener %d: table full (cap %d)", i, mc.ListenerCap)
		}
		if lc.Disabled {
			mgr.EnableListener(code, l, false)
		}
	}

	if cfg.Default != "" {
		l, ok := b.handlers[cfg.Default]
		if !ok {
			return nil, fmt.Errorf("default listener: unknown handler %q", cfg.Default)
		}
		mgr.SetDefaultListener(l)
	}

	return mgr, nil
}

// eventCodeNames maps the symbolic names accepted in wiring documents to
// the predefined code catalogue.
var eventCodeNames = map[string]int{
	"key-press":   api.EventKeyPress,
	"key-release": api.EventKeyRelease,
	"char":        api.EventChar,
	"time":        api.EventTime,
	"timer0":      api.EventTimer0,
	"timer1":      api.EventTimer1,
	"timer2":      api.EventTimer2,
	"timer3":      api.EventTimer3,
	"analog0":     api.EventAnalog0,
	"analog1":     api.EventAnalog1,
	"analog2":     api.EventAnalog2,
	"analog3":     api.EventAnalog3,
	"analog4":     api.EventAnalog4,
	"analog5":     api.EventAnalog5,
	"menu0":       api.EventMenu0,
	"menu1":       api.EventMenu1,
	"menu2":       api.EventMenu2,
	"menu3":       api.EventMenu3,
	"menu4":       api.EventMenu4,
	"menu5":       api.EventMenu5,
	"menu6":       api.EventMenu6,
	"menu7":       api.EventMenu7,
	"menu8":       api.EventMenu8,
	"menu9":       api.EventMenu9,
	"serial":      api.EventSerial,
	"paint":       api.EventPaint,
	"user0":       api.EventUser0,
	"user1":       api.EventUser1,
	"user2":       api.EventUser2,
	"user3":       api.EventUser3,
	"user4":       api.EventUser4,
	"user5":       api.EventUser5,
	"user6":       api.EventUser6,
	"user7":       api.EventUser7,
	"user8":       api.EventUser8,
	"user9":       api.EventUser9,
}

// ResolveEventCode maps a symbolic name or integer literal to an event
// code. The EventNone sentinel is not addressable from wiring documents.
func ResolveEventCode(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("event code is required")
	}
	if code, ok := eventCodeNames[s]; ok {
		return code, nil
	}
	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown event code %q", s)
	}
	if code == api.EventNone {
		return 0, fmt.Errorf("event code %d is the reserved no-event sentinel", code)
	}
	return code, nil
}
