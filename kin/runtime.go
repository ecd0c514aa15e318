package kin

import (
	"fmt"
	"sync"
)

// Config controls runtime limits.
type Config struct {
	RecursionLimit int
	MaxClasses     int
}

// Runtime hosts a class registry and dispatches member calls with a
// recursion cap. Calls are single-threaded; only the registry is guarded so
// embedding hosts can inspect it concurrently.
type Runtime struct {
	config  Config
	mu      sync.RWMutex
	names   []string
	classes map[string]*Class
	depth   int
}

// NewRuntime constructs a Runtime with sane defaults.
func NewRuntime(cfg Config) (*Runtime, error) {
	if cfg.RecursionLimit < 0 {
		return nil, fmt.Errorf("kin: recursion limit cannot be negative")
	}
	if cfg.MaxClasses < 0 {
		return nil, fmt.Errorf("kin: max classes cannot be negative")
	}
	if cfg.RecursionLimit == 0 {
		cfg.RecursionLimit = 64
	}
	if cfg.MaxClasses == 0 {
		cfg.MaxClasses = 1000
	}
	return &Runtime{
		config:  cfg,
		classes: make(map[string]*Class),
	}, nil
}

// MustNewRuntime constructs a Runtime or panics if the config is invalid.
func MustNewRuntime(cfg Config) *Runtime {
	rt, err := NewRuntime(cfg)
	if err != nil {
		panic(err)
	}
	return rt
}

// Register adds a class to the registry. Names are unique.
func (rt *Runtime) Register(cls *Class) error {
	if cls == nil {
		return fmt.Errorf("kin: cannot register a nil class")
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if _, ok := rt.classes[cls.Name]; ok {
		return fmt.Errorf("kin: class %s already registered", cls.Name)
	}
	if len(rt.classes) >= rt.config.MaxClasses {
		return fmt.Errorf("kin: class limit reached (%d)", rt.config.MaxClasses)
	}
	rt.classes[cls.Name] = cls
	rt.names = append(rt.names, cls.Name)
	return nil
}

// LookupClass finds a registered class by name.
func (rt *Runtime) LookupClass(name string) (*Class, bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	cls, ok := rt.classes[name]
	return cls, ok
}

// Classes returns registered classes in registration order.
func (rt *Runtime) Classes() []*Class {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	out := make([]*Class, 0, len(rt.names))
	for _, name := range rt.names {
		out = append(out, rt.classes[name])
	}
	return out
}

// Summary provides a human-readable description of the runtime state.
func (rt *Runtime) Summary() string {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return fmt.Sprintf("classes=%d recursion=%d", len(rt.classes), rt.config.RecursionLimit)
}
