// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// DriverFactory creates a new Driver with the given options.
// Implementations should validate options and return descriptive errors.
type DriverFactory func(opts Options) (Driver, error)

// RegistryEntry represents a registered driver.
type RegistryEntry struct {
	// Name is the unique identifier for this driver.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: native windows
	//   - 50: hardware displays
	//   - 10: offscreen image rendering
	Priority int

	// Factory creates driver instances.
	Factory DriverFactory

	// Available reports if the driver can run on this system.
	Available func() bool
}

var globalRegistry = &Registry{}

// Registry manages registered drivers.
//
// Driver packages register themselves from init:
//
//	func init() {
//	    surface.Register("gogpu", 100, factory, nil)
//	}
//
// Callers then select one by name or take the best available:
//
//	drv, err := surface.NewDriverByName("image", surface.Options{})
//	drv, err := surface.NewDriver(surface.Options{})
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewDriver.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a driver to the global registry.
// If available is nil, the driver is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory DriverFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a driver from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered driver names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available drivers sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific driver.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// NewDriver creates a driver using the best available entry.
func NewDriver(opts Options) (Driver, error) {
	return globalRegistry.NewDriver(opts)
}

// NewDriverByName creates a driver using a specific named entry.
func NewDriverByName(name string, opts Options) (Driver, error) {
	return globalRegistry.NewDriverByName(name, opts)
}

// Register adds a driver to this registry.
func (r *Registry) Register(name string, priority int, factory DriverFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a driver from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// List returns all registered driver names sorted by priority.
func (r *Registry) List() []string {
	return r.names(func(*RegistryEntry) bool { return true })
}

// Available returns names of all available drivers sorted by priority.
func (r *Registry) Available() []string {
	return r.names((*RegistryEntry).available)
}

// Get returns a copy of the named entry.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	cp := *entry
	return &cp, true
}

// NewDriver tries each available driver in priority order and returns the
// first one whose factory succeeds. If all fail, the factory errors are
// joined, each prefixed with its driver name.
func (r *Registry) NewDriver(opts Options) (Driver, error) {
	names := r.Available()
	if len(names) == 0 {
		return nil, ErrNoDriverAvailable
	}

	var errs []error
	for _, name := range names {
		d, err := r.NewDriverByName(name, opts)
		if err == nil {
			return d, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", name, err))
	}
	return nil, errors.Join(errs...)
}

// NewDriverByName creates a driver using a specific entry.
func (r *Registry) NewDriverByName(name string, opts Options) (Driver, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	switch {
	case !ok:
		return nil, &DriverNotFoundError{Name: name}
	case !entry.available():
		return nil, &DriverUnavailableError{Name: name}
	}
	return entry.Factory(opts)
}

// names returns the names of entries accepted by keep, highest priority
// first, ties by name.
func (r *Registry) names(keep func(*RegistryEntry) bool) []string {
	r.mu.RLock()
	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	entries = slices.DeleteFunc(entries, func(e *RegistryEntry) bool { return !keep(e) })
	if len(entries) == 0 {
		return nil
	}
	slices.SortFunc(entries, func(a, b *RegistryEntry) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func (e *RegistryEntry) available() bool { return e.Available() }

// ErrNoDriverAvailable is returned when no drivers are registered or
// available on the current system.
var ErrNoDriverAvailable = errors.New("surface: no driver available")

// DriverNotFoundError indicates a named driver is not registered.
type DriverNotFoundError struct {
	Name string
}

func (e *DriverNotFoundError) Error() string {
	return "surface: driver not found: " + e.Name
}

// DriverUnavailableError indicates a driver exists but cannot run here.
type DriverUnavailableError struct {
	Name string
}

func (e *DriverUnavailableError) Error() string {
	return "surface: driver unavailable: " + e.Name
}

func init() {
	Register("image", 10, func(Options) (Driver, error) {
		return NewImageDriver(), nil
	}, nil)
}
