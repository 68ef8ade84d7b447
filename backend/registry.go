// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/renderbuffer"
	"github.com/gogpu/renderbuffer/surface"
)

// registry holds registered allocator factories.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for backend selection (first available wins).
	// Native > Software (software is the fallback).
	backendPriority = []string{BackendNative, BackendSoftware}
)

// Register registers an allocator factory with the given name.
// If a factory with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a backend from the registry.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Get creates an allocator from the named backend.
func Get(name string) (surface.Allocator, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	alloc, err := factory()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrBackendNotAvailable, name, err)
	}
	if alloc == nil {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	return alloc, nil
}

// Default returns an allocator from the best available backend and its
// name. Backends in the priority list are tried first, then the remaining
// ones in name order. A backend whose factory fails is skipped.
func Default() (surface.Allocator, string, error) {
	names := Available()
	order := make([]string, 0, len(names))
	for _, name := range backendPriority {
		if slices.Contains(names, name) {
			order = append(order, name)
		}
	}
	for _, name := range names {
		if !slices.Contains(order, name) {
			order = append(order, name)
		}
	}

	for _, name := range order {
		alloc, err := Get(name)
		if err != nil {
			renderbuffer.Logger().Warn("backend: skipping unavailable backend",
				"backend", name, "err", err)
			continue
		}
		renderbuffer.Logger().Info("backend: selected", "backend", name)
		return alloc, name, nil
	}
	return nil, "", ErrBackendNotAvailable
}

// MustDefault returns the default allocator or panics.
func MustDefault() surface.Allocator {
	alloc, _, err := Default()
	if err != nil {
		panic("backend: no backend available")
	}
	return alloc
}
