// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package object

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Namespace errors.
var (
	// ErrNameInUse is returned when reserving a name that is already taken.
	ErrNameInUse = errors.New("object: name in use")

	// ErrZeroName is returned when reserving the reserved zero name.
	ErrZeroName = errors.New("object: name 0 is reserved")
)

// Namespace allocates names and maps them to objects.
//
// Allocate always returns the lowest free non-zero name, so names freed by
// Remove are reused. Namespace is safe for concurrent use.
type Namespace[T any] struct {
	mu      sync.RWMutex
	objects map[Name]T
}

// NewNamespace creates an empty namespace.
func NewNamespace[T any]() *Namespace[T] {
	return &Namespace[T]{
		objects: make(map[Name]T),
	}
}

// Allocate reserves the lowest unused name and binds obj to it.
func (ns *Namespace[T]) Allocate(obj T) Name {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	name := Name(1)
	for {
		if _, taken := ns.objects[name]; !taken {
			break
		}
		name++
	}
	ns.objects[name] = obj
	return name
}

// Reserve binds obj to a caller-chosen name.
func (ns *Namespace[T]) Reserve(name Name, obj T) error {
	if name == 0 {
		return ErrZeroName
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()

	if _, taken := ns.objects[name]; taken {
		return fmt.Errorf("%w: %d", ErrNameInUse, name)
	}
	ns.objects[name] = obj
	return nil
}

// Set rebinds an existing or new name to obj.
func (ns *Namespace[T]) Set(name Name, obj T) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.objects[name] = obj
}

// Get returns the object bound to name.
func (ns *Namespace[T]) Get(name Name) (T, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	obj, ok := ns.objects[name]
	return obj, ok
}

// Remove unbinds name and reports whether it was bound.
func (ns *Namespace[T]) Remove(name Name) bool {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	_, ok := ns.objects[name]
	delete(ns.objects, name)
	return ok
}

// Len returns the number of bound names.
func (ns *Namespace[T]) Len() int {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return len(ns.objects)
}

// Names returns the bound names in ascending order.
func (ns *Namespace[T]) Names() []Name {
	ns.mu.RLock()
	names := make([]Name, 0, len(ns.objects))
	for name := range ns.objects {
		names = append(names, name)
	}
	ns.mu.RUnlock()

	slices.Sort(names)
	return names
}
