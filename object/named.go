// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package object provides the named, reference-counted base shared by API
// objects, and a namespace that hands out their names.
package object

import "fmt"

// Name identifies an API object. Zero is reserved and names nothing.
type Name uint32

// Named carries an object's name and its own reference count.
//
// The count starts at zero: creating an object does not reference it, the
// first binding does. Named is not safe for concurrent use.
type Named struct {
	name Name
	refs int
}

// NewNamed returns a Named with the given name and no references.
func NewNamed(name Name) Named {
	return Named{name: name}
}

// Name returns the object's name.
func (n *Named) Name() Name { return n.name }

// RefCount returns the number of outstanding references.
func (n *Named) RefCount() int { return n.refs }

// IncRef adds a reference and returns the new count.
func (n *Named) IncRef() int {
	n.refs++
	return n.refs
}

// DecRef drops a reference and returns the new count. Dropping a reference
// that was never taken panics.
func (n *Named) DecRef() int {
	if n.refs == 0 {
		panic(fmt.Sprintf("object: %d released too many times", n.name))
	}
	n.refs--
	return n.refs
}
