// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package software

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidProfile is returned when a device profile fails validation.
var ErrInvalidProfile = errors.New("software: invalid profile")

// Profile describes the device a software allocator emulates.
//
// A profile file looks like:
//
//	name = "lowend"
//	sample_counts = [1, 4]
//	max_dimension = 4096
//	memory_budget_mb = 64
//	clear_color = [0, 0, 0, 255]
type Profile struct {
	Name           string  `toml:"name"`
	SampleCounts   []int   `toml:"sample_counts"`
	MaxDimension   int     `toml:"max_dimension"`
	MemoryBudgetMB uint64  `toml:"memory_budget_mb"`
	ClearColor     []int   `toml:"clear_color"`
}

// ParseProfile decodes and validates a TOML profile. Unknown keys are
// rejected.
func ParseProfile(data []byte) (Profile, error) {
	var p Profile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// LoadProfile reads and parses a TOML profile file.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("software: load profile: %w", err)
	}
	p, err := ParseProfile(data)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Validate checks the profile's values.
func (p Profile) Validate() error {
	for _, n := range p.SampleCounts {
		if n <= 0 {
			return fmt.Errorf("%w: sample count %d", ErrInvalidProfile, n)
		}
	}
	if p.MaxDimension < 0 {
		return fmt.Errorf("%w: max_dimension %d", ErrInvalidProfile, p.MaxDimension)
	}
	if len(p.ClearColor) != 0 && len(p.ClearColor) != 4 {
		return fmt.Errorf("%w: clear_color needs 4 components, got %d", ErrInvalidProfile, len(p.ClearColor))
	}
	for _, v := range p.ClearColor {
		if v < 0 || v > 0xff {
			return fmt.Errorf("%w: clear_color component %d", ErrInvalidProfile, v)
		}
	}
	return nil
}

// Options returns the allocator options for the profile. Unset fields keep
// the allocator defaults.
func (p Profile) Options() []Option {
	var opts []Option
	if p.SampleCounts != nil {
		opts = append(opts, WithSampleCounts(p.SampleCounts...))
	}
	if p.MaxDimension > 0 {
		opts = append(opts, WithMaxDimension(p.MaxDimension))
	}
	if p.MemoryBudgetMB > 0 {
		opts = append(opts, WithMemoryBudget(p.MemoryBudgetMB*1024*1024))
	}
	if len(p.ClearColor) == 4 {
		c := p.ClearColor
		//nolint:gosec // G115: components are validated to fit a byte
		opts = append(opts, WithClearColor(color.NRGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: uint8(c[3])}))
	}
	return opts
}

// Marshal encodes the profile as TOML.
func (p Profile) Marshal() ([]byte, error) {
	return toml.Marshal(p)
}
