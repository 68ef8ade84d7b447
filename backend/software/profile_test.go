// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package software

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lowEnd = `
name = "lowend"
sample_counts = [1, 4]
max_dimension = 1024
memory_budget_mb = 1
clear_color = [0, 0, 255, 255]
`

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile([]byte(lowEnd))
	require.NoError(t, err)

	assert.Equal(t, "lowend", p.Name)
	assert.Equal(t, []int{1, 4}, p.SampleCounts)
	assert.Equal(t, 1024, p.MaxDimension)
	assert.Equal(t, uint64(1), p.MemoryBudgetMB)
	assert.Equal(t, []int{0, 0, 255, 255}, p.ClearColor)
}

func TestProfileOptions(t *testing.T) {
	p, err := ParseProfile([]byte(lowEnd))
	require.NoError(t, err)

	a := New(p.Options()...)
	assert.Equal(t, []int{1, 4}, a.SampleCounts())
	assert.Equal(t, 4, a.SupportedMultisampleCount(2))
	assert.Equal(t, 1024, a.MaxDimension())
	assert.Equal(t, uint64(1024*1024), a.Stats().TotalBytes)

	img, err := a.CreateRenderTarget(2, 2, gputypes.TextureFormatRGBA8Unorm, 0, false)
	require.NoError(t, err)
	defer img.Release()
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, img.Pixels().At(0, 0))
}

func TestEmptyProfileKeepsDefaults(t *testing.T) {
	p, err := ParseProfile(nil)
	require.NoError(t, err)
	assert.Empty(t, p.Options())

	a := New(p.Options()...)
	assert.Equal(t, DefaultSampleCounts, a.SampleCounts())
	assert.Equal(t, DefaultMaxDimension, a.MaxDimension())
}

func TestParseProfileInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `name = `},
		{"unknown key", `colour = "red"`},
		{"zero samples", `sample_counts = [0, 4]`},
		{"negative dimension", `max_dimension = -1`},
		{"short color", `clear_color = [1, 2, 3]`},
		{"color range", `clear_color = [0, 0, 0, 256]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidProfile)
		})
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lowend.toml")
	require.NoError(t, os.WriteFile(path, []byte(lowEnd), 0o600))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "lowend", p.Name)

	_, err = LoadProfile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestProfileMarshalRoundTrip(t *testing.T) {
	want := Profile{Name: "tiny", SampleCounts: []int{1}, MaxDimension: 64}

	data, err := want.Marshal()
	require.NoError(t, err)

	got, err := ParseProfile(data)
	require.NoError(t, err)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.SampleCounts, got.SampleCounts)
	assert.Equal(t, want.MaxDimension, got.MaxDimension)
}
