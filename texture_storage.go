// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderbuffer

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/renderbuffer/format"
	"github.com/gogpu/renderbuffer/surface"
)

// TextureStorage presents one mip level of a 2D texture as renderbuffer
// storage.
//
// It holds no reference of its own. The texture is its delegate, so the
// renderbuffer's references reach the texture as proxy references and keep
// it alive for as long as the renderbuffer is referenced.
type TextureStorage struct {
	texture Texture
	level   int
}

var _ Storage = (*TextureStorage)(nil)

// NewTextureStorage returns storage viewing the given level of tex.
func NewTextureStorage(tex Texture, level int) *TextureStorage {
	if tex == nil {
		panic("renderbuffer: nil texture")
	}
	return &TextureStorage{texture: tex, level: level}
}

// Texture returns the viewed texture.
func (s *TextureStorage) Texture() Texture { return s.texture }

// Level returns the viewed mip level.
func (s *TextureStorage) Level() int { return s.level }

// Width returns the level width.
func (s *TextureStorage) Width() int { return s.texture.Width(s.level) }

// Height returns the level height.
func (s *TextureStorage) Height() int { return s.texture.Height(s.level) }

// Format returns the level's public format.
func (s *TextureStorage) Format() format.Format { return s.texture.Format(s.level) }

// InternalFormat returns the level's internal format.
func (s *TextureStorage) InternalFormat() gputypes.TextureFormat {
	return s.texture.InternalFormat(s.level)
}

// Samples always returns 0: texture levels are single-sampled.
func (s *TextureStorage) Samples() int { return 0 }

// RenderTarget returns the level image with a reference added, or nil.
func (s *TextureStorage) RenderTarget() *surface.Image {
	return s.texture.RenderTarget(s.level)
}

// SharedImage returns the level image with a reference added and marks it
// shared, or returns nil.
func (s *TextureStorage) SharedImage() *surface.Image {
	return s.texture.SharedImage(s.level)
}

// IsShared reports whether the level image is marked shared.
func (s *TextureStorage) IsShared() bool { return s.texture.IsShared(s.level) }

// Delegate returns the texture.
func (s *TextureStorage) Delegate() ProxyOwner { return s.texture }

// Destroy does nothing; proxy references are moved by the Renderbuffer.
func (s *TextureStorage) Destroy() {}
