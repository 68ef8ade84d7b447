// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command rbinfo defines a renderbuffer on an allocator backend and prints
// the parameters the backend gave it.
//
// Usage:
//
//	rbinfo -format RGBA8 -width 256 -height 128 -samples 4
//	rbinfo -profile lowend.toml -format Depth24Stencil8 -samples 8 -v
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/renderbuffer"
	"github.com/gogpu/renderbuffer/backend"
	"github.com/gogpu/renderbuffer/backend/software"
	"github.com/gogpu/renderbuffer/format"
	"github.com/gogpu/renderbuffer/object"
	"github.com/gogpu/renderbuffer/surface"
)

func main() {
	var (
		backendName = flag.String("backend", "", "allocator backend (default: best available)")
		profile     = flag.String("profile", "", "software device profile (TOML)")
		width       = flag.Int("width", 256, "renderbuffer width")
		height      = flag.Int("height", 128, "renderbuffer height")
		formatName  = flag.String("format", "RGBA8", "renderbuffer format")
		samples     = flag.Int("samples", 0, "requested multisample count")
		verbose     = flag.Bool("v", false, "log allocations to stderr")
	)
	flag.Parse()

	if *verbose {
		renderbuffer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	f, ok := format.Parse(*formatName)
	if !ok {
		log.Fatalf("unknown format %q", *formatName)
	}

	if *profile != "" {
		p, err := software.LoadProfile(*profile)
		if err != nil {
			log.Fatalf("Failed to load profile: %v", err)
		}
		backend.Register(backend.BackendSoftware, func() (surface.Allocator, error) {
			return software.New(p.Options()...), nil
		})
	}

	if err := run(*backendName, *width, *height, f, *samples); err != nil {
		log.Fatal(err)
	}
}

func run(backendName string, width, height int, f format.Format, samples int) error {
	alloc, name, err := openBackend(backendName)
	if err != nil {
		return fmt.Errorf("open backend: %w", err)
	}

	names := object.NewNamespace[*renderbuffer.Renderbuffer]()
	id := names.Allocate(nil)
	rb := renderbuffer.NewEmpty(id, renderbuffer.WithDestroyFunc(func(rb *renderbuffer.Renderbuffer) {
		names.Remove(rb.Name())
	}))
	names.Set(id, rb)
	rb.AddRef()
	defer rb.Release()

	if err := rb.Define(alloc, width, height, f, samples); err != nil {
		return fmt.Errorf("define renderbuffer: %w", err)
	}

	printInfo(os.Stdout, name, rb)
	if a, ok := alloc.(*software.Allocator); ok {
		fmt.Printf("%-10s %v\n", "memory", a.Stats())
	}
	return nil
}

func openBackend(name string) (surface.Allocator, string, error) {
	if name == "" {
		return backend.Default()
	}
	alloc, err := backend.Get(name)
	return alloc, name, err
}

func printInfo(w io.Writer, backendName string, rb *renderbuffer.Renderbuffer) {
	fmt.Fprintf(w, "%-10s %s\n", "backend", backendName)
	fmt.Fprintf(w, "%-10s %d\n", "name", rb.Name())
	fmt.Fprintf(w, "%-10s %dx%d\n", "size", rb.Width(), rb.Height())
	fmt.Fprintf(w, "%-10s %v\n", "format", rb.Format())
	fmt.Fprintf(w, "%-10s %v\n", "internal", rb.InternalFormat())
	fmt.Fprintf(w, "%-10s %d\n", "samples", rb.Samples())
	fmt.Fprintf(w, "%-10s r=%d g=%d b=%d a=%d d=%d s=%d\n", "bits",
		rb.RedSize(), rb.GreenSize(), rb.BlueSize(), rb.AlphaSize(), rb.DepthSize(), rb.StencilSize())

	if img := rb.RenderTarget(); img != nil {
		fmt.Fprintf(w, "%-10s %v\n", "image", img)
		img.Release()
	}
}
