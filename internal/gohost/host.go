// Package gohost runs interpreted Go scripts against zero-copy array views.
//
// A script is a main package that imports "arrayview" and defines an entry
// point taking the view:
//
//	package main
//
//	import "arrayview"
//
//	func Run(v *arrayview.View) error {
//		xs, err := arrayview.Float32s(v)
//		if err != nil {
//			return err
//		}
//		xs[0] = 9
//		return nil
//	}
//
// Writes through the slice land directly in the native buffer.
package gohost

import (
	"context"
	"fmt"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"go.uber.org/zap"

	"github.com/born-ml/arrayview/internal/bridge"
)

// Entry is the signature of a script entry point.
type Entry = func(*bridge.View) error

// Host evaluates scripts with the arrayview package available.
type Host struct {
	logger *zap.Logger
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Host) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// New creates a script host.
func New(opts ...Option) *Host {
	h := &Host{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Load evaluates source in a fresh interpreter and returns the entry point
// named fn.
func (h *Host) Load(ctx context.Context, source, fn string) (Entry, error) {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("failed to load stdlib: %w", err)
	}
	if err := i.Use(Symbols); err != nil {
		return nil, fmt.Errorf("failed to load arrayview symbols: %w", err)
	}

	if _, err := i.EvalWithContext(ctx, wrapCode(source)); err != nil {
		return nil, fmt.Errorf("code evaluation failed: %w", err)
	}

	value, err := i.EvalWithContext(ctx, "main."+fn)
	if err != nil {
		return nil, fmt.Errorf("%s function not found: %w", fn, err)
	}
	entry, ok := value.Interface().(Entry)
	if !ok {
		return nil, fmt.Errorf("%s has incorrect signature (expected: func(*arrayview.View) error)", fn)
	}
	return entry, nil
}

// Call loads source and invokes fn with view.
func (h *Host) Call(ctx context.Context, source, fn string, view *bridge.View) error {
	if view == nil {
		return fmt.Errorf("call %s: %w", fn, bridge.ErrNilInput)
	}
	entry, err := h.Load(ctx, source, fn)
	if err != nil {
		return err
	}

	h.logger.Debug("calling script",
		zap.String("entry", fn),
		zap.String("dtype", view.Tag().Name),
		zap.Stringer("shape", view.Shape()))

	if err := invoke(entry, view); err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	return nil
}

// invoke runs entry, turning a script panic into an error.
func invoke(entry Entry, view *bridge.View) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("script panic: %v", r)
		}
	}()
	return entry(view)
}

// wrapCode adds a package clause when the script omits one.
func wrapCode(code string) string {
	if strings.HasPrefix(strings.TrimSpace(code), "package ") {
		return code
	}
	return "package main\n\n" + code
}
