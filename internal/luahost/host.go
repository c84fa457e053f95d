// Package luahost embeds a Lua runtime whose arrays are zero-copy views of
// native vectors and matrices.
//
// Inside Lua a view is a userdata of type "arrayview". Elements are addressed
// with 1-based flat indices (v[1] is native element 0), matrices additionally
// through v:at(row, col) and v:put(row, col, x). The global table "arrays"
// creates fresh arrays owned by the runtime.
package luahost

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Shopify/go-lua"
	"go.uber.org/zap"

	"github.com/born-ml/arrayview/internal/bridge"
	"github.com/born-ml/arrayview/internal/config"
	"github.com/born-ml/arrayview/internal/tensor"
)

// ErrClosed is returned by a Host used after Close.
var ErrClosed = errors.New("luahost: host is closed")

// hookInterval is the number of VM instructions between context checks.
const hookInterval = 1000

// Host owns one Lua state. It is not safe for concurrent use.
type Host struct {
	state   *lua.State
	cfg     config.Lua
	logger  *zap.Logger
	methods map[string]lua.Function

	views   int   // wrappers handed out so far
	lastErr error // last Go-side error raised into Lua
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

// New creates a Lua host with the arrayview type and the arrays library
// registered.
func New(cfg config.Lua, opts ...Option) *Host {
	h := &Host{
		state:  lua.NewState(),
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}

	if cfg.OpenLibs {
		lua.OpenLibraries(h.state)
	}
	h.registerViewType()
	h.registerArrays()

	h.logger.Debug("lua host ready",
		zap.Int("max_views", cfg.MaxViews),
		zap.Bool("open_libs", cfg.OpenLibs))
	return h
}

// Wrap implements bridge.Runtime. Each wrapper counts toward the configured
// view limit; past the limit Wrap fails with bridge.ErrAllocation.
func (h *Host) Wrap(data []byte, tag bridge.Tag, shape tensor.Shape) (*bridge.View, error) {
	if err := h.checkBudget(); err != nil {
		return nil, err
	}
	view, err := bridge.NewView(data, tag, shape)
	if err != nil {
		return nil, err
	}
	h.views++
	return view, nil
}

// NewArray implements bridge.Runtime, allocating an array owned by Lua.
func (h *Host) NewArray(tag bridge.Tag, shape tensor.Shape) (*bridge.View, error) {
	if err := h.checkBudget(); err != nil {
		return nil, err
	}
	view, err := bridge.AllocView(tag, shape)
	if err != nil {
		return nil, err
	}
	h.views++
	return view, nil
}

func (h *Host) checkBudget() error {
	if h.state == nil {
		return fmt.Errorf("%w: %w", bridge.ErrAllocation, ErrClosed)
	}
	if h.cfg.MaxViews > 0 && h.views >= h.cfg.MaxViews {
		h.logger.Warn("lua view limit reached", zap.Int("max_views", h.cfg.MaxViews))
		return fmt.Errorf("%w: lua runtime limit of %d views reached", bridge.ErrAllocation, h.cfg.MaxViews)
	}
	return nil
}

// Views returns how many wrappers the host has handed out.
func (h *Host) Views() int {
	return h.views
}

// SetView publishes view as the Lua global name.
func (h *Host) SetView(name string, view *bridge.View) error {
	if h.state == nil {
		return ErrClosed
	}
	if view == nil {
		return fmt.Errorf("set %q: %w", name, bridge.ErrNilInput)
	}
	h.pushView(h.state, view)
	h.state.SetGlobal(name)
	h.logger.Debug("view published",
		zap.String("name", name),
		zap.String("dtype", view.Tag().Name),
		zap.Stringer("shape", view.Shape()))
	return nil
}

// View returns the array held by the Lua global name. Anything other than an
// arrayview yields bridge.ErrTypeMismatch.
func (h *Host) View(name string) (*bridge.View, error) {
	if h.state == nil {
		return nil, ErrClosed
	}
	h.state.Global(name)
	ud := h.state.ToUserData(-1)
	typeName := lua.TypeNameOf(h.state, -1)
	h.state.Pop(1)

	view, ok := ud.(*bridge.View)
	if !ok || view == nil {
		return nil, fmt.Errorf("global %q is a %s: %w", name, typeName, bridge.ErrTypeMismatch)
	}
	return view, nil
}

// Run executes source as a Lua chunk. Errors raised by the script, including
// bridge errors from array access, are returned; bridge sentinels stay
// matchable with errors.Is. Cancelling ctx stops a running chunk.
func (h *Host) Run(ctx context.Context, chunkName, source string) error {
	if h.state == nil {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("run %s: %w", chunkName, err)
	}

	h.lastErr = nil
	top := h.state.Top()
	defer h.state.SetTop(top)

	if err := lua.LoadBuffer(h.state, source, chunkName, ""); err != nil {
		return fmt.Errorf("load %s: %w", chunkName, err)
	}

	lua.SetDebugHook(h.state, func(l *lua.State, _ lua.Debug) {
		if err := ctx.Err(); err != nil {
			h.raise(l, err)
		}
	}, lua.MaskCount, hookInterval)
	defer lua.SetDebugHook(h.state, nil, 0, 0)

	if err := h.state.ProtectedCall(0, 0, 0); err != nil {
		if cause := h.cause(err); cause != nil {
			return fmt.Errorf("run %s: %w (%v)", chunkName, cause, err)
		}
		return fmt.Errorf("run %s: %w", chunkName, err)
	}
	return nil
}

// cause returns the Go error behind a failed chunk. An error raised earlier
// and caught by pcall does not match the final message and is ignored.
func (h *Host) cause(err error) error {
	if h.lastErr == nil || !strings.HasSuffix(err.Error(), h.lastErr.Error()) {
		return nil
	}
	return h.lastErr
}

// Close releases the Lua state. Views handed to native code stay valid:
// their memory belongs to the Go heap, not to Lua.
func (h *Host) Close() {
	h.state = nil
	h.methods = nil
}

// raise records err for Run and raises it as a Lua error. It does not return.
func (h *Host) raise(l *lua.State, err error) {
	h.lastErr = err
	lua.Errorf(l, "%s", err.Error())
}
