package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/born-ml/arrayview/internal/bridge"
	"github.com/born-ml/arrayview/internal/config"
	"github.com/born-ml/arrayview/internal/gohost"
	"github.com/born-ml/arrayview/internal/luahost"
	"github.com/born-ml/arrayview/internal/tensor"
)

func runLua(ctx context.Context, cfg config.Lua, name, source, dtype string, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("invalid length %d", n)
	}
	switch dtype {
	case "float32":
		return luaWith[float32](ctx, cfg, name, source, n)
	case "float64":
		return luaWith[float64](ctx, cfg, name, source, n)
	case "int32":
		return luaWith[int32](ctx, cfg, name, source, n)
	default:
		return "", fmt.Errorf("unsupported dtype %q", dtype)
	}
}

func runGo(ctx context.Context, source, dtype string, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("invalid length %d", n)
	}
	switch dtype {
	case "float32":
		return goWith[float32](ctx, source, n)
	case "float64":
		return goWith[float64](ctx, source, n)
	case "int32":
		return goWith[int32](ctx, source, n)
	default:
		return "", fmt.Errorf("unsupported dtype %q", dtype)
	}
}

func luaWith[T tensor.Numeric](ctx context.Context, cfg config.Lua, name, source string, n int) (string, error) {
	host := luahost.New(cfg, luahost.WithLogger(activeLogger()))
	defer host.Close()

	v := sequence[T](n)
	view, err := bridge.New[T]().VectorView(host, v)
	if err != nil {
		return "", err
	}
	if err := host.SetView("v", view); err != nil {
		return "", err
	}
	if err := host.Run(ctx, name, source); err != nil {
		return "", err
	}
	return v.String(), nil
}

func goWith[T tensor.Numeric](ctx context.Context, source string, n int) (string, error) {
	host := gohost.New(gohost.WithLogger(activeLogger()))

	v := sequence[T](n)
	view, err := bridge.New[T]().VectorView(bridge.Heap, v)
	if err != nil {
		return "", err
	}
	if err := host.Call(ctx, source, "Run", view); err != nil {
		return "", err
	}
	return v.String(), nil
}

// sequence returns the vector 0, 1, ..., n-1.
func sequence[T tensor.Numeric](n int) *tensor.Vector[T] {
	v := tensor.NewVector[T](n)
	for i := range v.Data() {
		v.Data()[i] = T(i)
	}
	return v
}

func activeLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
