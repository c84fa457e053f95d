package gohost

import (
	"reflect"

	"github.com/traefik/yaegi/interp"

	"github.com/born-ml/arrayview/internal/bridge"
	"github.com/born-ml/arrayview/internal/tensor"
)

// ImportPath is the package path scripts import to reach array views.
const ImportPath = "arrayview"

// Symbols exposes the view API to interpreted scripts as package "arrayview".
// Slices returned by the As* helpers alias native memory.
var Symbols = interp.Exports{
	ImportPath + "/arrayview": {
		"View":  reflect.ValueOf((*bridge.View)(nil)),
		"Shape": reflect.ValueOf((*tensor.Shape)(nil)),

		"Float32s": reflect.ValueOf(bridge.AsFloat32),
		"Float64s": reflect.ValueOf(bridge.AsFloat64),
		"Int32s":   reflect.ValueOf(bridge.AsInt32),
		"Int64s":   reflect.ValueOf(bridge.AsInt64),
		"Uint8s":   reflect.ValueOf(bridge.AsUint8),

		"ErrTypeMismatch":    reflect.ValueOf(&bridge.ErrTypeMismatch).Elem(),
		"ErrShapeMismatch":   reflect.ValueOf(&bridge.ErrShapeMismatch).Elem(),
		"ErrIndexOutOfRange": reflect.ValueOf(&bridge.ErrIndexOutOfRange).Elem(),
	},
}
