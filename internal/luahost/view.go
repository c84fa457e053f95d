package luahost

import (
	"fmt"

	"github.com/Shopify/go-lua"

	"github.com/born-ml/arrayview/internal/bridge"
	"github.com/born-ml/arrayview/internal/tensor"
)

const viewTypeName = "arrayview"

func (h *Host) registerViewType() {
	h.methods = map[string]lua.Function{
		"shape":   h.viewShape,
		"strides": h.viewStrides,
		"dtype":   h.viewDType,
		"typestr": h.viewTypestr,
		"ndim":    h.viewNDim,
		"owns":    h.viewOwns,
		"at":      h.viewAt,
		"put":     h.viewPut,
		"fill":    h.viewFill,
	}

	lua.NewMetaTable(h.state, viewTypeName)
	lua.SetFunctions(h.state, []lua.RegistryFunction{
		{Name: "__index", Function: h.viewIndex},
		{Name: "__newindex", Function: h.viewNewIndex},
		{Name: "__len", Function: h.viewLen},
		{Name: "__tostring", Function: h.viewToString},
	}, 0)
	h.state.Pop(1)
}

func (h *Host) pushView(l *lua.State, view *bridge.View) {
	l.PushUserData(view)
	lua.SetMetaTableNamed(l, viewTypeName)
}

func (h *Host) checkView(l *lua.State, index int) *bridge.View {
	ud := lua.CheckUserData(l, index, viewTypeName)
	if view, ok := ud.(*bridge.View); ok && view != nil {
		return view
	}
	lua.ArgumentError(l, index, "arrayview expected")
	return nil
}

// viewIndex serves v[i] for numbers and v:method() for names.
func (h *Host) viewIndex(l *lua.State) int {
	view := h.checkView(l, 1)
	if l.TypeOf(2) == lua.TypeNumber {
		h.pushElement(l, view, lua.CheckInteger(l, 2)-1)
		return 1
	}
	name := lua.CheckString(l, 2)
	if fn, ok := h.methods[name]; ok {
		l.PushGoFunction(fn)
		return 1
	}
	l.PushNil()
	return 1
}

func (h *Host) viewNewIndex(l *lua.State) int {
	view := h.checkView(l, 1)
	h.storeElement(l, view, lua.CheckInteger(l, 2)-1, 3)
	return 0
}

func (h *Host) viewLen(l *lua.State) int {
	l.PushInteger(h.checkView(l, 1).Len())
	return 1
}

func (h *Host) viewToString(l *lua.State) int {
	l.PushString(h.checkView(l, 1).String())
	return 1
}

func (h *Host) viewShape(l *lua.State) int {
	pushInts(l, h.checkView(l, 1).Shape())
	return 1
}

func (h *Host) viewStrides(l *lua.State) int {
	pushInts(l, h.checkView(l, 1).Strides())
	return 1
}

func (h *Host) viewDType(l *lua.State) int {
	l.PushString(h.checkView(l, 1).Tag().Name)
	return 1
}

func (h *Host) viewTypestr(l *lua.State) int {
	l.PushString(h.checkView(l, 1).Tag().Typestr())
	return 1
}

func (h *Host) viewNDim(l *lua.State) int {
	l.PushInteger(h.checkView(l, 1).NDim())
	return 1
}

func (h *Host) viewOwns(l *lua.State) int {
	l.PushBoolean(h.checkView(l, 1).OwnsData())
	return 1
}

// viewAt serves m:at(row, col) with 1-based indices.
func (h *Host) viewAt(l *lua.State) int {
	view := h.checkView(l, 1)
	h.pushElement(l, view, h.flatIndex(l, view))
	return 1
}

// viewPut serves m:put(row, col, x) with 1-based indices.
func (h *Host) viewPut(l *lua.State) int {
	view := h.checkView(l, 1)
	h.storeElement(l, view, h.flatIndex(l, view), 4)
	return 0
}

func (h *Host) viewFill(l *lua.State) int {
	view := h.checkView(l, 1)
	view.Fill(lua.CheckNumber(l, 2))
	return 0
}

func (h *Host) flatIndex(l *lua.State, view *bridge.View) int {
	shape := view.Shape()
	if len(shape) != 2 {
		h.raise(l, fmt.Errorf("%w: at/put need a matrix, view has shape %v", bridge.ErrShapeMismatch, shape))
	}
	row, col := lua.CheckInteger(l, 2)-1, lua.CheckInteger(l, 3)-1
	if row < 0 || row >= shape[0] || col < 0 || col >= shape[1] {
		h.raise(l, fmt.Errorf("%w: (%d, %d) for shape %v", bridge.ErrIndexOutOfRange, row+1, col+1, shape))
	}
	return row*shape[1] + col
}

// asNumber reports whether elements of dt cross into Lua as floating-point
// numbers. uint64 does not fit int64, so it goes through float64 like Lua 5.2
// numbers do.
func asNumber(dt tensor.DataType) bool {
	return dt.IsFloat() || (!dt.IsSigned() && dt.Size() == 8)
}

func (h *Host) pushElement(l *lua.State, view *bridge.View, i int) {
	if asNumber(view.DType()) {
		x, err := view.Float(i)
		if err != nil {
			h.raise(l, err)
		}
		l.PushNumber(x)
		return
	}
	x, err := view.Int(i)
	if err != nil {
		h.raise(l, err)
	}
	l.PushInteger(int(x))
}

func (h *Host) storeElement(l *lua.State, view *bridge.View, i, valueIndex int) {
	var err error
	if asNumber(view.DType()) {
		err = view.SetFloat(i, lua.CheckNumber(l, valueIndex))
	} else {
		err = view.SetInt(i, int64(lua.CheckInteger(l, valueIndex)))
	}
	if err != nil {
		h.raise(l, err)
	}
}

func pushInts(l *lua.State, values []int) {
	l.CreateTable(len(values), 0)
	for i, v := range values {
		l.PushInteger(v)
		l.RawSetInt(-2, i+1)
	}
}
