package luahost

import (
	"fmt"

	"github.com/Shopify/go-lua"

	"github.com/born-ml/arrayview/internal/bridge"
	"github.com/born-ml/arrayview/internal/tensor"
)

func (h *Host) registerArrays() {
	h.state.NewTable()
	lua.SetFunctions(h.state, []lua.RegistryFunction{
		{Name: "zeros", Function: h.arraysZeros},
		{Name: "dtypes", Function: arraysDTypes},
	}, 0)
	h.state.SetGlobal("arrays")
}

// arraysZeros serves arrays.zeros(dtype, n [, m]).
func (h *Host) arraysZeros(l *lua.State) int {
	name := lua.CheckString(l, 1)
	tag, ok := bridge.TagByName(name)
	if !ok {
		h.raise(l, fmt.Errorf("%w: unknown dtype %q", bridge.ErrTypeMismatch, name))
	}

	shape := tensor.Shape{lua.CheckInteger(l, 2)}
	if !l.IsNoneOrNil(3) {
		shape = append(shape, lua.CheckInteger(l, 3))
	}

	view, err := h.NewArray(tag, shape)
	if err != nil {
		h.raise(l, err)
	}
	h.pushView(l, view)
	return 1
}

func arraysDTypes(l *lua.State) int {
	tags := bridge.Tags()
	l.CreateTable(len(tags), 0)
	for i, tag := range tags {
		l.PushString(tag.Name)
		l.RawSetInt(-2, i+1)
	}
	return 1
}
