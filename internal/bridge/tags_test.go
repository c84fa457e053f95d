package bridge

import (
	"testing"

	"github.com/born-ml/arrayview/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagTableIsOneToOne(t *testing.T) {
	seenNames := map[string]bool{}
	seenTypestrs := map[string]bool{}

	for dt := tensor.DataType(0); int(dt) < tensor.NumDataTypes; dt++ {
		tag, ok := TagOf(dt)
		require.True(t, ok, "no tag for %s", dt)

		assert.Equal(t, dt, tag.DType)
		assert.Equal(t, dt.String(), tag.Name)
		assert.Equal(t, dt.Size(), tag.ItemSize)

		assert.False(t, seenNames[tag.Name], "duplicate name %s", tag.Name)
		assert.False(t, seenTypestrs[tag.Typestr()], "duplicate typestr %s", tag.Typestr())
		seenNames[tag.Name] = true
		seenTypestrs[tag.Typestr()] = true

		byName, ok := TagByName(tag.Name)
		require.True(t, ok)
		assert.Equal(t, tag, byName)

		byTypestr, ok := TagByTypestr(tag.Typestr())
		require.True(t, ok)
		assert.Equal(t, tag, byTypestr)
	}

	assert.Len(t, Tags(), tensor.NumDataTypes)
}

func TestTagKinds(t *testing.T) {
	tests := []struct {
		dtype tensor.DataType
		kind  byte
	}{
		{tensor.Float32, 'f'},
		{tensor.Float64, 'f'},
		{tensor.Int8, 'i'},
		{tensor.Int64, 'i'},
		{tensor.Uint8, 'u'},
		{tensor.Uint64, 'u'},
	}
	for _, tt := range tests {
		tag, ok := TagOf(tt.dtype)
		require.True(t, ok)
		assert.Equal(t, tt.kind, tag.Kind, tt.dtype.String())
	}
}

func TestTypestr(t *testing.T) {
	f32 := TagFor[float32]()
	assert.Len(t, f32.Typestr(), 3)
	assert.Contains(t, "<>", f32.Typestr()[:1])
	assert.Equal(t, "f4", f32.Typestr()[1:])

	assert.Equal(t, "|u1", TagFor[uint8]().Typestr())
	assert.Equal(t, "|i1", TagFor[int8]().Typestr())
}

func TestUnknownTags(t *testing.T) {
	_, ok := TagOf(tensor.DataType(99))
	assert.False(t, ok)

	_, ok = TagByName("complex128")
	assert.False(t, ok)

	_, ok = TagByTypestr("<c16")
	assert.False(t, ok)
}

func TestTagForMatchesDataTypeOf(t *testing.T) {
	assert.Equal(t, tensor.Float64, TagFor[float64]().DType)
	assert.Equal(t, tensor.Int16, TagFor[int16]().DType)
	assert.Equal(t, tensor.Uint32, TagFor[uint32]().DType)
}
