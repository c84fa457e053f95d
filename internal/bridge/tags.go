package bridge

import (
	"fmt"
	"unsafe"

	"github.com/born-ml/arrayview/internal/tensor"
)

// Tag is the element type identifier a runtime attaches to an array.
// Each native DataType maps to exactly one Tag and back.
type Tag struct {
	DType    tensor.DataType
	Name     string // runtime-facing name, e.g. "float32"
	Kind     byte   // 'f' floating point, 'i' signed integer, 'u' unsigned integer
	ItemSize int    // bytes per element
}

// Typestr returns the array-interface type string, e.g. "<f4".
// Single-byte types have no byte order and use '|'.
func (t Tag) Typestr() string {
	order := nativeOrder
	if t.ItemSize == 1 {
		order = '|'
	}
	return fmt.Sprintf("%c%c%d", order, t.Kind, t.ItemSize)
}

// String returns the tag name.
func (t Tag) String() string {
	return t.Name
}

// tagEntry is one row of the lookup table: the tag plus element accessors
// that read and write a single element of that type in a byte buffer.
type tagEntry struct {
	tag      Tag
	getFloat func(b []byte, i int) float64
	setFloat func(b []byte, i int, x float64)
	getInt   func(b []byte, i int) int64
	setInt   func(b []byte, i int, x int64)
}

// tagTable is indexed by tensor.DataType.
var tagTable = [tensor.NumDataTypes]tagEntry{
	tensor.Float32: entryOf[float32]("float32", 'f'),
	tensor.Float64: entryOf[float64]("float64", 'f'),
	tensor.Int8:    entryOf[int8]("int8", 'i'),
	tensor.Int16:   entryOf[int16]("int16", 'i'),
	tensor.Int32:   entryOf[int32]("int32", 'i'),
	tensor.Int64:   entryOf[int64]("int64", 'i'),
	tensor.Uint8:   entryOf[uint8]("uint8", 'u'),
	tensor.Uint16:  entryOf[uint16]("uint16", 'u'),
	tensor.Uint32:  entryOf[uint32]("uint32", 'u'),
	tensor.Uint64:  entryOf[uint64]("uint64", 'u'),
}

// Reverse indexes, derived from tagTable.
var (
	tagsByName    = make(map[string]Tag, len(tagTable))
	tagsByTypestr = make(map[string]Tag, len(tagTable))
)

// nativeOrder is the array-interface byte order character of this machine.
var nativeOrder = detectOrder()

func init() {
	for _, e := range tagTable {
		tagsByName[e.tag.Name] = e.tag
		tagsByTypestr[e.tag.Typestr()] = e.tag
	}
}

func detectOrder() byte {
	x := uint16(1)
	if *(*byte)(unsafe.Pointer(&x)) == 1 {
		return '<'
	}
	return '>'
}

func entryOf[T tensor.Numeric](name string, kind byte) tagEntry {
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	at := func(b []byte, i int) *T {
		//nolint:gosec // index validated by the View accessors
		return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(b)), i*size))
	}
	return tagEntry{
		tag: Tag{
			DType:    tensor.DataTypeOf[T](),
			Name:     name,
			Kind:     kind,
			ItemSize: size,
		},
		getFloat: func(b []byte, i int) float64 { return float64(*at(b, i)) },
		setFloat: func(b []byte, i int, x float64) { *at(b, i) = T(x) },
		getInt:   func(b []byte, i int) int64 { return int64(*at(b, i)) },
		setInt:   func(b []byte, i int, x int64) { *at(b, i) = T(x) },
	}
}

// TagOf returns the tag for a native data type.
func TagOf(dt tensor.DataType) (Tag, bool) {
	if !dt.Valid() {
		return Tag{}, false
	}
	return tagTable[dt].tag, true
}

// TagFor returns the tag for the element type T.
func TagFor[T tensor.Numeric]() Tag {
	return tagTable[tensor.DataTypeOf[T]()].tag
}

// TagByName looks a tag up by its runtime-facing name.
func TagByName(name string) (Tag, bool) {
	t, ok := tagsByName[name]
	return t, ok
}

// TagByTypestr looks a tag up by its array-interface type string.
func TagByTypestr(typestr string) (Tag, bool) {
	t, ok := tagsByTypestr[typestr]
	return t, ok
}

// Tags returns every supported tag in DataType order.
func Tags() []Tag {
	tags := make([]Tag, 0, len(tagTable))
	for _, e := range tagTable {
		tags = append(tags, e.tag)
	}
	return tags
}

func entryFor(t Tag) *tagEntry {
	return &tagTable[t.DType]
}
