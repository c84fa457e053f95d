package tensor

import "testing"

func TestDataTypeSizes(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
		name  string
	}{
		{Float32, 4, "float32"},
		{Float64, 8, "float64"},
		{Int8, 1, "int8"},
		{Int16, 2, "int16"},
		{Int32, 4, "int32"},
		{Int64, 8, "int64"},
		{Uint8, 1, "uint8"},
		{Uint16, 2, "uint16"},
		{Uint32, 4, "uint32"},
		{Uint64, 8, "uint64"},
	}
	if len(tests) != NumDataTypes {
		t.Fatalf("table covers %d types, want %d", len(tests), NumDataTypes)
	}
	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.name, got, tt.size)
		}
		if got := tt.dtype.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if !tt.dtype.Valid() {
			t.Errorf("%s should be valid", tt.name)
		}
	}
}

func TestDataTypeOf(t *testing.T) {
	if DataTypeOf[float32]() != Float32 {
		t.Error("float32")
	}
	if DataTypeOf[uint16]() != Uint16 {
		t.Error("uint16")
	}
	if DataTypeOf[int64]() != Int64 {
		t.Error("int64")
	}
}

func TestDataTypeClassification(t *testing.T) {
	if !Float64.IsFloat() || Int32.IsFloat() {
		t.Error("IsFloat")
	}
	if !Int8.IsSigned() || Uint8.IsSigned() || !Float32.IsSigned() {
		t.Error("IsSigned")
	}
	if DataType(-1).Valid() || DataType(NumDataTypes).Valid() {
		t.Error("Valid accepted out-of-range type")
	}
	if DataType(42).String() != "unknown" {
		t.Error("String of unknown type")
	}
}
