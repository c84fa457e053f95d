package tensor

import (
	"testing"
	"unsafe"
)

func TestAllocBytesIsAligned(t *testing.T) {
	for _, size := range []int{1, 3, 8, 17, 1024} {
		b := AllocBytes(size)
		if len(b) != size {
			t.Errorf("AllocBytes(%d) length = %d", size, len(b))
		}
		if !IsAligned(unsafe.Pointer(&b[0]), Float64) {
			t.Errorf("AllocBytes(%d) is not 8-byte aligned", size)
		}
	}

	if b := AllocBytes(0); b == nil || len(b) != 0 {
		t.Errorf("AllocBytes(0) = %v, want empty non-nil slice", b)
	}
}

func TestBytesOfIsZeroCopy(t *testing.T) {
	data := []uint16{0x0102, 0x0304}
	b := BytesOf(data)

	if len(b) != 4 {
		t.Fatalf("BytesOf length = %d, want 4", len(b))
	}
	if unsafe.Pointer(&b[0]) != unsafe.Pointer(&data[0]) {
		t.Error("BytesOf should alias the element storage")
	}

	b[0], b[1] = 0xff, 0xff
	if data[0] != 0xffff {
		t.Errorf("write through bytes not visible: data[0] = %#x", data[0])
	}
}

func TestBytesOfEmpty(t *testing.T) {
	if b := BytesOf[float32](nil); len(b) != 0 {
		t.Errorf("BytesOf(nil) length = %d", len(b))
	}
}

func TestReinterpret(t *testing.T) {
	raw := AllocBytes(16)
	xs, err := Reinterpret[float32](raw)
	if err != nil {
		t.Fatalf("Reinterpret failed: %v", err)
	}
	if len(xs) != 4 {
		t.Fatalf("Reinterpret length = %d, want 4", len(xs))
	}

	xs[3] = 1
	back, _ := Reinterpret[float32](raw)
	if back[3] != 1 {
		t.Error("Reinterpret should return zero-copy slice")
	}
}

func TestReinterpretErrors(t *testing.T) {
	if _, err := Reinterpret[int32](AllocBytes(6)); err == nil {
		t.Error("expected error for partial element")
	}

	raw := AllocBytes(17)
	if _, err := Reinterpret[int64](raw[1:]); err == nil {
		t.Error("expected error for misaligned buffer")
	}

	// Single-byte types have no alignment requirement.
	if _, err := Reinterpret[uint8](raw[1:]); err != nil {
		t.Errorf("uint8 reinterpret failed: %v", err)
	}
}
