// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the native dense vector and matrix types of arrayview.
//
// # Overview
//
// Vector[T] and Matrix[T] are contiguous buffers of a fixed numeric element
// type. They either own their storage or alias memory owned elsewhere, for
// example an array created by a script runtime.
//
// # Basic Usage
//
//	v := tensor.VectorOf[float32](1, 2, 3)
//	m := tensor.NewMatrix[float64](2, 3) // row-major, zeroed
//
//	data := []int32{1, 2, 3, 4}
//	w := tensor.WrapVector(data) // no copy, w.OwnsData() == false
//
// # Supported Data Types
//
//   - float32, float64
//   - int8, int16, int32, int64
//   - uint8, uint16, uint32, uint64
package tensor
