// Copyright 2025 The Keyfork Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the public API for the shaped numeric arrays
// returned by the keyfork samplers.
//
// An Array is a dense, row-major buffer plus shape and runtime type
// information. It is a result container, not a compute engine: there is
// no broadcasting, no op dispatch, and no device abstraction.
//
// Example:
//
//	a, _ := array.FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
//	v := array.At[float64](a, 1, 2) // 6
package array

import (
	"github.com/keyfork/keyfork/internal/array"
)

// DType is a constraint for array element types.
// Supported types: float32, float64, int64, bool.
type DType = array.DType

// DataType represents the underlying element type of an array.
type DataType = array.DataType

// Element type constants.
const (
	Float32 DataType = array.Float32
	Float64 DataType = array.Float64
	Int64   DataType = array.Int64
	Bool    DataType = array.Bool
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3-D array with extents 2×3×4;
// Shape{} is a scalar and a zero extent yields an empty array.
type Shape = array.Shape

// Array is a dense, fixed-shape numeric array.
type Array = array.Array

// New creates a zero-initialized Array with the given shape and type.
func New(shape Shape, dtype DataType) (*Array, error) {
	return array.New(shape, dtype)
}

// FromSlice creates an Array from a Go slice.
// The slice is copied into the array's memory.
//
// Example:
//
//	a, err := array.FromSlice([]float32{1, 2, 3}, array.Shape{3})
func FromSlice[T DType](data []T, shape Shape) (*Array, error) {
	return array.FromSlice(data, shape)
}

// Zeros creates an Array of the given element type filled with zeros.
func Zeros[T DType](shape Shape) (*Array, error) {
	return array.Zeros[T](shape)
}

// Full creates an Array filled with a specific value.
func Full[T DType](shape Shape, value T) (*Array, error) {
	return array.Full(shape, value)
}

// DataOf returns a typed slice view of the array's data (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the array.
func DataOf[T DType](a *Array) []T {
	return array.DataOf[T](a)
}

// Item returns the scalar value of a 0-D array.
// Panics if the array is not a scalar.
func Item[T DType](a *Array) T {
	return array.Item[T](a)
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func At[T DType](a *Array, indices ...int) T {
	return array.At[T](a, indices...)
}
