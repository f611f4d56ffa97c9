package array

import (
	"fmt"
	"unsafe"
)

// Array is a dense, row-major, fixed-shape numeric array.
// It is the result container for sampler output: a flat buffer plus
// shape, strides, and runtime type information. Arrays do not carry
// compute capabilities of their own.
type Array struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
}

// New creates a zero-initialized Array with the given shape and type.
func New(shape Shape, dtype DataType) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	byteSize := shape.NumElements() * dtype.Size()
	return &Array{
		data:   make([]byte, byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// FromSlice creates an Array from a Go slice.
// The slice is copied into the array's memory.
func FromSlice[T DType](data []T, shape Shape) (*Array, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	a, err := New(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}
	copy(DataOf[T](a), data)
	return a, nil
}

// Zeros creates an Array of the given element type filled with zeros.
func Zeros[T DType](shape Shape) (*Array, error) {
	var dummy T
	return New(shape, inferDataType(dummy))
}

// Full creates an Array filled with a specific value.
func Full[T DType](shape Shape, value T) (*Array, error) {
	a, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	data := DataOf[T](a)
	for i := range data {
		data[i] = value
	}
	return a, nil
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns the array's memory strides.
func (a *Array) Strides() []int {
	return a.stride
}

// DType returns the array's data type.
func (a *Array) DType() DataType {
	return a.dtype
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (a *Array) ByteSize() int {
	return len(a.data)
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (a *Array) Data() []byte {
	return a.data
}

// AsFloat32 interprets the data as []float32.
// Panics if the array's dtype is not Float32.
func (a *Array) AsFloat32() []float32 {
	if a.dtype != Float32 {
		panic(fmt.Sprintf("array dtype is %s, not float32", a.dtype))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the array's dtype is not Float64.
func (a *Array) AsFloat64() []float64 {
	if a.dtype != Float64 {
		panic(fmt.Sprintf("array dtype is %s, not float64", a.dtype))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the array's dtype is not Int64.
func (a *Array) AsInt64() []int64 {
	if a.dtype != Int64 {
		panic(fmt.Sprintf("array dtype is %s, not int64", a.dtype))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

// AsBool interprets the data as []bool.
// Panics if the array's dtype is not Bool.
func (a *Array) AsBool() []bool {
	if a.dtype != Bool {
		panic(fmt.Sprintf("array dtype is %s, not bool", a.dtype))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

// DataOf returns a typed slice view of the array's data.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the array.
func DataOf[T DType](a *Array) []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(a.AsFloat32()).([]T)
	case float64:
		return any(a.AsFloat64()).([]T)
	case int64:
		return any(a.AsInt64()).([]T)
	case bool:
		return any(a.AsBool()).([]T)
	default:
		panic("unsupported type")
	}
}

// Item returns the scalar value of a 0-D array.
// Panics if the array is not a scalar.
func Item[T DType](a *Array) T {
	if len(a.shape) != 0 || a.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for scalar arrays, got shape %v", a.shape))
	}
	return DataOf[T](a)[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func At[T DType](a *Array, indices ...int) T {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i]))
		}
		offset += idx * a.stride[i]
	}
	return DataOf[T](a)[offset]
}

// Clone creates a deep copy of the array.
func (a *Array) Clone() *Array {
	clone := &Array{
		data:   make([]byte, len(a.data)),
		shape:  a.shape.Clone(),
		stride: append([]int(nil), a.stride...),
		dtype:  a.dtype,
	}
	copy(clone.data, a.data)
	return clone
}

// String returns a human-readable representation of the array.
func (a *Array) String() string {
	return fmt.Sprintf("Array[%s]%v", a.dtype, a.shape)
}
