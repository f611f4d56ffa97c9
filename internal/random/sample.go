package random

import (
	"fmt"
	"math/bits"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/keyfork/keyfork/internal/array"
	"github.com/keyfork/keyfork/internal/parallel"
)

// Float is a constraint for sampler output element types.
type Float interface {
	~float32 | ~float64
}

// Distribution enumerates the distributions understood by Sample.
// Samplers with extra parameters (Bernoulli, RandInt, UniformRange)
// are exposed as dedicated functions instead.
type Distribution int

// Supported distributions.
const (
	DistUniform Distribution = iota
	DistNormal
	DistExponential
)

// String returns a human-readable distribution name.
func (d Distribution) String() string {
	switch d {
	case DistUniform:
		return "uniform"
	case DistNormal:
		return "normal"
	case DistExponential:
		return "exponential"
	default:
		return "unknown"
	}
}

// newShaped allocates the output array, folding shape validation
// failures into the package error taxonomy.
func newShaped[T array.DType](shape array.Shape) (*array.Array, error) {
	out, err := array.Zeros[T](shape)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return out, nil
}

// Sample draws an array of the requested shape from the given
// distribution. It is the enum-driven entry point; the distribution
// parameters are the standard ones (uniform on [0,1), standard normal,
// exponential with unit rate). Unknown distributions are rejected with
// ErrInvalidArgument.
func Sample[T Float](key Key, dist Distribution, shape array.Shape) (*array.Array, error) {
	switch dist {
	case DistUniform:
		return Uniform[T](key, shape)
	case DistNormal:
		return Normal[T](key, shape)
	case DistExponential:
		return Exponential[T](key, shape, 1)
	default:
		return nil, fmt.Errorf("%w: unsupported distribution %d", ErrInvalidArgument, int(dist))
	}
}

// Uniform draws values uniformly from [0, 1).
//
// Like every sampler, Uniform is a pure function: the same (key, shape)
// pair yields bit-identical output on every call. A zero-element shape
// yields an empty array.
func Uniform[T Float](key Key, shape array.Shape) (*array.Array, error) {
	out, err := newShaped[T](shape)
	if err != nil {
		return nil, err
	}

	n := out.NumElements()
	cfg := parallel.DefaultConfig()

	var dummy T
	switch any(dummy).(type) {
	case float32:
		// Two float32 draws per block: one per output word.
		data := out.AsFloat32()
		parallel.ForChunks((n+1)/2, func(start, end int) {
			for i := start; i < end; i++ {
				w0, w1 := key.block(domainSample, uint64(i))
				data[2*i] = uniform24(w0)
				if 2*i+1 < n {
					data[2*i+1] = uniform24(w1)
				}
			}
		}, cfg)
	case float64:
		data := out.AsFloat64()
		parallel.ForChunks(n, func(start, end int) {
			for i := start; i < end; i++ {
				data[i] = uniform53(key.u64(uint64(i)))
			}
		}, cfg)
	default:
		panic("Uniform only supports float32 and float64")
	}
	return out, nil
}

// UniformRange draws values uniformly from [lo, hi).
// lo must not exceed hi; lo == hi yields a constant array.
func UniformRange[T Float](key Key, shape array.Shape, lo, hi T) (*array.Array, error) {
	if lo > hi {
		return nil, fmt.Errorf("%w: uniform range [%v, %v) is inverted", ErrInvalidArgument, lo, hi)
	}
	out, err := Uniform[T](key, shape)
	if err != nil {
		return nil, err
	}

	var dummy T
	switch any(dummy).(type) {
	case float32:
		data := out.AsFloat32()
		l, h := float32(lo), float32(hi)
		for i, v := range data {
			data[i] = l + (h-l)*v
		}
	case float64:
		data := out.AsFloat64()
		l, h := float64(lo), float64(hi)
		for i, v := range data {
			data[i] = l + (h-l)*v
		}
	}
	return out, nil
}

// Normal draws values from the standard normal distribution via the
// inverse CDF, so each output element is a deterministic transform of
// one counter block.
func Normal[T Float](key Key, shape array.Shape) (*array.Array, error) {
	return quantileSample[T](key, shape, distuv.UnitNormal.Quantile)
}

// Exponential draws values from the exponential distribution with the
// given rate parameter.
func Exponential[T Float](key Key, shape array.Shape, rate float64) (*array.Array, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: exponential rate must be > 0, got %v", ErrInvalidArgument, rate)
	}
	dist := distuv.Exponential{Rate: rate}
	return quantileSample[T](key, shape, dist.Quantile)
}

// quantileSample draws uniforms on (0, 1) and maps them through a
// distribution's quantile function.
func quantileSample[T Float](key Key, shape array.Shape, quantile func(float64) float64) (*array.Array, error) {
	out, err := newShaped[T](shape)
	if err != nil {
		return nil, err
	}

	n := out.NumElements()
	cfg := parallel.DefaultConfig()

	var dummy T
	switch any(dummy).(type) {
	case float32:
		data := out.AsFloat32()
		parallel.ForChunks(n, func(start, end int) {
			for i := start; i < end; i++ {
				data[i] = float32(quantile(openUnit(key.u64(uint64(i)))))
			}
		}, cfg)
	case float64:
		data := out.AsFloat64()
		parallel.ForChunks(n, func(start, end int) {
			for i := start; i < end; i++ {
				data[i] = quantile(openUnit(key.u64(uint64(i))))
			}
		}, cfg)
	default:
		panic("sampling only supports float32 and float64")
	}
	return out, nil
}

// Bernoulli draws a bool array where each element is true with
// probability p.
func Bernoulli(key Key, shape array.Shape, p float64) (*array.Array, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: probability must be in [0, 1], got %v", ErrInvalidArgument, p)
	}
	out, err := newShaped[bool](shape)
	if err != nil {
		return nil, err
	}

	data := out.AsBool()
	parallel.ForChunks(len(data), func(start, end int) {
		for i := start; i < end; i++ {
			data[i] = uniform53(key.u64(uint64(i))) < p
		}
	}, parallel.DefaultConfig())
	return out, nil
}

// RandInt draws int64 values uniformly from [lo, hi).
// Uses Lemire's multiply-shift reduction instead of modulo.
func RandInt(key Key, shape array.Shape, lo, hi int64) (*array.Array, error) {
	if hi <= lo {
		return nil, fmt.Errorf("%w: integer range [%d, %d) is empty", ErrInvalidArgument, lo, hi)
	}
	out, err := newShaped[int64](shape)
	if err != nil {
		return nil, err
	}

	span := uint64(hi) - uint64(lo)
	data := out.AsInt64()
	parallel.ForChunks(len(data), func(start, end int) {
		for i := start; i < end; i++ {
			h, _ := bits.Mul64(key.u64(uint64(i)), span)
			data[i] = lo + int64(h)
		}
	}, parallel.DefaultConfig())
	return out, nil
}

// Permutation returns a uniformly shuffled int64 array of 0..n-1,
// via a Fisher-Yates walk over the key's counter stream.
func Permutation(key Key, n int) (*array.Array, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: permutation size must be >= 0, got %d", ErrInvalidArgument, n)
	}
	out, err := newShaped[int64](array.Shape{n})
	if err != nil {
		return nil, err
	}

	data := out.AsInt64()
	for i := range data {
		data[i] = int64(i)
	}

	// The swap sequence is inherently serial; draws consume one counter
	// block each, in a fixed order.
	var ctr uint64
	for i := n - 1; i > 0; i-- {
		h, _ := bits.Mul64(key.u64(ctr), uint64(i+1))
		ctr++
		j := int(h)
		data[i], data[j] = data[j], data[i]
	}
	return out, nil
}
