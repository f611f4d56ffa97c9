package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFori(t *testing.T) {
	sum := Fori(0, 10, func(i int, carry int) int {
		return carry + i
	}, 0)
	assert.Equal(t, 45, sum)
}

func TestForiEmptyRange(t *testing.T) {
	got := Fori(5, 5, func(_ int, carry string) string {
		return carry + "x"
	}, "init")
	assert.Equal(t, "init", got)
}

func TestForiStructCarry(t *testing.T) {
	type carry struct {
		evens, odds int
	}
	got := Fori(0, 100, func(i int, c carry) carry {
		if i%2 == 0 {
			c.evens++
		} else {
			c.odds++
		}
		return c
	}, carry{})
	assert.Equal(t, carry{evens: 50, odds: 50}, got)
}

func TestWhile(t *testing.T) {
	got := While(
		func(c int) bool { return c < 100 },
		func(c int) int { return c * 2 },
		3,
	)
	assert.Equal(t, 192, got)
}

func TestWhileConditionFalseInitially(t *testing.T) {
	got := While(
		func(c int) bool { return c < 0 },
		func(c int) int { return c - 1 },
		7,
	)
	assert.Equal(t, 7, got)
}

func TestWhileN(t *testing.T) {
	got, err := WhileN(
		func(c int) bool { return c < 100 },
		func(c int) int { return c * 2 },
		3, 10,
	)
	require.NoError(t, err)
	assert.Equal(t, 192, got)
}

func TestWhileNCapExceeded(t *testing.T) {
	got, err := WhileN(
		func(c int) bool { return true },
		func(c int) int { return c + 1 },
		0, 5,
	)
	assert.ErrorIs(t, err, ErrIterationCap)
	assert.Equal(t, 5, got)
}

func TestWhileNExactCap(t *testing.T) {
	// Condition turns false precisely at the cap boundary.
	got, err := WhileN(
		func(c int) bool { return c < 5 },
		func(c int) int { return c + 1 },
		0, 5,
	)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestScan(t *testing.T) {
	final, prefix := Scan(func(carry int, x int) (int, int) {
		next := carry + x
		return next, next
	}, 0, []int{1, 2, 3, 4})

	assert.Equal(t, 10, final)
	assert.Equal(t, []int{1, 3, 6, 10}, prefix)
}

func TestScanEmptyInput(t *testing.T) {
	final, ys := Scan(func(carry int, x int) (int, string) {
		return carry, "y"
	}, 42, nil)

	assert.Equal(t, 42, final)
	assert.Empty(t, ys)
}

func TestScanDistinctTypes(t *testing.T) {
	final, lengths := Scan(func(carry string, x string) (string, int) {
		joined := carry + x
		return joined, len(joined)
	}, "", []string{"a", "bc", "def"})

	assert.Equal(t, "abcdef", final)
	assert.Equal(t, []int{1, 3, 6}, lengths)
}
