package vec2d_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ctcbeam/vec2d"
)

func TestNewFillsValue(t *testing.T) {
	b := vec2d.New(3, 2, 0.25)
	require.Equal(t, 3, b.Rows())
	require.Equal(t, 2, b.Cols())
	for r := 0; r < 3; r++ {
		for c := 0; c < 2; c++ {
			require.Equal(t, 0.25, b.Get(r, c))
		}
	}
}

func TestSetGet(t *testing.T) {
	b := vec2d.New(2, 2, 0)
	b.Set(1, 0, 3.5)
	require.Equal(t, 3.5, b.Get(1, 0))
	require.Equal(t, 0.0, b.Get(0, 0))
}

func TestRowZeroCopy(t *testing.T) {
	b := vec2d.New(2, 2, 0)
	row := b.Row(0)
	row[1] = 9.0
	require.Equal(t, 9.0, b.Get(0, 1))
}

func TestSwapRows(t *testing.T) {
	b := vec2d.New(2, 2, 0)
	b.Set(0, 0, 1)
	b.Set(0, 1, 2)
	b.Set(1, 0, 3)
	b.Set(1, 1, 4)

	b.SwapRows(0, 1)
	require.Equal(t, 3.0, b.Get(0, 0))
	require.Equal(t, 4.0, b.Get(0, 1))
	require.Equal(t, 1.0, b.Get(1, 0))
	require.Equal(t, 2.0, b.Get(1, 1))
}

func TestReset(t *testing.T) {
	b := vec2d.New(2, 2, 1)
	b.Set(0, 0, 99)
	b.Reset(0.5)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			require.Equal(t, 0.5, b.Get(r, c))
		}
	}
}

func TestGetSetOutOfBoundsPanics(t *testing.T) {
	b := vec2d.New(1, 1, 0)
	require.Panics(t, func() { b.Get(5, 0) })
	require.Panics(t, func() { b.Set(0, -1, 1) })
	require.Panics(t, func() { b.Row(2) })
	require.Panics(t, func() { b.SwapRows(0, 9) })
}
