package linalg

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatVec tests a plain rectangular product.
func TestMatVec(t *testing.T) {
	w := [][]float64{
		{1, 2, 3},
		{-1, 0, 0.5},
	}
	p := []float64{2, 1, 4}

	out, err := MatVec(w, p)
	require.NoError(t, err)

	// Row 0: 2 + 2 + 12 = 16
	// Row 1: -2 + 0 + 2 = 0
	assert.Equal(t, []float64{16, 0}, out)
}

// TestMatVec_Errors tests every failure condition of MatVec.
func TestMatVec_Errors(t *testing.T) {
	tests := []struct {
		name    string
		w       [][]float64
		p       []float64
		wantErr error
	}{
		{"empty vector", [][]float64{{1}}, nil, ErrEmptyOperand},
		{"no rows", nil, []float64{1}, ErrEmptyOperand},
		{"short row", [][]float64{{1, 2}, {3}}, []float64{1, 1}, ErrDimensionMismatch},
		{"long row", [][]float64{{1, 2, 3}}, []float64{1, 1}, ErrDimensionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := MatVec(tt.w, tt.p)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, out, "no partial output on failure")
		})
	}
}

// TestMatVec_DimensionErrorDetails tests the row index reported on mismatch.
func TestMatVec_DimensionErrorDetails(t *testing.T) {
	_, err := MatVec([][]float64{{1, 2}, {1, 2}, {1}}, []float64{1, 1})

	var dimErr *DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, "matvec", dimErr.Op)
	assert.Equal(t, 2, dimErr.Index)
	assert.Equal(t, 1, dimErr.Got)
	assert.Equal(t, 2, dimErr.Want)
	assert.Contains(t, err.Error(), "row 2")
}

// TestDot tests the inner product and its size check.
func TestDot(t *testing.T) {
	got, err := Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.InDelta(t, 32.0, got, 1e-12)

	got, err = Dot(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = Dot([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

// TestClone tests that Clone shares no storage with its source.
func TestClone(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	dst := Clone(src)
	dst[0][0] = 99

	assert.Equal(t, 1.0, src[0][0])
	assert.Nil(t, Clone(nil))
}

// TestScaleNormalize tests the vector helpers.
func TestScaleNormalize(t *testing.T) {
	v := []float64{1, -4, 2}
	Scale(v, 0.5)
	assert.Equal(t, []float64{0.5, -2, 1}, v)

	assert.Equal(t, 2.0, MaxAbsVal(v))
	assert.Zero(t, MaxAbsVal(nil))

	Normalize(v)
	assert.Equal(t, []float64{0.25, -1, 0.5}, v)

	zeros := []float64{0, 0}
	Normalize(zeros)
	assert.Equal(t, []float64{0, 0}, zeros)
}

// TestAngleConversion tests Deg2Rad and Rad2Deg round trips.
func TestAngleConversion(t *testing.T) {
	assert.InDelta(t, math.Pi, Deg2Rad(180.0), 1e-12)
	assert.InDelta(t, 90.0, Rad2Deg(math.Pi/2), 1e-12)
	assert.InDelta(t, float32(math.Pi/2), Deg2Rad(float32(90)), 1e-6)
}
