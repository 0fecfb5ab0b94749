package gp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/huyuxiang/probability/gp"
)

// TestAddDiagonalShift_DiagonalOnly verifies the stabilizer touches exactly
// the diagonal: out[i][i] == in[i][i] + shift, all other entries unchanged.
func TestAddDiagonalShift_DiagonalOnly(t *testing.T) {
	in := mat.NewDense(3, 3, []float64{
		1.0, 0.5, 0.2,
		0.5, 1.0, 0.5,
		0.2, 0.5, 1.0,
	})
	const shift = 1e-6

	out, err := gp.AddDiagonalShift(in, shift)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				assert.Equal(t, in.At(i, j)+shift, out.At(i, j), "diagonal (%d,%d) must carry the shift", i, j)
			} else {
				assert.Equal(t, in.At(i, j), out.At(i, j), "off-diagonal (%d,%d) must be untouched", i, j)
			}
		}
	}
}

// TestAddDiagonalShift_NoMutation verifies the input matrix is never written.
func TestAddDiagonalShift_NoMutation(t *testing.T) {
	in := mat.NewDense(2, 2, []float64{1, 2, 2, 4})
	snapshot := mat.DenseCopyOf(in)

	_, err := gp.AddDiagonalShift(in, 3.5)
	require.NoError(t, err)
	assert.True(t, mat.Equal(snapshot, in), "AddDiagonalShift must be side-effect-free")
}

// TestAddDiagonalShift_ZeroShift verifies shift 0 is an exact copy.
func TestAddDiagonalShift_ZeroShift(t *testing.T) {
	in := mat.NewDense(2, 2, []float64{1, -2, -2, 4})

	out, err := gp.AddDiagonalShift(in, 0)
	require.NoError(t, err)
	assert.True(t, mat.Equal(in, out))
}

// TestAddDiagonalShift_NonSquare verifies ErrNonSquare on a 2×3 input.
func TestAddDiagonalShift_NonSquare(t *testing.T) {
	in := mat.NewDense(2, 3, nil)

	_, err := gp.AddDiagonalShift(in, 1)
	assert.ErrorIs(t, err, gp.ErrNonSquare)
}

// TestAddDiagonalShift_Nil verifies ErrNilMatrix on a nil input.
func TestAddDiagonalShift_Nil(t *testing.T) {
	_, err := gp.AddDiagonalShift(nil, 1)
	assert.ErrorIs(t, err, gp.ErrNilMatrix)
}
