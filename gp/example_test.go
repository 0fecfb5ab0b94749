package gp_test

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/huyuxiang/probability/gp"
	"github.com/huyuxiang/probability/kernel"
)

// ExampleNew builds the GP marginal of an RBF prior at three 1-d index
// points and inspects its multivariate-normal parameterization.
func ExampleNew() {
	k, err := kernel.NewExponentiatedQuadratic(1, 1, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	x := mat.NewDense(3, 1, []float64{-1, 0, 1})
	g, err := gp.New(k, x)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	cov := g.CovarianceMatrix()
	fmt.Printf("event size: %d\n", g.EventSize())
	fmt.Printf("mean:       %v\n", g.Mean())
	fmt.Printf("cov(-1,1):  %.4f\n", cov.At(0, 2))
	// Output:
	// event size: 3
	// mean:       [0 0 0]
	// cov(-1,1):  0.1353
}

// ExampleGaussianProcess_SampleN draws joint samples from a GP prior with a
// fixed source, the reproducible-experiment setup.
func ExampleGaussianProcess_SampleN() {
	k, err := kernel.NewMatern52(1, 1, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	x := mat.NewDense(4, 1, []float64{0, 0.5, 1, 1.5})
	g, err := gp.New(k, x, gp.WithRandSource(rand.NewSource(1)))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	draws, err := g.SampleN(10)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	r, c := draws.Dims()
	fmt.Printf("draws: %d joint samples of dimension %d\n", r, c)
	// Output:
	// draws: 10 joint samples of dimension 4
}

// ExampleAddDiagonalShift stabilizes a symmetric matrix before factorization.
func ExampleAddDiagonalShift() {
	m := mat.NewDense(2, 2, []float64{
		1, 0.999,
		0.999, 1,
	})

	s, err := gp.AddDiagonalShift(m, 1e-6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("diag:     %.6f\n", s.At(0, 0))
	fmt.Printf("off-diag: %.6f\n", s.At(0, 1))
	// Output:
	// diag:     1.000001
	// off-diag: 0.999000
}
