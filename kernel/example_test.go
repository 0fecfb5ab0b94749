package kernel_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/huyuxiang/probability/kernel"
)

// ExampleSymMatrix builds the 3×3 covariance matrix of an RBF kernel over
// three 1-d index points and prints two characteristic entries.
func ExampleSymMatrix() {
	k, err := kernel.NewExponentiatedQuadratic(1, 1, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	x := mat.NewDense(3, 1, []float64{-1, 0, 1})
	c, err := kernel.SymMatrix(k, x)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("diag:      %.4f\n", c.At(0, 0))
	fmt.Printf("neighbors: %.4f\n", c.At(0, 1))
	fmt.Printf("far pair:  %.4f\n", c.At(0, 2))
	// Output:
	// diag:      1.0000
	// neighbors: 0.6065
	// far pair:  0.1353
}

// ExampleNewSum composes a smooth trend kernel with white observation noise,
// the standard "signal + noise" GP prior.
func ExampleNewSum() {
	trend, _ := kernel.NewMatern52(1, 2, 1)
	noise, _ := kernel.NewWhite(0.01, 1)

	k, err := kernel.NewSum(trend, noise)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	same := k.Cov([]float64{0}, []float64{0})
	apart := k.Cov([]float64{0}, []float64{1})
	fmt.Printf("k(x,x) = %.4f\n", same)
	fmt.Printf("k(x,y) = %.4f\n", apart)
	// Output:
	// k(x,x) = 1.0100
	// k(x,y) = 0.8286
}
