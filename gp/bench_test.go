package gp_test

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/huyuxiang/probability/gp"
	"github.com/huyuxiang/probability/kernel"
)

// linspacePoints builds n evenly spaced 1-d index points on [-1, 1].
func linspacePoints(n int) *mat.Dense {
	x := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, -1+2*float64(i)/float64(n-1))
	}

	return x
}

// benchmarkNew times full construction (kernel matrix + Cholesky) at size n.
func benchmarkNew(b *testing.B, n int) {
	k, err := kernel.NewExponentiatedQuadratic(1, 1, 1)
	if err != nil {
		b.Fatalf("kernel: %v", err)
	}
	x := linspacePoints(n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = gp.New(k, x); err != nil {
			b.Fatalf("gp.New failed: %v", err)
		}
	}
}

// BenchmarkNew_Small constructs the marginal at 16 index points.
func BenchmarkNew_Small(b *testing.B) { benchmarkNew(b, 16) }

// BenchmarkNew_Medium constructs the marginal at 128 index points.
func BenchmarkNew_Medium(b *testing.B) { benchmarkNew(b, 128) }

// BenchmarkNew_Large constructs the marginal at 512 index points.
func BenchmarkNew_Large(b *testing.B) { benchmarkNew(b, 512) }

// BenchmarkLogProb times density evaluation at 128 points, construction
// excluded.
func BenchmarkLogProb(b *testing.B) {
	k, err := kernel.NewExponentiatedQuadratic(1, 1, 1)
	if err != nil {
		b.Fatalf("kernel: %v", err)
	}
	g, err := gp.New(k, linspacePoints(128), gp.WithRandSource(rand.NewSource(1)))
	if err != nil {
		b.Fatalf("gp.New: %v", err)
	}
	v := g.Rand(nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = g.LogProb(v); err != nil {
			b.Fatalf("LogProb failed: %v", err)
		}
	}
}

// BenchmarkRand times one joint draw at 128 points into a reused buffer.
func BenchmarkRand(b *testing.B) {
	k, err := kernel.NewExponentiatedQuadratic(1, 1, 1)
	if err != nil {
		b.Fatalf("kernel: %v", err)
	}
	g, err := gp.New(k, linspacePoints(128), gp.WithRandSource(rand.NewSource(1)))
	if err != nil {
		b.Fatalf("gp.New: %v", err)
	}
	dst := make([]float64, g.EventSize())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Rand(dst)
	}
}
