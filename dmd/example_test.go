package dmd_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/modekit/modekit/dmd"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A pure 1.3 Hz cosine observed at 8 points over 40 snapshots. One real
//	frequency occupies a conjugate pair of modes, so the operator has
//	exact rank 2 and the dominant frequency reads back directly.
//
// Options:
//   - WithRank(2) (the data has exactly one oscillating pair)
//
// Use case:
//
//	Recovering oscillation frequencies from clean sequential measurements.
func ExampleNew() {
	const (
		points    = 8
		snapshots = 40
		dt        = 0.1
		freq      = 1.3
	)
	dm := mat.NewDense(points, snapshots, nil)
	for i := 0; i < points; i++ {
		for j := 0; j < snapshots; j++ {
			dm.Set(i, j, math.Cos(2*math.Pi*freq*dt*float64(j)+0.5*float64(i)))
		}
	}

	d, err := dmd.New(dm, dt, dmd.WithRank(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	dominant := 0.0
	for _, f := range d.Frequencies() {
		if a := math.Abs(f); a > dominant {
			dominant = a
		}
	}
	fmt.Printf("rank=%d\nfrequency=%.1f\n", d.Rank(), dominant)
	// Output:
	// rank=2
	// frequency=1.3
}
