package hodmd_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/modekit/modekit/dmd"
	"github.com/modekit/modekit/hodmd"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Decompose a travelling cosine wave sampled at 6 points over 30 snapshots.
//	A single real frequency occupies two complex modes, so the reduction and
//	the delayed decomposition both use rank 2.
//
// Options:
//   - WithDelay(4)                          (stack 4 time-shifted copies)
//   - WithRank(2)                           (projection basis size)
//   - WithDMDOptions(dmd.WithRank(2))       (rank of the delayed operator)
//
// Use case:
//
//	Extracting dynamics from data with few observation points, where plain
//	DMD is starved for spatial rank.
func ExampleNew() {
	const (
		points    = 6
		snapshots = 30
		dt        = 0.1
		freq      = 1.3
	)
	dm := mat.NewDense(points, snapshots, nil)
	for i := 0; i < points; i++ {
		for j := 0; j < snapshots; j++ {
			dm.Set(i, j, math.Cos(2*math.Pi*freq*dt*float64(j)+0.4*float64(i)))
		}
	}

	h, err := hodmd.New(dm, dt,
		hodmd.WithDelay(4),
		hodmd.WithRank(2),
		hodmd.WithDMDOptions(dmd.WithRank(2)),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	mr, mc := h.Modes().Dims()
	rr, rc := h.Reconstruction().Dims()
	fmt.Printf("delay=%d\nrank=%d\nmodes=%d×%d\nreconstruction=%d×%d\n",
		h.Delay(), h.Rank(), mr, mc, rr, rc)
	// Output:
	// delay=4
	// rank=2
	// modes=6×2
	// reconstruction=6×27
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew_validation
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two ways a construction can be rejected: a non-positive delay, and a
//	delay that leaves no columns for the embedded matrix. Both sentinels
//	carry the offending values in the message and match with errors.Is.
func ExampleNew_validation() {
	dm := mat.NewDense(4, 5, nil)

	_, err := hodmd.New(dm, 0.1, hodmd.WithDelay(0))
	fmt.Println(err)

	_, err = hodmd.New(dm, 0.1, hodmd.WithDelay(5))
	fmt.Println(err)
	// Output:
	// hodmd: the 'delay' parameter must be a positive integer. Got 0
	// hodmd: not enough snapshots for the requested delay: the number of snapshots (5) must be larger than the number of time delays (5)
}
