package svd_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/modekit/modekit/svd"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Factor a 3×2 matrix whose columns are already orthogonal, so the
//	singular values are the column norms and come back sorted descending.
//
// Options:
//   - WithRank(2) (keep both directions instead of the automatic cut-off)
//
// Use case:
//
//	Building a fixed-size projection basis before a decomposition.
func ExampleNew() {
	dm := mat.NewDense(3, 2, []float64{
		3, 0,
		0, 4,
		0, 0,
	})

	s, err := svd.New(dm, svd.WithRank(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("rank=%d\n", s.Rank())
	fmt.Printf("singular values=%.0f\n", s.S())
	// Output:
	// rank=2
	// singular values=[4 3]
}
