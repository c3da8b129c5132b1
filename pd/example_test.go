// File: pd/example_test.go
package pd_test

import (
	"fmt"

	"github.com/katalvlaran/arrowpoly/pd"
	"github.com/katalvlaran/arrowpoly/ring"
)

////////////////////////////////////////////////////////////////////////////////
// Example: virtual trefoil
////////////////////////////////////////////////////////////////////////////////

// ExampleDiagram_ArrowPolynomial computes the arrow polynomial of the
// virtual trefoil (Gauss code O1-O2-U1-U2-).
// Scenario:
//
//   - Two negative crossings, labels clockwise from the end of the over-strand.
//   - Four states; two of them keep a pair of cusps on one loop, which
//     survives as K₁.
//
// Complexity: O(2ⁿ·n³) with n = 2.
func ExampleDiagram_ArrowPolynomial() {
	crossings := []pd.Crossing{
		{Handedness: pd.Negative, Labels: [4]int{1, 3, 0, 2}},
		{Handedness: pd.Negative, Labels: [4]int{2, 0, 1, 3}},
	}
	d, err := pd.NewDiagram[ring.Poly](ring.NewLaurent(), crossings)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, s := range d.States() {
		fmt.Println(i, s, d.Profiles()[i])
	}
	fmt.Println("writhe:", d.Writhe())
	fmt.Println(d.ArrowPolynomial())

	// Output:
	// 0 A^2, < [ false | 2, 2 ] [ true | 3, 1 ] [ true | 3, 1 ] > [2 1]
	// 1 1, < [ true | 3, 1 ] [ true | 3, 1 ] > [1 1]
	// 2 1, < [ true | 0, 2 ] [ true | 0, 2 ] > [1 1]
	// 3 A^-2, < [ false | 2, 2 ] > [1]
	// writhe: -2
	// A^4 - A^10 K_1 + A^6 K_1
}
