// SPDX-License-Identifier: MIT

package leading_test

import (
	"fmt"

	"github.com/katalvlaran/ntwrk/leading"
)

// ExampleMinimalDistance leads C major into B diminished.
func ExampleMinimalDistance() {
	res, err := leading.MinimalDistance([]int{0, 4, 7}, []int{11, 2, 5})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cost=%.0f leading=%v\n", res.Cost, res.Leading)
	// Output:
	// cost=3 leading=[-1 2 5]
}
