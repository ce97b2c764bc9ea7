package partition_test

import (
	"fmt"

	"github.com/katalvlaran/crout/partition"
)

// ExamplePairs balances 45 pairs of 10 entities over 4 workers.
func ExamplePairs() {
	ranges, _ := partition.Pairs(10, partition.WithThreads(4), partition.WithMinConcurrent(0))
	for _, r := range ranges {
		fmt.Println(r)
	}

	// Output:
	// [0,2) pairs=17
	// [2,4) pairs=13
	// [4,7) pairs=12
	// [7,10) pairs=3
}

// ExampleEven splits 10 jobs over 3 workers.
func ExampleEven() {
	ranges, _ := partition.Even(10, 3)
	for _, r := range ranges {
		fmt.Println(r.Start, r.End)
	}

	// Output:
	// 0 4
	// 4 7
	// 7 10
}
