package pairlist_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/neighborgo/cell"
	"github.com/hupe1980/neighborgo/pairlist"
)

func ExampleNeighbors() {
	cfg := pairlist.Config{
		Positions: [][3]float64{{0, 0, 0}, {0, 0, 2}},
		Cell:      cell.Cell{{10, 0, 0}, {0, 10, 0}, {0, 0, 10}},
	}

	lst, err := pairlist.Neighbors("ijd", cfg, pairlist.Scalar(3.0))
	if err != nil {
		log.Fatal(err)
	}
	for k := 0; k < lst.Len(); k++ {
		fmt.Printf("%d %d %.1f\n", lst.First[k], lst.Second[k], lst.Distances[k])
	}

	// Output:
	// 0 1 2.0
	// 1 0 2.0
}
