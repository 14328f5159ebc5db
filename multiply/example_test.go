package multiply_test

import (
	"fmt"

	"github.com/katalvlaran/mmbench/matrix"
	"github.com/katalvlaran/mmbench/multiply"
)

func ExampleEngine_Multiply() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}})

	eng := multiply.New(multiply.WithLeafThreshold(1))
	for _, alg := range multiply.Algorithms() {
		c, err := eng.Multiply(a, b, alg)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%-9s %v\n", alg, c.RawData())
	}

	// Output:
	// naive     [19 22 43 50]
	// blocked   [19 22 43 50]
	// strassen  [19 22 43 50]
	// reference [19 22 43 50]
}
