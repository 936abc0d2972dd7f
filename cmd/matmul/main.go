// Command matmul runs the matrix-multiplication micro-benchmark: it
// multiplies the two canonical 10×10 matrices and prints the product,
// first as a decimal block, then (after a blank line) as a hexadecimal
// block, one line per row.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/katalvlaran/lvlbench/dataset"
	"github.com/katalvlaran/lvlbench/hostinfo"
	"github.com/katalvlaran/lvlbench/matrix"
)

func main() {
	fmt.Println(hostinfo.Summary())

	a, b := dataset.MatrixA(), dataset.MatrixB()

	start := time.Now()
	c, err := matrix.Mul(a, b)
	elapsed := time.Since(start)
	if err != nil {
		// The fixed dataset cannot mismatch; guard against regressions anyway.
		log.Fatalf("matmul: %v", err)
	}

	printBlock(c, "%8d ")
	fmt.Println()
	printBlock(c, "%8x ")

	fmt.Printf("elapsed=%s\n", elapsed)
}

// printBlock writes m one row per line, each entry formatted with verb.
func printBlock(m *matrix.Dense, verb string) {
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			log.Fatalf("matmul: %v", err)
		}
		for _, v := range row {
			fmt.Printf(verb, v)
		}
		fmt.Println()
	}
}
