// Command exchange runs the exchange-sort micro-benchmark: it prints
// the canonical sequence, sorts it in place, prints it again, and
// reports the work performed.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/katalvlaran/lvlbench/dataset"
	"github.com/katalvlaran/lvlbench/exchange"
	"github.com/katalvlaran/lvlbench/hostinfo"
)

func main() {
	fmt.Println(hostinfo.Summary())

	seq := dataset.Sequence()
	printSequence(seq)

	start := time.Now()
	st := exchange.SortWithStats(seq)
	elapsed := time.Since(start)

	printSequence(seq)

	if !exchange.IsSorted(seq) { // impossible for a correct kernel; fail loudly if it ever regresses
		log.Fatal("exchange: output is not sorted")
	}
	fmt.Printf("comparisons=%d swaps=%d elapsed=%s\n", st.Comparisons, st.Swaps, elapsed)
}

// printSequence writes seq as space-separated decimal on a single line.
func printSequence(seq []uint32) {
	for _, v := range seq {
		fmt.Printf("%d ", v)
	}
	fmt.Println()
}
