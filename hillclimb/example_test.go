package hillclimb_test

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/hillclimb"
)

// ExampleEngine_Step climbs a 3-node ridge with scores [5,10,3] one
// stage per call, printing the sidebar message of every stage: survey,
// evaluate, move, and finally the peak classification.
func ExampleEngine_Step() {
	g := core.NewGraph()
	for i, score := range []float64{5, 10, 3} {
		_ = g.AddNode(int64(i), float64(i*100), 0)
		_ = g.SetScore(int64(i), score)
	}
	// Undirected line 0—1—2.
	for i := int64(0); i < 2; i++ {
		_ = g.AddEdge(i, i+1, 1)
		_ = g.AddEdge(i+1, i, 1)
	}

	eng, err := hillclimb.New(g)
	if err != nil {
		fmt.Println("engine:", err)
		return
	}
	_ = eng.SetStart(0)

	for !eng.Done() {
		rep, _ := eng.Step()
		fmt.Println(rep.Message)
	}
	// Output:
	// surveyed 1 neighbors of node 0
	// best move: node 1 (score 10), above current 5
	// moved to node 1 (score 10)
	// surveyed 2 neighbors of node 1
	// no neighbor is higher: standing on a peak
	// global maximum reached (score 10)
}
