package search_test

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/builder"
	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/search"
)

// ExampleEngine_Step drives a uniform-cost search over a unit-weight
// chain one step at a time, the way a visualizer would: print each
// step's summary, then the reconstructed path.
func ExampleEngine_Step() {
	g, err := builder.Build(
		[]builder.Option{builder.WithSeed(1), builder.WithWeightRange(1, 1)},
		builder.Chain(4),
	)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	eng, err := search.NewUCS(g)
	if err != nil {
		fmt.Println("engine:", err)
		return
	}
	_ = eng.SetStart(0)
	_ = eng.SetGoal(3)

	for !eng.Status().Terminal() {
		rep, _ := eng.Step()
		fmt.Println(rep.Message)
	}
	fmt.Println(eng.Path())
	// Output:
	// expanded node 0 (g=0): updated 1 neighbors
	// expanded node 1 (g=1): updated 1 neighbors
	// expanded node 2 (g=2): updated 1 neighbors
	// goal found: node 3, total cost 3
	// [0 1 2 3]
}

// ExampleEngine_FrontierSnapshot shows the priority-list display feed:
// after one expansion the frontier holds the cheap detour node before
// the expensive direct neighbor.
func ExampleEngine_FrontierSnapshot() {
	g := core.NewGraph()
	_ = g.AddNode(0, 0, 0)
	_ = g.AddNode(1, 30, 0)
	_ = g.AddNode(2, 15, 0)
	_ = g.AddEdge(0, 1, 10)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 1)

	eng, err := search.NewUCS(g)
	if err != nil {
		fmt.Println("engine:", err)
		return
	}
	_ = eng.SetStart(0)
	_ = eng.SetGoal(1)

	fmt.Println(eng.FrontierSnapshot()) // seeded with the start
	_, _ = eng.Step()
	fmt.Println(eng.FrontierSnapshot()) // cost order: node 2 (g=1) first

	rep := last(eng)
	fmt.Println(rep.Message)
	// Output:
	// [0]
	// [2 1]
	// goal found: node 1, total cost 2
}

// last steps the engine to its terminal report.
func last(eng *search.Engine) search.StepReport {
	var rep search.StepReport
	for !eng.Status().Terminal() {
		rep, _ = eng.Step()
	}

	return rep
}
