// Package core_test contains unit tests for the Graph model: node and
// edge insertion, validation errors, neighbor ordering, and scores.
package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/stepsearch/core"
)

func TestAddNode_Validation(t *testing.T) {
	g := core.NewGraph()

	if err := g.AddNode(-1, 0, 0); !errors.Is(err, core.ErrNegativeID) {
		t.Errorf("AddNode(-1) error = %v; want ErrNegativeID", err)
	}
	if err := g.AddNode(3, 10, 20); err != nil {
		t.Fatalf("AddNode(3) unexpected error: %v", err)
	}
	if err := g.AddNode(3, 0, 0); !errors.Is(err, core.ErrDuplicateNode) {
		t.Errorf("duplicate AddNode(3) error = %v; want ErrDuplicateNode", err)
	}

	n, err := g.Node(3)
	if err != nil {
		t.Fatalf("Node(3) error: %v", err)
	}
	if n.X != 10 || n.Y != 20 {
		t.Errorf("Node(3) position = (%g,%g); want (10,20)", n.X, n.Y)
	}
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddNode(0, 0, 0)
	_ = g.AddNode(1, 1, 0)

	cases := []struct {
		name     string
		from, to int64
		weight   float64
		err      error
	}{
		{"UnknownFrom", 9, 1, 1, core.ErrNodeNotFound},
		{"UnknownTo", 0, 9, 1, core.ErrNodeNotFound},
		{"NegativeWeight", 0, 1, -2, core.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := g.AddEdge(tc.from, tc.to, tc.weight); !errors.Is(err, tc.err) {
				t.Errorf("AddEdge(%d,%d,%g) error = %v; want %v", tc.from, tc.to, tc.weight, err, tc.err)
			}
		})
	}

	// Failed AddEdge calls must not leave partial adjacency behind.
	arcs, err := g.Neighbors(0)
	if err != nil {
		t.Fatalf("Neighbors(0) error: %v", err)
	}
	if len(arcs) != 0 {
		t.Errorf("Neighbors(0) = %v; want empty after rejected edges", arcs)
	}
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for id := int64(0); id < 4; id++ {
		_ = g.AddNode(id, float64(id), 0)
	}
	// Deliberately insert out of id order; iteration must follow insertion.
	_ = g.AddEdge(0, 3, 7)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(0, 2, 5)

	arcs, err := g.Neighbors(0)
	if err != nil {
		t.Fatalf("Neighbors(0) error: %v", err)
	}
	want := []core.Arc{{To: 3, Weight: 7}, {To: 1, Weight: 2}, {To: 2, Weight: 5}}
	if len(arcs) != len(want) {
		t.Fatalf("Neighbors(0) length = %d; want %d", len(arcs), len(want))
	}
	for i := range want {
		if arcs[i] != want[i] {
			t.Errorf("Neighbors(0)[%d] = %+v; want %+v", i, arcs[i], want[i])
		}
	}

	if _, err = g.Neighbors(42); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("Neighbors(42) error = %v; want ErrNodeNotFound", err)
	}
}

func TestNodes_SortedAndCounts(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []int64{5, 1, 3} {
		_ = g.AddNode(id, 0, 0)
	}
	_ = g.AddEdge(5, 1, 0)
	_ = g.AddEdge(1, 3, 0)

	ids := g.Nodes()
	want := []int64{1, 3, 5}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("Nodes() = %v; want %v", ids, want)
		}
	}
	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d; want 3", g.NodeCount())
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d; want 2", g.EdgeCount())
	}
}

func TestScores(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddNode(0, 0, 0)
	_ = g.AddNode(1, 0, 0)

	if err := g.SetScore(7, 1); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("SetScore(7) error = %v; want ErrNodeNotFound", err)
	}
	if err := g.SetScore(0, 42); err != nil {
		t.Fatalf("SetScore(0) error: %v", err)
	}
	if err := g.SetScore(1, 17); err != nil {
		t.Fatalf("SetScore(1) error: %v", err)
	}

	n, _ := g.Node(0)
	if n.Score != 42 {
		t.Errorf("Node(0).Score = %g; want 42", n.Score)
	}
	if got := g.MaxScore(); got != 42 {
		t.Errorf("MaxScore() = %g; want 42", got)
	}
}

func TestMaxScore_Empty(t *testing.T) {
	if got := core.NewGraph().MaxScore(); got != 0 {
		t.Errorf("MaxScore() on empty graph = %g; want 0", got)
	}
}
