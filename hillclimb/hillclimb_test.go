// Package hillclimb_test contains unit tests for the staged climber:
// stage cadence, plateau behavior, peak classification, and bounds.
package hillclimb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepsearch/builder"
	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/hillclimb"
)

// buildLine constructs an undirected 3-node line with the given scores.
func buildLine(t *testing.T, scores ...float64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, s := range scores {
		require.NoError(t, g.AddNode(int64(i), float64(i*100), 0))
		require.NoError(t, g.SetScore(int64(i), s))
	}
	for i := 0; i < len(scores)-1; i++ {
		require.NoError(t, g.AddEdge(int64(i), int64(i+1), 1))
		require.NoError(t, g.AddEdge(int64(i+1), int64(i), 1))
	}

	return g
}

// climb steps the engine to completion, asserting the score sequence
// never decreases and strictly increases at every Move.
func climb(t *testing.T, eng *hillclimb.Engine, maxMoves int) hillclimb.Report {
	t.Helper()
	last := -1.0
	var rep hillclimb.Report
	for i := 0; i < 4*(maxMoves+2); i++ {
		var err error
		rep, err = eng.Step()
		require.NoError(t, err)
		if rep.Moved {
			require.Greater(t, rep.Score, last, "each Move must strictly improve")
		} else {
			require.GreaterOrEqual(t, rep.Score, last)
		}
		last = rep.Score
		if rep.Done {
			return rep
		}
	}
	t.Fatal("climb did not finish")

	return rep
}

func TestNew_NilGraph(t *testing.T) {
	_, err := hillclimb.New(nil)
	assert.ErrorIs(t, err, hillclimb.ErrGraphNil)
}

func TestStep_BeforeStart(t *testing.T) {
	eng, err := hillclimb.New(buildLine(t, 1, 2))
	require.NoError(t, err)
	_, err = eng.Step()
	assert.ErrorIs(t, err, hillclimb.ErrNotReady)
	assert.Equal(t, hillclimb.Unset, eng.Phase())
}

func TestSetStart_Validation(t *testing.T) {
	eng, err := hillclimb.New(buildLine(t, 1, 2))
	require.NoError(t, err)
	assert.ErrorIs(t, eng.SetStart(9), hillclimb.ErrNodeNotFound)
	assert.Equal(t, hillclimb.Unset, eng.Phase())
}

func TestClimb_LineToGlobalMax(t *testing.T) {
	// Scores [5,10,3] from node 0: one move to node 1, then Peak, and
	// node 1 is the graph-wide maximum.
	g := buildLine(t, 5, 10, 3)
	eng, err := hillclimb.New(g)
	require.NoError(t, err)
	require.NoError(t, eng.SetStart(0))

	rep := climb(t, eng, g.NodeCount())
	assert.True(t, rep.Done)
	assert.True(t, rep.GlobalMax, "score 10 is the global maximum")
	assert.Equal(t, int64(1), rep.CurrentID)
	assert.Equal(t, 10.0, rep.Score)
	assert.Equal(t, 1, eng.Moves())

	mark, err := eng.Mark(1)
	require.NoError(t, err)
	assert.Equal(t, hillclimb.MarkPeak, mark)
}

func TestClimb_StuckAtLocalMax(t *testing.T) {
	// Scores [5,10,3,20]: starting at 0 the climber reaches 10 and
	// stops - node 3 (score 20) is across a valley it will not cross.
	g := buildLine(t, 5, 10, 3, 20)
	eng, err := hillclimb.New(g)
	require.NoError(t, err)
	require.NoError(t, eng.SetStart(0))

	rep := climb(t, eng, g.NodeCount())
	assert.True(t, rep.Done)
	assert.False(t, rep.GlobalMax, "10 is only a local maximum")
	assert.Equal(t, int64(1), rep.CurrentID)
}

func TestClimb_PlateauCountsAsWorse(t *testing.T) {
	// Equal-score neighbors never count as improving: the climber must
	// declare a peak immediately on a flat plateau.
	g := buildLine(t, 7, 7, 7)
	eng, err := hillclimb.New(g)
	require.NoError(t, err)
	require.NoError(t, eng.SetStart(1))

	rep := climb(t, eng, g.NodeCount())
	assert.True(t, rep.Done)
	assert.True(t, rep.GlobalMax, "a flat landscape is all global maxima")
	assert.Equal(t, int64(1), rep.CurrentID, "no move on a plateau")
	assert.Equal(t, 0, eng.Moves())

	// Evaluate marked both neighbors worse, not better.
	for _, id := range []int64{0, 2} {
		mark, err := eng.Mark(id)
		require.NoError(t, err)
		assert.NotEqual(t, hillclimb.MarkBetter, mark)
	}
}

func TestClimb_IsolatedNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(0, 0, 0))
	require.NoError(t, g.SetScore(0, 4))

	eng, err := hillclimb.New(g)
	require.NoError(t, err)
	require.NoError(t, eng.SetStart(0))

	rep, err := eng.Step()
	require.NoError(t, err)
	assert.True(t, rep.Done, "zero neighbors ends the climb in one step")
	assert.True(t, rep.GlobalMax)
	assert.Equal(t, 0, rep.Candidates)
}

func TestClimb_TieBreaksFirstSeen(t *testing.T) {
	// Two improving neighbors with equal scores: the first one in
	// adjacency insertion order wins.
	g := core.NewGraph()
	for i := int64(0); i < 3; i++ {
		require.NoError(t, g.AddNode(i, 0, 0))
	}
	require.NoError(t, g.SetScore(0, 1))
	require.NoError(t, g.SetScore(1, 9))
	require.NoError(t, g.SetScore(2, 9))
	require.NoError(t, g.AddEdge(0, 2, 1)) // inserted first
	require.NoError(t, g.AddEdge(0, 1, 1))

	eng, err := hillclimb.New(g)
	require.NoError(t, err)
	require.NoError(t, eng.SetStart(0))

	_, err = eng.Step() // Survey
	require.NoError(t, err)
	rep, err := eng.Step() // Evaluate
	require.NoError(t, err)
	assert.Equal(t, int64(2), rep.BestID, "first-seen improver wins the tie")
}

func TestStep_TerminalNoOp(t *testing.T) {
	g := buildLine(t, 5, 10, 3)
	eng, err := hillclimb.New(g)
	require.NoError(t, err)
	require.NoError(t, eng.SetStart(0))
	final := climb(t, eng, g.NodeCount())

	for i := 0; i < 3; i++ {
		rep, err := eng.Step()
		require.NoError(t, err)
		assert.Equal(t, final, rep)
	}
}

func TestClimb_MoveBoundOnLandscape(t *testing.T) {
	// On generated landscapes the climber finishes within NodeCount
	// moves from any start, and the score sequence never decreases.
	for _, seed := range []int64{3, 21, 77} {
		g, err := builder.Build(
			[]builder.Option{builder.WithSeed(seed)},
			builder.Landscape(5, 6),
		)
		require.NoError(t, err)

		for _, start := range g.Nodes() {
			eng, err := hillclimb.New(g)
			require.NoError(t, err)
			require.NoError(t, eng.SetStart(start))

			rep := climb(t, eng, g.NodeCount())
			require.True(t, rep.Done)
			require.LessOrEqual(t, eng.Moves(), g.NodeCount(), "seed %d start %d", seed, start)
		}
	}
}

func TestReset_ReturnsToUnset(t *testing.T) {
	g := buildLine(t, 5, 10, 3)
	eng, err := hillclimb.New(g)
	require.NoError(t, err)
	require.NoError(t, eng.SetStart(0))
	climb(t, eng, g.NodeCount())

	eng.Reset()
	assert.Equal(t, hillclimb.Unset, eng.Phase())
	assert.Equal(t, core.NoParent, eng.CurrentID())
	assert.Equal(t, 0, eng.Moves())

	mark, err := eng.Mark(1)
	require.NoError(t, err)
	assert.Equal(t, hillclimb.MarkNone, mark, "marks cleared by Reset")
}
