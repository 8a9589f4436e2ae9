// Package hillclimb provides a stepable hill-climbing engine over a
// core.Graph: a single climber that repeatedly surveys its neighbors,
// picks the strictly best one, and moves - until no neighbor improves
// on the current node's Score.
//
// What
//
//   - Stage machine: Unset → {Survey → Evaluate → Move}* → Peak. Each
//     Step executes exactly one stage and returns a Report, so a
//     renderer can animate the cadence one keypress at a time.
//   - Survey marks every neighbor a candidate (zero neighbors ends the
//     climb on the spot). Evaluate classifies candidates - strictly
//     greater scores are "better", plateau ties are "worse" - and picks
//     the maximum, first-seen on a tie. Move relocates, or stops at a
//     Peak reporting whether it is the global maximum or merely local.
//   - Render surface: Mark(id) per-node classification, CurrentID,
//     Phase, Moves, Done.
//
// Unlike the search engines, the climber keeps no frontier and no
// parent tree, and it never backtracks: state is the current node plus
// the marks of its immediate neighbors. The score sequence strictly
// increases at every Move, so any climb ends within NodeCount moves.
//
// Errors
//
//	ErrGraphNil     - nil graph at construction.
//	ErrNotReady     - Step before SetStart.
//	ErrNodeNotFound - unknown start or query id.
//
// Stepping a finished climb repeats the last report without error.
//
// Usage
//
//	climber, err := hillclimb.New(g)
//	if err != nil { ... }
//	_ = climber.SetStart(0)
//	for !climber.Done() {
//	    rep, _ := climber.Step()
//	    draw(rep)
//	}
package hillclimb
