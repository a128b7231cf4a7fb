package sheetcore

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// dependencyIndex is the inverse view of the reference graph: for every
// position it tracks the set of formula cells that read it. The forward
// view lives on the cells themselves (Cell.ReferencedCells), and the two
// views are kept in agreement by rewire.
//
// Keys may outlive cells: a formula may reference a position that has
// never been set, and the index keeps such phantom keys until their sets
// drain. Sets that drain are deleted so repeated set/clear cycles do not
// grow the index without bound.
type dependencyIndex struct {
	dependents map[Position]map[Position]struct{}
}

func newDependencyIndex() *dependencyIndex {
	return &dependencyIndex{
		dependents: make(map[Position]map[Position]struct{}),
	}
}

// addDependent records that dependent's formula reads target.
func (di *dependencyIndex) addDependent(target, dependent Position) {
	if di.dependents[target] == nil {
		di.dependents[target] = make(map[Position]struct{})
	}
	di.dependents[target][dependent] = struct{}{}
}

// removeDependent erases the edge and garbage-collects drained sets.
func (di *dependencyIndex) removeDependent(target, dependent Position) {
	set, exists := di.dependents[target]
	if !exists {
		return
	}
	delete(set, dependent)
	if len(set) == 0 {
		delete(di.dependents, target)
	}
}

// isReferenced reports whether any formula cell reads target.
func (di *dependencyIndex) isReferenced(target Position) bool {
	return len(di.dependents[target]) > 0
}

// dependentsOf returns the positions whose formulas directly read target,
// in ascending order.
func (di *dependencyIndex) dependentsOf(target Position) []Position {
	set, exists := di.dependents[target]
	if !exists {
		return nil
	}
	result := maps.Keys(set)
	slices.SortFunc(result, Position.Compare)
	return result
}

// rewire replaces pos's outgoing edges: edges to oldRefs \ newRefs are
// dropped and edges to newRefs \ oldRefs are added. Both slices must be
// deduplicated; order does not matter.
func (di *dependencyIndex) rewire(pos Position, oldRefs, newRefs []Position) {
	for _, ref := range oldRefs {
		if !slices.Contains(newRefs, ref) {
			di.removeDependent(ref, pos)
		}
	}
	for _, ref := range newRefs {
		if !slices.Contains(oldRefs, ref) {
			di.addDependent(ref, pos)
		}
	}
}

// collectDependents walks the transitive closure of dependents from start
// with an explicit worklist. The start position itself is included. The
// graph is acyclic by construction, but the visited set both guards
// against repeated work on diamond shapes and keeps the walk terminating
// regardless.
func (di *dependencyIndex) collectDependents(start Position) []Position {
	visited := map[Position]struct{}{start: {}}
	worklist := []Position{start}
	result := []Position{start}

	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		for dependent := range di.dependents[current] {
			if _, seen := visited[dependent]; seen {
				continue
			}
			visited[dependent] = struct{}{}
			worklist = append(worklist, dependent)
			result = append(result, dependent)
		}
	}

	return result
}

// count returns the number of positions with at least one dependent.
func (di *dependencyIndex) count() int {
	return len(di.dependents)
}
