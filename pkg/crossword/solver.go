package crossword

import "sort"

// Arc is an ordered pair of crossing slots queued for revision: the
// domain of X is revised against the domain of Y.
type Arc struct {
	X Slot
	Y Slot
}

// Solver fills a puzzle structure from a vocabulary by constraint
// propagation (AC-3 over shared-letter arcs) and heuristic backtracking
// search. A Solver is single-use per Solve call and not safe for
// concurrent use: the domain store is owned by the active search branch.
type Solver struct {
	structure *Structure
	domains   *Domains
	tracer    Tracer
}

// Option configures a Solver.
type Option func(*Solver)

// WithTracer attaches a search observer.
func WithTracer(t Tracer) Option {
	return func(s *Solver) {
		s.tracer = t
	}
}

// NewSolver builds a solver whose domain store starts as a full copy of
// the vocabulary for every slot.
func NewSolver(structure *Structure, vocabulary []string, opts ...Option) *Solver {
	s := &Solver{
		structure: structure,
		domains:   NewDomains(structure, vocabulary),
		tracer:    DefaultTracer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Domains exposes the solver's domain store, mainly for tests and
// diagnostic tooling.
func (s *Solver) Domains() *Domains {
	return s.domains
}

// Solve enforces node and arc consistency, then searches for a complete
// assignment. The boolean is false when the puzzle is unsatisfiable;
// that is a normal result, not an error.
func (s *Solver) Solve() (Assignment, bool) {
	s.EnforceNodeConsistency()
	if !s.AC3(nil) {
		return nil, false
	}
	return s.backtrack(Assignment{})
}

// EnforceNodeConsistency drops every candidate whose length differs from
// its slot's length. Idempotent and order-independent across slots.
func (s *Solver) EnforceNodeConsistency() {
	for _, slot := range s.structure.Slots() {
		for _, w := range s.domains.Candidates(slot) {
			if len([]rune(w)) != slot.Length {
				s.domains.Remove(slot, w)
			}
		}
	}
}

// Revise makes x arc-consistent with y: every candidate of x must agree
// with at least one candidate of y at their shared cell. Reports whether
// any candidate was removed from x. Only x's domain is ever touched.
func (s *Solver) Revise(x, y Slot) bool {
	ov, ok := s.structure.Overlap(x, y)
	if !ok {
		return false
	}
	revised := false
	for _, wx := range s.domains.Candidates(x) {
		rx := []rune(wx)
		if ov.I >= len(rx) {
			s.domains.Remove(x, wx)
			revised = true
			continue
		}
		supported := false
		for _, wy := range s.domains.Candidates(y) {
			ry := []rune(wy)
			if ov.J < len(ry) && rx[ov.I] == ry[ov.J] {
				supported = true
				break
			}
		}
		if !supported {
			s.domains.Remove(x, wx)
			revised = true
		}
	}
	return revised
}

// AC3 revises arcs from a FIFO queue to a fixed point. A nil seed means
// every ordered pair of distinct slots. When revising (x, y) shrinks x,
// each arc (z, x) for the other neighbors z of x is re-enqueued, since
// their support may have come from the removed words. Returns false as
// soon as any domain empties: the CSP is unsatisfiable on this branch.
func (s *Solver) AC3(arcs []Arc) bool {
	var queue []Arc
	if arcs == nil {
		slots := s.structure.Slots()
		for _, x := range slots {
			for _, y := range slots {
				if x != y {
					queue = append(queue, Arc{X: x, Y: y})
				}
			}
		}
	} else {
		queue = append(queue, arcs...)
	}

	for len(queue) > 0 {
		arc := queue[0]
		queue = queue[1:]
		if !s.Revise(arc.X, arc.Y) {
			continue
		}
		if s.domains.Size(arc.X) == 0 {
			return false
		}
		for _, z := range s.structure.Neighbors(arc.X) {
			if z != arc.Y {
				queue = append(queue, Arc{X: z, Y: arc.X})
			}
		}
	}
	return true
}

// Consistent reports whether a partial assignment violates no
// constraint: words are pairwise distinct, lengths match, and assigned
// crossing slots agree at their shared cell.
func (s *Solver) Consistent(a Assignment) bool {
	seen := make(map[string]struct{}, len(a))
	for _, w := range a {
		if _, dup := seen[w]; dup {
			return false
		}
		seen[w] = struct{}{}
	}
	for slot, w := range a {
		rw := []rune(w)
		if len(rw) != slot.Length {
			return false
		}
		for _, n := range s.structure.Neighbors(slot) {
			nw, assigned := a[n]
			if !assigned {
				continue
			}
			ov, _ := s.structure.Overlap(slot, n)
			if rw[ov.I] != []rune(nw)[ov.J] {
				return false
			}
		}
	}
	return true
}

// selectUnassigned picks the next slot to branch on: fewest remaining
// candidates first (MRV), most neighbors on ties (degree), canonical
// slot order on remaining ties.
func (s *Solver) selectUnassigned(a Assignment) Slot {
	var best Slot
	found := false
	for _, slot := range s.structure.Slots() {
		if _, assigned := a[slot]; assigned {
			continue
		}
		if !found {
			best, found = slot, true
			continue
		}
		size, bestSize := s.domains.Size(slot), s.domains.Size(best)
		deg, bestDeg := len(s.structure.Neighbors(slot)), len(s.structure.Neighbors(best))
		if size < bestSize || (size == bestSize && deg > bestDeg) {
			best = slot
		}
	}
	return best
}

// orderDomainValues orders the candidates of slot by the number of
// options each would eliminate from unassigned crossing slots, fewest
// first (least-constraining value). Ties keep lexicographic order, so
// the ordering is deterministic.
func (s *Solver) orderDomainValues(slot Slot, a Assignment) []string {
	words := s.domains.Candidates(slot)
	conflicts := make(map[string]int, len(words))
	for _, w := range words {
		rw := []rune(w)
		count := 0
		for _, n := range s.structure.Neighbors(slot) {
			if _, assigned := a[n]; assigned {
				continue
			}
			ov, _ := s.structure.Overlap(slot, n)
			for _, nw := range s.domains.Candidates(n) {
				rn := []rune(nw)
				if ov.I < len(rw) && ov.J < len(rn) && rw[ov.I] != rn[ov.J] {
					count++
				}
			}
		}
		conflicts[w] = count
	}
	sort.SliceStable(words, func(i, j int) bool {
		return conflicts[words[i]] < conflicts[words[j]]
	})
	return words
}

// backtrack extends the assignment one slot at a time. Each tentative
// assignment is propagated by AC-3 seeded with the arcs from the slot to
// its neighbors; domain pruning is undone via snapshot/restore whenever
// the branch is abandoned.
func (s *Solver) backtrack(a Assignment) (Assignment, bool) {
	if a.Complete(s.structure) {
		return a, true
	}
	slot := s.selectUnassigned(a)
	s.tracer.Select(slot, s.domains.Size(slot))
	for _, word := range s.orderDomainValues(slot, a) {
		s.tracer.Try(slot, word)
		a[slot] = word
		if s.Consistent(a) {
			snap := s.domains.Snapshot()
			neighbors := s.structure.Neighbors(slot)
			arcs := make([]Arc, 0, len(neighbors))
			for _, n := range neighbors {
				arcs = append(arcs, Arc{X: slot, Y: n})
			}
			if s.AC3(arcs) {
				if result, ok := s.backtrack(a); ok {
					return result, true
				}
			}
			s.domains.Restore(snap)
		}
		delete(a, slot)
	}
	s.tracer.Backtrack(slot)
	return nil, false
}
