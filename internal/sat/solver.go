// Package sat fills puzzles by reduction to boolean satisfiability.
// It exists alongside the constraint-propagation engine as an
// independent implementation of the same contract, useful for
// cross-checking and for dense grids where clause learning pays off.
package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/gridfill/gridfill/pkg/crossword"
)

const satisfiable = 1

// Solver encodes a puzzle structure and vocabulary as CNF over one
// literal per (slot, word) pair and hands the formula to gini.
type Solver struct {
	structure  *crossword.Structure
	vocabulary []string
}

func NewSolver(structure *crossword.Structure, vocabulary []string) *Solver {
	return &Solver{structure: structure, vocabulary: vocabulary}
}

// Solve returns a complete assignment, or false when the formula is
// unsatisfiable.
func (s *Solver) Solve() (crossword.Assignment, bool) {
	slots := s.structure.Slots()

	// Candidate words per slot, length-filtered up front. A slot with
	// no candidate can never be filled.
	candidates := make([][]string, len(slots))
	for i, slot := range slots {
		for _, w := range s.vocabulary {
			if len([]rune(w)) == slot.Length {
				candidates[i] = append(candidates[i], w)
			}
		}
		if len(candidates[i]) == 0 {
			return nil, false
		}
	}

	// One positive literal per (slot, candidate) pair.
	lits := make([]map[string]z.Lit, len(slots))
	next := z.Var(1)
	for i := range slots {
		lits[i] = make(map[string]z.Lit, len(candidates[i]))
		for _, w := range candidates[i] {
			lits[i][w] = next.Pos()
			next++
		}
	}

	g := gini.New()

	// Every slot holds a word.
	for i := range slots {
		for _, w := range candidates[i] {
			g.Add(lits[i][w])
		}
		g.Add(z.LitNull)
	}

	// At most one word per slot.
	for i := range slots {
		for a := 0; a < len(candidates[i]); a++ {
			for b := a + 1; b < len(candidates[i]); b++ {
				g.Add(lits[i][candidates[i][a]].Not())
				g.Add(lits[i][candidates[i][b]].Not())
				g.Add(z.LitNull)
			}
		}
	}

	// Crossing slots agree on their shared letter, and no word is
	// reused across slots.
	for i := range slots {
		for j := i + 1; j < len(slots); j++ {
			ov, crossing := s.structure.Overlap(slots[i], slots[j])
			for _, wi := range candidates[i] {
				ri := []rune(wi)
				for _, wj := range candidates[j] {
					conflict := wi == wj
					if !conflict && crossing {
						conflict = ri[ov.I] != []rune(wj)[ov.J]
					}
					if conflict {
						g.Add(lits[i][wi].Not())
						g.Add(lits[j][wj].Not())
						g.Add(z.LitNull)
					}
				}
			}
		}
	}

	if g.Solve() != satisfiable {
		return nil, false
	}

	assignment := crossword.Assignment{}
	for i, slot := range slots {
		for _, w := range candidates[i] {
			if g.Value(lits[i][w]) {
				assignment[slot] = w
				break
			}
		}
	}
	return assignment, true
}
