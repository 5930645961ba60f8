package crossword

import "sort"

// Domains maps every slot to its remaining candidate words. During a
// solve, domains only ever shrink; the search undoes pruning by taking a
// Snapshot before propagating a tentative assignment and Restoring it
// when the branch is abandoned.
type Domains struct {
	words map[Slot]map[string]struct{}
}

// Snapshot is an immutable copy of the full domain state.
type Snapshot map[Slot]map[string]struct{}

// NewDomains gives every slot of the structure a copy of the whole
// vocabulary. Length filtering is the solver's job, not the store's.
func NewDomains(s *Structure, vocabulary []string) *Domains {
	d := &Domains{words: make(map[Slot]map[string]struct{}, len(s.Slots()))}
	for _, slot := range s.Slots() {
		set := make(map[string]struct{}, len(vocabulary))
		for _, w := range vocabulary {
			set[w] = struct{}{}
		}
		d.words[slot] = set
	}
	return d
}

// Size returns the number of candidates remaining for a slot.
func (d *Domains) Size(s Slot) int {
	return len(d.words[s])
}

// Has reports whether w is still a candidate for s.
func (d *Domains) Has(s Slot, w string) bool {
	_, ok := d.words[s][w]
	return ok
}

// Remove drops w from the domain of s.
func (d *Domains) Remove(s Slot, w string) {
	delete(d.words[s], w)
}

// Candidates returns the remaining words for s in lexicographic order.
func (d *Domains) Candidates(s Slot) []string {
	out := make([]string, 0, len(d.words[s]))
	for w := range d.words[s] {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Snapshot deep-copies the current domain state.
func (d *Domains) Snapshot() Snapshot {
	snap := make(Snapshot, len(d.words))
	for slot, set := range d.words {
		cp := make(map[string]struct{}, len(set))
		for w := range set {
			cp[w] = struct{}{}
		}
		snap[slot] = cp
	}
	return snap
}

// Restore resets the store to a previously taken snapshot.
func (d *Domains) Restore(snap Snapshot) {
	words := make(map[Slot]map[string]struct{}, len(snap))
	for slot, set := range snap {
		cp := make(map[string]struct{}, len(set))
		for w := range set {
			cp[w] = struct{}{}
		}
		words[slot] = cp
	}
	d.words = words
}
