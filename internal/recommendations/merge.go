package recommendations

// shouldReplace is the conflict policy: only a strictly higher priority wins,
// so on ties the earlier candidate is kept.
func shouldReplace(stored, incoming Candidate) bool {
	return incoming.Priority > stored.Priority
}

// merger accumulates candidates keyed by ingredient id, remembering the
// position of first insertion.
type merger struct {
	index map[string]int
	items []Candidate
}

func newMerger(capacity int) *merger {
	return &merger{
		index: make(map[string]int, capacity),
		items: make([]Candidate, 0, capacity),
	}
}

// offer inserts c or upgrades the stored candidate. It reports whether the
// accumulator changed.
func (m *merger) offer(c Candidate) bool {
	pos, ok := m.index[c.IngredientID]
	if !ok {
		m.index[c.IngredientID] = len(m.items)
		m.items = append(m.items, c)
		return true
	}
	if !shouldReplace(m.items[pos], c) {
		return false
	}
	m.items[pos].Priority = c.Priority
	m.items[pos].Reason = c.Reason
	return true
}

func (m *merger) candidates() []Candidate {
	return append([]Candidate(nil), m.items...)
}

// Merge folds batches in order into one candidate per ingredient.
func Merge(batches ...[]Candidate) []Candidate {
	acc := newMerger(16)
	for _, batch := range batches {
		for _, c := range batch {
			acc.offer(c)
		}
	}
	return acc.candidates()
}
