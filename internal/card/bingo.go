package card

// CalledSet holds the items announced so far. It only grows.
type CalledSet struct {
	called map[int]struct{}
}

// NewCalledSet creates a set containing the given items.
func NewCalledSet(items ...int) *CalledSet {
	s := &CalledSet{called: make(map[int]struct{}, len(items))}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// Add marks an item as called.
func (s *CalledSet) Add(v int) {
	s.called[v] = struct{}{}
}

// Has reports whether v has been called. A nil set has nothing called.
func (s *CalledSet) Has(v int) bool {
	if s == nil {
		return false
	}
	_, ok := s.called[v]
	return ok
}

// Len returns the number of called items.
func (s *CalledSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.called)
}

// Complete reports whether every cell of the line has been called.
func (l Line) Complete(g Grid, called *CalledSet) bool {
	for _, p := range l.Cells {
		if !called.Has(g.At(p)) {
			return false
		}
	}
	return true
}

// CheckBingo reports whether any row, column or diagonal of g is fully
// covered by called.
func CheckBingo(g Grid, called *CalledSet) bool {
	for _, l := range Lines {
		if l.Complete(g, called) {
			return true
		}
	}
	return false
}

// CompletedLines returns every line of g fully covered by called.
func CompletedLines(g Grid, called *CalledSet) []Line {
	var done []Line
	for _, l := range Lines {
		if l.Complete(g, called) {
			done = append(done, l)
		}
	}
	return done
}
